package main

import (
	"fmt"

	yaml "github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"gitlab.spimageworks.com/dev-group/dev-ops/mvnver"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect VERSION [VERSION...]",
	Short: "Inspect versions",
	Long:  "Show the decomposed fields and canonical form of each version",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	root.AddCommand(inspectCmd)
}

// inspectReport is the per-version document printed by the inspect command
type inspectReport struct {
	Version     string `yaml:"version"`
	Canonical   string `yaml:"canonical"`
	Major       uint32 `yaml:"major"`
	Minor       uint32 `yaml:"minor"`
	Incremental uint32 `yaml:"incremental"`
	Build       uint32 `yaml:"build"`
	Qualifier   string `yaml:"qualifier,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {

	reports := make([]inspectReport, len(args))
	for i, source := range args {
		artifact := mvnver.ParseArtifactVersion(source)
		qualifier, _ := artifact.Qualifier()
		reports[i] = inspectReport{
			Version:     artifact.String(),
			Canonical:   artifact.Comparable().Canonical(),
			Major:       artifact.Major(),
			Minor:       artifact.Minor(),
			Incremental: artifact.Incremental(),
			Build:       artifact.Build(),
			Qualifier:   qualifier,
		}
	}

	out, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Print(string(out))
	return nil

}
