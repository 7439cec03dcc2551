package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"gitlab.spimageworks.com/dev-group/dev-ops/mvnver"
	"gitlab.spimageworks.com/dev-group/dev-ops/mvnver/internal/input"
)

var sortCmd = &cobra.Command{
	Use:   "sort [VERSION...]",
	Short: "Sort versions",
	Long:  "Sort versions oldest first, reading stdin when none are given",
	RunE:  runSort,
}

func init() {
	root.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {

	sources := args
	if len(sources) == 0 {
		var err error
		sources, err = input.ReadVersions(os.Stdin)
		if err != nil {
			return err
		}
	}

	versions := make([]mvnver.Version, len(sources))
	for i, source := range sources {
		versions[i] = mvnver.ParseVersion(source)
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].LessThan(versions[j])
	})

	for _, version := range versions {
		fmt.Println(version)
	}
	return nil

}
