package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.spimageworks.com/dev-group/dev-ops/mvnver"
)

var compareCmd = &cobra.Command{
	Use:   "compare VERSION VERSION",
	Short: "Compare two versions",
	Long:  "Compare two versions using maven's ordering rules",
	Args:  cobra.ExactArgs(2),
	Run:   runCompare,
}

func init() {
	root.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {

	left := mvnver.ParseVersion(args[0])
	right := mvnver.ParseVersion(args[1])

	switch left.Compare(right) {
	case -1:
		fmt.Printf("%s < %s\n", left, right)
	case 1:
		fmt.Printf("%s > %s\n", left, right)
	default:
		fmt.Printf("%s = %s\n", left, right)
	}

}
