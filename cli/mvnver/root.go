package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var root = cobra.Command{
	Use:   "mvnver",
	Short: "Maven version calculator",
	Long:  "Parse, compare and sort maven artifact versions.",
}

func main() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
