package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sapling",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sapling version %s\n", sapling.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
