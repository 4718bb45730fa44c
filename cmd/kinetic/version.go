package main

import (
	"fmt"

	"github.com/avezina/kinetic"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kinetic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kinetic version %s\n", kinetic.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
