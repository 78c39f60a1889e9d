package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automat version %s\n", automat.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
