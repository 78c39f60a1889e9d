package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the machine definition for consistency",
	Long:  `Parses the definition file and verifies determinism: declared states and inputs, a valid initial state, no undeclared references and no conflicting transitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Machine %q is valid! ✅\n", table.Name())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
