package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/pkg/domain"
	"github.com/aretw0/automat/pkg/schema"
)

var rootCmd = &cobra.Command{
	Use:   "automat",
	Short: "Automat is a deterministic finite-state machine toolkit",
	Long:  `Automat validates, runs, queries and documents finite-state machines declared in YAML transition tables.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.yaml", "Path to the machine definition file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadTable reads the definition named by --file and builds the table.
func loadTable(cmd *cobra.Command) (*domain.Table, error) {
	path, _ := cmd.Flags().GetString("file")
	return schema.LoadTable(path)
}
