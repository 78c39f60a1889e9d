package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/docgen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics for the machine",
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		stats := docgen.Statistics(table)

		jsonMode, _ := cmd.Flags().GetBool("json")
		if jsonMode {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(stats); err != nil {
				fmt.Printf("Error encoding statistics: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Print(docgen.RenderStatistics(stats))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("json", false, "Output statistics as JSON")
}
