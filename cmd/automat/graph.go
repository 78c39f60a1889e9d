package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/docgen"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state diagram",
	Long:  `Outputs a Mermaid state diagram (stateDiagram-v2) of the machine. Hidden inputs are omitted.`,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(docgen.Mermaid(table))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
