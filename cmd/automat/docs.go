package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/docgen"
	"github.com/aretw0/automat/internal/presentation/tui"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate the machine documentation",
	Long:  `Outputs the full Markdown documentation: statistics, the transition table and a Mermaid state diagram. When stdout is an interactive terminal the Markdown is rendered with styling; piped output stays plain.`,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		markdown := docgen.FullDocumentation(table)

		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !tui.IsInteractive() {
			fmt.Print(markdown)
			return
		}

		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			fmt.Print(markdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().Bool("raw", false, "Print plain Markdown even on a terminal")
}
