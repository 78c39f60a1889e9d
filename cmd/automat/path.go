package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat/internal/query"
	"github.com/aretw0/automat/pkg/domain"
)

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Find a shortest path between two states",
	Long:  `Runs a breadth-first search over the transition graph and prints a minimal-hop state sequence from one state to another.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		table, err := loadTable(cmd)
		if err != nil {
			fmt.Printf("Error loading machine: %v\n", err)
			os.Exit(1)
		}

		from, to := domain.State(args[0]), domain.State(args[1])
		for _, s := range []domain.State{from, to} {
			if !table.HasState(s) {
				fmt.Printf("Unknown state %q\n", s)
				os.Exit(1)
			}
		}

		path := query.ShortestPath(table, from, to)
		if path == nil {
			fmt.Printf("No path from %q to %q\n", from, to)
			os.Exit(1)
		}

		steps := make([]string, len(path))
		for i, s := range path {
			steps[i] = string(s)
		}
		fmt.Println(strings.Join(steps, " -> "))
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
