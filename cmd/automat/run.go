package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/automat"
	"github.com/aretw0/automat/internal/logging"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/aretw0/automat/pkg/observability"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the machine interactively",
	Long:  `Starts the machine at its initial state and reads inputs from stdin, one per line. Rejected inputs leave the state untouched. Type "exit" or "quit" to leave.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInteractive(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInteractive(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")

	opts := []automat.Option{}
	var logger *slog.Logger
	if debug {
		logger = logging.New(slog.LevelDebug)
		opts = append(opts, automat.WithLogger(logger))
	}

	m, err := automat.Load(path, opts...)
	if err != nil {
		return err
	}

	if debug {
		m.OnAnyTransition(observability.LogObserver(logger, m.Table().Name()))
	}

	fmt.Printf("--- %s ---\n", m.Table().Name())
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Printf("state: %s\n", m.CurrentState())
		if inputs := m.ValidInputs(); len(inputs) > 0 {
			fmt.Printf("inputs: %s\n", joinInputs(inputs))
		} else {
			fmt.Println("Terminal state reached.")
			printHistory(m)
			return nil
		}

		fmt.Print("> ")
		text, err := reader.ReadString('\n')
		if err != nil {
			// EOF ends the session cleanly.
			fmt.Println()
			printHistory(m)
			return nil
		}

		input := strings.TrimSpace(text)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Bye!")
			printHistory(m)
			return nil
		}

		if _, err := m.Transition(domain.Input(input)); err != nil {
			fmt.Printf("Rejected: %v\n", err)
		}
	}
}

func printHistory(m *automat.Machine) {
	if m.HistoryIsEmpty() {
		return
	}
	fmt.Println("history:")
	for _, e := range m.History() {
		fmt.Printf("  %s --%s--> %s\n", e.From, e.Input, e.To)
	}
}

func joinInputs(inputs []domain.Input) string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = string(in)
	}
	return strings.Join(names, ", ")
}
