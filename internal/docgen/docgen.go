// Package docgen renders a transition table into human-readable
// documentation: a Mermaid state diagram, a Markdown transition table and a
// statistics summary. Hidden inputs (underscore prefix) are excluded from
// every rendering but remain functionally normal transitions.
package docgen

import (
	"fmt"
	"strings"

	"github.com/aretw0/automat/internal/query"
	"github.com/aretw0/automat/pkg/domain"
)

// Mermaid produces a stateDiagram-v2 description of the visible transition
// graph: an initial-state marker followed by one line per visible edge in
// declaration order. Self-loops render as edges from a state to itself.
func Mermaid(t *domain.Table) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeID(t.Initial())))

	for _, edge := range t.Transitions() {
		if edge.On.Hidden() {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s : %s\n",
			sanitizeID(edge.From), sanitizeID(edge.To), edge.On))
	}
	return sb.String()
}

// TransitionTable produces a Markdown table of the visible transitions, one
// row per edge in declaration order. Each row is `| current | input | next |`,
// a stable, parseable contract.
func TransitionTable(t *domain.Table) string {
	var sb strings.Builder
	sb.WriteString("# State Transition Table\n\n")
	sb.WriteString("| Current State | Input | Next State |\n")
	sb.WriteString("|---------------|-------|------------|\n")

	for _, edge := range t.Transitions() {
		if edge.On.Hidden() {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", edge.From, edge.On, edge.To))
	}
	return sb.String()
}

// Statistics computes the structured summary of the table.
func Statistics(t *domain.Table) domain.Statistics {
	stats := domain.Statistics{
		Machine: t.Name(),
		States:  len(t.States()),
		Initial: t.Initial(),
	}
	for _, in := range t.Inputs() {
		if in.Hidden() {
			stats.HiddenInputs++
		} else {
			stats.VisibleInputs++
		}
	}
	for _, edge := range t.Transitions() {
		stats.Transitions++
		if edge.From == edge.To {
			stats.SelfLoops++
		}
	}
	stats.TerminalStates = len(query.TerminalStates(t))
	return stats
}

// RenderStatistics renders the summary as a Markdown section.
func RenderStatistics(stats domain.Statistics) string {
	var sb strings.Builder
	sb.WriteString("# State Machine Statistics\n\n")
	if stats.Machine != "" {
		sb.WriteString(fmt.Sprintf("- **Machine**: %s\n", stats.Machine))
	}
	sb.WriteString(fmt.Sprintf("- **Number of States**: %d\n", stats.States))
	sb.WriteString(fmt.Sprintf("- **Visible Inputs**: %d\n", stats.VisibleInputs))
	sb.WriteString(fmt.Sprintf("- **Hidden Inputs**: %d\n", stats.HiddenInputs))
	sb.WriteString(fmt.Sprintf("- **Number of Transitions**: %d\n", stats.Transitions))
	sb.WriteString(fmt.Sprintf("- **Self-loops**: %d\n", stats.SelfLoops))
	sb.WriteString(fmt.Sprintf("- **Terminal States**: %d\n", stats.TerminalStates))
	sb.WriteString(fmt.Sprintf("- **Initial State**: %s\n", stats.Initial))
	return sb.String()
}

// FullDocumentation concatenates statistics, the transition table and the
// diagram into one Markdown document.
func FullDocumentation(t *domain.Table) string {
	var sb strings.Builder
	sb.WriteString("# State Machine Documentation\n\n")
	sb.WriteString(RenderStatistics(Statistics(t)))
	sb.WriteString("\n")
	sb.WriteString(TransitionTable(t))
	sb.WriteString("\n# State Diagram\n\n")
	sb.WriteString("```mermaid\n")
	sb.WriteString(Mermaid(t))
	sb.WriteString("```\n")
	return sb.String()
}

// sanitizeID makes a state identifier safe for Mermaid node names.
func sanitizeID(s domain.State) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(string(s))
}
