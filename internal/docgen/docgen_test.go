package docgen_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automat/internal/docgen"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hiddenInputTable(t *testing.T) *domain.Table {
	t.Helper()
	table, err := domain.Definition{
		Name:    "toggle",
		States:  []domain.State{"state_a", "state_b"},
		Inputs:  []domain.Input{"action", "_hidden_action", "_debug"},
		Initial: "state_a",
		Transitions: []domain.Transition{
			{From: "state_a", On: "action", To: "state_b"},
			{From: "state_b", On: "action", To: "state_a"},
			{From: "state_a", On: "_hidden_action", To: "state_a"},
			{From: "state_b", On: "_hidden_action", To: "state_b"},
			{From: "state_a", On: "_debug", To: "state_a"},
			{From: "state_b", On: "_debug", To: "state_b"},
		},
	}.Build()
	require.NoError(t, err)
	return table
}

func TestMermaid(t *testing.T) {
	table := hiddenInputTable(t)
	mermaid := docgen.Mermaid(table)

	assert.True(t, strings.HasPrefix(mermaid, "stateDiagram-v2\n"))
	assert.Contains(t, mermaid, "[*] --> state_a")
	assert.Contains(t, mermaid, "state_a --> state_b : action")
	assert.Contains(t, mermaid, "state_b --> state_a : action")
}

func TestMermaid_ExcludesHiddenInputs(t *testing.T) {
	mermaid := docgen.Mermaid(hiddenInputTable(t))

	assert.Contains(t, mermaid, "action")
	assert.NotContains(t, mermaid, "_hidden_action")
	assert.NotContains(t, mermaid, "_debug")
}

func TestMermaid_SelfLoopVisible(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"idle"},
		Inputs:  []domain.Input{"tick"},
		Initial: "idle",
		Transitions: []domain.Transition{
			{From: "idle", On: "tick", To: "idle"},
		},
	}.Build()
	require.NoError(t, err)

	assert.Contains(t, docgen.Mermaid(table), "idle --> idle : tick")
}

func TestTransitionTable(t *testing.T) {
	out := docgen.TransitionTable(hiddenInputTable(t))

	assert.Contains(t, out, "| Current State | Input | Next State |")
	assert.Contains(t, out, "| state_a | action | state_b |")
	assert.Contains(t, out, "| state_b | action | state_a |")
	assert.NotContains(t, out, "_hidden_action")
	assert.NotContains(t, out, "_debug")
}

func TestTransitionTable_HiddenStillFunctional(t *testing.T) {
	table := hiddenInputTable(t)

	// Excluded from docs, but still a normal transition.
	assert.True(t, table.CanAccept("state_a", "_hidden_action"))
	assert.NotContains(t, docgen.TransitionTable(table), "_hidden_action")
}

func TestStatistics(t *testing.T) {
	stats := docgen.Statistics(hiddenInputTable(t))

	assert.Equal(t, "toggle", stats.Machine)
	assert.Equal(t, 2, stats.States)
	assert.Equal(t, 1, stats.VisibleInputs)
	assert.Equal(t, 2, stats.HiddenInputs)
	assert.Equal(t, 6, stats.Transitions)
	assert.Equal(t, 4, stats.SelfLoops)
	assert.Equal(t, 0, stats.TerminalStates)
	assert.Equal(t, domain.State("state_a"), stats.Initial)
}

func TestStatistics_TerminalStates(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"running", "done"},
		Inputs:  []domain.Input{"finish"},
		Initial: "running",
		Transitions: []domain.Transition{
			{From: "running", On: "finish", To: "done"},
		},
	}.Build()
	require.NoError(t, err)

	stats := docgen.Statistics(table)
	assert.Equal(t, 1, stats.TerminalStates)
}

func TestFullDocumentation(t *testing.T) {
	doc := docgen.FullDocumentation(hiddenInputTable(t))

	assert.Contains(t, doc, "# State Machine Documentation")
	assert.Contains(t, doc, "# State Machine Statistics")
	assert.Contains(t, doc, "- **Number of States**: 2")
	assert.Contains(t, doc, "# State Transition Table")
	assert.Contains(t, doc, "# State Diagram")
	assert.Contains(t, doc, "```mermaid\nstateDiagram-v2")
	assert.NotContains(t, doc, "_debug")
}

func TestRenderStatistics(t *testing.T) {
	out := docgen.RenderStatistics(domain.Statistics{
		States:         3,
		VisibleInputs:  2,
		Transitions:    4,
		TerminalStates: 1,
		Initial:        "start",
	})
	assert.Contains(t, out, "- **Number of States**: 3")
	assert.Contains(t, out, "- **Terminal States**: 1")
	assert.Contains(t, out, "- **Initial State**: start")
}
