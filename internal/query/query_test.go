package query_test

import (
	"testing"

	"github.com/aretw0/automat/internal/query"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The door machine from the design docs: every state has an exit, the graph
// is strongly connected, and Open reaches Locked only through Closed.
func doorTable(t *testing.T) *domain.Table {
	t.Helper()
	table, err := domain.Definition{
		Name:    "door",
		States:  []domain.State{"closed", "open", "locked"},
		Inputs:  []domain.Input{"open_door", "close_door", "lock", "unlock"},
		Initial: "closed",
		Transitions: []domain.Transition{
			{From: "closed", On: "open_door", To: "open"},
			{From: "open", On: "close_door", To: "closed"},
			{From: "closed", On: "lock", To: "locked"},
			{From: "locked", On: "unlock", To: "closed"},
		},
	}.Build()
	require.NoError(t, err)
	return table
}

func TestReachableStates(t *testing.T) {
	table := doorTable(t)

	reachable := query.ReachableStates(table, "closed")
	assert.ElementsMatch(t, []domain.State{"closed", "open", "locked"}, reachable)
	assert.Equal(t, domain.State("closed"), reachable[0], "origin comes first")

	assert.Nil(t, query.ReachableStates(table, "ajar"))
}

func TestReachableStates_DisconnectedComponent(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"a", "b", "island"},
		Inputs:  []domain.Input{"x"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "x", To: "b"},
		},
	}.Build()
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.State{"a", "b"}, query.ReachableStates(table, "a"))
	assert.Equal(t, []domain.State{"island"}, query.ReachableStates(table, "island"))
}

func TestStatesLeadingTo(t *testing.T) {
	table := doorTable(t)

	leading := query.StatesLeadingTo(table, "locked")
	// locked <- closed <- open; target itself included.
	assert.ElementsMatch(t, []domain.State{"locked", "closed", "open"}, leading)

	assert.Nil(t, query.StatesLeadingTo(table, "ajar"))
}

func TestHasPath(t *testing.T) {
	table := doorTable(t)

	assert.True(t, query.HasPath(table, "open", "locked"))
	assert.True(t, query.HasPath(table, "open", "open"), "every state reaches itself")
	assert.False(t, query.HasPath(table, "open", "ajar"))
}

func TestShortestPath(t *testing.T) {
	table := doorTable(t)

	path := query.ShortestPath(table, "open", "locked")
	assert.Equal(t, []domain.State{"open", "closed", "locked"}, path)

	assert.Equal(t, []domain.State{"open"}, query.ShortestPath(table, "open", "open"))
	assert.Nil(t, query.ShortestPath(table, "open", "ajar"))
}

func TestShortestPath_Unreachable(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"a", "b"},
		Inputs:  []domain.Input{"x"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "x", To: "b"},
		},
	}.Build()
	require.NoError(t, err)

	assert.Nil(t, query.ShortestPath(table, "b", "a"))
	assert.False(t, query.HasPath(table, "b", "a"))
}

func TestShortestPath_DeclarationOrderTieBreak(t *testing.T) {
	// Two equal-length routes from a to d: via b (declared first) and via c.
	table, err := domain.Definition{
		States:  []domain.State{"a", "b", "c", "d"},
		Inputs:  []domain.Input{"left", "right", "down"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "left", To: "b"},
			{From: "a", On: "right", To: "c"},
			{From: "b", On: "down", To: "d"},
			{From: "c", On: "down", To: "d"},
		},
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, []domain.State{"a", "b", "d"}, query.ShortestPath(table, "a", "d"))
}

func TestTerminalStates(t *testing.T) {
	assert.Empty(t, query.TerminalStates(doorTable(t)), "every door state has an outgoing edge")

	table, err := domain.Definition{
		States:  []domain.State{"running", "done", "failed"},
		Inputs:  []domain.Input{"finish", "fail"},
		Initial: "running",
		Transitions: []domain.Transition{
			{From: "running", On: "finish", To: "done"},
			{From: "running", On: "fail", To: "failed"},
		},
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, []domain.State{"done", "failed"}, query.TerminalStates(table))
}

func TestIsStronglyConnected(t *testing.T) {
	assert.True(t, query.IsStronglyConnected(doorTable(t)))

	oneWay, err := domain.Definition{
		States:  []domain.State{"a", "b"},
		Inputs:  []domain.Input{"x"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "x", To: "b"},
		},
	}.Build()
	require.NoError(t, err)
	assert.False(t, query.IsStronglyConnected(oneWay))
}

func TestIsStronglyConnected_SingleState(t *testing.T) {
	// A single state is strongly connected with or without a self-loop.
	solo, err := domain.Definition{
		States:      []domain.State{"only"},
		Inputs:      []domain.Input{"tick"},
		Initial:     "only",
		Transitions: nil,
	}.Build()
	require.NoError(t, err)
	assert.True(t, query.IsStronglyConnected(solo))

	loop, err := domain.Definition{
		States:  []domain.State{"only"},
		Inputs:  []domain.Input{"tick"},
		Initial: "only",
		Transitions: []domain.Transition{
			{From: "only", On: "tick", To: "only"},
		},
	}.Build()
	require.NoError(t, err)
	assert.True(t, query.IsStronglyConnected(loop))
}

func TestIsStronglyConnected_Disconnected(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"a", "b", "island"},
		Inputs:  []domain.Input{"x", "y"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "x", To: "b"},
			{From: "b", On: "y", To: "a"},
		},
	}.Build()
	require.NoError(t, err)
	assert.False(t, query.IsStronglyConnected(table))
}

func TestQueries_FollowHiddenEdges(t *testing.T) {
	table, err := domain.Definition{
		States:  []domain.State{"a", "b"},
		Inputs:  []domain.Input{"_debug"},
		Initial: "a",
		Transitions: []domain.Transition{
			{From: "a", On: "_debug", To: "b"},
		},
	}.Build()
	require.NoError(t, err)

	assert.True(t, query.HasPath(table, "a", "b"), "hidden inputs are normal edges for analysis")
}
