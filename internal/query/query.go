// Package query implements read-only graph analysis over a transition table
// viewed as a directed multigraph: nodes are states, one edge per transition
// entry. Self-loops and parallel edges are allowed; hidden inputs are
// followed like any other edge. Queries never fail: an absent path is a
// valid result, not an error.
package query

import "github.com/aretw0/automat/pkg/domain"

// ReachableStates returns every state reachable from the given state by
// forward breadth-first traversal, including the state itself. Results are in
// discovery order, which is deterministic because edges are enumerated in
// declaration order. An unknown state yields nil.
func ReachableStates(t *domain.Table, from domain.State) []domain.State {
	if !t.HasState(from) {
		return nil
	}

	visited := map[domain.State]struct{}{from: {}}
	order := []domain.State{from}
	queue := []domain.State{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, edge := range t.Outgoing(current) {
			if _, seen := visited[edge.To]; seen {
				continue
			}
			visited[edge.To] = struct{}{}
			order = append(order, edge.To)
			queue = append(queue, edge.To)
		}
	}
	return order
}

// StatesLeadingTo returns every state from which the target is reachable,
// found by breadth-first traversal over the reverse graph. The target itself
// is included. An unknown state yields nil.
func StatesLeadingTo(t *domain.Table, target domain.State) []domain.State {
	if !t.HasState(target) {
		return nil
	}

	reverse := make(map[domain.State][]domain.State)
	for _, edge := range t.Transitions() {
		reverse[edge.To] = append(reverse[edge.To], edge.From)
	}

	visited := map[domain.State]struct{}{target: {}}
	order := []domain.State{target}
	queue := []domain.State{target}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, prev := range reverse[current] {
			if _, seen := visited[prev]; seen {
				continue
			}
			visited[prev] = struct{}{}
			order = append(order, prev)
			queue = append(queue, prev)
		}
	}
	return order
}

// HasPath reports whether to is reachable from from.
func HasPath(t *domain.Table, from, to domain.State) bool {
	for _, s := range ReachableStates(t, from) {
		if s == to {
			return true
		}
	}
	return false
}

// ShortestPath returns the state sequence from from to to inclusive with
// minimum edge count, or nil if to is unreachable. Ties among equal-length
// paths break by edge declaration order: the first-discovered path under BFS
// wins.
func ShortestPath(t *domain.Table, from, to domain.State) []domain.State {
	if !t.HasState(from) || !t.HasState(to) {
		return nil
	}
	if from == to {
		return []domain.State{from}
	}

	parent := make(map[domain.State]domain.State)
	visited := map[domain.State]struct{}{from: {}}
	queue := []domain.State{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, edge := range t.Outgoing(current) {
			if _, seen := visited[edge.To]; seen {
				continue
			}
			visited[edge.To] = struct{}{}
			parent[edge.To] = current
			if edge.To == to {
				return buildPath(parent, from, to)
			}
			queue = append(queue, edge.To)
		}
	}
	return nil
}

func buildPath(parent map[domain.State]domain.State, from, to domain.State) []domain.State {
	var reversed []domain.State
	for s := to; ; s = parent[s] {
		reversed = append(reversed, s)
		if s == from {
			break
		}
	}
	path := make([]domain.State, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// TerminalStates returns every state with zero outgoing edges, in declaration
// order.
func TerminalStates(t *domain.Table) []domain.State {
	var terminal []domain.State
	for _, s := range t.States() {
		if len(t.Outgoing(s)) == 0 {
			terminal = append(terminal, s)
		}
	}
	return terminal
}

// IsStronglyConnected reports whether every state can reach every other
// state. A single-state machine is strongly connected; a disconnected graph
// never is. Two BFS passes suffice: the full state set must be covered both
// forward and backward from one state.
func IsStronglyConnected(t *domain.Table) bool {
	states := t.States()
	if len(states) <= 1 {
		return true
	}
	if len(ReachableStates(t, states[0])) != len(states) {
		return false
	}
	return len(StatesLeadingTo(t, states[0])) == len(states)
}
