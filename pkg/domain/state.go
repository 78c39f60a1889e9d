package domain

import "strings"

// State identifies a node in the automaton's finite state set.
// Values are opaque identifiers; membership in a machine's state set is
// validated when the Table is built.
type State string

// Input identifies an edge label that triggers a transition attempt.
type Input string

// Hidden reports whether the input is excluded from generated documentation.
// Inputs whose identifier starts with an underscore are functionally normal
// but do not appear in diagrams or transition tables.
func (i Input) Hidden() bool {
	return strings.HasPrefix(string(i), "_")
}

// Transition defines a rule to move from one state to another on an input.
type Transition struct {
	From State `json:"from" yaml:"from"`
	On   Input `json:"on" yaml:"on"`
	To   State `json:"to" yaml:"to"`
}
