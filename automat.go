package automat

import (
	"log/slog"

	"github.com/aretw0/automat/internal/docgen"
	"github.com/aretw0/automat/internal/query"
	"github.com/aretw0/automat/internal/runtime"
	"github.com/aretw0/automat/pkg/domain"
	"github.com/aretw0/automat/pkg/schema"
)

// Version is the library version, reported by the CLI.
const Version = "0.1.0"

// DefaultMaxHistory is the history ring capacity used when none is given.
const DefaultMaxHistory = runtime.DefaultMaxHistory

// StateCallback observes state entry or exit.
type StateCallback = runtime.StateCallback

// TransitionCallback observes an executed transition.
type TransitionCallback = runtime.TransitionCallback

// Machine is the high-level entry point for the library. It binds a validated
// transition table to a runtime instance and exposes graph queries and
// documentation for the underlying table.
type Machine struct {
	*runtime.Instance
}

// Option configures a Machine at construction time.
type Option func(*options)

type options struct {
	runtimeOpts []runtime.Option
}

// WithMaxHistory sets the history ring capacity. Capacity 0 disables history
// tracking.
func WithMaxHistory(capacity int) Option {
	return func(o *options) {
		o.runtimeOpts = append(o.runtimeOpts, runtime.WithMaxHistory(capacity))
	}
}

// WithLogger sets a structured logger for transition debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.runtimeOpts = append(o.runtimeOpts, runtime.WithLogger(logger))
	}
}

// New validates the definition and returns a machine positioned at the
// initial state.
func New(def domain.Definition, opts ...Option) (*Machine, error) {
	table, err := def.Build()
	if err != nil {
		return nil, err
	}
	return FromTable(table, opts...), nil
}

// FromTable returns a machine bound to an already-built table. Tables are
// immutable and may back any number of machines.
func FromTable(table *domain.Table, opts ...Option) *Machine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Machine{Instance: runtime.NewInstance(table, o.runtimeOpts...)}
}

// Load reads a YAML definition file, validates it and returns a machine.
func Load(path string, opts ...Option) (*Machine, error) {
	table, err := schema.LoadTable(path)
	if err != nil {
		return nil, err
	}
	return FromTable(table, opts...), nil
}

// Reachable returns every state reachable from the current state, including
// the current state itself.
func (m *Machine) Reachable() []domain.State {
	return query.ReachableStates(m.Table(), m.CurrentState())
}

// PathTo returns a shortest input-path from the current state to the target,
// or nil when the target cannot be reached.
func (m *Machine) PathTo(to domain.State) []domain.State {
	return query.ShortestPath(m.Table(), m.CurrentState(), to)
}

// -- Graph queries over a table --

// ReachableStates returns every state reachable from the origin via directed
// edges, origin included.
func ReachableStates(t *domain.Table, from domain.State) []domain.State {
	return query.ReachableStates(t, from)
}

// StatesLeadingTo returns every state from which the target is reachable,
// target included.
func StatesLeadingTo(t *domain.Table, to domain.State) []domain.State {
	return query.StatesLeadingTo(t, to)
}

// HasPath reports whether a directed path exists between two states.
func HasPath(t *domain.Table, from, to domain.State) bool {
	return query.HasPath(t, from, to)
}

// ShortestPath returns a minimal-hop state sequence from one state to
// another, or nil when none exists.
func ShortestPath(t *domain.Table, from, to domain.State) []domain.State {
	return query.ShortestPath(t, from, to)
}

// TerminalStates returns the states with no outgoing transitions, in
// declaration order.
func TerminalStates(t *domain.Table) []domain.State {
	return query.TerminalStates(t)
}

// IsStronglyConnected reports whether every state can reach every other
// state.
func IsStronglyConnected(t *domain.Table) bool {
	return query.IsStronglyConnected(t)
}

// -- Documentation --

// Mermaid renders the table as a Mermaid state diagram. Hidden inputs are
// omitted.
func Mermaid(t *domain.Table) string { return docgen.Mermaid(t) }

// TransitionTable renders the table as a Markdown transition table. Hidden
// inputs are omitted.
func TransitionTable(t *domain.Table) string { return docgen.TransitionTable(t) }

// Stats computes summary statistics for the table.
func Stats(t *domain.Table) domain.Statistics { return docgen.Statistics(t) }

// Documentation renders the complete Markdown documentation: statistics,
// transition table and diagram.
func Documentation(t *domain.Table) string { return docgen.FullDocumentation(t) }
