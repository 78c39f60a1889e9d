// Package runtime implements the mutable half of the toolkit: the instance
// that owns a current state, a bounded history ring buffer and a callback
// registry, and drives transitions through the immutable table.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/automat/internal/logging"
	"github.com/aretw0/automat/pkg/domain"
)

// DefaultMaxHistory is the history ring capacity used when none is given.
const DefaultMaxHistory = 512

// Instance is a runtime automaton bound to one immutable Table.
//
// An Instance is designed for exclusive ownership by one logical owner at a
// time. Calling Transition concurrently from multiple goroutines without
// external synchronization is a misuse and its behavior is undefined. The
// underlying Table is immutable and may be shared freely across instances.
type Instance struct {
	table    *domain.Table
	current  domain.State
	history  *ring
	registry *Registry
	logger   *slog.Logger
}

// Option configures an Instance at construction time.
type Option func(*Instance)

// WithMaxHistory sets the history ring capacity. Capacity 0 disables history
// tracking entirely; it is not an error.
func WithMaxHistory(capacity int) Option {
	return func(i *Instance) {
		i.history = newRing(capacity)
	}
}

// WithLogger sets a structured logger for transition debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Instance) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewInstance constructs an instance positioned at the table's initial state
// with empty history.
func NewInstance(table *domain.Table, opts ...Option) *Instance {
	inst := &Instance{
		table:    table,
		current:  table.Initial(),
		history:  newRing(DefaultMaxHistory),
		registry: newRegistry(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Table returns the immutable transition table this instance is bound to.
func (i *Instance) Table() *domain.Table { return i.table }

// CurrentState returns the current state without side effects.
func (i *Instance) CurrentState() domain.State { return i.current }

// ValidInputs returns every input accepted in the current state, in
// declaration order.
func (i *Instance) ValidInputs() []domain.Input {
	return i.table.ValidInputs(i.current)
}

// CanAccept reports whether the input is accepted in the current state.
func (i *Instance) CanAccept(in domain.Input) bool {
	return i.table.CanAccept(i.current, in)
}

// Transition applies an input to the current state.
//
// On success the new state is committed and a history entry recorded before
// any callback runs; callbacks then fire synchronously in the contract order
// (specific exit, any exit, specific transition, any transition, specific
// entry, any entry). A panicking callback propagates to the caller and may
// skip the remaining observers, but it can never roll back the committed
// state or history.
//
// An input not accepted in the current state returns
// *domain.InvalidTransitionError, leaves the instance untouched and fires
// nothing. This is an expected, recoverable condition.
func (i *Instance) Transition(in domain.Input) (domain.State, error) {
	next, ok := i.table.NextState(i.current, in)
	if !ok {
		i.logger.Debug("input rejected", "state", i.current, "input", in)
		return i.current, &domain.InvalidTransitionError{State: i.current, Input: in}
	}

	from := i.current
	i.current = next
	i.history.push(domain.HistoryEntry{From: from, Input: in, To: next})
	i.logger.Debug("transition", "from", from, "input", in, "to", next)

	i.registry.fire(from, in, next)
	return next, nil
}

// Reset moves the instance back to the table's initial state by direct
// assignment. It is not a transition: no callbacks fire, no history entry is
// recorded, and existing history and callbacks are retained. Callers that
// want an observable reset should model it as a dedicated input.
func (i *Instance) Reset() {
	i.current = i.table.Initial()
}

// History returns the retained transition history, oldest first.
func (i *Instance) History() []domain.HistoryEntry {
	return i.history.entries()
}

// HistoryLen returns the number of retained history entries.
func (i *Instance) HistoryLen() int { return i.history.len() }

// HistoryIsEmpty reports whether no history is retained.
func (i *Instance) HistoryIsEmpty() bool { return i.history.len() == 0 }

// MaxHistorySize returns the history ring capacity.
func (i *Instance) MaxHistorySize() int { return i.history.capacity() }

// OnStateEntry registers an observer for entry into a specific state.
func (i *Instance) OnStateEntry(s domain.State, cb StateCallback) {
	i.registry.onStateEntry(s, cb)
}

// OnStateExit registers an observer for exit from a specific state.
func (i *Instance) OnStateExit(s domain.State, cb StateCallback) {
	i.registry.onStateExit(s, cb)
}

// OnTransition registers an observer for one specific (from, input, to) edge.
func (i *Instance) OnTransition(from domain.State, in domain.Input, to domain.State, cb TransitionCallback) {
	i.registry.onTransition(from, in, to, cb)
}

// OnAnyStateEntry registers an observer for entry into any state.
func (i *Instance) OnAnyStateEntry(cb StateCallback) {
	i.registry.onAnyStateEntry(cb)
}

// OnAnyStateExit registers an observer for exit from any state.
func (i *Instance) OnAnyStateExit(cb StateCallback) {
	i.registry.onAnyStateExit(cb)
}

// OnAnyTransition registers an observer for every transition.
func (i *Instance) OnAnyTransition(cb TransitionCallback) {
	i.registry.onAnyTransition(cb)
}

// CallbackCount returns the total number of registered observers.
func (i *Instance) CallbackCount() int { return i.registry.count() }

// ClearCallbacks removes every registered observer. Current state and history
// are unaffected.
func (i *Instance) ClearCallbacks() { i.registry.clear() }

// Snapshot captures the instance for persistence. Identifiers round-trip
// exactly, so the snapshot can be restored against the same table.
func (i *Instance) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Machine: i.table.Name(),
		Current: i.current,
		History: i.history.entries(),
	}
}

// Restore positions the instance at the snapshot's state and replaces its
// history with the snapshot's trail (truncated to the ring capacity, newest
// kept). Every identifier is validated against the table; a snapshot taken
// from a different machine is rejected without modifying the instance.
func (i *Instance) Restore(snap domain.Snapshot) error {
	if !i.table.HasState(snap.Current) {
		return fmt.Errorf("restore: %w", &domain.UnknownStateError{State: snap.Current})
	}
	for _, e := range snap.History {
		if !i.table.HasState(e.From) {
			return fmt.Errorf("restore: %w", &domain.UnknownStateError{State: e.From})
		}
		if !i.table.HasState(e.To) {
			return fmt.Errorf("restore: %w", &domain.UnknownStateError{State: e.To})
		}
		if !i.table.HasInput(e.Input) {
			return fmt.Errorf("restore: %w", &domain.UnknownInputError{Input: e.Input})
		}
	}

	i.current = snap.Current
	i.history = newRing(i.history.capacity())
	for _, e := range snap.History {
		i.history.push(e)
	}
	return nil
}
