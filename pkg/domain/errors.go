package domain

import (
	"errors"
	"fmt"
)

// Construction-time faults. A Table that fails validation never comes into
// existence, so these are only ever seen by the definition author.
var (
	// ErrNoStates is returned when a definition declares no states.
	ErrNoStates = errors.New("definition declares no states")

	// ErrNoInputs is returned when a definition declares no inputs.
	ErrNoInputs = errors.New("definition declares no inputs")

	// ErrInvalidInitialState is returned when the initial state is not a member
	// of the declared state set.
	ErrInvalidInitialState = errors.New("initial state is not a declared state")
)

// ErrSnapshotNotFound is returned by snapshot stores when an instance ID
// cannot be found.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// DuplicateTransitionError reports two transition entries that map the same
// (state, input) pair to different targets. This violates the determinism
// guarantee and is fatal at construction time.
type DuplicateTransitionError struct {
	State State
	Input Input
}

func (e *DuplicateTransitionError) Error() string {
	return fmt.Sprintf("duplicate transition: state %q already maps input %q to a different target", e.State, e.Input)
}

// UnknownStateError reports a transition entry referencing a state outside the
// declared state set.
type UnknownStateError struct {
	State State
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("transition references undeclared state %q", e.State)
}

// UnknownInputError reports a transition entry referencing an input outside
// the declared input set.
type UnknownInputError struct {
	Input Input
}

func (e *UnknownInputError) Error() string {
	return fmt.Sprintf("transition references undeclared input %q", e.Input)
}

// InvalidTransitionError is the runtime result of feeding an instance an input
// that is not accepted in its current state. It is expected during normal use
// and never alters instance state.
type InvalidTransitionError struct {
	State State
	Input Input
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: input %q is not accepted in state %q", e.Input, e.State)
}
