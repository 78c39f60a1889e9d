package domain

import "fmt"

// Definition is the declarative source for a Table. It is a plain value so it
// can be built in Go code, decoded from a schema document, or produced by any
// other definition mechanism. Build validates it and freezes it into a Table.
type Definition struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	States      []State      `json:"states" yaml:"states"`
	Inputs      []Input      `json:"inputs" yaml:"inputs"`
	Initial     State        `json:"initial" yaml:"initial"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

type transitionKey struct {
	from State
	on   Input
}

// Table is the immutable core entity: the validated state set, input set,
// initial state and deterministic (state, input) -> state mapping.
// Once built it is never mutated and is safe to share read-only across any
// number of concurrent readers and instances.
type Table struct {
	name        string
	states      []State
	inputs      []Input
	initial     State
	transitions []Transition
	edges       map[transitionKey]State
	outgoing    map[State][]Transition
	stateSet    map[State]struct{}
	inputSet    map[Input]struct{}
}

// Build validates the definition and constructs the immutable Table.
// It fails on empty state/input sets, duplicate declarations, an initial
// state outside the state set, transitions referencing undeclared states or
// inputs, and conflicting duplicate (state, input) entries. Exact duplicate
// entries (same target) are collapsed into one edge.
func (d Definition) Build() (*Table, error) {
	if len(d.States) == 0 {
		return nil, ErrNoStates
	}
	if len(d.Inputs) == 0 {
		return nil, ErrNoInputs
	}

	t := &Table{
		name:     d.Name,
		initial:  d.Initial,
		edges:    make(map[transitionKey]State, len(d.Transitions)),
		outgoing: make(map[State][]Transition, len(d.States)),
		stateSet: make(map[State]struct{}, len(d.States)),
		inputSet: make(map[Input]struct{}, len(d.Inputs)),
	}

	for _, s := range d.States {
		if _, dup := t.stateSet[s]; dup {
			return nil, fmt.Errorf("state %q declared twice", s)
		}
		t.stateSet[s] = struct{}{}
		t.states = append(t.states, s)
	}
	for _, in := range d.Inputs {
		if _, dup := t.inputSet[in]; dup {
			return nil, fmt.Errorf("input %q declared twice", in)
		}
		t.inputSet[in] = struct{}{}
		t.inputs = append(t.inputs, in)
	}

	if _, ok := t.stateSet[d.Initial]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInitialState, d.Initial)
	}

	for _, tr := range d.Transitions {
		if _, ok := t.stateSet[tr.From]; !ok {
			return nil, &UnknownStateError{State: tr.From}
		}
		if _, ok := t.stateSet[tr.To]; !ok {
			return nil, &UnknownStateError{State: tr.To}
		}
		if _, ok := t.inputSet[tr.On]; !ok {
			return nil, &UnknownInputError{Input: tr.On}
		}

		key := transitionKey{from: tr.From, on: tr.On}
		if existing, ok := t.edges[key]; ok {
			if existing != tr.To {
				return nil, &DuplicateTransitionError{State: tr.From, Input: tr.On}
			}
			continue // identical duplicate, collapse
		}
		t.edges[key] = tr.To
		t.transitions = append(t.transitions, tr)
		t.outgoing[tr.From] = append(t.outgoing[tr.From], tr)
	}

	return t, nil
}

// MustBuild is like Build but panics on validation failure. Intended for
// machine definitions embedded in program source, where a bad definition is a
// programming error.
func (d Definition) MustBuild() *Table {
	t, err := d.Build()
	if err != nil {
		panic(fmt.Sprintf("automat: invalid machine definition: %v", err))
	}
	return t
}

// Name returns the optional machine name.
func (t *Table) Name() string { return t.name }

// Initial returns the initial state.
func (t *Table) Initial() State { return t.initial }

// States returns the declared states in declaration order.
func (t *Table) States() []State {
	out := make([]State, len(t.states))
	copy(out, t.states)
	return out
}

// Inputs returns the declared inputs in declaration order.
func (t *Table) Inputs() []Input {
	out := make([]Input, len(t.inputs))
	copy(out, t.inputs)
	return out
}

// Transitions returns every edge in declaration order.
func (t *Table) Transitions() []Transition {
	out := make([]Transition, len(t.transitions))
	copy(out, t.transitions)
	return out
}

// HasState reports whether s is a member of the declared state set.
func (t *Table) HasState(s State) bool {
	_, ok := t.stateSet[s]
	return ok
}

// HasInput reports whether in is a member of the declared input set.
func (t *Table) HasInput(in Input) bool {
	_, ok := t.inputSet[in]
	return ok
}

// NextState answers the deterministic transition function: the mapped next
// state for (state, input) if an entry exists. Absence of a mapping is an
// expected, queryable condition, not a fault.
func (t *Table) NextState(s State, in Input) (State, bool) {
	next, ok := t.edges[transitionKey{from: s, on: in}]
	return next, ok
}

// CanAccept reports whether the input is accepted in the given state.
func (t *Table) CanAccept(s State, in Input) bool {
	_, ok := t.edges[transitionKey{from: s, on: in}]
	return ok
}

// ValidInputs returns every input accepted in the given state, in transition
// declaration order so iteration is deterministic.
func (t *Table) ValidInputs(s State) []Input {
	edges := t.outgoing[s]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Input, 0, len(edges))
	for _, tr := range edges {
		out = append(out, tr.On)
	}
	return out
}

// Outgoing returns the edges leaving the given state in declaration order.
func (t *Table) Outgoing(s State) []Transition {
	edges := t.outgoing[s]
	if len(edges) == 0 {
		return nil
	}
	out := make([]Transition, len(edges))
	copy(out, edges)
	return out
}
