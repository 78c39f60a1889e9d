package runtime

import "github.com/aretw0/automat/pkg/domain"

// StateCallback observes entry into or exit from a state.
type StateCallback func(domain.State)

// TransitionCallback observes an executed transition.
type TransitionCallback func(from domain.State, input domain.Input, to domain.State)

type transitionKey struct {
	from domain.State
	on   domain.Input
	to   domain.State
}

// Registry holds the observers registered on an instance, partitioned by
// event kind. It is owned exclusively by one Instance; callbacks are opaque
// caller-supplied values and are never introspected or deduplicated.
// Removal by handle is not supported.
type Registry struct {
	entry      map[domain.State][]StateCallback
	exit       map[domain.State][]StateCallback
	transition map[transitionKey][]TransitionCallback

	anyEntry      []StateCallback
	anyExit       []StateCallback
	anyTransition []TransitionCallback
}

func newRegistry() *Registry {
	return &Registry{
		entry:      make(map[domain.State][]StateCallback),
		exit:       make(map[domain.State][]StateCallback),
		transition: make(map[transitionKey][]TransitionCallback),
	}
}

func (r *Registry) onStateEntry(s domain.State, cb StateCallback) {
	r.entry[s] = append(r.entry[s], cb)
}

func (r *Registry) onStateExit(s domain.State, cb StateCallback) {
	r.exit[s] = append(r.exit[s], cb)
}

func (r *Registry) onTransition(from domain.State, in domain.Input, to domain.State, cb TransitionCallback) {
	key := transitionKey{from: from, on: in, to: to}
	r.transition[key] = append(r.transition[key], cb)
}

func (r *Registry) onAnyStateEntry(cb StateCallback) {
	r.anyEntry = append(r.anyEntry, cb)
}

func (r *Registry) onAnyStateExit(cb StateCallback) {
	r.anyExit = append(r.anyExit, cb)
}

func (r *Registry) onAnyTransition(cb TransitionCallback) {
	r.anyTransition = append(r.anyTransition, cb)
}

// fire dispatches every observer for one executed transition, synchronously
// on the caller's goroutine. The order is a contract: exit before entry,
// specific before general, transition observers between exit and entry.
// Self-loops fire the full sequence.
func (r *Registry) fire(from domain.State, in domain.Input, to domain.State) {
	for _, cb := range r.exit[from] {
		cb(from)
	}
	for _, cb := range r.anyExit {
		cb(from)
	}
	for _, cb := range r.transition[transitionKey{from: from, on: in, to: to}] {
		cb(from, in, to)
	}
	for _, cb := range r.anyTransition {
		cb(from, in, to)
	}
	for _, cb := range r.entry[to] {
		cb(to)
	}
	for _, cb := range r.anyEntry {
		cb(to)
	}
}

// count returns the total number of registered observers across all kinds.
func (r *Registry) count() int {
	n := len(r.anyEntry) + len(r.anyExit) + len(r.anyTransition)
	for _, cbs := range r.entry {
		n += len(cbs)
	}
	for _, cbs := range r.exit {
		n += len(cbs)
	}
	for _, cbs := range r.transition {
		n += len(cbs)
	}
	return n
}

func (r *Registry) clear() {
	r.entry = make(map[domain.State][]StateCallback)
	r.exit = make(map[domain.State][]StateCallback)
	r.transition = make(map[transitionKey][]TransitionCallback)
	r.anyEntry = nil
	r.anyExit = nil
	r.anyTransition = nil
}
