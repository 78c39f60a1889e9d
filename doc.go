/*
Package automat is a deterministic finite-state machine toolkit: declare a
transition table once, then run it, query it and document it.

The table is the single source of truth. A Definition lists states, inputs
and (from, on, to) transitions; Build validates it and returns an immutable
Table. Determinism is enforced at construction: at most one target state per
(state, input) pair, and a conflicting duplicate is a build error, never a
runtime surprise.

A Machine binds a Table to mutable runtime state: the current state, a
bounded FIFO history of executed transitions, and a callback registry with
six observer kinds (specific and catch-all entry, exit and transition).
Callbacks fire synchronously after a transition commits, in a fixed order:
specific exit, any exit, specific transition, any transition, specific
entry, any entry.

Inputs whose name starts with an underscore are hidden: fully functional at
runtime but omitted from generated documentation and diagrams.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/automat"
		"github.com/aretw0/automat/pkg/domain"
	)

	func main() {
		m, err := automat.New(domain.Definition{
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
		})
		if err != nil {
			log.Fatal(err)
		}

		m.OnAnyTransition(func(from domain.State, input domain.Input, to domain.State) {
			fmt.Printf("%s --%s--> %s\n", from, input, to)
		})

		if _, err := m.Transition("open_door"); err != nil {
			log.Fatal(err)
		}
		fmt.Println(m.CurrentState()) // open

		// Graph queries and documentation work on the immutable table.
		fmt.Println(automat.ShortestPath(m.Table(), "open", "locked"))
		fmt.Print(automat.Mermaid(m.Table()))
	}

Definitions can also be loaded from YAML files with Load, persisted and
restored through pkg/adapters, and served over HTTP; see the cmd/automat
CLI.
*/
package automat
