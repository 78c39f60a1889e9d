// Package ports defines the driven-side interfaces of the toolkit, following
// the Hexagonal Architecture convention: the core depends on these
// interfaces, adapters implement them.
package ports

import (
	"context"

	"github.com/aretw0/automat/pkg/domain"
)

// SnapshotStore persists instance snapshots keyed by instance ID.
// This enables "stop and resume" automata: serialize the current state and
// history, restore them later against the same table.
type SnapshotStore interface {
	// Save persists the snapshot for a given instance ID.
	Save(ctx context.Context, id string, snap domain.Snapshot) error

	// Load retrieves the snapshot for a given instance ID.
	// Returns domain.ErrSnapshotNotFound if the instance does not exist.
	Load(ctx context.Context, id string) (domain.Snapshot, error)

	// Delete removes the snapshot for a given instance ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored snapshots.
	List(ctx context.Context) ([]string, error)
}
