package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/pkg/domain"
)

// WriteDefinition writes a YAML machine definition into a temp dir and
// returns the file path. It fails the test immediately on error.
func WriteDefinition(t *testing.T, yaml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "machine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644), "Failed to write definition file")
	return path
}

// DoorDefinition returns the door machine used across the test suites:
// three states, a lockable closed position and no terminal states.
func DoorDefinition() domain.Definition {
	return domain.Definition{
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
	}
}
