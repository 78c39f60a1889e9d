package domain

// HistoryEntry records one executed transition. Entries are created only as a
// side effect of a successful transition.
type HistoryEntry struct {
	From  State `json:"from" yaml:"from"`
	Input Input `json:"input" yaml:"input"`
	To    State `json:"to" yaml:"to"`
}

// Snapshot is a serializable capture of a runtime instance: the machine name,
// its current state and the retained transition history, oldest first.
// State and Input identifiers round-trip exactly, so a snapshot can be
// persisted in any encoding and restored against the same Table.
type Snapshot struct {
	Machine string         `json:"machine,omitempty" yaml:"machine,omitempty"`
	Current State          `json:"current" yaml:"current"`
	History []HistoryEntry `json:"history,omitempty" yaml:"history,omitempty"`
}
