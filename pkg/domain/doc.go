/*
Package domain contains the core domain models for the automat toolkit.

It defines the fundamental entities of a deterministic finite-state machine:
States, Inputs, the immutable transition Table, and the Snapshot/HistoryEntry
records used for persistence. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - State / Input: Closed-set identifiers, validated at table construction.
  - Transition: A (from, input) -> to rule.
  - Table: The immutable, validated transition table; the single source of
    truth for every runtime instance, query, and documentation consumer.
  - Snapshot: A serializable capture of an instance (current state + history).
*/
package domain
