// Package ledger holds the bill-splitting domain: friends and their balances,
// the session state that owns them, and the two forms that feed it.
//
// Allowed here:
// - state transitions (add, select, split) and their invariants
// - form logic that turns raw field text into friends and balance deltas
//
// Not allowed here:
// - rendering, key handling, or anything that imports bubbletea
// - sql; storage sits behind the Store interface
//
// MemoryStore is the in-process reference Store used by tests; the program
// itself stores friends through repository.FriendRepo.
package ledger
