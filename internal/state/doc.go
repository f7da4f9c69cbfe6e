// Package state holds the result of the dataset fetch.
//
// # Overview
//
// Fetching is the only asynchronous step in bookgrid. The fetch runs in a
// Bubble Tea command (or inline in headless mode) and reports into a Store;
// the UI reads a Snapshot when the fetch message arrives.
//
//	Fetch (tea.Cmd):              UI (Update):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchBooks()   │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	└────────────────┘  (mutex)   └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace the books, clear the error
//	store.Update(items, nil)
//
//	// Error: keep the previous books, record the error
//	store.Update(nil, err)
//
// Attempts counts every Update; Failures counts consecutive errors and resets
// on success. Snapshot.Failed is true when the latest attempt errored and no
// fetch has ever succeeded.
//
// # Copying
//
// Snapshot returns a copy of the book slice and wraps the error in a new
// value, so callers can never mutate stored state.
//
// The zero Store is ready to use.
package state
