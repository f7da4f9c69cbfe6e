// Package grid implements the table-state engine behind bookgrid.
//
// # Overview
//
// The engine turns a canonical slice of records into the handful of rows a
// renderer shows. It is a pure, synchronous pipeline:
//
//	canonical rows
//	      │
//	      ├─> working rows     (canonical order, or a sorted copy)
//	      ├─> Filter(query)    (literal, case-insensitive substring)
//	      ├─> Paginate(size)   (fixed-size consecutive pages)
//	      └─> pages[current]   (the visible slice)
//
// Every Controller mutation re-runs the pipeline from the top and hands the
// result to a Renderer as a View. Nothing derived is cached between
// mutations, so a View is always a function of the current state plus the
// canonical rows.
//
// # Components
//
//   - record.go: Record, value formatting, and the falsy rule
//   - match.go: Matches (query matcher) and Filter (row filter)
//   - paginate.go: Paginate and Pager (current page tracking)
//   - sort.go: Order, SortState, CompareBy and SortRows
//   - controller.go: Controller, the table state machine
//
// # Sorting
//
// Sort state per column advances on repeated activation of the same column:
//
//	unsorted ──> asc ──> desc ──> unsorted
//
// Activating a different column jumps straight to asc. Descending order is
// the reverse of a stable ascending sort, not a descending comparator, so
// ties come out in reverse canonical order. Returning to unsorted restores
// canonical order exactly; the canonical slice is never sorted in place.
//
// # Concurrency
//
// A Controller is not safe for concurrent use. It is driven from a single
// event loop (the Bubble Tea update loop, or a headless command) and never
// blocks.
package grid
