// Package ui provides the Bubble Tea terminal interface for bookgrid.
//
// # Screens
//
// The model moves through three screens:
//
//   - Loading: a spinner while Options.Load fetches the dataset
//   - Error: the failure message and "press r to retry", which runs the
//     whole load again
//   - Table: the paged, filterable, sortable book table
//
// # Rendering
//
// All table state lives in a grid.Controller. The model owns a tableView
// that implements grid.Renderer; each controller operation pushes a fresh
// grid.View into it and Model.View draws from the latest one. The table is
// drawn with lipgloss/table, cells are truncated with x/ansi, and the column
// under the cursor is highlighted.
//
// Header labels carry a sort indicator: ▲ ascending, ▼ descending, ⇅
// sortable but unsorted. Columns that cannot be sorted have none.
//
// # Key Bindings
//
//   - /: focus search; every keystroke refilters, enter keeps, esc clears
//   - ←/→ or h/l: move the column cursor
//   - s or enter: cycle the sort on the cursor column
//   - 1-9: cycle the sort on column N
//   - g/home, [/pgup/p, ]/pgdown/n, G/end: first, previous, next, last page
//   - T: cycle theme (saved to prefs)
//   - ?: full help
//   - q or ctrl+c: quit
//
// # Themes
//
// Dracula (default) and Slate. Unknown names fall back to Dracula.
package ui
