// Package app is bookgrid's composition root.
//
// # Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read ~/.config/bookgrid/config.toml
//	       ├─────> books.NewSource()  HTTP client or local file
//	       ├─────> state.Store{}      Holds the fetch result
//	       │
//	       ├─ TUI ──────> ui.Run()    Loading, error/retry, table
//	       │               └─> Refresh() on start and on every retry
//	       │
//	       └─ headless ─> Refresh() once
//	                      grid.Controller + export.Printer
//	                      query, sort, page applied, one page printed
//
// Headless mode is selected by Options.Headless or a non-empty Format.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Invalid config, log file or sort arguments
//   - Unknown output format
//   - Fetch failure in headless mode
//
// Recoverable:
//   - Fetch failure in the TUI, shown on the error screen with retry
//   - Unreadable prefs, replaced by defaults and logged
//
// Every fetch failure is logged at error level by Refresh.
//
// # Logging
//
// Logs go to Options.Logger when set, else to the --log-output or log_file
// path as JSON. Headless runs without a log file write warnings to stderr;
// the TUI otherwise discards logs.
package app
