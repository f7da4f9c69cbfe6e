// Package config loads bookgrid's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookgrid/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Missing or blank fields keep their defaults
//
// # TOML Format
//
//	source = "https://skookum-test-api.herokuapp.com/api/v1/books"
//	page_size = 10
//	request_timeout = "0s"   # 0 means no timeout
//	user_agent = "bookgrid/0.1"
//	log_file = "~/.local/state/bookgrid/bookgrid.log"
//
//	[[columns]]
//	key = "title"
//	label = "Title"
//
//	[[columns]]
//	key = "isbn"
//	label = "ISBN"
//	sortable = false
//
// source may be an http(s) URL or a local JSON/JSONC file path. When no
// columns are configured, the four book columns are used. Columns are
// sortable unless sortable = false.
//
// # Error Handling
//
// Missing config files are not an error. Malformed TOML, bad durations and
// invalid column tables return "parse config: ..." errors, which are fatal
// at startup.
package config
