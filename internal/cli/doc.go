// Package cli implements the graphinsight command-line interface.
//
// Every command takes a document path or "-" for stdin, validates it with
// pkg/io and reports parse failures as "Invalid JSON format" and shape
// failures as "Invalid graph data structure":
//   - validate: check a document against the flat graph or tree shape
//   - convert, flatten: emit render-ready JSON
//   - stats: summarize structure in a table
//   - sample: list or print the built-in documents
//   - explore: browse nodes in a terminal UI
//
// Defaults come from $XDG_CONFIG_HOME/graphinsight/config.toml; flags win.
package cli
