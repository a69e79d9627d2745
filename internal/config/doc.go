// Package config loads the tailview configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tailview/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Listen address: 0.0.0.0:8050
//   - Refresh interval: 5000 ms
//   - Window: 1000 lines
//   - Log level: info
//   - File watching: enabled
//   - Sources: a single "app" source reading ./app.log
//
// # TOML Format
//
//	listen = "0.0.0.0:8050"
//	refresh_ms = 5000
//	window = 1000
//	log_level = "info"
//	watch = true
//
//	[[sources]]
//	label = "app"
//	path = "~/logs/app.log"
//	format = "datetime"   # datetime | pipe
//	strict = true
//
//	[[sources]]
//	label_prefix = "svc:"
//	glob = "/var/log/svc/**/*.log"
//	format = "pipe"
//
// A glob entry expands into one source per matching file, labelled with
// label_prefix plus the file name. Globs are expanded when sources are
// resolved, so files created later are not picked up until restart.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// ResolveSources returns errors for unknown timestamp formats, entries with
// neither path nor glob, and configurations in which no file matched.
package config
