// Package app is the composition root of tailview.
//
// It loads the configuration, applies command-line overrides, resolves the
// log sources and hands a shared viewer.Viewer to one of the surfaces:
//
//   - Serve: the browser page (internal/server), optionally with file
//     watching (internal/watch)
//   - RunTUI: the terminal viewer (internal/tui)
//   - Once and Follow: plain refreshes written to stdout, status to stderr
//   - Sources: the resolved source catalog
//
// Follow uses Poll, which refreshes at the configured interval whether or
// not the previous refresh could read the file, so a log that reappears is
// picked up on the next tick.
//
// Configuration errors are fatal and returned. Errors while reading a log
// file are display content and never end a run.
package app
