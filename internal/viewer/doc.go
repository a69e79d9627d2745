// Package viewer runs the read → filter → render cycle behind every surface.
//
// Refresh is a pure function of its arguments and the file on disk: it reads
// the trailing window with logtail, narrows it with filter.Apply, and renders
// either the surviving lines joined verbatim, Placeholder, or a read failure.
// Failures never escape; they are returned as display text with an empty
// status and a classified *Error so callers can branch on Kind.
//
// Viewer adds a fixed, labelled catalog of sources on top of Refresh.
package viewer
