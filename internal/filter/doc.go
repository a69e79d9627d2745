// Package filter narrows a window of log lines by text and by timestamp.
//
// The pipeline is two conjunctive stages applied in order:
//
//  1. MatchText: substring containment, case-insensitive unless requested
//  2. Range.Filter: keeps lines whose leading timestamp is within bounds
//
// Timestamps are never stored; Extract re-parses them on every pass. Two
// layouts are understood (see Format). Parse problems are recovered locally:
// a line without a timestamp is simply a line without a timestamp, and a bad
// date or time in the parameters leaves that bound open.
package filter
