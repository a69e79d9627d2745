// Package logtail reads the trailing window of a text log file.
//
// # Overview
//
// Every refresh of the viewer starts here: the file is opened, streamed once,
// and closed again before Read returns. Nothing is cached between calls, so a
// file that grows, shrinks or is replaced is always seen as it is on disk at
// the moment of the read.
//
// # Reading Log Files
//
// Read keeps a ring buffer of maxLines entries while scanning:
//
//  1. Allocate a ring buffer of size maxLines.
//  2. For each line in the file, validate it as UTF-8, store it at the
//     current index and advance the index, wrapping at maxLines.
//  3. If fewer than maxLines were seen, return them in order.
//  4. Otherwise return the buffer starting at the oldest entry.
//
// Memory use is O(maxLines) regardless of file size. A non-positive maxLines
// disables the bound and returns the whole file.
//
// Lines are returned verbatim, including their "\n" or "\r\n" terminator, so
// that joining them reproduces the original text byte for byte. A final line
// without a terminator is returned without one.
//
// Example usage:
//
//	lines, err := logtail.Read("/var/log/app.log", logtail.DefaultWindow)
//	if err != nil {
//		var rerr *logtail.ReadError
//		errors.As(err, &rerr)
//	}
//
// # Error Handling
//
// Every failure is reported as a *ReadError carrying the path and the cause:
//
//   - The file does not exist or cannot be opened
//   - An I/O error while streaming
//   - A line that is not valid UTF-8 (wraps ErrInvalidEncoding)
//
// The message of a ReadError is the message of its cause, which is what the
// viewer shows to the user.
package logtail
