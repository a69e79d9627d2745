package filter

import "fmt"

// ParseError reports a timestamp, date, time-of-day or format name that could
// not be parsed. The pipeline recovers from it locally; it never aborts a
// refresh.
type ParseError struct {
	Input  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Layout == "" {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q as %q: %v", e.Input, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
