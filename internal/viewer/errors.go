package viewer

import (
	"errors"
	"fmt"

	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/logtail"
)

// Kind classifies refresh failures.
type Kind int

const (
	// KindNone means no failure.
	KindNone Kind = iota
	// KindRead covers a log source that could not be opened, read or decoded.
	KindRead
	// KindParse covers timestamps, dates or times that failed to parse.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return ""
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a classified refresh failure.
type Error struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Unrecognised errors are treated as read failures,
// since anything that stops a refresh stops it before filtering.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind
	}
	var perr *filter.ParseError
	if errors.As(err, &perr) {
		return KindParse
	}
	var rerr *logtail.ReadError
	if errors.As(err, &rerr) {
		return KindRead
	}
	return KindRead
}
