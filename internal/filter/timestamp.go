package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format selects how a timestamp is embedded at the start of a log line.
type Format int

const (
	// FormatDateTime expects "YYYY-MM-DD HH:MM:SS" in the first 19 characters.
	FormatDateTime Format = iota
	// FormatPipe expects "YYYY-MM-DD HH:MM:SS.ffffff" before the first " | ".
	FormatPipe
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	pipeLayout     = "2006-01-02 15:04:05.999999"
	pipeSeparator  = " | "

	dateTimeWidth = len(dateTimeLayout)
	maxFracDigits = 6
)

var errFraction = errors.New("expected 1 to 6 fractional digits")

func (f Format) String() string {
	switch f {
	case FormatDateTime:
		return "datetime"
	case FormatPipe:
		return "pipe"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a configuration name to a Format. An empty name selects
// FormatDateTime.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "datetime", "a":
		return FormatDateTime, nil
	case "pipe", "b":
		return FormatPipe, nil
	default:
		return 0, &ParseError{Input: name, Err: errors.New("unknown timestamp format (want datetime or pipe)")}
	}
}

// Extract returns the timestamp embedded at the start of line. The second
// result is false when the line carries no parseable timestamp.
func Extract(line string, f Format) (ts time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			ts, ok = time.Time{}, false
		}
	}()

	var err error
	switch f {
	case FormatDateTime:
		ts, err = parseDateTimePrefix(line)
	case FormatPipe:
		head, _, _ := strings.Cut(line, pipeSeparator)
		ts, err = parsePipeTimestamp(head)
	default:
		return time.Time{}, false
	}
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func parseDateTimePrefix(line string) (time.Time, error) {
	if len(line) < dateTimeWidth {
		return time.Time{}, &ParseError{Input: line, Layout: dateTimeLayout, Err: errors.New("line too short")}
	}
	prefix := line[:dateTimeWidth]
	ts, err := time.Parse(dateTimeLayout, prefix)
	if err != nil {
		return time.Time{}, &ParseError{Input: prefix, Layout: dateTimeLayout, Err: err}
	}
	return ts, nil
}

func parsePipeTimestamp(head string) (time.Time, error) {
	// time.Parse treats the fraction as optional and unbounded; the pipe
	// format requires one to six digits.
	frac := len(head) - dateTimeWidth - 1
	if frac < 1 || frac > maxFracDigits || head[dateTimeWidth] != '.' {
		return time.Time{}, &ParseError{Input: head, Layout: pipeLayout, Err: errFraction}
	}
	ts, err := time.Parse(pipeLayout, head)
	if err != nil {
		return time.Time{}, &ParseError{Input: head, Layout: pipeLayout, Err: err}
	}
	return ts, nil
}

// ParseDate parses a "YYYY-MM-DD" date. A trailing "T..." time component, as
// sent by some date pickers, is ignored.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		s = s[:len(dateLayout)]
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Layout: dateLayout, Err: err}
	}
	return d, nil
}

// CombineDateTime joins a date and an "HH:MM:SS" time of day into a single
// instant at second precision.
func CombineDateTime(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	combined := d.Format(dateLayout) + " " + strings.TrimSpace(clock)
	ts, err := time.Parse(dateTimeLayout, combined)
	if err != nil {
		return time.Time{}, &ParseError{Input: combined, Layout: dateTimeLayout, Err: err}
	}
	return ts, nil
}
