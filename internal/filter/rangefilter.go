package filter

import (
	"strings"
	"time"
)

// Range is the effective date/time window built from the filter parameters.
type Range struct {
	format Format
	strict bool
	active bool

	start, end       time.Time
	hasStart, hasEnd bool
}

// NewRange builds the bounds for p under format f.
//
// The range is active as soon as either date is non-blank. A date without a
// time starts at midnight and ends one millisecond before the next midnight,
// so a date-only end bound covers the whole day. Time-of-day fields are only
// honoured for FormatPipe; FormatDateTime compares calendar dates. A date or
// time that fails to parse leaves that side unbounded.
//
// With strict set, a line without a parseable timestamp never passes an
// active range, even when both sides end up unbounded.
func NewRange(p Params, f Format, strict bool) Range {
	r := Range{format: f, strict: strict}
	startDate := strings.TrimSpace(p.StartDate)
	endDate := strings.TrimSpace(p.EndDate)
	if startDate == "" && endDate == "" {
		return r
	}
	r.active = true

	if startDate != "" {
		r.start, r.hasStart = startBound(startDate, p.StartTime, f)
	}
	if endDate != "" {
		r.end, r.hasEnd = endBound(endDate, p.EndTime, f)
	}
	return r
}

func startBound(date, clock string, f Format) (time.Time, bool) {
	if f == FormatPipe && strings.TrimSpace(clock) != "" {
		ts, err := CombineDateTime(date, clock)
		return ts, err == nil
	}
	d, err := ParseDate(date)
	return d, err == nil
}

func endBound(date, clock string, f Format) (time.Time, bool) {
	if f == FormatPipe && strings.TrimSpace(clock) != "" {
		ts, err := CombineDateTime(date, clock)
		return ts, err == nil
	}
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, false
	}
	return d.AddDate(0, 0, 1).Add(-time.Millisecond), true
}

// Active reports whether the range filters anything at all.
func (r Range) Active() bool {
	return r.active
}

// bounds returns the effective start and end; ok flags are false for an
// unbounded side.
func (r Range) bounds() (start time.Time, hasStart bool, end time.Time, hasEnd bool) {
	return r.start, r.hasStart, r.end, r.hasEnd
}

// Contains reports whether a line with timestamp ts (ok=false when it has
// none) survives the range.
func (r Range) Contains(ts time.Time, ok bool) bool {
	if !r.active {
		return true
	}
	if !ok {
		return !r.strict
	}
	if r.format == FormatDateTime {
		ts = day(ts)
		if r.hasStart && ts.Before(day(r.start)) {
			return false
		}
		if r.hasEnd && ts.After(day(r.end)) {
			return false
		}
		return true
	}
	if r.hasStart && ts.Before(r.start) {
		return false
	}
	if r.hasEnd && ts.After(r.end) {
		return false
	}
	return true
}

// Filter keeps the lines whose timestamp falls inside the range, in order.
func (r Range) Filter(lines []string) []string {
	if !r.active {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if r.Contains(Extract(line, r.format)) {
			out = append(out, line)
		}
	}
	return out
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
