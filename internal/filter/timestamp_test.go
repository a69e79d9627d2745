package filter

import (
	"errors"
	"testing"
	"time"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		format Format
		want   time.Time
		ok     bool
	}{
		{
			name:   "datetime prefix",
			line:   "2024-01-02 09:30:15 INFO ready\n",
			format: FormatDateTime,
			want:   time.Date(2024, 1, 2, 9, 30, 15, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "datetime exactly 19 chars",
			line:   "2024-01-02 09:30:15",
			format: FormatDateTime,
			want:   time.Date(2024, 1, 2, 9, 30, 15, 0, time.UTC),
			ok:     true,
		},
		{
			name:   "datetime short line",
			line:   "2024-01-02\n",
			format: FormatDateTime,
		},
		{
			name:   "datetime invalid calendar date",
			line:   "2024-02-30 09:30:15 INFO\n",
			format: FormatDateTime,
		},
		{
			name:   "datetime non numeric",
			line:   "Traceback (most recent call last):\n",
			format: FormatDateTime,
		},
		{
			name:   "pipe microseconds",
			line:   "2024-01-02 09:00:00.123456 | ERROR fail\n",
			format: FormatPipe,
			want:   time.Date(2024, 1, 2, 9, 0, 0, 123456000, time.UTC),
			ok:     true,
		},
		{
			name:   "pipe short fraction",
			line:   "2024-01-02 09:00:00.5 | INFO\n",
			format: FormatPipe,
			want:   time.Date(2024, 1, 2, 9, 0, 0, 500000000, time.UTC),
			ok:     true,
		},
		{
			name:   "pipe missing fraction",
			line:   "2024-01-02 09:00:00 | INFO\n",
			format: FormatPipe,
		},
		{
			name:   "pipe too many fraction digits",
			line:   "2024-01-02 09:00:00.1234567 | INFO\n",
			format: FormatPipe,
		},
		{
			name:   "pipe without separator",
			line:   "2024-01-02 09:00:00.000000 INFO\n",
			format: FormatPipe,
		},
		{
			name:   "pipe splits on first separator",
			line:   "2024-01-02 09:00:00.000001 | a | b\n",
			format: FormatPipe,
			want:   time.Date(2024, 1, 2, 9, 0, 0, 1000, time.UTC),
			ok:     true,
		},
		{
			name:   "datetime line under pipe format",
			line:   "2024-01-02 09:30:15 INFO ready\n",
			format: FormatPipe,
		},
		{
			name:   "unknown format",
			line:   "2024-01-02 09:30:15 INFO ready\n",
			format: Format(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.line, tt.format)
			if ok != tt.ok {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatDateTime},
		{"datetime", FormatDateTime},
		{" A ", FormatDateTime},
		{"pipe", FormatPipe},
		{"B", FormatPipe},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	_, err := ParseFormat("syslog")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseFormat(syslog) error = %v, want *ParseError", err)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-04T00:00:00")
	if err != nil {
		t.Fatalf("ParseDate error = %v", err)
	}
	if want := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("03/04/2024"); err == nil {
		t.Fatalf("ParseDate(03/04/2024) returned nil error")
	}
}

func TestCombineDateTime(t *testing.T) {
	got, err := CombineDateTime("2024-03-04", " 13:14:15 ")
	if err != nil {
		t.Fatalf("CombineDateTime error = %v", err)
	}
	if want := time.Date(2024, 3, 4, 13, 14, 15, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("CombineDateTime = %v, want %v", got, want)
	}

	for _, clock := range []string{"13:14", "25:00:00", "noon"} {
		_, err := CombineDateTime("2024-03-04", clock)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("CombineDateTime(%q) error = %v, want *ParseError", clock, err)
		}
	}
}
