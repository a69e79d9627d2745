package logtail

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d\n", i)
		content.WriteString(line)
		expectedAll = append(expectedAll, line)
	}
	logPath := writeLog(t, content.String())

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRead_PreservesTerminators(t *testing.T) {
	logPath := writeLog(t, "first\r\nsecond\nthird")

	got, err := Read(logPath, DefaultWindow)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{"first\r\n", "second\n", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %q, want %q", got, want)
	}
}

func TestRead_WindowKeepsOnlyTrailingLines(t *testing.T) {
	var content strings.Builder
	for i := 0; i < 1500; i++ {
		fmt.Fprintf(&content, "entry %04d\n", i)
	}
	logPath := writeLog(t, content.String())

	got, err := Read(logPath, DefaultWindow)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != DefaultWindow {
		t.Fatalf("len(Read()) = %d, want %d", len(got), DefaultWindow)
	}
	if got[0] != "entry 0500\n" {
		t.Fatalf("first line = %q, want %q", got[0], "entry 0500\n")
	}
	if got[len(got)-1] != "entry 1499\n" {
		t.Fatalf("last line = %q, want %q", got[len(got)-1], "entry 1499\n")
	}
}

func TestRead_EmptyFile(t *testing.T) {
	logPath := writeLog(t, "")

	got, err := Read(logPath, DefaultWindow)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read() = %q, want no lines", got)
	}
}

func TestRead_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.log")

	_, err := Read(missing, DefaultWindow)
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("Read() error = %v, want *ReadError", err)
	}
	if rerr.Path != missing {
		t.Fatalf("ReadError.Path = %q, want %q", rerr.Path, missing)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read() error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestRead_Directory(t *testing.T) {
	_, err := Read(t.TempDir(), DefaultWindow)
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("Read() error = %v, want *ReadError", err)
	}
}

func TestRead_InvalidUTF8(t *testing.T) {
	logPath := writeLog(t, "ok\n\xff\xfe broken\nok again\n")

	_, err := Read(logPath, DefaultWindow)
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("Read() error = %v, want ErrInvalidEncoding", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("Read() error = %q, want it to name line 2", err.Error())
	}
}
