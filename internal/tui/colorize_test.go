package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		level string
	}{
		{"error", "2024-01-02 09:00:00 ERROR fail", "ERROR"},
		{"warning", "2024-01-02 09:00:00 | WARNING disk", "WARNING"},
		{"warn", "WARN low memory", "WARN"},
		{"first wins", "INFO retry after ERROR", "INFO"},
		{"debug", "x DEBUG y", "DEBUG"},
		{"embedded word", "ERRORS are not levels", ""},
		{"lowercase", "error lowercase", ""},
		{"none", "plain line", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := levelOf(tt.line)
			got := ""
			if ok {
				got = tt.line[start:end]
			}
			if got != tt.level {
				t.Fatalf("levelOf(%q) = %q, want %q", tt.line, got, tt.level)
			}
		})
	}
}

func TestColorize_KeepsText(t *testing.T) {
	s := newStyles()
	text := "a INFO one\r\nb ERROR two\nplain\n"

	out := s.colorize(text)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("colorize produced %d lines, want 3: %q", len(lines), out)
	}
	for i, want := range []string{"INFO", "ERROR", "plain"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
		if strings.Contains(lines[i], "\r") {
			t.Fatalf("line %d kept carriage return: %q", i, lines[i])
		}
	}
	if lines[2] != "plain" {
		t.Fatalf("plain line changed: %q", lines[2])
	}
}

func TestNewStyles_LevelColors(t *testing.T) {
	s := newStyles()
	tests := map[string]string{
		"ERROR":   palette.Danger,
		"WARN":    palette.Warning,
		"WARNING": palette.Warning,
		"INFO":    palette.Success,
		"DEBUG":   palette.Info,
	}
	for level, want := range tests {
		style, ok := s.levels[level]
		if !ok {
			t.Fatalf("no style for %s", level)
		}
		if got := style.GetForeground(); got != lipgloss.Color(want) {
			t.Fatalf("%s foreground = %v, want %v", level, got, want)
		}
	}
}
