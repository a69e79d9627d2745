package tui

import (
	"regexp"
	"strings"
)

var levelPattern = regexp.MustCompile(`\b(ERROR|WARNING|WARN|INFO|DEBUG)\b`)

// levelOf locates the first severity keyword in line. ok is false when the
// line carries none.
func levelOf(line string) (start, end int, ok bool) {
	loc := levelPattern.FindStringIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// colorizeLine styles the first severity keyword of a line and leaves the
// rest of the text untouched.
func (s styles) colorizeLine(line string) string {
	start, end, ok := levelOf(line)
	if !ok {
		return line
	}
	style, found := s.levels[line[start:end]]
	if !found {
		return line
	}
	return line[:start] + style.Render(line[start:end]) + line[end:]
}

// colorize prepares display text for the viewport. Carriage returns are
// dropped since the terminal renders lines itself.
func (s styles) colorize(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = s.colorizeLine(strings.TrimSuffix(line, "\r"))
	}
	return strings.Join(lines, "\n")
}
