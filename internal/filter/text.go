package filter

import "strings"

// MatchText keeps the lines that contain query as a substring. An empty query
// returns lines unchanged. Unless caseSensitive is set, both sides are lowered
// before the containment check.
func MatchText(lines []string, query string, caseSensitive bool) []string {
	if query == "" {
		return lines
	}
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		candidate := line
		if !caseSensitive {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			out = append(out, line)
		}
	}
	return out
}
