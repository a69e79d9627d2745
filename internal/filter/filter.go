package filter

// Params are the user's filter controls. Empty strings mean "not set".
type Params struct {
	Query         string `json:"query" form:"q"`
	CaseSensitive bool   `json:"case_sensitive" form:"case"`
	StartDate     string `json:"start_date" form:"start_date"`
	EndDate       string `json:"end_date" form:"end_date"`
	StartTime     string `json:"start_time" form:"start_time"`
	EndTime       string `json:"end_time" form:"end_time"`
}

// Apply runs the text filter and then the range filter over lines. The
// result keeps the original order.
func Apply(lines []string, p Params, f Format, strict bool) []string {
	matched := MatchText(lines, p.Query, p.CaseSensitive)
	return NewRange(p, f, strict).Filter(matched)
}
