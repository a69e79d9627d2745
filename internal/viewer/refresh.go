package viewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/logtail"
)

const (
	// Placeholder is shown when the filters leave nothing to display.
	Placeholder = "No matching log entries."
	// ReadErrorPrefix starts the display text of a failed refresh.
	ReadErrorPrefix = "Error reading log file: "
	// StatusPrefix starts the status line of a successful refresh.
	StatusPrefix = "Last updated: "
	// StatusLayout formats the wall-clock time in the status line.
	StatusLayout = "2006-01-02 15:04:05"
)

// Source is one selectable log file.
type Source struct {
	Label  string
	Path   string
	Format filter.Format
	// Strict drops lines without a timestamp while a date range is active.
	Strict bool
	// Window is the number of trailing lines considered; zero means
	// logtail.DefaultWindow.
	Window int
}

// View is the result of one refresh.
type View struct {
	Text    string
	Status  string
	Lines   int
	Matched int
	Err     *Error
}

// Refresh reads the window of src, filters it with p and renders the result.
// It never panics; every failure is reported as display text.
func Refresh(src Source, p filter.Params, now time.Time) (view View) {
	defer func() {
		if r := recover(); r != nil {
			view = failed(&Error{Kind: KindRead, Source: src.Label, Err: fmt.Errorf("%v", r)})
		}
	}()

	window := src.Window
	if window <= 0 {
		window = logtail.DefaultWindow
	}
	lines, err := logtail.Read(src.Path, window)
	if err != nil {
		return failed(&Error{Kind: KindOf(err), Source: src.Label, Err: err})
	}

	matched := filter.Apply(lines, p, src.Format, src.Strict)
	view = View{
		Status:  StatusPrefix + now.Format(StatusLayout),
		Lines:   len(lines),
		Matched: len(matched),
	}
	if len(matched) == 0 {
		view.Text = Placeholder
		return view
	}
	view.Text = strings.Join(matched, "")
	return view
}

func failed(err *Error) View {
	return View{Text: ReadErrorPrefix + err.Error(), Err: err}
}
