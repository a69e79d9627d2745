package viewer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/tailview/internal/filter"
)

// Viewer refreshes any of a fixed set of log sources by label.
type Viewer struct {
	sources []Source
	index   map[string]int
	now     func() time.Time
}

// New builds a Viewer. The first source is the default selection.
func New(sources []Source) (*Viewer, error) {
	if len(sources) == 0 {
		return nil, errors.New("no log sources configured")
	}
	v := &Viewer{
		sources: append([]Source(nil), sources...),
		index:   make(map[string]int, len(sources)),
		now:     time.Now,
	}
	for i, src := range v.sources {
		label := strings.TrimSpace(src.Label)
		if label == "" {
			return nil, fmt.Errorf("source %d: label is empty", i+1)
		}
		if _, dup := v.index[label]; dup {
			return nil, fmt.Errorf("duplicate source label %q", label)
		}
		v.sources[i].Label = label
		v.index[label] = i
	}
	return v, nil
}

// Sources returns the sources in selection order.
func (v *Viewer) Sources() []Source {
	return append([]Source(nil), v.sources...)
}

// Default returns the initially selected source.
func (v *Viewer) Default() Source {
	return v.sources[0]
}

// Lookup finds a source by label; an empty label selects the default.
func (v *Viewer) Lookup(label string) (Source, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return v.Default(), true
	}
	i, ok := v.index[label]
	if !ok {
		return Source{}, false
	}
	return v.sources[i], true
}

// Next returns the label following label in selection order, wrapping.
func (v *Viewer) Next(label string) string {
	i, ok := v.index[strings.TrimSpace(label)]
	if !ok {
		return v.sources[0].Label
	}
	return v.sources[(i+1)%len(v.sources)].Label
}

// Refresh runs one refresh against the source named label.
func (v *Viewer) Refresh(label string, p filter.Params) View {
	src, ok := v.Lookup(label)
	if !ok {
		return failed(&Error{Kind: KindRead, Source: label, Err: fmt.Errorf("unknown log source %q", label)})
	}

	started := time.Now()
	view := Refresh(src, p, v.now())

	event := log.Debug()
	if view.Err != nil {
		event = log.Warn().Err(view.Err).Str("kind", view.Err.Kind.String())
	}
	event.
		Str("component", "viewer").
		Str("source", src.Label).
		Int("window", view.Lines).
		Int("matched", view.Matched).
		Dur("took", time.Since(started)).
		Msg("refresh")
	return view
}
