package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tailview/internal/filter"
	"github.com/five82/tailview/internal/viewer"
)

const defaultRefresh = 5 * time.Second

// field identifies a filter input.
type field int

const (
	fieldQuery field = iota
	fieldStartDate
	fieldEndDate
	fieldStartTime
	fieldEndTime
	fieldCount
)

// Options configure the terminal viewer.
type Options struct {
	Viewer  *viewer.Viewer
	Refresh time.Duration
	// Source preselects a source by label; empty uses the default.
	Source string
}

// Model is the Bubble Tea state of the terminal viewer.
type Model struct {
	viewer  *viewer.Viewer
	refresh time.Duration
	keys    keyMap
	styles  styles

	source        string
	inputs        [fieldCount]textinput.Model
	focus         field
	caseSensitive bool

	output viewport.Model
	view   viewer.View
	seq    int

	width  int
	height int
	ready  bool
}

// New builds the initial model. The first refresh is issued by Init.
func New(opts Options) Model {
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}

	source := opts.Source
	if src, ok := opts.Viewer.Lookup(source); ok {
		source = src.Label
	} else {
		source = opts.Viewer.Default().Label
	}

	m := Model{
		viewer:  opts.Viewer,
		refresh: refresh,
		keys:    defaultKeyMap(),
		styles:  newStyles(),
		source:  source,
	}
	m.inputs[fieldQuery] = newInput("Search...", 0, 30)
	m.inputs[fieldStartDate] = newInput("YYYY-MM-DD", 10, 10)
	m.inputs[fieldEndDate] = newInput("YYYY-MM-DD", 10, 10)
	m.inputs[fieldStartTime] = newInput("HH:MM:SS", 8, 8)
	m.inputs[fieldEndTime] = newInput("HH:MM:SS", 8, 8)
	m.inputs[fieldQuery].Focus()
	return m
}

func newInput(placeholder string, limit, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	return ti
}

// Params returns the filter state held by the inputs.
func (m Model) Params() filter.Params {
	p := filter.Params{
		Query:         m.inputs[fieldQuery].Value(),
		CaseSensitive: m.caseSensitive,
		StartDate:     m.inputs[fieldStartDate].Value(),
		EndDate:       m.inputs[fieldEndDate].Value(),
	}
	if m.timeOfDay() {
		p.StartTime = m.inputs[fieldStartTime].Value()
		p.EndTime = m.inputs[fieldEndTime].Value()
	}
	return p
}

// timeOfDay reports whether the selected source honours time fields.
func (m Model) timeOfDay() bool {
	src, ok := m.viewer.Lookup(m.source)
	return ok && src.Format == filter.FormatPipe
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshCmd(), tickCmd(m.refresh))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		m.seq++
		return m, tea.Batch(m.refreshCmd(), tickCmd(m.refresh))

	case viewMsg:
		if msg.seq != m.seq || msg.source != m.source {
			return m, nil
		}
		m.view = msg.view
		m.output.SetContent(m.styles.colorize(msg.view.Text))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.ToggleCase):
		m.caseSensitive = !m.caseSensitive
		return m.changed()

	case key.Matches(msg, m.keys.NextSource):
		m.source = m.viewer.Next(m.source)
		if !m.timeOfDay() && m.focus >= fieldStartTime {
			m.setFocus(fieldQuery)
		}
		return m.changed()

	case key.Matches(msg, m.keys.Refresh):
		return m.changed()

	case key.Matches(msg, m.keys.Clear):
		m.inputs[m.focus].SetValue("")
		return m.changed()

	case key.Matches(msg, m.keys.ScrollUp):
		m.output.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.output.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.output.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.output.GotoBottom()
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}
	next, refresh := m.changed()
	return next, tea.Batch(cmd, refresh)
}

// changed schedules a refresh after any control change.
func (m Model) changed() (Model, tea.Cmd) {
	m.seq++
	return m, m.refreshCmd()
}

// moveFocus steps through the inputs, skipping time fields for sources
// without a time of day.
func (m *Model) moveFocus(step int) tea.Cmd {
	next := m.focus
	for {
		next = (next + field(step) + fieldCount) % fieldCount
		if m.timeOfDay() || (next != fieldStartTime && next != fieldEndTime) {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) resize() {
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	if !m.ready {
		m.output = viewport.New(m.width, height)
		m.output.SetContent(m.styles.colorize(m.view.Text))
		m.ready = true
		return
	}
	m.output.Width = m.width
	m.output.Height = height
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderControls(),
		m.output.View(),
		m.renderStatus(),
		m.renderHelp(),
	)
}

func (m Model) renderControls() string {
	s := m.styles
	caseLabel := "off"
	if m.caseSensitive {
		caseLabel = "on"
	}
	parts := []string{
		s.Logo.Render("tailview"),
		s.Label.Render("source ") + s.Value.Render(m.source),
		m.renderInput(fieldQuery, "search"),
		s.Label.Render("case ") + s.Value.Render(caseLabel),
		m.renderInput(fieldStartDate, "from"),
	}
	if m.timeOfDay() {
		parts = append(parts, m.renderInput(fieldStartTime, ""))
	}
	parts = append(parts, m.renderInput(fieldEndDate, "to"))
	if m.timeOfDay() {
		parts = append(parts, m.renderInput(fieldEndTime, ""))
	}
	return s.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderInput(f field, label string) string {
	s := m.styles
	box := m.inputs[f].View()
	if f == m.focus {
		box = s.Focused.Render("[") + box + s.Focused.Render("]")
	} else {
		box = s.Label.Render("[") + box + s.Label.Render("]")
	}
	if label == "" {
		return box
	}
	return s.Label.Render(label+" ") + box
}

func (m Model) renderStatus() string {
	s := m.styles
	if m.view.Err != nil {
		return s.Error.Render(m.view.Err.Kind.String() + " error")
	}
	if m.view.Status == "" {
		return ""
	}
	return s.Status.Render(fmt.Sprintf("%s  %d/%d lines", m.view.Status, m.view.Matched, m.view.Lines))
}

func (m Model) renderHelp() string {
	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Help.Render(strings.Join(parts, " • "))
}

// Messages

type tickMsg time.Time

type viewMsg struct {
	seq    int
	source string
	view   viewer.View
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refreshCmd() tea.Cmd {
	v, seq, source, params := m.viewer, m.seq, m.source, m.Params()
	return func() tea.Msg {
		return viewMsg{seq: seq, source: source, view: v.Refresh(source, params)}
	}
}

// Run starts the terminal viewer and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
