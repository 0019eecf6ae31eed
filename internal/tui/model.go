// Package tui is an interactive terminal front end for the query pipeline.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/deezer-flow/internal/icons"
	"github.com/llehouerou/deezer-flow/internal/launcher"
	"github.com/llehouerou/deezer-flow/internal/plugin"
)

// Backend runs queries and launcher callbacks. *plugin.Plugin satisfies it.
type Backend interface {
	Resolve(ctx context.Context, raw string) []plugin.Result
	launcher.Handler
}

// resultsMsg carries the answer to the query with the same sequence number.
type resultsMsg struct {
	seq     int
	query   string
	results []plugin.Result
}

// actionDoneMsg reports the outcome of a selected entry's action.
type actionDoneMsg struct {
	title string
	err   error
}

// Model is the query prompt and result list.
type Model struct {
	ctx     context.Context
	backend Backend

	input   textinput.Model
	spinner spinner.Model
	icons   icons.Set

	results []plugin.Result
	query   string // query the results answer
	seq     int
	cursor  int
	offset  int
	loading bool
	status  string
	failed  bool
	width   int
	height  int
}

// New creates a model running queries against b. ctx bounds every call.
func New(ctx context.Context, b Backend, iconSet icons.Set) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "play master of puppets, artist metallica, stop..."
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return Model{ctx: ctx, backend: b, input: ti, spinner: sp, icons: iconSet}
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, b Backend, iconSet icons.Set) error {
	p := tea.NewProgram(New(ctx, b, iconSet), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-6, 10)
		m.adjustOffset()
		return m, nil

	case resultsMsg:
		if msg.seq != m.seq {
			// a newer query is in flight
			return m, nil
		}
		m.loading = false
		m.results = msg.results
		m.query = msg.query
		m.cursor = 0
		m.offset = 0
		m.status = ""
		return m, nil

	case actionDoneMsg:
		m.failed = msg.err != nil
		if msg.err != nil {
			m.status = msg.title + ": " + msg.err.Error()
		} else {
			m.status = msg.title
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.input.Value() == "" {
				return m, tea.Quit
			}
			m.input.Reset()
			return m, nil
		case "enter":
			return m.submit()
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
				m.adjustOffset()
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
				m.adjustOffset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the typed query, or the selected entry's action when the
// results already answer the typed query.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	if m.results != nil && raw == m.query {
		if sel, ok := m.Selected(); ok {
			return m, m.runAction(sel.Entry)
		}
		return m, nil
	}

	m.seq++
	m.loading = true
	m.status = ""
	seq, ctx, b := m.seq, m.ctx, m.backend
	search := func() tea.Msg {
		return resultsMsg{seq: seq, query: raw, results: b.Resolve(ctx, raw)}
	}
	return m, tea.Batch(search, m.spinner.Tick)
}

// Selected returns the result under the cursor.
func (m Model) Selected() (plugin.Result, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return plugin.Result{}, false
	}
	return m.results[m.cursor], true
}

func (m Model) runAction(e launcher.Entry) tea.Cmd {
	if e.Action == nil {
		return nil
	}
	ctx, b := m.ctx, m.backend
	method := e.Action.Method
	url := e.URL()
	title := e.Title
	return func() tea.Msg {
		var err error
		switch method {
		case launcher.MethodOpenURL:
			err = b.OpenURL(ctx, url)
		case launcher.MethodPlayPause:
			err = b.PlayPause(ctx)
		case launcher.MethodStop:
			err = b.Stop(ctx)
		default:
			err = launcher.ErrUnknownMethod
		}
		return actionDoneMsg{title: title, err: err}
	}
}

func (m *Model) adjustOffset() {
	visible := m.visibleHeight()
	if visible <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
