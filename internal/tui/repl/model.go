// ============================================================================
// letter - Front end for the letter language
// ============================================================================
//
// Package:     repl
// Description: Interactive read-parse-print loop for letter source lines
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	mdwerror "github.com/msto63/letter/foundation/core/error"
	"github.com/msto63/letter/foundation/letter"
	mdwast "github.com/msto63/letter/foundation/letter/ast"
	mdwparser "github.com/msto63/letter/foundation/letter/parser"
	mdwstringx "github.com/msto63/letter/foundation/utils/stringx"
)

// OutputMode selects how a parsed line is shown
type OutputMode int

const (
	// ModeOutline shows the indented node outline
	ModeOutline OutputMode = iota
	// ModeSource shows the canonical, fully parenthesised source
	ModeSource
)

// String returns the display name of the mode
func (m OutputMode) String() string {
	if m == ModeSource {
		return "source"
	}
	return "outline"
}

// Config holds REPL settings
type Config struct {
	Engine  *letter.Engine
	Prompt  string
	History int // maximum number of kept entries
}

// DefaultConfig returns the default REPL configuration
func DefaultConfig() Config {
	return Config{
		Prompt:  "letter> ",
		History: 50,
	}
}

// Entry is one evaluated input line
type Entry struct {
	Input    string
	Output   string
	Err      error
	Duration time.Duration
}

// Model is the REPL TUI model
type Model struct {
	engine  *letter.Engine
	config  Config
	mode    OutputMode
	entries []Entry

	input    textinput.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool
	busy   bool
}

// parseResultMsg carries the outcome of an asynchronous parse
type parseResultMsg struct {
	entry Entry
}

// New creates a new REPL model
func New(cfg Config) (Model, error) {
	defaults := DefaultConfig()
	cfg.Prompt = mdwstringx.FirstNonBlank(cfg.Prompt, defaults.Prompt)
	if cfg.History <= 0 {
		cfg.History = defaults.History
	}
	if cfg.Engine == nil {
		engine, err := letter.NewEngine()
		if err != nil {
			return Model{}, err
		}
		cfg.Engine = engine
	}

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(cfg.Prompt)
	ti.Placeholder = "let x = 1 + 2;"
	ti.CharLimit = cfg.Engine.Options().MaxInputLength
	ti.Focus()

	return Model{
		engine:   cfg.Engine,
		config:   cfg,
		input:    ti,
		viewport: viewport.New(80, 20),
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			source := strings.TrimSpace(m.input.Value())
			if source == "" || m.busy {
				return m, nil
			}
			m.input.Reset()
			m.busy = true
			return m, m.parse(source)

		case "tab":
			if m.mode == ModeOutline {
				m.mode = ModeSource
			} else {
				m.mode = ModeOutline
			}
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-5, 1)
		m.input.Width = max(msg.Width-len(m.config.Prompt)-2, 10)
		m.ready = true
		m.updateContent()

	case parseResultMsg:
		m.busy = false
		m.addEntry(msg.entry)
		m.updateContent()
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// parse runs the engine on source. Failures become entries and never end
// the session.
func (m Model) parse(source string) tea.Cmd {
	engine := m.engine
	mode := m.mode
	return func() tea.Msg {
		entry := Entry{Input: source}

		result, err := engine.Parse(source)
		if err != nil {
			entry.Err = err
			return parseResultMsg{entry: entry}
		}

		entry.Duration = result.Duration
		if mode == ModeSource {
			entry.Output = mdwast.Format(result.Program)
		} else {
			entry.Output = strings.TrimRight(mdwast.Outline(result.Program), "\n")
		}
		return parseResultMsg{entry: entry}
	}
}

func (m *Model) addEntry(entry Entry) {
	m.entries = append(m.entries, entry)
	if overflow := len(m.entries) - m.config.History; overflow > 0 {
		m.entries = append([]Entry(nil), m.entries[overflow:]...)
	}
}

func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.entries {
		content.WriteString(PromptStyle.Render(m.config.Prompt))
		content.WriteString(InputEchoStyle.Render(e.Input))
		content.WriteString("\n")

		if e.Err != nil {
			content.WriteString(renderError(e.Input, e.Err))
		} else {
			content.WriteString(OutputStyle.Render(e.Output))
		}
		content.WriteString("\n\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func renderError(source string, err error) string {
	var b strings.Builder

	code := mdwerror.GetCode(err)
	b.WriteString(ErrorCodeStyle.Render(string(code)))
	b.WriteString(" ")
	b.WriteString(ErrorStyle.Render(err.Error()))

	if line, column, ok := mdwparser.Location(err); ok {
		if excerpt := mdwparser.Excerpt(source, line, column); excerpt != "" {
			b.WriteString("\n")
			b.WriteString(ErrorStyle.Render(excerpt))
		}
	}
	return b.String()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(TitleStyle.Render("letter"))
	s.WriteString(" ")
	s.WriteString(SubtitleStyle.Render("interactive parser"))
	s.WriteString("\n")

	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")

	status := fmt.Sprintf("mode: %s | entries: %d/%d", m.mode, len(m.entries), m.config.History)
	s.WriteString(StatusBarStyle.Render(status))
	s.WriteString(" ")
	s.WriteString(HelpStyle.Render("enter: parse  tab: mode  ctrl+l: clear  esc: quit"))

	return s.String()
}

// Entries returns the kept history, oldest first
func (m Model) Entries() []Entry {
	return m.entries
}

// Mode returns the current output mode
func (m Model) Mode() OutputMode {
	return m.mode
}

// Run starts the REPL program
func Run(cfg Config) error {
	model, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
