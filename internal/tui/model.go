// Package tui runs the lobby inside a bubbletea program: a huh form asks for
// the username, then a scrolling transcript shows the game and a text input
// feeds it one line at a time.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/notepid/baseball/internal/terminal"
	"github.com/notepid/baseball/internal/user"
)

// StartFunc runs a lobby on term until it ends.
type StartFunc func(ctx context.Context, term *terminal.Terminal, username string) error

type phase int

const (
	phaseLogin phase = iota
	phasePlay
	phaseDone
)

type outputMsg string

type doneMsg struct{ err error }

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the root bubbletea model.
type Model struct {
	ctx   context.Context
	start StartFunc
	color bool

	phase    phase
	username string
	form     *huh.Form

	viewport   viewport.Model
	input      textinput.Model
	transcript strings.Builder

	lines  *lineQueue
	term   *terminal.Terminal
	output chan string
	done   chan error

	width, height int
	err           error
}

// NewModel creates the root model. A non-empty username skips the login form.
// color sets ANSIEnabled on the terminal handed to start.
func NewModel(ctx context.Context, start StartFunc, username string, color bool) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 64
	in.Focus()

	m := &Model{
		ctx:      ctx,
		start:    start,
		color:    color,
		username: strings.TrimSpace(username),
		viewport: viewport.New(80, 20),
		input:    in,
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Description("1 to 20 characters. Your games are kept until the program exits.").
				Value(&m.username).
				Validate(func(s string) error {
					_, err := user.NormalizeUsername(s)
					return err
				}),
		),
	)
	return m
}

// Err returns the error the lobby ended with, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	if m.username != "" {
		return m.startLobby()
	}
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-4, 1)
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stop()
			return m, tea.Quit
		}
	case outputMsg:
		m.write(string(msg))
		return m, m.waitOutput()
	case doneMsg:
		m.err = msg.err
		m.phase = phaseDone
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLogin:
		return m.updateLogin(msg)
	case phasePlay:
		return m.updatePlay(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.startLobby()
	case huh.StateAborted:
		m.phase = phaseDone
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		line := m.input.Value()
		m.input.Reset()
		// The game does not echo, so the transcript does.
		m.write(line + "\n")
		m.lines.push(line)
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// startLobby runs the lobby in its own goroutine. Its output arrives as
// outputMsg values, its end as a doneMsg.
func (m *Model) startLobby() tea.Cmd {
	m.phase = phasePlay
	m.lines = newLineQueue()
	m.output = make(chan string, 16)
	m.done = make(chan error, 1)
	m.term = terminal.New(m.lines, chanWriter(m.output), m.color)

	go func(name string, term *terminal.Terminal, output chan string, done chan error) {
		err := m.start(m.ctx, term, name)
		done <- err
		close(output)
	}(m.username, m.term, m.output, m.done)

	return m.waitOutput()
}

func (m *Model) waitOutput() tea.Cmd {
	output, done := m.output, m.done
	return func() tea.Msg {
		s, ok := <-output
		if !ok {
			return doneMsg{err: <-done}
		}
		return outputMsg(s)
	}
}

// write appends s to the transcript. A clear-screen sequence empties it.
func (m *Model) write(s string) {
	if i := strings.LastIndex(s, terminal.ClearScreen()); i >= 0 {
		m.transcript.Reset()
		s = s[i+len(terminal.ClearScreen()):]
	}
	m.transcript.WriteString(s)
	m.viewport.SetContent(m.transcript.String())
	m.viewport.GotoBottom()
}

func (m *Model) stop() {
	if m.term != nil {
		_ = m.term.Close()
	}
}

func (m *Model) View() string {
	switch m.phase {
	case phaseLogin:
		return titleStyle.Render("Number Baseball") + "\n\n" + m.form.View()
	case phaseDone:
		if m.err != nil {
			return errStyle.Render("Error: "+m.err.Error()) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send  pgup/pgdn: scroll  ctrl+c: quit"))
	return b.String()
}

// chanWriter forwards every write as one string.
type chanWriter chan<- string

func (w chanWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}
