// SPDX-License-Identifier: MIT

// Package tui is the interactive calculator pad: a bubbletea program with
// one input line and a scrolling transcript of replies.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/axiomic/internal/session"
	"github.com/katalvlaran/axiomic/render"
)

const helpLine = "enter: run • help: commands • esc/ctrl+c: quit"

type exchange struct {
	line   string
	text   string
	failed bool
}

// Model is the bubbletea model of the pad.
type Model struct {
	theme Theme
	sess  *session.Session
	input textinput.Model

	transcript []exchange
	height     int
	quitting   bool
}

// New builds a pad bound to sess.
func New(sess *session.Session) Model {
	in := textinput.New()
	in.Placeholder = "5 + 6, factor 28, derive x^2 ..."
	in.Prompt = "› "
	in.Focus()

	return Model{theme: DefaultTheme(), sess: sess, input: in}
}

// Run starts the pad on the terminal and blocks until it exits.
func Run(sess *session.Session) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			switch line {
			case "":
				return m, nil
			case "quit", "exit":
				m.quitting = true
				return m, tea.Quit
			}
			m.transcript = append(m.transcript, m.exchange(line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) exchange(line string) exchange {
	r, err := m.sess.Run(line)
	if err != nil {
		return exchange{line: line, text: render.Error(err), failed: true}
	}

	return exchange{line: line, text: r.Text}
}

// Quitting reports whether the pad asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var blocks []string
	for _, ex := range m.transcript {
		style := m.theme.Reply
		if ex.failed {
			style = m.theme.Error
		}
		blocks = append(blocks, m.theme.Prompt.Render("› "+ex.line)+"\n"+style.Render(ex.text))
	}
	body := strings.Join(blocks, "\n")
	if m.height > 0 {
		body = tail(body, m.height-6)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("axiomic pad"),
		"",
		body,
		"",
		m.input.View(),
		m.theme.Help.Render(helpLine),
	)
}

// tail keeps the last n lines of s.
func tail(s string, n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}

	return strings.Join(lines[len(lines)-n:], "\n")
}
