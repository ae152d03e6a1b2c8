package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/axiomic/config"
	"github.com/katalvlaran/axiomic/internal/session"
	"github.com/katalvlaran/axiomic/internal/tui"
)

func newModel() (tui.Model, *session.Session) {
	s := session.New(config.Default(), zap.NewNop())
	return tui.New(s), s
}

// typeLine feeds runes then enter, like a user would.
func typeLine(t *testing.T, m tui.Model, line string) (tui.Model, tea.Cmd) {
	t.Helper()
	var next tea.Model = m
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	out, ok := next.(tui.Model)
	require.True(t, ok)

	return out, cmd
}

// TestEnter_RunsLine appends the reply to the transcript.
func TestEnter_RunsLine(t *testing.T) {
	m, s := newModel()
	m, cmd := typeLine(t, m, "5 + 6")
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "› 5 + 6")
	assert.Contains(t, view, "5 + 6 = 11")
	require.Len(t, s.History(), 1)
	assert.Equal(t, "5 + 6", s.History()[0].Line)
}

// TestEnter_ShowsErrors renders failures as prose.
func TestEnter_ShowsErrors(t *testing.T) {
	m, _ := newModel()
	m, _ = typeLine(t, m, "7 / 0")
	assert.Contains(t, m.View(), "Division by zero is undefined.")
}

// TestEnter_Blank does nothing.
func TestEnter_Blank(t *testing.T) {
	m, s := newModel()
	m, cmd := typeLine(t, m, "   ")
	assert.Nil(t, cmd)
	assert.False(t, m.Quitting())
	assert.Empty(t, s.History())
}

// TestQuit covers esc, ctrl+c and the quit word.
func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _ := newModel()
		next, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(tui.Model).Quitting())
		assert.Equal(t, "", next.View())
	}

	m, _ := newModel()
	m, cmd := typeLine(t, m, "quit")
	require.NotNil(t, cmd)
	assert.True(t, m.Quitting())
}

// TestView_TailsToHeight keeps the newest exchanges on screen.
func TestView_TailsToHeight(t *testing.T) {
	m, _ := newModel()
	var next tea.Model = m
	next, _ = next.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(tui.Model)
	for _, line := range []string{"1 + 1", "2 + 2", "3 + 3", "4 + 4"} {
		m, _ = typeLine(t, m, line)
	}

	view := m.View()
	assert.NotContains(t, view, "› 1 + 1")
	assert.Contains(t, view, "› 4 + 4")
	assert.LessOrEqual(t, len(strings.Split(view, "\n")), 10)
}
