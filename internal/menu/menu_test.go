package menu_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/docmerge-cli/internal/menu"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m menu.Model, msgs ...tea.Msg) (menu.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(menu.Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestEntriesMatchShortcuts(t *testing.T) {
	require.Len(t, menu.Entries, 7)
	assert.Equal(t, menu.ActionAuthor, menu.Entries[0].Action)
	assert.Equal(t, menu.ActionCertificates, menu.Entries[5].Action)
	assert.Equal(t, menu.ActionQuit, menu.Entries[6].Action)
}

func TestNavigateAndConfirm(t *testing.T) {
	m := menu.New("", false)
	m, cmd := send(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		runes("j"),
		runes("k"),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyUp},
		runes("j"),
	)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, menu.ActionNone, m.Chosen())

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, menu.ActionNewDocument, m.Chosen())
	assert.Empty(t, m.View())
}

func TestCursorStopsAtEnds(t *testing.T) {
	m := menu.New("", false)
	for i := 0; i < 20; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(menu.Entries)-1, m.Cursor())
}

func TestDigitShortcut(t *testing.T) {
	m, cmd := send(t, menu.New("", false), runes("6"))
	require.NotNil(t, cmd)
	assert.Equal(t, menu.ActionCertificates, m.Chosen())

	m, cmd = send(t, menu.New("", false), runes("9"))
	assert.Nil(t, cmd)
	assert.Equal(t, menu.ActionNone, m.Chosen())
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyCtrlC}, tea.KeyMsg{Type: tea.KeyEsc}} {
		m, cmd := send(t, menu.New("", false), msg)
		require.NotNil(t, cmd)
		assert.Equal(t, menu.ActionQuit, m.Chosen())
	}
}

func TestViewShowsEntriesAndStatus(t *testing.T) {
	v := menu.New("✓ File written", false).View()
	assert.Contains(t, v, "[1] Read author info from document")
	assert.Contains(t, v, "[7] Quit")
	assert.Contains(t, v, "File written")
}

func TestIgnoresOtherMessages(t *testing.T) {
	m, cmd := send(t, menu.New("", false), tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Cursor())
}
