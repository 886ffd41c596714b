// Package menu is the interactive entry point of docmerge.
package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is a menu choice.
type Action int

const (
	ActionNone Action = iota
	ActionAuthor
	ActionNewDocument
	ActionPlainText
	ActionAttendeeTable
	ActionAttendeeRows
	ActionCertificates
	ActionQuit
)

// Entry is one line of the menu.
type Entry struct {
	Action Action
	Label  string
}

// Entries are listed in the order of their digit shortcuts.
var Entries = []Entry{
	{ActionAuthor, "Read author info from document"},
	{ActionNewDocument, "Create new document"},
	{ActionPlainText, "Read plain text from document"},
	{ActionAttendeeTable, "Create attendee list from template 1"},
	{ActionAttendeeRows, "Create attendee list from template 2"},
	{ActionCertificates, "Create certificates"},
	{ActionQuit, "Quit"},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	shortcutStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model of the menu.
type Model struct {
	cursor int
	chosen Action
	status string
	failed bool
}

// New returns a menu showing status below the entries. A failed status is
// rendered as an error.
func New(status string, failed bool) Model {
	return Model{status: status, failed: failed}
}

// Chosen returns the confirmed action, or ActionNone while the menu is open.
func (m Model) Chosen() Action { return m.chosen }

// Cursor returns the index of the highlighted entry.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(Entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.chosen = Entries[m.cursor].Action
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.chosen = ActionQuit
		return m, tea.Quit
	default:
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'0') <= len(Entries) {
			m.cursor = int(s[0] - '1')
			m.chosen = Entries[m.cursor].Action
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.chosen != ActionNone {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("docmerge"))
	b.WriteString("\n\n")
	for i, e := range Entries {
		line := fmt.Sprintf("[%d] %s", i+1, e.Label)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(shortcutStyle.Render("↑/↓ or j/k to move, enter or 1-7 to select, q to quit"))
	b.WriteString("\n")
	return b.String()
}

// Choose shows the menu on out, reading keys from in, and returns the
// confirmed action.
func Choose(ctx context.Context, in io.Reader, out io.Writer, status string, failed bool) (Action, error) {
	p := tea.NewProgram(New(status, failed), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return ActionNone, fmt.Errorf("run menu: %w", err)
	}
	return final.(Model).Chosen(), nil
}
