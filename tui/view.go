package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mtudor/vigo/core"
)

type Theme struct {
	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	VisualModeStyle  lipgloss.Style
	CommandModeStyle lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	CursorStyle      lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandModeStyle: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	CursorStyle:      lipgloss.NewStyle().Reverse(true),
}

func (m Model) View() string {
	state := m.editor.State()

	commandLine := m.theme.CommandLineStyle.Render(state.CommandLine)

	if m.message != "" {
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	}

	if m.err != nil {
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	}

	statusLine := m.statusLine()

	if pad := m.width - lipgloss.Width(statusLine); pad > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", pad))
	}
	if pad := m.width - lipgloss.Width(commandLine); pad > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		statusLine,
		commandLine,
	)
}

// renderContent paints the editor's current frame: each visible row already
// sliced to the viewport by the core, with the cursor cell styled in place.
func (m *Model) renderContent() string {
	frame := m.editor.Frame()

	var sb strings.Builder
	for y, row := range frame.Rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row = runewidth.Truncate(row, m.viewport.Width, "")
		if y == frame.CursorY {
			sb.WriteString(m.renderCursorRow(row, frame.CursorX))
		} else {
			sb.WriteString(row)
		}
	}

	// An empty buffer still needs a cursor cell to paint.
	if len(frame.Rows) == 0 {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

// renderCursorRow styles the grapheme cluster at column col; past the end of
// the row the cursor is drawn as a styled blank (the append position).
func (m *Model) renderCursorRow(row string, col int) string {
	var sb strings.Builder
	idx := 0
	rest := row
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if idx == col {
			sb.WriteString(m.theme.CursorStyle.Render(cluster))
		} else {
			sb.WriteString(cluster)
		}
		idx++
	}
	if col >= idx {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}
	return sb.String()
}

func (m *Model) statusLine() string {
	state := m.editor.State()

	var statusLine string
	switch state.Mode {
	case core.NormalMode:
		statusLine = m.theme.NormalModeStyle.Render(" NORMAL ")
	case core.InsertMode:
		statusLine = m.theme.InsertModeStyle.Render(" INSERT ")
	case core.VisualMode:
		statusLine = m.theme.VisualModeStyle.Render(" VISUAL ")
	case core.CommandMode:
		statusLine = m.theme.CommandModeStyle.Render(" COMMAND ")
	}

	name := m.editor.FilePath()
	if name == "" {
		name = "[No Name]"
	}
	statusLine += m.theme.StatusLineStyle.Render(" " + name)

	cursor := m.editor.Cursor()
	cursorInfo := fmt.Sprintf("%d:%d ", cursor.Y+1, cursor.X+1)

	gap := m.width - lipgloss.Width(statusLine) - lipgloss.Width(cursorInfo)
	statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", max(0, gap)) + cursorInfo)

	return statusLine
}
