package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtudor/vigo/core"
)

// chrome is the number of terminal rows reserved below the content pane for
// the status and command lines.
const chrome = 2

// Model is the bubbletea wrapper around the editor core: it decodes raw key
// messages into symbolic key events, feeds them to the editor, and paints
// the resulting frames.
type Model struct {
	editor   core.Editor
	viewport viewport.Model
	width    int
	height   int
	theme    Theme
	err      error
	message  string
}

// ErrorMsg is emitted when the editor reports a failure (save, open).
type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

// SaveMsg is emitted after the buffer has been written to disk.
type SaveMsg struct {
	Path string
}

// QuitMsg is emitted when the editor session ends.
type QuitMsg struct{}

// MessageMsg carries an informational message from the editor.
type MessageMsg struct {
	Message string
}

func New(width, height int) Model {
	m := Model{
		editor:   core.New(),
		viewport: viewport.New(width, contentHeight(height)),
		theme:    DefaultTheme,
	}
	m.SetSize(width, height)
	return m
}

// contentHeight is the number of rows left for the content pane after the
// status and command lines, never below one.
func contentHeight(height int) int {
	return max(1, height-chrome)
}

// OpenFile loads path into the editor buffer. A missing file starts an empty
// buffer; any other I/O error is returned.
func (m *Model) OpenFile(path string) error {
	return m.editor.OpenFile(path)
}

// Editor returns the underlying editor instance.
func (m *Model) Editor() core.Editor {
	return m.editor
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = contentHeight(height)
	m.editor.SetSize(m.viewport.Width, m.viewport.Height)
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.editor.State().Quit {
			return m, tea.Quit
		}

		m.err = nil
		m.message = ""

		if err := m.editor.HandleKey(convertBubbleKey(msg)); err != nil {
			m.err = err
		}

	case ErrorMsg:
		m.err = msg.Error
		cmds = append(cmds, m.listenForEditorUpdate())

	case SaveMsg:
		m.message = "written " + msg.Path
		cmds = append(cmds, m.listenForEditorUpdate())

	case MessageMsg:
		m.message = msg.Message
		cmds = append(cmds, m.listenForEditorUpdate())

	case QuitMsg:
		return m, tea.Quit

	case noopMsg:
		cmds = append(cmds, m.listenForEditorUpdate())
	}

	m.viewport.SetContent(m.renderContent())

	return m, tea.Batch(cmds...)
}

// noopMsg keeps the signal listener alive for signals the adapter displays
// nothing for.
type noopMsg struct{}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	return func() tea.Msg {
		signal := <-m.editor.Signals()

		switch signal := signal.(type) {
		case core.ErrorSignal:
			id, err := signal.Value()
			return ErrorMsg{ID: id, Error: err}

		case core.SaveSignal:
			path, _ := signal.Value()
			return SaveMsg{Path: path}

		case core.QuitSignal:
			return QuitMsg{}

		case core.MessageSignal:
			return MessageMsg{Message: signal.Value()}
		}

		return noopMsg{}
	}
}

// convertBubbleKey converts a bubbletea key message into the editor's
// symbolic key event.
func convertBubbleKey(msg tea.KeyMsg) core.KeyEvent {
	key := core.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
		key.Text = string(msg.Runes)
	}

	if msg.Alt {
		key.Modifiers |= core.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = core.KeyEnter
	case tea.KeySpace:
		key.Key = core.KeySpace
		key.Rune = ' '
		key.Text = " "
	case tea.KeyEsc:
		key.Key = core.KeyEscape
	case tea.KeyBackspace:
		key.Key = core.KeyBackspace
	case tea.KeyTab:
		key.Key = core.KeyTab
	case tea.KeyUp:
		key.Key = core.KeyUp
	case tea.KeyDown:
		key.Key = core.KeyDown
	case tea.KeyLeft:
		key.Key = core.KeyLeft
	case tea.KeyRight:
		key.Key = core.KeyRight
	case tea.KeyCtrlS:
		key.Rune = 's'
		key.Text = ""
		key.Modifiers |= core.ModCtrl
	case tea.KeyCtrlQ:
		key.Rune = 'q'
		key.Text = ""
		key.Modifiers |= core.ModCtrl
	}

	return key
}
