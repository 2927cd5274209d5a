package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// State is the editor state a consumer needs to draw a frame around the
// buffer content.
type State struct {
	Mode        Mode   // Current editing mode
	StatusLine  string // Content of the status line (bottom line)
	CommandLine string // Command prompt or message line
	Quit        bool   // Flag indicating if the session should end
	View        Viewport
}

// InitialState creates a default state.
func InitialState() State {
	return State{
		Mode:       NormalMode,
		StatusLine: "-- NORMAL --",
		View:       Viewport{Width: 80, Height: 24},
	}
}

// Concrete implementation of Editor
type editor struct {
	buffer      *Buffer
	cursor      Cursor
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State
	path        string

	updateSignal chan Signal
}

// New creates a new editor instance with an empty untitled buffer.
func New() Editor {
	e := &editor{
		buffer:       NewBuffer(),
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		updateSignal: make(chan Signal, 100),
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[CommandMode] = NewCommandMode()
	e.modes[VisualMode] = NewVisualMode()

	e.currentMode = e.modes[e.state.Mode]
	e.currentMode.Enter(e)

	return e
}

func (e *editor) Buffer() *Buffer {
	return e.buffer
}

func (e *editor) SetBuffer(buffer *Buffer) {
	e.buffer = buffer
	e.cursor = Cursor{}
	e.state.View.OffsetX = 0
	e.state.View.OffsetY = 0
}

// OpenFile loads the file at path into the buffer and remembers the path for
// Save. A missing file is the recoverable case: the editor starts with a
// fresh empty buffer. Any other I/O failure aborts the open and propagates.
func (e *editor) OpenFile(path string) error {
	buffer, err := Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		buffer = NewBuffer()
		e.DispatchMessage(NewFileMessage)
	default:
		return fmt.Errorf("%w: %v", ErrFailedToOpen, err)
	}

	e.path = path
	e.SetBuffer(buffer)
	return nil
}

func (e *editor) FilePath() string {
	return e.path
}

// Save serializes the buffer and writes it to the currently open path.
// Failures surface as error signals rather than crashing the session.
func (e *editor) Save() {
	if e.path == "" {
		e.DispatchError(ErrNoFilePathId, ErrNoFilePath)
		return
	}
	if err := Save(e.path, e.buffer); err != nil {
		e.DispatchError(ErrFailedToSaveId, fmt.Errorf("%w: %v", ErrFailedToSave, err))
		return
	}
	e.DispatchSignal(SaveSignal{path: e.path, content: e.buffer.String()})
}

func (e *editor) Quit() {
	e.state.Quit = true
	e.DispatchSignal(QuitSignal{})
}

func (e *editor) Cursor() Cursor {
	return e.cursor
}

// SetCursor updates the cursor. Out-of-bounds positions are a dispatcher
// bug; they trip an assertion in debug builds.
func (e *editor) SetCursor(cursor Cursor) {
	cursor.validate(e.buffer)
	e.cursor = cursor
}

func (e *editor) View() Viewport {
	return e.state.View
}

func (e *editor) SetSize(width, height int) {
	e.state.View.Width = width
	e.state.View.Height = height
	e.ScrollViewport()
}

// ScrollViewport recomputes the viewport offsets so the cursor stays
// visible.
func (e *editor) ScrollViewport() {
	e.state.View = e.cursor.Scroll(e.buffer, e.state.View)
}

// Frame produces the next visible frame: the viewport slice of every visible
// line plus the cursor's offset-relative screen position.
func (e *editor) Frame() Frame {
	x, y := e.state.View.ScreenPosition(e.cursor)
	return Frame{
		Rows:    e.state.View.VisibleLines(e.buffer),
		CursorX: x,
		CursorY: y,
	}
}

func (e *editor) Mode() Mode {
	return e.state.Mode
}

func (e *editor) setMode(modeName Mode) {
	newMode, ok := e.modes[modeName]
	if !ok {
		e.DispatchError(ErrInvalidModeId, fmt.Errorf("%w: %s", ErrInvalidMode, modeName))
		return
	}

	if e.currentMode != nil {
		e.currentMode.Exit(e)
	}

	e.currentMode = newMode
	e.state.Mode = modeName
	e.currentMode.Enter(e)
}

func (e *editor) SetNormalMode()  { e.setMode(NormalMode) }
func (e *editor) SetInsertMode()  { e.setMode(InsertMode) }
func (e *editor) SetCommandMode() { e.setMode(CommandMode) }
func (e *editor) SetVisualMode()  { e.setMode(VisualMode) }

// HandleKey processes one key event to completion: the active mode applies
// its mutation and/or transition, then the viewport is recomputed. That
// ordering is load-bearing; rendering a stale viewport against a mutated
// buffer can index out of range.
func (e *editor) HandleKey(key KeyEvent) error {
	if e.currentMode == nil {
		return ErrInvalidMode
	}

	err := e.currentMode.HandleKey(e, e.buffer, key)

	e.ScrollViewport()

	if err != nil {
		return err.Error()
	}
	return nil
}

func (e *editor) State() State {
	return e.state
}

// UpdateStatus is a helper for modes to update the status line
func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

// UpdateCommand is a helper for modes to update the command line
func (e *editor) UpdateCommand(cmd string) {
	e.state.CommandLine = cmd
}

func (e *editor) Signals() <-chan Signal {
	return e.updateSignal
}
