package core

// Frame is one renderable snapshot: the visible rows (already sliced to the
// viewport, per VisibleLines) and the cursor's offset-relative screen
// position. Painting it onto a terminal is the adapter's job.
type Frame struct {
	Rows    []string
	CursorX int
	CursorY int
}

// Editor is the composition root: it owns one buffer, one cursor/viewport
// pair and the current mode, and routes key events through the active mode.
type Editor interface {
	// Document
	Buffer() *Buffer
	SetBuffer(*Buffer)
	OpenFile(path string) error
	FilePath() string
	Save()
	Quit()

	// Cursor and viewport
	Cursor() Cursor
	SetCursor(Cursor)
	View() Viewport
	SetSize(width, height int)
	ScrollViewport()
	Frame() Frame

	// Mode handling
	Mode() Mode
	SetNormalMode()
	SetInsertMode()
	SetCommandMode()
	SetVisualMode()

	// Event handling
	HandleKey(key KeyEvent) error

	// State and notifications
	State() State
	UpdateStatus(string)
	UpdateCommand(string)
	Signals() <-chan Signal
	DispatchSignal(Signal)
	DispatchError(id ErrorId, err error)
	DispatchMessage(message string)
}
