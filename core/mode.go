package core

// Mode identifies an editing mode. Exactly one mode is active at a time.
type Mode string

const (
	NormalMode  Mode = "normal"
	InsertMode  Mode = "insert"
	CommandMode Mode = "command"
	VisualMode  Mode = "visual"
)

// EditorMode is one state of the modal dispatcher. HandleKey routes a
// symbolic key event to buffer/cursor operations and/or a mode transition;
// keys a mode does not recognize are no-ops. The editor rescrolls the
// viewport after every handled key, so handlers only mutate.
type EditorMode interface {
	Name() Mode
	HandleKey(editor Editor, buffer *Buffer, key KeyEvent) *EditorError
	Enter(editor Editor) // Called when entering the mode
	Exit(editor Editor)  // Called when exiting the mode
}

// moveCursor applies an arrow key to the cursor. Shared by the modes that
// allow movement.
func moveCursor(editor Editor, buffer *Buffer, key KeyEvent) {
	cursor := editor.Cursor()
	switch key.Key {
	case KeyLeft:
		cursor.MoveLeft(buffer)
	case KeyRight:
		cursor.MoveRight(buffer)
	case KeyUp:
		cursor.MoveUp(buffer)
	case KeyDown:
		cursor.MoveDown(buffer)
	}
	editor.SetCursor(cursor)
}
