package core

type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Enter(editor Editor) {
	editor.UpdateStatus("-- NORMAL --")
	editor.UpdateCommand("")
}

func (m *normalMode) Exit(editor Editor) {}

func (m *normalMode) HandleKey(editor Editor, buffer *Buffer, key KeyEvent) *EditorError {
	if key.isArrow() {
		moveCursor(editor, buffer, key)
		return nil
	}

	if key.Modifiers&ModCtrl != 0 {
		switch key.Rune {
		case 's':
			editor.Save()
		case 'q':
			editor.Quit()
		}
		return nil
	}
	if key.Modifiers != ModNone {
		return nil
	}

	cursor := editor.Cursor()

	switch key.Rune {
	case ':':
		editor.SetCommandMode()

	case 'i':
		editor.SetInsertMode()

	case 'a':
		// Append: advance one position, wrapping to the next line start
		// when already at end of line.
		if cursor.X < buffer.GraphemeLenAt(cursor.Y) {
			cursor.X++
		} else if cursor.Y+1 < buffer.LineCount() {
			cursor.Y++
			cursor.X = 0
		}
		editor.SetCursor(cursor)
		editor.SetInsertMode()

	case 'x':
		buffer.DeleteUnder(cursor.Location)

	case 's':
		buffer.DeleteUnder(cursor.Location)
		editor.SetInsertMode()

	case 'v':
		editor.SetVisualMode()
	}

	return nil
}
