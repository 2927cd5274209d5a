package core

import "github.com/rivo/uniseg"

// tabStop is the column multiple the tab key advances to. Tabs are expanded
// to spaces; no literal tab character is inserted.
const tabStop = 4

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Enter(editor Editor) {
	editor.UpdateStatus("-- INSERT --")
	editor.UpdateCommand("")
}

func (m *insertMode) Exit(editor Editor) {}

func (m *insertMode) HandleKey(editor Editor, buffer *Buffer, key KeyEvent) *EditorError {
	if key.isArrow() {
		moveCursor(editor, buffer, key)
		return nil
	}

	cursor := editor.Cursor()

	switch key.Key {
	case KeyEscape:
		editor.SetNormalMode()
		return nil

	case KeyEnter:
		// Split the current line at the cursor; the cursor lands at the
		// start of the new second line.
		buffer.SplitLine(cursor.Location)
		cursor.Y++
		cursor.X = 0
		editor.SetCursor(cursor)
		return nil

	case KeyTab:
		target := (cursor.X/tabStop + 1) * tabStop
		for cursor.X < target {
			buffer.InsertChar(cursor.Location, " ")
			cursor.X++
		}
		editor.SetCursor(cursor)
		return nil

	case KeyBackspace:
		// Capture the previous line's length before a join eats it.
		prevLen := 0
		if cursor.Y > 0 {
			prevLen = buffer.GraphemeLenAt(cursor.Y - 1)
		}
		if buffer.DeleteChar(cursor.Location) {
			if cursor.X > 0 {
				cursor.X--
			} else {
				cursor.Y--
				cursor.X = prevLen
			}
			editor.SetCursor(cursor)
		}
		return nil

	default:
		if key.Modifiers != ModNone {
			return nil // Chords are not printable input
		}
		text := key.Text
		if text == "" && key.Rune != 0 {
			text = string(key.Rune)
		}
		if text == "" {
			return nil // Ignore unrecognized special keys
		}
		// Insert cluster by cluster so multi-codepoint input (emoji,
		// combining marks) advances the cursor by one column per
		// user-perceived character.
		rest := text
		state := -1
		for len(rest) > 0 {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			buffer.InsertChar(cursor.Location, cluster)
			cursor.X++
		}
		editor.SetCursor(cursor)
		return nil
	}
}
