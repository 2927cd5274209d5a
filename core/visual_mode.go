package core

type visualMode struct{}

func NewVisualMode() EditorMode { return &visualMode{} }

func (m *visualMode) Name() Mode { return VisualMode }

func (m *visualMode) Enter(editor Editor) {
	editor.UpdateStatus("-- VISUAL --")
	editor.UpdateCommand("")
}

func (m *visualMode) Exit(editor Editor) {}

func (m *visualMode) HandleKey(editor Editor, buffer *Buffer, key KeyEvent) *EditorError {
	if key.Key == KeyEscape {
		editor.SetNormalMode()
	}
	return nil
}
