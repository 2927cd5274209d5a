package core

type commandMode struct{}

func NewCommandMode() EditorMode { return &commandMode{} }

func (m *commandMode) Name() Mode { return CommandMode }

func (m *commandMode) Enter(editor Editor) {
	editor.UpdateStatus("-- COMMAND --")
	editor.UpdateCommand(":")
}

func (m *commandMode) Exit(editor Editor) {
	editor.UpdateCommand("")
}

func (m *commandMode) HandleKey(editor Editor, buffer *Buffer, key KeyEvent) *EditorError {
	if key.Key == KeyEscape {
		editor.SetNormalMode()
	}
	return nil
}
