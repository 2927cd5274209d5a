package core

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestEditor(text string) Editor {
	e := New()
	e.SetBuffer(BufferFromString(text))
	e.SetSize(80, 24)
	return e
}

func ch(r rune) KeyEvent {
	return KeyEvent{Rune: r, Text: string(r)}
}

func special(k KeyCode) KeyEvent {
	return KeyEvent{Key: k}
}

func chord(r rune) KeyEvent {
	return KeyEvent{Rune: r, Modifiers: ModCtrl}
}

func press(t *testing.T, e Editor, keys ...KeyEvent) {
	t.Helper()
	for _, k := range keys {
		if err := e.HandleKey(k); err != nil {
			t.Fatalf("HandleKey(%s): %v", k, err)
		}
	}
}

func drainSignal(e Editor) Signal {
	select {
	case s := <-e.Signals():
		return s
	default:
		return nil
	}
}

func TestEditor_StartsInNormalMode(t *testing.T) {
	e := New()
	if e.Mode() != NormalMode {
		t.Fatalf("mode = %s, want normal", e.Mode())
	}
}

func TestEditor_ModeTransitions(t *testing.T) {
	tests := []struct {
		name string
		keys []KeyEvent
		want Mode
	}{
		{"colon enters command", []KeyEvent{ch(':')}, CommandMode},
		{"i enters insert", []KeyEvent{ch('i')}, InsertMode},
		{"a enters insert", []KeyEvent{ch('a')}, InsertMode},
		{"s enters insert", []KeyEvent{ch('s')}, InsertMode},
		{"v enters visual", []KeyEvent{ch('v')}, VisualMode},
		{"x stays normal", []KeyEvent{ch('x')}, NormalMode},
		{"escape leaves insert", []KeyEvent{ch('i'), special(KeyEscape)}, NormalMode},
		{"escape leaves command", []KeyEvent{ch(':'), special(KeyEscape)}, NormalMode},
		{"escape leaves visual", []KeyEvent{ch('v'), special(KeyEscape)}, NormalMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEditor("abc\ndef")
			press(t, e, tc.keys...)
			if e.Mode() != tc.want {
				t.Fatalf("mode = %s, want %s", e.Mode(), tc.want)
			}
		})
	}
}

func TestEditor_UnboundKeysAreNoOps(t *testing.T) {
	for _, mode := range []KeyEvent{ch('v'), ch(':')} {
		e := newTestEditor("abc\ndef")
		press(t, e, mode)
		before := e.Buffer().String()
		cursor := e.Cursor()

		press(t, e, ch('x'), ch('z'), special(KeyEnter), special(KeyBackspace))
		if got := e.Buffer().String(); got != before {
			t.Fatalf("buffer changed in %s mode: %q", e.Mode(), got)
		}
		if e.Cursor() != cursor {
			t.Fatalf("cursor moved in %s mode", e.Mode())
		}
	}
}

func TestNormal_AppendAdvancesCursor(t *testing.T) {
	e := newTestEditor("abc\ndef")
	press(t, e, ch('a'))
	if e.Cursor().Location != (Location{X: 1, Y: 0}) {
		t.Fatalf("cursor = %v, want (1,0)", e.Cursor().Location)
	}
	if e.Mode() != InsertMode {
		t.Fatalf("mode = %s, want insert", e.Mode())
	}
}

func TestNormal_AppendAtLineEndWrapsToNextLine(t *testing.T) {
	e := newTestEditor("abc\ndef")
	e.SetCursor(Cursor{Location{X: 3, Y: 0}})
	press(t, e, ch('a'))
	if e.Cursor().Location != (Location{X: 0, Y: 1}) {
		t.Fatalf("cursor = %v, want (0,1)", e.Cursor().Location)
	}
}

func TestNormal_DeleteUnderCursor(t *testing.T) {
	// Cursor on the 'b' of "abc".
	e := newTestEditor("abc\ndef")
	e.SetCursor(Cursor{Location{X: 1, Y: 0}})
	press(t, e, ch('x'))
	if got := e.Buffer().String(); got != "ac\ndef" {
		t.Fatalf("buffer = %q, want %q", got, "ac\ndef")
	}
}

func TestNormal_DeleteAtLineEndJoinsNextLine(t *testing.T) {
	e := newTestEditor("abc\ndef")
	e.SetCursor(Cursor{Location{X: 3, Y: 0}})
	press(t, e, ch('x'))
	if got := e.Buffer().String(); got != "abcdef" {
		t.Fatalf("buffer = %q, want %q", got, "abcdef")
	}
}

func TestNormal_SubstituteDeletesAndEntersInsert(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, ch('s'))
	if got := e.Buffer().String(); got != "bc" {
		t.Fatalf("buffer = %q, want %q", got, "bc")
	}
	if e.Mode() != InsertMode {
		t.Fatalf("mode = %s, want insert", e.Mode())
	}
}

func TestNormal_ArrowsMoveCursor(t *testing.T) {
	e := newTestEditor("abc\ndef")
	press(t, e, special(KeyRight), special(KeyRight), special(KeyDown), special(KeyLeft))
	if e.Cursor().Location != (Location{X: 1, Y: 1}) {
		t.Fatalf("cursor = %v, want (1,1)", e.Cursor().Location)
	}
	press(t, e, special(KeyUp))
	if e.Cursor().Location != (Location{X: 1, Y: 0}) {
		t.Fatalf("cursor = %v, want (1,0)", e.Cursor().Location)
	}
}

func TestInsert_TypingAdvancesCursor(t *testing.T) {
	e := newTestEditor("")
	press(t, e, ch('i'), ch('h'), ch('i'))
	if got := e.Buffer().String(); got != "hi" {
		t.Fatalf("buffer = %q, want %q", got, "hi")
	}
	if e.Cursor().Location != (Location{X: 2, Y: 0}) {
		t.Fatalf("cursor = %v, want (2,0)", e.Cursor().Location)
	}
}

func TestInsert_MultiCodepointClusterAdvancesOneColumn(t *testing.T) {
	family := "\U0001F468\u200D\U0001F469\u200D\U0001F467\u200D\U0001F466"

	e := newTestEditor("")
	press(t, e, ch('i'), KeyEvent{Rune: '\U0001F468', Text: family})
	if got := e.Buffer().LineAt(0); got != family {
		t.Fatalf("line = %q, want the family emoji", got)
	}
	if e.Cursor().Location != (Location{X: 1, Y: 0}) {
		t.Fatalf("cursor = %v, want (1,0)", e.Cursor().Location)
	}
}

func TestInsert_EnterSplitsLine(t *testing.T) {
	e := newTestEditor("hello")
	e.SetCursor(Cursor{Location{X: 2, Y: 0}})
	press(t, e, ch('i'), special(KeyEnter))
	if got := e.Buffer().String(); got != "he\nllo" {
		t.Fatalf("buffer = %q, want %q", got, "he\nllo")
	}
	if e.Cursor().Location != (Location{X: 0, Y: 1}) {
		t.Fatalf("cursor = %v, want (0,1)", e.Cursor().Location)
	}
}

func TestInsert_TabExpandsToNextTabStop(t *testing.T) {
	e := newTestEditor("ab")
	e.SetCursor(Cursor{Location{X: 2, Y: 0}})
	press(t, e, ch('i'), special(KeyTab))
	if got := e.Buffer().LineAt(0); got != "ab  " {
		t.Fatalf("line = %q, want %q", got, "ab  ")
	}
	if e.Cursor().X != 4 {
		t.Fatalf("cursor column = %d, want 4", e.Cursor().X)
	}

	// At a tab stop a full run of spaces is inserted.
	press(t, e, special(KeyTab))
	if got := e.Buffer().LineAt(0); got != "ab      " {
		t.Fatalf("line = %q, want 8 columns", got)
	}
	if e.Cursor().X != 8 {
		t.Fatalf("cursor column = %d, want 8", e.Cursor().X)
	}
}

func TestInsert_BackspaceDeletesBeforeCursor(t *testing.T) {
	e := newTestEditor("abc")
	e.SetCursor(Cursor{Location{X: 2, Y: 0}})
	press(t, e, ch('i'), special(KeyBackspace))
	if got := e.Buffer().String(); got != "ac" {
		t.Fatalf("buffer = %q, want %q", got, "ac")
	}
	if e.Cursor().Location != (Location{X: 1, Y: 0}) {
		t.Fatalf("cursor = %v, want (1,0)", e.Cursor().Location)
	}
}

func TestInsert_BackspaceAtColumnZeroJoinsPreviousLine(t *testing.T) {
	e := newTestEditor("abc\ndef")
	e.SetCursor(Cursor{Location{X: 0, Y: 1}})
	press(t, e, ch('i'), special(KeyBackspace))
	if got := e.Buffer().String(); got != "abcdef" {
		t.Fatalf("buffer = %q, want %q", got, "abcdef")
	}
	// Cursor lands on the join point.
	if e.Cursor().Location != (Location{X: 3, Y: 0}) {
		t.Fatalf("cursor = %v, want (3,0)", e.Cursor().Location)
	}
}

func TestInsert_BackspaceAtDocumentStartIsNoOp(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, ch('i'), special(KeyBackspace))
	if got := e.Buffer().String(); got != "abc" {
		t.Fatalf("buffer = %q, want unchanged", got)
	}
}

func TestInsert_ModifiedKeysAreNotPrintableInput(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, ch('i'))

	press(t, e,
		KeyEvent{Rune: 's', Modifiers: ModCtrl},
		KeyEvent{Rune: 'x', Text: "x", Modifiers: ModAlt},
	)
	if got := e.Buffer().String(); got != "abc" {
		t.Fatalf("buffer = %q, want unchanged", got)
	}
	if e.Cursor().Location != (Location{}) {
		t.Fatalf("cursor = %v, want (0,0)", e.Cursor().Location)
	}
	if sig := drainSignal(e); sig != nil {
		t.Fatalf("unexpected signal %T", sig)
	}
}

func TestNormal_AltChordsAreNoOps(t *testing.T) {
	e := newTestEditor("abc\ndef")
	press(t, e,
		KeyEvent{Rune: 'x', Text: "x", Modifiers: ModAlt},
		KeyEvent{Rune: 'v', Text: "v", Modifiers: ModAlt},
	)
	if got := e.Buffer().String(); got != "abc\ndef" {
		t.Fatalf("buffer = %q, want unchanged", got)
	}
	if e.Mode() != NormalMode {
		t.Fatalf("mode = %s, want normal", e.Mode())
	}
}

func TestEditor_ViewportFollowsCursor(t *testing.T) {
	e := newTestEditor("a\nb\nc\nd\ne\nf")
	e.SetSize(10, 3)

	for i := 0; i < 5; i++ {
		press(t, e, special(KeyDown))
	}
	view := e.View()
	cursor := e.Cursor()
	if cursor.Y < view.OffsetY || cursor.Y >= view.OffsetY+view.Height {
		t.Fatalf("cursor row %d outside viewport [%d, %d)", cursor.Y, view.OffsetY, view.OffsetY+view.Height)
	}

	frame := e.Frame()
	if len(frame.Rows) != 3 {
		t.Fatalf("frame rows = %d, want 3", len(frame.Rows))
	}
	if frame.CursorY != 2 {
		t.Fatalf("cursor screen row = %d, want last visible row", frame.CursorY)
	}
}

func TestEditor_FrameAfterSplitBeyondViewport(t *testing.T) {
	e := newTestEditor("aa\nbb\ncc")
	e.SetSize(10, 3)
	e.SetCursor(Cursor{Location{X: 2, Y: 2}})

	press(t, e, ch('i'), special(KeyEnter), special(KeyEnter))
	frame := e.Frame()
	cursor := e.Cursor()
	if cursor.Location != (Location{X: 0, Y: 4}) {
		t.Fatalf("cursor = %v, want (0,4)", cursor.Location)
	}
	if frame.CursorY < 0 || frame.CursorY >= len(frame.Rows) {
		t.Fatalf("cursor screen row %d outside rendered rows %d", frame.CursorY, len(frame.Rows))
	}
}

func TestEditor_SaveChordWritesOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := New()
	if err := e.OpenFile(path); err != nil {
		t.Fatal(err)
	}
	e.SetSize(80, 24)

	press(t, e, ch('a'), ch('!'), special(KeyEscape), chord('s'))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "h!ello\n" {
		t.Fatalf("file = %q, want %q", data, "h!ello\n")
	}

	raw := drainSignal(e)
	sig, ok := raw.(SaveSignal)
	if !ok {
		t.Fatalf("expected a SaveSignal, got %T", raw)
	}
	if p, content := sig.Value(); p != path || content != "h!ello\n" {
		t.Fatalf("SaveSignal = (%q, %q)", p, content)
	}
}

func TestEditor_SaveWithoutPathReportsError(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, chord('s'))

	raw := drainSignal(e)
	sig, ok := raw.(ErrorSignal)
	if !ok {
		t.Fatalf("expected an ErrorSignal, got %T", raw)
	}
	if id, _ := sig.Value(); id != ErrNoFilePathId {
		t.Fatalf("error id = %d, want ErrNoFilePathId", id)
	}
}

func TestEditor_QuitChordEndsSession(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, chord('q'))
	if !e.State().Quit {
		t.Fatalf("quit flag not set")
	}
	if _, ok := drainSignal(e).(QuitSignal); !ok {
		t.Fatalf("expected a QuitSignal")
	}
}

func TestEditor_OpenMissingFileStartsEmpty(t *testing.T) {
	e := New()
	path := filepath.Join(t.TempDir(), "new.txt")
	if err := e.OpenFile(path); err != nil {
		t.Fatalf("OpenFile on a missing file: %v", err)
	}
	if e.Buffer().LineCount() != 1 || e.Buffer().LineAt(0) != "" {
		t.Fatalf("buffer = %q, want one empty line", e.Buffer().String())
	}
	if e.FilePath() != path {
		t.Fatalf("path = %q, want %q", e.FilePath(), path)
	}

	raw := drainSignal(e)
	msg, ok := raw.(MessageSignal)
	if !ok {
		t.Fatalf("expected a MessageSignal, got %T", raw)
	}
	if msg.Value() != NewFileMessage {
		t.Fatalf("message = %q, want %q", msg.Value(), NewFileMessage)
	}
}

func TestEditor_OpenUnreadablePathFails(t *testing.T) {
	e := New()
	// A directory cannot be read as a file; this is the fatal branch, not
	// the not-found one.
	if err := e.OpenFile(t.TempDir()); err == nil {
		t.Fatalf("expected an error opening a directory")
	}
}

func TestEditor_StatusLineTracksMode(t *testing.T) {
	e := newTestEditor("abc")
	press(t, e, ch('i'))
	if got := e.State().StatusLine; got != "-- INSERT --" {
		t.Fatalf("status = %q, want -- INSERT --", got)
	}
	press(t, e, special(KeyEscape))
	if got := e.State().StatusLine; got != "-- NORMAL --" {
		t.Fatalf("status = %q, want -- NORMAL --", got)
	}
	press(t, e, ch(':'))
	if got := e.State().CommandLine; got != ":" {
		t.Fatalf("command line = %q, want :", got)
	}
}
