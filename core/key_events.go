package core

import (
	"fmt"
	"strings"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is a symbolic keyboard input event. Decoding raw terminal bytes
// into KeyEvents is the adapter's responsibility. Text carries the full
// input string when a keystroke (or paste) delivers more than one rune, so
// multi-codepoint grapheme clusters survive dispatch intact; Rune is its
// first rune.
type KeyEvent struct {
	Rune      rune
	Text      string
	Key       KeyCode
	Modifiers KeyModifiers
}

// String returns a debug representation of the key event.
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	switch {
	case k.Text != "":
		parts = append(parts, k.Text)
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	default:
		switch k.Key {
		case KeyEnter:
			parts = append(parts, "Enter")
		case KeyTab:
			parts = append(parts, "Tab")
		case KeyBackspace:
			parts = append(parts, "Backspace")
		case KeyEscape:
			parts = append(parts, "Escape")
		case KeySpace:
			parts = append(parts, "Space")
		case KeyUp:
			parts = append(parts, "Up")
		case KeyDown:
			parts = append(parts, "Down")
		case KeyLeft:
			parts = append(parts, "Left")
		case KeyRight:
			parts = append(parts, "Right")
		case KeyUnknown:
			parts = append(parts, "Unknown")
		default:
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}

	return strings.Join(parts, "+")
}

// isArrow reports whether the event is one of the four arrow keys.
func (k KeyEvent) isArrow() bool {
	switch k.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}
