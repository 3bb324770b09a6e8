package input

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextFocus records whether a text field is currently capturing keyboard
// input. Plain-key hotkeys stay quiet while Editing is set.
type TextFocus struct {
	Editing bool
	Field   *textinput.Model
}

// Capture marks field as the focused text input.
func (f *TextFocus) Capture(field *textinput.Model) {
	f.Field = field
	f.Editing = field != nil
	if field != nil {
		field.Focus()
	}
}

// Release drops text focus.
func (f *TextFocus) Release() {
	if f.Field != nil {
		f.Field.Blur()
	}
	f.Field = nil
	f.Editing = false
}

var terminalNames = map[string]KeyCode{
	"enter":     Enter,
	"tab":       Tab,
	"esc":       Escape,
	"backspace": Backspace,
	"delete":    Delete,
	"insert":    Insert,
	"home":      Home,
	"end":       End,
	"pgup":      PageUp,
	"pgdown":    PageDown,
	"up":        ArrowUp,
	"down":      ArrowDown,
	"left":      ArrowLeft,
	"right":     ArrowRight,
	" ":         Space,
	"space":     Space,
}

// KeysFromMsg translates a terminal key message into the chord of key codes it
// represents, modifiers first. Terminals report chords as a single event, so
// "ctrl+g" yields [ControlLeft KeyG]. Unknown keys yield nil.
func KeysFromMsg(msg tea.KeyMsg) []KeyCode {
	return KeysFromString(msg.String())
}

// KeysFromString is KeysFromMsg over bubbletea's textual key form.
func KeysFromString(s string) []KeyCode {
	if s == "" {
		return nil
	}
	var mods []KeyCode
	rest := s
	for {
		switch {
		case strings.HasPrefix(rest, "ctrl+") && len(rest) > len("ctrl+"):
			mods = append(mods, ControlLeft)
			rest = rest[len("ctrl+"):]
			continue
		case strings.HasPrefix(rest, "alt+") && len(rest) > len("alt+"):
			mods = append(mods, AltLeft)
			rest = rest[len("alt+"):]
			continue
		case strings.HasPrefix(rest, "shift+") && len(rest) > len("shift+"):
			mods = append(mods, ShiftLeft)
			rest = rest[len("shift+"):]
			continue
		}
		break
	}
	key, shifted, ok := terminalKey(rest)
	if !ok {
		return nil
	}
	if shifted && !containsKey(mods, ShiftLeft) {
		mods = append(mods, ShiftLeft)
	}
	return append(mods, key)
}

func terminalKey(s string) (KeyCode, bool, bool) {
	if k, ok := terminalNames[s]; ok {
		return k, false, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		r := runes[0]
		if k, ok := Letter(r); ok {
			return k, r >= 'A' && r <= 'Z', true
		}
		if k, ok := Digit(r); ok {
			return k, false, true
		}
		return "", false, false
	}
	if len(s) > 1 && s[0] == 'f' {
		if n, err := strconv.Atoi(s[1:]); err == nil {
			if k, ok := Function(n); ok {
				return k, false, true
			}
		}
	}
	return "", false, false
}

func containsKey(keys []KeyCode, k KeyCode) bool {
	for _, existing := range keys {
		if existing == k {
			return true
		}
	}
	return false
}
