package input

import (
	"fmt"
	"strings"
)

// KeyCode names a physical key. Values follow the layout-independent naming
// used by keymap files, e.g. "ControlLeft", "KeyM", "Digit1", "F5".
type KeyCode string

const (
	ControlLeft  KeyCode = "ControlLeft"
	ControlRight KeyCode = "ControlRight"
	AltLeft      KeyCode = "AltLeft"
	AltRight     KeyCode = "AltRight"
	ShiftLeft    KeyCode = "ShiftLeft"
	ShiftRight   KeyCode = "ShiftRight"
	SuperLeft    KeyCode = "SuperLeft"
	SuperRight   KeyCode = "SuperRight"

	Escape     KeyCode = "Escape"
	Enter      KeyCode = "Enter"
	Tab        KeyCode = "Tab"
	Space      KeyCode = "Space"
	Backspace  KeyCode = "Backspace"
	Delete     KeyCode = "Delete"
	Insert     KeyCode = "Insert"
	Home       KeyCode = "Home"
	End        KeyCode = "End"
	PageUp     KeyCode = "PageUp"
	PageDown   KeyCode = "PageDown"
	ArrowUp    KeyCode = "ArrowUp"
	ArrowDown  KeyCode = "ArrowDown"
	ArrowLeft  KeyCode = "ArrowLeft"
	ArrowRight KeyCode = "ArrowRight"

	KeyA KeyCode = "KeyA"
	KeyB KeyCode = "KeyB"
	KeyC KeyCode = "KeyC"
	KeyD KeyCode = "KeyD"
	KeyE KeyCode = "KeyE"
	KeyF KeyCode = "KeyF"
	KeyG KeyCode = "KeyG"
	KeyH KeyCode = "KeyH"
	KeyI KeyCode = "KeyI"
	KeyJ KeyCode = "KeyJ"
	KeyK KeyCode = "KeyK"
	KeyL KeyCode = "KeyL"
	KeyM KeyCode = "KeyM"
	KeyN KeyCode = "KeyN"
	KeyO KeyCode = "KeyO"
	KeyP KeyCode = "KeyP"
	KeyQ KeyCode = "KeyQ"
	KeyR KeyCode = "KeyR"
	KeyS KeyCode = "KeyS"
	KeyT KeyCode = "KeyT"
	KeyU KeyCode = "KeyU"
	KeyV KeyCode = "KeyV"
	KeyW KeyCode = "KeyW"
	KeyX KeyCode = "KeyX"
	KeyY KeyCode = "KeyY"
	KeyZ KeyCode = "KeyZ"
)

var named = map[string]KeyCode{}

func init() {
	for _, k := range []KeyCode{
		ControlLeft, ControlRight, AltLeft, AltRight, ShiftLeft, ShiftRight, SuperLeft, SuperRight,
		Escape, Enter, Tab, Space, Backspace, Delete, Insert, Home, End, PageUp, PageDown,
		ArrowUp, ArrowDown, ArrowLeft, ArrowRight,
	} {
		named[strings.ToLower(string(k))] = k
	}
	for _, alias := range []struct {
		name string
		key  KeyCode
	}{
		{"ctrl", ControlLeft}, {"control", ControlLeft}, {"alt", AltLeft}, {"shift", ShiftLeft},
		{"super", SuperLeft}, {"esc", Escape}, {"return", Enter}, {"up", ArrowUp}, {"down", ArrowDown},
		{"left", ArrowLeft}, {"right", ArrowRight}, {"pgup", PageUp}, {"pgdown", PageDown},
	} {
		named[alias.name] = alias.key
	}
}

// Letter returns the key code for an ASCII letter, ignoring case.
func Letter(r rune) (KeyCode, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyCode("Key" + string(r-'a'+'A')), true
	case r >= 'A' && r <= 'Z':
		return KeyCode("Key" + string(r)), true
	}
	return "", false
}

// Digit returns the key code of the top-row digit r.
func Digit(r rune) (KeyCode, bool) {
	if r < '0' || r > '9' {
		return "", false
	}
	return KeyCode("Digit" + string(r)), true
}

// Function returns the key code of function key n (F1..F24).
func Function(n int) (KeyCode, bool) {
	if n < 1 || n > 24 {
		return "", false
	}
	return KeyCode(fmt.Sprintf("F%d", n)), true
}

// ParseKeyCode accepts canonical names ("ControlLeft", "KeyM", "Digit3",
// "F2") and the short aliases used in keymap files ("ctrl", "m", "3", "esc").
// Matching is case-insensitive.
func ParseKeyCode(s string) (KeyCode, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return "", fmt.Errorf("input: empty key name")
	}
	if k, ok := named[lower]; ok {
		return k, nil
	}
	if len(lower) == 1 {
		r := rune(lower[0])
		if k, ok := Letter(r); ok {
			return k, nil
		}
		if k, ok := Digit(r); ok {
			return k, nil
		}
	}
	if len(lower) == 4 && strings.HasPrefix(lower, "key") {
		if k, ok := Letter(rune(lower[3])); ok {
			return k, nil
		}
	}
	if len(lower) == 6 && strings.HasPrefix(lower, "digit") {
		if k, ok := Digit(rune(lower[5])); ok {
			return k, nil
		}
	}
	if strings.HasPrefix(lower, "f") {
		var n int
		if _, err := fmt.Sscanf(lower[1:], "%d", &n); err == nil && fmt.Sprintf("f%d", n) == lower {
			if k, ok := Function(n); ok {
				return k, nil
			}
		}
	}
	return "", fmt.Errorf("input: unknown key %q", s)
}

// IsModifier reports whether k is a Control, Alt, Shift or Super key.
func (k KeyCode) IsModifier() bool {
	switch k {
	case ControlLeft, ControlRight, AltLeft, AltRight, ShiftLeft, ShiftRight, SuperLeft, SuperRight:
		return true
	}
	return false
}

func (k KeyCode) String() string { return string(k) }
