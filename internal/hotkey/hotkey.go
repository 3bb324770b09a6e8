// Package hotkey fires actions from key combinations. All keys of a
// combination except the last must be held; the last key's transition is
// classified by the hotkey's TriggerType.
package hotkey

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/world"
)

// MaxKeys bounds the length of a combination.
const MaxKeys = 4

// Hotkey is one key combination bound to an action.
type Hotkey struct {
	Trigger TriggerType
	When    world.Condition
	Keys    []input.KeyCode
}

// New returns a Pressed hotkey gated by when.
func New(when world.Condition, keys ...input.KeyCode) Hotkey {
	return NewAdvanced(Pressed, when, keys...)
}

// NewAdvanced returns a hotkey with an explicit trigger type. It panics when
// more than MaxKeys keys are given.
func NewAdvanced(trigger TriggerType, when world.Condition, keys ...input.KeyCode) Hotkey {
	if len(keys) > MaxKeys {
		panic(fmt.Sprintf("hotkey: %d keys exceed the limit of %d", len(keys), MaxKeys))
	}
	if when == nil {
		when = world.Always()
	}
	return Hotkey{Trigger: trigger, When: when, Keys: slices.Clone(keys)}
}

// Global returns a Pressed hotkey that is always available.
func Global(keys ...input.KeyCode) Hotkey {
	return New(world.Always(), keys...)
}

// HasModifier reports whether the combination includes Alt or Control.
// Such hotkeys still fire while a text field has focus.
func (h Hotkey) HasModifier() bool {
	for _, k := range h.Keys {
		switch k {
		case input.AltLeft, input.AltRight, input.ControlLeft, input.ControlRight:
			return true
		}
	}
	return false
}

// KeyboardTrigger classifies the combination against kb. The edges of the
// last key are consumed whenever the leading keys are held.
func (h Hotkey) KeyboardTrigger(kb *input.Keyboard) (RuntimeTrigger, bool) {
	if len(h.Keys) == 0 {
		return 0, false
	}
	last := h.Keys[len(h.Keys)-1]
	if !kb.AllPressed(h.Keys[:len(h.Keys)-1]...) {
		return 0, false
	}
	pressed := kb.ClearJustPressed(last)
	released := kb.ClearJustReleased(last)
	switch h.Trigger {
	case Pressed:
		if pressed {
			return RuntimePressed, true
		}
	case Released:
		if released {
			return RuntimeReleased, true
		}
	case PressAndRelease:
		if pressed {
			return RuntimePressed, true
		}
		if released {
			return RuntimeReleased, true
		}
	case Repeat:
		if kb.Pressed(last) {
			return RuntimePressing, true
		}
	}
	return 0, false
}

// TriggerResult evaluates the hotkey against w: the availability condition,
// text focus suppression and then the keyboard state.
func (h Hotkey) TriggerResult(w *world.World) (RuntimeTrigger, bool) {
	if len(h.Keys) == 0 {
		return 0, false
	}
	if h.When != nil && !h.When.Check(w) {
		return 0, false
	}
	if focus, ok := world.Get[input.TextFocus](w); ok && focus.Editing && !h.HasModifier() {
		return 0, false
	}
	var (
		result RuntimeTrigger
		fired  bool
	)
	_ = world.Scope(w, func(_ *world.World, kb *input.Keyboard) error {
		result, fired = h.KeyboardTrigger(kb)
		return nil
	})
	return result, fired
}

// Text renders the combination as "ControlLeft+KeyM".
func (h Hotkey) Text() string {
	parts := make([]string, len(h.Keys))
	for i, k := range h.Keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, "+")
}

// Binding describes the hotkey for the help view.
func (h Hotkey) Binding(help string) key.Binding {
	return key.NewBinding(key.WithKeys(h.Text()), key.WithHelp(shortText(h.Keys), help))
}

func shortText(keys []input.KeyCode) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		switch {
		case k == input.ControlLeft || k == input.ControlRight:
			parts[i] = "ctrl"
		case k == input.AltLeft || k == input.AltRight:
			parts[i] = "alt"
		case k == input.ShiftLeft || k == input.ShiftRight:
			parts[i] = "shift"
		case strings.HasPrefix(string(k), "Key") && len(k) == 4:
			parts[i] = strings.ToLower(string(k)[3:])
		case strings.HasPrefix(string(k), "Digit"):
			parts[i] = string(k)[5:]
		default:
			parts[i] = strings.ToLower(string(k))
		}
	}
	return strings.Join(parts, "+")
}
