package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonInputEdges(t *testing.T) {
	var kb Keyboard
	kb.Press(KeyM)
	assert.True(t, kb.Pressed(KeyM))
	assert.True(t, kb.JustPressed(KeyM))

	kb.Clear()
	kb.Press(KeyM)
	assert.True(t, kb.Pressed(KeyM))
	assert.False(t, kb.JustPressed(KeyM), "holding is not a new press")

	kb.Release(KeyM)
	assert.False(t, kb.Pressed(KeyM))
	assert.True(t, kb.JustReleased(KeyM))
	assert.True(t, kb.ClearJustReleased(KeyM))
	assert.False(t, kb.ClearJustReleased(KeyM))
}

func TestButtonInputReleaseAll(t *testing.T) {
	var kb Keyboard
	kb.Press(ControlLeft)
	kb.Press(KeyA)
	assert.Equal(t, []KeyCode{ControlLeft, KeyA}, kb.GetPressed())
	assert.True(t, kb.AllPressed(ControlLeft, KeyA))

	kb.ReleaseAll()
	assert.Empty(t, kb.GetPressed())
	assert.True(t, kb.JustReleased(ControlLeft))
	assert.True(t, kb.JustReleased(KeyA))
}

func TestReleaseOfIdleKeyHasNoEdge(t *testing.T) {
	var kb Keyboard
	kb.Release(KeyQ)
	assert.False(t, kb.JustReleased(KeyQ))
}

func TestParseKeyCode(t *testing.T) {
	cases := map[string]KeyCode{
		"ControlLeft": ControlLeft,
		"ctrl":        ControlLeft,
		"m":           KeyM,
		"KeyM":        KeyM,
		"3":           "Digit3",
		"digit7":      "Digit7",
		"F12":         "F12",
		"esc":         Escape,
		"Space":       Space,
	}
	for in, want := range cases {
		got, err := ParseKeyCode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "f0", "f25", "hyper", "f1x"} {
		_, err := ParseKeyCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsModifier(t *testing.T) {
	assert.True(t, ControlRight.IsModifier())
	assert.True(t, AltLeft.IsModifier())
	assert.False(t, KeyM.IsModifier())
}

func TestKeysFromMsg(t *testing.T) {
	assert.Equal(t, []KeyCode{ControlLeft, KeyG}, KeysFromMsg(tea.KeyMsg{Type: tea.KeyCtrlG}))
	assert.Equal(t, []KeyCode{AltLeft, KeyX}, KeysFromMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}))
	assert.Equal(t, []KeyCode{ShiftLeft, Tab}, KeysFromMsg(tea.KeyMsg{Type: tea.KeyShiftTab}))
	assert.Equal(t, []KeyCode{Enter}, KeysFromMsg(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, []KeyCode{ShiftLeft, KeyQ}, KeysFromMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}))
	assert.Equal(t, []KeyCode{"F5"}, KeysFromString("f5"))
	assert.Nil(t, KeysFromString("é"))
}

func TestTextFocus(t *testing.T) {
	field := textinput.New()
	var focus TextFocus
	focus.Capture(&field)
	assert.True(t, focus.Editing)
	assert.True(t, field.Focused())

	focus.Release()
	assert.False(t, focus.Editing)
	assert.False(t, field.Focused())
}
