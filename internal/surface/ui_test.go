package surface

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(u *Ui) []string {
	out := make([]string, 0, len(u.Lines()))
	for _, line := range u.Lines() {
		out = append(out, ansi.Strip(line))
	}
	return out
}

func TestButtonClicksOnlyWhenFocusedAndActivated(t *testing.T) {
	frame := NewFrame(0)
	frame.Begin(true)
	u := New(frame, nil)
	assert.True(t, u.Button("first"))
	assert.False(t, u.Button("second"))

	frame.Begin(false)
	u = New(frame, nil)
	assert.False(t, u.Button("first"))
	assert.False(t, u.Button("second"))
	assert.Equal(t, []string{"> first", "  second"}, plain(u))
}

func TestMoveCursorClampsToDrawnWidgets(t *testing.T) {
	frame := NewFrame(0)
	frame.Begin(false)
	u := New(frame, nil)
	u.Button("a")
	u.Button("b")

	frame.MoveCursor(5)
	assert.Equal(t, 1, frame.Cursor())
	frame.MoveCursor(-9)
	assert.Equal(t, 0, frame.Cursor())

	frame.MoveCursor(1)
	frame.Begin(true)
	u = New(frame, nil)
	assert.False(t, u.Button("a"))
	assert.True(t, u.Button("b"))
}

func TestDisabledRegionNeverClicks(t *testing.T) {
	frame := NewFrame(0)
	frame.Begin(true)
	u := New(frame, nil)
	var clicked bool
	u.AddEnabled(false, func(ui *Ui) {
		assert.False(t, ui.Enabled())
		clicked = ui.Button("off")
	})
	assert.False(t, clicked)
	assert.Equal(t, 1, frame.Widgets())
}

func TestMenuButtonTogglesFlyout(t *testing.T) {
	frame := NewFrame(0)
	drawn := 0
	draw := func(activate bool) *Ui {
		frame.Begin(activate)
		u := New(frame, nil)
		u.MenuButton("File", func(ui *Ui) {
			drawn++
			ui.Button("Quit")
		})
		return u
	}

	draw(false)
	assert.Zero(t, drawn)

	u := draw(true)
	assert.Equal(t, 1, drawn)
	assert.True(t, frame.MenuOpen())
	assert.Equal(t, []string{"> File ▾", "    Quit"}, plain(u))

	u.CloseMenu()
	draw(false)
	assert.False(t, frame.MenuOpen())
	assert.Equal(t, 1, drawn)
}

func TestZeroFrameOpensFlyout(t *testing.T) {
	frame := &Frame{}
	frame.Begin(true)
	u := New(frame, nil)
	require.NotPanics(t, func() {
		u.MenuButton("File", func(ui *Ui) { ui.Button("Quit") })
	})
	assert.True(t, frame.MenuOpen())
	assert.Equal(t, []string{"> File ▾", "    Quit"}, plain(u))
}

func TestNewChildSharesBuffer(t *testing.T) {
	frame := NewFrame(0)
	frame.Begin(false)
	u := New(frame, nil)
	u.Label("parent")
	u.NewChild().Label("child")
	u.Indent(func(ui *Ui) { ui.Label("nested") })
	assert.Equal(t, []string{"parent", "child", "  nested"}, plain(u))
}

func TestLinesTruncateToWidth(t *testing.T) {
	frame := NewFrame(6)
	frame.Begin(false)
	u := New(frame, nil)
	u.Label(strings.Repeat("x", 20))
	u.Separator()
	require.Len(t, u.Lines(), 2)
	for _, line := range u.Lines() {
		assert.LessOrEqual(t, ansi.StringWidth(line), 6)
	}
}

func TestSelectableLabel(t *testing.T) {
	frame := NewFrame(0)
	frame.Begin(true)
	u := New(frame, nil)
	assert.True(t, u.SelectableLabel(true, "default"))
	assert.False(t, u.SelectableLabel(false, "default2"))
	assert.Equal(t, []string{"> [x] default", "  [ ] default2"}, plain(u))
}
