// Package surface is the immediate-mode text drawing layer. Widgets are
// re-declared on every draw pass; a Frame carries the little state that must
// survive between passes: which interactive widget holds the cursor, whether
// the pass should activate it, and which flyout menus are open.
package surface

// Frame is the interaction state shared by every Ui of one draw pass.
type Frame struct {
	Width int

	cursor      int
	activate    bool
	widgets     int
	lastWidgets int
	flyouts     map[string]bool
	closeMenu   bool
}

// NewFrame returns a frame that truncates lines to width cells. A width of
// zero disables truncation.
func NewFrame(width int) *Frame {
	return &Frame{Width: width, flyouts: make(map[string]bool)}
}

// Begin starts a draw pass. When activate is set the focused widget reports a
// click during this pass. A close request from the previous pass collapses
// every flyout.
func (f *Frame) Begin(activate bool) {
	f.lastWidgets = f.widgets
	f.widgets = 0
	f.activate = activate
	if f.flyouts == nil {
		f.flyouts = make(map[string]bool)
	}
	if f.closeMenu {
		clear(f.flyouts)
		f.closeMenu = false
	}
	f.clamp()
}

// MoveCursor shifts the focus by delta widgets, clamped to the widgets drawn
// by the last pass.
func (f *Frame) MoveCursor(delta int) {
	f.cursor += delta
	f.clamp()
}

func (f *Frame) clamp() {
	limit := f.Widgets()
	if f.cursor >= limit {
		f.cursor = limit - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

// Cursor returns the index of the focused widget.
func (f *Frame) Cursor() int { return f.cursor }

// Widgets returns the number of interactive widgets declared so far in the
// current pass, or by the previous pass if none have been declared yet.
func (f *Frame) Widgets() int {
	if f.widgets == 0 {
		return f.lastWidgets
	}
	return f.widgets
}

// CloseMenu requests that all flyouts collapse before the next pass.
func (f *Frame) CloseMenu() { f.closeMenu = true }

// MenuOpen reports whether any flyout is open.
func (f *Frame) MenuOpen() bool { return len(f.flyouts) > 0 }

// next registers an interactive widget and reports whether it is focused and
// whether it was activated. Activation is consumed by the first focused
// enabled widget.
func (f *Frame) next(enabled bool) (focused, clicked bool) {
	idx := f.widgets
	f.widgets++
	focused = idx == f.cursor
	if focused && enabled && f.activate {
		f.activate = false
		clicked = true
	}
	return focused, clicked
}
