package input

import (
	"cmp"
	"slices"
)

// ButtonInput tracks which buttons are held plus the press and release edges
// observed since the last Clear.
type ButtonInput[T cmp.Ordered] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

func (b *ButtonInput[T]) init() {
	if b.pressed == nil {
		b.pressed = make(map[T]struct{})
		b.justPressed = make(map[T]struct{})
		b.justReleased = make(map[T]struct{})
	}
}

// Press marks button as held. A press of an already held button is not a new
// edge.
func (b *ButtonInput[T]) Press(button T) {
	b.init()
	if _, held := b.pressed[button]; held {
		return
	}
	b.pressed[button] = struct{}{}
	b.justPressed[button] = struct{}{}
}

// Release marks button as up and records a release edge if it was held.
func (b *ButtonInput[T]) Release(button T) {
	b.init()
	if _, held := b.pressed[button]; !held {
		return
	}
	delete(b.pressed, button)
	b.justReleased[button] = struct{}{}
}

// ReleaseAll releases every held button.
func (b *ButtonInput[T]) ReleaseAll() {
	for _, button := range b.GetPressed() {
		b.Release(button)
	}
}

func (b *ButtonInput[T]) Pressed(button T) bool {
	_, ok := b.pressed[button]
	return ok
}

func (b *ButtonInput[T]) JustPressed(button T) bool {
	_, ok := b.justPressed[button]
	return ok
}

func (b *ButtonInput[T]) JustReleased(button T) bool {
	_, ok := b.justReleased[button]
	return ok
}

// AllPressed reports whether every button in buttons is held.
func (b *ButtonInput[T]) AllPressed(buttons ...T) bool {
	for _, button := range buttons {
		if !b.Pressed(button) {
			return false
		}
	}
	return true
}

// ClearJustPressed consumes the press edge of button and reports whether
// there was one.
func (b *ButtonInput[T]) ClearJustPressed(button T) bool {
	_, ok := b.justPressed[button]
	delete(b.justPressed, button)
	return ok
}

// ClearJustReleased consumes the release edge of button and reports whether
// there was one.
func (b *ButtonInput[T]) ClearJustReleased(button T) bool {
	_, ok := b.justReleased[button]
	delete(b.justReleased, button)
	return ok
}

// Clear drops all edges. Held buttons stay held. The host calls it at the end
// of every tick.
func (b *ButtonInput[T]) Clear() {
	clear(b.justPressed)
	clear(b.justReleased)
}

// GetPressed returns the held buttons in sorted order.
func (b *ButtonInput[T]) GetPressed() []T {
	out := make([]T, 0, len(b.pressed))
	for button := range b.pressed {
		out = append(out, button)
	}
	slices.Sort(out)
	return out
}

// Keyboard is the keyboard state resource.
type Keyboard = ButtonInput[KeyCode]
