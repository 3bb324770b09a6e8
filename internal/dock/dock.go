// Package dock holds the host-owned layout of open tabs. The core only asks
// whether a tab is placed and requests placement or removal.
package dock

import (
	"slices"

	"github.com/atomicstack/helium/internal/identifier"
)

// State is the ordered set of open tabs and the index of the focused one.
type State struct {
	tabs    []identifier.Identifier
	focused int
}

// New returns a dock holding tabs in order with the first one focused.
// Duplicates are dropped.
func New(tabs ...identifier.Identifier) *State {
	s := &State{}
	for _, id := range tabs {
		s.Add(id)
	}
	s.focused = 0
	return s
}

// Find returns the position of id in the dock.
func (s *State) Find(id identifier.Identifier) (int, bool) {
	idx := slices.Index(s.tabs, id)
	return idx, idx >= 0
}

func (s *State) Contains(id identifier.Identifier) bool {
	_, ok := s.Find(id)
	return ok
}

// Add places id at the end of the dock and focuses it. Adding a placed tab
// only focuses it.
func (s *State) Add(id identifier.Identifier) {
	if idx, ok := s.Find(id); ok {
		s.focused = idx
		return
	}
	s.tabs = append(s.tabs, id)
	s.focused = len(s.tabs) - 1
}

// Remove takes id out of the dock and reports whether it was placed. Focus
// stays on the same tab when possible. Removing the focused tab hands focus
// to the tab that slides into its slot, or to the new last tab.
func (s *State) Remove(id identifier.Identifier) bool {
	idx, ok := s.Find(id)
	if !ok {
		return false
	}
	s.tabs = slices.Delete(s.tabs, idx, idx+1)
	if idx < s.focused || s.focused >= len(s.tabs) {
		s.focused--
	}
	if s.focused < 0 {
		s.focused = 0
	}
	return true
}

// Toggle removes id when placed and adds it otherwise. It returns whether the
// tab is open afterwards.
func (s *State) Toggle(id identifier.Identifier) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Focus moves focus to id if it is placed.
func (s *State) Focus(id identifier.Identifier) bool {
	idx, ok := s.Find(id)
	if ok {
		s.focused = idx
	}
	return ok
}

// Focused returns the focused tab, or false when the dock is empty.
func (s *State) Focused() (identifier.Identifier, bool) {
	if len(s.tabs) == 0 {
		return identifier.Identifier{}, false
	}
	return s.tabs[s.focused], true
}

// FocusNext cycles focus to the right, wrapping around.
func (s *State) FocusNext() {
	if len(s.tabs) > 0 {
		s.focused = (s.focused + 1) % len(s.tabs)
	}
}

// FocusPrev cycles focus to the left, wrapping around.
func (s *State) FocusPrev() {
	if len(s.tabs) > 0 {
		s.focused = (s.focused - 1 + len(s.tabs)) % len(s.tabs)
	}
}

// Tabs returns a copy of the placed tabs in order.
func (s *State) Tabs() []identifier.Identifier {
	return slices.Clone(s.tabs)
}

func (s *State) Len() int { return len(s.tabs) }
