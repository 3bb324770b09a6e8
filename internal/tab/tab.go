// Package tab keeps the renderable tabs that the dock can place, each gated
// by an availability condition.
package tab

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/helium/internal/dock"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/locale"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

// ID names a tab.
type ID = identifier.Identifier

// MissingTitle is shown for tabs placed in the dock without a registration.
const MissingTitle = "MISSINGNO"

// ErrNotAvailable matches every *NotAvailableError.
var ErrNotAvailable = errors.New("tab not available")

// NotAvailableError reports a tab whose availability condition is false.
type NotAvailableError struct {
	Title string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("tab %s is not available", e.Title)
}

func (e *NotAvailableError) Is(target error) bool { return target == ErrNotAvailable }

// Storage is one registered tab.
type Storage struct {
	system    world.System[*surface.Ui]
	available world.Condition
	title     string
}

func (s *Storage) Title() string { return s.title }

// RunWith draws the tab into a child of ui when its condition holds.
// Mutations the tab defers are applied before it returns.
func (s *Storage) RunWith(w *world.World, ui *surface.Ui) error {
	if s.available != nil && !s.available.Check(w) {
		return &NotAvailableError{Title: s.title}
	}
	s.system.Run(ui.NewChild(), w)
	s.system.ApplyDeferred(w)
	return nil
}

// Registry maps identifiers to tabs, remembering registration order.
type Registry struct {
	order []ID
	tabs  map[ID]*Storage
}

// Insert stores a tab, replacing any previous registration of id.
func (r *Registry) Insert(id ID, s *Storage) {
	if r.tabs == nil {
		r.tabs = make(map[ID]*Storage)
	}
	if _, ok := r.tabs[id]; !ok {
		r.order = append(r.order, id)
	}
	r.tabs[id] = s
}

func (r *Registry) Get(id ID) (*Storage, bool) {
	s, ok := r.tabs[id]
	return s, ok
}

// IDs returns the registered tabs in registration order.
func (r *Registry) IDs() []ID {
	return append([]ID(nil), r.order...)
}

func (r *Registry) Len() int { return len(r.order) }

// Title returns the registered title of id, or MissingTitle.
func (r *Registry) Title(id ID) string {
	if s, ok := r.tabs[id]; ok {
		return s.title
	}
	return MissingTitle
}

// TabUI draws tab id. Unknown tabs and unavailable tabs draw a placeholder
// instead; neither is an error for the caller.
func (r *Registry) TabUI(ui *surface.Ui, w *world.World, id ID) {
	s, ok := r.tabs[id]
	if !ok {
		events.Tab.Missing(id.String())
		ui.ColoredLabel(lipgloss.Color("196"), locale.T(w, locale.TabNonExist, id.String()))
		return
	}
	if err := s.RunWith(w, ui); err != nil {
		events.Tab.Unavailable(id.String())
		ui.Italic(locale.T(w, locale.TabNotAvailable))
	}
}

// FocusedTab is the resource naming the tab that currently has focus.
type FocusedTab struct {
	ID    ID
	Valid bool
}

// Plugin installs an empty registry, the focus tracker and an empty dock.
var Plugin = world.PluginFunc(func(w *world.World) {
	world.InitResource[Registry](w)
	world.InitResource[FocusedTab](w)
	if !world.Contains[dock.State](w) {
		world.Insert(w, dock.New())
	}
})

// Register initializes system and available against w and stores the tab.
// A nil condition means always available.
func Register(w *world.World, id ID, title string, system world.System[*surface.Ui], available world.Condition) error {
	if available == nil {
		available = world.Always()
	}
	return world.Scope(w, func(w *world.World, r *Registry) error {
		system.Initialize(w)
		available.Initialize(w)
		r.Insert(id, &Storage{system: system, available: available, title: title})
		events.Tab.Registered(id.String(), title)
		return nil
	})
}

// RegisterFunc registers a plain draw function.
func RegisterFunc(w *world.World, id ID, title string, fn func(ctx *world.Context, ui *surface.Ui), available world.Condition) error {
	return Register(w, id, title, world.IntoSystem(fn), available)
}

// Focused holds while id is the focused tab.
func Focused(id ID) world.Condition {
	return world.ResourceEquals(FocusedTab{ID: id, Valid: true})
}

// Opened holds while the dock has id placed.
func Opened(id ID) world.Condition {
	return world.ConditionFunc(func(w *world.World) bool {
		d, ok := world.Get[dock.State](w)
		return ok && d.Contains(id)
	})
}

// SyncFocus copies the dock's focused tab into the FocusedTab resource.
func SyncFocus(w *world.World) {
	d, ok := world.Get[dock.State](w)
	if !ok {
		return
	}
	f := world.InitResource[FocusedTab](w)
	id, valid := d.Focused()
	if f.ID != id || f.Valid != valid {
		events.Tab.Focus(id.String())
	}
	*f = FocusedTab{ID: id, Valid: valid}
}

// Show draws the dock's tab strip followed by the focused tab.
func Show(w *world.World, ui *surface.Ui) {
	SyncFocus(w)
	d, ok := world.Get[dock.State](w)
	if !ok {
		return
	}
	focused, hasFocus := d.Focused()
	tabs := d.Tabs()
	_ = world.Scope(w, func(w *world.World, r *Registry) error {
		styles := ui.Styles()
		strip := make([]string, 0, len(tabs))
		for _, id := range tabs {
			style := styles.Tab
			if hasFocus && id == focused {
				style = styles.ActiveTab
			}
			strip = append(strip, style.Render(r.Title(id)))
		}
		if len(strip) > 0 {
			ui.Line(lipgloss.JoinHorizontal(lipgloss.Top, strip...))
			ui.Separator()
		}
		if hasFocus {
			r.TabUI(ui, w, focused)
		}
		return nil
	})
}
