// Package helium bundles the registries and host resources into one world
// and drives them once per frame.
package helium

import (
	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/dock"
	"github.com/atomicstack/helium/internal/hotkey"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/locale"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/menu"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/tab"
	"github.com/atomicstack/helium/internal/theme"
	"github.com/atomicstack/helium/internal/widgets"
	"github.com/atomicstack/helium/internal/world"
)

// Options configures the bundle.
type Options struct {
	Locale      string
	ErrorPolicy hotkey.ErrorPolicy
	Styles      *theme.Styles
}

// Exit is set by actions that want the host to stop.
type Exit struct {
	Requested bool
	Reason    string
}

// Plugins returns every plugin the framework needs, in install order.
func Plugins(opts Options) []world.Plugin {
	return []world.Plugin{
		action.Plugin,
		hotkey.Plugin,
		tab.Plugin,
		menu.Plugin,
		notify.Plugin,
		widgets.Plugin,
		locale.Plugin(opts.Locale),
		world.PluginFunc(func(w *world.World) {
			world.MustGet[hotkey.Policy](w).OnError = opts.ErrorPolicy
			world.InitResource[input.TextFocus](w)
			world.InitResource[Exit](w)
		}),
	}
}

// App owns a world with the framework installed.
type App struct {
	World  *world.World
	styles *theme.Styles
}

// New returns an App with every plugin installed.
func New(opts Options) *App {
	w := world.New()
	world.AddPlugins(w, Plugins(opts)...)
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	return &App{World: w, styles: styles}
}

// RegisterTab registers a plain draw function as a tab.
func (a *App) RegisterTab(id, title string, fn func(ctx *world.Context, ui *surface.Ui), available world.Condition) error {
	return tab.RegisterFunc(a.World, identifier.Parse(id), title, fn, available)
}

// RegisterHotkey appends hotkeys to the action id.
func (a *App) RegisterHotkey(id string, hotkeys ...hotkey.Hotkey) error {
	return hotkey.Register(a.World, identifier.Parse(id), hotkeys...)
}

// Menu adds entries to the top-level menu.
func (a *App) Menu(fn func(ctx *menu.Context)) error {
	return menu.Build(a.World, fn)
}

// Dock returns the dock layout.
func (a *App) Dock() *dock.State {
	return world.MustGet[dock.State](a.World)
}

// Keyboard returns the keyboard state the hotkeys read.
func (a *App) Keyboard() *input.Keyboard {
	return world.MustGet[input.Keyboard](a.World)
}

// Toasts returns the notification queue.
func (a *App) Toasts() *notify.Toasts {
	return world.MustGet[notify.Toasts](a.World)
}

// ExitRequested reports whether an action asked the host to stop.
func (a *App) ExitRequested() (bool, string) {
	e := world.MustGet[Exit](a.World)
	return e.Requested, e.Reason
}

// Summary describes what has been registered with an App.
type Summary struct {
	Actions     int      `json:"actions"`
	Hotkeys     int      `json:"hotkeys"`
	Tabs        int      `json:"tabs"`
	MenuEntries int      `json:"menuEntries"`
	Docked      []string `json:"docked"`
	Locale      string   `json:"locale"`
	ErrorPolicy string   `json:"errorPolicy"`
}

// Summary counts the registries. It must not be called from inside a
// system that has one of them checked out.
func (a *App) Summary() Summary {
	w := a.World
	s := Summary{
		Actions:     world.MustGet[action.Registry](w).Len(),
		Hotkeys:     world.MustGet[hotkey.Registry](w).Len(),
		Tabs:        world.MustGet[tab.Registry](w).Len(),
		MenuEntries: world.MustGet[menu.Entries](w).Len(),
		Locale:      world.MustGet[locale.Locale](w).Tag().String(),
		ErrorPolicy: world.MustGet[hotkey.Policy](w).OnError.String(),
	}
	for _, id := range a.Dock().Tabs() {
		s.Docked = append(s.Docked, id.String())
	}
	return s
}

// Tick runs one input frame: hotkeys are dispatched, deferred commands
// flushed and key edges cleared. It returns the number of hotkeys that fired.
func (a *App) Tick() (int, error) {
	fired, err := hotkey.Dispatch(a.World)
	events.World.Flush(a.World.Flush())
	a.Keyboard().Clear()
	return fired, err
}

// Draw runs one draw pass over the menu and the dock and flushes the
// commands it queued.
func (a *App) Draw(frame *surface.Frame) *surface.Ui {
	ui := surface.New(frame, a.styles)
	if err := menu.Show(ui, a.World); err != nil {
		return ui
	}
	ui.Separator()
	tab.Show(a.World, ui)
	events.World.Flush(a.World.Flush())
	return ui
}

// RequestExit is a helper for quit actions.
func RequestExit(w *world.World, reason string) {
	e := world.InitResource[Exit](w)
	e.Requested = true
	e.Reason = reason
}
