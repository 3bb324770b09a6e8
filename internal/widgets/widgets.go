// Package widgets holds reusable drawing helpers built on the registries.
package widgets

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/atomicstack/helium/internal/dock"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/tab"
	"github.com/atomicstack/helium/internal/world"
)

// DefaultCacheSize bounds how many widget systems stay initialized.
const DefaultCacheSize = 64

// Cache keeps initialized widget systems by name so their state survives
// between draw passes.
type Cache struct {
	systems *lru.Cache[string, world.System[*surface.Ui]]
}

// NewCache returns a cache holding at most size systems.
func NewCache(size int) (*Cache, error) {
	systems, err := lru.New[string, world.System[*surface.Ui]](size)
	if err != nil {
		return nil, err
	}
	return &Cache{systems: systems}, nil
}

func (c *Cache) Len() int { return c.systems.Len() }

// Plugin installs a widget cache of DefaultCacheSize.
var Plugin = world.PluginFunc(func(w *world.World) {
	if world.Contains[Cache](w) {
		return
	}
	c, err := NewCache(DefaultCacheSize)
	if err != nil {
		panic(err)
	}
	world.Insert(w, c)
})

// Widget draws the system cached under name, building and initializing it
// with build on first use or after eviction. Without a cache the system is
// built for this call only.
func Widget(w *world.World, ui *surface.Ui, name string, build func() world.System[*surface.Ui]) {
	var system world.System[*surface.Ui]
	c, cached := world.Get[Cache](w)
	if cached {
		system, _ = c.systems.Get(name)
	}
	if system == nil {
		system = build()
		system.Initialize(w)
		if cached {
			c.systems.Add(name, system)
		}
	}
	system.Run(ui, w)
	system.ApplyDeferred(w)
}

// DockButtons lists every registered tab as a toggle. Activating one adds
// the tab to the dock or removes it, then closes the menu.
func DockButtons(ui *surface.Ui, w *world.World, _ string) {
	d, ok := world.Get[dock.State](w)
	if !ok {
		return
	}
	var (
		toggled identifier.Identifier
		clicked bool
	)
	_ = world.Scope(w, func(_ *world.World, r *tab.Registry) error {
		for _, id := range r.IDs() {
			if ui.SelectableLabel(d.Contains(id), r.Title(id)) {
				toggled, clicked = id, true
				ui.CloseMenu()
			}
		}
		return nil
	})
	if clicked {
		open := d.Toggle(toggled)
		events.Tab.Toggle(toggled.String(), open)
	}
}
