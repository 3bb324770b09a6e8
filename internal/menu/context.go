package menu

import (
	"errors"
	"fmt"

	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

var (
	ErrNotFound      = errors.New("menu entry not found")
	ErrNotAContainer = errors.New("menu entry is not a container")
)

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("menu: id %s not found", e.Key) }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type NotAContainerError struct {
	Key string
}

func (e *NotAContainerError) Error() string { return fmt.Sprintf("menu: %s is not a container", e.Key) }
func (e *NotAContainerError) Is(target error) bool { return target == ErrNotAContainer }

// Entries is the world resource holding the top-level menu group.
type Entries struct {
	ItemGroup
}

// Plugin installs an empty menu.
var Plugin = world.PluginFunc(func(w *world.World) {
	world.InitResource[Entries](w)
})

// Context adds entries to one container while the menu is being built.
type Context struct {
	container Container
	world     *world.World
}

// Add initializes source against the world and stores it under key.
func (c *Context) Add(key, name string, source Variant, priority int) {
	source.Initialize(c.world)
	c.container.Add(key, Item{Name: name, Source: source, Priority: priority})
}

// InsideSub runs fn against the container stored under key.
func (c *Context) InsideSub(key string, fn func(ctx *Context)) error {
	item, ok := c.container.GetMut(key)
	if !ok {
		return &NotFoundError{Key: key}
	}
	child, ok := item.Source.AsContainer()
	if !ok {
		return &NotAContainerError{Key: key}
	}
	fn(&Context{container: child, world: c.world})
	return nil
}

// WithSubMenu adds an empty sub menu under key and fills it with fn.
func (c *Context) WithSubMenu(key, name string, priority int, fn func(ctx *Context)) {
	c.Add(key, name, &SubMenu{}, priority)
	c.mustInside(key, fn)
}

// WithCategory adds an empty category under key and fills it with fn.
func (c *Context) WithCategory(key, name string, priority int, fn func(ctx *Context)) {
	c.Add(key, name, &Category{}, priority)
	c.mustInside(key, fn)
}

func (c *Context) mustInside(key string, fn func(ctx *Context)) {
	if err := c.InsideSub(key, fn); err != nil {
		panic(err)
	}
}

// Build borrows the menu resource and runs fn against its top level.
func Build(w *world.World, fn func(ctx *Context)) error {
	return world.Scope(w, func(w *world.World, e *Entries) error {
		fn(&Context{container: &e.ItemGroup, world: w})
		return nil
	})
}

// Show draws the whole menu.
func Show(ui *surface.Ui, w *world.World) error {
	return world.Scope(w, func(w *world.World, e *Entries) error {
		e.UI(ui, w)
		return nil
	})
}
