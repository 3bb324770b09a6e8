// Package menu is the application menu tree. Leaf entries are buttons bound
// to actions or custom draw callbacks; sub menus and categories hold ordered
// groups of further entries and expose them through the Container view.
package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

// Variant is the behaviour behind a menu entry.
type Variant interface {
	UI(ui *surface.Ui, w *world.World, name string)
	Initialize(w *world.World)
	// FindSubitem resolves a dotted path below this entry.
	FindSubitem(path string) (*Item, bool)
	// AsContainer returns the child view of container variants.
	AsContainer() (Container, bool)
}

// Item is one node of the menu tree. Lower priorities sort first.
type Item struct {
	Name     string
	Source   Variant
	Priority int
}

func (i *Item) UI(ui *surface.Ui, w *world.World) {
	i.Source.UI(ui, w, i.Name)
}

// leaf supplies the container methods for variants without children.
type leaf struct{}

func (leaf) Initialize(*world.World) {}
func (leaf) FindSubitem(string) (*Item, bool) { return nil, false }
func (leaf) AsContainer() (Container, bool) { return nil, false }

// Button runs an action when clicked. It is disabled while its condition is
// false.
type Button struct {
	leaf
	Action identifier.Identifier
	When   world.Condition
}

func NewButton(id identifier.Identifier) *Button {
	return &Button{Action: id, When: world.Always()}
}

func NewConditionedButton(id identifier.Identifier, when world.Condition) *Button {
	if when == nil {
		when = world.Always()
	}
	return &Button{Action: id, When: when}
}

func (b *Button) Initialize(w *world.World) {
	b.When.Initialize(w)
}

func (b *Button) UI(ui *surface.Ui, w *world.World, name string) {
	ui.AddEnabled(b.When.Check(w), func(ui *surface.Ui) {
		if !ui.Button(name) {
			return
		}
		events.Menu.Click(name, b.Action.String())
		if err := action.RunInstant(w, b.Action, action.Unit{}); err != nil {
			logging.Error(fmt.Errorf("menu %s: %w", name, err))
			notify.Push(w, notify.LevelError, err.Error())
		}
		ui.CloseMenu()
	})
}

// Custom delegates drawing to Draw.
type Custom struct {
	leaf
	Draw func(ui *surface.Ui, w *world.World, name string)
}

func NewCustom(draw func(ui *surface.Ui, w *world.World, name string)) *Custom {
	return &Custom{Draw: draw}
}

func (c *Custom) UI(ui *surface.Ui, w *world.World, name string) {
	if c.Draw != nil {
		c.Draw(ui, w, name)
	}
}

// SubMenu draws its group inside a flyout.
type SubMenu struct {
	Group ItemGroup
}

func (s *SubMenu) UI(ui *surface.Ui, w *world.World, name string) {
	ui.MenuButton(name, func(ui *surface.Ui) { s.Group.UI(ui, w) })
}

func (s *SubMenu) Initialize(w *world.World) { s.Group.Initialize(w) }
func (s *SubMenu) FindSubitem(path string) (*Item, bool) { return FindSubitemRecursive(&s.Group, path) }
func (s *SubMenu) AsContainer() (Container, bool) { return &s.Group, true }

// Category draws its group inline under a labelled rule.
type Category struct {
	Group ItemGroup
}

func (c *Category) UI(ui *surface.Ui, w *world.World, name string) {
	ui.LabeledSeparator(name)
	c.Group.UI(ui, w)
}

func (c *Category) Initialize(w *world.World) { c.Group.Initialize(w) }
func (c *Category) FindSubitem(path string) (*Item, bool) { return FindSubitemRecursive(&c.Group, path) }
func (c *Category) AsContainer() (Container, bool) { return &c.Group, true }

// FindSubitemRecursive resolves a dotted path such as "file.recent.clear"
// one segment at a time. It reports false when a segment is missing or an
// intermediate entry is not a container.
func FindSubitemRecursive(c Container, path string) (*Item, bool) {
	head, tail, nested := strings.Cut(path, identifier.Separator)
	item, ok := c.GetMut(head)
	if !ok {
		return nil, false
	}
	if !nested {
		return item, true
	}
	child, ok := item.Source.AsContainer()
	if !ok {
		return nil, false
	}
	return FindSubitemRecursive(child, tail)
}
