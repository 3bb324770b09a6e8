package menu

import (
	"cmp"
	"slices"

	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

// Container is the child view of a container entry.
type Container interface {
	Add(key string, item Item)
	Remove(key string) (Item, bool)
	Get(key string) (Item, bool)
	GetMut(key string) (*Item, bool)
}

// ItemGroup is an ordered map of entries kept sorted by priority. Entries of
// equal priority keep their insertion order.
type ItemGroup struct {
	keys  []string
	items map[string]*Item
}

var _ Container = (*ItemGroup)(nil)

// Add inserts item under key. An existing key is replaced in place before the
// group is re-sorted.
func (g *ItemGroup) Add(key string, item Item) {
	if g.items == nil {
		g.items = make(map[string]*Item)
	}
	if _, ok := g.items[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.items[key] = &item
	slices.SortStableFunc(g.keys, func(a, b string) int {
		return cmp.Compare(g.items[a].Priority, g.items[b].Priority)
	})
}

func (g *ItemGroup) Remove(key string) (Item, bool) {
	item, ok := g.items[key]
	if !ok {
		return Item{}, false
	}
	delete(g.items, key)
	g.keys = slices.DeleteFunc(g.keys, func(k string) bool { return k == key })
	return *item, true
}

func (g *ItemGroup) Get(key string) (Item, bool) {
	item, ok := g.items[key]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

func (g *ItemGroup) GetMut(key string) (*Item, bool) {
	item, ok := g.items[key]
	return item, ok
}

// Keys returns the local keys in display order.
func (g *ItemGroup) Keys() []string {
	return slices.Clone(g.keys)
}

// Items returns the entries in display order.
func (g *ItemGroup) Items() []*Item {
	out := make([]*Item, len(g.keys))
	for i, key := range g.keys {
		out[i] = g.items[key]
	}
	return out
}

func (g *ItemGroup) Len() int { return len(g.keys) }

// UI draws every entry in display order.
func (g *ItemGroup) UI(ui *surface.Ui, w *world.World) {
	for _, item := range g.Items() {
		item.UI(ui, w)
	}
}

func (g *ItemGroup) Initialize(w *world.World) {
	for _, item := range g.Items() {
		item.Source.Initialize(w)
	}
}
