package menu

import (
	"math"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

type clicks struct{ n int }

func button(name string, priority int) Item {
	return Item{Name: name, Source: NewButton(identifier.Parse("wtf.is.this")), Priority: priority}
}

func construct() *SubMenu {
	category := &Category{}
	category.Group.Add("item1", button("Item1", 0))
	category.Group.Add("item2", button("Item2", 0))

	root := &SubMenu{}
	root.Group.Add("item1", button("Item1", 0))
	root.Group.Add("category2", Item{Name: "category", Source: category})
	return root
}

func TestPriorityOrdering(t *testing.T) {
	var g ItemGroup
	g.Add("five", button("5", 5))
	g.Add("one", button("1", 1))
	g.Add("three", button("3", 3))
	assert.Equal(t, []string{"one", "three", "five"}, g.Keys())
}

func TestPriorityExtremes(t *testing.T) {
	var g ItemGroup
	g.Add("last", button("last", 1))
	g.Add("first", button("first", math.MinInt))
	g.Add("max", button("max", math.MaxInt))
	g.Add("zero", button("zero", 0))
	assert.Equal(t, []string{"first", "zero", "last", "max"}, g.Keys())
}

func TestPriorityTiesKeepInsertionOrder(t *testing.T) {
	var g ItemGroup
	g.Add("b", button("b", 1))
	g.Add("a", button("a", 1))
	g.Add("first", button("first", 0))
	g.Add("c", button("c", 1))
	assert.Equal(t, []string{"first", "b", "a", "c"}, g.Keys())
}

func TestReinsertReplacesInPlace(t *testing.T) {
	var g ItemGroup
	g.Add("a", button("A", 0))
	g.Add("b", button("B", 0))
	g.Add("a", button("A2", 0))
	assert.Equal(t, []string{"a", "b"}, g.Keys())
	item, ok := g.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A2", item.Name)
}

func TestRemove(t *testing.T) {
	var g ItemGroup
	g.Add("a", button("A", 0))
	g.Add("b", button("B", 0))
	removed, ok := g.Remove("a")
	require.True(t, ok)
	assert.Equal(t, "A", removed.Name)
	_, ok = g.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, g.Keys())
}

func TestFindSubitemRecursive(t *testing.T) {
	root := construct()

	item, ok := root.FindSubitem("item1")
	require.True(t, ok)
	assert.Equal(t, "Item1", item.Name)

	item, ok = root.FindSubitem("category2.item1")
	require.True(t, ok)
	assert.Equal(t, "Item1", item.Name)

	_, ok = root.FindSubitem("category2.item1.nonexist")
	assert.False(t, ok)
	_, ok = root.FindSubitem("missing")
	assert.False(t, ok)
	_, ok = root.FindSubitem("")
	assert.False(t, ok)
}

func TestGetMutEditsInPlace(t *testing.T) {
	root := construct()
	item, ok := root.FindSubitem("category2.item2")
	require.True(t, ok)
	item.Name = "Renamed"

	again, ok := root.FindSubitem("category2.item2")
	require.True(t, ok)
	assert.Equal(t, "Renamed", again.Name)
}

func TestLeavesAreNotContainers(t *testing.T) {
	_, ok := NewButton(identifier.Parse("x")).AsContainer()
	assert.False(t, ok)
	_, ok = NewCustom(nil).AsContainer()
	assert.False(t, ok)
	_, ok = (&Category{}).AsContainer()
	assert.True(t, ok)
}

func newWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New()
	world.AddPlugins(w, action.Plugin, notify.Plugin, Plugin)
	world.InitResource[clicks](w)
	require.NoError(t, action.RegisterFunc(w, identifier.Parse("quit"), "", func(ctx *world.Context, _ action.Unit) {
		world.MustGet[clicks](ctx.World).n++
	}))
	return w
}

func TestBuildContext(t *testing.T) {
	w := newWorld(t)
	err := Build(w, func(ctx *Context) {
		ctx.WithSubMenu("file", "File", 0, func(ctx *Context) {
			ctx.Add("quit", "Quit", NewButton(identifier.Parse("quit")), 10)
		})
		ctx.WithCategory("window", "Window", 1, func(ctx *Context) {
			ctx.Add("note", "Note", NewCustom(func(ui *surface.Ui, _ *world.World, name string) { ui.Label(name) }), 0)
		})
		assert.NoError(t, ctx.InsideSub("file", func(ctx *Context) {
			ctx.Add("open", "Open", NewButton(identifier.Parse("open")), 0)
		}))

		err := ctx.InsideSub("nope", func(*Context) {})
		assert.ErrorIs(t, err, ErrNotFound)
		ctx.Add("leaf", "Leaf", NewButton(identifier.Parse("quit")), 5)
		err = ctx.InsideSub("leaf", func(*Context) {})
		assert.ErrorIs(t, err, ErrNotAContainer)
		assert.EqualError(t, err, "menu: leaf is not a container")
	})
	require.NoError(t, err)

	entries := world.MustGet[Entries](w)
	assert.Equal(t, []string{"file", "window", "leaf"}, entries.Keys())
	file, ok := FindSubitemRecursive(&entries.ItemGroup, "file")
	require.True(t, ok)
	sub, _ := file.Source.AsContainer()
	assert.Equal(t, []string{"open", "quit"}, sub.(*ItemGroup).Keys())
}

func draw(w *world.World, frame *surface.Frame, activate bool) []string {
	frame.Begin(activate)
	ui := surface.New(frame, nil)
	_ = Show(ui, w)
	lines := make([]string, len(ui.Lines()))
	for i, l := range ui.Lines() {
		lines[i] = ansi.Strip(l)
	}
	return lines
}

func TestButtonClickRunsActionAndClosesMenu(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, Build(w, func(ctx *Context) {
		ctx.WithSubMenu("file", "File", 0, func(ctx *Context) {
			ctx.Add("quit", "Quit", NewButton(identifier.Parse("quit")), 0)
		})
	}))
	frame := surface.NewFrame(0)

	assert.Equal(t, []string{"> File ▸"}, draw(w, frame, false))
	assert.Equal(t, []string{"> File ▾", "    Quit"}, draw(w, frame, true))

	frame.MoveCursor(1)
	draw(w, frame, true)
	assert.Equal(t, 1, world.MustGet[clicks](w).n)
	assert.Equal(t, []string{"  File ▸"}, draw(w, frame, false))
}

func TestDisabledButtonDoesNotRun(t *testing.T) {
	type allowed struct{ ok bool }
	w := newWorld(t)
	world.Insert(w, &allowed{})
	require.NoError(t, Build(w, func(ctx *Context) {
		ctx.Add("quit", "Quit", NewConditionedButton(identifier.Parse("quit"), world.ResourceEquals(allowed{ok: true})), 0)
	}))
	frame := surface.NewFrame(0)
	draw(w, frame, true)
	assert.Zero(t, world.MustGet[clicks](w).n)

	world.MustGet[allowed](w).ok = true
	draw(w, frame, true)
	assert.Equal(t, 1, world.MustGet[clicks](w).n)
}

func TestFailedClickIsNotFatal(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, Build(w, func(ctx *Context) {
		ctx.Add("ghost", "Ghost", NewButton(identifier.Parse("ghost")), 0)
	}))
	frame := surface.NewFrame(0)
	draw(w, frame, true)
	toasts := world.MustGet[notify.Toasts](w).Items()
	require.Len(t, toasts, 1)
	assert.Contains(t, toasts[0].Text, "ghost")
}

func TestCategoryDrawsInline(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, Build(w, func(ctx *Context) {
		ctx.WithCategory("view", "View", 0, func(ctx *Context) {
			ctx.Add("quit", "Quit", NewButton(identifier.Parse("quit")), 0)
		})
	}))
	lines := draw(w, surface.NewFrame(0), false)
	assert.Equal(t, []string{"── View ──", "> Quit"}, lines)
}
