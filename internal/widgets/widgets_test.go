package widgets

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/helium/internal/dock"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/tab"
	"github.com/atomicstack/helium/internal/world"
)

func pass(frame *surface.Frame, activate bool) *surface.Ui {
	frame.Begin(activate)
	return surface.New(frame, nil)
}

func strip(ui *surface.Ui) []string {
	out := make([]string, len(ui.Lines()))
	for i, l := range ui.Lines() {
		out[i] = ansi.Strip(l)
	}
	return out
}

func TestDockButtonsToggleTabs(t *testing.T) {
	w := world.New()
	world.AddPlugins(w, tab.Plugin)
	a, b := identifier.Parse("default"), identifier.Parse("default2")
	noop := func(*world.Context, *surface.Ui) {}
	require.NoError(t, tab.RegisterFunc(w, a, "First", noop, nil))
	require.NoError(t, tab.RegisterFunc(w, b, "Second", noop, nil))
	world.MustGet[dock.State](w).Add(a)

	frame := surface.NewFrame(0)
	ui := pass(frame, false)
	DockButtons(ui, w, "")
	assert.Equal(t, []string{"> [x] First", "  [ ] Second"}, strip(ui))

	frame.MoveCursor(1)
	DockButtons(pass(frame, true), w, "")
	d := world.MustGet[dock.State](w)
	assert.True(t, d.Contains(b))
	assert.False(t, frame.MenuOpen())

	DockButtons(pass(frame, true), w, "")
	assert.False(t, d.Contains(b))
	assert.True(t, d.Contains(a))
}

type counter struct{ built, runs int }

func TestWidgetCachesSystem(t *testing.T) {
	w := world.New()
	world.AddPlugins(w, Plugin)
	world.InitResource[counter](w)
	build := func() world.System[*surface.Ui] {
		world.MustGet[counter](w).built++
		return world.IntoSystem(func(ctx *world.Context, ui *surface.Ui) {
			world.MustGet[counter](ctx.World).runs++
			ui.Label("cached")
		})
	}

	frame := surface.NewFrame(0)
	for range 3 {
		Widget(w, pass(frame, false), "counter", build)
	}
	c := world.MustGet[counter](w)
	assert.Equal(t, 1, c.built)
	assert.Equal(t, 3, c.runs)
	assert.Equal(t, 1, world.MustGet[Cache](w).Len())
}

func TestWidgetEvictionRebuilds(t *testing.T) {
	w := world.New()
	cache, err := NewCache(1)
	require.NoError(t, err)
	world.Insert(w, cache)
	built := map[string]int{}
	factory := func(name string) func() world.System[*surface.Ui] {
		return func() world.System[*surface.Ui] {
			built[name]++
			return world.IntoSystem(func(*world.Context, *surface.Ui) {})
		}
	}
	frame := surface.NewFrame(0)
	Widget(w, pass(frame, false), "a", factory("a"))
	Widget(w, pass(frame, false), "b", factory("b"))
	Widget(w, pass(frame, false), "a", factory("a"))
	assert.Equal(t, 2, built["a"])
	assert.Equal(t, 1, built["b"])
}

func TestNewCacheRejectsZero(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
