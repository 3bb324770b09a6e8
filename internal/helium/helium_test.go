package helium

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/hotkey"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/menu"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/world"
)

func TestNewInstallsEverything(t *testing.T) {
	app := New(Options{ErrorPolicy: hotkey.PolicyNotify})
	assert.NotNil(t, app.Dock())
	assert.NotNil(t, app.Keyboard())
	assert.NotNil(t, app.Toasts())
	assert.Equal(t, hotkey.PolicyNotify, world.MustGet[hotkey.Policy](app.World).OnError)
	assert.True(t, world.Contains[input.TextFocus](app.World))
	assert.True(t, world.Contains[action.Registry](app.World))
}

func TestTickFiresHotkeyAndClearsEdges(t *testing.T) {
	app := New(Options{})
	require.NoError(t, action.RegisterFunc(app.World, identifier.Parse("quit"), "Quit", func(ctx *world.Context, _ action.Unit) {
		RequestExit(ctx.World, "bye")
	}))
	require.NoError(t, app.RegisterHotkey("quit", hotkey.Global(input.ControlLeft, input.KeyQ)))

	kb := app.Keyboard()
	kb.Press(input.ControlLeft)
	kb.Press(input.KeyQ)
	fired, err := app.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.False(t, kb.JustPressed(input.KeyQ))

	ok, reason := app.ExitRequested()
	assert.True(t, ok)
	assert.Equal(t, "bye", reason)

	fired, err = app.Tick()
	require.NoError(t, err)
	assert.Zero(t, fired)
}

func TestDrawRendersMenuAndDock(t *testing.T) {
	app := New(Options{})
	require.NoError(t, app.RegisterTab("default", "Home", func(_ *world.Context, ui *surface.Ui) {
		ui.Label("hello")
	}, nil))
	app.Dock().Add(identifier.Parse("default"))
	require.NoError(t, app.Menu(func(ctx *menu.Context) {
		ctx.Add("quit", "Quit", menu.NewButton(identifier.Parse("quit")), 0)
	}))

	frame := surface.NewFrame(0)
	frame.Begin(false)
	out := ansi.Strip(app.Draw(frame).String())
	assert.True(t, strings.HasPrefix(out, "> Quit"))
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "hello")
}

func TestSummaryCountsRegistrations(t *testing.T) {
	app := New(Options{Locale: "en", ErrorPolicy: hotkey.PolicyIgnore})
	require.NoError(t, action.RegisterFunc(app.World, identifier.Parse("quit"), "", func(*world.Context, action.Unit) {}))
	require.NoError(t, app.RegisterHotkey("quit", hotkey.Global(input.KeyQ)))
	require.NoError(t, app.RegisterTab("home", "Home", func(*world.Context, *surface.Ui) {}, nil))
	app.Dock().Add(identifier.Parse("home"))

	s := app.Summary()
	assert.Equal(t, 1, s.Actions)
	assert.Equal(t, 1, s.Hotkeys)
	assert.Equal(t, 1, s.Tabs)
	assert.Zero(t, s.MenuEntries)
	assert.Equal(t, []string{"home"}, s.Docked)
	assert.Equal(t, "en", s.Locale)
	assert.Equal(t, "ignore", s.ErrorPolicy)
}
