package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/format/table"
	"github.com/atomicstack/helium/internal/helium"
	"github.com/atomicstack/helium/internal/hotkey"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/locale"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/menu"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/ui"
	"github.com/atomicstack/helium/internal/widgets"
	"github.com/atomicstack/helium/internal/world"
)

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	Keymap         string
	DispatchErrors hotkey.ErrorPolicy
	Locale         string
	ListActions    bool
	Query          string
}

// Clicks counts presses of the demo log button.
type Clicks struct {
	N int
}

// Maximized is toggled by the maximize action.
type Maximized struct {
	On bool
}

// Note is the demo tab's editable text.
type Note struct {
	Field textinput.Model
}

// Run executes the Bubble Tea program over a, or prints the action table when
// cfg asks for a listing.
func Run(a *helium.App, cfg Config, out io.Writer) error {
	if cfg.ListActions {
		return ListActions(out, a.World, cfg.Query)
	}
	model := ui.NewModel(a, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Build creates the demo app: three actions, five dock tabs, a File and a
// Window menu, and the maximize hotkey, plus any keymap file bindings.
func Build(cfg Config) (*helium.App, error) {
	a := helium.New(helium.Options{Locale: cfg.Locale, ErrorPolicy: cfg.DispatchErrors})
	w := a.World
	world.InitResource[Clicks](w)
	world.InitResource[Maximized](w)
	note := textinput.New()
	note.Placeholder = "type a note"
	note.Cursor.SetMode(cursor.CursorStatic)
	world.Insert(w, &Note{Field: note})

	if err := registerActions(w); err != nil {
		return nil, err
	}
	for i, id := range []string{"default", "default2", "default3", "default4", "default5"} {
		title := "Default"
		if i > 0 {
			title = fmt.Sprintf("Default%d", i+1)
		}
		if err := a.RegisterTab(id, title, defaultTab, nil); err != nil {
			return nil, err
		}
	}
	a.Dock().Add(identifier.Parse("default"))

	// Terminals report ctrl+m as enter, so the chord is ctrl+t here.
	if err := a.RegisterHotkey("maximize", hotkey.Global(input.ControlLeft, input.KeyT)); err != nil {
		return nil, err
	}
	if err := a.RegisterHotkey("quit", hotkey.Global(input.ControlLeft, input.KeyQ)); err != nil {
		return nil, err
	}
	if cfg.Keymap != "" {
		bindings, err := hotkey.LoadKeymapFile(cfg.Keymap)
		if err != nil {
			return nil, err
		}
		if err := hotkey.ApplyKeymap(w, bindings); err != nil {
			return nil, fmt.Errorf("apply keymap %s: %w", cfg.Keymap, err)
		}
	}

	tabsLabel := locale.T(w, locale.DockButtons)
	err := a.Menu(func(ctx *menu.Context) {
		ctx.WithSubMenu("file", "File", 0, func(ctx *menu.Context) {
			ctx.Add("quit", "Quit", menu.NewButton(identifier.Parse("quit")), 0)
		})
		ctx.WithSubMenu("window", "Window", 1, func(ctx *menu.Context) {
			ctx.Add("win", tabsLabel, menu.NewCustom(func(ui *surface.Ui, w *world.World, _ string) {
				widgets.Widget(w, ui, "dock_buttons", dockButtons)
			}), 0)
		})
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func registerActions(w *world.World) error {
	if err := action.RegisterFunc(w, identifier.Parse("maximize"), "show mouse, events", maximize); err != nil {
		return err
	}
	if err := action.RegisterFunc(w, identifier.Parse("basic.log_clicked"), "log click times", logClicked); err != nil {
		return err
	}
	return action.RegisterFunc(w, identifier.Parse("quit"), "quit", func(ctx *world.Context, _ action.Unit) {
		helium.RequestExit(ctx.World, "quit")
	})
}

func maximize(ctx *world.Context, _ action.Unit) {
	m := world.MustGet[Maximized](ctx.World)
	m.On = !m.On
	state := "restored"
	if m.On {
		state = "maximized"
	}
	logging.Info("window state", "state", state)
	notify.Push(ctx.World, notify.LevelSuccess, "window "+state)
}

func logClicked(ctx *world.Context, _ action.Unit) {
	n := world.MustGet[Clicks](ctx.World).N
	logging.Info("log button clicked", "times", n)
	notify.Push(ctx.World, notify.LevelInfo, fmt.Sprintf("clicked %d times", n))
}

func dockButtons() world.System[*surface.Ui] {
	return world.IntoSystem(func(ctx *world.Context, ui *surface.Ui) {
		widgets.DockButtons(ui, ctx.World, "")
	})
}

func defaultTab(ctx *world.Context, ui *surface.Ui) {
	w := ctx.World
	ui.Heading("Helium Framework test")
	ui.Label("This one works!")
	if world.MustGet[Maximized](w).On {
		ui.Weak("(maximized)")
	}
	if ui.Button("Click this to maximize the window") {
		if err := action.Run(w, identifier.Parse("maximize"), action.Unit{}); err != nil {
			logging.Error(err)
		}
	}
	if ui.Button("click this to log how many times this has been clicked") {
		world.MustGet[Clicks](w).N++
		if err := action.Run(w, identifier.Parse("basic.log_clicked"), action.Unit{}); err != nil {
			logging.Error(err)
		}
	}
	note := world.MustGet[Note](w)
	if ui.Button("Edit note") {
		world.MustGet[input.TextFocus](w).Capture(&note.Field)
	}
	ui.Line(note.Field.View())
	ui.Weak("Press ctrl+t to trigger hotkey")
}

// ListActions writes a table of registered actions matching query.
func ListActions(out io.Writer, w *world.World, query string) error {
	reg, ok := world.Get[action.Registry](w)
	if !ok {
		return errors.New("no action registry")
	}
	matches := reg.Search(query)
	rows := make([][]string, 0, len(matches)+1)
	rows = append(rows, []string{"ACTION", "INPUT", "DESCRIPTION"})
	for _, m := range matches {
		entry, _ := reg.Get(m.ID)
		rows = append(rows, []string{m.ID.String(), action.TypeName(entry.Storage().InputType()), m.Description})
	}
	_, err := io.WriteString(out, strings.Join(table.Format(rows, nil), "\n")+"\n")
	return err
}
