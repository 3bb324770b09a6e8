package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/helium/internal/helium"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/surface"
	"github.com/atomicstack/helium/internal/theme"
	"github.com/atomicstack/helium/internal/world"
)

const toastInterval = 500 * time.Millisecond

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type toastTickMsg time.Time

// Model implements the Bubble Tea model hosting a helium app.
type Model struct {
	app   *helium.App
	frame *surface.Frame

	body        string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	keys    keyMap
	help    help.Model
	palette palette

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps app in a Bubble Tea model. Non-zero width and height pin the
// layout size instead of following the terminal.
func NewModel(app *helium.App, width, height int) *Model {
	m := &Model{
		app:   app,
		frame: surface.NewFrame(width),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.palette.input = textinput.New()
	m.palette.input.Prompt = "> "
	m.palette.input.Placeholder = "search actions"
	m.palette.input.Cursor.SetMode(cursor.CursorStatic)
	m.registerHandlers()
	m.redraw(false)
	return m
}

// App exposes the hosted app.
func (m *Model) App() *helium.App { return m.app }

// Frame exposes the draw state.
func (m *Model) Frame() *surface.Frame { return m.frame }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return toastTick()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(toastTickMsg{}):      m.handleToastTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if ok, reason := m.app.ExitRequested(); ok {
		events.App.Quit(reason)
		return tea.Quit
	}
	return cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.palette.open {
		return m.handlePaletteKey(keyMsg)
	}
	if keyMatches(keyMsg, m.keys.Quit) {
		helium.RequestExit(m.app.World, "interrupt")
		return nil
	}
	if focus := world.MustGet[input.TextFocus](m.app.World); focus.Editing && focus.Field != nil {
		if keyMatches(keyMsg, m.keys.Back) {
			focus.Release()
			m.redraw(false)
			return nil
		}
		field, cmd := focus.Field.Update(keyMsg)
		*focus.Field = field
		m.dispatchKeys(keyMsg)
		m.redraw(false)
		return cmd
	}

	if m.dispatchKeys(keyMsg) > 0 {
		m.redraw(false)
		return nil
	}

	switch {
	case keyMatches(keyMsg, m.keys.Up):
		m.frame.MoveCursor(-1)
	case keyMatches(keyMsg, m.keys.Down):
		m.frame.MoveCursor(1)
	case keyMatches(keyMsg, m.keys.Select):
		m.redraw(true)
	case keyMatches(keyMsg, m.keys.NextTab):
		m.app.Dock().FocusNext()
	case keyMatches(keyMsg, m.keys.PrevTab):
		m.app.Dock().FocusPrev()
	case keyMatches(keyMsg, m.keys.Back):
		m.frame.CloseMenu()
	case keyMatches(keyMsg, m.keys.Palette):
		m.openPalette()
	case keyMatches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.redraw(false)
	return nil
}

// dispatchKeys feeds the chord of msg through the hotkey registry as a press
// followed by a release, since terminals only report presses. The last key is
// released while the leading ones are still held.
func (m *Model) dispatchKeys(msg tea.KeyMsg) int {
	codes := input.KeysFromMsg(msg)
	if len(codes) == 0 {
		return 0
	}
	kb := m.app.Keyboard()
	for _, code := range codes {
		kb.Press(code)
	}
	fired, err := m.app.Tick()
	if err != nil {
		logging.Error(err)
	}
	last := len(codes) - 1
	kb.Release(codes[last])
	released, err := m.app.Tick()
	if err != nil {
		logging.Error(err)
	}
	for _, code := range codes[:last] {
		kb.Release(code)
	}
	kb.Clear()
	return fired + released
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
		m.frame.Width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	events.App.Resize(m.width, m.height)
	m.redraw(false)
	return nil
}

func (m *Model) handleToastTickMsg(tea.Msg) tea.Cmd {
	m.app.Toasts().Prune()
	return toastTick()
}

func toastTick() tea.Cmd {
	return tea.Tick(toastInterval, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// redraw runs a draw pass. An activating pass is followed by a plain one so
// the stored body reflects whatever the click changed.
func (m *Model) redraw(activate bool) {
	m.frame.Begin(activate)
	ui := m.app.Draw(m.frame)
	if activate {
		m.frame.Begin(false)
		ui = m.app.Draw(m.frame)
	}
	m.body = ui.String()
	m.frame.MoveCursor(0)
}
