package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/hotkey"
	"github.com/atomicstack/helium/internal/world"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Palette: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "actions")),
		Help:    key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
}

// helpKeys is the help.KeyMap view over the host bindings plus every
// registered hotkey.
type helpKeys struct {
	host    keyMap
	hotkeys []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.host.Up, h.host.Down, h.host.Select, h.host.NextTab, h.host.Palette, h.host.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.ShortHelp(),
		{h.host.Back, h.host.PrevTab, h.host.Help},
		h.hotkeys,
	}
}

// hotkeyBindings describes every registered hotkey, labelled with its action's
// description or its id.
func hotkeyBindings(w *world.World) []key.Binding {
	reg, ok := world.Get[hotkey.Registry](w)
	if !ok {
		return nil
	}
	actions, _ := world.Get[action.Registry](w)
	var out []key.Binding
	for _, id := range reg.IDs() {
		label := id.String()
		if actions != nil {
			if entry, ok := actions.Get(id); ok && entry.Description() != "" {
				label = entry.Description()
			}
		}
		for _, h := range reg.Get(id) {
			out = append(out, h.Binding(label))
		}
	}
	return out
}
