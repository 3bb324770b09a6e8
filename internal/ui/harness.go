package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
// Timer ticks are delivered but their follow-up ticks are not scheduled.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	_, isTick := msg.(toastTickMsg)
	cmd := h.update(msg)
	if isTick {
		return
	}
	h.processCmd(cmd)
}

// Key sends a key press in bubbletea's textual form, e.g. "ctrl+t" or "down".
func (h *Harness) Key(k string) {
	h.Send(keyMsg(k))
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) update(msg tea.Msg) tea.Cmd {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil && !h.quit {
		msg := cmd()
		switch msg.(type) {
		case nil:
			return
		case tea.QuitMsg:
			h.quit = true
			return
		case toastTickMsg:
			return
		}
		cmd = h.update(msg)
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool { return h.quit }

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func keyMsg(k string) tea.KeyMsg {
	names := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"backspace": tea.KeyBackspace,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+h":    tea.KeyCtrlH,
		"ctrl+p":    tea.KeyCtrlP,
		"ctrl+q":    tea.KeyCtrlQ,
		"ctrl+t":    tea.KeyCtrlT,
		"ctrl+l":    tea.KeyCtrlL,
	}
	if t, ok := names[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	if len(k) > len("alt+") && k[:len("alt+")] == "alt+" {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k[len("alt+"):]), Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
