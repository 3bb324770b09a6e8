package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/locale"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/world"
)

const paletteMaxRows = 8

// palette is the action search prompt.
type palette struct {
	open    bool
	input   textinput.Model
	matches []action.Match
	cursor  int
}

func (m *Model) openPalette() {
	m.palette.open = true
	m.palette.input.SetValue("")
	m.palette.input.Focus()
	m.palette.cursor = 0
	m.refreshPalette()
}

func (m *Model) closePalette() {
	m.palette.open = false
	m.palette.input.Blur()
	m.palette.matches = nil
}

func (m *Model) refreshPalette() {
	reg, ok := world.Get[action.Registry](m.app.World)
	if !ok {
		m.palette.matches = nil
		return
	}
	m.palette.matches = reg.Search(m.palette.input.Value())
	if m.palette.cursor >= len(m.palette.matches) {
		m.palette.cursor = len(m.palette.matches) - 1
	}
	if m.palette.cursor < 0 {
		m.palette.cursor = 0
	}
}

func (m *Model) registeredActions() int {
	if reg, ok := world.Get[action.Registry](m.app.World); ok {
		return reg.Len()
	}
	return 0
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case keyMatches(msg, m.keys.Quit), keyMatches(msg, m.keys.Back):
		m.closePalette()
		return nil
	case keyMatches(msg, m.keys.Up):
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
		return nil
	case keyMatches(msg, m.keys.Down):
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
		return nil
	case keyMatches(msg, m.keys.Select):
		m.runPaletteSelection()
		return nil
	}
	field, cmd := m.palette.input.Update(msg)
	m.palette.input = field
	m.refreshPalette()
	return cmd
}

func (m *Model) runPaletteSelection() {
	if len(m.palette.matches) == 0 {
		return
	}
	id := m.palette.matches[m.palette.cursor].ID
	m.closePalette()
	if err := action.RunInstant(m.app.World, id, action.Unit{}); err != nil {
		err = fmt.Errorf("run %s: %w", id, err)
		logging.Error(err)
		notify.Push(m.app.World, notify.LevelError, err.Error())
	}
	events.World.Flush(m.app.World.Flush())
	m.redraw(false)
}

func (m *Model) paletteView() []string {
	header := locale.T(m.app.World, locale.HelpActions, m.registeredActions())
	lines := []string{styles.Heading.Render(header), m.palette.input.View()}
	if len(m.palette.matches) == 0 {
		return append(lines, styles.Info.Render("(no matching actions)"))
	}
	start := 0
	if m.palette.cursor >= paletteMaxRows {
		start = m.palette.cursor - paletteMaxRows + 1
	}
	end := min(start+paletteMaxRows, len(m.palette.matches))
	for i := start; i < end; i++ {
		match := m.palette.matches[i]
		text := match.ID.String()
		if match.Description != "" {
			text += "  " + styles.Weak.Render(match.Description)
		}
		if i == m.palette.cursor {
			lines = append(lines, styles.Selected.Render("> ")+text)
			continue
		}
		lines = append(lines, "  "+text)
	}
	return lines
}
