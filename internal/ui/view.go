package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// View implements tea.Model.
func (m *Model) View() string {
	body := strings.Split(m.body, "\n")
	if m.palette.open {
		body = m.paletteView()
	}

	var bottom []string
	if toasts := m.app.Toasts().Render(m.width, styles); toasts != "" {
		bottom = append(bottom, strings.Split(toasts, "\n")...)
	}
	m.help.Width = m.width
	footer := m.help.View(helpKeys{host: m.keys, hotkeys: hotkeyBindings(m.app.World)})
	if footer != "" {
		bottom = append(bottom, "")
		bottom = append(bottom, strings.Split(footer, "\n")...)
	}

	body = limitHeight(body, m.height-len(bottom), m.width)
	lines := applyWidth(append(body, bottom...), m.width)
	return strings.Join(lines, "\n")
}

// limitHeight keeps the first height-1 lines and an ellipsis when lines do not
// fit. A non-positive height disables the limit.
func limitHeight(lines []string, height, width int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []string{truncateText("…", width)}
	}
	trimmed := make([]string, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, truncateText("…", width))
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = truncateText(line, width)
	}
	return out
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
