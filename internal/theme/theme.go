package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Label          *lipgloss.Style
	Heading        *lipgloss.Style
	Weak           *lipgloss.Style
	Separator      *lipgloss.Style
	Button         *lipgloss.Style
	FocusedButton  *lipgloss.Style
	DisabledButton *lipgloss.Style
	Selected       *lipgloss.Style
	Flyout         *lipgloss.Style
	Tab            *lipgloss.Style
	ActiveTab      *lipgloss.Style
	Placeholder    *lipgloss.Style
	Missing        *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Warning        *lipgloss.Style
	Success        *lipgloss.Style
	Toast          *lipgloss.Style
	Footer         *lipgloss.Style
}

var defaultStyles = Styles{
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Weak: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	),
	Selected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Flyout: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Missing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	Warning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Toast: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
