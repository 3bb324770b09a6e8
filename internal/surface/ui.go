package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/theme"
)

const indentStep = 2

// Ui is a drawing region. Children created with NewChild, Indent, AddEnabled
// or MenuButton write into the same line buffer as their parent.
type Ui struct {
	frame   *Frame
	styles  *theme.Styles
	lines   *[]string
	indent  int
	enabled bool
	path    string
}

// New returns a root region drawing into a fresh buffer.
func New(frame *Frame, styles *theme.Styles) *Ui {
	if styles == nil {
		styles = theme.Default()
	}
	return &Ui{frame: frame, styles: styles, lines: new([]string), enabled: true}
}

func (u *Ui) Frame() *Frame { return u.frame }
func (u *Ui) Styles() *theme.Styles { return u.styles }
func (u *Ui) Enabled() bool { return u.enabled }
func (u *Ui) Lines() []string { return *u.lines }
func (u *Ui) String() string { return strings.Join(*u.lines, "\n") }

// NewChild returns a region with the same bounds and layout as u.
func (u *Ui) NewChild() *Ui {
	child := *u
	return &child
}

// Indent draws fn one level deeper.
func (u *Ui) Indent(fn func(ui *Ui)) {
	child := u.NewChild()
	child.indent += indentStep
	fn(child)
}

// AddEnabled draws fn in a region whose widgets ignore activation unless
// enabled holds.
func (u *Ui) AddEnabled(enabled bool, fn func(ui *Ui)) {
	child := u.NewChild()
	child.enabled = u.enabled && enabled
	fn(child)
}

func (u *Ui) write(text string) {
	line := strings.Repeat(" ", u.indent) + text
	if w := u.frame.Width; w > 0 {
		line = ansi.Truncate(line, w, "…")
	}
	*u.lines = append(*u.lines, line)
}

// Line writes pre-rendered text as is.
func (u *Ui) Line(text string) {
	u.write(text)
}

func (u *Ui) Label(text string) {
	u.write(u.styles.Label.Render(text))
}

// ColoredLabel draws text in the given foreground color.
func (u *Ui) ColoredLabel(color lipgloss.TerminalColor, text string) {
	u.write(lipgloss.NewStyle().Foreground(color).Render(text))
}

func (u *Ui) Heading(text string) {
	u.write(u.styles.Heading.Render(text))
}

func (u *Ui) Weak(text string) {
	u.write(u.styles.Weak.Render(text))
}

// Italic draws a gray italic note, used for passive placeholders.
func (u *Ui) Italic(text string) {
	u.write(u.styles.Placeholder.Render(text))
}

func (u *Ui) Separator() {
	width := 24
	if u.frame.Width > 0 {
		width = max(u.frame.Width-u.indent, 1)
	}
	u.write(u.styles.Separator.Render(strings.Repeat("─", width)))
}

// LabeledSeparator draws a section rule carrying title.
func (u *Ui) LabeledSeparator(title string) {
	u.write(u.styles.Separator.Render("── ") + u.styles.Weak.Render(title) + u.styles.Separator.Render(" ──"))
}

func marker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

// Button draws a clickable control and reports whether it was activated in
// this pass.
func (u *Ui) Button(text string) bool {
	focused, clicked := u.frame.next(u.enabled)
	style := u.styles.Button
	switch {
	case !u.enabled:
		style = u.styles.DisabledButton
	case focused:
		style = u.styles.FocusedButton
	}
	u.write(marker(focused) + style.Render(text))
	return clicked
}

// SelectableLabel draws a toggle showing selected and reports whether it was
// activated.
func (u *Ui) SelectableLabel(selected bool, text string) bool {
	focused, clicked := u.frame.next(u.enabled)
	box := "[ ] "
	style := u.styles.Label
	if selected {
		box = "[x] "
		style = u.styles.Selected
	}
	if focused {
		style = u.styles.FocusedButton
	}
	u.write(marker(focused) + box + style.Render(text))
	return clicked
}

// MenuButton draws a flyout toggle. Activating it opens or closes the flyout;
// while open, body draws its contents one level deeper.
func (u *Ui) MenuButton(title string, body func(ui *Ui)) {
	key := u.path + "/" + title
	focused, clicked := u.frame.next(u.enabled)
	open := u.frame.flyouts[key]
	if clicked {
		open = !open
		if open {
			if u.frame.flyouts == nil {
				u.frame.flyouts = make(map[string]bool)
			}
			u.frame.flyouts[key] = true
		} else {
			u.closeBelow(key)
		}
		events.Menu.Flyout(key, open)
	}
	arrow := " ▸"
	if open {
		arrow = " ▾"
	}
	style := u.styles.Flyout
	if focused {
		style = u.styles.FocusedButton
	}
	u.write(marker(focused) + style.Render(title+arrow))
	if !open {
		return
	}
	child := u.NewChild()
	child.indent += indentStep
	child.path = key
	body(child)
}

func (u *Ui) closeBelow(key string) {
	for k := range u.frame.flyouts {
		if k == key || strings.HasPrefix(k, key+"/") {
			delete(u.frame.flyouts, k)
		}
	}
}

// CloseMenu collapses every open flyout before the next pass.
func (u *Ui) CloseMenu() {
	u.frame.CloseMenu()
}
