// Package notify keeps the toast queue the host draws in the bottom-right
// corner of the screen.
package notify

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/theme"
	"github.com/atomicstack/helium/internal/world"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

const (
	DefaultTTL = 4 * time.Second
	DefaultMax = 5
)

// Toast is one notification.
type Toast struct {
	ID      uuid.UUID
	Level   Level
	Text    string
	Expires time.Time
}

// Toasts is the notification queue resource. Oldest toasts come first.
type Toasts struct {
	TTL time.Duration
	Max int
	Now func() time.Time

	items []Toast
}

func (t *Toasts) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Push appends a toast and drops the oldest ones beyond Max.
func (t *Toasts) Push(level Level, text string) uuid.UUID {
	ttl := t.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	limit := t.Max
	if limit <= 0 {
		limit = DefaultMax
	}
	toast := Toast{ID: uuid.New(), Level: level, Text: text, Expires: t.now().Add(ttl)}
	t.items = append(t.items, toast)
	if over := len(t.items) - limit; over > 0 {
		t.items = slices.Delete(t.items, 0, over)
	}
	events.Notify.Push(toast.ID.String(), level.String(), text)
	return toast.ID
}

func (t *Toasts) Info(text string) uuid.UUID { return t.Push(LevelInfo, text) }
func (t *Toasts) Success(text string) uuid.UUID { return t.Push(LevelSuccess, text) }
func (t *Toasts) Warning(text string) uuid.UUID { return t.Push(LevelWarning, text) }
func (t *Toasts) Error(text string) uuid.UUID { return t.Push(LevelError, text) }

// Prune drops expired toasts and returns how many were removed.
func (t *Toasts) Prune() int {
	now := t.now()
	before := len(t.items)
	t.items = slices.DeleteFunc(t.items, func(toast Toast) bool {
		return !now.Before(toast.Expires)
	})
	return before - len(t.items)
}

// Dismiss removes the toast with the given id.
func (t *Toasts) Dismiss(id uuid.UUID) bool {
	idx := slices.IndexFunc(t.items, func(toast Toast) bool { return toast.ID == id })
	if idx < 0 {
		return false
	}
	t.items = slices.Delete(t.items, idx, idx+1)
	return true
}

func (t *Toasts) Items() []Toast { return slices.Clone(t.items) }
func (t *Toasts) Len() int { return len(t.items) }

// Render stacks the toasts right-aligned within width, newest at the bottom.
// It returns "" when the queue is empty.
func (t *Toasts) Render(width int, styles *theme.Styles) string {
	if len(t.items) == 0 {
		return ""
	}
	if styles == nil {
		styles = theme.Default()
	}
	blocks := make([]string, 0, len(t.items))
	for _, toast := range t.items {
		body := levelStyle(styles, toast.Level).Render(toast.Text)
		blocks = append(blocks, styles.Toast.Render(body))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, blocks...)
	if width <= 0 {
		return stack
	}
	lines := strings.Split(stack, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, line)
	}
	return strings.Join(lines, "\n")
}

func levelStyle(styles *theme.Styles, level Level) *lipgloss.Style {
	switch level {
	case LevelSuccess:
		return styles.Success
	case LevelWarning:
		return styles.Warning
	case LevelError:
		return styles.Error
	default:
		return styles.Info
	}
}

// Plugin installs an empty toast queue.
var Plugin = world.PluginFunc(func(w *world.World) {
	world.InitResource[Toasts](w)
})

// Push queues a toast on the world's queue. It reports false when the queue
// is missing or currently borrowed.
func Push(w *world.World, level Level, text string) bool {
	t, ok := world.Get[Toasts](w)
	if !ok {
		return false
	}
	t.Push(level, text)
	return true
}
