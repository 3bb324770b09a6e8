package events

import "github.com/atomicstack/helium/internal/logging"

type ActionTracer struct{}

type HotkeyTracer struct{}

type TabTracer struct{}

type MenuTracer struct{}

type NotifyTracer struct{}

var (
	Action = ActionTracer{}
	Hotkey = HotkeyTracer{}
	Tab    = TabTracer{}
	Menu   = MenuTracer{}
	Notify = NotifyTracer{}
)

func (ActionTracer) Registered(id, description, input string) {
	logging.Trace("action.register", map[string]any{"id": id, "description": description, "input": input})
}

func (ActionTracer) Invoked(id, input string, deferred bool) {
	logging.Trace("action.invoke", map[string]any{"id": id, "input": input, "deferred": deferred})
}

func (ActionTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]any{"id": id, "error": err.Error()})
}

func (HotkeyTracer) Registered(id, keys string) {
	logging.Trace("hotkey.register", map[string]any{"id": id, "keys": keys})
}

func (HotkeyTracer) Fired(id, keys, trigger string) {
	logging.Trace("hotkey.fire", map[string]any{"id": id, "keys": keys, "trigger": trigger})
}

func (HotkeyTracer) Fallback(id string) {
	logging.Trace("hotkey.fallback", map[string]any{"id": id})
}

func (TabTracer) Registered(id, title string) {
	logging.Trace("tab.register", map[string]any{"id": id, "title": title})
}

func (TabTracer) Unavailable(id string) {
	logging.Trace("tab.unavailable", map[string]any{"id": id})
}

func (TabTracer) Missing(id string) {
	logging.Trace("tab.missing", map[string]any{"id": id})
}

func (TabTracer) Focus(id string) {
	logging.Trace("tab.focus", map[string]any{"id": id})
}

func (TabTracer) Toggle(id string, open bool) {
	logging.Trace("tab.toggle", map[string]any{"id": id, "open": open})
}

func (MenuTracer) Click(path, action string) {
	logging.Trace("menu.click", map[string]any{"path": path, "action": action})
}

func (MenuTracer) Flyout(path string, open bool) {
	logging.Trace("menu.flyout", map[string]any{"path": path, "open": open})
}

func (MenuTracer) Cursor(cursor int) {
	logging.Trace("menu.cursor", map[string]any{"cursor": cursor})
}

func (NotifyTracer) Push(id, level, text string) {
	logging.Trace("notify.push", map[string]any{"id": id, "level": level, "text": text})
}
