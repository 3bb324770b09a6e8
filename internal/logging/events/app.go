package events

import "github.com/atomicstack/helium/internal/logging"

type AppTracer struct{}

type WorldTracer struct{}

var (
	App   = AppTracer{}
	World = WorldTracer{}
)

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resize(width, height int) {
	logging.Trace("app.resize", map[string]any{"width": width, "height": height})
}

func (AppTracer) Quit(reason string) {
	logging.Trace("app.quit", map[string]any{"reason": reason})
}

func (WorldTracer) Flush(ran int) {
	if ran == 0 {
		return
	}
	logging.Trace("world.flush", map[string]any{"commands": ran})
}
