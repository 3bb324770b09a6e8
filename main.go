package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/helium/internal/app"
	"github.com/atomicstack/helium/internal/config"
	"github.com/atomicstack/helium/internal/helium"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath, runtimeCfg.Logging.Level)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	a, err := app.Build(runtimeCfg.App)
	if err != nil {
		fail(err)
	}
	events.App.Start(startupTracePayload(runtimeCfg, a.Summary(), probeTerminal(os.Stdout.Fd())))

	if err := app.Run(a, runtimeCfg.App, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// terminal is what the host learned about stdout before taking it over.
type terminal struct {
	Interactive bool   `json:"interactive"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Error       string `json:"error,omitempty"`
}

func probeTerminal(fd uintptr) terminal {
	var t terminal
	if !term.IsTerminal(int(fd)) {
		return t
	}
	t.Interactive = true
	width, height, err := term.GetSize(int(fd))
	if err != nil {
		t.Error = err.Error()
		return t
	}
	t.Width, t.Height = width, height
	return t
}

// startupTracePayload records the parsed options next to what Build
// registered, so a trace shows which actions and bindings a session ran with.
func startupTracePayload(cfg config.Config, summary helium.Summary, tty terminal) map[string]any {
	size := map[string]any{"width": cfg.App.Width, "height": cfg.App.Height}
	if cfg.App.Width == 0 && tty.Width > 0 {
		size["width"] = tty.Width
	}
	if cfg.App.Height == 0 && tty.Height > 0 {
		size["height"] = tty.Height
	}
	return map[string]any{
		"argv":     cfg.Args,
		"flags":    cfg.Flags,
		"logging":  cfg.Logging,
		"keymap":   cfg.App.Keymap,
		"listOnly": cfg.App.ListActions,
		"app":      summary,
		"size":     size,
		"terminal": tty,
	}
}
