package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "helium.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	logFile      *os.File
	level        = new(slog.LevelVar)
	logger       = slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer       = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Configure sets the log destination and level. Empty paths fall back to the
// default file name. Directories are created automatically when missing.
func Configure(path, levelName string) {
	mu.Lock()
	defer mu.Unlock()
	level.Set(ParseLevel(levelName))
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = defaultLogFile
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	setOutputLocked(f)
}

// SetOutput redirects both the log and the trace stream to w. Tests use it to
// capture output without touching the filesystem.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	setOutputLocked(w)
}

func setOutputLocked(w io.Writer) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	tracer = slog.New(slog.NewJSONHandler(w, nil))
}

// Path returns the file currently receiving log output, if any.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger exposes the shared structured logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Error writes err to the shared log.
func Error(err error, args ...any) {
	if err == nil {
		return
	}
	Logger().Error(err.Error(), args...)
}

func Warn(msg string, args ...any)  { Logger().Warn(msg, args...) }
func Info(msg string, args ...any)  { Logger().Info(msg, args...) }
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently emits entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]any) {
	mu.Lock()
	enabled, t := traceEnabled, tracer
	mu.Unlock()
	if !enabled {
		return
	}
	attrs := make([]slog.Attr, 0, len(payload))
	for k, v := range payload {
		attrs = append(attrs, slog.Any(k, v))
	}
	t.LogAttrs(context.Background(), slog.LevelInfo, event, slog.Attr{Key: "payload", Value: slog.GroupValue(attrs...)})
}
