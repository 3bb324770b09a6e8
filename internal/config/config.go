package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/helium/internal/app"
	"github.com/atomicstack/helium/internal/hotkey"
	"github.com/atomicstack/helium/internal/locale"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envWidth          = "HELIUM_WIDTH"
	envHeight         = "HELIUM_HEIGHT"
	envTrace          = "HELIUM_TRACE"
	envLogFile        = "HELIUM_LOG_FILE"
	envLogLevel       = "HELIUM_LOG_LEVEL"
	envKeymap         = "HELIUM_KEYMAP"
	envDispatchErrors = "HELIUM_DISPATCH_ERRORS"
	envLocale         = "HELIUM_LOCALE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("helium", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "log level: debug, info, warn or error")
	keymap := fs.String("keymap", envOrDefault(env, envKeymap, ""), "path to a YAML keymap adding global hotkeys")
	dispatchErrors := fs.String("dispatch-errors", envOrDefault(env, envDispatchErrors, "log"), "what to do when a hotkey action fails: log, notify, ignore or panic")
	localeName := fs.String("locale", envOrDefault(env, envLocale, "en"), "language for built-in messages")
	listActions := fs.Bool("list-actions", false, "print the registered actions and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	policy, err := hotkey.ParsePolicy(*dispatchErrors)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:          *width,
			Height:         *height,
			Keymap:         *keymap,
			DispatchErrors: policy,
			Locale:         *localeName,
			ListActions:    *listActions,
			Query:          strings.Join(fs.Args(), " "),
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"logLevel":       *logLevel,
			"keymap":         *keymap,
			"dispatchErrors": policy.String(),
			"locale":         *localeName,
			"listActions":    strconv.FormatBool(*listActions),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the values LoadArgs cannot: the keymap file must exist and
// the locale must be one the catalog carries.
func Validate(cfg Config) error {
	if cfg.App.Keymap != "" {
		info, err := os.Stat(cfg.App.Keymap)
		if err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("keymap: %s is a directory", cfg.App.Keymap)
		}
	}
	if !locale.Supported(cfg.App.Locale) {
		return fmt.Errorf("locale %q is not supported", cfg.App.Locale)
	}
	return nil
}
