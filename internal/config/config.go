package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/dirpanes/internal/app"
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
	Trace    bool
}

const (
	envHome        = "DIRPANES_HOME"
	envSearchRoot  = "DIRPANES_SEARCH_ROOT"
	envSearchDepth = "DIRPANES_SEARCH_DEPTH"
	envWidth       = "DIRPANES_WIDTH"
	envHeight      = "DIRPANES_HEIGHT"
	envTick        = "DIRPANES_TICK_MS"
	envShowFooter  = "DIRPANES_FOOTER"
	envTrace       = "DIRPANES_TRACE"
	envLogFile     = "DIRPANES_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("dirpanes", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	home := fs.String("home", envOrDefault(env, envHome, ""), "starting directory for both panes (defaults to the user home directory)")
	searchRoot := fs.String("search-root", envOrDefault(env, envSearchRoot, "."), "base directory for fuzzy suggestions when the prompt is empty")
	searchDepth := fs.Int("search-depth", envOrInt(env, envSearchDepth, 3), "how many directory levels the finder walks below its root")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	tick := fs.Int("tick-ms", envOrInt(env, envTick, 250), "redraw heartbeat interval in milliseconds")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *searchDepth < 1 {
		return Config{}, fmt.Errorf("search-depth must be >= 1 (got %d)", *searchDepth)
	}
	if *tick < 1 {
		return Config{}, fmt.Errorf("tick-ms must be >= 1 (got %d)", *tick)
	}

	cfg := Config{
		App: app.Config{
			Home:        *home,
			SearchRoot:  *searchRoot,
			SearchDepth: *searchDepth,
			Width:       *width,
			Height:      *height,
			Tick:        time.Duration(*tick) * time.Millisecond,
			ShowFooter:  *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"home":        *home,
			"searchRoot":  *searchRoot,
			"searchDepth": strconv.Itoa(*searchDepth),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"tickMs":      strconv.Itoa(*tick),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
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
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
