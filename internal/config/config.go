package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/textmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth      = "TEXTMENU_WIDTH"
	envHeight     = "TEXTMENU_HEIGHT"
	envShowFooter = "TEXTMENU_FOOTER"
	envPassive    = "TEXTMENU_PASSIVE"
	envHidden     = "TEXTMENU_HIDDEN"
	envStart      = "TEXTMENU_START"
	envKeymap     = "TEXTMENU_KEYMAP"
	envVerbose    = "TEXTMENU_VERBOSE"
	envTrace      = "TEXTMENU_TRACE"
	envLogFile    = "TEXTMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("textmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer")
	passive := fs.Bool("passive", envOrBool(env, envPassive, false), "draw the menu without letting it take keys")
	hidden := fs.Bool("hidden", envOrBool(env, envHidden, false), "start with the menu hidden")
	start := fs.String("start", envOrDefault(env, envStart, ""), "slash separated path of the level to open first, e.g. style/fill")
	keymapPath := fs.String("keymap", envOrDefault(env, envKeymap, ""), "YAML or TOML file overriding key bindings")
	dump := fs.Bool("dump", false, "print the menu tree and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "echo the selected row after every change")
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

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Passive:    *passive,
			Hidden:     *hidden,
			StartPath:  *start,
			KeymapPath: *keymapPath,
			Dump:       *dump,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"passive": strconv.FormatBool(*passive),
			"hidden":  strconv.FormatBool(*hidden),
			"start":   *start,
			"keymap":  *keymapPath,
			"dump":    strconv.FormatBool(*dump),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
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

// Validate checks settings that depend on the filesystem.
func Validate(cfg Config) error {
	if path := strings.TrimSpace(cfg.App.KeymapPath); path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("keymap file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("keymap file %s is a directory", path)
		}
	}
	if cfg.App.Dump && cfg.App.Hidden {
		return errors.New("--dump and --hidden cannot be combined")
	}
	return nil
}
