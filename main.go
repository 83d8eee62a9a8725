package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/atomicstack/textmenu/internal/app"
	"github.com/atomicstack/textmenu/internal/config"
	"github.com/atomicstack/textmenu/internal/logging"
	"github.com/atomicstack/textmenu/internal/logging/events"
	"github.com/atomicstack/textmenu/internal/ui"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	model, err := app.Prepare(cfg.App)
	if err != nil {
		fail(err)
	}
	events.App.Start(startupTracePayload(cfg, model, stdoutSize))

	if err := app.Launch(cfg.App, model); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

type terminalSize struct {
	TTY    bool `json:"tty"`
	Width  int  `json:"width,omitempty"`
	Height int  `json:"height,omitempty"`
}

// stdoutSize reports the terminal the program would size itself to when
// --width and --height are left at zero.
func stdoutSize() terminalSize {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalSize{}
	}
	size := terminalSize{TTY: true}
	if w, h, err := term.GetSize(fd); err == nil {
		size.Width, size.Height = w, h
	}
	return size
}

// startupTracePayload records where the key map came from, which level the
// menu opened on, and what the tree holds.
func startupTracePayload(cfg config.Config, model *ui.Model, probe func() terminalSize) map[string]interface{} {
	keymapSource := "default"
	if cfg.App.KeymapPath != "" {
		keymapSource = cfg.App.KeymapPath
	}
	menu := model.Menu()
	return map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  cfg.Flags,
		"log":    logging.Path(),
		"keymap": keymapSource,
		"start": map[string]interface{}{
			"requested": cfg.App.StartPath,
			"opened":    strings.Join(menu.Path(), "/"),
			"showing":   menu.IsShowing(),
			"accepting": menu.AcceptsInput(),
		},
		"tree":     app.Summarize(menu),
		"dump":     cfg.App.Dump,
		"terminal": probe(),
	}
}
