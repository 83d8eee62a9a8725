package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/textmenu/internal/keymap"
	"github.com/atomicstack/textmenu/internal/scene"
	"github.com/atomicstack/textmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Passive    bool
	Hidden     bool
	StartPath  string
	KeymapPath string
	Dump       bool
}

var (
	dumpOutput io.Writer = os.Stdout
	runProgram           = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	}
)

// Run builds the scene and either prints its menu tree or executes the
// Bubble Tea program.
func Run(cfg Config) error {
	model, err := Prepare(cfg)
	if err != nil {
		return err
	}
	return Launch(cfg, model)
}

// Launch prints the prepared model's tree when dumping, otherwise runs the
// program until the user quits.
func Launch(cfg Config, model *ui.Model) error {
	if cfg.Dump {
		return Dump(dumpOutput, model.Menu())
	}
	err := runProgram(model)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Prepare loads the key map, builds the scene and opens the start level.
func Prepare(cfg Config) (*ui.Model, error) {
	keys, err := keymap.Load(cfg.KeymapPath)
	if err != nil {
		return nil, err
	}
	sc, err := scene.New()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if start := strings.Trim(strings.TrimSpace(cfg.StartPath), "/"); start != "" {
		if err := sc.Menu().Open(strings.Split(start, "/")...); err != nil {
			return nil, fmt.Errorf("start level %q: %w", cfg.StartPath, err)
		}
	}
	return ui.NewModel(sc, keys, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Passive:    cfg.Passive,
		Hidden:     cfg.Hidden,
	}), nil
}
