package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atomicstack/dirpanes/internal/fs"
	"github.com/atomicstack/dirpanes/internal/search"
	"github.com/atomicstack/dirpanes/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Home        string
	SearchRoot  string
	SearchDepth int
	Width       int
	Height      int
	Tick        time.Duration
	ShowFooter  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	home := strings.TrimSpace(cfg.Home)
	if home == "" {
		resolved, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		home = resolved
	}
	lister := fs.NewLister()
	finder := search.NewFinder(cfg.SearchRoot, cfg.SearchDepth)
	model := ui.NewModel(home, lister, finder, cfg.Width, cfg.Height, cfg.Tick, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
