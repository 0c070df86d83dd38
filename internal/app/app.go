package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"

	"gocalc/internal/config"
	"gocalc/internal/logs"
	"gocalc/internal/ui"
)

type App struct {
	cfg    config.Config
	logger *logs.Logger
	ui     *ui.TUI
}

// New validates cfg and opens the logger.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	level, _ := cfg.Level()

	logger, err := logs.New(logs.Options{
		Dir:     cfg.LogDir,
		Level:   level,
		Journal: cfg.Journal,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		ui: ui.New(ui.Options{
			Theme:     ui.Themes[cfg.Theme],
			Precision: cfg.Precision,
			ShowTape:  cfg.Tape,
			Logger:    logger.Logger,
		}),
	}, nil
}

// Run starts the terminal window when stdin is a terminal, and batch mode
// reading from stdin otherwise.
func (a *App) Run(stdin io.Reader, stdout io.Writer) error {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(f.Fd()) {
		a.logger.Info("starting terminal window", "theme", a.cfg.Theme)
		return a.ui.Start()
	}

	a.logger.Info("starting batch mode")
	return a.RunBatch(stdin, stdout)
}

func (a *App) Close() error {
	a.ui.Quit()
	return a.logger.Close()
}
