package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rockpaperscissors/internal/config"
	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/tui"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config      string        `kong:"short='c',default='rps.hcl',help='Path to HCL config file'"`
	Mode        string        `kong:"short='m',help='Opponent: computer or friend (overrides config)'"`
	RevealDelay time.Duration `kong:"help='Delay before the result dialog appears (overrides config)'"`
	Seed        *int64        `kong:"help='Seed for the computer opponent (overrides config)'"`
	LogFile     string        `kong:"help='Debug log file (overrides config)'"`
	Debug       bool          `kong:"help='Enable debug logging'"`
	NoColor     bool          `kong:"help='Disable colour output'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := setupLogger(logFile, cfg.LogLevel())
	logger.Info("Starting game",
		"mode", cfg.Mode(),
		"reveal_delay", cfg.RevealDelay(),
		"seed", cfg.Game.Seed)

	tui.ConfigureColor(cfg.ColorEnabled())

	controller := game.NewController(game.Options{
		Mode:        cfg.Mode(),
		RevealDelay: cfg.RevealDelay(),
		Opponent:    game.NewRandomOpponent(cfg.Game.Seed),
		Logger:      logger,
	})
	defer controller.Close()
	controller.Subscribe(game.NewEventLogger(logger))

	model := tui.NewTUIModel(controller, logger)
	defer model.Close()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	program := tea.NewProgram(model, tea.WithAltScreen())
	if err := runProgram(ctx, program); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("Game finished")
	return nil
}

// applyOverrides copies flags that were set onto the loaded configuration
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.RevealDelay != 0 {
		cfg.Game.RevealDelay = c.RevealDelay.String()
	}
	if c.Seed != nil {
		cfg.Game.Seed = *c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
	if c.NoColor {
		color := false
		cfg.Display.Color = &color
	}
}

// teaProgram is the part of *tea.Program that runProgram drives
type teaProgram interface {
	Run() (tea.Model, error)
	Quit()
}

// runProgram runs the program until it exits or ctx is cancelled
func runProgram(ctx context.Context, program teaProgram) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		_, err := program.Run()
		return err
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
