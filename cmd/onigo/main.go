package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/onigo/app"
	"github.com/jask/onigo/internal/config"
	"github.com/jask/onigo/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (overrides ONIGO_CONFIG)")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		log.Fatalf("error: %v", err)
	}
}

// run owns the logger so its deferred Sync happens before main exits.
func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	overrides, err := config.LoadKeybindings(cfg.Keys.Path)
	if err != nil {
		return err
	}

	model, err := app.NewModel(cfg, overrides, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}
