package app

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/onigo/core"
	"github.com/jask/onigo/internal/config"
	"github.com/jask/onigo/screens"
)

// ScreenOptions maps configuration onto the knobs screens understand.
func ScreenOptions(cfg config.Config) screens.Options {
	theme := core.DefaultTheme().WithAccent(cfg.UI.Accent)
	return screens.Options{
		Styles:      core.NewStyles(theme),
		PhoneLength: cfg.Flow.PhoneLength,
		CodeLength:  cfg.Flow.CodeLength,
		Welcome:     cfg.UI.Welcome,
		CursorBlink: cfg.UI.CursorBlink,
	}
}

// Keys builds the registry from the defaults plus any per-action overrides.
func Keys(overrides map[string][]string) (*core.KeyRegistry, error) {
	defaults := core.DefaultKeyBindings()
	if err := core.ValidateActionKeybindings(defaults, overrides); err != nil {
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	return core.NewKeyRegistry(core.ApplyActionKeybindings(defaults, overrides)), nil
}

// NewModel wires navigator, screens and keys into the root model. Every log
// line of the run carries the same session id.
func NewModel(cfg config.Config, overrides map[string][]string, log *zap.Logger) (core.Model, error) {
	keys, err := Keys(overrides)
	if err != nil {
		return core.Model{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	session := uuid.NewString()
	log = log.With(zap.String("session", session))

	opts := ScreenOptions(cfg)
	m := core.NewModel(core.NewNavigator(), keys, screens.Factory(opts), log)
	m.SetStyles(opts.Styles)
	log.Info("flow started",
		zap.String("route", string(m.Route())),
		zap.Int("phone_length", opts.PhoneLength),
		zap.Int("code_length", opts.CodeLength),
	)
	return m, nil
}
