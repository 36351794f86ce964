package engine

import (
	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

type engine struct {
	ruleset rulebook.Ruleset
}

// Config configures the engine
type Config struct {
	Ruleset rulebook.Ruleset
}

// Validate checks the config
func (cfg *Config) Validate() error {
	if err := cfg.Ruleset.Validate(); err != nil {
		return errors.Wrap(err, "invalid ruleset")
	}
	return nil
}

// New creates an engine enforcing the configured ruleset
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{ruleset: cfg.Ruleset}, nil
}

func (e *engine) Ruleset() rulebook.Ruleset {
	return e.ruleset
}

func requireDice(d *dice.Source) error {
	if d == nil {
		return errors.InvalidArgument("dice source is required")
	}
	return nil
}
