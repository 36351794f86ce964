// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/engine"
	"github.com/KirkDiggler/rpg-chargen/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

// DefaultWorkers resolves batches one character at a time
const DefaultWorkers = 1

// Config holds the dependencies for the character orchestrator
type Config struct {
	Engine      engine.Engine
	Rollers     dice.Factory
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	// Workers is the batch parallelism used when a request does not set one
	Workers int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Rollers == nil {
		vb.RequiredField("Rollers")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	errors.ValidateMin("Workers", c.Workers, 0, vb)

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	engine   engine.Engine
	rollers  dice.Factory
	idGen    idgen.Generator
	clock    clock.Clock
	eventBus events.EventBus
	workers  int
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}

	return &Orchestrator{
		engine:   cfg.Engine,
		rollers:  cfg.Rollers,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		eventBus: cfg.EventBus,
		workers:  workers,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Generate rolls a single character
func (o *Orchestrator) Generate(ctx context.Context, input *character.GenerateInput) (*character.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("level", input.Level, character.MinLevel, character.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := o.generate(ctx, 0, input.Level)
	if err != nil {
		return nil, err
	}

	return &character.GenerateOutput{Character: c}, nil
}

// GenerateBatch rolls Count characters. Results keep index order whatever
// the worker count, and the first failure cancels the rest.
func (o *Orchestrator) GenerateBatch(
	ctx context.Context,
	input *character.GenerateBatchInput,
) (*character.GenerateBatchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("count", input.Count, 1, vb)
	errors.ValidateRange("level", input.Level, character.MinLevel, character.MaxLevel, vb)
	errors.ValidateMin("workers", input.Workers, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	workers := input.Workers
	if workers == 0 {
		workers = o.workers
	}

	slog.Debug("Generating character batch",
		"count", input.Count,
		"level", input.Level,
		"workers", workers,
		"ruleset", o.engine.Ruleset().Name)

	results := make([]*dnd5e.Character, input.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range input.Count {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			c, err := o.generate(gctx, i, input.Level)
			if err != nil {
				return errors.Wrapf(err, "failed to generate character %d", i+1)
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "batch generation canceled")
	}

	return &character.GenerateBatchOutput{Characters: results}, nil
}

// generate runs the resolution stages in their fixed order for the character
// at index
func (o *Orchestrator) generate(ctx context.Context, index, level int) (*dnd5e.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "generation canceled")
	}

	src, err := dice.NewSource(o.rollers.ForIndex(index))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice source")
	}

	identity, err := o.engine.RollIdentity(ctx, &engine.RollIdentityInput{Dice: src})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll identity")
	}

	base, err := o.engine.RollAbilityScores(ctx, &engine.RollAbilityScoresInput{Dice: src})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	c := &dnd5e.Character{
		ID:            o.idGen.Generate(),
		Ruleset:       o.engine.Ruleset().Name,
		Gender:        identity.Gender,
		Race:          identity.Race,
		Class:         identity.Class,
		Alignment:     identity.Alignment,
		AbilityScores: base.AbilityScores,
		Level:         level,
		CreatedAt:     o.clock.Now().Unix(),
	}

	racial, err := o.engine.ApplyRacialEffects(ctx, &engine.ApplyRacialEffectsInput{
		Dice:          src,
		Race:          c.Race,
		AbilityScores: c.AbilityScores,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply racial effects")
	}
	c.AbilityScores = racial.AbilityScores
	c.Speed = racial.Speed
	c.Size = racial.Size

	improved, err := o.engine.ApplyImprovements(ctx, &engine.ApplyImprovementsInput{
		Dice:          src,
		Class:         c.Class,
		Level:         c.Level,
		AbilityScores: c.AbilityScores,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply ability score improvements")
	}
	c.AbilityScores = improved.AbilityScores

	hp, err := o.engine.RollHitPoints(ctx, &engine.RollHitPointsInput{
		Dice:         src,
		Class:        c.Class,
		Level:        c.Level,
		Constitution: c.AbilityScores.Get(dnd5e.AbilityConstitution),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll hit points")
	}
	c.HitPoints = hp.HitPoints
	c.HitDice = hp.HitDice

	languages, err := o.engine.ResolveLanguages(ctx, &engine.ResolveLanguagesInput{Dice: src, Race: c.Race})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve languages")
	}
	c.Languages = languages.Languages

	c.Traits = rulebook.RaceTraits(c.Race)

	profs, err := o.engine.ResolveProficiencies(ctx, &engine.ResolveProficienciesInput{
		Dice:  src,
		Race:  c.Race,
		Class: c.Class,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve proficiencies")
	}
	c.Proficiencies = profs.Proficiencies

	slog.Debug("Character generated",
		"character_id", c.ID,
		"index", index,
		"race", c.Race.String(),
		"class", c.Class.String(),
		"level", c.Level,
		"improvements", len(improved.Improvements))

	if err := rpgtoolkit.PublishGenerated(ctx, o.eventBus, c, index); err != nil {
		// Listener failures do not fail generation
		slog.Warn("Failed to publish character event", "character_id", c.ID, "error", err)
	}

	return c, nil
}
