// Package engine resolves the randomized attributes of a character. Every
// draw goes through the dice.Source passed in each input so one engine can
// serve any number of characters, each with its own roller.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-chargen/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

// Engine runs the character resolution stages
type Engine interface {
	// Identity
	RollIdentity(ctx context.Context, input *RollIdentityInput) (*RollIdentityOutput, error)

	// Ability scores
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	ApplyRacialEffects(ctx context.Context, input *ApplyRacialEffectsInput) (*ApplyRacialEffectsOutput, error)
	ApplyImprovements(ctx context.Context, input *ApplyImprovementsInput) (*ApplyImprovementsOutput, error)

	// Derived attributes
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)
	ResolveLanguages(ctx context.Context, input *ResolveLanguagesInput) (*ResolveLanguagesOutput, error)
	ResolveProficiencies(
		ctx context.Context,
		input *ResolveProficienciesInput,
	) (*ResolveProficienciesOutput, error)

	// Ruleset returns the ruleset the engine enforces
	Ruleset() rulebook.Ruleset
}
