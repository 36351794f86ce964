package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

func (e *engine) ApplyRacialEffects(
	_ context.Context,
	input *ApplyRacialEffectsInput,
) (*ApplyRacialEffectsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}
	if !input.Race.Valid() {
		return nil, errors.InvalidArgumentf("unknown race: %d", input.Race)
	}

	scores := input.AbilityScores
	fixed, random := rulebook.AbilityBonuses(input.Race)
	for i, b := range fixed {
		scores[i] += b
	}

	// Drawn bonuses are independent, so both may land on the same ability
	drawn := make([]dnd5e.Ability, 0, random)
	for range random {
		ability, _, err := PickOne(input.Dice, dnd5e.Abilities(), nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw racial bonus")
		}
		scores.Add(ability, 1)
		drawn = append(drawn, ability)
	}

	scores.Clamp(e.ruleset.StatCap)

	return &ApplyRacialEffectsOutput{
		AbilityScores: scores,
		RandomBonuses: drawn,
		Speed:         rulebook.Speed(input.Race),
		Size:          rulebook.Size(input.Race),
	}, nil
}
