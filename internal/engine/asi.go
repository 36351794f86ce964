package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

// picksPerImprovement is how many +1s each milestone hands out
const picksPerImprovement = 2

func (e *engine) ApplyImprovements(
	_ context.Context,
	input *ApplyImprovementsInput,
) (*ApplyImprovementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}
	if !input.Class.Valid() {
		return nil, errors.InvalidArgumentf("unknown class: %d", input.Class)
	}

	scores := input.AbilityScores
	limit := e.ruleset.StatCap
	atCap := func(a dnd5e.Ability) bool { return scores[a] >= limit }

	var improvements []dnd5e.Ability
	for _, milestone := range rulebook.ASIMilestones(input.Class) {
		if milestone > input.Level {
			break
		}

		for range picksPerImprovement {
			ability, ok, err := PickOne(input.Dice, dnd5e.Abilities(), atCap)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to pick improvement at level %d", milestone)
			}
			if !ok {
				// Every ability is capped
				return &ApplyImprovementsOutput{AbilityScores: scores, Improvements: improvements}, nil
			}
			scores.Add(ability, 1)
			improvements = append(improvements, ability)
		}
	}

	return &ApplyImprovementsOutput{AbilityScores: scores, Improvements: improvements}, nil
}
