package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

// Flat scores span the same range as 3d6 without the bell curve
const (
	flatMin = 3
	flatMax = 18
)

func (e *engine) RollAbilityScores(
	_ context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}

	output := &RollAbilityScoresOutput{
		Rolls: make([]AbilityRoll, 0, dnd5e.AbilityCount),
	}
	for _, ability := range dnd5e.Abilities() {
		roll, err := rollScore(input.Dice, e.ruleset.StatMethod)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", ability)
		}
		roll.Ability = ability
		output.AbilityScores[ability] = roll.Total
		output.Rolls = append(output.Rolls, roll)
	}

	return output, nil
}

func rollScore(d *dice.Source, method rulebook.StatMethod) (AbilityRoll, error) {
	switch method {
	case rulebook.StatMethodDropLowest:
		kept, dropped, total, err := d.RollDropLowest(4, 6, 1)
		if err != nil {
			return AbilityRoll{}, err
		}
		return AbilityRoll{Kept: kept, Dropped: dropped, Total: total}, nil

	case rulebook.StatMethodClassic:
		rolls, err := d.Dice(3, 6)
		if err != nil {
			return AbilityRoll{}, err
		}
		total := 0
		for _, r := range rolls {
			total += r
		}
		return AbilityRoll{Kept: rolls, Total: total}, nil

	case rulebook.StatMethodFlat:
		v, err := d.Between(flatMin, flatMax)
		if err != nil {
			return AbilityRoll{}, err
		}
		return AbilityRoll{Kept: []int{v}, Total: v}, nil

	default:
		return AbilityRoll{}, errors.InvalidArgumentf("unsupported stat method: %s", method)
	}
}
