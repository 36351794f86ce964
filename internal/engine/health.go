package engine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

func (e *engine) RollHitPoints(_ context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("level must be at least 1: %d", input.Level)
	}

	hitDie := rulebook.HitDie(input.Class)
	if hitDie == 0 {
		return nil, errors.InvalidArgumentf("unknown class: %d", input.Class)
	}

	// First level takes the die at its maximum
	hp := hitDie + input.Constitution
	for level := 2; level <= input.Level; level++ {
		v, err := input.Dice.Die(hitDie)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll hit points for level %d", level)
		}
		hp += v + input.Constitution
	}

	return &RollHitPointsOutput{
		HitPoints: hp,
		HitDice:   fmt.Sprintf("1d%d", hitDie),
	}, nil
}
