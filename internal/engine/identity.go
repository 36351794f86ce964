package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Gender is a percentile roll split down the middle
const maleThreshold = 50

func (e *engine) RollIdentity(_ context.Context, input *RollIdentityInput) (*RollIdentityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}

	d := input.Dice

	pct, err := d.Die(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll gender")
	}
	gender := dnd5e.GenderFemale
	if pct <= maleThreshold {
		gender = dnd5e.GenderMale
	}

	race, err := d.Index(int(dnd5e.RaceCount))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll race")
	}

	class, err := d.Index(int(dnd5e.ClassCount))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll class")
	}

	alignment, err := d.Index(int(dnd5e.AlignmentCount))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll alignment")
	}

	return &RollIdentityOutput{
		Gender:    gender,
		Race:      dnd5e.Race(race),
		Class:     dnd5e.Class(class),
		Alignment: dnd5e.Alignment(alignment),
	}, nil
}
