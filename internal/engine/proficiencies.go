package engine

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

func (e *engine) ResolveProficiencies(
	_ context.Context,
	input *ResolveProficienciesInput,
) (*ResolveProficienciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}
	if !input.Race.Valid() {
		return nil, errors.InvalidArgumentf("unknown race: %d", input.Race)
	}
	if !input.Class.Valid() {
		return nil, errors.InvalidArgumentf("unknown class: %d", input.Class)
	}

	owned := slices.Concat(
		rulebook.RaceProficiencies(input.Race),
		rulebook.ClassProficiencies(input.Class),
	)
	has := func(p dnd5e.Proficiency) bool { return slices.Contains(owned, p) }

	pool, count := rulebook.ClassChoices(input.Class)
	skills, err := PickDistinct(input.Dice, pool, count, has)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to choose %s skills", input.Class)
	}
	owned = append(owned, skills...)
	chosen := slices.Clone(skills)

	if tools, n := rulebook.ExtraTools(input.Class); n > 0 {
		picked, err := PickDistinct(input.Dice, tools, n, has)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to choose %s tools", input.Class)
		}
		owned = append(owned, picked...)
		chosen = append(chosen, picked...)
	}

	slices.Sort(owned)

	return &ResolveProficienciesOutput{
		Proficiencies: slices.Compact(owned),
		Chosen:        chosen,
	}, nil
}
