package engine

import (
	"context"
	"slices"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/rulebook"
)

func (e *engine) ResolveLanguages(
	_ context.Context,
	input *ResolveLanguagesInput,
) (*ResolveLanguagesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireDice(input.Dice); err != nil {
		return nil, err
	}
	if !input.Race.Valid() {
		return nil, errors.InvalidArgumentf("unknown race: %d", input.Race)
	}

	fixed, random := rulebook.RaceLanguages(input.Race)
	known := append([]dnd5e.Language{dnd5e.LanguageCommon}, fixed...)

	extra, err := PickDistinct(input.Dice, dnd5e.Languages(), random, func(l dnd5e.Language) bool {
		return slices.Contains(known, l)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw languages")
	}

	known = append(known, extra...)
	slices.Sort(known)

	return &ResolveLanguagesOutput{Languages: slices.Compact(known)}, nil
}
