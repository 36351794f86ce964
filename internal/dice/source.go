// Package dice is the single source of randomness for character generation.
// It wraps an rpg-toolkit dice.Roller with the range draws the resolvers need.
package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Source draws uniform integers from a toolkit roller
type Source struct {
	roller dice.Roller
}

// NewSource creates a source backed by roller
func NewSource(roller dice.Roller) (*Source, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	return &Source{roller: roller}, nil
}

// Die rolls one die with the given number of sides
func (s *Source) Die(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}

	v, err := s.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if v < 1 || v > size {
		return 0, errors.Internalf("roller returned %d for d%d", v, size)
	}

	return v, nil
}

// Dice rolls count dice of the given size
func (s *Source) Dice(count, size int) ([]int, error) {
	if count <= 0 || size <= 0 {
		return nil, errors.InvalidArgumentf("dice count and size must be positive: %dd%d", count, size)
	}

	rolls, err := s.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, size)
	}
	if len(rolls) != count {
		return nil, errors.Internalf("roller returned %d results for %dd%d", len(rolls), count, size)
	}

	return rolls, nil
}

// Between returns a uniform draw from the inclusive range [lo, hi]
func (s *Source) Between(lo, hi int) (int, error) {
	if hi < lo {
		return 0, errors.InvalidArgumentf("empty range [%d, %d]", lo, hi)
	}

	v, err := s.Die(hi - lo + 1)
	if err != nil {
		return 0, err
	}

	return lo + v - 1, nil
}

// Index returns a uniform draw from [0, n)
func (s *Source) Index(n int) (int, error) {
	return s.Between(0, n-1)
}

// RollDropLowest rolls count dice, drops the lowest drop of them and returns
// the kept dice in ascending order, the dropped dice and the kept total.
func (s *Source) RollDropLowest(count, size, drop int) (kept, dropped []int, total int, err error) {
	if drop < 0 || drop >= count {
		return nil, nil, 0, errors.InvalidArgumentf("cannot drop %d of %d dice", drop, count)
	}

	rolls, err := s.Dice(count, size)
	if err != nil {
		return nil, nil, 0, err
	}

	sorted := slices.Clone(rolls)
	slices.Sort(sorted)

	dropped = sorted[:drop]
	kept = sorted[drop:]
	for _, d := range kept {
		total += d
	}

	return kept, dropped, total, nil
}
