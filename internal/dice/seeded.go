package dice

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// SeededRoller is a reproducible dice.Roller on a PCG stream.
// It is not safe for concurrent use; give each goroutine its own stream.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller for one (seed, stream) pair
func NewSeededRoller(seed, stream uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Roll implements dice.Roller
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN implements dice.Roller
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}

	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Factory hands out the roller for the character at a batch index
type Factory interface {
	ForIndex(index int) dice.Roller
}

// Shared gives every character the same roller. The roller must be safe for
// concurrent use when the batch runs with more than one worker.
type Shared struct {
	Roller dice.Roller
}

// ForIndex implements Factory
func (s Shared) ForIndex(int) dice.Roller {
	return s.Roller
}

// Seeded gives each character its own stream of one seed, so a batch prints
// the same characters whatever the worker count.
type Seeded struct {
	Seed uint64
}

// ForIndex implements Factory
func (s Seeded) ForIndex(index int) dice.Roller {
	return NewSeededRoller(s.Seed, uint64(index))
}

// NewFactory returns a Seeded factory for a non-zero seed and the toolkit's
// default roller otherwise.
func NewFactory(seed uint64) Factory {
	if seed == 0 {
		return Shared{Roller: dice.DefaultRoller}
	}
	return Seeded{Seed: seed}
}

var (
	_ dice.Roller = (*SeededRoller)(nil)
	_ Factory     = Shared{}
	_ Factory     = Seeded{}
)
