package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller implements dice.Roller by replaying predetermined die faces.
// RollN consumes one scripted face per die.
type ScriptedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewScriptedRoller creates a roller that will return rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Add appends more faces to the script
func (r *ScriptedRoller) Add(rolls ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls = append(r.rolls, rolls...)
}

// Remaining returns how many scripted faces have not been used
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls) - r.rollIndex
}

func (r *ScriptedRoller) next(size int) (int, error) {
	if r.rollIndex >= len(r.rolls) {
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", r.rollIndex, len(r.rolls))
	}

	v := r.rolls[r.rollIndex]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roll %d at position %d is invalid for d%d", v, r.rollIndex, size)
	}
	r.rollIndex++
	return v, nil
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size)
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, count)
	for i := range out {
		v, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

var _ dice.Roller = (*ScriptedRoller)(nil)
