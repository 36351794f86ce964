package engine

import (
	"github.com/KirkDiggler/rpg-chargen/internal/dice"
)

// PickOne draws uniformly from the pool entries exclude does not reject.
// A nil exclude admits everything. ok is false when nothing is eligible.
func PickOne[T any](d *dice.Source, pool []T, exclude func(T) bool) (picked T, ok bool, err error) {
	eligible := make([]T, 0, len(pool))
	for _, v := range pool {
		if exclude == nil || !exclude(v) {
			eligible = append(eligible, v)
		}
	}
	if len(eligible) == 0 {
		return picked, false, nil
	}

	idx, err := d.Index(len(eligible))
	if err != nil {
		return picked, false, err
	}

	return eligible[idx], true, nil
}

// PickDistinct draws up to n distinct entries from the pool, each pick
// joining the exclusion for the next. It returns fewer than n when the
// eligible pool runs dry.
func PickDistinct[T comparable](d *dice.Source, pool []T, n int, exclude func(T) bool) ([]T, error) {
	taken := make(map[T]bool, n)
	skip := func(v T) bool {
		return taken[v] || (exclude != nil && exclude(v))
	}

	out := make([]T, 0, n)
	for len(out) < n {
		v, ok, err := PickOne(d, pool, skip)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		taken[v] = true
		out = append(out, v)
	}

	return out, nil
}
