// Package rulebook holds the fixed race and class tables character
// generation reads from. The tables are package values that never change;
// every lookup hands back a copy the caller may modify.
package rulebook

import (
	"slices"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

func raceOf(r dnd5e.Race) (raceProfile, bool) {
	if !r.Valid() {
		return raceProfile{}, false
	}
	return races[r], true
}

func classOf(c dnd5e.Class) (classProfile, bool) {
	if !c.Valid() {
		return classProfile{}, false
	}
	return classes[c], true
}

// RaceTraits returns the racial traits a race grants
func RaceTraits(r dnd5e.Race) []dnd5e.Trait {
	p, _ := raceOf(r)
	return slices.Clone(p.traits)
}

// RaceProficiencies returns the proficiencies a race grants
func RaceProficiencies(r dnd5e.Race) []dnd5e.Proficiency {
	p, _ := raceOf(r)
	return slices.Clone(p.proficiencies)
}

// AbilityBonuses returns the fixed racial bonuses and how many extra +1s
// land on randomly drawn abilities
func AbilityBonuses(r dnd5e.Race) (dnd5e.AbilityScores, int) {
	p, _ := raceOf(r)
	return p.bonuses, p.randomBonuses
}

// Speed returns the walking speed in feet
func Speed(r dnd5e.Race) int {
	p, _ := raceOf(r)
	return p.speed
}

// Size returns the size category of a race
func Size(r dnd5e.Race) dnd5e.Size {
	p, _ := raceOf(r)
	return p.size
}

// RaceLanguages returns the languages a race always speaks besides Common and
// how many more are drawn from the languages it does not already know
func RaceLanguages(r dnd5e.Race) ([]dnd5e.Language, int) {
	p, _ := raceOf(r)
	return slices.Clone(p.languages), p.randomLanguages
}

// HitDie returns the number of sides on the class hit die
func HitDie(c dnd5e.Class) int {
	p, _ := classOf(c)
	return p.hitDie
}

// ClassProficiencies returns the proficiencies every member of a class has
func ClassProficiencies(c dnd5e.Class) []dnd5e.Proficiency {
	p, _ := classOf(c)
	return slices.Clone(p.proficiencies)
}

// ClassChoices returns the pool a class picks skills from and how many it picks
func ClassChoices(c dnd5e.Class) ([]dnd5e.Proficiency, int) {
	p, _ := classOf(c)
	return slices.Clone(p.choices), p.choiceCount
}

// ASIMilestones returns the levels, ascending, at which a class gains an
// ability score improvement
func ASIMilestones(c dnd5e.Class) []int {
	p, ok := classOf(c)
	if !ok {
		return nil
	}

	out := slices.Concat(baseMilestones, p.extraMilestones)
	slices.Sort(out)
	return out
}

// ExtraTools returns the tool pool a class draws bonus proficiencies from and
// how many distinct tools it draws. Classes without one return a nil pool.
func ExtraTools(c dnd5e.Class) ([]dnd5e.Proficiency, int) {
	switch c {
	case dnd5e.ClassMonk:
		return filterTools(func(p dnd5e.Proficiency) bool { return !p.IsGamingSet() }), 1
	case dnd5e.ClassBard:
		return filterTools(dnd5e.Proficiency.IsInstrument), 3
	default:
		return nil, 0
	}
}

func filterTools(keep func(dnd5e.Proficiency) bool) []dnd5e.Proficiency {
	var out []dnd5e.Proficiency
	for _, t := range dnd5e.Tools() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
