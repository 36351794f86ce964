// Package dnd5e implements the D&D 5e entities
package dnd5e

import "slices"

// AbilityScores holds the six scores indexed by Ability
type AbilityScores [AbilityCount]int

// Get returns the score of an ability
func (s *AbilityScores) Get(a Ability) int {
	return s[a]
}

// Add raises an ability by n
func (s *AbilityScores) Add(a Ability, n int) {
	s[a] += n
}

// Clamp lowers every score above maxValue to maxValue
func (s *AbilityScores) Clamp(maxValue int) {
	for i := range s {
		if s[i] > maxValue {
			s[i] = maxValue
		}
	}
}

// Character represents a generated character
// NOTE: This is a data-only struct. All rolls and rule lookups happen in
// the engine; the orchestrator fills the fields in resolution order.
type Character struct {
	ID            string
	Ruleset       string
	Gender        Gender
	Race          Race
	Class         Class
	Alignment     Alignment
	Level         int
	AbilityScores AbilityScores
	HitPoints     int
	HitDice       string
	Speed         int
	Size          Size
	Languages     []Language
	Traits        []Trait
	Proficiencies []Proficiency
	CreatedAt     int64
}

// Speaks reports whether the character knows a language
func (c *Character) Speaks(l Language) bool {
	return slices.Contains(c.Languages, l)
}

// HasProficiency reports whether the character is proficient in p
func (c *Character) HasProficiency(p Proficiency) bool {
	return slices.Contains(c.Proficiencies, p)
}

// HasTrait reports whether the character has a racial trait
func (c *Character) HasTrait(t Trait) bool {
	return slices.Contains(c.Traits, t)
}
