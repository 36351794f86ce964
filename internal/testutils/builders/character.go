// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder starts from the shared Dwarf Fighter fixture
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: testutils.CreateTestCharacter()}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(race dnd5e.Race) *CharacterBuilder {
	b.character.Race = race
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(class dnd5e.Class) *CharacterBuilder {
	b.character.Class = class
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithAbilityScores sets all six scores in sheet order
func (b *CharacterBuilder) WithAbilityScores(scores dnd5e.AbilityScores) *CharacterBuilder {
	b.character.AbilityScores = scores
	return b
}

// WithLanguages replaces the languages
func (b *CharacterBuilder) WithLanguages(languages ...dnd5e.Language) *CharacterBuilder {
	b.character.Languages = languages
	return b
}

// WithProficiencies replaces the proficiencies
func (b *CharacterBuilder) WithProficiencies(proficiencies ...dnd5e.Proficiency) *CharacterBuilder {
	b.character.Proficiencies = proficiencies
	return b
}

// WithTraits replaces the racial traits
func (b *CharacterBuilder) WithTraits(traits ...dnd5e.Trait) *CharacterBuilder {
	b.character.Traits = traits
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}
