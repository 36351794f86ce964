// Package rpgtoolkit connects generated characters to rpg-toolkit: the
// core.Entity wrapper and the events announcing finished characters.
package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// EntityTypeCharacter is the toolkit entity type of a generated character
const EntityTypeCharacter = "character"

// CharacterEntity wraps dnd5e.Character to implement core.Entity interface
type CharacterEntity struct {
	*dnd5e.Character
}

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// WrapCharacter converts a dnd5e.Character to a CharacterEntity
func WrapCharacter(character *dnd5e.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// ExtractCharacter unwraps the character behind a toolkit entity
func ExtractCharacter(entity core.Entity) (*dnd5e.Character, bool) {
	wrapped, ok := entity.(*CharacterEntity)
	if !ok || wrapped == nil {
		return nil, false
	}
	return wrapped.Character, true
}

// Compile-time check that our entity wrapper implements core.Entity
var _ core.Entity = (*CharacterEntity)(nil)
