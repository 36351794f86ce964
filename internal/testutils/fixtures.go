// Package testutils holds shared fixtures and rollers for package tests
package testutils

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// Fixture values
const (
	TestCharacterID = "char_test-001"
	TestCreatedAt   = int64(1700000000)
)

// CreateTestCharacter returns a fully resolved level 1 Dwarf Fighter
func CreateTestCharacter() *dnd5e.Character {
	return &dnd5e.Character{
		ID:            TestCharacterID,
		Ruleset:       "standard",
		Gender:        dnd5e.GenderFemale,
		Race:          dnd5e.RaceDwarf,
		Class:         dnd5e.ClassFighter,
		Alignment:     dnd5e.AlignmentLawfulGood,
		Level:         1,
		AbilityScores: dnd5e.AbilityScores{15, 12, 16, 10, 13, 8},
		HitPoints:     26,
		HitDice:       "1d10",
		Speed:         25,
		Size:          dnd5e.SizeMedium,
		Languages:     []dnd5e.Language{dnd5e.LanguageCommon, dnd5e.LanguageDwarvish},
		Traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitDwarvenResilience, dnd5e.TraitDwarvenCombatTraining,
			dnd5e.TraitToolProficiency, dnd5e.TraitStonecunning,
		},
		Proficiencies: []dnd5e.Proficiency{
			dnd5e.SaveStrength, dnd5e.SaveConstitution,
			dnd5e.SkillAthletics, dnd5e.SkillPerception,
			dnd5e.SimpleWeapons, dnd5e.MartialWeapons,
			dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.HeavyArmor, dnd5e.Shields,
		},
		CreatedAt: TestCreatedAt,
	}
}
