package dnd5e

import "fmt"

// Gender of a generated character
type Gender int

// Gender values
const (
	GenderMale Gender = iota
	GenderFemale
	GenderCount
)

// Race is one of the playable races
type Race int

// Race values, in the order the race roll indexes them
const (
	RaceHuman Race = iota
	RaceElf
	RaceDwarf
	RaceGnome
	RaceHalfling
	RaceHalfElf
	RaceHalfOrc
	RaceDragonborn
	RaceTiefling
	RaceCount
)

// Class is one of the base classes
type Class int

// Class values, in the order the class roll indexes them
const (
	ClassBarbarian Class = iota
	ClassBard
	ClassCleric
	ClassDruid
	ClassFighter
	ClassMonk
	ClassPaladin
	ClassRanger
	ClassRogue
	ClassSorcerer
	ClassWizard
	ClassWarlock
	ClassCount
)

// Alignment is one of the nine alignments
type Alignment int

// Alignment values
const (
	AlignmentLawfulGood Alignment = iota
	AlignmentLawfulNeutral
	AlignmentLawfulEvil
	AlignmentNeutralGood
	AlignmentTrueNeutral
	AlignmentNeutralEvil
	AlignmentChaoticGood
	AlignmentChaoticNeutral
	AlignmentChaoticEvil
	AlignmentCount
)

// Ability is one of the six ability scores
type Ability int

// Ability values
const (
	AbilityStrength Ability = iota
	AbilityDexterity
	AbilityConstitution
	AbilityIntelligence
	AbilityWisdom
	AbilityCharisma
	AbilityCount
)

// Size category
type Size int

// Size values. Huge is unused by the current race table.
const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
	SizeHuge
	SizeCount
)

// Language a character can speak
type Language int

// Language values. Common must stay first: the random language rolls
// draw from the values after it.
const (
	LanguageCommon Language = iota
	LanguageElvish
	LanguageDwarvish
	LanguageGnomish
	LanguageOrc
	LanguageHalfling
	LanguageDraconic
	LanguageInfernal
	LanguageCount
)

// Trait is a fixed racial trait
type Trait int

// Trait values
const (
	TraitDarkvision Trait = iota
	TraitKeenSenses
	TraitFeyAncestry
	TraitTrance
	TraitDwarvenResilience
	TraitDwarvenCombatTraining
	TraitToolProficiency
	TraitStonecunning
	TraitGnomeCunning
	TraitLucky
	TraitBrave
	TraitHalflingNimbleness
	TraitSkillVersatility
	TraitMenacing
	TraitRelentlessEndurance
	TraitSavageAttacks
	TraitDraconicAncestry
	TraitDamageResistance
	TraitBreathWeapon
	TraitHellishResistance
	TraitInfernalLegacy
	TraitCount
)

var genderKeys = [GenderCount]string{"male", "female"}

var raceKeys = [RaceCount]string{
	"human", "elf", "dwarf", "gnome", "halfling",
	"half_elf", "half_orc", "dragonborn", "tiefling",
}

var classKeys = [ClassCount]string{
	"barbarian", "bard", "cleric", "druid", "fighter", "monk",
	"paladin", "ranger", "rogue", "sorcerer", "wizard", "warlock",
}

var alignmentKeys = [AlignmentCount]string{
	"lawful_good", "lawful_neutral", "lawful_evil",
	"neutral_good", "true_neutral", "neutral_evil",
	"chaotic_good", "chaotic_neutral", "chaotic_evil",
}

var abilityKeys = [AbilityCount]string{
	"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma",
}

var sizeKeys = [SizeCount]string{"small", "medium", "large", "huge"}

var languageKeys = [LanguageCount]string{
	"common", "elvish", "dwarvish", "gnomish", "orc", "halfling", "draconic", "infernal",
}

var traitKeys = [TraitCount]string{
	"darkvision", "keen_senses", "fey_ancestry", "trance",
	"dwarven_resilience", "dwarven_combat_training", "tool_proficiency", "stonecunning",
	"gnome_cunning", "lucky", "brave", "halfling_nimbleness", "skill_versatility",
	"menacing", "relentless_endurance", "savage_attacks",
	"draconic_ancestry", "damage_resistance", "breath_weapon",
	"hellish_resistance", "infernal_legacy",
}

func keyOf(keys []string, i int, kind string) string {
	if i < 0 || i >= len(keys) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return keys[i]
}

// String returns the snake_case key of the gender
func (g Gender) String() string { return keyOf(genderKeys[:], int(g), "gender") }

// String returns the snake_case key of the race
func (r Race) String() string { return keyOf(raceKeys[:], int(r), "race") }

// String returns the snake_case key of the class
func (c Class) String() string { return keyOf(classKeys[:], int(c), "class") }

// String returns the snake_case key of the alignment
func (a Alignment) String() string { return keyOf(alignmentKeys[:], int(a), "alignment") }

// String returns the snake_case key of the ability
func (a Ability) String() string { return keyOf(abilityKeys[:], int(a), "ability") }

// String returns the snake_case key of the size
func (s Size) String() string { return keyOf(sizeKeys[:], int(s), "size") }

// String returns the snake_case key of the language
func (l Language) String() string { return keyOf(languageKeys[:], int(l), "language") }

// String returns the snake_case key of the trait
func (t Trait) String() string { return keyOf(traitKeys[:], int(t), "trait") }

// Valid reports whether r is a known race
func (r Race) Valid() bool { return r >= 0 && r < RaceCount }

// Valid reports whether c is a known class
func (c Class) Valid() bool { return c >= 0 && c < ClassCount }

// Abilities returns the six abilities in sheet order
func Abilities() []Ability {
	out := make([]Ability, AbilityCount)
	for i := range out {
		out[i] = Ability(i)
	}
	return out
}

// Races returns every race in roll order
func Races() []Race {
	out := make([]Race, RaceCount)
	for i := range out {
		out[i] = Race(i)
	}
	return out
}

// Classes returns every class in roll order
func Classes() []Class {
	out := make([]Class, ClassCount)
	for i := range out {
		out[i] = Class(i)
	}
	return out
}

// Languages returns every language in table order, Common first
func Languages() []Language {
	out := make([]Language, LanguageCount)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}
