package engine

import (
	"github.com/KirkDiggler/rpg-chargen/internal/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// RollIdentityInput contains the dice for the identity rolls
type RollIdentityInput struct {
	Dice *dice.Source
}

// RollIdentityOutput contains the rolled gender, race, class and alignment
type RollIdentityOutput struct {
	Gender    dnd5e.Gender
	Race      dnd5e.Race
	Class     dnd5e.Class
	Alignment dnd5e.Alignment
}

// RollAbilityScoresInput contains the dice for the base scores
type RollAbilityScoresInput struct {
	Dice *dice.Source
}

// AbilityRoll records how one base score was rolled
type AbilityRoll struct {
	Ability dnd5e.Ability
	Kept    []int
	Dropped []int
	Total   int
}

// RollAbilityScoresOutput contains the base scores in sheet order
type RollAbilityScoresOutput struct {
	AbilityScores dnd5e.AbilityScores
	Rolls         []AbilityRoll
}

// ApplyRacialEffectsInput contains the race and the base scores it modifies
type ApplyRacialEffectsInput struct {
	Dice          *dice.Source
	Race          dnd5e.Race
	AbilityScores dnd5e.AbilityScores
}

// ApplyRacialEffectsOutput contains the adjusted scores and the race's body
type ApplyRacialEffectsOutput struct {
	AbilityScores dnd5e.AbilityScores
	// RandomBonuses lists the abilities that received a drawn +1, in draw order
	RandomBonuses []dnd5e.Ability
	Speed         int
	Size          dnd5e.Size
}

// ApplyImprovementsInput contains the class, level and scores to improve
type ApplyImprovementsInput struct {
	Dice          *dice.Source
	Class         dnd5e.Class
	Level         int
	AbilityScores dnd5e.AbilityScores
}

// ApplyImprovementsOutput contains the improved scores
type ApplyImprovementsOutput struct {
	AbilityScores dnd5e.AbilityScores
	// Improvements lists every +1, in the order it was applied
	Improvements []dnd5e.Ability
}

// RollHitPointsInput contains what hit points depend on
type RollHitPointsInput struct {
	Dice         *dice.Source
	Class        dnd5e.Class
	Level        int
	Constitution int
}

// RollHitPointsOutput contains the hit point total and hit dice
type RollHitPointsOutput struct {
	HitPoints int
	HitDice   string
}

// ResolveLanguagesInput contains the race whose languages to resolve
type ResolveLanguagesInput struct {
	Dice *dice.Source
	Race dnd5e.Race
}

// ResolveLanguagesOutput contains the sorted, unique languages
type ResolveLanguagesOutput struct {
	Languages []dnd5e.Language
}

// ResolveProficienciesInput contains the race and class to draw from
type ResolveProficienciesInput struct {
	Dice  *dice.Source
	Race  dnd5e.Race
	Class dnd5e.Class
}

// ResolveProficienciesOutput contains the sorted, unique proficiencies
type ResolveProficienciesOutput struct {
	Proficiencies []dnd5e.Proficiency
	// Chosen lists the proficiencies drawn from the class pool and tool pools
	Chosen []dnd5e.Proficiency
}
