package render

import (
	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// Sheet is the machine-readable form of a character. Enum values are their
// snake_case keys.
type Sheet struct {
	ID            string        `json:"id" yaml:"id"`
	Ruleset       string        `json:"ruleset" yaml:"ruleset"`
	Gender        string        `json:"gender" yaml:"gender"`
	Race          string        `json:"race" yaml:"race"`
	Size          string        `json:"size" yaml:"size"`
	Speed         int           `json:"speed" yaml:"speed"`
	Traits        []string      `json:"traits" yaml:"traits"`
	Class         string        `json:"class" yaml:"class"`
	Level         int           `json:"level" yaml:"level"`
	HitPoints     int           `json:"hit_points" yaml:"hit_points"`
	HitDice       string        `json:"hit_dice" yaml:"hit_dice"`
	Alignment     string        `json:"alignment" yaml:"alignment"`
	AbilityScores AbilityScores `json:"ability_scores" yaml:"ability_scores"`
	Languages     []string      `json:"languages" yaml:"languages"`
	Proficiencies []string      `json:"proficiencies" yaml:"proficiencies"`
	CreatedAt     int64         `json:"created_at" yaml:"created_at"`
}

// AbilityScores keeps the six scores in sheet order
type AbilityScores struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
}

// NewSheet converts a character
func NewSheet(c *dnd5e.Character) Sheet {
	s := c.AbilityScores
	return Sheet{
		ID:        c.ID,
		Ruleset:   c.Ruleset,
		Gender:    c.Gender.String(),
		Race:      c.Race.String(),
		Size:      c.Size.String(),
		Speed:     c.Speed,
		Traits:    keys(c.Traits),
		Class:     c.Class.String(),
		Level:     c.Level,
		HitPoints: c.HitPoints,
		HitDice:   c.HitDice,
		Alignment: c.Alignment.String(),
		AbilityScores: AbilityScores{
			Strength:     s.Get(dnd5e.AbilityStrength),
			Dexterity:    s.Get(dnd5e.AbilityDexterity),
			Constitution: s.Get(dnd5e.AbilityConstitution),
			Intelligence: s.Get(dnd5e.AbilityIntelligence),
			Wisdom:       s.Get(dnd5e.AbilityWisdom),
			Charisma:     s.Get(dnd5e.AbilityCharisma),
		},
		Languages:     keys(c.Languages),
		Proficiencies: keys(c.Proficiencies),
		CreatedAt:     c.CreatedAt,
	}
}

// Sheets converts a batch
func Sheets(characters []*dnd5e.Character) []Sheet {
	out := make([]Sheet, len(characters))
	for i, c := range characters {
		out[i] = NewSheet(c)
	}
	return out
}

func keys[T interface{ String() string }](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
