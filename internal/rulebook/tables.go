package rulebook

import (
	"slices"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/dnd5e"
)

// raceProfile is everything a race fixes about a character
type raceProfile struct {
	bonuses         dnd5e.AbilityScores
	randomBonuses   int
	speed           int
	size            dnd5e.Size
	languages       []dnd5e.Language
	randomLanguages int
	traits          []dnd5e.Trait
	proficiencies   []dnd5e.Proficiency
}

// classProfile is everything a class fixes about a character
type classProfile struct {
	hitDie          int
	proficiencies   []dnd5e.Proficiency
	choices         []dnd5e.Proficiency
	choiceCount     int
	extraMilestones []int
}

const (
	defaultSpeed = 30
	slowSpeed    = 25
)

var baseMilestones = []int{4, 8, 12, 16, 19}

func bonus(pairs ...int) dnd5e.AbilityScores {
	var out dnd5e.AbilityScores
	for i := 0; i+1 < len(pairs); i += 2 {
		out[pairs[i]] = pairs[i+1]
	}
	return out
}

const (
	str  = int(dnd5e.AbilityStrength)
	dex  = int(dnd5e.AbilityDexterity)
	con  = int(dnd5e.AbilityConstitution)
	intl = int(dnd5e.AbilityIntelligence)
	cha  = int(dnd5e.AbilityCharisma)
)

var races = [dnd5e.RaceCount]raceProfile{
	dnd5e.RaceHuman: {
		bonuses:         dnd5e.AbilityScores{1, 1, 1, 1, 1, 1},
		speed:           defaultSpeed,
		size:            dnd5e.SizeMedium,
		randomLanguages: 1,
	},
	dnd5e.RaceElf: {
		bonuses:   bonus(dex, 2),
		speed:     defaultSpeed,
		size:      dnd5e.SizeMedium,
		languages: []dnd5e.Language{dnd5e.LanguageElvish},
		traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitKeenSenses, dnd5e.TraitFeyAncestry, dnd5e.TraitTrance,
		},
	},
	dnd5e.RaceDwarf: {
		bonuses:   bonus(con, 2),
		speed:     slowSpeed,
		size:      dnd5e.SizeMedium,
		languages: []dnd5e.Language{dnd5e.LanguageDwarvish},
		traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitDwarvenResilience, dnd5e.TraitDwarvenCombatTraining,
			dnd5e.TraitToolProficiency, dnd5e.TraitStonecunning,
		},
	},
	dnd5e.RaceGnome: {
		bonuses:   bonus(intl, 2),
		speed:     slowSpeed,
		size:      dnd5e.SizeSmall,
		languages: []dnd5e.Language{dnd5e.LanguageGnomish},
		traits:    []dnd5e.Trait{dnd5e.TraitDarkvision, dnd5e.TraitGnomeCunning},
	},
	dnd5e.RaceHalfling: {
		bonuses:   bonus(dex, 2),
		speed:     slowSpeed,
		size:      dnd5e.SizeSmall,
		languages: []dnd5e.Language{dnd5e.LanguageHalfling},
		traits:    []dnd5e.Trait{dnd5e.TraitLucky, dnd5e.TraitBrave, dnd5e.TraitHalflingNimbleness},
	},
	dnd5e.RaceHalfElf: {
		bonuses:         bonus(cha, 2),
		randomBonuses:   2,
		speed:           defaultSpeed,
		size:            dnd5e.SizeMedium,
		languages:       []dnd5e.Language{dnd5e.LanguageElvish},
		randomLanguages: 1,
		traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitFeyAncestry, dnd5e.TraitSkillVersatility,
		},
	},
	dnd5e.RaceHalfOrc: {
		bonuses:   bonus(con, 2, str, 1),
		speed:     defaultSpeed,
		size:      dnd5e.SizeMedium,
		languages: []dnd5e.Language{dnd5e.LanguageOrc},
		traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitMenacing, dnd5e.TraitRelentlessEndurance, dnd5e.TraitSavageAttacks,
		},
		proficiencies: []dnd5e.Proficiency{dnd5e.SkillIntimidation},
	},
	dnd5e.RaceDragonborn: {
		bonuses:   bonus(str, 2, con, 1),
		speed:     defaultSpeed,
		size:      dnd5e.SizeMedium,
		languages: []dnd5e.Language{dnd5e.LanguageDraconic},
		traits: []dnd5e.Trait{
			dnd5e.TraitDraconicAncestry, dnd5e.TraitDamageResistance, dnd5e.TraitBreathWeapon,
		},
	},
	dnd5e.RaceTiefling: {
		bonuses:   bonus(cha, 2, intl, 1),
		speed:     defaultSpeed,
		size:      dnd5e.SizeMedium,
		languages: []dnd5e.Language{dnd5e.LanguageInfernal},
		traits: []dnd5e.Trait{
			dnd5e.TraitDarkvision, dnd5e.TraitHellishResistance, dnd5e.TraitInfernalLegacy,
		},
	},
}

var armoredMartial = []dnd5e.Proficiency{
	dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.HeavyArmor, dnd5e.Shields,
	dnd5e.SimpleWeapons, dnd5e.MartialWeapons,
}

var casterWeapons = []dnd5e.Proficiency{
	dnd5e.WeaponDagger, dnd5e.WeaponDart, dnd5e.WeaponSling,
	dnd5e.WeaponQuarterstaff, dnd5e.WeaponLightCrossbow,
}

func profs(groups ...[]dnd5e.Proficiency) []dnd5e.Proficiency {
	return slices.Concat(groups...)
}

func list(p ...dnd5e.Proficiency) []dnd5e.Proficiency { return p }

var classes = [dnd5e.ClassCount]classProfile{
	dnd5e.ClassBarbarian: {
		hitDie: 12,
		proficiencies: list(
			dnd5e.SaveStrength, dnd5e.SaveConstitution,
			dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.Shields,
			dnd5e.SimpleWeapons, dnd5e.MartialWeapons,
		),
		choices: list(
			dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillIntimidation,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillSurvival,
		),
		choiceCount: 2,
	},
	dnd5e.ClassBard: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveDexterity, dnd5e.SaveCharisma,
			dnd5e.LightArmor, dnd5e.SimpleWeapons,
			dnd5e.WeaponHandCrossbow, dnd5e.WeaponLongsword, dnd5e.WeaponRapier, dnd5e.WeaponShortsword,
		),
		choices:     dnd5e.Skills(),
		choiceCount: 3,
	},
	dnd5e.ClassCleric: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveWisdom, dnd5e.SaveCharisma,
			dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.Shields, dnd5e.SimpleWeapons,
		),
		choices: list(
			dnd5e.SkillHistory, dnd5e.SkillInsight, dnd5e.SkillMedicine,
			dnd5e.SkillPersuasion, dnd5e.SkillReligion,
		),
		choiceCount: 2,
	},
	dnd5e.ClassDruid: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveIntelligence, dnd5e.SaveWisdom,
			dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.Shields,
			dnd5e.WeaponClub, dnd5e.WeaponDagger, dnd5e.WeaponDart, dnd5e.WeaponJavelin,
			dnd5e.WeaponQuarterstaff, dnd5e.WeaponScimitar, dnd5e.WeaponSickle,
			dnd5e.WeaponSling, dnd5e.WeaponSpear,
			dnd5e.ToolHerbalismKit,
		),
		choices: list(
			dnd5e.SkillArcana, dnd5e.SkillAnimalHandling, dnd5e.SkillInsight, dnd5e.SkillMedicine,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillReligion, dnd5e.SkillSurvival,
		),
		choiceCount: 2,
	},
	dnd5e.ClassFighter: {
		hitDie:        10,
		proficiencies: profs(list(dnd5e.SaveStrength, dnd5e.SaveConstitution), armoredMartial),
		choices: list(
			dnd5e.SkillAcrobatics, dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillHistory,
			dnd5e.SkillInsight, dnd5e.SkillIntimidation, dnd5e.SkillPerception, dnd5e.SkillSurvival,
		),
		choiceCount:     2,
		extraMilestones: []int{6, 14},
	},
	dnd5e.ClassMonk: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveStrength, dnd5e.SaveDexterity,
			dnd5e.SimpleWeapons, dnd5e.WeaponShortsword,
		),
		choices: list(
			dnd5e.SkillAcrobatics, dnd5e.SkillAthletics, dnd5e.SkillHistory,
			dnd5e.SkillInsight, dnd5e.SkillReligion, dnd5e.SkillStealth,
		),
		choiceCount: 2,
	},
	dnd5e.ClassPaladin: {
		hitDie:        10,
		proficiencies: profs(list(dnd5e.SaveWisdom, dnd5e.SaveCharisma), armoredMartial),
		choices: list(
			dnd5e.SkillAthletics, dnd5e.SkillInsight, dnd5e.SkillIntimidation,
			dnd5e.SkillMedicine, dnd5e.SkillPersuasion, dnd5e.SkillReligion,
		),
		choiceCount: 2,
	},
	dnd5e.ClassRanger: {
		hitDie: 10,
		proficiencies: list(
			dnd5e.SaveStrength, dnd5e.SaveDexterity,
			dnd5e.LightArmor, dnd5e.MediumArmor, dnd5e.Shields,
			dnd5e.SimpleWeapons, dnd5e.MartialWeapons,
		),
		choices: list(
			dnd5e.SkillAnimalHandling, dnd5e.SkillAthletics, dnd5e.SkillInsight, dnd5e.SkillInvestigation,
			dnd5e.SkillNature, dnd5e.SkillPerception, dnd5e.SkillStealth, dnd5e.SkillSurvival,
		),
		choiceCount: 3,
	},
	dnd5e.ClassRogue: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveDexterity, dnd5e.SaveIntelligence,
			dnd5e.LightArmor, dnd5e.SimpleWeapons,
			dnd5e.WeaponHandCrossbow, dnd5e.WeaponLongsword, dnd5e.WeaponRapier, dnd5e.WeaponShortsword,
			dnd5e.ToolThievesTools,
		),
		choices: list(
			dnd5e.SkillAcrobatics, dnd5e.SkillAthletics, dnd5e.SkillDeception, dnd5e.SkillInsight,
			dnd5e.SkillIntimidation, dnd5e.SkillInvestigation, dnd5e.SkillPerception,
			dnd5e.SkillPerformance, dnd5e.SkillPersuasion, dnd5e.SkillSleightOfHand, dnd5e.SkillStealth,
		),
		choiceCount: 4,
	},
	dnd5e.ClassSorcerer: {
		hitDie:        6,
		proficiencies: profs(list(dnd5e.SaveConstitution, dnd5e.SaveCharisma), casterWeapons),
		choices: list(
			dnd5e.SkillArcana, dnd5e.SkillDeception, dnd5e.SkillInsight,
			dnd5e.SkillIntimidation, dnd5e.SkillPersuasion, dnd5e.SkillReligion,
		),
		choiceCount: 2,
	},
	dnd5e.ClassWizard: {
		hitDie:        6,
		proficiencies: profs(list(dnd5e.SaveIntelligence, dnd5e.SaveWisdom), casterWeapons),
		choices: list(
			dnd5e.SkillArcana, dnd5e.SkillHistory, dnd5e.SkillInsight,
			dnd5e.SkillInvestigation, dnd5e.SkillMedicine, dnd5e.SkillReligion,
		),
		choiceCount: 2,
	},
	dnd5e.ClassWarlock: {
		hitDie: 8,
		proficiencies: list(
			dnd5e.SaveWisdom, dnd5e.SaveCharisma,
			dnd5e.LightArmor, dnd5e.SimpleWeapons,
		),
		choices: list(
			dnd5e.SkillArcana, dnd5e.SkillDeception, dnd5e.SkillHistory, dnd5e.SkillIntimidation,
			dnd5e.SkillInvestigation, dnd5e.SkillNature, dnd5e.SkillReligion,
		),
		choiceCount: 2,
	},
}
