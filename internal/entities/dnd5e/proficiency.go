package dnd5e

// Proficiency is a trained capability: a saving throw, a skill, an
// armor/weapon category, a specific weapon or a tool. The values are laid
// out in kind blocks so Kind is a range check.
type Proficiency int

// ProficiencyKind groups proficiencies for display
type ProficiencyKind int

// Proficiency kinds
const (
	KindSave ProficiencyKind = iota
	KindSkill
	KindCategory
	KindWeapon
	KindTool
)

// Saving throws
const (
	SaveStrength Proficiency = iota
	SaveDexterity
	SaveConstitution
	SaveIntelligence
	SaveWisdom
	SaveCharisma
)

// Skills
const (
	SkillAthletics Proficiency = iota + SaveCharisma + 1
	SkillAcrobatics
	SkillSleightOfHand
	SkillStealth
	SkillArcana
	SkillHistory
	SkillInvestigation
	SkillNature
	SkillReligion
	SkillAnimalHandling
	SkillInsight
	SkillMedicine
	SkillPerception
	SkillSurvival
	SkillDeception
	SkillIntimidation
	SkillPerformance
	SkillPersuasion
)

// Armor and weapon categories
const (
	SimpleWeapons Proficiency = iota + SkillPersuasion + 1
	MartialWeapons
	LightArmor
	MediumArmor
	HeavyArmor
	Shields
)

// Specific weapons
const (
	WeaponClub Proficiency = iota + Shields + 1
	WeaponDagger
	WeaponGreatclub
	WeaponHandaxe
	WeaponJavelin
	WeaponLightHammer
	WeaponMace
	WeaponQuarterstaff
	WeaponSickle
	WeaponSpear
	WeaponUnarmed
	WeaponLightCrossbow
	WeaponDart
	WeaponShortbow
	WeaponSling
	WeaponBattleaxe
	WeaponFlail
	WeaponGlaive
	WeaponGreataxe
	WeaponGreatsword
	WeaponHalberd
	WeaponLance
	WeaponLongsword
	WeaponMaul
	WeaponMorningstar
	WeaponPike
	WeaponRapier
	WeaponScimitar
	WeaponShortsword
	WeaponTrident
	WeaponWarPick
	WeaponWarhammer
	WeaponWhip
	WeaponBlowgun
	WeaponHandCrossbow
	WeaponHeavyCrossbow
	WeaponLongbow
	WeaponNet
)

// Tools. Instruments sit between ToolBagpipes and ToolViol and the gaming
// sets close the block.
const (
	ToolAlchemistsSupplies Proficiency = iota + WeaponNet + 1
	ToolBrewersSupplies
	ToolCalligraphersSupplies
	ToolCarpentersTools
	ToolCartographersTools
	ToolCobblersTools
	ToolCooksUtensils
	ToolGlassblowersTools
	ToolJewelersTools
	ToolMasonsTools
	ToolPaintersSupplies
	ToolPottersTools
	ToolSmithsTools
	ToolTinkersTools
	ToolWeaversTools
	ToolWoodcarversTools
	ToolDisguiseKit
	ToolForgeryKit
	ToolHerbalismKit
	ToolBagpipes
	ToolDrum
	ToolDulcimer
	ToolFlute
	ToolLute
	ToolLyre
	ToolHorn
	ToolPanFlute
	ToolShawm
	ToolViol
	ToolNavigatorsTools
	ToolPoisonersKit
	ToolThievesTools
	ToolDiceSet
	ToolDragonchessSet
	ToolPlayingCardSet
	ToolThreeDragonAnteSet
	ProficiencyCount
)

var proficiencyKeys = [ProficiencyCount]string{
	"strength_saves", "dexterity_saves", "constitution_saves",
	"intelligence_saves", "wisdom_saves", "charisma_saves",

	"athletics", "acrobatics", "sleight_of_hand", "stealth", "arcana", "history",
	"investigation", "nature", "religion", "animal_handling", "insight", "medicine",
	"perception", "survival", "deception", "intimidation", "performance", "persuasion",

	"simple_weapons", "martial_weapons", "light_armor", "medium_armor", "heavy_armor", "shields",

	"club", "dagger", "greatclub", "handaxe", "javelin", "light_hammer", "mace",
	"quarterstaff", "sickle", "spear", "unarmed", "light_crossbow", "dart", "shortbow",
	"sling", "battleaxe", "flail", "glaive", "greataxe", "greatsword", "halberd", "lance",
	"longsword", "maul", "morningstar", "pike", "rapier", "scimitar", "shortsword",
	"trident", "war_pick", "warhammer", "whip", "blowgun", "hand_crossbow",
	"heavy_crossbow", "longbow", "net",

	"alchemists_supplies", "brewers_supplies", "calligraphers_supplies", "carpenters_tools",
	"cartographers_tools", "cobblers_tools", "cooks_utensils", "glassblowers_tools",
	"jewelers_tools", "masons_tools", "painters_supplies", "potters_tools", "smiths_tools",
	"tinkers_tools", "weavers_tools", "woodcarvers_tools", "disguise_kit", "forgery_kit",
	"herbalism_kit", "bagpipes", "drum", "dulcimer", "flute", "lute", "lyre", "horn",
	"pan_flute", "shawm", "viol", "navigators_tools", "poisoners_kit", "thieves_tools",
	"dice_set", "dragonchess_set", "playing_card_set", "three_dragon_ante_set",
}

// String returns the snake_case key of the proficiency
func (p Proficiency) String() string {
	return keyOf(proficiencyKeys[:], int(p), "proficiency")
}

// Kind returns the block the proficiency belongs to
func (p Proficiency) Kind() ProficiencyKind {
	switch {
	case p < SkillAthletics:
		return KindSave
	case p < SimpleWeapons:
		return KindSkill
	case p < WeaponClub:
		return KindCategory
	case p < ToolAlchemistsSupplies:
		return KindWeapon
	default:
		return KindTool
	}
}

// IsInstrument reports whether p is a musical instrument
func (p Proficiency) IsInstrument() bool {
	return p >= ToolBagpipes && p <= ToolViol
}

// IsGamingSet reports whether p is a gaming set
func (p Proficiency) IsGamingSet() bool {
	return p >= ToolDiceSet && p < ProficiencyCount
}

// SaveFor returns the saving throw proficiency of an ability
func SaveFor(a Ability) Proficiency {
	return SaveStrength + Proficiency(a)
}

// Skills returns every skill proficiency
func Skills() []Proficiency {
	return proficiencyRange(SkillAthletics, SimpleWeapons)
}

// Tools returns every tool proficiency, gaming sets included
func Tools() []Proficiency {
	return proficiencyRange(ToolAlchemistsSupplies, ProficiencyCount)
}

func proficiencyRange(from, to Proficiency) []Proficiency {
	out := make([]Proficiency, 0, to-from)
	for p := from; p < to; p++ {
		out = append(out, p)
	}
	return out
}
