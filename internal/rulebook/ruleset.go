package rulebook

import (
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// StatMethod names how base ability scores are rolled
type StatMethod string

// Stat methods
const (
	// StatMethodDropLowest rolls 4d6 and keeps the highest three
	StatMethodDropLowest StatMethod = "4d6_drop_lowest"
	// StatMethodClassic rolls 3d6 straight
	StatMethodClassic StatMethod = "3d6"
	// StatMethodFlat draws one uniform value in [3, 18]
	StatMethodFlat StatMethod = "flat"
)

// Ruleset names
const (
	RulesetStandard = "standard"
	RulesetLegacy   = "legacy"
)

// Ruleset is the set of knobs that differ between rule editions
type Ruleset struct {
	Name       string
	StatMethod StatMethod
	StatCap    int
}

// Standard is the 5e ruleset: 4d6 drop lowest, scores capped at 20
func Standard() Ruleset {
	return Ruleset{Name: RulesetStandard, StatMethod: StatMethodDropLowest, StatCap: 20}
}

// Legacy is the older d20 ruleset: flat 3..18 scores capped at 18
func Legacy() Ruleset {
	return Ruleset{Name: RulesetLegacy, StatMethod: StatMethodFlat, StatCap: 18}
}

// StatMethods lists the supported stat methods
func StatMethods() []string {
	return []string{string(StatMethodDropLowest), string(StatMethodClassic), string(StatMethodFlat)}
}

// RulesetNames lists the supported rulesets
func RulesetNames() []string {
	return []string{RulesetStandard, RulesetLegacy}
}

// RulesetByName looks a ruleset up by name
func RulesetByName(name string) (Ruleset, error) {
	switch name {
	case RulesetStandard:
		return Standard(), nil
	case RulesetLegacy:
		return Legacy(), nil
	default:
		return Ruleset{}, errors.NotFoundf("unknown ruleset: %s", name)
	}
}

// WithStatMethod returns a copy of the ruleset rolling scores with method
func (r Ruleset) WithStatMethod(method StatMethod) Ruleset {
	r.StatMethod = method
	return r
}

// Validate checks the ruleset is usable
func (r Ruleset) Validate() error {
	vb := errors.NewValidationBuilder()
	if r.Name == "" {
		vb.RequiredField("name")
	}
	errors.ValidateEnum("stat_method", string(r.StatMethod), StatMethods(), vb)
	errors.ValidateRange("stat_cap", r.StatCap, 18, 30, vb)
	return vb.Build()
}
