package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RangeBand is one (min-inclusive, max-exclusive, modifier) triple over
// Euclidean tile distance. Bands are checked in order; the first match
// wins, and no match falls back to a zero modifier.
type RangeBand struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Modifier int     `yaml:"modifier"`
}

// Rules is the complete tuning surface of the combat core. It is an
// explicit immutable value passed into every entry point — there is no
// package-level mutable configuration — so tests can run alternate rule
// sets deterministically.
type Rules struct {
	// Hit chance
	BaseAimPercent   int         `yaml:"base_aim_percent"`
	HitClampMin      int         `yaml:"hit_clamp_min"`
	HitClampMax      int         `yaml:"hit_clamp_max"`
	RangeBands       []RangeBand `yaml:"range_bands"`
	CoverHalfPenalty int         `yaml:"cover_half_penalty"`
	CoverFullPenalty int         `yaml:"cover_full_penalty"`
	FlankBonus       int         `yaml:"flank_bonus"`

	// Crit chance
	BaseCritPercent      int `yaml:"base_crit_percent"`
	CritFlankBonus       int `yaml:"crit_flank_bonus"`
	CritHalfCoverPenalty int `yaml:"crit_half_cover_penalty"`
	CritFullCoverPenalty int `yaml:"crit_full_cover_penalty"`
	CritPointBlankBonus  int `yaml:"crit_point_blank_bonus"`

	// Graze and damage
	GrazeBandPercent int     `yaml:"graze_band_percent"`
	GrazeMultiplier  float64 `yaml:"graze_multiplier"`
	DamageMin        int     `yaml:"damage_min"`
	DamageMax        int     `yaml:"damage_max"`
	CritBonusDamage  int     `yaml:"crit_bonus_damage"`

	// Session pacing
	SightRadius    int `yaml:"sight_radius"`
	MoveRangePerAP int `yaml:"move_range_per_ap"`
	ActionsPerTurn int `yaml:"actions_per_turn"`
	FireCost       int `yaml:"fire_cost"`
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		BaseAimPercent: 65,
		HitClampMin:    5,
		HitClampMax:    95,
		RangeBands: []RangeBand{
			{0, 2, 10},
			{2, 8, 0},
			{8, 14, -10},
			{14, 999, -30},
		},
		CoverHalfPenalty: -20,
		CoverFullPenalty: -40,
		FlankBonus:       30,

		BaseCritPercent:      10,
		CritFlankBonus:       20,
		CritHalfCoverPenalty: -10,
		CritFullCoverPenalty: -20,
		CritPointBlankBonus:  15,

		GrazeBandPercent: 20,
		GrazeMultiplier:  0.5,
		DamageMin:        3,
		DamageMax:        5,
		CritBonusDamage:  2,

		SightRadius:    8,
		MoveRangePerAP: 4,
		ActionsPerTurn: 2,
		FireCost:       1,
	}
}

// LoadRules reads a YAML rules file over the defaults: any field present
// in the file overrides the default value, absent fields keep theirs.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	return rules, nil
}

// RangeModifier returns the modifier of the first band containing dist,
// or 0 when no band matches.
func RangeModifier(dist float64, bands []RangeBand) int {
	for _, b := range bands {
		if b.Min <= dist && dist < b.Max {
			return b.Modifier
		}
	}
	return 0
}
