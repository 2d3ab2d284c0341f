package game

import "math"

// Outcome is the closed set of shot results. The threshold nesting in
// ResolveShot guarantees crit ⊆ hit ⊆ hit+graze as probability intervals.
type Outcome uint8

const (
	OutcomeBlocked Outcome = iota
	OutcomeMiss
	OutcomeGraze
	OutcomeHit
	OutcomeCrit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMiss:
		return "miss"
	case OutcomeGraze:
		return "graze"
	case OutcomeHit:
		return "hit"
	case OutcomeCrit:
		return "crit"
	default:
		return "unknown"
	}
}

// ShotPreview is the read-only probability and damage picture for a
// prospective shot. Computing it consumes no randomness, so the UI may
// redraw it every frame.
type ShotPreview struct {
	LOS        bool
	HitChance  int
	CritChance int // effective crit, capped by hit
	GrazeBand  int
	Flanked    bool
	Cover      CoverLevel
	Distance   float64

	DmgBaseMin  int
	DmgBaseMax  int
	DmgGrazeMin int
	DmgGrazeMax int
	DmgCritMin  int
	DmgCritMax  int
}

// ShotResult is the immutable record of one resolved shot. The caller
// applies Damage to the target and removes it on death.
type ShotResult struct {
	Outcome    Outcome
	Roll       int
	HitChance  int
	CritChance int
	GrazeBand  int
	Damage     int
	Flanked    bool
	Cover      CoverLevel
	Distance   float64
}

// critForContext derives the effective crit chance from the same flank and
// cover determination the hit calculation used — never recomputed
// independently. Clamped to [0,100] and capped at the hit total: a crit is
// a subset of hits.
func critForContext(rules Rules, hitTotal int, flanked bool, cover CoverLevel, dist float64, w *Weapon) int {
	crit := w.Spec.BaseCrit
	if flanked {
		crit += rules.CritFlankBonus
	}
	switch cover {
	case CoverHalf:
		crit += rules.CritHalfCoverPenalty
	case CoverFull:
		crit += rules.CritFullCoverPenalty
	}
	if dist < 2.0 {
		crit += w.Spec.CritPointBlankBonus
	}
	if crit < 0 {
		crit = 0
	}
	if crit > 100 {
		crit = 100
	}
	if crit > hitTotal {
		crit = hitTotal
	}
	return crit
}

func grazeDamage(base int, mult float64) int {
	d := int(math.Round(float64(base) * mult))
	if d < 1 {
		d = 1
	}
	return d
}

// PreviewShot computes hit, crit and graze probabilities plus damage
// ranges for shooter firing at target with the given weapon. On a blocked
// sightline the chances are zero but the damage ranges are still filled
// from the weapon stats, so the display stays consistent.
func PreviewShot(g *Grid, rules Rules, shooter, target Coord, w *Weapon) ShotPreview {
	baseAim := rules.BaseAimPercent + w.Spec.AimBonus
	bd := ComputeHit(g, rules, shooter, target, baseAim, w.Spec.RangeBands)

	pv := ShotPreview{
		LOS:         bd.LOS,
		Flanked:     bd.Flanked,
		Cover:       bd.Cover,
		Distance:    bd.Distance,
		DmgBaseMin:  w.Spec.DmgMin,
		DmgBaseMax:  w.Spec.DmgMax,
		DmgGrazeMin: grazeDamage(w.Spec.DmgMin, w.Spec.GrazeMultiplier),
		DmgGrazeMax: grazeDamage(w.Spec.DmgMax, w.Spec.GrazeMultiplier),
		DmgCritMin:  w.Spec.DmgMin + w.Spec.CritBonusDamage,
		DmgCritMax:  w.Spec.DmgMax + w.Spec.CritBonusDamage,
	}
	if !bd.LOS {
		pv.Cover = CoverFull
		return pv
	}

	pv.HitChance = bd.Total
	pv.CritChance = critForContext(rules, bd.Total, bd.Flanked, bd.Cover, bd.Distance, w)

	// Grazes only exist in the band between the hit chance and 100.
	graze := rules.GrazeBandPercent
	if room := 100 - bd.Total; room < graze {
		graze = room
	}
	if graze < 0 {
		graze = 0
	}
	pv.GrazeBand = graze
	return pv
}

// ResolveShot draws one outcome for the shot. A blocked sightline returns
// a zero-damage result without consuming any randomness. Otherwise exactly
// two draws are taken from the dice, roll first, then base damage, and the
// thresholds are evaluated in crit → hit → graze order so the intervals
// nest. Graze damage floors at 1 only when the rolled base was positive.
func ResolveShot(g *Grid, rules Rules, shooter, target Coord, dice Dice, w *Weapon) ShotResult {
	pv := PreviewShot(g, rules, shooter, target, w)
	if !pv.LOS {
		return ShotResult{
			Outcome:  OutcomeBlocked,
			Cover:    CoverFull,
			Distance: pv.Distance,
		}
	}

	roll := dice.Roll(1, 100)
	base := dice.Roll(w.Spec.DmgMin, w.Spec.DmgMax)

	grazeTh := pv.HitChance + pv.GrazeBand
	if grazeTh > 100 {
		grazeTh = 100
	}

	var outcome Outcome
	var dmg int
	switch {
	case roll <= pv.CritChance:
		outcome = OutcomeCrit
		dmg = base + w.Spec.CritBonusDamage
	case roll <= pv.HitChance:
		outcome = OutcomeHit
		dmg = base
	case roll <= grazeTh:
		outcome = OutcomeGraze
		if base > 0 {
			dmg = grazeDamage(base, w.Spec.GrazeMultiplier)
		}
	default:
		outcome = OutcomeMiss
	}

	return ShotResult{
		Outcome:    outcome,
		Roll:       roll,
		HitChance:  pv.HitChance,
		CritChance: pv.CritChance,
		GrazeBand:  pv.GrazeBand,
		Damage:     dmg,
		Flanked:    pv.Flanked,
		Cover:      pv.Cover,
		Distance:   pv.Distance,
	}
}
