package game

import (
	"fmt"
	"math"
	"strings"
)

// HitTerm is one applied aim modifier, recorded for display in the order
// it was applied.
type HitTerm struct {
	Label string
	Value int
}

// HitBreakdown is the itemized result of a hit-chance query. Produced
// fresh per query and never mutated afterwards. When LOS is false the
// total is 0 and no terms are present.
type HitBreakdown struct {
	Base     int
	Terms    []HitTerm
	Total    int
	LOS      bool
	Flanked  bool
	Cover    CoverLevel // cover on the target's shooter-facing side
	Distance float64    // Euclidean tiles between tile coordinates
}

// Text formats the breakdown for HUD display, e.g.
// "75%  (65 base, +10 range)".
func (bd HitBreakdown) Text() string {
	pieces := []string{fmt.Sprintf("%d base", bd.Base)}
	for _, t := range bd.Terms {
		pieces = append(pieces, fmt.Sprintf("%+d %s", t.Value, t.Label))
	}
	return fmt.Sprintf("%d%%  (%s)", bd.Total, strings.Join(pieces, ", "))
}

func clampHit(rules Rules, p int) int {
	if p < rules.HitClampMin {
		return rules.HitClampMin
	}
	if p > rules.HitClampMax {
		return rules.HitClampMax
	}
	return p
}

// ComputeHit produces the full shooter→target hit breakdown. The decision
// sequence is fixed: distance, then the LOS gate (no cover or range math
// on a blocked line), then cover on the facing side, then base aim plus
// the range-band modifier, then the flank bonus or the cover penalty.
// Nonzero terms are recorded in application order; the final total is
// clamped to the rules window. A nil bands slice uses the rules' default
// range bands.
func ComputeHit(g *Grid, rules Rules, shooter, target Coord, baseAim int, bands []RangeBand) HitBreakdown {
	dx := float64(target.Col - shooter.Col)
	dy := float64(target.Row - shooter.Row)

	bd := HitBreakdown{Base: baseAim, Distance: math.Hypot(dx, dy)}

	bd.LOS = LOSClear(g, shooter, target)
	if !bd.LOS {
		bd.Total = 0
		return bd
	}

	cv := TileCover(g, target.Col, target.Row, true)
	side := FacingSide(shooter, target)
	bd.Cover = cv[side]
	bd.Flanked = bd.Cover == CoverNone

	total := baseAim

	if bands == nil {
		bands = rules.RangeBands
	}
	if rng := RangeModifier(bd.Distance, bands); rng != 0 {
		bd.Terms = append(bd.Terms, HitTerm{"range", rng})
		total += rng
	}

	if bd.Flanked {
		if rules.FlankBonus != 0 {
			bd.Terms = append(bd.Terms, HitTerm{"flank", rules.FlankBonus})
			total += rules.FlankBonus
		}
	} else if bd.Cover == CoverHalf && rules.CoverHalfPenalty != 0 {
		bd.Terms = append(bd.Terms, HitTerm{"half cover", rules.CoverHalfPenalty})
		total += rules.CoverHalfPenalty
	} else if bd.Cover == CoverFull && rules.CoverFullPenalty != 0 {
		bd.Terms = append(bd.Terms, HitTerm{"full cover", rules.CoverFullPenalty})
		total += rules.CoverFullPenalty
	}

	bd.Total = clampHit(rules, total)
	return bd
}
