package game

import "math/rand"

// Dice is the random source consumed by shot resolution: a uniform
// integer in [lo,hi] inclusive. Sessions own a seeded implementation;
// tests inject scripted sequences for exact-outcome assertions.
type Dice interface {
	Roll(lo, hi int) int
}

type seededDice struct {
	rng *rand.Rand
}

// NewDice returns a seeded pseudo-random Dice. The same seed always
// produces the same roll sequence.
func NewDice(seed int64) Dice {
	return &seededDice{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- game only
}

func (d *seededDice) Roll(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Intn(hi-lo+1)
}
