package game

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// MapGenConfig holds obstacle-layout generation parameters.
type MapGenConfig struct {
	Seed      int64
	Scale     float64 // noise frequency; smaller values make larger blobs
	Threshold float64 // normalized noise above this becomes an obstacle
	Keep      []Coord // tiles forced open (spawns, objectives)
}

// DefaultMapGen returns a layout config that yields scattered wall
// clusters covering roughly a quarter of the map.
func DefaultMapGen(seed int64) MapGenConfig {
	return MapGenConfig{
		Seed:      seed,
		Scale:     0.35,
		Threshold: 0.66,
	}
}

// GenerateObstacles fills the grid with a deterministic noise-driven
// obstacle layout. Existing obstacles are cleared first; tiles listed in
// Keep stay open. Returns the number of obstacles placed.
func GenerateObstacles(g *Grid, cfg MapGenConfig) int {
	noise := opensimplex.NewNormalized(cfg.Seed)

	keep := make(map[Coord]struct{}, len(cfg.Keep))
	for _, c := range cfg.Keep {
		keep[c] = struct{}{}
	}

	placed := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := Coord{col, row}
			if _, ok := keep[c]; ok {
				g.SetBlocked(col, row, false)
				continue
			}
			blocked := noise.Eval2(float64(col)*cfg.Scale, float64(row)*cfg.Scale) > cfg.Threshold
			g.SetBlocked(col, row, blocked)
			if blocked {
				placed++
			}
		}
	}
	return placed
}
