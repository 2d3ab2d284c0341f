package game

// VisibleTiles computes the set of tiles an observer at origin can see.
// Candidates are every tile within Chebyshev distance radius — a square,
// not a circle; a cheap approximation that reads fine on a tile grid.
// A candidate is visible iff it is in bounds and has a clear sightline
// from the origin. O(radius²) sight checks, each O(distance).
func VisibleTiles(g *Grid, origin Coord, radius int) map[Coord]struct{} {
	vis := make(map[Coord]struct{})
	for row := origin.Row - radius; row <= origin.Row+radius; row++ {
		for col := origin.Col - radius; col <= origin.Col+radius; col++ {
			c := Coord{col, row}
			if !g.InBounds(col, row) {
				continue
			}
			if LOSClear(g, origin, c) {
				vis[c] = struct{}{}
			}
		}
	}
	return vis
}

// VisibilitySet is the fog-of-war state kept by a tactical session:
// the currently visible tiles, recomputed wholesale whenever the origin
// moves or an obstacle changes, and the ever-explored set, which only
// grows. There is no incremental or dirty-region update.
type VisibilitySet struct {
	Visible  map[Coord]struct{}
	Explored map[Coord]struct{}
}

// NewVisibilitySet creates an empty fog state.
func NewVisibilitySet() *VisibilitySet {
	return &VisibilitySet{
		Visible:  make(map[Coord]struct{}),
		Explored: make(map[Coord]struct{}),
	}
}

// Recompute replaces the visible set from the given origin and folds it
// into the explored set. Explored never shrinks.
func (v *VisibilitySet) Recompute(g *Grid, origin Coord, radius int) {
	v.Visible = VisibleTiles(g, origin, radius)
	for c := range v.Visible {
		v.Explored[c] = struct{}{}
	}
}

// IsVisible returns true if the tile is currently in sight.
func (v *VisibilitySet) IsVisible(c Coord) bool {
	_, ok := v.Visible[c]
	return ok
}

// IsExplored returns true if the tile has ever been seen.
func (v *VisibilitySet) IsExplored(c Coord) bool {
	_, ok := v.Explored[c]
	return ok
}
