package game

// Coord identifies one grid tile by (column, row).
type Coord struct {
	Col int
	Row int
}

// Grid owns the tile bounds and the set of blocked (obstacle) tiles.
// A tile is passable iff it is in bounds AND not blocked. The blocked set
// may be mutated at any time; there is no cached derived state here, so
// cover, fog and path results computed earlier simply go stale and must
// be recomputed by the caller.
type Grid struct {
	Cols     int
	Rows     int
	TileSize int // pixel edge length, used only by the presentation layer

	blocked map[Coord]struct{}
}

// NewGrid creates an empty grid with the given tile extents.
func NewGrid(cols, rows, tileSize int) *Grid {
	return &Grid{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		blocked:  make(map[Coord]struct{}),
	}
}

// InBounds returns true if (col,row) lies within the configured extents.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// IsBlocked returns true if an obstacle occupies (col,row).
// Bounds are not checked — out-of-bounds tiles are simply not in the set.
func (g *Grid) IsBlocked(col, row int) bool {
	_, ok := g.blocked[Coord{col, row}]
	return ok
}

// IsPassable returns true if (col,row) is in bounds and unobstructed.
func (g *Grid) IsPassable(col, row int) bool {
	return g.InBounds(col, row) && !g.IsBlocked(col, row)
}

// ToggleObstacle flips obstacle membership at (col,row).
// Out-of-bounds toggles are ignored. Dependents are not notified.
func (g *Grid) ToggleObstacle(col, row int) {
	if !g.InBounds(col, row) {
		return
	}
	c := Coord{col, row}
	if _, ok := g.blocked[c]; ok {
		delete(g.blocked, c)
	} else {
		g.blocked[c] = struct{}{}
	}
}

// SetBlocked forces obstacle membership at (col,row) to the given state.
// Used by map generation; out-of-bounds coordinates are ignored.
func (g *Grid) SetBlocked(col, row int, blocked bool) {
	if !g.InBounds(col, row) {
		return
	}
	c := Coord{col, row}
	if blocked {
		g.blocked[c] = struct{}{}
	} else {
		delete(g.blocked, c)
	}
}

// BlockedCount returns the number of obstacle tiles currently placed.
func (g *Grid) BlockedCount() int {
	return len(g.blocked)
}

// ToPx returns the top-left pixel of a tile.
func (g *Grid) ToPx(col, row int) (int, int) {
	return col * g.TileSize, row * g.TileSize
}

// CenterPx returns the center pixel of a tile.
func (g *Grid) CenterPx(col, row int) (int, int) {
	x, y := g.ToPx(col, row)
	half := g.TileSize / 2
	return x + half, y + half
}

// FromPx converts a pixel position to the containing tile.
func (g *Grid) FromPx(x, y int) (int, int) {
	return x / g.TileSize, y / g.TileSize
}
