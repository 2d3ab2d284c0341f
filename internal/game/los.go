package game

// Line returns every tile on the straight line from a to b inclusive,
// using Bresenham error accumulation. Diagonal steps are allowed when the
// doubled error permits stepping on both axes in the same iteration.
// Pure function of its inputs — safe to call repeatedly.
func Line(a, b Coord) []Coord {
	x0, y0 := a.Col, a.Row
	x1, y1 := b.Col, b.Row

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	// Upper bound on length: one entry per axis step plus the origin.
	out := make([]Coord, 0, dx-dy+1)
	for {
		out = append(out, Coord{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// LOSClear returns true if the straight line from a to b has no blocked
// tile strictly between them. The origin is skipped, and the destination's
// own passability is irrelevant — you can sight a tile occupied by a target.
func LOSClear(g *Grid, a, b Coord) bool {
	for _, c := range Line(a, b)[1:] {
		if c == b {
			return true
		}
		if !g.IsPassable(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// FacingSide returns which side of the `to` tile faces `from`. The axis
// with the larger absolute delta decides horizontal vs vertical, ties
// resolve to the horizontal axis, and the delta's sign picks the side.
func FacingSide(from, to Coord) Side {
	dx := to.Col - from.Col
	dy := to.Row - from.Row
	if absInt(dx) >= absInt(dy) {
		if dx > 0 {
			return SideWest // shooter approaches from the west
		}
		return SideEast
	}
	if dy > 0 {
		return SideNorth // shooter approaches from above
	}
	return SideSouth
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
