package game

import "strings"

// Side is one of the four compass sides of a tile.
type Side uint8

const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
	sideCount // sentinel
)

func (s Side) String() string {
	switch s {
	case SideNorth:
		return "N"
	case SideEast:
		return "E"
	case SideSouth:
		return "S"
	case SideWest:
		return "W"
	default:
		return "?"
	}
}

// CoverLevel classifies how protected one side of a tile is.
type CoverLevel uint8

const (
	CoverNone CoverLevel = iota
	CoverHalf
	CoverFull
)

func (c CoverLevel) String() string {
	switch c {
	case CoverHalf:
		return "half"
	case CoverFull:
		return "full"
	default:
		return "none"
	}
}

// CoverState holds the cover level on each of a tile's four sides,
// indexed by Side. It is computed on demand and never persisted — a pure
// function of the blocked set at query time.
type CoverState [sideCount]CoverLevel

// sideDelta is the cardinal neighbour offset for each side.
var sideDelta = [sideCount]Coord{
	SideNorth: {0, -1},
	SideEast:  {1, 0},
	SideSouth: {0, 1},
	SideWest:  {-1, 0},
}

// sideDiagonals are the two diagonal neighbours adjacent to each side.
var sideDiagonals = [sideCount][2]Coord{
	SideNorth: {{-1, -1}, {1, -1}},
	SideEast:  {{1, -1}, {1, 1}},
	SideSouth: {{-1, 1}, {1, 1}},
	SideWest:  {{-1, -1}, {-1, 1}},
}

// TileCover classifies the cover on each side of (col,row). A side is full
// when its cardinal neighbour is blocked, or out of bounds with oobIsFull
// set. Otherwise it is half when either diagonal adjacent to that side is
// blocked, and none when nothing nearby obstructs. Full takes precedence;
// diagonals are only consulted when the cardinal neighbour is open.
func TileCover(g *Grid, col, row int, oobIsFull bool) CoverState {
	var cv CoverState
	for side := SideNorth; side < sideCount; side++ {
		d := sideDelta[side]
		ac, ar := col+d.Col, row+d.Row

		adjIn := g.InBounds(ac, ar)
		if (adjIn && g.IsBlocked(ac, ar)) || (!adjIn && oobIsFull) {
			cv[side] = CoverFull
			continue
		}

		for _, dd := range sideDiagonals[side] {
			c2, r2 := col+dd.Col, row+dd.Row
			if g.InBounds(c2, r2) && g.IsBlocked(c2, r2) {
				cv[side] = CoverHalf
				break
			}
		}
	}
	return cv
}

// Label returns a compact display summary such as "N:F E:H", or "None"
// when every side is open. Display only — resolution logic never parses it.
func (cv CoverState) Label() string {
	var parts []string
	for side := SideNorth; side < sideCount; side++ {
		switch cv[side] {
		case CoverFull:
			parts = append(parts, side.String()+":F")
		case CoverHalf:
			parts = append(parts, side.String()+":H")
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, " ")
}
