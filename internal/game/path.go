package game

// floodDirs is the fixed 4-way neighbour expansion order. Ties between
// equal-length routes are broken by first-reached, so this order decides
// which of two equally short paths the parent map records.
var floodDirs = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FloodFill runs a uniform-cost breadth-first search from start over
// 4-connected neighbours, cost 1 per step. A node whose cost has reached
// maxCost is recorded but not expanded further. The passable predicate is
// supplied per call so callers can layer dynamic exclusions (occupied
// tiles, per-turn limits) on top of the grid without mutating it.
//
// Returns the cost map and the parent-pointer map. Unreachable tiles are
// simply absent from the cost map — callers must treat absence distinctly
// from cost 0, which is the start tile.
func FloodFill(start Coord, passable func(col, row int) bool, maxCost int) (map[Coord]int, map[Coord]Coord) {
	costs := map[Coord]int{start: 0}
	parents := make(map[Coord]Coord)

	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		base := costs[cur]
		if base >= maxCost {
			continue
		}

		for _, d := range floodDirs {
			next := Coord{cur.Col + d.Col, cur.Row + d.Row}
			if !passable(next.Col, next.Row) {
				continue
			}
			if _, seen := costs[next]; seen {
				continue
			}
			costs[next] = base + 1
			parents[next] = cur
			queue = append(queue, next)
		}
	}
	return costs, parents
}

// ReconstructPath walks parent pointers back from end and returns the tile
// sequence from start to end inclusive. When end has no parent chain the
// result is just [end] — callers must distinguish "unreachable" (absent
// from the cost map) from "is the start" before calling this.
func ReconstructPath(end Coord, parents map[Coord]Coord) []Coord {
	var path []Coord
	cur := end
	for {
		p, ok := parents[cur]
		if !ok {
			break
		}
		path = append(path, cur)
		cur = p
	}
	path = append(path, cur) // start
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathPlan holds the flood-fill result from one origin: a cost map and a
// parent map over the reachable region. Recomputed wholesale whenever the
// origin, budget, or obstacle set changes.
type PathPlan struct {
	Start   Coord
	MaxCost int
	Costs   map[Coord]int
	Parents map[Coord]Coord
}

// PlanPaths flood-fills from start with the given budget. The extra
// predicate, when non-nil, excludes additional tiles beyond grid
// passability (occupied tiles and the like).
func PlanPaths(g *Grid, start Coord, maxCost int, exclude func(Coord) bool) *PathPlan {
	passable := func(col, row int) bool {
		if !g.IsPassable(col, row) {
			return false
		}
		return exclude == nil || !exclude(Coord{col, row})
	}
	costs, parents := FloodFill(start, passable, maxCost)
	return &PathPlan{Start: start, MaxCost: maxCost, Costs: costs, Parents: parents}
}

// CostTo returns the step cost to reach c, and whether c is reachable.
func (p *PathPlan) CostTo(c Coord) (int, bool) {
	cost, ok := p.Costs[c]
	return cost, ok
}

// PathTo returns the tile sequence from the origin to c, or nil when c is
// not in the reachable region.
func (p *PathPlan) PathTo(c Coord) []Coord {
	if _, ok := p.Costs[c]; !ok {
		return nil
	}
	return ReconstructPath(c, p.Parents)
}
