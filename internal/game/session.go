package game

import "fmt"

// Session is the orchestrating tactical layer: it owns the grid, the
// units, the rule set, the dice and the fog state, and drives the
// recompute-after-change contract the core modules rely on. The core
// functions themselves never cache derived state; the session recomputes
// fog and movement plans whenever a relevant mutation happens.
//
// The first unit added is the fog observer — the squad-side viewpoint the
// visibility set is computed from.
type Session struct {
	Grid    *Grid
	Rules   Rules
	Units   []*Unit
	Fog     *VisibilitySet
	Catalog *Catalog
	SimLog  *SimLog
	Turn    int

	dice     Dice
	observer *Unit
	plan     *PathPlan

	// construction state consumed by options
	cols, rows, tileSize int
}

// sessionOptionKind controls the pass in which an option is applied.
type sessionOptionKind int

const (
	sessOptInfra   sessionOptionKind = iota // rules, grid size, seed, verbose — applied first
	sessOptTerrain                          // obstacles — applied once the grid exists
	sessOptUnit                             // add units — applied last
)

// SessionOption is a builder function applied to a Session during construction.
type SessionOption struct {
	kind sessionOptionKind
	fn   func(*Session)
}

// WithGridSize sets the tile extents of the battlefield.
func WithGridSize(cols, rows int) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.cols = cols
		s.rows = rows
	}}
}

// WithTileSize sets the pixel edge length used by the presentation layer.
func WithTileSize(px int) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.tileSize = px
	}}
}

// WithRules replaces the default rule set.
func WithRules(r Rules) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.Rules = r
	}}
}

// WithSeed sets the dice seed for deterministic runs.
func WithSeed(seed int64) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.dice = NewDice(seed)
	}}
}

// WithDice injects a dice implementation directly (tests use scripted rolls).
func WithDice(d Dice) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.dice = d
	}}
}

// WithVerboseLog enables per-query verbose logging.
func WithVerboseLog(v bool) SessionOption {
	return SessionOption{sessOptInfra, func(s *Session) {
		s.SimLog = NewSimLog(v)
	}}
}

// WithObstacle places one obstacle tile.
func WithObstacle(col, row int) SessionOption {
	return SessionOption{sessOptTerrain, func(s *Session) {
		s.Grid.SetBlocked(col, row, true)
	}}
}

// WithGeneratedMap fills the grid with a noise-generated obstacle layout.
// Unit spawn tiles are kept open because units are added after terrain.
func WithGeneratedMap(cfg MapGenConfig) SessionOption {
	return SessionOption{sessOptTerrain, func(s *Session) {
		GenerateObstacles(s.Grid, cfg)
	}}
}

// WithUnit adds a unit with a catalog weapon and a full action budget.
func WithUnit(label string, col, row, hp int, weaponKey string) SessionOption {
	return SessionOption{sessOptUnit, func(s *Session) {
		u := NewUnit(label, Coord{col, row}, hp, s.Catalog.Make(weaponKey))
		u.AP = s.Rules.ActionsPerTurn
		s.Grid.SetBlocked(col, row, false) // spawn tiles stay open
		s.Units = append(s.Units, u)
		if s.observer == nil {
			s.observer = u
		}
	}}
}

// NewSession builds a session. Options are applied in kind order so that
// infrastructure exists before terrain and terrain before units.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		Rules:    DefaultRules(),
		Fog:      NewVisibilitySet(),
		SimLog:   NewSimLog(false),
		Turn:     1,
		cols:     20,
		rows:     12,
		tileSize: 64,
	}
	for _, kind := range []sessionOptionKind{sessOptInfra, sessOptTerrain, sessOptUnit} {
		if kind == sessOptTerrain {
			// Infra is settled — materialize the grid and catalog.
			s.Grid = NewGrid(s.cols, s.rows, s.tileSize)
			s.Catalog = NewCatalog(s.Rules)
			if s.dice == nil {
				s.dice = NewDice(1)
			}
		}
		for _, opt := range opts {
			if opt.kind == kind {
				opt.fn(s)
			}
		}
	}
	s.RecomputeFog()
	return s
}

// RecomputeFog rebuilds the visibility set from the observer's position.
// Called after every observer move and every obstacle change.
func (s *Session) RecomputeFog() {
	if s.observer == nil {
		return
	}
	s.Fog.Recompute(s.Grid, s.observer.Pos, s.Rules.SightRadius)
	s.SimLog.AddVerbose(s.Turn, s.observer.Label, "fog", "recompute",
		fmt.Sprintf("visible=%d explored=%d", len(s.Fog.Visible), len(s.Fog.Explored)),
		float64(len(s.Fog.Visible)))
}

// MovePlan flood-fills the tiles u can reach with its remaining action
// points. Tiles occupied by living units are excluded. The plan is also
// retained for path reconstruction until the next mutation.
func (s *Session) MovePlan(u *Unit) *PathPlan {
	budget := u.AP * s.Rules.MoveRangePerAP
	s.plan = PlanPaths(s.Grid, u.Pos, budget, func(c Coord) bool {
		return s.occupied(c, u)
	})
	return s.plan
}

func (s *Session) occupied(c Coord, except *Unit) bool {
	for _, other := range s.Units {
		if other == except || other.Dead() {
			continue
		}
		if other.Pos == c {
			return true
		}
	}
	return false
}

// Move walks u to dest if dest is reachable within its action budget.
// Each spent action point buys MoveRangePerAP steps; partial ranges
// consume a whole point. Returns false and logs the reason otherwise.
func (s *Session) Move(u *Unit, dest Coord) bool {
	if u.Dead() || dest == u.Pos {
		return false
	}
	plan := s.MovePlan(u)
	cost, ok := plan.CostTo(dest)
	if !ok {
		s.SimLog.Add(s.Turn, u.Label, "move", "unreachable",
			fmt.Sprintf("(%d,%d)", dest.Col, dest.Row), 0)
		return false
	}
	apNeeded := (cost + s.Rules.MoveRangePerAP - 1) / s.Rules.MoveRangePerAP
	if apNeeded > u.AP {
		s.SimLog.Add(s.Turn, u.Label, "move", "no_ap",
			fmt.Sprintf("(%d,%d) cost=%d", dest.Col, dest.Row, cost), float64(cost))
		return false
	}

	u.Pos = dest
	u.AP -= apNeeded
	s.plan = nil
	s.SimLog.Add(s.Turn, u.Label, "move", "complete",
		fmt.Sprintf("→ (%d,%d) cost=%d ap_left=%d", dest.Col, dest.Row, cost, u.AP), float64(cost))
	if u == s.observer {
		s.RecomputeFog()
	}
	return true
}

// Preview returns the shot probability picture without consuming
// randomness or action points.
func (s *Session) Preview(shooter, target *Unit) ShotPreview {
	return PreviewShot(s.Grid, s.Rules, shooter.Pos, target.Pos, shooter.Weapon)
}

// Fire resolves one shot from shooter at target, spends the action cost
// and a round, and applies the damage. Returns false without firing when
// the shooter is dead, out of action points, or out of ammo.
func (s *Session) Fire(shooter, target *Unit) (ShotResult, bool) {
	if shooter.Dead() || target.Dead() {
		return ShotResult{}, false
	}
	if shooter.AP < s.Rules.FireCost {
		s.SimLog.Add(s.Turn, shooter.Label, "shot", "no_ap", target.Label, 0)
		return ShotResult{}, false
	}
	if !shooter.Weapon.CanFire() {
		s.SimLog.Add(s.Turn, shooter.Label, "shot", "dry_fire", target.Label, 0)
		return ShotResult{}, false
	}

	shooter.AP -= s.Rules.FireCost
	shooter.Weapon.ConsumeRound(1)

	res := ResolveShot(s.Grid, s.Rules, shooter.Pos, target.Pos, s.dice, shooter.Weapon)
	target.ApplyDamage(res.Damage)

	s.SimLog.Add(s.Turn, shooter.Label, "shot", "resolved",
		fmt.Sprintf("%s → %s roll=%d dmg=%d", res.Outcome, target.Label, res.Roll, res.Damage),
		float64(res.Damage))
	if target.Dead() {
		target.AP = 0
		s.plan = nil // occupancy changed
		s.SimLog.Add(s.Turn, shooter.Label, "shot", "kill", target.Label, 0)
	}
	return res, true
}

// Reload refills the shooter's magazine for one action point.
func (s *Session) Reload(u *Unit) bool {
	if u.Dead() || u.AP < s.Rules.FireCost {
		return false
	}
	u.AP -= s.Rules.FireCost
	u.Weapon.ReloadFull()
	s.SimLog.Add(s.Turn, u.Label, "shot", "reload",
		fmt.Sprintf("ammo=%d", u.Weapon.Ammo), float64(u.Weapon.Ammo))
	return true
}

// ToggleObstacle edits the battlefield and recomputes dependent state.
// Previously returned plans are invalidated.
func (s *Session) ToggleObstacle(col, row int) {
	s.Grid.ToggleObstacle(col, row)
	s.plan = nil
	s.SimLog.Add(s.Turn, "--", "obstacle", "toggle",
		fmt.Sprintf("(%d,%d) blocked=%v", col, row, s.Grid.IsBlocked(col, row)), 0)
	s.RecomputeFog()
}

// EndTurn restores every living unit's action budget and advances the
// turn counter. Dead units keep no budget.
func (s *Session) EndTurn() {
	s.Turn++
	for _, u := range s.Units {
		if u.Dead() {
			u.AP = 0
			continue
		}
		u.AP = s.Rules.ActionsPerTurn
	}
	s.SimLog.Add(s.Turn, "--", "turn", "begin", fmt.Sprintf("turn %d", s.Turn), float64(s.Turn))
}

// Alive returns the number of living units.
func (s *Session) Alive() int {
	n := 0
	for _, u := range s.Units {
		if !u.Dead() {
			n++
		}
	}
	return n
}
