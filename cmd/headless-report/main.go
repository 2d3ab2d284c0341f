package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Gridfire/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	obstacles int
	pathSteps int // -1 when the duellists cannot reach each other
	visible   int
	explored  int

	turns      int
	shots      int
	reloads    int
	firstBlood int // turn of first damage, -1 if none
	winner     string

	previewHit  int // attacker's opening hit chance
	previewCrit int
	outcomes    map[game.Outcome]int
}

func main() {
	var runs int
	var maxTurns int
	var seedBase int64
	var seedStep int64
	var cols, rows int
	var density float64
	var rulesPath string

	flag.IntVar(&runs, "runs", 5, "number of headless duel runs")
	flag.IntVar(&maxTurns, "max-turns", 40, "turn cap per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cols, "cols", 20, "battlefield width in tiles")
	flag.IntVar(&rows, "rows", 12, "battlefield height in tiles")
	flag.Float64Var(&density, "density", 0.66, "obstacle noise threshold (higher = fewer walls)")
	flag.StringVar(&rulesPath, "rules", "", "optional YAML rules override file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTurns <= 0 {
		fmt.Println("error: -max-turns must be > 0")
		return
	}

	rules := game.DefaultRules()
	if rulesPath != "" {
		var err error
		rules, err = game.LoadRules(rulesPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Duel Report ===\n")
	fmt.Printf("runs=%d max_turns=%d map=%dx%d density=%.2f seed_base=%d seed_step=%d\n\n",
		runs, maxTurns, cols, rows, density, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runDuel(i+1, seed, maxTurns, cols, rows, density, rules)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runDuel pits a rifle unit against a shotgun unit on a generated map.
// Both trade fire each turn until one falls or the turn cap is reached.
func runDuel(runIndex int, seed int64, maxTurns, cols, rows int, density float64, rules game.Rules) runStats {
	aPos := game.Coord{Col: 1, Row: rows / 2}
	bPos := game.Coord{Col: cols - 2, Row: rows / 2}

	gen := game.DefaultMapGen(seed)
	gen.Threshold = density
	gen.Keep = []game.Coord{aPos, bPos}

	s := game.NewSession(
		game.WithGridSize(cols, rows),
		game.WithRules(rules),
		game.WithSeed(seed),
		game.WithGeneratedMap(gen),
		game.WithUnit("P1", aPos.Col, aPos.Row, 12, "assault_rifle"),
		game.WithUnit("E1", bPos.Col, bPos.Row, 12, "shotgun"),
	)
	attacker, defender := s.Units[0], s.Units[1]

	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		obstacles:  s.Grid.BlockedCount(),
		pathSteps:  -1,
		visible:    len(s.Fog.Visible),
		explored:   len(s.Fog.Explored),
		firstBlood: -1,
		winner:     "none",
		outcomes:   map[game.Outcome]int{},
	}

	// Reachability between the duellists, unbounded by action points.
	plan := game.PlanPaths(s.Grid, attacker.Pos, cols*rows, func(c game.Coord) bool {
		return c == defender.Pos
	})
	// The defender's tile itself is excluded, so probe its neighbours.
	for _, n := range []game.Coord{
		{Col: bPos.Col - 1, Row: bPos.Row}, {Col: bPos.Col + 1, Row: bPos.Row},
		{Col: bPos.Col, Row: bPos.Row - 1}, {Col: bPos.Col, Row: bPos.Row + 1},
	} {
		if cost, ok := plan.CostTo(n); ok && (rs.pathSteps < 0 || cost+1 < rs.pathSteps) {
			rs.pathSteps = cost + 1
		}
	}

	pv := s.Preview(attacker, defender)
	rs.previewHit = pv.HitChance
	rs.previewCrit = pv.CritChance

	for turn := 1; turn <= maxTurns; turn++ {
		rs.turns = turn
		for _, pair := range [][2]*game.Unit{{attacker, defender}, {defender, attacker}} {
			shooter, target := pair[0], pair[1]
			for shooter.AP > 0 && !shooter.Dead() && !target.Dead() {
				if !shooter.Weapon.CanFire() {
					if !s.Reload(shooter) {
						break
					}
					rs.reloads++
					continue
				}
				res, ok := s.Fire(shooter, target)
				if !ok {
					break
				}
				rs.shots++
				rs.outcomes[res.Outcome]++
				if res.Damage > 0 && rs.firstBlood < 0 {
					rs.firstBlood = turn
				}
			}
		}
		if attacker.Dead() || defender.Dead() {
			break
		}
		s.EndTurn()
	}

	switch {
	case defender.Dead() && !attacker.Dead():
		rs.winner = attacker.Label
	case attacker.Dead() && !defender.Dead():
		rs.winner = defender.Label
	case attacker.Dead() && defender.Dead():
		rs.winner = "mutual"
	}
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("terrain: obstacles=%d path_steps=%s visible=%d explored=%d\n",
		rs.obstacles, stepsString(rs.pathSteps), rs.visible, rs.explored)
	fmt.Printf("opening_preview: hit=%d%% crit=%d%%\n", rs.previewHit, rs.previewCrit)
	fmt.Printf("duel: turns=%d shots=%d reloads=%d first_blood=%s winner=%s\n",
		rs.turns, rs.shots, rs.reloads, stepsString(rs.firstBlood), rs.winner)
	fmt.Printf("outcomes: %s\n\n", outcomeString(rs.outcomes, rs.shots))
}

func printAggregate(all []runStats) {
	totalShots := 0
	totalTurns := 0
	totalReloads := 0
	outcomes := map[game.Outcome]int{}
	wins := map[string]int{}
	for _, rs := range all {
		totalShots += rs.shots
		totalTurns += rs.turns
		totalReloads += rs.reloads
		for o, n := range rs.outcomes {
			outcomes[o] += n
		}
		wins[rs.winner]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d avg_turns=%.1f avg_shots=%.1f avg_reloads=%.1f\n",
		len(all),
		avg(totalTurns, len(all)), avg(totalShots, len(all)), avg(totalReloads, len(all)))
	fmt.Printf("outcomes: %s\n", outcomeString(outcomes, totalShots))

	var winParts []string
	for _, w := range []string{"P1", "E1", "mutual", "none"} {
		if n := wins[w]; n > 0 {
			winParts = append(winParts, fmt.Sprintf("%s=%d", w, n))
		}
	}
	fmt.Printf("winners: %s\n", strings.Join(winParts, " "))
}

func outcomeString(counts map[game.Outcome]int, shots int) string {
	if shots == 0 {
		return "no shots fired"
	}
	order := []game.Outcome{game.OutcomeCrit, game.OutcomeHit, game.OutcomeGraze, game.OutcomeMiss, game.OutcomeBlocked}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		n := counts[o]
		parts = append(parts, fmt.Sprintf("%s=%d (%.0f%%)", o, n, float64(n)/float64(shots)*100))
	}
	return strings.Join(parts, "  ")
}

func stepsString(v int) string {
	if v < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", v)
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
