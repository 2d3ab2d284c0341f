package game

// Unit is one combatant on the grid: a position, a health pool, a weapon
// and a per-turn action point budget.
type Unit struct {
	Label  string
	Pos    Coord
	MaxHP  int
	HP     int
	Weapon *Weapon
	AP     int
}

// NewUnit creates a unit at full health.
func NewUnit(label string, pos Coord, hp int, w *Weapon) *Unit {
	return &Unit{Label: label, Pos: pos, MaxHP: hp, HP: hp, Weapon: w}
}

// Dead returns true once health is exhausted.
func (u *Unit) Dead() bool {
	return u.HP <= 0
}

// ApplyDamage reduces health, clamping at zero. Negative damage is ignored.
func (u *Unit) ApplyDamage(dmg int) {
	if dmg < 0 {
		dmg = 0
	}
	u.HP -= dmg
	if u.HP < 0 {
		u.HP = 0
	}
}
