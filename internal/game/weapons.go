package game

// WeaponSpec is an immutable weapon blueprint. Many Weapon instances may
// share one spec; only the Weapon's ammo count is mutable.
type WeaponSpec struct {
	Key  string
	Name string

	AimBonus   int
	BaseCrit   int
	RangeBands []RangeBand // nil falls back to the rules' default bands

	DmgMin              int
	DmgMax              int
	CritBonusDamage     int
	GrazeMultiplier     float64
	MagSize             int
	CritPointBlankBonus int
}

// Weapon is a spec reference plus a live ammo count.
type Weapon struct {
	Spec *WeaponSpec
	Ammo int
}

// CanFire returns true while at least one round remains.
func (w *Weapon) CanFire() bool {
	return w.Ammo > 0
}

// ConsumeRound removes n rounds, flooring at zero.
func (w *Weapon) ConsumeRound(n int) {
	w.Ammo -= n
	if w.Ammo < 0 {
		w.Ammo = 0
	}
}

// ReloadFull resets ammo to the magazine size. There is no partial reload.
func (w *Weapon) ReloadFull() {
	w.Ammo = w.Spec.MagSize
}

// Catalog is a fixed key → WeaponSpec index built from a rule set.
type Catalog struct {
	specs    map[string]*WeaponSpec
	fallback *WeaponSpec
}

// NewCatalog builds the weapon index with damage and crit defaults taken
// from the given rules.
func NewCatalog(rules Rules) *Catalog {
	rifle := &WeaponSpec{
		Key:                 "assault_rifle",
		Name:                "Assault Rifle",
		AimBonus:            0,
		BaseCrit:            rules.BaseCritPercent + 2,
		RangeBands:          nil, // rules default
		DmgMin:              rules.DamageMin,
		DmgMax:              rules.DamageMax,
		CritBonusDamage:     rules.CritBonusDamage,
		GrazeMultiplier:     rules.GrazeMultiplier,
		MagSize:             5,
		CritPointBlankBonus: rules.CritPointBlankBonus,
	}
	shotgun := &WeaponSpec{
		Key:      "shotgun",
		Name:     "Shotgun",
		AimBonus: -5,
		BaseCrit: rules.BaseCritPercent + 10,
		RangeBands: []RangeBand{
			{0, 2, 20},
			{2, 6, 5},
			{6, 9, -20},
			{9, 999, -45},
		},
		DmgMin:              rules.DamageMin + 1,
		DmgMax:              rules.DamageMax + 1,
		CritBonusDamage:     rules.CritBonusDamage + 1,
		GrazeMultiplier:     rules.GrazeMultiplier,
		MagSize:             4,
		CritPointBlankBonus: rules.CritPointBlankBonus + 10,
	}
	return &Catalog{
		specs: map[string]*WeaponSpec{
			rifle.Key:   rifle,
			shotgun.Key: shotgun,
		},
		fallback: rifle,
	}
}

// Make returns a fresh Weapon with a full magazine. Unknown keys fall
// back to the default spec rather than failing.
func (c *Catalog) Make(key string) *Weapon {
	spec, ok := c.specs[key]
	if !ok {
		spec = c.fallback
	}
	return &Weapon{Spec: spec, Ammo: spec.MagSize}
}

// Keys lists the known weapon keys.
func (c *Catalog) Keys() []string {
	out := make([]string, 0, len(c.specs))
	for k := range c.specs {
		out = append(out, k)
	}
	return out
}
