package siege

import (
	"fmt"
	"math"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/geom"
)

// combatStats is the merged stat block used to build combatants.
type combatStats struct {
	config.CombatStats
	strength      float64
	harvest       int
	broodInterval float64
}

func (w *World) monsterStats(typ Type) (combatStats, bool) {
	var m config.MonsterStats
	switch typ {
	case TypeSlime:
		m = w.cfg.Monsters.Slime
	case TypeFireSlime:
		m = w.cfg.Monsters.FireSlime
	case TypeSlimeMother:
		m = w.cfg.Monsters.SlimeMother
	default:
		return combatStats{}, false
	}
	return combatStats{CombatStats: m.CombatStats, strength: m.Strength, broodInterval: m.BroodInterval}, true
}

func (w *World) unitStats(typ Type) (config.UnitStats, bool) {
	switch typ {
	case TypeWorker:
		return w.cfg.Units.Worker, true
	case TypeSwordsman:
		return w.cfg.Units.Swordsman, true
	}
	return config.UnitStats{}, false
}

// SpawnMonster places a monster of typ centered at pos. It fails for
// non-monster types and when the monster cap is reached.
func (w *World) SpawnMonster(typ Type, pos geom.Vector) (EntityID, error) {
	e, err := w.spawnMonster(typ, pos)
	if err != nil {
		return 0, err
	}
	return e.ID, nil
}

// SpawnUnit places a player unit of typ centered at pos without charging
// for it. It fails for non-unit types.
func (w *World) SpawnUnit(typ Type, pos geom.Vector) (EntityID, error) {
	stats, ok := w.unitStats(typ)
	if !ok {
		return 0, fmt.Errorf("siege: %q is not a unit type", typ)
	}
	e := w.newUnit(typ, pos, stats)
	return e.ID, nil
}

func (w *World) spawnMonster(typ Type, pos geom.Vector) (*Entity, error) {
	stats, ok := w.monsterStats(typ)
	if !ok {
		return nil, fmt.Errorf("siege: %q is not a monster type", typ)
	}
	if limit := w.cfg.Director.MonsterCap; limit > 0 && w.monsters >= limit {
		if !w.capWarned {
			w.logger.Warn("too many entities, refusing monster spawn", "monsters", w.monsters, "cap", limit)
			w.capWarned = true
		}
		w.emit(Event{Kind: EventSpawnRefused, Type: typ})
		return nil, fmt.Errorf("siege: monster cap %d reached", limit)
	}
	w.capWarned = false

	e := newCombatant(KindMonster, typ, pos, stats)
	if typ == TypeSlimeMother {
		e.Velocity = geom.FromAngle(w.rng.Float64()*math.Pi, stats.Speed)
	} else {
		e.Velocity = w.Bounds().Center.Sub(pos).WithLength(stats.Speed)
	}
	return w.add(e), nil
}

// spawnStrength converts a strength budget into monsters: a random number of
// mothers and fire slimes, with the remainder filled by plain slimes.
func (w *World) spawnStrength(strength float64) {
	mothers := int(math.Floor(w.rng.Float64() * strength / w.cfg.Monsters.SlimeMother.Strength))
	fires := int(math.Floor(w.rng.Float64() * strength / w.cfg.Monsters.FireSlime.Strength))
	rest := strength - float64(mothers)*w.cfg.Monsters.SlimeMother.Strength -
		float64(fires)*w.cfg.Monsters.FireSlime.Strength
	slimes := int(math.Max(0, math.Floor(rest/w.cfg.Monsters.Slime.Strength)))

	batch := []struct {
		typ   Type
		count int
	}{
		{TypeSlime, slimes},
		{TypeFireSlime, fires},
		{TypeSlimeMother, mothers},
	}
	for _, b := range batch {
		stats, _ := w.monsterStats(b.typ)
		for i := 0; i < b.count; i++ {
			if _, err := w.spawnMonster(b.typ, w.randomEdgePosition(stats.Size)); err != nil {
				return
			}
		}
	}
}

// spawnBrood releases a plain slime from a mother. Brood carries no wave
// strength.
func (w *World) spawnBrood(mother *Entity) {
	e, err := w.spawnMonster(TypeSlime, mother.HitBox.Center)
	if err != nil {
		return
	}
	e.Combat.Strength = 0
}

// randomEdgePosition returns a center on a random edge of the world, inset so
// a body of the given size fits.
func (w *World) randomEdgePosition(size float64) geom.Vector {
	b := w.Bounds()
	halfW := math.Max(0, b.Width()/2-size)
	halfH := math.Max(0, b.Height()/2-size)
	x := (w.rng.Float64()*2 - 1) * halfW
	y := (w.rng.Float64()*2 - 1) * halfH
	switch w.rng.Intn(4) {
	case 0:
		y = -halfH
	case 1:
		y = halfH
	case 2:
		x = -halfW
	default:
		x = halfW
	}
	return b.Center.Add(geom.V(x, y))
}

func (w *World) newUnit(typ Type, pos geom.Vector, stats config.UnitStats) *Entity {
	e := newCombatant(KindPlayerUnit, typ, pos, combatStats{CombatStats: stats.CombatStats, harvest: stats.Harvest})
	e.Velocity = geom.FromAngle(w.rng.Float64()*2*math.Pi, stats.Speed)
	w.add(e)
	w.player.units = append(w.player.units, e.ID)
	return e
}

func (w *World) spawnCastle() *Entity {
	cc := w.cfg.Castle
	e := &Entity{
		Kind:   KindBuilding,
		Type:   TypeCastle,
		Player: true,
		Alive:  true,
		HitBox: geom.FromCenterAndSize(geom.V(cc.Position.X, cc.Position.Y), geom.V(cc.Width, cc.Height)),
		Tower: &Tower{
			HitPoints:    cc.HitPoints,
			MaxHitPoints: cc.HitPoints,
			Range:        cc.AttackRange,
		},
		visual: geom.V(cc.Width, cc.VisualHeight),
	}
	w.applyTowerLevels(e.Tower)
	w.add(e)
	w.player.buildings = append(w.player.buildings, e.ID)
	return e
}

func (w *World) applyTowerLevels(t *Tower) {
	cc := w.cfg.Castle
	t.Cooldown = towerCooldown(cc.BaseCooldown, cc.CooldownScale, w.player.TowerSpeedLevel)
	t.Damage = towerDamage(cc.BaseDamage, w.player.TowerDamageLevel)
}

// spawnTrees scatters trees over a grid in each area. A cell is planted with
// probability density scaled by the perlin mask at its center.
func (w *World) spawnTrees(areas []geom.Rect, density float64) int {
	tc := w.cfg.Trees
	planted := 0
	for _, area := range areas {
		cols := int(area.Width() / tc.Grid)
		rows := int(area.Height() / tc.Grid)
		for x := 0; x < cols; x++ {
			for y := 0; y < rows; y++ {
				center := geom.V(area.Left()+(float64(x)+0.5)*tc.Grid, area.Top()+(float64(y)+0.5)*tc.Grid)
				if w.rng.Float64() < w.treeChance(center, density) {
					w.addTree(center)
					planted++
				}
			}
		}
	}
	return planted
}

func (w *World) treeChance(p geom.Vector, density float64) float64 {
	tc := w.cfg.Trees
	n := (w.noise.Noise2D(p.X*tc.NoiseScale, p.Y*tc.NoiseScale) + 1) / 2
	factor := (1 - tc.NoiseWeight) + tc.NoiseWeight*2*n
	return math.Max(0, math.Min(1, density*factor))
}

func (w *World) addTree(center geom.Vector) *Entity {
	tc := w.cfg.Trees
	return w.add(&Entity{
		Kind:     KindResource,
		Type:     TypeTree,
		Alive:    true,
		HitBox:   geom.FromCenterAndSize(center, geom.V(tc.Size, tc.Size)),
		Resource: &Resource{Wood: tc.Wood},
		visual:   geom.V(tc.VisualWidth, tc.VisualHeight),
	})
}

// spawnHit drops a short-lived damage area on target.
func (w *World) spawnHit(attacker, target *Entity) {
	fx := w.cfg.Effects
	size := fx.HitSize
	if a := attacker.Combat.AttackArea; a > 0 {
		size = a
	}
	w.add(newEffect(TypeHit, target.HitBox.Center, size, fx.HitTTL, attacker.Combat.Damage, attacker.Player, false))
}

// spawnMissile launches a projectile from the tower toward target.
func (w *World) spawnMissile(tower, target *Entity) {
	fx := w.cfg.Effects
	from := tower.HitBox.Center
	m := newEffect(TypeMissile, from, fx.MissileSize, fx.MissileTTL, tower.Tower.Damage, tower.Player, true)
	m.Velocity = target.HitBox.Center.Sub(from).WithLength(fx.MissileSpeed)
	w.add(m)
}
