package siege

import (
	"math"

	"github.com/vovakirdan/slime-siege/internal/geom"
	"github.com/vovakirdan/slime-siege/internal/physics"
)

// EntityID identifies an entity for the lifetime of a World. Ids are never
// reused, including across Restart.
type EntityID uint64

// Facing is one of four diagonal sprite orientations.
type Facing uint8

const (
	FacingSE Facing = iota
	FacingSW
	FacingNE
	FacingNW
)

// String returns the compass name.
func (f Facing) String() string {
	switch f {
	case FacingSW:
		return "SW"
	case FacingNE:
		return "NE"
	case FacingNW:
		return "NW"
	default:
		return "SE"
	}
}

var facingDirs = [...]struct {
	facing Facing
	dir    geom.Vector
}{
	{FacingSE, geom.V(1, 1)},
	{FacingSW, geom.V(-1, 1)},
	{FacingNE, geom.V(1, -1)},
	{FacingNW, geom.V(-1, -1)},
}

// facingFor picks the diagonal with the largest positive dot product with v.
// Zero or ambiguous headings keep SE.
func facingFor(v geom.Vector) Facing {
	best, bestDot := FacingSE, 0.0
	for _, d := range facingDirs {
		if dot := v.Dot(d.dir); dot > bestDot {
			best, bestDot = d.facing, dot
		}
	}
	return best
}

// Combat is the state of a unit or monster.
type Combat struct {
	HitPoints    float64
	MaxHitPoints float64
	Damage       float64
	AttackDelay  float64
	AttackArea   float64
	Awareness    float64
	Speed        float64
	Charge       float64

	// Strength is subtracted from the wave total when a monster dies.
	Strength float64
	// Harvest is the wood taken per gather; 0 for units that cannot gather.
	Harvest int

	BroodInterval float64
	BroodTimer    float64
}

// Tower is the state of a building that fires missiles.
type Tower struct {
	HitPoints    float64
	MaxHitPoints float64
	Range        float64
	Cooldown     float64
	Damage       float64
	Charge       float64
}

// Resource is harvestable scenery.
type Resource struct {
	Wood int
}

// Effect is a transient damage carrier. Each target is affected at most once.
type Effect struct {
	TTL      float64
	Damage   float64
	DieOnHit bool

	affected map[EntityID]struct{}
	touching []EntityID
}

// Entity is one simulated object. Exactly one of Combat, Tower, Resource or
// Effect is set, matching Kind.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Type   Type
	Player bool
	Alive  bool

	// HitBox is the collision rect, synced from the engine each tick.
	HitBox geom.Rect
	// RenderBox is the visual rect; buildings and trees are taller than
	// their footprint and share its bottom edge.
	RenderBox geom.Rect
	Velocity  geom.Vector
	Facing    Facing
	AnimPhase float64

	Combat   *Combat
	Tower    *Tower
	Resource *Resource
	Effect   *Effect

	proxy  physics.ProxyID
	visual geom.Vector
}

// HitPoints returns current hit points, or 0 for entities that have none.
func (e *Entity) HitPoints() float64 {
	switch {
	case e.Combat != nil:
		return e.Combat.HitPoints
	case e.Tower != nil:
		return e.Tower.HitPoints
	}
	return 0
}

// MaxHitPoints returns maximum hit points, or 0 for entities that have none.
func (e *Entity) MaxHitPoints() float64 {
	switch {
	case e.Combat != nil:
		return e.Combat.MaxHitPoints
	case e.Tower != nil:
		return e.Tower.MaxHitPoints
	}
	return 0
}

// damageable reports whether effects can reduce this entity's hit points.
func (e *Entity) damageable() bool {
	return e.Combat != nil || e.Tower != nil
}

func (e *Entity) takeDamage(amount float64) {
	switch {
	case e.Combat != nil:
		e.Combat.HitPoints -= amount
	case e.Tower != nil:
		e.Tower.HitPoints -= amount
	}
}

// AwarenessBox is the square scanned for targets, centered on the hit box.
func (e *Entity) AwarenessBox() geom.Rect {
	if e.Combat == nil {
		return e.HitBox
	}
	return geom.FromCenterAndSize(e.HitBox.Center, geom.V(e.Combat.Awareness, e.Combat.Awareness))
}

// syncRenderBox derives the visual rect from the hit box.
func (e *Entity) syncRenderBox() {
	if e.visual.IsZero() {
		e.RenderBox = e.HitBox
		return
	}
	r := geom.FromCenterAndSize(e.HitBox.Center, e.visual)
	r.MoveBottom(e.HitBox.Bottom())
	e.RenderBox = r
}

func (e *Entity) isMonster() bool {
	return e.Kind == KindMonster
}

// newCombatant builds a unit or monster at center.
func newCombatant(kind Kind, typ Type, center geom.Vector, stats combatStats) *Entity {
	c := &Combat{
		HitPoints:     stats.HitPoints,
		MaxHitPoints:  stats.HitPoints,
		Damage:        stats.Damage,
		AttackDelay:   stats.AttackDelay,
		AttackArea:    stats.AttackArea,
		Awareness:     stats.Awareness,
		Speed:         stats.Speed,
		Strength:      stats.strength,
		Harvest:       stats.harvest,
		BroodInterval: stats.broodInterval,
	}
	e := &Entity{
		Kind:   kind,
		Type:   typ,
		Player: kind == KindPlayerUnit,
		Alive:  true,
		HitBox: geom.FromCenterAndSize(center, geom.V(stats.Size, stats.Size)),
		Combat: c,
	}
	e.RenderBox = e.HitBox
	return e
}

func newEffect(typ Type, center geom.Vector, size, ttl, damage float64, player, dieOnHit bool) *Entity {
	e := &Entity{
		Kind:   KindEffect,
		Type:   typ,
		Player: player,
		Alive:  true,
		HitBox: geom.FromCenterAndSize(center, geom.V(size, size)),
		Effect: &Effect{
			TTL:      ttl,
			Damage:   damage,
			DieOnHit: dieOnHit,
			affected: make(map[EntityID]struct{}),
		},
	}
	e.RenderBox = e.HitBox
	return e
}

// towerCooldown and towerDamage derive castle stats from upgrade levels.
func towerCooldown(base, scale float64, level int) float64 {
	return base * scale / (scale + float64(level))
}

func towerDamage(base float64, level int) float64 {
	return base + float64(level)
}

func clampHeal(hp, heal, maxHP float64) float64 {
	return math.Min(maxHP, hp+heal)
}
