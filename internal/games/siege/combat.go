package siege

import (
	"math"

	"github.com/vovakirdan/slime-siege/internal/geom"
)

// pickRect returns live entities whose hit boxes touch r, excluding self,
// in id order. The result reuses dst.
func (w *World) pickRect(dst []*Entity, r geom.Rect, self *Entity) []*Entity {
	dst = dst[:0]
	for _, p := range w.engine.PickWithinRect(r) {
		e := w.byProxy[p.ID]
		if e == nil || e == self || !e.Alive {
			continue
		}
		dst = append(dst, e)
	}
	return dst
}

// updateCombatant runs the shared unit and monster behavior: death check,
// awareness scan, melee charge, brood, bounce and harvest. Attack targets
// come from the whole awareness square; bounce and harvest only apply to
// bodies actually touching e.
func (w *World) updateCombatant(e *Entity, dt float64) {
	c := e.Combat
	if c.HitPoints <= 0 {
		w.kill(e)
		return
	}

	w.aware = w.pickRect(w.aware, e.AwarenessBox(), e)
	w.colliding = w.colliding[:0]
	w.targets = w.targets[:0]
	for _, o := range w.aware {
		if canAttack(e, o) {
			w.targets = append(w.targets, o)
		}
		if o.HitBox.Intersects(e.HitBox) {
			w.colliding = append(w.colliding, o)
		}
	}

	if len(w.targets) > 0 {
		c.Charge += dt
	} else {
		c.Charge = math.Max(c.Charge-dt, 0)
	}
	for c.Charge >= c.AttackDelay && len(w.targets) > 0 {
		target := w.targets[w.rng.Intn(len(w.targets))]
		c.Charge -= math.Max(minAttackSpend, c.AttackDelay)
		w.spawnHit(e, target)
	}

	if c.BroodInterval > 0 {
		c.BroodTimer += dt
		for c.BroodTimer >= c.BroodInterval {
			c.BroodTimer -= c.BroodInterval
			w.spawnBrood(e)
		}
	}

	for _, o := range w.colliding {
		if bouncesOff(o) {
			bounce(e, o)
		}
		w.harvest(e, o)
	}

	w.engine.SetVelocity(e.proxy, e.Velocity)
}

// bounce reverses e's heading on the narrow axis of its overlap with o,
// pointing away from the overlap.
func bounce(e, o *Entity) {
	box, ok := e.HitBox.Overlap(o.HitBox)
	if !ok {
		return
	}
	mid := geom.FromBoundingBox(box).Center
	if box.Width() < box.Height() {
		e.Velocity.X = math.Abs(e.Velocity.X) * awaySign(e.HitBox.Center.X, mid.X)
	} else {
		e.Velocity.Y = math.Abs(e.Velocity.Y) * awaySign(e.HitBox.Center.Y, mid.Y)
	}
}

func awaySign(self, overlap float64) float64 {
	if self < overlap {
		return -1
	}
	return 1
}

// harvest gathers wood from o when e can harvest and is off cooldown.
func (w *World) harvest(e, o *Entity) {
	c := e.Combat
	if o.Resource == nil || o.Resource.Wood <= 0 || c.Harvest <= 0 || c.Charge > 0 {
		return
	}
	take := min(c.Harvest, o.Resource.Wood)
	o.Resource.Wood -= take
	w.player.Money += take
	c.Charge = c.AttackDelay
	w.emit(Event{Kind: EventHarvest, Entity: o.ID, Type: o.Type, Amount: float64(take)})
}

// updateTower charges the building's launcher and fires at the nearest
// monster in range once ready.
func (w *World) updateTower(e *Entity, dt float64) {
	t := e.Tower
	if t.HitPoints <= 0 {
		w.kill(e)
		return
	}
	t.Charge = math.Min(t.Charge+dt, t.Cooldown)
	if t.Charge < t.Cooldown {
		return
	}
	target := w.nearestTarget(e, t.Range)
	if target == nil {
		return
	}
	t.Charge -= t.Cooldown
	w.spawnMissile(e, target)
}

// nearestTarget returns the attackable entity within radius whose center is
// closest to e's center. Ties go to the lower id.
func (w *World) nearestTarget(e *Entity, radius float64) *Entity {
	var (
		best   *Entity
		bestSq = math.Inf(1)
	)
	for _, p := range w.engine.PickWithinCircle(e.HitBox.Center, radius) {
		o := w.byProxy[p.ID]
		if o == nil || !canAttack(e, o) {
			continue
		}
		if d := o.HitBox.Center.Sub(e.HitBox.Center).LengthSq(); d < bestSq {
			best, bestSq = o, d
		}
	}
	return best
}

// updateEffect applies damage to every opposing entity the effect touched
// this tick, at most once per target, then ages it.
func (w *World) updateEffect(e *Entity, dt float64) {
	fx := e.Effect
	for _, id := range fx.touching {
		if !e.Alive {
			break
		}
		o := w.byID[id]
		if o == nil || !o.Alive || o.Player == e.Player || !o.damageable() {
			continue
		}
		if _, done := fx.affected[id]; done {
			continue
		}
		fx.affected[id] = struct{}{}
		o.takeDamage(fx.Damage)
		w.emit(Event{Kind: EventAttack, Entity: o.ID, Type: o.Type, Player: o.Player, Amount: fx.Damage})
		if fx.DieOnHit {
			e.Alive = false
		}
	}
	fx.touching = fx.touching[:0]

	fx.TTL -= dt
	if fx.TTL <= 0 {
		e.Alive = false
	}
}
