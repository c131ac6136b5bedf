package siege

import "github.com/vovakirdan/slime-siege/internal/geom"

// EntityView is a read-only copy of an entity for rendering and inspection.
type EntityView struct {
	ID           EntityID
	Kind         Kind
	Type         Type
	Player       bool
	HitBox       geom.Rect
	RenderBox    geom.Rect
	AwarenessBox geom.Rect
	Velocity     geom.Vector
	Facing       Facing
	AnimPhase    float64
	HitPoints    float64
	MaxHitPoints float64
	Wood         int
}

func (e *Entity) view() EntityView {
	v := EntityView{
		ID:           e.ID,
		Kind:         e.Kind,
		Type:         e.Type,
		Player:       e.Player,
		HitBox:       e.HitBox,
		RenderBox:    e.RenderBox,
		AwarenessBox: e.AwarenessBox(),
		Velocity:     e.Velocity,
		Facing:       e.Facing,
		AnimPhase:    e.AnimPhase,
		HitPoints:    e.HitPoints(),
		MaxHitPoints: e.MaxHitPoints(),
	}
	if e.Resource != nil {
		v.Wood = e.Resource.Wood
	}
	return v
}

// Lookup returns the entity with id. It fails once the entity has been
// reaped or the world restarted.
func (w *World) Lookup(id EntityID) (EntityView, bool) {
	e, ok := w.byID[id]
	if !ok {
		return EntityView{}, false
	}
	return e.view(), true
}

// Entities returns every live entity in id order.
func (w *World) Entities() []EntityView {
	out := make([]EntityView, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Alive {
			out = append(out, e.view())
		}
	}
	return out
}

// Director returns a copy of the wave director state.
func (w *World) Director() Director {
	return w.director
}

// HUD is the summary shown alongside the playfield.
type HUD struct {
	Wave      int
	Phase     Phase
	Countdown float64
	Strength  float64
	Remaining float64

	Money int
	Lives int
	Kills int

	CastleHP    float64
	CastleMaxHP float64

	SpeedLevel    int
	DamageLevel   int
	SpeedCost     int
	DamageCost    int
	WorkerCost    int
	SwordsmanCost int
	Units         int

	GameSpeed int
	Paused    bool
	Debug     bool
	GameOver  bool
	Elapsed   float64
	Monsters  int
	Entities  int
	Bounds    geom.Rect
}

// HUD returns the current summary.
func (w *World) HUD() HUD {
	h := HUD{
		Wave:          w.director.wave,
		Phase:         w.director.Phase(),
		Countdown:     w.director.timer,
		Strength:      w.director.strength,
		Remaining:     w.director.remaining,
		Money:         w.player.Money,
		Lives:         w.player.Lives,
		Kills:         w.player.Kills,
		SpeedLevel:    w.player.TowerSpeedLevel,
		DamageLevel:   w.player.TowerDamageLevel,
		SpeedCost:     w.SpeedUpgradeCost(),
		DamageCost:    w.DamageUpgradeCost(),
		WorkerCost:    w.cfg.Units.Worker.Cost,
		SwordsmanCost: w.cfg.Units.Swordsman.Cost,
		Units:         len(w.player.units),
		GameSpeed:     w.speed,
		Paused:        w.paused,
		Debug:         w.debug,
		GameOver:      w.over,
		Elapsed:       w.elapsed,
		Monsters:      w.monsters,
		Entities:      len(w.entities),
		Bounds:        w.Bounds(),
	}
	if c := w.castle(); c != nil {
		h.CastleHP = c.Tower.HitPoints
		h.CastleMaxHP = c.Tower.MaxHitPoints
	}
	return h
}
