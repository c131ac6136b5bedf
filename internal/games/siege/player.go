package siege

import "github.com/vovakirdan/slime-siege/internal/config"

// Player is the economy and the roster of owned entities. Rosters hold ids
// only; entities that died are pruned when reaped.
type Player struct {
	Money            int
	Lives            int
	Kills            int
	TowerSpeedLevel  int
	TowerDamageLevel int

	units     []EntityID
	buildings []EntityID
}

func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Money:            cfg.Money,
		Lives:            cfg.Lives,
		TowerSpeedLevel:  1,
		TowerDamageLevel: 1,
	}
}

// Units returns the ids of live player units.
func (p Player) Units() []EntityID {
	return append([]EntityID(nil), p.units...)
}

// Buildings returns the ids of live player buildings.
func (p Player) Buildings() []EntityID {
	return append([]EntityID(nil), p.buildings...)
}

func (p *Player) prune(live map[EntityID]*Entity) {
	p.units = pruneIDs(p.units, live)
	p.buildings = pruneIDs(p.buildings, live)
}

func pruneIDs(ids []EntityID, live map[EntityID]*Entity) []EntityID {
	kept := ids[:0]
	for _, id := range ids {
		if e, ok := live[id]; ok && e.Alive {
			kept = append(kept, id)
		}
	}
	return kept
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	p := w.player
	p.units = p.Units()
	p.buildings = p.Buildings()
	return p
}

// castle returns the first standing player building, or nil.
func (w *World) castle() *Entity {
	for _, id := range w.player.buildings {
		if e := w.byID[id]; e != nil && e.Alive && e.Tower != nil && e.Tower.HitPoints > 0 {
			return e
		}
	}
	return nil
}

// BuyWorker spends currency on a worker spawned at the castle.
func (w *World) BuyWorker() bool {
	return w.buyUnit(TypeWorker)
}

// BuySwordsman spends currency on a swordsman spawned at the castle.
func (w *World) BuySwordsman() bool {
	return w.buyUnit(TypeSwordsman)
}

func (w *World) buyUnit(typ Type) bool {
	stats, ok := w.unitStats(typ)
	castle := w.castle()
	if !ok || castle == nil || w.over || w.player.Money < stats.Cost {
		return false
	}
	w.player.Money -= stats.Cost
	e := w.newUnit(typ, castle.HitBox.Center, stats)
	w.emit(Event{Kind: EventPurchase, Entity: e.ID, Type: typ, Player: true, Amount: float64(stats.Cost)})
	return true
}

// SpeedUpgradeCost is the price of the next tower speed level.
func (w *World) SpeedUpgradeCost() int {
	return w.cfg.Costs.TowerSpeed * w.player.TowerSpeedLevel
}

// DamageUpgradeCost is the price of the next tower damage level.
func (w *World) DamageUpgradeCost() int {
	return w.cfg.Costs.TowerDamage * w.player.TowerDamageLevel
}

// UpgradeTowerSpeed shortens the tower cooldown and repairs the castle.
func (w *World) UpgradeTowerSpeed() bool {
	return w.upgrade(&w.player.TowerSpeedLevel, w.SpeedUpgradeCost(), "tower_speed")
}

// UpgradeTowerDamage raises missile damage and repairs the castle.
func (w *World) UpgradeTowerDamage() bool {
	return w.upgrade(&w.player.TowerDamageLevel, w.DamageUpgradeCost(), "tower_damage")
}

func (w *World) upgrade(level *int, cost int, name string) bool {
	if w.over || w.player.Money < cost || w.castle() == nil {
		return false
	}
	w.player.Money -= cost
	*level++
	for _, id := range w.player.buildings {
		e := w.byID[id]
		if e == nil || !e.Alive || e.Tower == nil {
			continue
		}
		w.applyTowerLevels(e.Tower)
		e.Tower.HitPoints = clampHeal(e.Tower.HitPoints, w.cfg.Castle.UpgradeHeal, e.Tower.MaxHitPoints)
	}
	w.logger.Debug("tower upgraded", "upgrade", name, "level", *level, "cost", cost)
	w.emit(Event{Kind: EventUpgrade, Type: TypeCastle, Player: true, Amount: float64(cost)})
	return true
}
