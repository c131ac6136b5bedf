package sim

import "github.com/vovakirdan/slime-siege/internal/games/siege"

// Policy tunes the autopilot.
type Policy struct {
	Workers    int // workers to keep alive before anything else
	Swordsmen  int // swordsmen to keep alive
	UpgradeGap int // upgrades are bought only while money >= cost + gap
}

// DefaultPolicy keeps a small economy and a few guards.
func DefaultPolicy() Policy {
	return Policy{Workers: 3, Swordsmen: 4, UpgradeGap: 50}
}

// Autopilot spends currency the way a cautious player would: workers
// first, then guards, then tower upgrades, cheapest first.
type Autopilot struct {
	policy    Policy
	Purchases int
	Upgrades  int
}

// NewAutopilot creates an autopilot with policy p.
func NewAutopilot(p Policy) *Autopilot {
	return &Autopilot{policy: p}
}

// Act makes at most one purchase per call.
func (a *Autopilot) Act(w *siege.World) {
	if w.GameOver() {
		return
	}
	hud := w.HUD()

	workers, swordsmen := 0, 0
	for _, e := range w.Entities() {
		switch e.Type {
		case siege.TypeWorker:
			workers++
		case siege.TypeSwordsman:
			swordsmen++
		}
	}

	switch {
	case workers < a.policy.Workers && hud.Money >= hud.WorkerCost:
		if w.BuyWorker() {
			a.Purchases++
		}
	case swordsmen < a.policy.Swordsmen && hud.Money >= hud.SwordsmanCost:
		if w.BuySwordsman() {
			a.Purchases++
		}
	case hud.SpeedCost <= hud.DamageCost && hud.Money >= hud.SpeedCost+a.policy.UpgradeGap:
		if w.UpgradeTowerSpeed() {
			a.Upgrades++
		}
	case hud.Money >= hud.DamageCost+a.policy.UpgradeGap:
		if w.UpgradeTowerDamage() {
			a.Upgrades++
		}
	}
}
