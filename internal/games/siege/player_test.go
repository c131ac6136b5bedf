package siege

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyUnits(t *testing.T) {
	w, rec := newTestWorld(t, quietConfig())

	require.True(t, w.BuyWorker())
	require.True(t, w.BuySwordsman())

	p := w.Player()
	assert.Equal(t, 500-50-100, p.Money)
	require.Len(t, p.Units(), 2)
	assert.Equal(t, 2, rec.count(EventPurchase))

	worker, ok := w.Lookup(p.Units()[0])
	require.True(t, ok)
	assert.Equal(t, TypeWorker, worker.Type)
	assert.True(t, worker.Player)
	assert.True(t, w.castle().HitBox.Intersects(worker.HitBox), "units appear at the castle")
	assert.InDelta(t, w.cfg.Units.Worker.Speed, worker.Velocity.Length(), 1e-9)
}

func TestBuyRejectedWhenUnaffordable(t *testing.T) {
	w, rec := newTestWorld(t, quietConfig())
	w.player.Money = 99

	assert.False(t, w.BuySwordsman())
	assert.Equal(t, 99, w.Player().Money)
	assert.Empty(t, w.Player().Units())

	assert.True(t, w.BuyWorker())
	assert.Equal(t, 49, w.Player().Money)
	assert.False(t, w.BuyWorker())
	assert.Equal(t, 1, rec.count(EventPurchase))
}

func TestUpgradeTowerSpeed(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	castle := w.castle()
	castle.Tower.HitPoints = 90
	assert.InDelta(t, 2.0*5/6, castle.Tower.Cooldown, 1e-9)

	require.True(t, w.UpgradeTowerSpeed())
	assert.Equal(t, 450, w.Player().Money)
	assert.Equal(t, 2, w.Player().TowerSpeedLevel)
	assert.InDelta(t, 2.0*5/7, castle.Tower.Cooldown, 1e-9)
	assert.InDelta(t, 95, castle.Tower.HitPoints, 1e-9)
	assert.Equal(t, 100, w.SpeedUpgradeCost())

	castle.Tower.HitPoints = 99
	require.True(t, w.UpgradeTowerSpeed())
	assert.Equal(t, 350, w.Player().Money)
	assert.InDelta(t, 100, castle.Tower.HitPoints, 1e-9, "healing is capped")
}

func TestUpgradeTowerDamage(t *testing.T) {
	w, rec := newTestWorld(t, quietConfig())
	castle := w.castle()
	assert.InDelta(t, 5, castle.Tower.Damage, 1e-9)

	require.True(t, w.UpgradeTowerDamage())
	assert.Equal(t, 425, w.Player().Money)
	assert.InDelta(t, 6, castle.Tower.Damage, 1e-9)
	assert.Equal(t, 150, w.DamageUpgradeCost())
	assert.Equal(t, 1, rec.count(EventUpgrade))

	w.player.Money = 149
	assert.False(t, w.UpgradeTowerDamage())
	assert.Equal(t, 149, w.Player().Money)
	assert.Equal(t, 2, w.Player().TowerDamageLevel)
}

func TestRosterDropsDeadUnits(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	require.True(t, w.BuyWorker())
	id := w.Player().Units()[0]

	mustEntity(t, w, id).Combat.HitPoints = 0
	w.Step(0.05)

	assert.Empty(t, w.Player().Units())
	_, ok := w.Lookup(id)
	assert.False(t, ok)
	assert.Equal(t, 450, w.Player().Money, "player unit deaths pay nothing")
}
