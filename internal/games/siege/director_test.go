package siege

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/config"
)

func TestWaveStrength(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Director

	assert.Equal(t, 9.0, WaveStrength(cfg, 1))
	assert.Equal(t, 15.0, WaveStrength(cfg, 2))
	assert.Equal(t, 21.0, WaveStrength(cfg, 3))

	prev := WaveStrength(cfg, 1)
	for n := 2; n <= 50; n++ {
		s := WaveStrength(cfg, n)
		assert.Greater(t, s, prev, "wave %d", n)
		prev = s
	}
}

func TestDirectorSnapshotReadsState(t *testing.T) {
	cfg := config.DefaultSiegeConfig()
	w := NewWorld(Options{Config: cfg, Seed: 1})

	d := w.Director()
	assert.Equal(t, PhaseIdle, d.Phase())
	assert.Equal(t, 0, d.Wave())
	assert.Equal(t, cfg.Director.FirstWaveDelay, d.Timer())
	assert.Zero(t, d.Strength())
	assert.Zero(t, d.Remaining())
}

// killMonsters zeroes the hit points of up to n live monsters.
func killMonsters(w *World, n int) {
	for _, e := range w.entities {
		if n == 0 {
			return
		}
		if e.Alive && e.isMonster() && e.Combat.HitPoints > 0 {
			e.Combat.HitPoints = 0
			n--
		}
	}
}

func TestWaveClearedByKills(t *testing.T) {
	cfg := quietConfig()
	cfg.Director.FirstWaveDelay = 1
	w, rec := newTestWorld(t, cfg)

	steps(w, 11, 0.1)
	d := w.Director()
	require.Equal(t, PhaseInWave, d.Phase())
	assert.Equal(t, 1, d.Wave())
	assert.Equal(t, 9.0, d.Strength())
	// Nine strength points are below every elite threshold.
	assert.Equal(t, 9, w.Monsters())
	assert.Len(t, entitiesOfType(w, TypeSlime), 9)

	prev := d.Remaining()
	for w.Monsters() > 0 {
		killMonsters(w, 2)
		w.Step(0.1)
		d = w.Director()
		assert.LessOrEqual(t, d.Remaining(), prev, "remaining strength never grows during a wave")
		prev = d.Remaining()
	}

	// The wave ends on the tick after the last kill.
	w.Step(0.1)
	d = w.Director()
	assert.Equal(t, PhaseIdle, d.Phase())
	assert.LessOrEqual(t, d.Remaining(), 0.0)
	assert.Equal(t, cfg.Director.CooldownCap, d.Timer())
	assert.Equal(t, 509, w.Player().Money)

	end, ok := rec.last(EventWaveEnd)
	require.True(t, ok)
	assert.True(t, end.Cleared)
	assert.Equal(t, 9, end.WaveKills)
	assert.Equal(t, 1, rec.count(EventWaveStart))
}

func TestWaveTimesOut(t *testing.T) {
	cfg := quietConfig()
	cfg.Director.FirstWaveDelay = 0.05
	cfg.Director.WaveDuration = 1
	w, rec := newTestWorld(t, cfg)

	w.Step(0.1)
	require.Equal(t, PhaseInWave, w.Director().Phase())

	steps(w, 11, 0.1)
	d := w.Director()
	assert.Equal(t, PhaseIdle, d.Phase())
	assert.InDelta(t, cfg.Director.CooldownBonus, d.Timer(), 0.11)
	assert.Greater(t, d.Remaining(), 0.0)

	end, ok := rec.last(EventWaveEnd)
	require.True(t, ok)
	assert.False(t, end.Cleared)
}

func TestTrickleSpawnsOnFirstTick(t *testing.T) {
	cfg := quietConfig()
	cfg.Director.TricklePeriod = 5
	w, _ := newTestWorld(t, cfg)

	w.Step(0.1)
	// Trickle strength is wave+1; one strength point is one slime.
	assert.Equal(t, 1, w.Monsters())

	steps(w, 40, 0.1)
	assert.Equal(t, 1, w.Monsters(), "next trickle is a full period away")

	steps(w, 15, 0.1)
	assert.Equal(t, 2, w.Monsters())
}

func TestSpawnedMonstersStartOnEdgeHeadingInward(t *testing.T) {
	cfg := quietConfig()
	w, _ := newTestWorld(t, cfg)
	bounds := w.Bounds()

	for i := 0; i < 50; i++ {
		pos := w.randomEdgePosition(cfg.Monsters.Slime.Size)
		onEdge := pos.X == bounds.Left()+cfg.Monsters.Slime.Size ||
			pos.X == bounds.Right()-cfg.Monsters.Slime.Size ||
			pos.Y == bounds.Top()+cfg.Monsters.Slime.Size ||
			pos.Y == bounds.Bottom()-cfg.Monsters.Slime.Size
		assert.True(t, onEdge, "position %v should sit on an edge", pos)
	}

	id := spawnMonster(t, w, TypeSlime, 300, 0)
	e := mustEntity(t, w, id)
	assert.InDelta(t, -cfg.Monsters.Slime.Speed, e.Velocity.X, 1e-9)
	assert.InDelta(t, 0, e.Velocity.Y, 1e-9)
}

func TestWorldGrowsEveryThirdWave(t *testing.T) {
	cfg := quietConfig()
	cfg.Director.FirstWaveDelay = 0.05
	cfg.Director.WaveDuration = 0.5
	cfg.Director.CooldownBonus = 0.1
	cfg.Director.CooldownCap = 0.5
	cfg.Trees.GrowthDensity = 0.5
	w, rec := newTestWorld(t, cfg)

	initial := w.Bounds()
	for i := 0; i < 100 && rec.count(EventWaveEnd) < 3; i++ {
		w.Step(0.1)
	}
	require.Equal(t, 3, rec.count(EventWaveEnd))
	assert.Equal(t, 1, rec.count(EventWorldGrow))

	grown := w.Bounds()
	assert.InDelta(t, initial.Width()*cfg.World.GrowthMultiplier, grown.Width(), 1e-9)
	assert.InDelta(t, initial.Height()*cfg.World.GrowthMultiplier, grown.Height(), 1e-9)
	assert.True(t, grown.ContainsRect(initial))

	trees := entitiesOfType(w, TypeTree)
	require.NotEmpty(t, trees, "the new ring is planted")
	for _, tree := range trees {
		assert.False(t, initial.ContainsRect(tree.HitBox), "trees only grow outside the old bounds")
		assert.True(t, grown.ContainsRect(tree.HitBox))
	}
}

func TestMonsterCapRefusesSpawns(t *testing.T) {
	cfg := quietConfig()
	cfg.Director.MonsterCap = 3
	w, rec := newTestWorld(t, cfg)

	for i := 0; i < 3; i++ {
		spawnMonster(t, w, TypeSlime, float64(i*40), -200)
	}
	_, err := w.SpawnMonster(TypeSlime, w.Bounds().Center)
	require.Error(t, err)
	assert.Equal(t, 3, w.Monsters())
	assert.Equal(t, 1, rec.count(EventSpawnRefused))

	_, err = w.SpawnMonster(TypeWorker, w.Bounds().Center)
	assert.Error(t, err, "units are not monsters")
}

func TestBroodCarriesNoStrength(t *testing.T) {
	cfg := quietConfig()
	cfg.Monsters.SlimeMother.BroodInterval = 1
	w, _ := newTestWorld(t, cfg)

	hold(t, w, spawnMonster(t, w, TypeSlimeMother, 200, -200))
	steps(w, 11, 0.1)

	slimes := entitiesOfType(w, TypeSlime)
	require.Len(t, slimes, 1)
	assert.Equal(t, 0.0, mustEntity(t, w, slimes[0].ID).Combat.Strength)
}
