package metrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
	"github.com/vovakirdan/slime-siege/internal/geom"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector()

	events := []siege.Event{
		{Kind: siege.EventDeath, Type: siege.TypeSlime},
		{Kind: siege.EventDeath, Type: siege.TypeSlime},
		{Kind: siege.EventDeath, Type: siege.TypeWorker, Player: true},
		{Kind: siege.EventAttack, Amount: 2.5},
		{Kind: siege.EventAttack, Amount: 1.5},
		{Kind: siege.EventHarvest, Amount: 3},
		{Kind: siege.EventPurchase, Type: siege.TypeSwordsman, Money: 400},
		{Kind: siege.EventWaveEnd, Cleared: true},
		{Kind: siege.EventWaveEnd},
		{Kind: siege.EventWaveEnd},
		{Kind: siege.EventSpawnRefused},
		{Kind: siege.EventWorldGrow, Width: 1040, Height: 780},
		{Kind: siege.EventGameOver, Money: 123},
	}
	for _, ev := range events {
		c.OnEvent(ev)
	}

	body := scrape(t, c)
	for _, want := range []string{
		`siege_deaths_total{type="slime"} 2`,
		`siege_deaths_total{type="worker"} 1`,
		`siege_attacks_total 2`,
		`siege_damage_total 4`,
		`siege_wood_harvested_total 3`,
		`siege_purchases_total{type="swordsman"} 1`,
		`siege_waves_total{outcome="cleared"} 1`,
		`siege_waves_total{outcome="timeout"} 2`,
		`siege_spawns_refused_total 1`,
		`siege_world_growths_total 1`,
		`siege_world_width 1040`,
		`siege_games_over_total 1`,
		`siege_money 123`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestCollectorObserve(t *testing.T) {
	c := NewCollector()
	c.Observe(siege.HUD{
		Wave:     3,
		Money:    250,
		Monsters: 17,
		Entities: 40,
		CastleHP: 42,
		Bounds:   geom.FromLeftTopWidthHeight(0, 0, 800, 600),
	})
	c.ObserveTick(200 * time.Microsecond)
	c.SetSessions(2)

	body := scrape(t, c)
	for _, want := range []string{
		`siege_wave 3`,
		`siege_money 250`,
		`siege_monsters 17`,
		`siege_entities 40`,
		`siege_castle_hit_points 42`,
		`siege_world_height 600`,
		`siege_tick_duration_seconds_count 1`,
		`siege_ssh_sessions 2`,
	} {
		assert.Contains(t, body, want)
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	a.OnEvent(siege.Event{Kind: siege.EventSpawnRefused})

	assert.Contains(t, scrape(t, a), "siege_spawns_refused_total 1")
	assert.Contains(t, scrape(t, b), "siege_spawns_refused_total 0")
}

func TestCollectorDrivesFromWorld(t *testing.T) {
	c := NewCollector()
	w := siege.NewWorld(siege.Options{Config: config.DefaultSiegeConfig(), Seed: 3, Listener: c})
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	hud := w.HUD()
	require.Positive(t, hud.Entities)
	c.Observe(hud)

	body := scrape(t, c)
	assert.Contains(t, body, fmt.Sprintf("siege_entities %d\n", hud.Entities))
	assert.Contains(t, body, fmt.Sprintf("siege_money %d\n", hud.Money))
}
