// Package metrics exports simulation counters and gauges to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/slime-siege/internal/games/siege"
)

const namespace = "siege"

// Collector owns a private registry so several collectors can coexist in
// one process and in tests. It implements siege.Listener and is safe for
// concurrent use.
type Collector struct {
	reg *prometheus.Registry

	deaths       *prometheus.CounterVec
	purchases    *prometheus.CounterVec
	waves        *prometheus.CounterVec
	attacks      prometheus.Counter
	damage       prometheus.Counter
	harvested    prometheus.Counter
	refused      prometheus.Counter
	growths      prometheus.Counter
	upgrades     prometheus.Counter
	gamesOver    prometheus.Counter
	tickDuration prometheus.Histogram

	wave     prometheus.Gauge
	money    prometheus.Gauge
	monsters prometheus.Gauge
	entities prometheus.Gauge
	castleHP prometheus.Gauge
	width    prometheus.Gauge
	height   prometheus.Gauge
	sessions prometheus.Gauge
}

// NewCollector creates and registers every metric.
func NewCollector() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deaths_total",
			Help:      "Entities killed, by type.",
		}, []string{"type"}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Units bought, by type.",
		}, []string{"type"}),
		waves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "waves_total",
			Help:      "Finished waves, by outcome.",
		}, []string{"outcome"}),
		attacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attacks_total",
			Help:      "Effect hits landed.",
		}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_total",
			Help:      "Hit points removed by effects.",
		}),
		harvested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wood_harvested_total",
			Help:      "Wood taken from trees.",
		}),
		refused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spawns_refused_total",
			Help:      "Monster spawns refused at the population cap.",
		}),
		growths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "world_growths_total",
			Help:      "Times the world was enlarged.",
		}),
		upgrades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upgrades_total",
			Help:      "Tower upgrades bought.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Runs that ended with the castle destroyed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent in one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		wave:     newGauge("wave", "Current wave number."),
		money:    newGauge("money", "Player currency."),
		monsters: newGauge("monsters", "Monsters alive."),
		entities: newGauge("entities", "Entities alive."),
		castleHP: newGauge("castle_hit_points", "Castle hit points."),
		width:    newGauge("world_width", "World width in world units."),
		height:   newGauge("world_height", "World height in world units."),
		sessions: newGauge("ssh_sessions", "Open ssh sessions."),
	}

	c.reg.MustRegister(
		c.deaths, c.purchases, c.waves,
		c.attacks, c.damage, c.harvested, c.refused, c.growths, c.upgrades, c.gamesOver,
		c.tickDuration,
		c.wave, c.money, c.monsters, c.entities, c.castleHP, c.width, c.height,
		c.sessions,
	)
	return c
}

func newGauge(name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// SetSessions records the number of open ssh sessions.
func (c *Collector) SetSessions(n int) {
	c.sessions.Set(float64(n))
}

// OnEvent implements siege.Listener.
func (c *Collector) OnEvent(ev siege.Event) {
	switch ev.Kind {
	case siege.EventDeath:
		c.deaths.WithLabelValues(string(ev.Type)).Inc()
	case siege.EventAttack:
		c.attacks.Inc()
		c.damage.Add(ev.Amount)
	case siege.EventHarvest:
		c.harvested.Add(ev.Amount)
	case siege.EventPurchase:
		c.purchases.WithLabelValues(string(ev.Type)).Inc()
	case siege.EventUpgrade:
		c.upgrades.Inc()
	case siege.EventWaveStart:
		c.wave.Set(float64(ev.Wave))
	case siege.EventWaveEnd:
		outcome := "timeout"
		if ev.Cleared {
			outcome = "cleared"
		}
		c.waves.WithLabelValues(outcome).Inc()
	case siege.EventWorldGrow:
		c.growths.Inc()
		c.width.Set(ev.Width)
		c.height.Set(ev.Height)
	case siege.EventSpawnRefused:
		c.refused.Inc()
	case siege.EventGameOver:
		c.gamesOver.Inc()
	}
	c.money.Set(float64(ev.Money))
}

// Observe copies the HUD into the gauges.
func (c *Collector) Observe(h siege.HUD) {
	c.wave.Set(float64(h.Wave))
	c.money.Set(float64(h.Money))
	c.monsters.Set(float64(h.Monsters))
	c.entities.Set(float64(h.Entities))
	c.castleHP.Set(h.CastleHP)
	c.width.Set(h.Bounds.Width())
	c.height.Set(h.Bounds.Height())
}

// ObserveTick records the wall time of one step.
func (c *Collector) ObserveTick(d time.Duration) {
	c.tickDuration.Observe(d.Seconds())
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
