// Package siege implements the slime siege simulation: a castle defended by
// purchasable units and its own missile tower against escalating waves of
// slimes. The World owns every entity, the collision engine, the economy and
// the wave director, and advances them in a fixed order on each Step.
package siege

import (
	"fmt"
	"io"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/geom"
	"github.com/vovakirdan/slime-siege/internal/physics"
)

const (
	// MaxGameSpeed is the highest substep multiplier.
	MaxGameSpeed = 4

	// killReward is paid once for every monster death.
	killReward = 1

	// minAttackSpend keeps zero-delay attackers from looping forever.
	minAttackSpend = 0.01
)

// Options configures a World.
type Options struct {
	Config config.SiegeConfig
	Seed   int64

	// Logger receives warnings and invariant reports. Nil discards output.
	Logger *log.Logger

	// Listener receives simulation events. Nil ignores them.
	Listener Listener

	// Strict turns invariant violations into panics.
	Strict bool
}

// World is a single simulation. It is not safe for concurrent use.
type World struct {
	cfg      config.SiegeConfig
	seed     int64
	logger   *log.Logger
	listener Listener
	strict   bool

	rng    *RNG
	noise  *perlin.Perlin
	engine *physics.Engine

	entities []*Entity
	byID     map[EntityID]*Entity
	byProxy  map[physics.ProxyID]*Entity
	nextID   EntityID
	monsters int

	player   Player
	director Director

	tick      uint64
	elapsed   float64
	over      bool
	paused    bool
	speed     int
	debug     bool
	capWarned bool
	stepping  bool

	aware     []*Entity
	colliding []*Entity
	targets   []*Entity
}

// NewWorld creates a world and starts the first run.
func NewWorld(opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:      opts.Config,
		seed:     opts.Seed,
		logger:   logger,
		listener: opts.Listener,
		strict:   opts.Strict,
		rng:      NewRNG(opts.Seed),
		noise:    perlin.NewPerlin(2, 2, 3, opts.Seed),
		nextID:   1,
	}
	w.Restart()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.SiegeConfig {
	return w.cfg
}

// Seed returns the seed the world was built with.
func (w *World) Seed() int64 {
	return w.seed
}

// Restart discards every entity and rebuilds the initial world, player and
// director. Entity and proxy ids from the previous run never resolve again.
func (w *World) Restart() {
	bounds := geom.FromCenterAndSize(geom.V(0, 0), geom.V(w.cfg.World.Width, w.cfg.World.Height))
	if w.engine == nil {
		w.engine = physics.New(physics.Options{
			World:            bounds,
			SimpleCollisions: w.cfg.Engine.SimpleCollisions,
			MaxSpeed:         w.cfg.Engine.MaxSpeed,
			CellSize:         w.cfg.Engine.CellSize,
		})
	} else {
		w.engine.Reset(bounds)
	}
	w.entities = nil
	w.byID = make(map[EntityID]*Entity)
	w.byProxy = make(map[physics.ProxyID]*Entity)
	w.monsters = 0
	w.player = newPlayer(w.cfg.Player)
	w.director = newDirector(w.cfg.Director)
	w.tick = 0
	w.elapsed = 0
	w.over = false
	w.paused = false
	w.speed = 1
	w.capWarned = false

	castle := w.spawnCastle()
	clearing := geom.FromCenterAndSize(castle.HitBox.Center,
		geom.V(w.cfg.Castle.ClearingWidth, w.cfg.Castle.ClearingHeight))
	w.spawnTrees(geom.Except(bounds, clearing), w.cfg.Trees.InitialDensity)
	w.logger.Debug("world restarted", "seed", w.seed, "entities", len(w.entities))
}

// Step advances the simulation by dt seconds, once per game-speed substep.
// dt is clamped to the configured maximum; non-positive or NaN dt is ignored.
func (w *World) Step(dt float64) {
	if w.over || w.paused || !(dt > 0) {
		return
	}
	if dt > w.cfg.Engine.MaxStepSeconds {
		dt = w.cfg.Engine.MaxStepSeconds
	}
	for i := 0; i < w.speed && !w.over; i++ {
		w.step(dt)
	}
}

// step runs one tick: director, engine, collision dispatch, entity updates,
// reaping and the game-over check.
func (w *World) step(dt float64) {
	w.stepping = true
	defer func() { w.stepping = false }()

	w.tick++
	w.elapsed += dt

	w.updateDirector(dt)
	w.engine.Advance(dt)
	w.dispatchWorldCollisions()
	w.dispatchCollisions()

	// Entities spawned during this loop are first updated next tick.
	n := len(w.entities)
	for i := 0; i < n; i++ {
		if e := w.entities[i]; e.Alive {
			w.update(e, dt)
		}
	}

	w.reap()
	w.checkInvariants()
	w.checkGameOver()
}

func (w *World) dispatchWorldCollisions() {
	for _, wc := range w.engine.WorldCollisions() {
		e := w.byProxy[wc.ID]
		if e == nil || e.Combat == nil {
			continue
		}
		if wc.Displacement.X != 0 {
			e.Velocity.X = math.Copysign(e.Velocity.X, wc.Displacement.X)
		}
		if wc.Displacement.Y != 0 {
			e.Velocity.Y = math.Copysign(e.Velocity.Y, wc.Displacement.Y)
		}
	}
}

func (w *World) dispatchCollisions() {
	for _, c := range w.engine.Collisions() {
		a, b := w.byProxy[c.A], w.byProxy[c.B]
		if a == nil || b == nil {
			continue
		}
		if a.Effect != nil {
			a.Effect.touching = append(a.Effect.touching, b.ID)
		}
		if b.Effect != nil {
			b.Effect.touching = append(b.Effect.touching, a.ID)
		}
	}
}

func (w *World) update(e *Entity, dt float64) {
	if p, ok := w.engine.Lookup(e.proxy); ok {
		e.HitBox = p.Box
	}
	e.syncRenderBox()
	e.Facing = facingFor(e.Velocity)
	e.AnimPhase += dt

	switch e.Kind {
	case KindPlayerUnit, KindMonster:
		w.updateCombatant(e, dt)
	case KindBuilding:
		w.updateTower(e, dt)
	case KindResource:
		if e.Resource.Wood <= 0 {
			e.Alive = false
		}
	case KindEffect:
		w.updateEffect(e, dt)
	}
}

// add registers e with the engine and assigns its id. Dynamic bodies are
// clamped into the world first.
func (w *World) add(e *Entity) *Entity {
	e.ID = w.nextID
	w.nextID++
	b := e.Kind.behavior()
	if b.dynamic {
		e.HitBox, _ = e.HitBox.ClampInside(w.engine.World())
	}
	e.proxy = w.engine.Register(physics.Proxy{
		Box:      e.HitBox,
		Velocity: e.Velocity,
		Static:   !b.dynamic,
		Sensor:   b.sensor,
		Owner:    uint64(e.ID),
	})
	e.syncRenderBox()
	w.entities = append(w.entities, e)
	w.byID[e.ID] = e
	w.byProxy[e.proxy] = e
	if e.isMonster() {
		w.monsters++
	}
	return e
}

// kill marks a combatant or building dead and pays out the death reward.
func (w *World) kill(e *Entity) {
	e.Alive = false
	if e.isMonster() {
		w.player.Kills++
		w.player.Money += killReward
		w.director.onKill(e.Combat.Strength)
	}
	w.emit(Event{Kind: EventDeath, Entity: e.ID, Type: e.Type, Player: e.Player})
}

// reap removes dead entities from the world and the engine.
func (w *World) reap() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		w.engine.Remove(e.proxy)
		delete(w.byID, e.ID)
		delete(w.byProxy, e.proxy)
		if e.isMonster() {
			w.monsters--
		}
	}
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
	w.player.prune(w.byID)
}

// Remove takes an entity out of the world without rewards. During a step the
// entity is reaped at the end of the tick.
func (w *World) Remove(id EntityID) bool {
	e, ok := w.byID[id]
	if !ok || !e.Alive {
		return false
	}
	e.Alive = false
	if !w.stepping {
		w.reap()
	}
	return true
}

func (w *World) checkInvariants() {
	bounds := w.engine.World()
	for _, e := range w.entities {
		if !e.Kind.behavior().dynamic {
			continue
		}
		w.invariant(bounds.ContainsRect(e.HitBox), "entity outside world bounds",
			"id", e.ID, "type", e.Type, "box", e.HitBox)
	}
	w.invariant(w.player.Money >= 0, "negative money", "money", w.player.Money)
}

func (w *World) checkGameOver() {
	if w.castle() != nil {
		return
	}
	w.over = true
	w.logger.Info("game over", "wave", w.director.wave, "kills", w.player.Kills, "elapsed", w.elapsed)
	w.emit(Event{Kind: EventGameOver})
}

// invariant reports a broken simulation invariant.
func (w *World) invariant(ok bool, msg string, keyvals ...any) {
	if ok {
		return
	}
	if w.strict {
		panic(fmt.Sprintf("siege: invariant violated: %s %v", msg, keyvals))
	}
	w.logger.Error("invariant violated: "+msg, keyvals...)
}

func (w *World) emit(ev Event) {
	if w.listener == nil {
		return
	}
	ev.Tick = w.tick
	ev.Time = w.elapsed
	if ev.Wave == 0 {
		ev.Wave = w.director.wave
	}
	ev.Money = w.player.Money
	ev.Kills = w.player.Kills
	w.listener.OnEvent(ev)
}

// Bounds returns the current world rect.
func (w *World) Bounds() geom.Rect {
	return w.engine.World()
}

// Tick returns the number of ticks since the last restart.
func (w *World) Tick() uint64 {
	return w.tick
}

// Elapsed returns simulated seconds since the last restart.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// GameOver reports whether the castle has fallen.
func (w *World) GameOver() bool {
	return w.over
}

// Paused reports whether Step is currently a no-op.
func (w *World) Paused() bool {
	return w.paused
}

// TogglePause pauses or resumes the simulation.
func (w *World) TogglePause() {
	w.paused = !w.paused
}

// Speed returns the number of substeps per Step.
func (w *World) Speed() int {
	return w.speed
}

// SetSpeed sets the substep count, clamped to [1, MaxGameSpeed].
func (w *World) SetSpeed(n int) {
	w.speed = max(1, min(n, MaxGameSpeed))
}

// Debug reports whether the debug overlay is enabled.
func (w *World) Debug() bool {
	return w.debug
}

// ToggleDebug flips the debug overlay.
func (w *World) ToggleDebug() {
	w.debug = !w.debug
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Monsters returns the number of live monsters.
func (w *World) Monsters() int {
	return w.monsters
}
