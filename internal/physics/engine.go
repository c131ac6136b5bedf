// Package physics implements the spatial/collision engine: a flat store of
// axis-aligned proxies that are integrated, clamped to the world rect,
// tested pairwise for overlap and queried by area.
//
// The engine knows nothing about factions, damage or entity kinds. Gameplay
// code reads Collisions and WorldCollisions after Advance and reacts.
package physics

import (
	"math"
	"sort"

	"github.com/vovakirdan/slime-siege/internal/geom"
)

// Options configures an Engine.
type Options struct {
	// World is the bounding rect every moving proxy is clamped into.
	World geom.Rect

	// SimpleCollisions disables separation: overlaps are reported but
	// dynamic bodies are not pushed out of static ones.
	SimpleCollisions bool

	// MaxSpeed caps velocity magnitude during integration. Zero disables the cap.
	MaxSpeed float64

	// CellSize enables the uniform grid broadphase when positive.
	// Results are identical to the pairwise scan.
	CellSize float64
}

// Engine owns all proxies. It is not safe for concurrent use.
type Engine struct {
	opts    Options
	world   geom.Rect
	proxies []*Proxy // registration order, may contain removed entries
	byID    map[ProxyID]*Proxy
	nextID  ProxyID
	removed int

	collisions []Collision
	worldHits  []WorldCollision

	grid      *grid
	gridDirty bool
	scratch   []*Proxy
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	e := &Engine{
		opts:  opts,
		world: opts.World,
		byID:  make(map[ProxyID]*Proxy),
	}
	if opts.CellSize > 0 {
		e.grid = newGrid(opts.World, opts.CellSize)
	}
	return e
}

// World returns the current world bounding rect.
func (e *Engine) World() geom.Rect {
	return e.world
}

// SetWorld replaces the world bounding rect. Proxies are clamped into it on
// the next Advance.
func (e *Engine) SetWorld(r geom.Rect) {
	e.world = r
	if e.grid != nil {
		e.grid.resize(r)
		e.gridDirty = true
	}
}

// Reset removes every proxy and replaces the world rect. Ids issued before
// the reset never resolve again.
func (e *Engine) Reset(world geom.Rect) {
	e.world = world
	e.proxies = nil
	e.byID = make(map[ProxyID]*Proxy)
	e.removed = 0
	e.collisions = e.collisions[:0]
	e.worldHits = e.worldHits[:0]
	if e.grid != nil {
		e.grid.resize(world)
		e.gridDirty = true
	}
}

// Len returns the number of registered proxies.
func (e *Engine) Len() int {
	return len(e.byID)
}

// Register stores a copy of p under a fresh id and returns that id.
// Any id set on p is ignored.
func (e *Engine) Register(p Proxy) ProxyID {
	e.nextID++
	p.ID = e.nextID
	p.removed = false
	p.Box = sanitizeBox(p.Box)
	stored := &p
	e.proxies = append(e.proxies, stored)
	e.byID[p.ID] = stored
	if e.grid != nil && !e.gridDirty {
		e.grid.insert(stored)
	}
	return p.ID
}

// Remove unregisters id. Unknown or already removed ids are ignored.
func (e *Engine) Remove(id ProxyID) {
	p, ok := e.byID[id]
	if !ok {
		return
	}
	p.removed = true
	delete(e.byID, id)
	e.removed++
	if e.removed > len(e.proxies)/2 {
		e.compact()
	}
}

// Lookup returns a copy of the proxy registered under id.
func (e *Engine) Lookup(id ProxyID) (Proxy, bool) {
	p, ok := e.byID[id]
	if !ok {
		return Proxy{}, false
	}
	return *p, true
}

// SetVelocity updates the velocity of id. It reports false for unknown ids.
func (e *Engine) SetVelocity(id ProxyID, v geom.Vector) bool {
	p, ok := e.byID[id]
	if !ok {
		return false
	}
	p.Velocity = v
	return true
}

// SetBox moves or resizes the box of id. It reports false for unknown ids.
func (e *Engine) SetBox(id ProxyID, box geom.Rect) bool {
	p, ok := e.byID[id]
	if !ok {
		return false
	}
	p.Box = sanitizeBox(box)
	e.gridDirty = true
	return true
}

// Advance integrates every non-static proxy by velocity*dt, clamps it into
// the world rect and recomputes the collision set. dt is not bounded here;
// callers clamp it.
func (e *Engine) Advance(dt float64) {
	e.compact()
	e.worldHits = e.worldHits[:0]

	for _, p := range e.proxies {
		if p.Static {
			continue
		}
		p.Velocity = e.sanitizeVelocity(p.Velocity)
		p.Box.Move(p.Velocity.Scale(dt))
		e.clampToWorld(p)
	}

	e.rebuildGrid()
	e.detect()
	if !e.opts.SimpleCollisions {
		e.separate()
	}
}

// Collisions returns the overlap set computed by the last Advance, ordered
// by (A, B). The slice is reused by the next Advance.
func (e *Engine) Collisions() []Collision {
	return e.collisions
}

// WorldCollisions returns the proxies clamped by the last Advance.
func (e *Engine) WorldCollisions() []WorldCollision {
	return e.worldHits
}

// PickWithinRect returns copies of every proxy whose box intersects r,
// ordered by id.
func (e *Engine) PickWithinRect(r geom.Rect) []Proxy {
	var out []Proxy
	for _, p := range e.candidates(r) {
		if p.Box.Intersects(r) {
			out = append(out, *p)
		}
	}
	return out
}

// PickWithinCircle returns copies of every proxy whose box comes within
// radius of center, ordered by id.
func (e *Engine) PickWithinCircle(center geom.Vector, radius float64) []Proxy {
	if radius < 0 {
		return nil
	}
	bounds := geom.FromCenterAndSize(center, geom.V(radius*2, radius*2))
	r2 := radius * radius
	var out []Proxy
	for _, p := range e.candidates(bounds) {
		if boxDistanceSq(p.Box, center) <= r2 {
			out = append(out, *p)
		}
	}
	return out
}

// candidates returns live proxies that may intersect r, ordered by id.
func (e *Engine) candidates(r geom.Rect) []*Proxy {
	if e.grid == nil {
		out := make([]*Proxy, 0, len(e.byID))
		for _, p := range e.proxies {
			if !p.removed {
				out = append(out, p)
			}
		}
		return out
	}
	e.rebuildGridIfDirty()
	e.scratch = e.grid.query(r, e.scratch[:0])
	return uniqueLive(e.scratch)
}

func (e *Engine) detect() {
	e.collisions = e.collisions[:0]

	if e.grid == nil {
		for i, a := range e.proxies {
			for _, b := range e.proxies[i+1:] {
				e.test(a, b)
			}
		}
		return
	}

	for _, a := range e.proxies {
		e.scratch = e.grid.query(a.Box, e.scratch[:0])
		for _, b := range uniqueLive(e.scratch) {
			if b.ID > a.ID {
				e.test(a, b)
			}
		}
	}
}

func (e *Engine) test(a, b *Proxy) {
	if a.Static && b.Static && !a.Sensor && !b.Sensor {
		return
	}
	if box, ok := a.Box.Overlap(b.Box); ok {
		e.collisions = append(e.collisions, Collision{A: a.ID, B: b.ID, Overlap: box})
	}
}

// separate pushes dynamic solid bodies out of static solid bodies along the
// axis of least penetration.
func (e *Engine) separate() {
	moved := false
	for _, c := range e.collisions {
		a, b := e.byID[c.A], e.byID[c.B]
		if a.Sensor || b.Sensor || a.Static == b.Static {
			continue
		}
		mover, solid := a, b
		if a.Static {
			mover, solid = b, a
		}
		box, ok := mover.Box.Overlap(solid.Box)
		if !ok {
			continue
		}
		var push geom.Vector
		if box.Width() < box.Height() {
			push.X = box.Width()
			if mover.Box.Center.X < solid.Box.Center.X {
				push.X = -push.X
			}
		} else {
			push.Y = box.Height()
			if mover.Box.Center.Y < solid.Box.Center.Y {
				push.Y = -push.Y
			}
		}
		mover.Box.Move(push)
		e.clampToWorld(mover)
		moved = true
	}
	if moved {
		e.gridDirty = true
	}
}

func (e *Engine) clampToWorld(p *Proxy) {
	clamped, disp := p.Box.ClampInside(e.world)
	if disp.IsZero() {
		return
	}
	p.Box = clamped
	for i := range e.worldHits {
		if e.worldHits[i].ID == p.ID {
			e.worldHits[i].Displacement.AddAssign(disp)
			return
		}
	}
	e.worldHits = append(e.worldHits, WorldCollision{ID: p.ID, Displacement: disp})
}

func (e *Engine) sanitizeVelocity(v geom.Vector) geom.Vector {
	if math.IsNaN(v.X) || math.IsInf(v.X, 0) {
		v.X = 0
	}
	if math.IsNaN(v.Y) || math.IsInf(v.Y, 0) {
		v.Y = 0
	}
	if e.opts.MaxSpeed > 0 && v.LengthSq() > e.opts.MaxSpeed*e.opts.MaxSpeed {
		v = v.WithLength(e.opts.MaxSpeed)
	}
	return v
}

func (e *Engine) compact() {
	if e.removed == 0 {
		return
	}
	live := e.proxies[:0]
	for _, p := range e.proxies {
		if !p.removed {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(e.proxies); i++ {
		e.proxies[i] = nil
	}
	e.proxies = live
	e.removed = 0
	e.gridDirty = true
}

func (e *Engine) rebuildGrid() {
	if e.grid == nil {
		return
	}
	e.grid.clear()
	for _, p := range e.proxies {
		if !p.removed {
			e.grid.insert(p)
		}
	}
	e.gridDirty = false
}

func (e *Engine) rebuildGridIfDirty() {
	if e.gridDirty {
		e.rebuildGrid()
	}
}

func sanitizeBox(r geom.Rect) geom.Rect {
	if math.IsNaN(r.Size.X) || r.Size.X < 0 {
		r.Size.X = 0
	}
	if math.IsNaN(r.Size.Y) || r.Size.Y < 0 {
		r.Size.Y = 0
	}
	return r
}

// uniqueLive drops duplicates and removed proxies and sorts by id.
func uniqueLive(ps []*Proxy) []*Proxy {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	out := ps[:0]
	var last ProxyID
	for _, p := range ps {
		if p.removed || p.ID == last {
			continue
		}
		last = p.ID
		out = append(out, p)
	}
	return out
}

// boxDistanceSq is the squared distance from pt to the closest point of r.
func boxDistanceSq(r geom.Rect, pt geom.Vector) float64 {
	dx := math.Max(math.Max(r.Left()-pt.X, 0), pt.X-r.Right())
	dy := math.Max(math.Max(r.Top()-pt.Y, 0), pt.Y-r.Bottom())
	return dx*dx + dy*dy
}
