package physics

import "github.com/vovakirdan/slime-siege/internal/geom"

// ProxyID identifies a registered proxy. Ids are assigned by the engine,
// start at 1 and are never reused by the same engine.
type ProxyID uint64

// Proxy is the engine's view of one simulated body.
type Proxy struct {
	ID ProxyID

	// Box is the outer box used for collision and picking.
	Box geom.Rect

	// Velocity in world units per second.
	Velocity geom.Vector

	// Static proxies never move but still collide.
	Static bool

	// Sensor proxies report overlaps but never push other bodies apart.
	Sensor bool

	// Owner is an opaque reference to the gameplay object (usually its id).
	Owner uint64

	removed bool
}

// Collision is one overlapping pair for the current tick.
// A is always the proxy registered first.
type Collision struct {
	A, B    ProxyID
	Overlap geom.BoundingBox
}

// Other returns the partner of id in the pair, or 0 when id is not part of it.
func (c Collision) Other(id ProxyID) ProxyID {
	switch id {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return 0
}

// WorldCollision records a proxy that was pushed back inside the world
// bounds during Advance. Displacement is the correction that was applied.
type WorldCollision struct {
	ID           ProxyID
	Displacement geom.Vector
}
