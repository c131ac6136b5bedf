package geom

import "math"

// BoundingBox is an edge representation of an axis-aligned box.
// A box produced by Rect.Overlap may be degenerate (zero width or height).
type BoundingBox struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns Bottom - Top.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// Rect is an axis-aligned rectangle stored as center and size.
// Y grows downwards, so Top < Bottom.
type Rect struct {
	Center Vector
	Size   Vector
}

// FromCenterAndSize builds a rect from its center and size.
// Negative size components are clamped to zero.
func FromCenterAndSize(center, size Vector) Rect {
	return Rect{Center: center, Size: Vector{X: math.Max(0, size.X), Y: math.Max(0, size.Y)}}
}

// FromBoundingBox builds a rect from its edges.
func FromBoundingBox(b BoundingBox) Rect {
	return FromCenterAndSize(
		Vector{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2},
		Vector{X: b.Right - b.Left, Y: b.Bottom - b.Top},
	)
}

// FromLeftTopWidthHeight builds a rect from its top-left corner and size.
func FromLeftTopWidthHeight(left, top, width, height float64) Rect {
	return FromCenterAndSize(Vector{X: left + width/2, Y: top + height/2}, Vector{X: width, Y: height})
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.Size.X/2 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.Size.X/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Center.Y - r.Size.Y/2 }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Center.Y + r.Size.Y/2 }

// Width returns the horizontal size.
func (r Rect) Width() float64 { return r.Size.X }

// Height returns the vertical size.
func (r Rect) Height() float64 { return r.Size.Y }

// AsBoundingBox converts r to its edge representation.
func (r Rect) AsBoundingBox() BoundingBox {
	return BoundingBox{Left: r.Left(), Top: r.Top(), Right: r.Right(), Bottom: r.Bottom()}
}

// Translate returns a copy of r moved by d.
func (r Rect) Translate(d Vector) Rect {
	r.Center = r.Center.Add(d)
	return r
}

// Inset returns a copy of r shrunk by d on every side.
// A negative d grows the rect. Size never drops below zero.
func (r Rect) Inset(d float64) Rect {
	return FromCenterAndSize(r.Center, Vector{X: r.Size.X - 2*d, Y: r.Size.Y - 2*d})
}

// Move translates r in place.
func (r *Rect) Move(d Vector) {
	r.Center.AddAssign(d)
}

// MoveLeft moves r horizontally so that its left edge is at x.
func (r *Rect) MoveLeft(x float64) { r.Center.X = x + r.Size.X/2 }

// MoveRight moves r horizontally so that its right edge is at x.
func (r *Rect) MoveRight(x float64) { r.Center.X = x - r.Size.X/2 }

// MoveTop moves r vertically so that its top edge is at y.
func (r *Rect) MoveTop(y float64) { r.Center.Y = y + r.Size.Y/2 }

// MoveBottom moves r vertically so that its bottom edge is at y.
func (r *Rect) MoveBottom(y float64) { r.Center.Y = y - r.Size.Y/2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies fully inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() && o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o overlap. Touching edges count as
// overlap, so a body resting against another is still reported.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() <= o.Right() && o.Left() <= r.Right() &&
		r.Top() <= o.Bottom() && o.Top() <= r.Bottom()
}

// Overlap returns the intersection region of r and o.
// ok is false when the rects do not intersect; the box may be degenerate
// when they only touch.
func (r Rect) Overlap(o Rect) (box BoundingBox, ok bool) {
	if !r.Intersects(o) {
		return BoundingBox{}, false
	}
	return BoundingBox{
		Left:   math.Max(r.Left(), o.Left()),
		Top:    math.Max(r.Top(), o.Top()),
		Right:  math.Min(r.Right(), o.Right()),
		Bottom: math.Min(r.Bottom(), o.Bottom()),
	}, true
}

// Distance returns the signed gap from r to o per axis. An axis on which the
// projections overlap yields 0; otherwise the component is positive when o
// lies to the right (below) of r and negative when it lies to the left (above).
func (r Rect) Distance(o Rect) Vector {
	var d Vector
	switch {
	case o.Left() > r.Right():
		d.X = o.Left() - r.Right()
	case o.Right() < r.Left():
		d.X = o.Right() - r.Left()
	}
	switch {
	case o.Top() > r.Bottom():
		d.Y = o.Top() - r.Bottom()
	case o.Bottom() < r.Top():
		d.Y = o.Bottom() - r.Top()
	}
	return d
}

// ClampInside returns r moved the minimal amount to lie within bounds, plus
// the displacement that was applied. A rect larger than bounds on an axis is
// centered on that axis.
func (r Rect) ClampInside(bounds Rect) (Rect, Vector) {
	out := r
	if r.Size.X >= bounds.Size.X {
		out.Center.X = bounds.Center.X
	} else if r.Left() < bounds.Left() {
		out.MoveLeft(bounds.Left())
	} else if r.Right() > bounds.Right() {
		out.MoveRight(bounds.Right())
	}
	if r.Size.Y >= bounds.Size.Y {
		out.Center.Y = bounds.Center.Y
	} else if r.Top() < bounds.Top() {
		out.MoveTop(bounds.Top())
	} else if r.Bottom() > bounds.Bottom() {
		out.MoveBottom(bounds.Bottom())
	}
	return out, out.Center.Sub(r.Center)
}

// Except splits outer minus inner into up to four rects: full-height left and
// right strips plus top and bottom strips between them. Empty strips are
// dropped. inner is assumed to lie within outer.
func Except(outer, inner Rect) []Rect {
	strips := []BoundingBox{
		{Left: outer.Left(), Top: outer.Top(), Right: inner.Left(), Bottom: outer.Bottom()},
		{Left: inner.Right(), Top: outer.Top(), Right: outer.Right(), Bottom: outer.Bottom()},
		{Left: inner.Left(), Top: outer.Top(), Right: inner.Right(), Bottom: inner.Top()},
		{Left: inner.Left(), Top: inner.Bottom(), Right: inner.Right(), Bottom: outer.Bottom()},
	}
	out := make([]Rect, 0, len(strips))
	for _, b := range strips {
		if b.Width() <= 0 || b.Height() <= 0 {
			continue
		}
		out = append(out, FromBoundingBox(b))
	}
	return out
}
