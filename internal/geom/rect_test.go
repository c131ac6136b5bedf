package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectEdges(t *testing.T) {
	r := FromCenterAndSize(V(10, 20), V(8, 4))
	if r.Left() != 6 || r.Right() != 14 || r.Top() != 18 || r.Bottom() != 22 {
		t.Errorf("edges = %v/%v/%v/%v, expected 6/14/18/22", r.Left(), r.Right(), r.Top(), r.Bottom())
	}

	neg := FromCenterAndSize(V(0, 0), V(-5, 3))
	if neg.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %v", neg.Width())
	}

	ltwh := FromLeftTopWidthHeight(0, 0, 10, 4)
	if ltwh.Center != V(5, 2) {
		t.Errorf("FromLeftTopWidthHeight center = %v, expected (5,2)", ltwh.Center)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", FromLeftTopWidthHeight(0, 0, 10, 10), FromLeftTopWidthHeight(5, 5, 10, 10), true},
		{"disjoint horizontal", FromLeftTopWidthHeight(0, 0, 10, 10), FromLeftTopWidthHeight(15, 0, 10, 10), false},
		{"disjoint vertical", FromLeftTopWidthHeight(0, 0, 10, 10), FromLeftTopWidthHeight(0, 15, 10, 10), false},
		{"touching edge", FromLeftTopWidthHeight(0, 0, 10, 10), FromLeftTopWidthHeight(10, 0, 10, 10), true},
		{"contained", FromLeftTopWidthHeight(0, 0, 20, 20), FromLeftTopWidthHeight(5, 5, 5, 5), true},
		{"zero area inside", FromLeftTopWidthHeight(0, 0, 20, 20), FromCenterAndSize(V(3, 3), V(0, 0)), true},
		{"diagonal miss", FromLeftTopWidthHeight(0, 0, 10, 10), FromLeftTopWidthHeight(11, 11, 4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
			_, ok := tc.a.Overlap(tc.b)
			if ok != tc.expected {
				t.Errorf("Overlap() ok = %v, expected %v", ok, tc.expected)
			}
		})
	}
}

func TestRectOverlap(t *testing.T) {
	a := FromLeftTopWidthHeight(0, 0, 10, 10)
	b := FromLeftTopWidthHeight(6, 2, 10, 4)

	box, ok := a.Overlap(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	expected := BoundingBox{Left: 6, Top: 2, Right: 10, Bottom: 6}
	if box != expected {
		t.Errorf("Overlap() = %+v, expected %+v", box, expected)
	}
	if box.Width() != 4 || box.Height() != 4 {
		t.Errorf("overlap size = %vx%v, expected 4x4", box.Width(), box.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := FromLeftTopWidthHeight(0, 0, 10, 10)
	tests := []struct {
		p        Vector
		expected bool
	}{
		{V(5, 5), true},
		{V(0, 0), true},
		{V(10, 10), true},
		{V(-0.1, 5), false},
		{V(5, 10.1), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestRectDistance(t *testing.T) {
	r := FromLeftTopWidthHeight(0, 0, 10, 10)
	tests := []struct {
		name     string
		o        Rect
		expected Vector
	}{
		{"overlapping", FromLeftTopWidthHeight(5, 5, 10, 10), V(0, 0)},
		{"right", FromLeftTopWidthHeight(15, 0, 5, 5), V(5, 0)},
		{"left", FromLeftTopWidthHeight(-8, 2, 5, 5), V(-3, 0)},
		{"below", FromLeftTopWidthHeight(2, 12, 5, 5), V(0, 2)},
		{"above left", FromLeftTopWidthHeight(-10, -10, 5, 5), V(-5, -5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Distance(tc.o); got != tc.expected {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectBoundingBoxRoundTrip(t *testing.T) {
	rects := []Rect{
		FromCenterAndSize(V(0, 0), V(800, 600)),
		FromCenterAndSize(V(-13.25, 7.5), V(0.3, 17)),
		FromCenterAndSize(V(1e4, -1e4), V(128, 64)),
		FromCenterAndSize(V(3, 3), V(0, 0)),
	}
	for _, r := range rects {
		back := FromBoundingBox(r.AsBoundingBox())
		if !near(back.Center.X, r.Center.X) || !near(back.Center.Y, r.Center.Y) ||
			!near(back.Size.X, r.Size.X) || !near(back.Size.Y, r.Size.Y) {
			t.Errorf("round trip %+v -> %+v", r, back)
		}
	}
}

func TestRectMoveEdges(t *testing.T) {
	r := FromCenterAndSize(V(0, 0), V(10, 20))

	r.MoveBottom(100)
	if r.Bottom() != 100 || r.Height() != 20 {
		t.Errorf("MoveBottom: bottom=%v height=%v", r.Bottom(), r.Height())
	}
	r.MoveLeft(-5)
	if r.Left() != -5 || r.Width() != 10 {
		t.Errorf("MoveLeft: left=%v width=%v", r.Left(), r.Width())
	}

	moved := r.Translate(V(1, 1))
	if moved.Center == r.Center {
		t.Error("Translate should return a moved copy")
	}
	if r.Left() != -5 {
		t.Error("Translate must not mutate the receiver")
	}

	inset := r.Inset(3)
	if inset.Width() != 4 || inset.Height() != 14 {
		t.Errorf("Inset size = %vx%v, expected 4x14", inset.Width(), inset.Height())
	}
	if r.Inset(100).Width() != 0 {
		t.Error("Inset past zero should clamp size")
	}
}

func TestRectClampInside(t *testing.T) {
	world := FromCenterAndSize(V(0, 0), V(100, 100))

	tests := []struct {
		name   string
		r      Rect
		center Vector
		disp   Vector
	}{
		{"inside", FromCenterAndSize(V(10, 10), V(10, 10)), V(10, 10), V(0, 0)},
		{"past right", FromCenterAndSize(V(60, 0), V(10, 10)), V(45, 0), V(-15, 0)},
		{"past top left", FromCenterAndSize(V(-70, -52), V(10, 10)), V(-45, -45), V(25, 7)},
		{"wider than world", FromCenterAndSize(V(30, 0), V(200, 10)), V(0, 0), V(-30, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, disp := tc.r.ClampInside(world)
			if !near(got.Center.X, tc.center.X) || !near(got.Center.Y, tc.center.Y) {
				t.Errorf("center = %v, expected %v", got.Center, tc.center)
			}
			if !near(disp.X, tc.disp.X) || !near(disp.Y, tc.disp.Y) {
				t.Errorf("displacement = %v, expected %v", disp, tc.disp)
			}
			if tc.r.Width() <= world.Width() && !world.ContainsRect(got) {
				t.Errorf("clamped rect %+v not inside world", got)
			}
		})
	}
}

func TestExcept(t *testing.T) {
	outer := FromCenterAndSize(V(0, 0), V(100, 100))
	inner := FromCenterAndSize(V(0, 0), V(40, 20))

	parts := Except(outer, inner)
	if len(parts) != 4 {
		t.Fatalf("expected 4 strips, got %d", len(parts))
	}

	var area float64
	for _, p := range parts {
		area += p.Width() * p.Height()
		if p.Intersects(inner.Inset(0.5)) {
			t.Errorf("strip %+v overlaps the excluded area", p)
		}
	}
	expected := 100.0*100 - 40*20
	if !near(area, expected) {
		t.Errorf("strip area = %v, expected %v", area, expected)
	}

	if got := Except(outer, outer); len(got) != 0 {
		t.Errorf("outer minus itself should be empty, got %d strips", len(got))
	}
}
