package physics

import (
	"math"

	"github.com/vovakirdan/slime-siege/internal/geom"
)

// grid is a uniform bucket grid over the world rect. Proxies are inserted
// into every cell their box touches; boxes outside the world are clamped to
// the border cells.
type grid struct {
	cellSize float64
	origin   geom.Vector
	cols     int
	rows     int
	cells    [][]*Proxy
}

func newGrid(world geom.Rect, cellSize float64) *grid {
	g := &grid{cellSize: cellSize}
	g.resize(world)
	return g
}

func (g *grid) resize(world geom.Rect) {
	g.origin = geom.V(world.Left(), world.Top())
	g.cols = max(1, int(math.Ceil(world.Width()/g.cellSize)))
	g.rows = max(1, int(math.Ceil(world.Height()/g.cellSize)))
	g.cells = make([][]*Proxy, g.cols*g.rows)
}

func (g *grid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *grid) cellRange(r geom.Rect) (c0, r0, c1, r1 int) {
	c0 = g.col(r.Left())
	c1 = g.col(r.Right())
	r0 = g.row(r.Top())
	r1 = g.row(r.Bottom())
	return
}

func (g *grid) col(x float64) int {
	c := int(math.Floor((x - g.origin.X) / g.cellSize))
	return min(max(c, 0), g.cols-1)
}

func (g *grid) row(y float64) int {
	r := int(math.Floor((y - g.origin.Y) / g.cellSize))
	return min(max(r, 0), g.rows-1)
}

func (g *grid) insert(p *Proxy) {
	c0, r0, c1, r1 := g.cellRange(p.Box)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i := row*g.cols + col
			g.cells[i] = append(g.cells[i], p)
		}
	}
}

// query appends every proxy stored in the cells touched by r. The result
// may contain duplicates and removed proxies.
func (g *grid) query(r geom.Rect, dst []*Proxy) []*Proxy {
	c0, r0, c1, r1 := g.cellRange(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dst = append(dst, g.cells[row*g.cols+col]...)
		}
	}
	return dst
}
