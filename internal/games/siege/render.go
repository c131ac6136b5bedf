package siege

import (
	"fmt"
	"math"

	"github.com/vovakirdan/slime-siege/internal/core"
	"github.com/vovakirdan/slime-siege/internal/geom"
)

// Minimum screen size for the playfield plus HUD.
const (
	MinScreenW = 40
	MinScreenH = 12
)

type glyph struct {
	r     rune
	color core.Color
}

var glyphs = map[Type]glyph{
	TypeSlime:       {'o', core.ColorBrightGreen},
	TypeFireSlime:   {'ø', core.ColorOrange},
	TypeSlimeMother: {'O', core.ColorMagenta},
	TypeWorker:      {'w', core.ColorCyan},
	TypeSwordsman:   {'S', core.ColorBrightBlue},
	TypeCastle:      {'█', core.ColorYellow},
	TypeTree:        {'♣', core.ColorGreen},
	TypeHit:         {'*', core.ColorBrightWhite},
	TypeMissile:     {'•', core.ColorBrightYellow},
}

var facingGlyphs = map[Facing]rune{
	FacingSE: '↘',
	FacingSW: '↙',
	FacingNE: '↗',
	FacingNW: '↖',
}

// viewport maps world coordinates onto a cell rectangle of the screen.
type viewport struct {
	bounds geom.Rect
	area   core.Rect
}

func (v viewport) col(x float64) int {
	f := (x - v.bounds.Left()) / v.bounds.Width()
	return v.area.X + core.Clamp(int(math.Floor(f*float64(v.area.W))), 0, v.area.W-1)
}

func (v viewport) row(y float64) int {
	f := (y - v.bounds.Top()) / v.bounds.Height()
	return v.area.Y + core.Clamp(int(math.Floor(f*float64(v.area.H))), 0, v.area.H-1)
}

func (v viewport) cell(p geom.Vector) (int, int) {
	return v.col(p.X), v.row(p.Y)
}

// rect returns the cells covered by r, at least one cell.
func (v viewport) rect(r geom.Rect) core.Rect {
	x1, y1 := v.col(r.Left()), v.row(r.Top())
	x2, y2 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x1, y1, max(1, x2-x1), max(1, y2-y1))
}

// drawOrder layers scenery under buildings, combatants and effects.
var drawOrder = [...]Kind{KindResource, KindBuilding, KindMonster, KindPlayerUnit, KindEffect}

// Render draws the playfield, HUD and overlays.
func (w *World) Render(dst *core.Screen) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	hud := w.HUD()
	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-2)
	dst.DrawBoxColored(frame, core.ColorGray)
	vp := viewport{
		bounds: hud.Bounds,
		area:   frame.Inset(1),
	}

	views := w.Entities()
	for _, kind := range drawOrder {
		for _, e := range views {
			if e.Kind == kind {
				drawEntity(dst, vp, e)
			}
		}
	}
	if hud.Debug {
		w.drawDebug(dst, vp, views)
	}

	drawHUD(dst, hud)

	switch {
	case hud.GameOver:
		mid := dst.Height() / 2
		dst.DrawTextCenteredColored(mid-1, " THE CASTLE HAS FALLEN ", core.ColorBrightRed)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf(" Reached wave %d with %d kills ", hud.Wave, hud.Kills), core.ColorWhite)
		dst.DrawTextCenteredColored(mid+1, " Press N for a new siege ", core.ColorGray)
	case hud.Paused:
		dst.DrawTextCenteredColored(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func drawEntity(dst *core.Screen, vp viewport, e EntityView) {
	g, ok := glyphs[e.Type]
	if !ok {
		return
	}
	switch e.Kind {
	case KindBuilding:
		color := g.color
		if e.MaxHitPoints > 0 && e.HitPoints < e.MaxHitPoints*0.3 {
			color = core.ColorRed
		}
		dst.DrawRectColored(vp.rect(e.RenderBox), g.r, color)
	default:
		x, y := vp.cell(e.HitBox.Center)
		dst.SetColored(x, y, g.r, g.color)
	}
}

func (w *World) drawDebug(dst *core.Screen, vp viewport, views []EntityView) {
	for _, e := range views {
		switch e.Kind {
		case KindPlayerUnit, KindMonster:
			dst.DrawOutline(vp.rect(e.AwarenessBox), '·', core.ColorGray)
			x, y := vp.cell(e.HitBox.Center)
			dst.SetColored(x, y, facingGlyphs[e.Facing], glyphs[e.Type].color)
		case KindBuilding:
			dst.DrawOutline(vp.rect(e.HitBox), '#', core.ColorGray)
		}
	}
	info := fmt.Sprintf(" tick %d  entities %d  monsters %d  world %.0fx%.0f ",
		w.tick, len(w.entities), w.monsters, vp.bounds.Width(), vp.bounds.Height())
	dst.DrawTextColored(1, dst.Height()-2, info, core.ColorGray)
}

func drawHUD(dst *core.Screen, h HUD) {
	phase := fmt.Sprintf("next in %ds", int(math.Ceil(h.Countdown)))
	if h.Phase == PhaseInWave {
		phase = fmt.Sprintf("%.0f/%.0f left, %ds", math.Max(0, h.Remaining), h.Strength, int(math.Ceil(h.Countdown)))
	}
	top := fmt.Sprintf(" Wave %d (%s) │ Gold %d │ Castle %.0f/%.0f │ Units %d │ Kills %d │ x%d ",
		h.Wave, phase, h.Money, math.Max(0, h.CastleHP), h.CastleMaxHP, h.Units, h.Kills, h.GameSpeed)
	dst.DrawTextColored(0, 0, top, core.ColorBrightWhite)

	bottom := fmt.Sprintf(" [Q] Worker %d  [W] Swordsman %d  [E] Speed L%d %d  [R] Damage L%d %d  [Space] Pause  [1-4] Speed  [D] Debug",
		h.WorkerCost, h.SwordsmanCost, h.SpeedLevel, h.SpeedCost, h.DamageLevel, h.DamageCost)
	dst.DrawTextColored(0, dst.Height()-1, bottom, core.ColorGray)
}
