package balloons

import (
	"fmt"
	"math"

	"github.com/vovakirdan/balloon-climber/internal/config"
	"github.com/vovakirdan/balloon-climber/internal/core"
	"github.com/vovakirdan/balloon-climber/internal/entity"
	"github.com/vovakirdan/balloon-climber/internal/world"
)

// Screen layout: one HUD row on top, the ground on the last row, and the
// world scaled into everything in between.
const hudRows = 1

// Visual characters for rendering
const (
	BalloonChar = '█'
	StringChar  = '│'
	EnemyChar   = '▒'
	GroundChar  = '▀'
	MidlineChar = '┄'
)

// Player sprites, three rows each, drawn centered in the player's box.
var playerSprites = map[entity.Anim][3]string{
	entity.AnimStanding: {` o `, `/|\`, `/ \`},
	entity.AnimJumping:  {` o/`, `/| `, `/ \`},
	entity.AnimGrabbing: {`\o/`, ` | `, `/ \`},
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64 // world units per cell
	top    int     // first play row
	w, h   int     // play area in cells
}

func newViewport(wc config.WorldConfig, screenW, screenH int) viewport {
	w := max(screenW, 1)
	h := max(screenH-hudRows-1, 1)
	return viewport{
		sx:  wc.Width / float64(w),
		sy:  wc.Height / float64(h),
		top: hudRows,
		w:   w,
		h:   h,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y/v.sy))
}

// visible reports whether a row belongs to the play area.
func (v viewport) visible(row int) bool {
	return row >= v.top && row < v.top+v.h
}

// toWorld maps a screen cell to the world point at its center.
func (v viewport) toWorld(col, row float64) (float64, float64) {
	return (col + 0.5) * v.sx, (row - float64(v.top) + 0.5) * v.sy
}

func (g *Game) viewport() viewport {
	return newViewport(g.cfg.World, g.viewW, g.viewH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	g.viewW, g.viewH = dst.Width(), dst.Height()
	v := g.viewport()
	snap := g.world.Snapshot()

	if mid := v.row(g.cfg.World.Midline); v.visible(mid) && g.debug {
		dst.DrawHLine(0, mid, dst.Width(), MidlineChar, core.ColorDarkGray)
	}

	for _, e := range snap.Entities {
		switch e.Kind {
		case entity.KindBalloon:
			g.drawBalloon(dst, v, e)
		case entity.KindEnemy:
			drawEnemy(dst, v, e)
		default:
			panic(fmt.Sprintf("balloons: cannot render %s", e.Kind))
		}
	}
	drawPlayer(dst, v, snap.Player)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGreen)
	g.drawHUD(dst, snap)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.State == world.StateFalling:
		drawCenteredMessage(dst, "YOU FELL", fmt.Sprintf("Score: %d  |  Press R to skip", snap.LastScore))
	}

	if g.debug {
		g.drawDebug(dst, snap)
	}
}

func (g *Game) drawBalloon(dst *core.Screen, v viewport, b world.View) {
	color := core.BalloonPalette[int(b.Handle)%len(core.BalloonPalette)]
	if b.State == entity.BalloonRising && b.Progress > 0.9 {
		color = core.ColorBrightRed
	}

	r := b.Radius
	for row := v.row(b.Y - r); row <= v.row(b.Y+r); row++ {
		if !v.visible(row) {
			continue
		}
		for col := v.col(b.X - r); col <= v.col(b.X+r); col++ {
			wx, wy := v.toWorld(float64(col), float64(row))
			dx, dy := (wx-b.X)/r, (wy-b.Y)/r
			if dx*dx+dy*dy <= 1 {
				dst.SetColored(col, row, BalloonChar, color)
			}
		}
	}

	col := v.col(b.X)
	for row := v.row(b.Y + r); row < v.row(b.Bounds.HighY); row++ {
		if v.visible(row) && dst.Get(col, row) == ' ' {
			dst.SetColored(col, row, StringChar, core.ColorGray)
		}
	}
}

func drawEnemy(dst *core.Screen, v viewport, e world.View) {
	x0, y0 := v.col(e.Bounds.LowX), v.row(e.Bounds.LowY)
	x1, y1 := max(v.col(e.Bounds.HighX), x0+1), max(v.row(e.Bounds.HighY), y0+1)
	for row := y0; row < y1; row++ {
		if !v.visible(row) {
			continue
		}
		for col := x0; col < x1; col++ {
			dst.SetColored(col, row, EnemyChar, core.ColorRed)
		}
	}
}

func drawPlayer(dst *core.Screen, v viewport, p world.View) {
	sprite := playerSprites[p.Anim]
	x0, x1 := v.col(p.Bounds.LowX), v.col(p.Bounds.HighX)
	y0, y1 := v.row(p.Bounds.LowY), v.row(p.Bounds.HighY)

	left := x0 + (x1-x0-3)/2
	top := max(y1-3, y0)
	for i, line := range sprite {
		row := top + i
		if !v.visible(row) {
			continue
		}
		for j, r := range []rune(line) {
			if r != ' ' {
				dst.SetColored(left+j, row, r, core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap world.Snapshot) {
	alt := int(snap.Altitude - g.world.Baseline())
	hud := fmt.Sprintf(" ALT %5d  SCORE %3d  BEST %3d", alt, snap.Score, snap.Highest)
	if snap.LastScore > 0 || g.lastRun > 0 {
		hud += fmt.Sprintf("  LAST %d (%.1fs)", snap.LastScore, g.lastRun.Seconds())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	if g.popFlash > 0 {
		dst.DrawTextColored(dst.Width()-6, 0, "POP!", core.ColorPink)
	}
}

func (g *Game) drawDebug(dst *core.Screen, snap world.Snapshot) {
	lines := []string{
		fmt.Sprintf("vx %.1f vy %.1f hp %d", snap.PlayerVX, snap.PlayerVY, snap.Hitpoints),
		fmt.Sprintf("entities %d  pops %d", len(snap.Entities), g.pops),
		fmt.Sprintf("next %.0f  enemy %.0f  lvl %.2f", snap.SpawnInterval, snap.EnemySpacing, snap.DifficultyLevel),
	}
	y := dst.Height() - 1 - len(lines)
	for i, line := range lines {
		dst.DrawTextColored(1, y+i, line, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
