package game

import (
	"fmt"

	"github.com/hmukelyan/flappy-term/internal/core"
)

// Glyphs for the playfield.
const (
	patternChar  = '/' // Scrolling floor/ceiling texture
	pipeWallChar = '|'
	pipeCapChar  = '='
	bodyChar     = '0'
	wingUpChar   = '/'
	wingDownChar = '\\'
)

// Render draws the current state snapshot into the screen buffer.
// It is read-only with respect to simulation state; all mutation happens
// in Step. The splash phase is rendered by the platform layer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.phase == core.PhaseSplash {
		return
	}

	g.drawFloorAndCeiling(dst)
	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}
	g.drawActor(dst)
	g.drawScore(dst)

	if g.phase == core.PhaseFailed {
		g.drawFailure(dst)
	}
}

// drawFloorAndCeiling draws the repeating texture, staggered by the frame
// counter so it appears to scroll. The ceiling stops short of the score
// display, whose extent depends on the digit counts.
func (g *Game) drawFloorAndCeiling(dst *core.Screen) {
	rows := g.world.World.Rows
	cols := g.world.World.Cols
	spacing := g.world.HUD.PatternSpacing
	ceilingEnd := g.world.HUD.ScoreAnchorColumn - g.score.CurrentDigits() - g.score.BestDigits()

	for i := g.frame % spacing; i < cols-1; i += spacing {
		if i < ceilingEnd {
			dst.SetColored(i, 0, patternChar, core.ColorGray)
		}
		dst.SetColored(i, rows-1, patternChar, core.ColorGray)
	}
}

// drawObstacle draws one pipe: vertical walls on both sides of the gap and
// horizontal caps at the gap edges. Columns off the playfield are skipped.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle) {
	rows := g.world.World.Rows
	cols := g.world.World.Cols
	top := int(o.OpeningTopRow())
	bottom := int(o.OpeningBottomRow())
	left := o.CenterColumn() - o.Radius()
	right := o.CenterColumn() + o.Radius()

	onScreen := func(col int) bool { return col >= 0 && col < cols-1 }

	// Vertical walls of the upper half.
	for y := 1; y < top; y++ {
		if onScreen(left) {
			dst.SetColored(left, y, pipeWallChar, core.ColorGreen)
		}
		if onScreen(right) {
			dst.SetColored(right, y, pipeWallChar, core.ColorGreen)
		}
	}
	// Cap across the bottom of the upper half.
	for col := left; col <= right; col++ {
		if onScreen(col) {
			dst.SetColored(col, top, pipeCapChar, core.ColorGreen)
		}
	}

	// Vertical walls of the lower half.
	for y := rows - 2; y > bottom; y-- {
		if onScreen(left) {
			dst.SetColored(left, y, pipeWallChar, core.ColorGreen)
		}
		if onScreen(right) {
			dst.SetColored(right, y, pipeWallChar, core.ColorGreen)
		}
	}
	// Cap across the top of the lower half.
	for col := left; col <= right; col++ {
		if onScreen(col) {
			dst.SetColored(col, bottom, pipeCapChar, core.ColorGreen)
		}
	}
}

// drawActor draws the multi-glyph sprite. The pose follows the sign of the
// instantaneous velocity and the wings alternate on a fixed frame cycle
// while ascending. Purely cosmetic; deterministic in (frame, velocity).
func (g *Game) drawActor(dst *core.Screen) {
	col := g.world.Actor.Column
	h := int(g.actor.Position())

	set := func(x, y int, r rune) {
		dst.SetColored(x, y, r, core.ColorYellow)
	}

	if g.actor.Descending() {
		// Gliding: wings swept up, no flap.
		set(col-1, h, wingDownChar)
		set(col-2, h-1, wingDownChar)
		set(col, h, bodyChar)
		set(col+1, h, wingUpChar)
		set(col+2, h-1, wingUpChar)
		return
	}

	// Ascending: flap on a six-frame cycle.
	if g.frame%6 < 3 {
		set(col-1, h, wingUpChar)
		set(col-2, h+1, wingUpChar)
		set(col, h, bodyChar)
		set(col+1, h, wingDownChar)
		set(col+2, h+1, wingDownChar)
	} else {
		set(col-1, h, wingDownChar)
		set(col-2, h-1, wingDownChar)
		set(col, h, bodyChar)
		set(col+1, h, wingUpChar)
		set(col+2, h-1, wingUpChar)
	}
}

// drawScore draws the score line in the top-right region. The anchor
// shifts left as either score gains digits so the text never overflows.
func (g *Game) drawScore(dst *core.Screen) {
	text := fmt.Sprintf(" Score: %d  Best: %d", g.score.Current(), g.score.Best())
	x := g.world.HUD.ScoreAnchorColumn - g.score.BestDigits() - g.score.CurrentDigits()
	dst.DrawText(x, 0, text)
}

// drawFailure draws the end-of-round prompt as a centered box over the
// final frame.
func (g *Game) drawFailure(dst *core.Screen) {
	title := "Flappy died :-("
	subtitle := "Press any key to flap again, 'q' to quit"

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
