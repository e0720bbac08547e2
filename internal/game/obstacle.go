package game

import (
	"math/rand"

	"github.com/hmukelyan/flappy-term/internal/config"
)

// Obstacle is one gapped vertical pipe scrolling leftward across the
// playfield. Obstacles are never destroyed: when one leaves the screen on
// the left it wraps back to just beyond the right edge with a freshly
// drawn opening, and that wrap is the moment the player is credited with
// passing it.
type Obstacle struct {
	openingFraction float64 // Opening center as a fraction of playfield height
	centerColumn    int     // Current horizontal position of the pipe center

	radius       int
	openingWidth int
	numRows      int
	numCols      int
	openingMin   float64 // Lower bound of the opening-fraction draw
	openingSpan  float64 // Width of the opening-fraction draw range

	rng *rand.Rand
}

// NewObstacle creates an obstacle centered at the given column with a
// randomly drawn opening. The RNG is injected so rounds are reproducible
// from a seed.
func NewObstacle(centerColumn int, obs config.Obstacles, world config.World, rng *rand.Rand) *Obstacle {
	o := &Obstacle{
		centerColumn: centerColumn,
		radius:       obs.Radius,
		openingWidth: obs.OpeningWidth,
		numRows:      world.Rows,
		numCols:      world.Cols,
		openingMin:   obs.OpeningMinFraction,
		openingSpan:  obs.OpeningSpanFraction,
		rng:          rng,
	}
	o.openingFraction = o.rollOpening()
	return o
}

// Advance moves the obstacle one column left, wrapping it to the right
// edge first if it has fully left the screen. It reports whether the
// obstacle wrapped this tick, i.e. whether the player passed it.
// The decrement is unconditional; the wrap check precedes it.
func (o *Obstacle) Advance() bool {
	passed := false
	if o.centerColumn+o.radius < 0 {
		o.centerColumn = o.numCols + o.radius
		o.openingFraction = o.rollOpening()
		passed = true
	}
	o.centerColumn--
	return passed
}

// rollOpening draws a fresh opening-center fraction from
// [openingMin, openingMin+openingSpan).
func (o *Obstacle) rollOpening() float64 {
	return o.rng.Float64()*o.openingSpan + o.openingMin
}

// OpeningTopRow returns the row of the top edge of the passable gap.
func (o *Obstacle) OpeningTopRow() float64 {
	return o.openingFraction*float64(o.numRows-1) - float64(o.openingWidth)/2
}

// OpeningBottomRow returns the row of the bottom edge of the passable gap.
func (o *Obstacle) OpeningBottomRow() float64 {
	return o.openingFraction*float64(o.numRows-1) + float64(o.openingWidth)/2
}

// CenterColumn returns the obstacle's current horizontal center.
func (o *Obstacle) CenterColumn() int {
	return o.centerColumn
}

// Radius returns the obstacle's half-width in columns.
func (o *Obstacle) Radius() int {
	return o.radius
}

// OpeningFraction returns the opening center as a fraction of playfield
// height.
func (o *Obstacle) OpeningFraction() float64 {
	return o.openingFraction
}
