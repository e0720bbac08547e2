// Package game implements the side-scrolling obstacle game: a bird falls
// under gravity and must thread through gapped pipes scrolling leftward
// across a fixed character grid. The package is pure simulation; input
// arrives as semantic actions and output is drawn into a screen buffer,
// so the logic runs headless in tests.
package game

import (
	"math/rand"

	"github.com/hmukelyan/flappy-term/internal/config"
	"github.com/hmukelyan/flappy-term/internal/core"
)

// Game owns all simulation state and drives the state machine
// Splash -> Playing -> Failed -> (Playing | Terminated).
type Game struct {
	cfg   core.RuntimeConfig
	world config.Config
	rng   *rand.Rand

	actor     *Actor
	obstacles [2]*Obstacle
	score     ScoreTracker
	phase     core.Phase

	frame       int // Frames since Reset, drives scroll and flap animation
	splashTicks int
	splashTotal int
}

// New creates a game with the given world constants.
func New(world config.Config) *Game {
	return &Game{world: world}
}

// Reset initializes the game for a fresh process-level start: seeds the
// RNG, arms the splash countdown, and sets up the first round. The best
// score survives only within one Game value.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frame = 0
	g.splashTicks = 0
	g.splashTotal = int(g.world.Splash.DurationSeconds * float64(cfg.TickRate))
	g.phase = core.PhaseSplash
	g.startRound()
}

// startRound resets the actor, obstacles, and round score for a new round.
func (g *Game) startRound() {
	g.actor = NewActor(g.world.Physics.Gravity, g.world.Physics.BoostVelocity)
	g.actor.Spawn(float64(g.world.World.Rows / 2))

	cols := g.world.World.Cols
	first := int(g.world.Obstacles.FirstSpawnFactor * float64(cols-1))
	second := int(g.world.Obstacles.SecondSpawnFactor * float64(cols-1))
	g.obstacles[0] = NewObstacle(first, g.world.Obstacles, g.world.World, g.rng)
	g.obstacles[1] = NewObstacle(second, g.world.Obstacles, g.world.World, g.rng)

	g.score.ResetCurrent()
}

// Step advances the simulation by one fixed tick. At most one input event
// is consumed per tick; quit dominates everything else.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseSplash:
		if in.Has(core.ActionQuit) {
			g.phase = core.PhaseTerminated
			break
		}
		g.splashTicks++
		if g.splashTicks >= g.splashTotal {
			g.phase = core.PhasePlaying
		}

	case core.PhasePlaying:
		if in.Has(core.ActionQuit) {
			// Quitting is not a failure: the best score is not folded.
			g.phase = core.PhaseTerminated
			break
		}

		// A boost restarts the arc in place of the tick advance.
		if in.Has(core.ActionFlap) {
			g.actor.Boost()
		} else {
			g.actor.AdvanceTick()
		}

		for _, o := range g.obstacles {
			if o.Advance() {
				g.score.Pass()
			}
		}

		if g.crashed() {
			g.score.Fold()
			g.phase = core.PhaseFailed
		}

	case core.PhaseFailed:
		if in.Has(core.ActionQuit) {
			g.phase = core.PhaseTerminated
			break
		}
		if in.Has(core.ActionRestart) {
			g.startRound()
			g.phase = core.PhasePlaying
		}

	case core.PhaseTerminated:
		// Terminal; nothing to do.
	}

	if g.phase != core.PhaseTerminated {
		g.frame++
	}
	return core.StepResult{State: g.State()}
}

// crashed checks the post-advance snapshot against bounds and both
// obstacles.
func (g *Game) crashed() bool {
	pos := g.actor.Position()
	if HitsBounds(pos, g.world.World.Rows) {
		return true
	}
	for _, o := range g.obstacles {
		if HitsObstacle(pos, g.world.Actor.Column, o) {
			return true
		}
	}
	return false
}

// SplashProgress returns the splash countdown completion in [0, 1].
func (g *Game) SplashProgress() float64 {
	if g.splashTotal <= 0 {
		return 1
	}
	p := float64(g.splashTicks) / float64(g.splashTotal)
	if p > 1 {
		p = 1
	}
	return p
}

// Phase returns the current state machine phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score.Current(),
		Best:  g.score.Best(),
		Phase: g.phase,
	}
}
