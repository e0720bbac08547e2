package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// Phase is the game's top-level state machine state.
type Phase int

const (
	PhaseSplash Phase = iota // Intro screen with progress bar
	PhasePlaying
	PhaseFailed // Crash screen, awaiting restart/quit decision
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "Splash"
	case PhasePlaying:
		return "Playing"
	case PhaseFailed:
		return "Failed"
	case PhaseTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// GameState communicates the game's status to the platform after each tick.
type GameState struct {
	Score int   // Obstacles passed this round
	Best  int   // Best score this process run
	Phase Phase // Current state machine phase
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
