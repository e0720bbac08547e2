// Package config provides YAML-based world-constant loading for the game.
package config

// Config contains all tunable world constants for the game.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	World     World     `yaml:"world"`
	Obstacles Obstacles `yaml:"obstacles"`
	Actor     Actor     `yaml:"actor"`
	Splash    Splash    `yaml:"splash"`
	HUD       HUD       `yaml:"hud"`
}

// Physics defines the kinematic constants.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per tick²
	BoostVelocity float64 `yaml:"boost_velocity"` // Velocity at a flap (negative = up)
}

// World defines the playfield grid and pacing.
type World struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	TickRate int `yaml:"tick_rate"` // Target simulation ticks per second
}

// Obstacles defines pipe geometry and spawn placement.
type Obstacles struct {
	Radius              int     `yaml:"radius"`                // Half-width of each pipe in columns
	OpeningWidth        int     `yaml:"opening_width"`         // Vertical extent of the passable gap
	OpeningMinFraction  float64 `yaml:"opening_min_fraction"`  // Lower bound of the opening-center draw
	OpeningSpanFraction float64 `yaml:"opening_span_fraction"` // Width of the opening-center draw range
	FirstSpawnFactor    float64 `yaml:"first_spawn_factor"`    // Initial center of pipe 1, times (cols-1)
	SecondSpawnFactor   float64 `yaml:"second_spawn_factor"`   // Initial center of pipe 2, times (cols-1)
}

// Actor defines the bird's fixed placement.
type Actor struct {
	Column int `yaml:"column"` // The bird never leaves this column
}

// Splash defines the intro screen timing and progress bar geometry.
type Splash struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	BarLength       int     `yaml:"bar_length"`
	BarRow          int     `yaml:"bar_row"`
}

// HUD defines score display layout.
type HUD struct {
	ScoreAnchorColumn int `yaml:"score_anchor_column"` // Score text ends near this column
	PatternSpacing    int `yaml:"pattern_spacing"`     // Columns between floor/ceiling glyphs
}
