package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the default configuration: the original 80x24,
// 24 ticks/sec world.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:       0.05,
			BoostVelocity: -0.5,
		},
		World: World{
			Rows:     24,
			Cols:     80,
			TickRate: 24,
		},
		Obstacles: Obstacles{
			Radius:              3,
			OpeningWidth:        7,
			OpeningMinFraction:  0.25,
			OpeningSpanFraction: 0.5,
			FirstSpawnFactor:    1.2,
			SecondSpawnFactor:   1.75,
		},
		Actor: Actor{
			Column: 10,
		},
		Splash: Splash{
			DurationSeconds: 3.0,
			BarLength:       76,
			BarRow:          22,
		},
		HUD: HUD{
			ScoreAnchorColumn: 62,
			PatternSpacing:    2,
		},
	}
}
