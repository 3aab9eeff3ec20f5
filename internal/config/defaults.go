package config

import (
	_ "embed"
)

//go:embed defaults/hopline.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:        1,
			FirstJumpRise:  0.18,
			SecondJumpRise: 0.36,
		},
		Spawning: SpawnConfig{
			InitialRate:   0.2,
			MaxRate:       1.0,
			RateIncrease:  0.05,
			LevelRateStep: 0.1,
		},
		Levels: LevelsConfig{
			Count:            3,
			SpeedUpInterval:  10.0,
			SpeedUpsPerLevel: 3,
			BannerSeconds:    3.0,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			Volume:       0.7,
			BlockingCues: false,
		},
	}
}
