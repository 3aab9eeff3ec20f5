// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

// GameConfig contains all tunables for the runner game.
type GameConfig struct {
	Physics  PhysicsConfig `yaml:"physics"`
	Spawning SpawnConfig   `yaml:"spawning"`
	Levels   LevelsConfig  `yaml:"levels"`
	Audio    AudioConfig   `yaml:"audio"`
}

// PhysicsConfig defines gravity and jump behavior.
// Jump velocities are derived from the rise fractions and the playfield
// height at level start, not stored directly.
type PhysicsConfig struct {
	Gravity        int     `yaml:"gravity"`          // Velocity added per tick while airborne
	FirstJumpRise  float64 `yaml:"first_jump_rise"`  // Target peak of the first jump, as a fraction of play height
	SecondJumpRise float64 `yaml:"second_jump_rise"` // Target peak of the double jump, as a fraction of play height
}

// SpawnConfig defines the obstacle spawn probabilities.
type SpawnConfig struct {
	InitialRate   float64 `yaml:"initial_rate"`    // Per-tick spawn chance at level 1
	MaxRate       float64 `yaml:"max_rate"`        // Spawn chance cap
	RateIncrease  float64 `yaml:"rate_increase"`   // Added per speed-up event
	LevelRateStep float64 `yaml:"level_rate_step"` // Added per level beyond the first
}

// LevelsConfig defines level structure and pacing.
type LevelsConfig struct {
	Count            int     `yaml:"count"`               // Levels to complete for victory
	SpeedUpInterval  float64 `yaml:"speed_up_interval"`   // Seconds between speed-up events
	SpeedUpsPerLevel int     `yaml:"speed_ups_per_level"` // Speed-ups needed to clear a level
	BannerSeconds    float64 `yaml:"banner_seconds"`      // How long level/game-over banners stay up
}

// AudioConfig defines the sound engine settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`       // Master switch; the game runs silently when false
	SampleRate   int     `yaml:"sample_rate"`   // PCM sample rate for synthesis and playback
	Volume       float64 `yaml:"volume"`        // Playback volume in [0, 1]
	BlockingCues bool    `yaml:"blocking_cues"` // Make short jump/hit cues block the loop like stingers do
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset adjusts spawn pressure and pacing for a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Spawning.InitialRate = 0.15
		cfg.Levels.SpeedUpInterval = 12.0
	case PresetNormal:
		cfg.Spawning.InitialRate = 0.2
		cfg.Levels.SpeedUpInterval = 10.0
	case PresetHard:
		cfg.Spawning.InitialRate = 0.3
		cfg.Levels.SpeedUpInterval = 8.0
	}
}
