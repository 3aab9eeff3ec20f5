package runner

import (
	"time"

	"github.com/vovakirdan/hopline/internal/config"
	"github.com/vovakirdan/hopline/internal/core"
)

// Difficulty tracks speed and spawn pressure for one level.
// It runs on simulated time (tick count times the tick period) so gameplay
// is deterministic and pacing does not drift with render hiccups.
// Speed and SpawnRate never decrease within a level; SpawnRate is capped.
type Difficulty struct {
	Speed     int     // Obstacle columns per tick
	SpawnRate float64 // Per-tick spawn chance, capped at maxRate
	SpeedUps  int     // Speed-up events fired this level

	maxRate      float64
	rateIncrease float64
	interval     time.Duration
	sinceSpeedUp time.Duration
}

// NewDifficulty seeds the controller for a level: speed starts at the level
// number and the spawn rate gets a per-level head start on top of the base.
func NewDifficulty(level int, spawn config.SpawnConfig, interval time.Duration) *Difficulty {
	return &Difficulty{
		Speed:        level,
		SpawnRate:    core.ClampF(spawn.InitialRate+spawn.LevelRateStep*float64(level-1), 0, spawn.MaxRate),
		maxRate:      spawn.MaxRate,
		rateIncrease: spawn.RateIncrease,
		interval:     interval,
	}
}

// Tick advances the simulated clock by one tick period and fires a speed-up
// event when the interval has elapsed: speed +1, spawn rate up by the fixed
// increment (capped), and the clock restarts. Returns true when it fired.
func (d *Difficulty) Tick(dt time.Duration) bool {
	d.sinceSpeedUp += dt
	if d.sinceSpeedUp < d.interval {
		return false
	}

	d.Speed++
	d.SpawnRate = core.ClampF(d.SpawnRate+d.rateIncrease, 0, d.maxRate)
	d.SpeedUps++
	d.sinceSpeedUp = 0
	return true
}
