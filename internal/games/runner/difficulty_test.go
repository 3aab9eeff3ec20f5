package runner

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/hopline/internal/config"
)

func testSpawnConfig() config.SpawnConfig {
	return config.SpawnConfig{
		InitialRate:   0.2,
		MaxRate:       1.0,
		RateIncrease:  0.05,
		LevelRateStep: 0.1,
	}
}

// rateNear compares spawn rates with a tolerance: the baseline is a float
// sum (0.2 + 0.1 does not equal 0.3 exactly), so exact equality would fail.
func rateNear(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestDifficultyLevelBaseline(t *testing.T) {
	tests := []struct {
		level     int
		wantSpeed int
		wantRate  float64
	}{
		{1, 1, 0.2},
		{2, 2, 0.3},
		{3, 3, 0.4},
	}

	for _, tc := range tests {
		d := NewDifficulty(tc.level, testSpawnConfig(), 10*time.Second)
		if d.Speed != tc.wantSpeed {
			t.Errorf("level %d: Speed = %d, expected %d", tc.level, d.Speed, tc.wantSpeed)
		}
		if !rateNear(d.SpawnRate, tc.wantRate) {
			t.Errorf("level %d: SpawnRate = %v, expected %v", tc.level, d.SpawnRate, tc.wantRate)
		}
	}

	// Baseline itself respects the cap
	d := NewDifficulty(20, testSpawnConfig(), 10*time.Second)
	if d.SpawnRate != 1.0 {
		t.Errorf("level 20 baseline SpawnRate = %v, expected cap 1.0", d.SpawnRate)
	}
}

func TestDifficultySpeedUpTiming(t *testing.T) {
	// 20 ticks per second, 10 second interval: fires on tick 200, 400, 600
	d := NewDifficulty(1, testSpawnConfig(), 10*time.Second)
	dt := 50 * time.Millisecond

	var fired []int
	for tick := 1; tick <= 600; tick++ {
		if d.Tick(dt) {
			fired = append(fired, tick)
		}
	}

	want := []int{200, 400, 600}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("speed-up %d fired at tick %d, expected %d", i+1, fired[i], want[i])
		}
	}
	if d.SpeedUps != 3 {
		t.Errorf("SpeedUps = %d, expected 3", d.SpeedUps)
	}
}

func TestDifficultySpeedUpEffect(t *testing.T) {
	d := NewDifficulty(1, testSpawnConfig(), time.Second)

	d.Tick(time.Second)
	if d.Speed != 2 {
		t.Errorf("Speed = %d, expected 2 after one speed-up", d.Speed)
	}
	if !rateNear(d.SpawnRate, 0.25) {
		t.Errorf("SpawnRate = %v, expected 0.25", d.SpawnRate)
	}
}

func TestDifficultyMonotonicAndCapped(t *testing.T) {
	d := NewDifficulty(1, testSpawnConfig(), time.Second)

	prevSpeed, prevRate := d.Speed, d.SpawnRate
	for i := 0; i < 100; i++ {
		d.Tick(time.Second)
		if d.Speed < prevSpeed {
			t.Fatalf("speed decreased: %d -> %d", prevSpeed, d.Speed)
		}
		if d.SpawnRate < prevRate {
			t.Fatalf("spawn rate decreased: %v -> %v", prevRate, d.SpawnRate)
		}
		if d.SpawnRate > 1.0 {
			t.Fatalf("spawn rate %v exceeds cap", d.SpawnRate)
		}
		prevSpeed, prevRate = d.Speed, d.SpawnRate
	}

	if d.SpawnRate != 1.0 {
		t.Errorf("after 100 speed-ups SpawnRate = %v, expected pinned at cap", d.SpawnRate)
	}
	if d.Speed != 101 {
		t.Errorf("Speed = %d, expected 101 (unbounded)", d.Speed)
	}
}
