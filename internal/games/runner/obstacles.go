package runner

import (
	"math/rand"
)

// Obstacle is a single-cell hazard scrolling right to left.
type Obstacle struct {
	Row int
	Col int
}

// Stream maintains the set of active obstacles for one level.
// It owns its RNG so obstacle placement is deterministic per seed.
type Stream struct {
	obstacles []Obstacle
	rng       *rand.Rand
	width     int
	height    int
}

// NewStream creates an empty obstacle stream for the given playfield.
func NewStream(seed int64, width, height int) *Stream {
	return &Stream{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		width:     width,
		height:    height,
	}
}

// Tick runs one simulation step: a Bernoulli spawn trial, advancing every
// obstacle left by the current speed, pruning off-screen obstacles, and
// resolving collisions against the player position. Each colliding obstacle
// is removed and counted; several can hit in the same tick.
func (s *Stream) Tick(spawnRate float64, speed, playerX, playerY int) int {
	// Spawn at the right edge on a random playable row
	if s.rng.Float64() < spawnRate {
		s.obstacles = append(s.obstacles, Obstacle{
			Row: 1 + s.rng.Intn(s.height-2),
			Col: s.width - 2,
		})
	}

	// Advance and prune in one filtering pass
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Col -= speed
		if o.Col > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	// Collision pass builds a fresh retained set rather than deleting
	// mid-iteration
	hits := 0
	kept = s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Col == playerX && o.Row == playerY {
			hits++
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	return hits
}

// Obstacles returns the current active set for rendering.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Count returns the number of active obstacles.
func (s *Stream) Count() int {
	return len(s.obstacles)
}
