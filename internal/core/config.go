package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level    int  // Current level (1-based; 0 when the game has no levels)
	Lives    int  // Remaining lives
	Score    int  // Current score (ticks survived in endless mode)
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in victory
	Paused   bool // Whether the game is paused
}

// Event is a notable gameplay occurrence emitted by a simulation tick.
// The platform maps events to sound cues and stingers; the game itself
// stays free of audio dependencies.
type Event int

const (
	EventJump          Event = iota // First jump left the ground
	EventDoubleJump                 // Mid-air second jump
	EventHit                        // Player collided with an obstacle
	EventLevelStart                 // A new level began (starts background track)
	EventLevelComplete              // Level finished after the required speed-ups
	EventGameOver                   // Collision with zero lives remaining
	EventVictory                    // Final level completed
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
