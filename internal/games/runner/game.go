// Package runner implements a side-scrolling obstacle-avoidance game.
// The player moves along a lane and jumps (single or double) over incoming
// obstacles while periodic speed-ups raise the difficulty; surviving three
// speed-ups clears a level, and clearing every level wins the campaign.
package runner

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hopline/internal/config"
	"github.com/vovakirdan/hopline/internal/core"
	"github.com/vovakirdan/hopline/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '^'
	ObstacleChar = '-'
)

// Minimum playable terminal size. Anything smaller cannot fit the border,
// the status line and a jumpable play band.
const (
	MinWidth  = 24
	MinHeight = 10
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// phase is the current stage of the session state machine.
type phase int

const (
	phasePlaying    phase = iota
	phaseLevelClear       // level banner showing, next level queued
	phaseGameOver
	phaseVictory
)

// Game implements the runner. One instance carries a whole session:
// it sequences levels, carries lives forward and decides win/loss.
type Game struct {
	mode    Mode
	cfg     config.GameConfig
	hasCfg  bool
	runtime core.RuntimeConfig
	tickDur time.Duration

	level   int
	lives   int
	carried int
	score   int

	player *Player
	stream *Stream
	diff   *Difficulty

	phase       phase
	bannerTicks int
	paused      bool
	gameOver    bool
	won         bool
	tooSmall    bool
	tickCount   int

	pending []core.Event
}

// Package-level variables for CLI configuration, set before game creation.
var (
	configPath       string
	difficultyPreset config.Preset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.PresetEasy
	case "normal":
		difficultyPreset = config.PresetNormal
	case "hard":
		difficultyPreset = config.PresetHard
	default:
		difficultyPreset = ""
	}
}

// New creates a campaign game that loads its config on Reset.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless survival game: no level completion, a single
// life, score counts ticks survived.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithConfig creates a campaign game with a fixed config, bypassing the
// loader. Used by tests and embedding callers.
func NewWithConfig(cfg config.GameConfig) *Game {
	return &Game{mode: ModeCampaign, cfg: cfg, hasCfg: true}
}

// Validate checks that a terminal of the given size can host the game.
// Called before the loop starts so a cramped terminal is reported as a
// normal error instead of broken rendering mid-game.
func Validate(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("runner: terminal %dx%d is too small, need at least %dx%d",
			width, height, MinWidth, MinHeight)
	}
	return nil
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "runner_endless"
	}
	return "runner"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hopline (endless)"
	}
	return "Hopline"
}

// Reset initializes or restarts the whole session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickDur = time.Second / time.Duration(runtime.TickRate)

	if !g.hasCfg {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.Default()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.level = 1
	g.carried = 0
	g.score = 0
	g.phase = phasePlaying
	g.paused = false
	g.gameOver = false
	g.won = false
	g.tickCount = 0
	g.pending = nil
	g.tooSmall = Validate(runtime.ScreenW, runtime.ScreenH) != nil

	if !g.tooSmall {
		g.startLevel()
	}
}

// startLevel seeds the per-level state: lives are one plus whatever survived
// the previous level, speed and spawn rate restart from the level baseline.
func (g *Game) startLevel() {
	g.lives = 1 + g.carried
	g.player = NewPlayer(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Physics.Gravity,
		g.cfg.Physics.FirstJumpRise, g.cfg.Physics.SecondJumpRise)
	g.stream = NewStream(g.runtime.Seed+int64(g.level), g.runtime.ScreenW, g.runtime.ScreenH)
	g.diff = NewDifficulty(g.level, g.cfg.Spawning,
		time.Duration(g.cfg.Levels.SpeedUpInterval*float64(time.Second)))
	g.phase = phasePlaying
	g.pending = append(g.pending, core.EventLevelStart)
}

// Step advances the game by one tick. The per-tick order is fixed:
// difficulty, input, gravity, obstacle advance and collision. Collision
// detection must see the same-tick player position, so no reordering.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.pending
	g.pending = nil
	g.tickCount++

	if g.phase == phaseLevelClear {
		g.bannerTicks--
		if g.bannerTicks <= 0 {
			g.level++
			g.startLevel()
			events = append(events, g.drainPending()...)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	// Difficulty first: a level can complete before this tick's input is read
	if g.diff.Tick(g.tickDur) && g.mode == ModeCampaign &&
		g.diff.SpeedUps >= g.cfg.Levels.SpeedUpsPerLevel {
		return g.completeLevel(events)
	}

	// Input
	if in.Has(core.ActionLeft) {
		g.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.player.MoveRight()
	}
	if in.Has(core.ActionJump) {
		switch g.player.Jump() {
		case JumpFirst:
			events = append(events, core.EventJump)
		case JumpDouble:
			events = append(events, core.EventDoubleJump)
		}
	}

	// Gravity
	g.player.StepGravity()

	// Obstacles: spawn, advance, prune, collide
	hits := g.stream.Tick(g.diff.SpawnRate, g.diff.Speed, g.player.X, g.player.Y)
	for i := 0; i < hits; i++ {
		events = append(events, core.EventHit)
		if g.lives > 0 {
			g.lives--
			continue
		}
		g.gameOver = true
		g.phase = phaseGameOver
		events = append(events, core.EventGameOver)
		break
	}

	if !g.gameOver {
		g.score++
	}

	return core.StepResult{State: g.State(), Events: events}
}

// completeLevel handles the three-speed-ups completion condition: either
// the session moves to a level banner or, after the final level, to victory.
func (g *Game) completeLevel(events []core.Event) core.StepResult {
	g.carried = g.lives

	if g.level >= g.cfg.Levels.Count {
		g.won = true
		g.gameOver = true
		g.phase = phaseVictory
		events = append(events, core.EventVictory)
	} else {
		g.phase = phaseLevelClear
		g.bannerTicks = int(g.cfg.Levels.BannerSeconds * float64(g.runtime.TickRate))
		events = append(events, core.EventLevelComplete)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) drainPending() []core.Event {
	ev := g.pending
	g.pending = nil
	return ev
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := g.level
	if g.mode == ModeEndless {
		level = 0
	}
	return core.GameState{
		Level:    level,
		Lives:    g.lives,
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("runner", func() registry.Game {
		return New()
	})
	registry.Register("runner_endless", func() registry.Game {
		return NewEndless()
	})
}
