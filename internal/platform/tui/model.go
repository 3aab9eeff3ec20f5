package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopline/internal/audio"
	"github.com/vovakirdan/hopline/internal/core"
	"github.com/vovakirdan/hopline/internal/registry"
)

// Sound bundles the audio engine with everything the model needs to
// turn gameplay events into playback.
type Sound struct {
	Engine     *audio.Engine
	Cues       audio.Cues
	SampleRate int

	// BlockingCues makes jump and hit cues suspend the loop for their
	// duration, like the stingers always do.
	BlockingCues bool

	// TrackSeconds is the length of the per-level background track.
	TrackSeconds float64
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	sound      Sound
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, sound Sound, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sound.Engine == nil {
		sound.Engine = audio.NewDisabledEngine()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		sound:      sound,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.sound.Engine.Close()
		return m, tea.Quit

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The bottom line is reserved
// for the help footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - 1
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatchAudio(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// dispatchAudio plays the sounds for this tick's gameplay events.
// Stingers block until they finish, stalling the tick loop on purpose so
// level transitions and game over land as a beat, not a flicker.
func (m Model) dispatchAudio(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventJump, core.EventDoubleJump:
			m.playCue(m.sound.Cues.Jump)

		case core.EventHit:
			m.playCue(m.sound.Cues.Hit)

		case core.EventLevelStart:
			m.startBackground()

		case core.EventLevelComplete, core.EventVictory:
			m.sound.Engine.StopBackground()
			m.sound.Engine.PlayBlocking(m.sound.Cues.Win)

		case core.EventGameOver:
			m.sound.Engine.StopBackground()
			m.sound.Engine.PlayBlocking(m.sound.Cues.Fail)
		}
	}
}

func (m Model) playCue(tone audio.Tone) {
	if m.sound.BlockingCues {
		m.sound.Engine.PlayBlocking(tone)
		return
	}
	m.sound.Engine.Play(tone)
}

// startBackground composes and starts the background track for the level
// that just began. The track seed derives from the game seed and the level,
// so a restarted level replays the same melody.
func (m Model) startBackground() {
	level := m.gameState.Level
	if level < 1 {
		level = 1
	}

	target := time.Duration(m.sound.TrackSeconds * float64(time.Second))
	if target <= 0 {
		return
	}

	rng := rand.New(rand.NewSource(m.config.Seed + int64(level)))
	track := audio.BackgroundTrack(level, target, m.sound.SampleRate, rng)
	m.sound.Engine.PlayBackground(track)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, sound Sound, cfg core.RuntimeConfig) error {
	model := NewModel(game, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
