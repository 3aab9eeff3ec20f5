package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopline/internal/audio"
	"github.com/vovakirdan/hopline/internal/config"
	"github.com/vovakirdan/hopline/internal/core"
	"github.com/vovakirdan/hopline/internal/games/runner"
	"github.com/vovakirdan/hopline/internal/platform/tui"
	"github.com/vovakirdan/hopline/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: runner).

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space/Up/W - Jump (press again mid-air for double jump)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Sparser obstacles, slower speed-ups
  normal - Default pacing
  hard   - Denser obstacles, faster speed-ups

Examples:
  hopline play
  hopline play runner_endless
  hopline play --difficulty easy
  hopline play --config ./my-hopline.yaml --no-sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable all audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "runner"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hopline list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size; the bottom line is reserved for the help footer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	height--

	if err := runner.Validate(width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation; the game loads its
	// own config on Reset, this copy only drives the audio setup
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	gcfg, err := config.Load(flagConfig)
	if err != nil {
		log.Warn("could not load config, using defaults", "err", err)
		gcfg = config.Default()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	sound := setupSound(gcfg)
	defer sound.Engine.Close()

	if runErr := tui.Run(game, sound, rcfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// setupSound opens the audio device per the game config. On any failure the
// game runs silent instead of refusing to start.
func setupSound(gcfg config.GameConfig) tui.Sound {
	sound := tui.Sound{
		Engine:       audio.NewDisabledEngine(),
		SampleRate:   gcfg.Audio.SampleRate,
		BlockingCues: gcfg.Audio.BlockingCues,
		TrackSeconds: gcfg.Levels.SpeedUpInterval * float64(gcfg.Levels.SpeedUpsPerLevel),
	}

	if flagNoSound || !gcfg.Audio.Enabled {
		log.Debug("audio disabled")
		return sound
	}

	start := time.Now()
	engine, err := audio.NewEngine(gcfg.Audio.SampleRate, gcfg.Audio.Volume)
	if err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
		return sound
	}
	log.Debug("audio device ready", "sampleRate", gcfg.Audio.SampleRate, "took", time.Since(start))

	sound.Engine = engine
	sound.Cues = audio.NewCues(gcfg.Audio.SampleRate)
	return sound
}
