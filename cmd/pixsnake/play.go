package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixsnake/internal/config"
	"github.com/vovakirdan/pixsnake/internal/level"
	"github.com/vovakirdan/pixsnake/internal/registry"
	"github.com/vovakirdan/pixsnake/internal/storage"
)

var (
	flagFrontend   string
	flagLevelDir   string
	flagDifficulty string
	flagSpeed      int
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The level is a built-in ID, an ID found in
--level-dir, or a path to a level file.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart (after game over)
  ?            - Color legend
  Q/Esc        - Quit

Difficulty options:
  easy   - 1 tick per second, speeds up with score
  normal - 2 ticks per second, speeds up with score
  hard   - 4 ticks per second, speeds up with score
  insane - 8 ticks per second, speeds up with score
  fixed  - No speed-up, uses --speed or the config's speed

Examples:
  pixsnake play
  pixsnake play cross --difficulty easy
  pixsnake play ./maze.yaml --frontend tcell --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Display frontend: tui, tcell")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with level YAML files")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane, fixed")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Engine ticks per second")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Chime when a pickup is eaten")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}
	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Game.Speed = flagSpeed
	}
	if flags.Changed("sound") {
		cfg.Game.Sound = flagSound
	}
	if flags.Changed("frontend") {
		cfg.Game.Frontend = flagFrontend
	}
	if flags.Changed("level-dir") {
		cfg.Game.LevelDir = flagLevelDir
	}

	ref := cfg.Game.Level
	if len(args) > 0 {
		ref = args[0]
	}
	lvl, err := level.Resolve(ref, cfg.Game.LevelDir)
	if err != nil {
		return err
	}
	if cfg.Game.Scale <= 0 {
		cfg.Game.Scale = autoScale(lvl)
	}

	fe, err := registry.Create(cfg.Game.Frontend)
	if err != nil {
		return fmt.Errorf("%w (run 'pixsnake frontends' to list them)", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Open the session scoreboard
	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	s := registry.NewSession(lvl, cfg.Runtime())
	s.Difficulty = cfg.Difficulty
	s.Store = store
	s.Logger = logger

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", fe.ID(), "level", lvl.ID,
		"fps", s.Runtime.FPS, "speed", s.Runtime.Speed, "scale", s.Runtime.Scale)
	runErr := fe.Run(ctx, s)

	printSummary(s, store)

	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("running %s: %w", fe.ID(), runErr)
	}
	return nil
}

// loadConfig reads the settings file and applies the global flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	return cfg, nil
}

// autoScale picks the largest pixel scale at which the board and a few lines
// of status fit the terminal.
func autoScale(lvl level.Level) int {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	byWidth := width / (2 * lvl.Width)
	byHeight := (height - 6) / lvl.Height
	return max(min(byWidth, byHeight), 1)
}

// printSummary reports the last game and the session totals on stdout.
func printSummary(s *registry.Session, store *storage.Store) {
	res, ok := s.Last()
	if !ok {
		return
	}

	fmt.Printf("%s: score %d, length %d\n", s.Level.Name, res.Score, res.Length)
	if store == nil {
		fmt.Printf("Session: %d games\n", s.Rounds())
		return
	}

	stats, err := store.Stats(s.Level.ID)
	if err != nil {
		return
	}
	fmt.Printf("Session: %d games, best %d, average %.1f, longest snake %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.MaxLength)
}
