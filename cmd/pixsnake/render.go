package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixsnake/internal/engine"
	"github.com/vovakirdan/pixsnake/internal/level"
)

var renderCmd = &cobra.Command{
	Use:   "render [level]",
	Short: "Print a level's starting board",
	Long: `Builds the level and prints its starting board as ASCII, for checking
level files without playing them.

Legend:
  #  wall
  o  body
  <>^v  head, by direction
  *  pickup
  .  empty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with level YAML files")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("level-dir") {
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

	g, err := lvl.NewGame(cfg.Game.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s) %dx%d\n", lvl.Name, lvl.ID, lvl.Width, lvl.Height)
	fmt.Println(g.String())
	fmt.Printf("%d free cells, head %c at %v moving %s\n",
		g.Board().Count(engine.BackgroundColor), engine.Glyph(g.ColorAt(g.Head())), g.Head(), g.Direction())
	return nil
}
