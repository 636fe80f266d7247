package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixsnake/internal/glyph"
	"github.com/vovakirdan/pixsnake/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels and, with --level-dir, the level files
found there. A file level with a built-in ID replaces the built-in one.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := level.All(flagLevelDir)
	if err != nil {
		return err
	}

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for _, l := range levels {
		source := "built-in"
		if !l.Builtin() {
			source = l.FilePath
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, size, source)
	}

	fmt.Println()
	fmt.Printf("Text walls can use: %s\n", string(glyph.Supported()))
	fmt.Println("Run 'pixsnake play <id>' to play a level.")
	return nil
}
