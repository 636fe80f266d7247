package level

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels compiled into the binary, sorted by ID.
// It panics if an embedded level is malformed, which only a broken build can cause.
func Builtin() []Level {
	entries, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		panic(fmt.Sprintf("level: listing built-in levels: %v", err))
	}

	levels := make([]Level, 0, len(entries))
	for _, name := range entries {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("level: reading %s: %v", name, err))
		}
		lvl, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("level: parsing %s: %v", name, err))
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels
}

// Lookup returns the built-in level with the given ID.
func Lookup(id string) (Level, error) {
	for _, lvl := range Builtin() {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
