package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	lvl, err := ParseDir(data, filepath.Dir(path))
	if err != nil {
		return Level{}, fmt.Errorf("level: parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s in %s", ErrNotFound, id, l.Root)
}

// Resolve finds a level by reference: a path to a level file, an ID in dir
// (if dir is set) or a built-in ID, in that order.
func Resolve(ref, dir string) (Level, error) {
	if isSupportedExtension(filepath.Ext(ref)) {
		if _, err := os.Stat(ref); err == nil {
			return NewLoader(filepath.Dir(ref)).LoadFile(ref)
		}
	}

	if dir != "" {
		lvl, err := NewLoader(dir).LoadByID(ref)
		if err == nil {
			return lvl, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Level{}, err
		}
	}

	return Lookup(ref)
}

// All returns the built-in levels followed by the levels found in dir.
// File levels with a built-in ID shadow the built-in one.
func All(dir string) ([]Level, error) {
	builtin := Builtin()
	if dir == "" {
		return builtin, nil
	}

	files, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	out := slices.DeleteFunc(builtin, func(b Level) bool {
		return slices.ContainsFunc(files, func(f Level) bool { return f.ID == b.ID })
	})
	return append(out, files...), nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(ext))
}
