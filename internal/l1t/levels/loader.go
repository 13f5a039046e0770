// Package levels provides level loading functionality for l1t.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/l1t/core"
	"github.com/vovakirdan/l1t/internal/l1t/levels/builtin"
	"github.com/vovakirdan/l1t/internal/l1t/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Author      string
	Description string
	Layout      core.Layout
	Metadata    map[string]string
	FilePath    string
}

// NewSession starts a play-through of the level.
func (l *Level) NewSession(tracker core.ProgressTracker) (*core.Session, error) {
	return core.NewSession(l.Layout, tracker)
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string // Directory inside FS to scan, "." for the whole FS
	Logger *log.Logger
}

// NewLoader creates a level loader over fsys.
// A nil logger discards warnings about skipped files.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{FS: fsys, Root: ".", Logger: logger}
}

// NewDirLoader creates a level loader over a directory on disk.
func NewDirLoader(dir string, logger *log.Logger) *Loader {
	return NewLoader(os.DirFS(expandHome(dir)), logger)
}

// NewBuiltinLoader creates a level loader over the embedded level pack.
func NewBuiltinLoader(logger *log.Logger) *Loader {
	return NewLoader(builtin.FS, logger)
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	layout := parsed.Layout()
	if err := core.ValidateLayout(layout); err != nil {
		return Level{}, fmt.Errorf("levels: invalid level %s: %w", p, err)
	}
	if !hasStatue(layout) {
		l.Logger.Warn("level has no statues and is won on load", "id", parsed.ID, "path", p)
	}

	return Level{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Author:      parsed.Author,
		Description: parsed.Description,
		Layout:      layout,
		Metadata:    parsed.Metadata,
		FilePath:    p,
	}, nil
}

func hasStatue(layout core.Layout) bool {
	for _, pl := range layout.Placements {
		if pl.Variant.Kind() == core.KindStatue {
			return true
		}
	}
	return false
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPack loads the builtin levels followed by the levels in dir.
// Levels in dir replace builtin levels with the same ID. An empty dir or
// a dir that does not exist yields the builtin pack alone.
func LoadPack(dir string, logger *log.Logger) ([]Level, error) {
	levels, err := NewBuiltinLoader(logger).LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	info, err := os.Stat(expandHome(dir))
	if err != nil || !info.IsDir() {
		if logger != nil {
			logger.Debug("no user level directory", "dir", dir)
		}
		return levels, nil
	}

	user, err := NewDirLoader(dir, logger).LoadAll()
	if err != nil {
		return nil, err
	}
	return Merge(levels, user), nil
}

// Merge combines level lists; later lists override earlier ones by ID.
func Merge(lists ...[]Level) []Level {
	byID := make(map[string]Level)
	for _, list := range lists {
		for _, lvl := range list {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sortByID(out)
	return out
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// Index returns the position of a level ID, or -1.
func Index(levels []Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".l1t", ".txt":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(dir string) string {
	if len(dir) > 0 && dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, dir[1:])
		}
	}
	return dir
}
