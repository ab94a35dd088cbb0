package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrGameNotFound is returned when a named record does not exist.
var ErrGameNotFound = errors.New("recorded game not found")

const logName = "log.jsonl"

// Archive keeps one directory per recorded game under Dir.
type Archive struct {
	Dir string
}

// NewArchive returns an archive rooted at dir.
func NewArchive(dir string) *Archive {
	return &Archive{Dir: dir}
}

// GamePath produces the directory of a named game.
func (a *Archive) GamePath(name string) string {
	return filepath.Join(a.Dir, name)
}

// LogPath returns the path to the event record of a named game.
func (a *Archive) LogPath(name string) string {
	return filepath.Join(a.GamePath(name), logName)
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid game name %q", name)
	}
	return nil
}

// Create makes a fresh record. An existing record of the same name is refused.
func (a *Archive) Create(name string) (*Store, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	path := a.GamePath(name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	logPath := a.LogPath(name)
	if info, err := os.Stat(logPath); err == nil && info.Size() > 0 {
		return nil, fmt.Errorf("game %q already recorded at %s", name, logPath)
	}
	return NewStore(logPath)
}

// Open returns the store of an existing record.
func (a *Archive) Open(name string) (*Store, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	logPath := a.LogPath(name)
	if stat, err := os.Stat(logPath); err != nil || stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, logPath)
	}
	return NewStore(logPath)
}

// List returns the names of recorded games in lexical order.
func (a *Archive) List() ([]string, error) {
	entries, err := os.ReadDir(a.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(a.LogPath(e.Name())); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
