// Package store persists settings and blueprints as JSON files in the data
// directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/noelruault/emd/internal/blueprint"
	"github.com/noelruault/emd/internal/errs"
	"github.com/noelruault/emd/internal/i18n"
)

const (
	settingsFile   = "settings.json"
	blueprintsFile = "blueprints.json"
)

// Settings holds user preferences.
type Settings struct {
	Language i18n.Language `json:"language"`
}

// Store reads and writes files under one directory.
type Store struct {
	dir    string
	logger zerolog.Logger
}

// New returns a store rooted at dir. The directory is created on first save.
func New(dir string, logger zerolog.Logger) *Store {
	return &Store{dir: dir, logger: logger.With().Str("component", "store").Logger()}
}


// LoadSettings returns the saved settings. A missing or unreadable file
// yields the defaults.
func (s *Store) LoadSettings() Settings {
	var st Settings
	if !s.load(settingsFile, &st) {
		return Settings{Language: i18n.English}
	}
	return st
}

// SaveSettings writes st.
func (s *Store) SaveSettings(st Settings) error {
	return s.save(settingsFile, st)
}

// LoadBlueprints returns the saved collection. A missing or corrupt file
// yields an empty collection.
func (s *Store) LoadBlueprints() blueprint.Collection {
	var c blueprint.Collection
	if !s.load(blueprintsFile, &c) {
		return blueprint.Collection{}
	}
	return c
}

// SaveBlueprints writes c. It implements blueprint.Persister.
func (s *Store) SaveBlueprints(c blueprint.Collection) error {
	if c.Blueprints == nil {
		c.Blueprints = []blueprint.Blueprint{}
	}
	return s.save(blueprintsFile, c)
}

func (s *Store) load(name string, v any) bool {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", path).Msg("read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("corrupt file ignored")
		return false
	}
	return true
}

func (s *Store) save(name string, v any) error {
	path := filepath.Join(s.dir, name)
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &errs.PersistenceError{Path: path, Err: fmt.Errorf("encode: %w", err)}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return &errs.PersistenceError{Path: path, Err: err}
	}
	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("saved")
	return nil
}

// WriteDocument writes a generated Markdown document into dir and returns
// the path written. dir is created when missing.
func WriteDocument(dir, filename, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &errs.PersistenceError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", &errs.PersistenceError{Path: path, Err: err}
	}
	return path, nil
}
