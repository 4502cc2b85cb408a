// Package persistence stores player settings between runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/superkick/config"
	"github.com/quasilyte/gdata"
)

// Store is the subset of *gdata.Manager used here.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Haptics    bool `json:"haptics"`
	ShowTrails bool `json:"showTrails"`
}

// Defaults returns the settings used before anything has been saved.
func Defaults() SavedSettings {
	return SavedSettings{
		Haptics:    cfg.Settings.Haptics,
		ShowTrails: cfg.Settings.ShowTrails,
	}
}

// Settings loads and saves SavedSettings. A nil store turns it into an
// in-memory no-op, so the game still runs where gdata cannot open.
type Settings struct {
	store Store
}

// Open creates a gdata-backed Settings for the configured app name.
func Open() (*Settings, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return &Settings{}, fmt.Errorf("open gdata: %w", err)
	}
	return &Settings{store: m}, nil
}

// New wraps an existing store.
func New(store Store) *Settings {
	return &Settings{store: store}
}

// Load returns the saved settings, or the defaults when nothing is saved
// or the saved blob cannot be read.
func (s *Settings) Load() SavedSettings {
	out := Defaults()
	if s == nil || s.store == nil {
		return out
	}

	data, err := s.store.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return out
	}
	if data == nil {
		// No saved settings yet, use defaults
		return out
	}

	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return Defaults()
	}
	return out
}

// Save writes settings to the store.
func (s *Settings) Save(settings SavedSettings) error {
	if s == nil || s.store == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.store.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
