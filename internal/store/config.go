package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"waten-backend/internal/models"
)

// ConfigStore manages config.json. Unlike the other stores this one
// never degrades: an unreadable config means authentication cannot be
// decided, and every caller has to treat that as a hard failure.
type ConfigStore struct {
	blob Blob
	mu   sync.Mutex
}

func NewConfigStore(blob Blob) *ConfigStore {
	return &ConfigStore{blob: blob}
}

func (s *ConfigStore) Load() (*models.StoreConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *ConfigStore) loadLocked() (*models.StoreConfig, error) {
	raw, err := s.blob.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	var cfg models.StoreConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	return &cfg, nil
}

// Password returns the stored admin password for comparison. It is
// never serialized into any response.
func (s *ConfigStore) Password() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	return cfg.AdminPassword, nil
}

// Public returns the subset of the config that may be sent to clients.
func (s *ConfigStore) Public() (*models.PublicConfig, error) {
	cfg, err := s.Load()
	if err != nil {
		return nil, err
	}
	return &models.PublicConfig{FallbackImage: cfg.FallbackImage}, nil
}

// Update overwrites only the fields present in the patch and persists
// the whole config object.
func (s *ConfigStore) Update(patch models.ConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.loadLocked()
	if err != nil {
		return err
	}
	if patch.AdminPassword != nil {
		cfg.AdminPassword = *patch.AdminPassword
	}
	if patch.FallbackImage != nil {
		cfg.FallbackImage = *patch.FallbackImage
	}

	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return s.blob.Write(raw)
}
