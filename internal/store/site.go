package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// SiteStore holds the editable site copy as a free-form JSON object.
type SiteStore struct {
	blob Blob
	mu   sync.Mutex
}

func NewSiteStore(blob Blob) *SiteStore {
	return &SiteStore{blob: blob}
}

// Get returns the stored object, or an empty object when the file is
// absent or unreadable. The public site must render regardless.
func (s *SiteStore) Get() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *SiteStore) loadLocked() map[string]any {
	raw, err := s.blob.Read()
	if err != nil {
		return map[string]any{}
	}
	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil || content == nil {
		return map[string]any{}
	}
	return content
}

// Update shallow-merges the patch onto the current content: top-level
// keys are replaced wholesale, never merged recursively, so callers can
// null out nested structures.
func (s *SiteStore) Update(patch map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := s.loadLocked()
	for k, v := range patch {
		content[k] = v
	}

	raw, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode site content: %w", err)
	}
	if err := s.blob.Write(raw); err != nil {
		return nil, err
	}
	return content, nil
}
