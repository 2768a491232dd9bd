package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Blob is a single JSON document. Each repository hides its load/save
// cycle behind one of these, so tests can swap the file-backed
// implementation for an in-memory one.
type Blob interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileBlob stores the document in a file on disk. Writes go to a
// temporary file in the same directory followed by a rename, so a crash
// mid-write never leaves a truncated document behind.
type FileBlob struct {
	path string
}

func NewFileBlob(path string) *FileBlob {
	return &FileBlob{path: path}
}

func (b *FileBlob) Read() ([]byte, error) {
	return os.ReadFile(b.path)
}

func (b *FileBlob) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", b.path, err)
	}
	return nil
}

// MemBlob keeps the document in memory. Used by tests.
type MemBlob struct {
	mu   sync.Mutex
	data []byte
}

func NewMemBlob(data []byte) *MemBlob {
	return &MemBlob{data: data}
}

func (b *MemBlob) Read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, fs.ErrNotExist
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemBlob) Write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}
