package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxUploadBytes is the upload size ceiling: 5 MiB.
const DefaultMaxUploadBytes = 5 << 20

// Client stores uploaded images under a fixed directory and hands back
// the relative path callers attach to products and orders.
type Client struct {
	dir      string
	maxBytes int64
}

func NewClient(dir string, maxBytes int64) *Client {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Client{dir: dir, maxBytes: maxBytes}
}

func (c *Client) MaxBytes() int64 {
	return c.maxBytes
}

func (c *Client) Dir() string {
	return c.dir
}

// Save streams the upload to disk under a generated name and returns
// the relative storage path. A failed copy never leaves a partial file
// behind.
func (c *Client) Save(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := c.objectName(originalName)
	fullPath := filepath.Join(c.dir, name)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path.Join("uploads", name), nil
}

// objectName builds upload-<unix-ms>-<suffix><ext>. The extension comes
// from the original filename, lower-cased; uploads without one are
// assumed to be JPEGs.
func (c *Client) objectName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("upload-%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
