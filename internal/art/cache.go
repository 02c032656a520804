// Package art persists extracted cover images to content-addressed files
// keyed by album id. Writes are once per album: repeated rescans never
// touch an image that is already on disk.
package art

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Cache is a side-channel store of cover images under a single directory
type Cache struct {
	dir string
}

// NewCache creates the cache directory if needed and returns a handle to it
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create art cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Path returns the deterministic location of an album's cover image. The
// front-end reconstructs this from an album id; no read op is part of the
// core contract.
func (c *Cache) Path(albumID int64) string {
	return filepath.Join(c.dir, strconv.FormatInt(albumID, 10))
}

// Has reports whether a cover image has been persisted for the album
func (c *Cache) Has(albumID int64) bool {
	_, err := os.Stat(c.Path(albumID))
	return err == nil
}

// Put persists an album's cover image unless one already exists. Empty
// payloads are ignored. Returns whether a file was written.
func (c *Cache) Put(albumID int64, data []byte) (bool, error) {
	if len(data) == 0 {
		return false, nil
	}
	path := c.Path(albumID)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("failed to write cover art for album %d: %w", albumID, err)
	}
	return true, nil
}
