// Package cache provides a file-backed cache for fetched GitHub data so
// repeated runs don't re-download unchanged history.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrCacheMiss is returned by Get when no valid entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the interface all cache implementations satisfy.
type Cache interface {
	// Get retrieves a value from the cache.
	Get(key string, value interface{}) error

	// Set stores a value in the cache with an optional TTL.
	Set(key string, value interface{}, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(key string) error

	// Close cleans up the cache resources.
	Close() error
}

// entry wraps cached data with expiry metadata.
type entry struct {
	Data      json.RawMessage `json:"data"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (e *entry) expired() bool {
	return e.ExpiresAt != nil && time.Now().After(*e.ExpiresAt)
}

// FileCache implements Cache on the filesystem, one JSON file per key.
type FileCache struct {
	baseDir string
}

// NewDefaultCache creates a file cache in the OS user cache directory.
func NewDefaultCache() (Cache, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user cache directory: %w", err)
	}
	return NewFileCache(filepath.Join(cacheDir, "issuetracker"))
}

// NewFileCache creates a file cache rooted at dir.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &FileCache{baseDir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(key string, value interface{}) error {
	data, err := os.ReadFile(c.filename(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to read cache file: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	if e.expired() {
		_ = c.Delete(key)
		return ErrCacheMiss
	}

	if err := json.Unmarshal(e.Data, value); err != nil {
		return fmt.Errorf("failed to unmarshal cached data: %w", err)
	}
	return nil
}

// Set stores a value in the cache with an optional TTL (zero means no expiry).
func (c *FileCache) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	e := entry{Data: data, CreatedAt: time.Now()}
	if ttl > 0 {
		expiresAt := time.Now().Add(ttl)
		e.ExpiresAt = &expiresAt
	}

	entryData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	filename := c.filename(key)
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create cache subdirectory: %w", err)
	}
	if err := os.WriteFile(filename, entryData, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(key string) error {
	err := os.Remove(c.filename(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Close cleans up the cache resources (no-op for the file cache).
func (c *FileCache) Close() error {
	return nil
}

// filename converts a cache key to a filesystem-safe path, hashed to keep
// names short and sharded by the first byte to avoid one huge directory.
func (c *FileCache) filename(key string) string {
	hash := sha256.Sum256([]byte(key))
	hashStr := hex.EncodeToString(hash[:])
	return filepath.Join(c.baseDir, hashStr[:2], hashStr[2:]+".json")
}
