// Package boltcache implements ports.Cache on bbolt. Entries are keyed by
// file path and validated against the file's size and mtime, so a rescan of
// an unmodified tree skips parsing entirely while still producing the exact
// same result set.
package boltcache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/hanscan/internal/ports"
)

var bucketFiles = []byte("files")

// entry is the stored value for one file.
type entry struct {
	Size    int64              `json:"size"`
	Mtime   int64              `json:"mtime"`
	Results []ports.ScanResult `json:"results"`
}

// Cache is a bbolt-backed ports.Cache. bbolt serializes access internally, so
// Cache is safe for concurrent use by scan workers.
type Cache struct {
	db *bolt.DB
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, bErr := tx.CreateBucketIfNotExists(bucketFiles)
		return bErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached results for path when size and mtime both match.
func (c *Cache) Get(path string, size int64, mtime int64) ([]ports.ScanResult, bool) {
	var e entry
	found := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketFiles).Get([]byte(path))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil // treat a corrupt entry as a miss
		}
		found = true
		return nil
	})
	if !found || e.Size != size || e.Mtime != mtime {
		return nil, false
	}
	return e.Results, true
}

// Put stores the results for path at the given size and mtime.
func (c *Cache) Put(path string, size int64, mtime int64, results []ports.ScanResult) error {
	raw, err := json.Marshal(entry{Size: size, Mtime: mtime, Results: results})
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFiles).Put([]byte(path), raw)
	})
}

// Close releases the database.
func (c *Cache) Close() error {
	return c.db.Close()
}
