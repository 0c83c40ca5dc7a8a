package internal

import (
	"crypto/md5"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tt "github.com/gnolang/ndcheck/internal/types"
)

const (
	cacheFileName   = "report_cache.gob"
	defaultCacheAge = 24 * time.Hour
)

type proofFileState struct {
	Hash         string
	LastModified time.Time
}

// CacheEntry is the stored report of one proof file checked under one
// set of engine options.
type CacheEntry struct {
	State     proofFileState
	Report    tt.Report
	CheckedAt time.Time
}

// Cache keeps reports of proof files that have not changed since they
// were last checked. A Cache serves only the entries recorded under its
// fingerprint, which identifies the engine options a report was
// produced with.
type Cache struct {
	CacheDir    string
	fingerprint string
	entries     map[string]CacheEntry
	mutex       sync.Mutex
	maxAge      time.Duration
}

// NewCache opens the cache stored in cacheDir, creating the directory
// when needed.
func NewCache(cacheDir, fingerprint string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		CacheDir:    cacheDir,
		fingerprint: fingerprint,
		entries:     make(map[string]CacheEntry),
		maxAge:      defaultCacheAge,
	}
	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}
	return cache, nil
}

func (c *Cache) key(filename string) string {
	return c.fingerprint + "\x00" + filename
}

func (c *Cache) load() error {
	file, err := os.Open(filepath.Join(c.CacheDir, cacheFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := os.Create(filepath.Join(c.CacheDir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Set stores the report of filename and persists the cache.
func (c *Cache) Set(filename string, report tt.Report) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	state, err := readProofFileState(filename)
	if err != nil {
		return err
	}
	c.entries[c.key(filename)] = CacheEntry{
		State:     state,
		Report:    report,
		CheckedAt: time.Now(),
	}
	return c.save()
}

// Get returns the cached report of filename if the file is unchanged
// and the entry has not expired.
func (c *Cache) Get(filename string) (tt.Report, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	key := c.key(filename)
	entry, ok := c.entries[key]
	if !ok {
		return tt.Report{}, false
	}
	if c.stale(filename, entry) {
		delete(c.entries, key)
		return tt.Report{}, false
	}
	return entry.Report, true
}

func (c *Cache) stale(filename string, entry CacheEntry) bool {
	if time.Since(entry.CheckedAt) > c.maxAge {
		return true
	}
	state, err := readProofFileState(filename)
	return err != nil || state != entry.State
}

func readProofFileState(filename string) (proofFileState, error) {
	file, err := os.Open(filename)
	if err != nil {
		return proofFileState{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return proofFileState{}, fmt.Errorf("failed to calculate hash: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		return proofFileState{}, fmt.Errorf("failed to get file info: %w", err)
	}

	return proofFileState{
		Hash:         fmt.Sprintf("%x", hash.Sum(nil)),
		LastModified: info.ModTime(),
	}, nil
}
