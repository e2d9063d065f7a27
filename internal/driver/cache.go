package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// diskCacheSchemaVersion guards against loading a payload written by an
// older, incompatible version of CacheRecord.
const diskCacheSchemaVersion uint16 = 1

// CacheRecord is the summary DiskCache persists per file: enough to
// answer "did this exact content parse cleanly last time" without
// holding the file's live Module/interner state, which is rebuilt fresh
// by every ParseBatch run (the cache records a summary only; it is not a
// substitute for reparsing).
type CacheRecord struct {
	Schema      uint16
	ContentHash [sha256.Size]byte
	Path        string
	DeclCount   int
	DiagCount   int
	HasErrors   bool
	TotalTimeMS float64
}

// DiskCache stores CacheRecords on disk, one file per content hash,
// serialized with msgpack. Safe for concurrent use across ParseBatch's
// worker goroutines.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens (creating if absent) the cache directory dir. An
// empty dir (wispcfg.Config's default cache_dir) falls back to
// $XDG_CACHE_HOME/wisp or ~/.cache/wisp.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "wisp")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func contentHash(content []byte) [sha256.Size]byte {
	return sha256.Sum256(content)
}

func (c *DiskCache) pathFor(hash [sha256.Size]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mp")
}

// Put records res's summary keyed by content's hash.
func (c *DiskCache) Put(path string, content []byte, res FileResult) error {
	if c == nil {
		return nil
	}
	rec := CacheRecord{
		Schema:      diskCacheSchemaVersion,
		ContentHash: contentHash(content),
		Path:        path,
		DeclCount:   len(res.Module.Declarations),
		DiagCount:   res.Bag.Len(),
		HasErrors:   res.Bag.HasErrors(),
		TotalTimeMS: res.Timing.TotalMS,
	}

	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return os.WriteFile(c.pathFor(rec.ContentHash), data, 0o644)
}

// Lookup returns the cached summary for content, if one exists and its
// schema matches.
func (c *DiskCache) Lookup(content []byte) (CacheRecord, bool) {
	if c == nil {
		return CacheRecord{}, false
	}
	hash := contentHash(content)

	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(hash))
	c.mu.RUnlock()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return CacheRecord{}, false
		}
		return CacheRecord{}, false
	}

	var rec CacheRecord
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return CacheRecord{}, false
	}
	if rec.Schema != diskCacheSchemaVersion {
		return CacheRecord{}, false
	}
	return rec, true
}
