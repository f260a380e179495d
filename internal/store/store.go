package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"
)

// Blob keys. Only KeyEntries is authoritative; the rest are auxiliary blobs
// kept for storage accounting and future features. There is no transaction
// spanning keys: a crash between writes can leave the auxiliary blobs stale,
// which is accepted.
const (
	KeyEntries    = "entries"
	KeyCategories = "categories"
	KeyTags       = "tags"
	KeySettings   = "settings"
)

// SoftLimitBytes mirrors the ~5 MB budget browsers give localStorage; the
// usage gauge is rendered against it.
const SoftLimitBytes = 5 * 1024 * 1024

var bucketVault = []byte("vault")

// Keys lists every known blob key.
var Keys = []string{KeyEntries, KeyCategories, KeyTags, KeySettings}

// VaultStore persists whole-blob values under fixed keys in a local BoltDB
// file. Load never fails past its boundary: a missing or unparsable blob is
// reported as absence. With an empty path the store runs memory-only.
type VaultStore struct {
	db *bolt.DB

	mu  sync.RWMutex
	mem map[string][]byte // Memory-only mode storage, also a write-through cache
}

// Open opens (creating if needed) the vault database at dir/vault.db.
// An empty dir selects memory-only mode, used by tests.
func Open(dir string) (*VaultStore, error) {
	if dir == "" {
		return &VaultStore{mem: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "vault.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open vault db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketVault)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &VaultStore{db: db, mem: make(map[string][]byte)}, nil
}

func (s *VaultStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the blob under key into dest. It returns false when the key is
// absent or the stored bytes cannot be parsed; callers treat both as "no
// data".
func (s *VaultStore) Load(key string, dest interface{}) bool {
	data := s.raw(key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// Save serializes value and writes it under key, replacing any prior blob.
// The write-through cache is updated first so a failed disk write leaves the
// session still reading its own data.
func (s *VaultStore) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.mem[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketVault).Put([]byte(key), data)
	})
}

// Delete removes the blob under key. Missing keys are a no-op.
func (s *VaultStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketVault).Delete([]byte(key))
	})
}

// SizeOf returns the serialized byte length of the blob under key, 0 when
// the key is absent. Used only for storage accounting.
func (s *VaultStore) SizeOf(key string) int {
	return len(s.raw(key))
}

func (s *VaultStore) raw(key string) []byte {
	s.mu.RLock()
	if data, ok := s.mem[key]; ok {
		s.mu.RUnlock()
		return data
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketVault).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil
	}

	// Promote to the cache for later reads
	s.mu.Lock()
	s.mem[key] = data
	s.mu.Unlock()

	return data
}

// Usage summarizes how much of the storage budget the vault blobs consume.
type Usage struct {
	UsedBytes int
	Percent   float64        // Of SoftLimitBytes, capped at 100
	PerKey    map[string]int // Byte length per blob key
}

// Usage reports the combined size of all known blobs.
func (s *VaultStore) Usage() Usage {
	u := Usage{PerKey: make(map[string]int, len(Keys))}
	for _, key := range Keys {
		n := s.SizeOf(key)
		u.PerKey[key] = n
		u.UsedBytes += n
	}
	u.Percent = float64(u.UsedBytes) / float64(SoftLimitBytes) * 100
	if u.Percent > 100 {
		u.Percent = 100
	}
	return u
}
