package discord

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// KeyValue is the minimal persistence surface the pending store needs.
// Get returns the empty string when the key has never been written.
type KeyValue interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// FileStore persists each key as a JSON file under a data directory,
// so queued notifications survive process restarts.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "data"
	}
	return &FileStore{dir: dir}
}

// NewKeyValue builds the production store from the DATA_DIR environment
// variable. Provided to fx as the KeyValue implementation.
func NewKeyValue() KeyValue {
	return NewFileStore(os.Getenv("DATA_DIR"))
}

func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Set writes through a temp file and renames it into place, so a crash
// mid-write cannot leave a half-written slot behind.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(s.dir, key+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// MemoryStore keeps values in memory for tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

const pendingKey = "pending_discord_notifications"

// PendingStore is the durable queue of notifications owed to Discord but
// not yet confirmed delivered. Records only leave the queue through Drop
// or Replace after a confirmed successful resend. Every operation holds
// the store mutex for its whole read-modify-write, so concurrent request
// handlers and the boot-time retry pass cannot interleave and lose records.
type PendingStore struct {
	mu sync.Mutex
	kv KeyValue
}

func NewPendingStore(kv KeyValue) *PendingStore {
	return &PendingStore{kv: kv}
}

// Append adds one record without losing previously stored ones.
func (p *PendingStore) Append(record PendingRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	records := p.readAll()
	return p.write(append(records, record))
}

// ReadAll returns every stored record. An absent slot or malformed payload
// reads as an empty queue, never as an error.
func (p *PendingStore) ReadAll() []PendingRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readAll()
}

// Replace overwrites the stored collection with the given records.
func (p *PendingStore) Replace(records []PendingRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.write(records)
}

// Drop removes one stored occurrence of each delivered record. Records
// queued by other goroutines while a retry pass ran are left untouched.
func (p *PendingStore) Drop(delivered []PendingRecord) error {
	if len(delivered) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	counts := make(map[PendingRecord]int, len(delivered))
	for _, rec := range delivered {
		counts[rec]++
	}
	records := p.readAll()
	remaining := make([]PendingRecord, 0, len(records))
	for _, rec := range records {
		if counts[rec] > 0 {
			counts[rec]--
			continue
		}
		remaining = append(remaining, rec)
	}
	return p.write(remaining)
}

func (p *PendingStore) readAll() []PendingRecord {
	raw, err := p.kv.Get(pendingKey)
	if err != nil {
		log.Println("Failed to read pending notifications:", err)
		return nil
	}
	if raw == "" {
		return nil
	}
	var records []PendingRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Println("Discarding corrupt pending notification data:", err)
		return nil
	}
	return records
}

func (p *PendingStore) write(records []PendingRecord) error {
	if records == nil {
		records = []PendingRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return p.kv.Set(pendingKey, string(data))
}
