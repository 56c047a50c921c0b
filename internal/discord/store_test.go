package discord

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(title string) PendingRecord {
	return PendingRecord{
		Data:      Event{Title: title, Status: "pending", Date: time.Now(), CreatedAt: time.Now()},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestPendingStoreAppendKeepsPriorRecords(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(record(fmt.Sprintf("event %d", i))))
	}

	records := store.ReadAll()
	require.Len(t, records, 5)
	for i, rec := range records {
		assert.Equal(t, fmt.Sprintf("event %d", i), rec.Data.Title)
	}
}

func TestPendingStoreConcurrentAppends(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())

	const goroutines = 8
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, store.Append(record(fmt.Sprintf("event %d-%d", g, i))))
			}
		}(g)
	}
	wg.Wait()

	assert.Len(t, store.ReadAll(), goroutines*perGoroutine,
		"concurrent appends must not lose records")
}

func TestPendingStoreDropRemovesOnlyDelivered(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())
	require.NoError(t, store.Replace([]PendingRecord{
		record("first"), record("second"), record("third"),
	}))

	stored := store.ReadAll()
	require.NoError(t, store.Drop([]PendingRecord{stored[0], stored[2]}))

	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0].Data.Title)

	// nothing delivered, nothing touched
	require.NoError(t, store.Drop(nil))
	require.Len(t, store.ReadAll(), 1)
}

func TestPendingStoreEmptyAndCorrupt(t *testing.T) {
	kv := NewMemoryStore()
	store := NewPendingStore(kv)

	assert.Empty(t, store.ReadAll(), "absent slot reads as empty")

	require.NoError(t, kv.Set(pendingKey, "{not json"))
	assert.Empty(t, store.ReadAll(), "corrupt slot reads as empty")

	// a corrupt slot must not break later appends
	require.NoError(t, store.Append(record("after corruption")))
	require.Len(t, store.ReadAll(), 1)
}

func TestPendingStoreReplace(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())
	require.NoError(t, store.Append(record("one")))
	require.NoError(t, store.Append(record("two")))

	kept := store.ReadAll()[1:]
	require.NoError(t, store.Replace(kept))

	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "two", records[0].Data.Title)

	require.NoError(t, store.Replace(nil))
	assert.Empty(t, store.ReadAll())
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store := NewPendingStore(NewFileStore(dir))
	require.NoError(t, store.Append(record("durable")))

	reopened := NewPendingStore(NewFileStore(dir))
	records := reopened.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "durable", records[0].Data.Title)
}

func TestFileStoreSetReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileStore(dir)

	require.NoError(t, kv.Set("slot", "old"))
	require.NoError(t, kv.Set("slot", "new"))

	value, err := kv.Get("slot")
	require.NoError(t, err)
	assert.Equal(t, "new", value)

	// the temp file must not outlive the rename
	_, err = os.Stat(filepath.Join(dir, "slot.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
