package discord

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"EsquadrilhaSite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingKV wraps a KeyValue and counts writes.
type countingKV struct {
	KeyValue
	sets int
}

func (c *countingKV) Set(key, value string) error {
	c.sets++
	return c.KeyValue.Set(key, value)
}

func TestRetryPendingEmptyQueue(t *testing.T) {
	kv := &countingKV{KeyValue: NewMemoryStore()}
	store := NewPendingStore(kv)
	notifier := NewNotifier(&config.DiscordConfig{DefaultWebhook: "http://127.0.0.1:1"}, store)

	count := notifier.RetryPending(context.Background())

	assert.Equal(t, 0, count)
	assert.Equal(t, 0, kv.sets, "empty queue must not be rewritten")
}

func TestRetryPendingRedeliversAfterTransientFailure(t *testing.T) {
	failing := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := NewPendingStore(NewMemoryStore())
	notifier := NewNotifier(&config.DiscordConfig{DefaultWebhook: server.URL}, store)

	// first attempt fails and is queued
	assert.False(t, notifier.Send(context.Background(), sampleEvent(), ChannelDefault))
	require.Len(t, store.ReadAll(), 1)

	// the endpoint recovers; the retry pass delivers exactly once
	failing = false
	count := notifier.RetryPending(context.Background())

	assert.Equal(t, 1, count)
	assert.Empty(t, store.ReadAll())
}

func TestRetryPendingKeepsRecordsQueuedDuringPass(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())

	// the webhook handler queues a new record while the pass is mid-flight,
	// standing in for a request handler whose Send failed concurrently
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, store.Append(PendingRecord{
			Data:      Event{Title: "queued mid-pass", Status: "pending"},
			Timestamp: "2024-05-15T10:00:05Z",
		}))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, store.Replace([]PendingRecord{
		{Data: Event{Title: "already queued", Status: "pending"}, Timestamp: "2024-05-15T10:00:00Z"},
	}))

	notifier := NewNotifier(&config.DiscordConfig{DefaultWebhook: server.URL}, store)
	count := notifier.RetryPending(context.Background())

	assert.Equal(t, 1, count)
	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "queued mid-pass", records[0].Data.Title)
}

func TestRetryPendingPartialBatchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "second") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := NewPendingStore(NewMemoryStore())
	queuedAt := "2024-05-15T10:00:00Z"
	require.NoError(t, store.Replace([]PendingRecord{
		{Data: Event{Title: "first", Status: "pending"}, Timestamp: queuedAt},
		{Data: Event{Title: "second", Status: "pending"}, Timestamp: queuedAt},
		{Data: Event{Title: "third", Status: "pending"}, Timestamp: queuedAt},
	}))

	notifier := NewNotifier(&config.DiscordConfig{DefaultWebhook: server.URL}, store)
	count := notifier.RetryPending(context.Background())

	assert.Equal(t, 2, count)
	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "second", records[0].Data.Title)
	assert.Equal(t, queuedAt, records[0].Timestamp, "failed record keeps its original queue time")
}
