package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"EsquadrilhaSite/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() Event {
	return Event{
		Title:       "Nova Solicitação",
		City:        "São Paulo",
		Email:       "a@b.com",
		Date:        time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Time:        "20:00",
		Description: "Show especial",
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
}

func TestSendDirectSuccess(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := NewPendingStore(NewMemoryStore())
	notifier := NewNotifier(&config.DiscordConfig{DefaultWebhook: server.URL}, store)

	ok := notifier.Send(context.Background(), sampleEvent(), ChannelDefault)

	assert.True(t, ok)
	assert.Empty(t, store.ReadAll(), "successful sends must not be queued")
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "Nova Solicitação", received.Embeds[0].Title)
	assert.Equal(t, colorDefault, received.Embeds[0].Color)
}

func TestSendFallsBackToProxy(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer direct.Close()

	proxyHits := 0
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyHits++
		assert.Equal(t, "https://site.test", r.Header.Get("Origin"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer proxy.Close()

	store := NewPendingStore(NewMemoryStore())
	notifier := NewNotifier(&config.DiscordConfig{
		DefaultWebhook: direct.URL,
		ProxyURL:       proxy.URL + "/",
		Origin:         "https://site.test",
	}, store)

	ok := notifier.Send(context.Background(), sampleEvent(), ChannelDefault)

	assert.True(t, ok)
	assert.Equal(t, 1, proxyHits)
	assert.Empty(t, store.ReadAll())
}

func TestSendFailureQueuesOriginalEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewPendingStore(NewMemoryStore())
	notifier := NewNotifier(&config.DiscordConfig{
		DefaultWebhook: server.URL,
		ProxyURL:       server.URL + "/",
	}, store)

	ok := notifier.Send(context.Background(), sampleEvent(), ChannelDefault)

	assert.False(t, ok)
	records := store.ReadAll()
	require.Len(t, records, 1)
	assert.Equal(t, "São Paulo", records[0].Data.City)
	assert.Equal(t, "Nova Solicitação", records[0].Data.Title)
	_, err := time.Parse(time.RFC3339, records[0].Timestamp)
	assert.NoError(t, err)
}

func TestSendUnreachableEndpointQueues(t *testing.T) {
	store := NewPendingStore(NewMemoryStore())
	// closed port: both transports fail with a network error
	notifier := NewNotifier(&config.DiscordConfig{
		DefaultWebhook: "http://127.0.0.1:1/webhook",
	}, store)

	ok := notifier.Send(context.Background(), sampleEvent(), ChannelDefault)

	assert.False(t, ok)
	assert.Len(t, store.ReadAll(), 1)
}

func TestSendChannelEndpointSelection(t *testing.T) {
	var hits []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	store := NewPendingStore(NewMemoryStore())
	notifier := NewNotifier(&config.DiscordConfig{
		DefaultWebhook:  server.URL + "/default",
		ApprovedWebhook: server.URL + "/approved",
		RejectedWebhook: server.URL + "/rejected",
	}, store)

	assert.True(t, notifier.Send(context.Background(), sampleEvent(), ChannelApproved))
	assert.True(t, notifier.Send(context.Background(), sampleEvent(), ChannelRejected))
	assert.True(t, notifier.Send(context.Background(), sampleEvent(), ChannelDefault))
	assert.Equal(t, []string{"/approved", "/rejected", "/default"}, hits)
}
