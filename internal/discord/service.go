package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"EsquadrilhaSite/internal/config"
)

// Notifier delivers notifications to the Discord webhooks. Delivery is
// at-least-once: a failed send is queued in the pending store and replayed
// on a later startup. Send never propagates an error to the caller; the
// triggering business operation must not be failed by a notification.
type Notifier struct {
	config *config.DiscordConfig
	store  *PendingStore
	client *http.Client
}

func NewNotifier(config *config.DiscordConfig, store *PendingStore) *Notifier {
	return &Notifier{
		config: config,
		store:  store,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) webhookURL(channel Channel) string {
	switch channel {
	case ChannelApproved:
		return n.config.ApprovedWebhook
	case ChannelRejected:
		return n.config.RejectedWebhook
	default:
		return n.config.DefaultWebhook
	}
}

// Send formats the event for the channel and posts it to the matching
// webhook, falling back to the CORS relay when the direct request fails.
// On failure the original event is queued for retry and Send returns false.
func (n *Notifier) Send(ctx context.Context, event Event, channel Channel) bool {
	if n.deliver(ctx, event, channel) {
		return true
	}
	n.queue(event)
	return false
}

// deliver attempts the webhook POST (direct, then proxy) without touching
// the pending queue. The retry pass uses it directly so failed replays keep
// their original stored records instead of being queued a second time.
func (n *Notifier) deliver(ctx context.Context, event Event, channel Channel) bool {
	url := n.webhookURL(channel)
	payload := webhookPayload{Embeds: []Embed{BuildEmbed(event, channel)}}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("Failed to marshal Discord payload:", err)
		return false
	}

	if err := n.post(ctx, url, "", body); err == nil {
		log.Println("Discord notification delivered (direct)")
		return true
	} else {
		log.Println("Direct Discord delivery failed, trying proxy:", err)
	}

	if n.config.ProxyURL != "" {
		if err := n.post(ctx, n.config.ProxyURL+url, n.config.Origin, body); err == nil {
			log.Println("Discord notification delivered via proxy")
			return true
		} else {
			log.Println("Proxy Discord delivery failed:", err)
		}
	}

	return false
}

func (n *Notifier) post(ctx context.Context, url, origin string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) queue(event Event) {
	record := PendingRecord{
		Data:      event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := n.store.Append(record); err != nil {
		log.Println("Failed to queue Discord notification for retry:", err)
		return
	}
	log.Println("Discord notification queued for later retry")
}
