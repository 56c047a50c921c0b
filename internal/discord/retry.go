package discord

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"
)

// RetryPending replays every queued notification through the default
// channel, one at a time, and drops the records that were redelivered.
// Failed records keep their original queued timestamps, and records queued
// by request handlers while the pass runs are left in place. Returns how
// many were redelivered; an empty queue returns 0 without touching the store.
func (n *Notifier) RetryPending(ctx context.Context) int {
	pending := n.store.ReadAll()
	if len(pending) == 0 {
		return 0
	}
	log.Printf("Retrying %d pending Discord notifications...", len(pending))

	var delivered []PendingRecord
	for _, record := range pending {
		if n.deliver(ctx, record.Data, ChannelDefault) {
			delivered = append(delivered, record)
		}
	}

	if err := n.store.Drop(delivered); err != nil {
		log.Println("Failed to update pending notification queue:", err)
	}

	log.Printf("Resent %d notifications, %d still pending", len(delivered), len(pending)-len(delivered))
	return len(delivered)
}

// RetryScheduler replays the pending notification queue once per process,
// shortly after startup so retry traffic does not contend with boot work.
type RetryScheduler struct {
	notifier *Notifier
}

func NewRetryScheduler(notifier *Notifier) *RetryScheduler {
	return &RetryScheduler{notifier: notifier}
}

const settleDelay = 3 * time.Second

// Start registers the one-shot retry pass on the application lifecycle.
func (s *RetryScheduler) Start(lc fx.Lifecycle) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				select {
				case <-time.After(settleDelay):
				case <-done:
					return
				}
				if count := s.notifier.RetryPending(context.Background()); count > 0 {
					log.Printf("Resent %d pending Discord notifications on startup", count)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
