package config

import (
	"log"
	"os"
)

// DiscordConfig holds the webhook endpoints for each notification channel,
// plus the CORS relay used when Discord refuses the direct request.
type DiscordConfig struct {
	DefaultWebhook  string
	ApprovedWebhook string
	RejectedWebhook string
	ProxyURL        string
	Origin          string
}

func NewDiscordConfig() *DiscordConfig {
	defaultWebhook := os.Getenv("DISCORD_WEBHOOK_DEFAULT")
	if defaultWebhook == "" {
		log.Fatal("DISCORD_WEBHOOK_DEFAULT not set")
	}
	approvedWebhook := os.Getenv("DISCORD_WEBHOOK_APPROVED")
	if approvedWebhook == "" {
		approvedWebhook = defaultWebhook
	}
	rejectedWebhook := os.Getenv("DISCORD_WEBHOOK_REJECTED")
	if rejectedWebhook == "" {
		rejectedWebhook = defaultWebhook
	}
	return &DiscordConfig{
		DefaultWebhook:  defaultWebhook,
		ApprovedWebhook: approvedWebhook,
		RejectedWebhook: rejectedWebhook,
		ProxyURL:        os.Getenv("DISCORD_CORS_PROXY"),
		Origin:          os.Getenv("SITE_ORIGIN"),
	}
}
