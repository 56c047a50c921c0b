package discord

import "time"

// Channel selects which webhook receives a notification and which
// subset of event fields is rendered into the embed.
type Channel string

const (
	ChannelDefault  Channel = "default"
	ChannelApproved Channel = "approved"
	ChannelRejected Channel = "rejected"
)

// Event kinds communicated to Discord.
const (
	KindPresentationCreated = "presentation_created"
	KindPresentationStatus  = "presentation_status_changed"
	KindEnlistmentCreated   = "enlistment_created"
	KindEnlistmentStatus    = "enlistment_status_changed"
	KindGeneric             = "generic"
)

// Event is the unformatted domain fact to be communicated. Title and Status
// are always set; the other fields are optional and render as placeholders
// when absent.
type Event struct {
	ID          string    `json:"id,omitempty"`
	Kind        string    `json:"kind,omitempty"`
	Title       string    `json:"title"`
	City        string    `json:"city,omitempty"`
	Email       string    `json:"email,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	DiscordID   string    `json:"discord_id,omitempty"`
}

// EmbedField is one name/value display row of a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

// Embed is the wire body sent to the Discord webhook.
type Embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []EmbedField `json:"fields"`
	Timestamp string       `json:"timestamp"`
	Footer    EmbedFooter  `json:"footer"`
}

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

// PendingRecord is a durable queue entry: the original event plus the
// instant it was first queued. The retry pass only ever replays Data;
// Timestamp is preserved across failed retries.
type PendingRecord struct {
	Data      Event  `json:"data"`
	Timestamp string `json:"timestamp"`
}
