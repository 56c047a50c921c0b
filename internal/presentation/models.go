package presentation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Presentation is an air-show demonstration request submitted by a city or
// community member.
type Presentation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	City        string             `bson:"city" json:"city"`
	Email       string             `bson:"email" json:"email"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Description string             `bson:"description" json:"description"`
	DiscordID   string             `bson:"discord_id" json:"discord_id"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusRescheduled = "rescheduled"
	StatusCanceled    = "canceled"
)

// StatusTitle maps a presentation status to the Discord notification title.
func StatusTitle(status string) string {
	switch status {
	case StatusApproved:
		return "✅ Apresentação Aprovada"
	case StatusRejected:
		return "❌ Apresentação Rejeitada"
	case StatusRescheduled:
		return "🔄 Apresentação Reagendada"
	case StatusCanceled:
		return "🚫 Apresentação Cancelada"
	default:
		return "🔔 Status da Apresentação Atualizado"
	}
}

// ValidStatus reports whether status is one of the known lifecycle states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusRescheduled, StatusCanceled:
		return true
	}
	return false
}

type CreateRequest struct {
	City        string    `json:"city"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	DiscordID   string    `json:"discord_id"`
}

type UpdateRequest struct {
	City        string    `json:"city"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
