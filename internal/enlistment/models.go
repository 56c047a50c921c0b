package enlistment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enlistment is a join-us application from a prospective pilot.
type Enlistment struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName         string             `bson:"first_name" json:"first_name"`
	LastName          string             `bson:"last_name" json:"last_name"`
	Email             string             `bson:"email" json:"email"`
	DiscordNick       string             `bson:"discord_nick" json:"discord_nick"`
	Motivation        string             `bson:"motivation" json:"motivation"`
	AviationKnowledge string             `bson:"aviation_knowledge" json:"aviation_knowledge"`
	Age               string             `bson:"age" json:"age"`
	FivemFlight       string             `bson:"fivem_flight" json:"fivem_flight"`
	KnowsSquadron     string             `bson:"knows_squadron" json:"knows_squadron"`
	Shifts            []string           `bson:"shifts" json:"shifts"`
	UserIP            string             `bson:"user_ip" json:"-"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

// StatusText maps an enlistment status to its display label.
func StatusText(status string) string {
	switch status {
	case StatusPending:
		return "Pendente"
	case StatusInProgress:
		return "Em análise"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Reprovado"
	default:
		return status
	}
}

// ValidStatus reports whether status is one of the known lifecycle states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type EnlistRequest struct {
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Email             string   `json:"email"`
	DiscordNick       string   `json:"discord_nick"`
	Motivation        string   `json:"motivation"`
	AviationKnowledge string   `json:"aviation_knowledge"`
	Age               string   `json:"age"`
	FivemFlight       string   `json:"fivem_flight"`
	KnowsSquadron     string   `json:"knows_squadron"`
	Shifts            []string `json:"shifts"`
}

type StatusRequest struct {
	Status string `json:"status"`
}
