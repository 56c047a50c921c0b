package pilot

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pilot is one roster entry shown on the public site.
type Pilot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Position  string             `bson:"position" json:"position"`
	PhotoURL  string             `bson:"photo_url" json:"photo_url"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type PilotRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	PhotoURL string `json:"photo_url"`
	Order    int    `json:"order"`
}
