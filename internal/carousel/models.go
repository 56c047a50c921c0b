package carousel

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is one marketing image of the home page carousel.
type Image struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	URL         string             `bson:"url" json:"url"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type AddImageRequest struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type ReorderRequest struct {
	Order int `json:"order"`
}
