package contact

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository handles DB operations for contact messages.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a new repository for contact messages.
func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{collection: db.Collection("contact_messages")}
}

// CreateMessage inserts a new contact message.
func (r *ContactRepository) CreateMessage(ctx context.Context, m *Message) error {
	_, err := r.collection.InsertOne(ctx, m)
	return err
}

// FindAll fetches every message, newest first.
func (r *ContactRepository) FindAll(ctx context.Context) ([]*Message, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
