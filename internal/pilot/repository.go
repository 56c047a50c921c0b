package pilot

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PilotRepository handles DB operations for the pilot roster.
type PilotRepository struct {
	collection *mongo.Collection
}

// NewPilotRepository creates a new repository for pilots.
func NewPilotRepository(db *mongo.Database) *PilotRepository {
	return &PilotRepository{collection: db.Collection("pilots")}
}

// CreatePilot inserts a new roster entry.
func (r *PilotRepository) CreatePilot(ctx context.Context, p *Pilot) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

// FindAll fetches the roster ordered by display position.
func (r *PilotRepository) FindAll(ctx context.Context) ([]*Pilot, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var pilots []*Pilot
	if err := cursor.All(ctx, &pilots); err != nil {
		return nil, err
	}
	return pilots, nil
}

// UpdatePilot replaces the editable fields of a roster entry.
func (r *PilotRepository) UpdatePilot(ctx context.Context, id primitive.ObjectID, req PilotRequest) error {
	update := bson.M{"$set": bson.M{
		"name":      req.Name,
		"position":  req.Position,
		"photo_url": req.PhotoURL,
		"order":     req.Order,
	}}
	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("pilot not found")
	}
	return nil
}

// DeletePilot removes a roster entry.
func (r *PilotRepository) DeletePilot(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("pilot not found")
	}
	return nil
}
