package presentation

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PresentationRepository handles DB operations for presentation requests.
type PresentationRepository struct {
	collection *mongo.Collection
}

// NewPresentationRepository creates a new repository for presentations.
func NewPresentationRepository(db *mongo.Database) *PresentationRepository {
	return &PresentationRepository{collection: db.Collection("presentations")}
}

// CreatePresentation inserts a new presentation request.
func (r *PresentationRepository) CreatePresentation(ctx context.Context, p *Presentation) error {
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

// FindByID fetches one presentation; (nil, nil) when it does not exist.
func (r *PresentationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Presentation, error) {
	var p Presentation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindAll fetches every presentation, newest first.
func (r *PresentationRepository) FindAll(ctx context.Context) ([]*Presentation, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var presentations []*Presentation
	if err := cursor.All(ctx, &presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// FindUpcomingApproved fetches approved presentations from today onward,
// soonest first. Shown on the public home page.
func (r *PresentationRepository) FindUpcomingApproved(ctx context.Context) ([]*Presentation, error) {
	filter := bson.M{"status": StatusApproved, "date": bson.M{"$gte": time.Now()}}
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var presentations []*Presentation
	if err := cursor.All(ctx, &presentations); err != nil {
		return nil, err
	}
	return presentations, nil
}

// UpdatePresentation replaces the editable fields of a presentation.
func (r *PresentationRepository) UpdatePresentation(ctx context.Context, id primitive.ObjectID, req UpdateRequest) error {
	update := bson.M{"$set": bson.M{
		"city":        req.City,
		"email":       req.Email,
		"date":        req.Date,
		"time":        req.Time,
		"description": req.Description,
		"status":      req.Status,
	}}
	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("presentation not found")
	}
	return nil
}

// UpdateStatus updates only the status field.
func (r *PresentationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("presentation not found")
	}
	return nil
}

// DeletePresentation removes a presentation request.
func (r *PresentationRepository) DeletePresentation(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("presentation not found")
	}
	return nil
}
