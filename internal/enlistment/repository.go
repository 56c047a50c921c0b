package enlistment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnlistmentRepository handles DB operations for enlistment applications.
type EnlistmentRepository struct {
	collection *mongo.Collection
}

// NewEnlistmentRepository creates a new repository for enlistments.
func NewEnlistmentRepository(db *mongo.Database) *EnlistmentRepository {
	return &EnlistmentRepository{collection: db.Collection("enlistments")}
}

// CreateEnlistment inserts a new application.
func (r *EnlistmentRepository) CreateEnlistment(ctx context.Context, e *Enlistment) error {
	_, err := r.collection.InsertOne(ctx, e)
	return err
}

// FindByID fetches one application; (nil, nil) when it does not exist.
func (r *EnlistmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Enlistment, error) {
	var e Enlistment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ExistsByEmail reports whether an application with this email exists.
func (r *EnlistmentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByIP reports whether an application was already sent from this IP.
func (r *EnlistmentRepository) ExistsByIP(ctx context.Context, ip string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user_ip": ip})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll fetches every application, newest first.
func (r *EnlistmentRepository) FindAll(ctx context.Context) ([]*Enlistment, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var enlistments []*Enlistment
	if err := cursor.All(ctx, &enlistments); err != nil {
		return nil, err
	}
	return enlistments, nil
}

// UpdateStatus updates only the status field.
func (r *EnlistmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("enlistment not found")
	}
	return nil
}

// DeleteEnlistment removes an application.
func (r *EnlistmentRepository) DeleteEnlistment(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("enlistment not found")
	}
	return nil
}
