package carousel

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarouselRepository handles DB operations for carousel images.
type CarouselRepository struct {
	collection *mongo.Collection
}

// NewCarouselRepository creates a new repository for carousel images.
func NewCarouselRepository(db *mongo.Database) *CarouselRepository {
	return &CarouselRepository{collection: db.Collection("carousel")}
}

// CreateImage inserts a new carousel image.
func (r *CarouselRepository) CreateImage(ctx context.Context, img *Image) error {
	_, err := r.collection.InsertOne(ctx, img)
	return err
}

// FindAll fetches every image ordered by display position.
func (r *CarouselRepository) FindAll(ctx context.Context) ([]*Image, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var images []*Image
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// UpdateOrder moves an image to a new display position.
func (r *CarouselRepository) UpdateOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"order": order}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("carousel image not found")
	}
	return nil
}

// DeleteImage removes a carousel image.
func (r *CarouselRepository) DeleteImage(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("carousel image not found")
	}
	return nil
}
