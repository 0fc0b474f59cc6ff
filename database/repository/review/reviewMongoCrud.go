package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"wellnest/database"
	"wellnest/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// UpdateStatus sets the moderation status of a review.
func (r *MongoReviewRepo) UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status of review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review %s: %w", id, database.ErrNotFound)
	}
	return nil
}
