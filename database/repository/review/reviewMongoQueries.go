package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellnest/database"
	"wellnest/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApprovedRatings reads the raw approved rows; grouping happens in the rating service.
func (r *MongoReviewRepo) ApprovedRatings(ctx context.Context, professionalID models.ProfessionalID) ([]models.ReviewRating, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"professionalId": professionalID,
		"status":         models.ReviewStatusApproved,
	}
	opts := options.Find().SetProjection(bson.M{"_id": 0, "contentType": 1, "rating": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved reviews for professional %s: %w", professionalID, err)
	}
	defer cursor.Close(ctx)

	ratings := []models.ReviewRating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode approved reviews for professional %s: %w", professionalID, err)
	}
	return ratings, nil
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("review %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// ListByStatus returns up to limit reviews in the given status, oldest first.
func (r *MongoReviewRepo) ListByStatus(ctx context.Context, status models.ReviewStatus, limit int64) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s reviews: %w", status, err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode %s reviews: %w", status, err)
	}
	return reviews, nil
}
