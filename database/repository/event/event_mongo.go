package eventRepo

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
	"go.uber.org/zap"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo(db *mongo.Database) EventRepository {
	repo := &MongoEventRepo{coll: db.Collection("events")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create event indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Partial index: only events with at least one review
	reviewedOpts := options.Index().SetPartialFilterExpression(bson.M{
		"reviews.0": bson.M{"$exists": true},
	})
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "professional", Value: 1}}, Options: reviewedOpts},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}

func (r *MongoEventRepo) FindReviewedByProfessional(ctx context.Context, userID models.ProfessionalUserID) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"professional": userID,
		"reviews.0":    bson.M{"$exists": true},
	}
	opts := options.Find().SetProjection(bson.M{"_id": 0, "id": 1, "professional": 1, "reviews": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviewed events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode reviewed events for user %s: %w", userID, err)
	}
	return events, nil
}

func (r *MongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if event.Reviews == nil {
		event.Reviews = []models.EventReview{}
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("event %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

func (r *MongoEventRepo) AddReview(ctx context.Context, eventID string, review models.EventReview) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$push": bson.M{"reviews": review}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": eventID}, update)
	if err != nil {
		return fmt.Errorf("failed to add review to event %s: %w", eventID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event %s: %w", eventID, database.ErrNotFound)
	}
	return nil
}
