package reviewRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "reviews"

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	repo := &MongoReviewRepo{coll: db.Collection(collectionName)}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create review indexes", zap.Error(err))
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Covers the aggregation read.
		{Keys: bson.D{{Key: "professionalId", Value: 1}, {Key: "status", Value: 1}, {Key: "contentType", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}
