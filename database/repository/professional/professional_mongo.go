package professionalRepo

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

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new instance of ProfessionalRepository using MongoDB.
func NewMongoProfessionalRepo(db *mongo.Database) ProfessionalRepository {
	repo := &MongoProfessionalRepo{coll: db.Collection("professionals")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create professional indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoProfessionalRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "rating.average", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	return err
}

func (r *MongoProfessionalRepo) findOne(ctx context.Context, id models.ProfessionalID, opts ...*options.FindOneOptions) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts...).Decode(&professional); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("professional %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &professional, nil
}

func (r *MongoProfessionalRepo) GetByID(ctx context.Context, id models.ProfessionalID) (*models.Professional, error) {
	return r.findOne(ctx, id)
}

func (r *MongoProfessionalRepo) GetRating(ctx context.Context, id models.ProfessionalID) (models.RatingSummary, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0, "id": 1, "rating": 1})
	professional, err := r.findOne(ctx, id, opts)
	if err != nil {
		return models.RatingSummary{}, err
	}
	return professional.Rating, nil
}

func (r *MongoProfessionalRepo) UpdateRating(ctx context.Context, id models.ProfessionalID, average float64, totalReviews int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating.average":      average,
		"rating.totalReviews": totalReviews,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating of professional %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional %s: %w", id, database.ErrNotFound)
	}
	return nil
}
