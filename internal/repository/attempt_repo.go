package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dealersurvey/internal/model"
)

// AttemptRepo persists the submission attempt log
type AttemptRepo interface {
	Insert(ctx context.Context, attempt *model.Attempt) error
	ListByDealer(ctx context.Context, dealerID int, limit int64) ([]model.Attempt, error)
}

type attemptRepo struct {
	collection *mongo.Collection
}

// NewAttemptRepo creates a new attempt repository
func NewAttemptRepo(db *mongo.Database) AttemptRepo {
	return &attemptRepo{
		collection: db.Collection("attempts"),
	}
}

func (r *attemptRepo) Insert(ctx context.Context, attempt *model.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, attempt)
	return err
}

func (r *attemptRepo) ListByDealer(ctx context.Context, dealerID int, limit int64) ([]model.Attempt, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "attemptedAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"dealerId": dealerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attempts []model.Attempt
	if err := cursor.All(ctx, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}
