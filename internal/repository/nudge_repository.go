package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NudgeRepository handles database operations for daily nudge records.
type NudgeRepository struct {
	collection *mongo.Collection
}

func NewNudgeRepository(db *mongo.Database) *NudgeRepository {
	return &NudgeRepository{
		collection: db.Collection("nudges"),
	}
}

// InsertNudge inserts a new nudge record. The deterministic _id makes this
// the conditional-write step of the daily idempotency guarantee: a concurrent
// or repeated generation for the same user and day returns ErrAlreadyExists
// instead of writing a second record.
func (r *NudgeRepository) InsertNudge(ctx context.Context, record *models.NudgeRecord) error {
	record.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		logger.Log.WithError(err).WithField("nudge_id", record.ID).Error("Failed to insert nudge")
		return fmt.Errorf("failed to insert nudge: %v", err)
	}

	logger.Log.WithField("nudge_id", record.ID).Info("Nudge record created")
	return nil
}

// GetNudgeByID fetches a nudge by its deterministic id. Returns (nil, nil)
// when no record exists for that user and day.
func (r *NudgeRepository) GetNudgeByID(ctx context.Context, id string) (*models.NudgeRecord, error) {
	var record models.NudgeRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nudge: %v", err)
	}
	return &record, nil
}

// GetNudgesByUser returns the user's most recent nudges, newest first.
func (r *NudgeRepository) GetNudgesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.NudgeRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nudges: %v", err)
	}
	defer cursor.Close(ctx)

	var records []models.NudgeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode nudges: %v", err)
	}
	return records, nil
}
