package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository maintains the per-user counter documents badge
// conditions are evaluated against.
type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{
		collection: db.Collection("user_counters"),
	}
}

// IncrementCounter atomically bumps a named counter and returns the updated
// document, creating it on first use.
func (r *CounterRepository) IncrementCounter(ctx context.Context, userID primitive.ObjectID, name string, delta int64) (*models.UserCounters, error) {
	filter := bson.M{"_id": userID.Hex()}
	update := bson.M{
		"$inc":         bson.M{"counters." + name: delta},
		"$set":         bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{"user_id": userID},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counters models.UserCounters
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counters); err != nil {
		return nil, fmt.Errorf("failed to increment counter %s: %v", name, err)
	}
	return &counters, nil
}

// GetCounters fetches a user's counter document. Returns (nil, nil) when the
// user has no recorded activity.
func (r *CounterRepository) GetCounters(ctx context.Context, userIDHex string) (*models.UserCounters, error) {
	var counters models.UserCounters
	err := r.collection.FindOne(ctx, bson.M{"_id": userIDHex}).Decode(&counters)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch counters: %v", err)
	}
	return &counters, nil
}

// UpdateStreak writes the streak bookkeeping and mirrors the current streak
// into the counters map so streak badges evaluate like any other counter.
func (r *CounterRepository) UpdateStreak(ctx context.Context, userID primitive.ObjectID, current, longest int, lastActiveDate string) (*models.UserCounters, error) {
	filter := bson.M{"_id": userID.Hex()}
	update := bson.M{
		"$set": bson.M{
			"current_streak":   current,
			"longest_streak":   longest,
			"last_active_date": lastActiveDate,
			"counters." + catalog.CounterStreakDays: int64(current),
			"updated_at":                            time.Now(),
		},
		"$setOnInsert": bson.M{"user_id": userID},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counters models.UserCounters
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counters); err != nil {
		return nil, fmt.Errorf("failed to update streak: %v", err)
	}
	return &counters, nil
}
