package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TraitRepository struct {
	collection *mongo.Collection
}

func NewTraitRepository(db *mongo.Database) *TraitRepository {
	return &TraitRepository{
		collection: db.Collection("trait_states"),
	}
}

// GetTraitState fetches the rotation state for a user. Returns (nil, nil)
// when no state exists yet.
func (r *TraitRepository) GetTraitState(ctx context.Context, userIDHex string) (*models.UserTraitState, error) {
	var state models.UserTraitState
	err := r.collection.FindOne(ctx, bson.M{"_id": userIDHex}).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trait state: %v", err)
	}
	return &state, nil
}

// UpsertTraitState writes the full rotation state document.
func (r *TraitRepository) UpsertTraitState(ctx context.Context, state *models.UserTraitState) error {
	state.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": state.ID}, state, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert trait state: %v", err)
	}
	return nil
}
