package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BadgeRepository handles earned badge documents and the seeded badge
// definition collection the UI reads from.
type BadgeRepository struct {
	awards      *mongo.Collection
	definitions *mongo.Collection
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{
		awards:      db.Collection("user_badges"),
		definitions: db.Collection("badge_definitions"),
	}
}

// InsertBadge persists a badge award. The deterministic _id (user + badge,
// plus year for seasonal rarities) turns a duplicate award attempt into
// ErrAlreadyExists, which callers suppress.
func (r *BadgeRepository) InsertBadge(ctx context.Context, badge *models.UserBadge) error {
	_, err := r.awards.InsertOne(ctx, badge)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		logger.Log.WithError(err).WithField("badge_id", badge.ID).Error("Failed to insert badge award")
		return fmt.Errorf("failed to insert badge: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"user_id":  badge.UserID.Hex(),
		"badge_id": badge.BadgeID,
		"rarity":   badge.Rarity,
	}).Info("Badge awarded")
	return nil
}

// GetUserBadges returns every badge the user has earned, newest first.
func (r *BadgeRepository) GetUserBadges(ctx context.Context, userID primitive.ObjectID) ([]models.UserBadge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "earned_at", Value: -1}})

	cursor, err := r.awards.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges: %v", err)
	}
	defer cursor.Close(ctx)

	var badges []models.UserBadge
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, fmt.Errorf("failed to decode badges: %v", err)
	}
	return badges, nil
}

// HasBadge reports whether an award document with the given id exists.
func (r *BadgeRepository) HasBadge(ctx context.Context, awardID string) (bool, error) {
	count, err := r.awards.CountDocuments(ctx, bson.M{"_id": awardID})
	if err != nil {
		return false, fmt.Errorf("failed to check badge: %v", err)
	}
	return count > 0, nil
}

// MarkNotificationSent flags an award as surfaced to the user.
func (r *BadgeRepository) MarkNotificationSent(ctx context.Context, awardID string) error {
	_, err := r.awards.UpdateOne(ctx, bson.M{"_id": awardID}, bson.M{
		"$set": bson.M{"notification_sent": true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark badge notification: %v", err)
	}
	return nil
}

// SeedBadgeDefinitions loads the full catalog of badge definitions in a
// single ordered bulk write, upserting by id so reseeding is safe.
func (r *BadgeRepository) SeedBadgeDefinitions(ctx context.Context) error {
	writes := make([]mongo.WriteModel, 0, len(catalog.BadgeDefinitions))
	for _, def := range catalog.BadgeDefinitions {
		doc := bson.M{
			"name":            def.Name,
			"description":     def.Description,
			"rarity":          def.Rarity,
			"condition":       def.Condition,
			"catalog_version": catalog.Version,
			"updated_at":      time.Now(),
		}
		if def.Window != nil {
			doc["window"] = def.Window
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": def.ID}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	result, err := r.definitions.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to seed badge definitions: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"upserted": result.UpsertedCount,
		"modified": result.ModifiedCount,
	}).Info("Badge definitions seeded")
	return nil
}
