package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalyticsRepository handles the per-family per-day analytics documents.
// Counters are bumped throughout the day with atomic $inc updates; the daily
// document is created on first touch.
type AnalyticsRepository struct {
	collection *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{
		collection: db.Collection("daily_analytics"),
	}
}

func (r *AnalyticsRepository) upsert(ctx context.Context, familyID, date string, update bson.M) error {
	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now()
	update["$set"] = set
	update["$setOnInsert"] = bson.M{"family_id": familyID, "date": date}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": models.DailyAnalyticsID(familyID, date)}, update, opts)
	if err != nil {
		logger.Log.WithError(err).WithFields(map[string]interface{}{
			"family_id": familyID,
			"date":      date,
		}).Error("Failed to update daily analytics")
		return fmt.Errorf("failed to update daily analytics: %v", err)
	}
	return nil
}

// IncTotal bumps one family-level metric for the day.
func (r *AnalyticsRepository) IncTotal(ctx context.Context, familyID, date, field string, delta int) error {
	return r.upsert(ctx, familyID, date, bson.M{
		"$inc": bson.M{"metrics." + field: delta},
	})
}

// IncUserMetric bumps one numeric per-user metric for the day.
func (r *AnalyticsRepository) IncUserMetric(ctx context.Context, familyID, date, userIDHex, field string, delta int) error {
	return r.upsert(ctx, familyID, date, bson.M{
		"$inc": bson.M{"user_metrics." + userIDHex + "." + field: delta},
	})
}

// SetUserFlag sets one boolean per-user metric for the day.
func (r *AnalyticsRepository) SetUserFlag(ctx context.Context, familyID, date, userIDHex, field string, value bool) error {
	return r.upsert(ctx, familyID, date, bson.M{
		"$set": bson.M{"user_metrics." + userIDHex + "." + field: value},
	})
}

// SetOptimization stores the recommendation block on the day's document.
func (r *AnalyticsRepository) SetOptimization(ctx context.Context, familyID, date string, hints *models.OptimizationHints) error {
	return r.upsert(ctx, familyID, date, bson.M{
		"$set": bson.M{"optimization": hints},
	})
}

// SetEngagementRate stores the finalized family engagement rate for the day.
func (r *AnalyticsRepository) SetEngagementRate(ctx context.Context, familyID, date string, rate float64) error {
	return r.upsert(ctx, familyID, date, bson.M{
		"$set": bson.M{"metrics.engagement_rate": rate},
	})
}

// GetDaily fetches one day's document. Returns (nil, nil) when nothing was
// recorded that day.
func (r *AnalyticsRepository) GetDaily(ctx context.Context, familyID, date string) (*models.DailyAnalytics, error) {
	var doc models.DailyAnalytics
	err := r.collection.FindOne(ctx, bson.M{"_id": models.DailyAnalyticsID(familyID, date)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily analytics: %v", err)
	}
	return &doc, nil
}

// GetRange returns the family's daily documents between two date keys
// inclusive, oldest first. Dates sort lexicographically in YYYY-MM-DD form,
// so a plain range filter is enough.
func (r *AnalyticsRepository) GetRange(ctx context.Context, familyID, from, to string) ([]models.DailyAnalytics, error) {
	filter := bson.M{
		"family_id": familyID,
		"date":      bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics range: %v", err)
	}
	defer cursor.Close(ctx)

	var docs []models.DailyAnalytics
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode analytics range: %v", err)
	}
	return docs, nil
}
