package repository

import (
	"context"
	"fmt"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{
		collection: db.Collection("engagement_events"),
	}
}

// CreateEvent inserts a raw engagement event log entry.
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.EngagementEvent) error {
	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert engagement event")
		return fmt.Errorf("failed to insert event: %v", err)
	}
	return nil
}

// GetUserEvents fetches recent events of a specific user, newest first.
func (r *EventRepository) GetUserEvents(ctx context.Context, userID primitive.ObjectID, limit int) ([]models.EngagementEvent, error) {
	filter := bson.M{"user_id": userID}
	sort := bson.D{{Key: "timestamp", Value: -1}}

	opts := options.Find().SetSort(sort).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []models.EngagementEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %v", err)
	}
	return events, nil
}
