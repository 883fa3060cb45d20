package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	collection *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{
		collection: db.Collection("islamic_progress"),
	}
}

// GetProgress fetches a user's progression document. Returns (nil, nil) when
// the user has not answered anything yet.
func (r *ProgressRepository) GetProgress(ctx context.Context, userIDHex string) (*models.IslamicProgress, error) {
	var progress models.IslamicProgress
	err := r.collection.FindOne(ctx, bson.M{"_id": userIDHex}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch progress: %v", err)
	}
	return &progress, nil
}

// AddAnsweredQuestion appends a question id to the user's answered set and
// moves the current-question pointer. $addToSet keeps the set append-only
// even if the same answer arrives twice.
func (r *ProgressRepository) AddAnsweredQuestion(ctx context.Context, userID primitive.ObjectID, questionID, nextQuestionID string) error {
	filter := bson.M{"_id": userID.Hex()}
	update := bson.M{
		"$addToSet":    bson.M{"answered_questions": questionID},
		"$set":         bson.M{"current_question_id": nextQuestionID, "updated_at": time.Now()},
		"$setOnInsert": bson.M{"user_id": userID},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to record answered question: %v", err)
	}
	return nil
}
