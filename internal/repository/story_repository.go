package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StoryRepository struct {
	collection *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{
		collection: db.Collection("stories"),
	}
}

// SeedStories loads the story catalog in a single ordered bulk write so a
// crash mid-seed cannot leave a partial shelf. Upserting by id makes the
// operation safe to repeat.
func (r *StoryRepository) SeedStories(ctx context.Context) error {
	writes := make([]mongo.WriteModel, 0, len(catalog.Stories))
	for _, seed := range catalog.Stories {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": seed.ID}).
			SetUpdate(bson.M{
				"$set": bson.M{
					"title":           seed.Title,
					"summary":         seed.Summary,
					"category":        seed.Category,
					"age_band":        seed.AgeBand,
					"catalog_version": catalog.Version,
				},
				"$setOnInsert": bson.M{"created_at": time.Now()},
			}).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to seed stories: %v", err)
	}

	logger.Log.WithFields(map[string]interface{}{
		"upserted": result.UpsertedCount,
		"modified": result.ModifiedCount,
	}).Info("Story catalog seeded")
	return nil
}

// GetStories returns the whole story shelf.
func (r *StoryRepository) GetStories(ctx context.Context) ([]models.Story, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stories: %v", err)
	}
	defer cursor.Close(ctx)

	var stories []models.Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %v", err)
	}
	return stories, nil
}

// GetStoryByID fetches one story. Returns (nil, nil) for an unknown id.
func (r *StoryRepository) GetStoryByID(ctx context.Context, id string) (*models.Story, error) {
	var story models.Story
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch story: %v", err)
	}
	return &story, nil
}
