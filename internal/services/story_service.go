package services

import (
	"context"
	"fmt"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoryService exposes the seeded story shelf and records read events.
type StoryService struct {
	repo   *repository.StoryRepository
	events *EventService
}

func NewStoryService(repo *repository.StoryRepository, events *EventService) *StoryService {
	return &StoryService{repo: repo, events: events}
}

// GetStories returns the whole shelf.
func (s *StoryService) GetStories(ctx context.Context) ([]models.Story, error) {
	return s.repo.GetStories(ctx)
}

// MarkRead records that the user finished a story. The read feeds the
// stories_read counter, daily analytics and badge evaluation.
func (s *StoryService) MarkRead(ctx context.Context, userID primitive.ObjectID, familyID, storyID string) (*RecordedEvent, error) {
	story, err := s.repo.GetStoryByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, fmt.Errorf("story not found: %s", storyID)
	}

	return s.events.Record(ctx, userID, familyID, models.EventStoryRead, 1, storyID)
}
