package services

import (
	"context"
	"fmt"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
)

// SeedService loads the static catalogs into the store. Each catalog goes in
// as one batch write, so a crash cannot leave a half-seeded collection.
type SeedService struct {
	stories *repository.StoryRepository
	badges  *repository.BadgeRepository
}

func NewSeedService(stories *repository.StoryRepository, badges *repository.BadgeRepository) *SeedService {
	return &SeedService{stories: stories, badges: badges}
}

// SeedCatalog seeds badge definitions and the story shelf. Safe to repeat;
// existing documents are upserted in place.
func (s *SeedService) SeedCatalog(ctx context.Context) error {
	if err := s.badges.SeedBadgeDefinitions(ctx); err != nil {
		return fmt.Errorf("failed to seed badge catalog: %v", err)
	}
	if err := s.stories.SeedStories(ctx); err != nil {
		return fmt.Errorf("failed to seed story catalog: %v", err)
	}

	logger.Log.WithField("catalog_version", catalog.Version).Info("Catalog seeding complete")
	return nil
}
