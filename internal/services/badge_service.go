package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BadgeStore is the slice of the badge repository the evaluator needs.
type BadgeStore interface {
	InsertBadge(ctx context.Context, badge *models.UserBadge) error
	HasBadge(ctx context.Context, awardID string) (bool, error)
	GetUserBadges(ctx context.Context, userID primitive.ObjectID) ([]models.UserBadge, error)
	MarkNotificationSent(ctx context.Context, awardID string) error
}

// BadgeService evaluates earn conditions whenever a counter moves and awards
// badges at most once per condition (per year for seasonal rarities).
// Legendary badges go through the same mechanism as everything else, they
// just carry bigger thresholds.
type BadgeService struct {
	store BadgeStore
	clock func() time.Time
}

func NewBadgeService(store BadgeStore) *BadgeService {
	return &BadgeService{store: store, clock: time.Now}
}

// NewBadgeServiceWithClock is used by tests to pin the seasonal calendar.
func NewBadgeServiceWithClock(store BadgeStore, clock func() time.Time) *BadgeService {
	return &BadgeService{store: store, clock: clock}
}

// counterLabels turn condition identifiers into human award reasons.
var counterLabels = map[string]string{
	catalog.CounterPollsCreated:    "polls created",
	catalog.CounterPollsVoted:      "poll votes",
	catalog.CounterStoriesRead:     "stories read",
	catalog.CounterFeedbackSent:    "feedback messages",
	catalog.CounterLogins:          "check-ins",
	catalog.CounterIslamicAnswered: "quiz questions answered",
	catalog.CounterNudgesAnswered:  "nudges answered",
	catalog.CounterStreakDays:      "days in a row",
}

// AwardReason derives the reason string for an award. Unknown conditions
// fall back to the badge description, and a missing description falls back
// to a generic milestone string.
func AwardReason(def catalog.BadgeDefinition) string {
	if label, ok := counterLabels[def.Condition.Counter]; ok {
		return fmt.Sprintf("Reached %d %s", def.Condition.Threshold, label)
	}
	if def.Description != "" {
		return def.Description
	}
	return "Achieved a special milestone"
}

// EvaluateCounter checks every badge definition bound to the counter that
// just moved and awards the ones newly satisfied. Awarding is idempotent:
// an existing award document suppresses the write, and the deterministic
// award id turns a concurrent duplicate into a silent no-op.
func (s *BadgeService) EvaluateCounter(ctx context.Context, userID primitive.ObjectID, counterName string, counters *models.UserCounters) ([]models.UserBadge, error) {
	now := s.clock()
	var awarded []models.UserBadge

	for _, def := range catalog.BadgeDefinitions {
		if def.Condition.Counter != counterName {
			continue
		}
		if counters.Get(counterName) < def.Condition.Threshold {
			continue
		}

		yearEarned := 0
		if def.Rarity == catalog.RaritySeasonal {
			if def.Window == nil || !def.Window.Contains(now) {
				continue
			}
			yearEarned = now.Year()
		}

		awardID := models.UserBadgeID(userID, def.ID, yearEarned)

		exists, err := s.store.HasBadge(ctx, awardID)
		if err != nil {
			return awarded, fmt.Errorf("failed to check existing badge: %v", err)
		}
		if exists {
			continue
		}

		badge := &models.UserBadge{
			ID:         awardID,
			UserID:     userID,
			BadgeID:    def.ID,
			Name:       def.Name,
			Rarity:     def.Rarity,
			Reason:     AwardReason(def),
			EarnedAt:   now,
			YearEarned: yearEarned,
		}

		err = s.store.InsertBadge(ctx, badge)
		if err == repository.ErrAlreadyExists {
			// Lost a race with another award attempt; the badge exists, which
			// is all the invariant asks for.
			continue
		}
		if err != nil {
			return awarded, fmt.Errorf("failed to award badge %s: %v", def.ID, err)
		}

		awarded = append(awarded, *badge)
	}

	return awarded, nil
}

// GetUserBadges returns a user's earned badges, newest first.
func (s *BadgeService) GetUserBadges(ctx context.Context, userID primitive.ObjectID) ([]models.UserBadge, error) {
	badges, err := s.store.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch badges: %v", err)
	}
	return badges, nil
}

// MarkNotified flags an award as shown to the user.
func (s *BadgeService) MarkNotified(ctx context.Context, userID primitive.ObjectID, awardID string) error {
	badges, err := s.store.GetUserBadges(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch badges: %v", err)
	}
	for _, b := range badges {
		if b.ID == awardID {
			return s.store.MarkNotificationSent(ctx, awardID)
		}
	}
	logger.Log.WithFields(map[string]interface{}{
		"user_id":  userID.Hex(),
		"award_id": awardID,
	}).Warn("Attempt to mark a badge the user does not own")
	return fmt.Errorf("badge not found")
}
