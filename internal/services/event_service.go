package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventStore is the slice of the event repository the ingestion path needs.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.EngagementEvent) error
}

// CounterStore is the slice of the counter repository the ingestion path and
// badge evaluation need.
type CounterStore interface {
	IncrementCounter(ctx context.Context, userID primitive.ObjectID, name string, delta int64) (*models.UserCounters, error)
	GetCounters(ctx context.Context, userIDHex string) (*models.UserCounters, error)
	UpdateStreak(ctx context.Context, userID primitive.ObjectID, current, longest int, lastActiveDate string) (*models.UserCounters, error)
}

// EventService ingests engagement events: it logs the raw event, bumps the
// user's counters and the family's daily analytics, maintains the streak,
// and triggers badge evaluation on every counter that moved.
type EventService struct {
	events    EventStore
	counters  CounterStore
	analytics AnalyticsStore
	badges    *BadgeService
	clock     func() time.Time
}

func NewEventService(events EventStore, counters CounterStore, analytics AnalyticsStore, badges *BadgeService) *EventService {
	return &EventService{
		events:    events,
		counters:  counters,
		analytics: analytics,
		badges:    badges,
		clock:     time.Now,
	}
}

// NewEventServiceWithClock is used by tests to pin the day boundary.
func NewEventServiceWithClock(events EventStore, counters CounterStore, analytics AnalyticsStore, badges *BadgeService, clock func() time.Time) *EventService {
	return &EventService{events: events, counters: counters, analytics: analytics, badges: badges, clock: clock}
}

// RecordedEvent is the outcome of ingesting one event.
type RecordedEvent struct {
	NewBadges []models.UserBadge `json:"new_badges,omitempty"`
}

type eventRule struct {
	counter    string // "" when the event moves no badge counter
	totalField string
	userField  string
	userFlag   bool // userField is a boolean flag rather than a count
	qualifying bool // counts toward the daily streak
}

var eventRules = map[string]eventRule{
	models.EventNudgeAnswered: {counter: catalog.CounterNudgesAnswered, totalField: "nudges_answered", userField: "nudge_answered", userFlag: true, qualifying: true},
	models.EventNudgeSkipped:  {totalField: "nudges_skipped", userField: "nudge_skipped", userFlag: true},
	models.EventPollCreated:   {counter: catalog.CounterPollsCreated, totalField: "polls_created", userField: "polls_created", qualifying: true},
	models.EventPollVoted:     {counter: catalog.CounterPollsVoted, totalField: "polls_voted", userField: "polls_voted", qualifying: true},
	models.EventStoryRead:     {counter: catalog.CounterStoriesRead, totalField: "stories_read", userField: "stories_read", qualifying: true},
	models.EventFeedbackSent:  {counter: catalog.CounterFeedbackSent, totalField: "feedback_completed", userField: "feedback_completed", userFlag: true, qualifying: true},
	models.EventLogin:         {counter: catalog.CounterLogins, totalField: "logins", userField: "logins"},
	models.EventSessionTime:   {totalField: "session_minutes", userField: "session_minutes"},
}

// Record ingests one engagement event for a user. Analytics writes ride on
// the same call but a failed badge or analytics step never undoes the event.
func (s *EventService) Record(ctx context.Context, userID primitive.ObjectID, familyID, eventType string, value int, targetID string) (*RecordedEvent, error) {
	rule, ok := eventRules[eventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if value <= 0 {
		value = 1
	}

	event := &models.EngagementEvent{
		UserID:    userID,
		FamilyID:  familyID,
		Type:      eventType,
		Value:     value,
		TargetID:  targetID,
		Timestamp: s.clock(),
	}
	if err := s.events.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to record event: %v", err)
	}

	date := s.clock().Format(models.DateKeyFormat)
	result := &RecordedEvent{}

	// Daily analytics for the family and the user.
	if rule.totalField != "" {
		if err := s.analytics.IncTotal(ctx, familyID, date, rule.totalField, value); err != nil {
			logger.Log.WithError(err).Warn("Failed to update family analytics")
		}
	}
	if rule.userField != "" {
		var err error
		if rule.userFlag {
			err = s.analytics.SetUserFlag(ctx, familyID, date, userID.Hex(), rule.userField, true)
		} else {
			err = s.analytics.IncUserMetric(ctx, familyID, date, userID.Hex(), rule.userField, value)
		}
		if err != nil {
			logger.Log.WithError(err).Warn("Failed to update user analytics")
		}
	}

	// Counters drive badges; their failure is worth surfacing.
	if rule.counter != "" {
		counters, err := s.counters.IncrementCounter(ctx, userID, rule.counter, int64(value))
		if err != nil {
			return result, fmt.Errorf("failed to update counters: %v", err)
		}

		badges, err := s.badges.EvaluateCounter(ctx, userID, rule.counter, counters)
		if err != nil {
			logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Badge evaluation failed")
		}
		result.NewBadges = append(result.NewBadges, badges...)
	}

	if rule.qualifying {
		badges, err := s.touchStreak(ctx, userID, date)
		if err != nil {
			logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Streak update failed")
		}
		result.NewBadges = append(result.NewBadges, badges...)
	}

	return result, nil
}

// RecordIslamicAnswer is the progression tracker's ingestion path: quiz
// answers move their own counter and analytics fields.
func (s *EventService) RecordIslamicAnswer(ctx context.Context, userID primitive.ObjectID, familyID string, correct bool) (*RecordedEvent, error) {
	date := s.clock().Format(models.DateKeyFormat)
	result := &RecordedEvent{}

	if err := s.analytics.IncTotal(ctx, familyID, date, "islamic_answered", 1); err != nil {
		logger.Log.WithError(err).Warn("Failed to update family analytics")
	}
	if err := s.analytics.IncUserMetric(ctx, familyID, date, userID.Hex(), "islamic_answered", 1); err != nil {
		logger.Log.WithError(err).Warn("Failed to update user analytics")
	}
	if correct {
		if err := s.analytics.IncUserMetric(ctx, familyID, date, userID.Hex(), "islamic_correct", 1); err != nil {
			logger.Log.WithError(err).Warn("Failed to update user analytics")
		}
	}

	counters, err := s.counters.IncrementCounter(ctx, userID, catalog.CounterIslamicAnswered, 1)
	if err != nil {
		return result, fmt.Errorf("failed to update counters: %v", err)
	}

	badges, err := s.badges.EvaluateCounter(ctx, userID, catalog.CounterIslamicAnswered, counters)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Badge evaluation failed")
	}
	result.NewBadges = append(result.NewBadges, badges...)

	streakBadges, err := s.touchStreak(ctx, userID, date)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Warn("Streak update failed")
	}
	result.NewBadges = append(result.NewBadges, streakBadges...)

	return result, nil
}

// touchStreak extends or restarts the user's consecutive-day streak for a
// qualifying interaction, then evaluates streak badges if the streak moved.
func (s *EventService) touchStreak(ctx context.Context, userID primitive.ObjectID, date string) ([]models.UserBadge, error) {
	counters, err := s.counters.GetCounters(ctx, userID.Hex())
	if err != nil {
		return nil, err
	}

	current, longest := 1, 1
	if counters != nil {
		if counters.LastActiveDate == date {
			return nil, nil // already counted today
		}
		yesterday := s.clock().AddDate(0, 0, -1).Format(models.DateKeyFormat)
		if counters.LastActiveDate == yesterday {
			current = counters.CurrentStreak + 1
		}
		longest = counters.LongestStreak
		if current > longest {
			longest = current
		}
	}

	updated, err := s.counters.UpdateStreak(ctx, userID, current, longest, date)
	if err != nil {
		return nil, err
	}

	return s.badges.EvaluateCounter(ctx, userID, catalog.CounterStreakDays, updated)
}
