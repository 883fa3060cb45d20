package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	"github.com/Nuray2204/FamilyHub/pkg/cache"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NudgeStore is the slice of the nudge repository the orchestrator needs.
type NudgeStore interface {
	InsertNudge(ctx context.Context, record *models.NudgeRecord) error
	GetNudgeByID(ctx context.Context, id string) (*models.NudgeRecord, error)
	GetNudgesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.NudgeRecord, error)
}

// NudgeService is the daily content orchestrator. It guarantees exactly one
// nudge per user per calendar day: the record's id is derived from the date,
// so a repeat invocation finds the existing record and returns it unchanged,
// and a concurrent first generation loses the insert race harmlessly.
type NudgeService struct {
	store     NudgeStore
	traits    *TraitService
	progress  *ProgressService
	analytics *AnalyticsService
	selector  *NudgeSelector
	hintCache *cache.TTLCache
	familyID  string
	clock     func() time.Time
}

func NewNudgeService(store NudgeStore, traits *TraitService, progress *ProgressService, analytics *AnalyticsService, selector *NudgeSelector, familyID string) *NudgeService {
	return &NudgeService{
		store:     store,
		traits:    traits,
		progress:  progress,
		analytics: analytics,
		selector:  selector,
		hintCache: cache.NewTTLCache(15 * time.Minute),
		familyID:  familyID,
		clock:     time.Now,
	}
}

// NewNudgeServiceWithClock is used by tests to pin the generation day.
func NewNudgeServiceWithClock(store NudgeStore, traits *TraitService, progress *ProgressService, analytics *AnalyticsService, selector *NudgeSelector, familyID string, clock func() time.Time) *NudgeService {
	s := NewNudgeService(store, traits, progress, analytics, selector, familyID)
	s.clock = clock
	return s
}

// DailyNudgeResult is the orchestrator's answer for one user and day.
// Generated is false on the idempotent path, where today's record already
// existed.
type DailyNudgeResult struct {
	Record    *models.NudgeRecord `json:"record"`
	Generated bool                `json:"generated"`
}

// GetDailyNudge returns today's nudge for the user, generating and
// persisting it on first call. A nudge is never returned without having been
// persisted first; a store failure propagates instead.
func (s *NudgeService) GetDailyNudge(ctx context.Context, user *models.User) (*DailyNudgeResult, error) {
	date := s.clock().Format(models.DateKeyFormat)
	recordID := models.NudgeRecordID(user.ID, date)

	existing, err := s.store.GetNudgeByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check today's nudge: %v", err)
	}
	if existing != nil {
		return &DailyNudgeResult{Record: existing, Generated: false}, nil
	}

	state, err := s.traits.EnsureTraitState(ctx, user.ID, user.Traits)
	if err != nil {
		return nil, err
	}

	activeTrait := s.traits.ActiveTrait(state)
	traitName := ""
	if t := catalog.TraitByID(activeTrait); t != nil {
		traitName = t.DisplayName
	}

	// Placeholder inputs degrade to neutral defaults; only the nudge write
	// itself is load-bearing.
	ayah := ""
	progress, err := s.progress.GetProgress(ctx, user.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID.Hex()).Warn("Progress unavailable, using default ayah")
	} else {
		ayah = CurrentAyah(progress)
	}

	hints := s.optimizationHints(ctx, date)

	template, err := s.selector.SelectTemplate(user.Traits, hints)
	if err != nil {
		return nil, fmt.Errorf("failed to select template: %v", err)
	}

	character := s.selector.PickCharacter()
	text := s.selector.ResolvePlaceholders(template, PlaceholderData{
		TraitName: traitName,
		Ayah:      ayah,
		Character: character,
	})

	record := &models.NudgeRecord{
		ID:            recordID,
		UserID:        user.ID,
		Date:          date,
		TemplateID:    template.ID,
		Type:          template.Type,
		GeneratedText: text,
	}
	if character != nil {
		record.Character = character.Name
	}
	if activeTrait != "" {
		record.TraitsUsed = []string{activeTrait}
	}

	err = s.store.InsertNudge(ctx, record)
	if err == repository.ErrAlreadyExists {
		// A concurrent generation won the insert; serve the winner.
		winner, readErr := s.store.GetNudgeByID(ctx, recordID)
		if readErr != nil || winner == nil {
			return nil, fmt.Errorf("failed to read concurrent nudge: %v", readErr)
		}
		return &DailyNudgeResult{Record: winner, Generated: false}, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.traits.CommitRotation(ctx, state); err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID.Hex()).Warn("Failed to persist trait rotation")
	}
	if err := s.analytics.MarkNudgeShown(ctx, s.familyID, date, user.ID.Hex()); err != nil {
		logger.Log.WithError(err).Warn("Failed to record nudge in analytics")
	}

	return &DailyNudgeResult{Record: record, Generated: true}, nil
}

// optimizationHints fetches today's hints, memoized so a batch run over the
// whole family computes them once. Hints are advisory: failure to load them
// never blocks generation.
func (s *NudgeService) optimizationHints(ctx context.Context, date string) *models.OptimizationHints {
	key := s.familyID + "_" + date
	if cached, ok := s.hintCache.Get(key); ok {
		return cached.(*models.OptimizationHints)
	}

	hints, err := s.analytics.OptimizationForToday(ctx, s.familyID)
	if err != nil {
		logger.Log.WithError(err).Warn("Optimization hints unavailable, selecting with base weights")
		return nil
	}

	s.hintCache.Set(key, hints)
	return hints
}

// GetHistory returns the user's recent nudges, newest first.
func (s *NudgeService) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.NudgeRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	records, err := s.store.GetNudgesByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nudge history: %v", err)
	}
	return records, nil
}
