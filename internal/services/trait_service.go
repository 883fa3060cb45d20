package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TraitStore is the slice of the trait repository the rotation manager needs.
type TraitStore interface {
	GetTraitState(ctx context.Context, userIDHex string) (*models.UserTraitState, error)
	UpsertTraitState(ctx context.Context, state *models.UserTraitState) error
}

// TraitService decides which personalization trait is active for a user this
// week. Reading the active trait is a pure function of stored state and the
// clock; persisting the advanced index is a separate, explicit step so
// repeated reads never drift the rotation.
type TraitService struct {
	store TraitStore
	clock func() time.Time
}

func NewTraitService(store TraitStore) *TraitService {
	return &TraitService{store: store, clock: time.Now}
}

// NewTraitServiceWithClock is used by tests to pin the rotation clock.
func NewTraitServiceWithClock(store TraitStore, clock func() time.Time) *TraitService {
	return &TraitService{store: store, clock: clock}
}

// ElapsedWeeks counts full 7-day periods between two moments. Partial weeks
// never advance the rotation.
func ElapsedWeeks(since, now time.Time) int {
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / (24 * 7))
}

// ActiveTraitIndex returns the index of the currently active trait, or -1
// when the user has no traits.
func ActiveTraitIndex(state *models.UserTraitState, now time.Time) int {
	if state == nil || len(state.Traits) == 0 {
		return -1
	}
	if len(state.Traits) == 1 {
		return 0
	}
	weeks := ElapsedWeeks(state.LastRotationDate, now)
	return (state.CurrentRotationIndex + weeks) % len(state.Traits)
}

// ActiveTrait returns the trait id active right now, or "" when the user has
// no traits to rotate.
func (s *TraitService) ActiveTrait(state *models.UserTraitState) string {
	idx := ActiveTraitIndex(state, s.clock())
	if idx < 0 {
		return ""
	}
	return state.Traits[idx]
}

// EnsureTraitState loads the user's rotation state, creating it on first
// request. If the profile's trait list no longer matches the stored snapshot
// the rotation resets to index 0 with a fresh week clock; carrying an index
// into a different list would point at an arbitrary trait.
func (s *TraitService) EnsureTraitState(ctx context.Context, userID primitive.ObjectID, profileTraits []string) (*models.UserTraitState, error) {
	state, err := s.store.GetTraitState(ctx, userID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to load trait state: %v", err)
	}

	if state != nil && sameTraits(state.Traits, profileTraits) {
		return state, nil
	}

	reset := state != nil
	state = &models.UserTraitState{
		ID:                   userID.Hex(),
		UserID:               userID,
		Traits:               append([]string(nil), profileTraits...),
		CurrentRotationIndex: 0,
		LastRotationDate:     s.clock(),
	}

	if err := s.store.UpsertTraitState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save trait state: %v", err)
	}

	if reset {
		logger.Log.WithField("user_id", userID.Hex()).Info("Trait list changed, rotation reset")
	}
	return state, nil
}

// CommitRotation folds elapsed whole weeks into the stored index so the
// document reflects the trait actually served. Called by the orchestrator
// after generation; returns whether anything was persisted.
func (s *TraitService) CommitRotation(ctx context.Context, state *models.UserTraitState) (bool, error) {
	if state == nil || len(state.Traits) < 2 {
		return false, nil
	}

	now := s.clock()
	weeks := ElapsedWeeks(state.LastRotationDate, now)
	if weeks == 0 {
		return false, nil
	}

	state.CurrentRotationIndex = (state.CurrentRotationIndex + weeks) % len(state.Traits)
	state.LastRotationDate = state.LastRotationDate.Add(time.Duration(weeks) * 7 * 24 * time.Hour)

	if err := s.store.UpsertTraitState(ctx, state); err != nil {
		return false, fmt.Errorf("failed to commit rotation: %v", err)
	}
	return true, nil
}

func sameTraits(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
