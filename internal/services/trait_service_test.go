package services

import (
	"context"
	"testing"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestElapsedWeeks(t *testing.T) {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedWeeks(base, base))
	assert.Equal(t, 0, ElapsedWeeks(base, base.AddDate(0, 0, 6)))
	assert.Equal(t, 1, ElapsedWeeks(base, base.AddDate(0, 0, 7)))
	assert.Equal(t, 1, ElapsedWeeks(base, base.AddDate(0, 0, 8)))
	assert.Equal(t, 2, ElapsedWeeks(base, base.AddDate(0, 0, 14)))
	// Clock skew never rotates backwards.
	assert.Equal(t, 0, ElapsedWeeks(base, base.AddDate(0, 0, -3)))
}

func TestActiveTrait_AdvancesOncePerWholeWeek(t *testing.T) {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	state := &models.UserTraitState{
		UserID:               primitive.NewObjectID(),
		Traits:               []string{"curious", "creative", "helpful"},
		CurrentRotationIndex: 0,
		LastRotationDate:     base,
	}

	svc := NewTraitServiceWithClock(newFakeTraitStore(), fixedClock(base.AddDate(0, 0, 8)))
	assert.Equal(t, "creative", svc.ActiveTrait(state))

	// Mid-week reads keep returning the same trait.
	svc = NewTraitServiceWithClock(newFakeTraitStore(), fixedClock(base.AddDate(0, 0, 13)))
	assert.Equal(t, "creative", svc.ActiveTrait(state))

	// Wrap-around after a full cycle.
	svc = NewTraitServiceWithClock(newFakeTraitStore(), fixedClock(base.AddDate(0, 0, 21)))
	assert.Equal(t, "curious", svc.ActiveTrait(state))
}

func TestActiveTrait_SingleTraitAlwaysActive(t *testing.T) {
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	state := &models.UserTraitState{
		Traits:           []string{"kind"},
		LastRotationDate: base,
	}

	svc := NewTraitServiceWithClock(newFakeTraitStore(), fixedClock(base.AddDate(0, 0, 60)))
	assert.Equal(t, "kind", svc.ActiveTrait(state))
}

func TestActiveTrait_NoTraits(t *testing.T) {
	svc := NewTraitServiceWithClock(newFakeTraitStore(), time.Now)
	assert.Equal(t, "", svc.ActiveTrait(&models.UserTraitState{}))
	assert.Equal(t, "", svc.ActiveTrait(nil))
}

func TestEnsureTraitState_CreatesOnFirstRequest(t *testing.T) {
	store := newFakeTraitStore()
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	svc := NewTraitServiceWithClock(store, fixedClock(now))
	userID := primitive.NewObjectID()

	state, err := svc.EnsureTraitState(context.Background(), userID, []string{"brave", "honest"})
	require.NoError(t, err)
	assert.Equal(t, []string{"brave", "honest"}, state.Traits)
	assert.Equal(t, 0, state.CurrentRotationIndex)
	assert.Equal(t, now, state.LastRotationDate)
	assert.Equal(t, 1, store.upserts)
}

func TestEnsureTraitState_ResetsWhenTraitListChanges(t *testing.T) {
	store := newFakeTraitStore()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	userID := primitive.NewObjectID()
	store.states[userID.Hex()] = &models.UserTraitState{
		ID:                   userID.Hex(),
		UserID:               userID,
		Traits:               []string{"curious", "creative"},
		CurrentRotationIndex: 1,
		LastRotationDate:     base,
	}

	now := base.AddDate(0, 0, 10)
	svc := NewTraitServiceWithClock(store, fixedClock(now))

	state, err := svc.EnsureTraitState(context.Background(), userID, []string{"curious", "kind", "honest"})
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentRotationIndex)
	assert.Equal(t, now, state.LastRotationDate)
	assert.Equal(t, []string{"curious", "kind", "honest"}, state.Traits)
}

func TestEnsureTraitState_UnchangedListKeepsState(t *testing.T) {
	store := newFakeTraitStore()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	userID := primitive.NewObjectID()
	store.states[userID.Hex()] = &models.UserTraitState{
		ID:                   userID.Hex(),
		UserID:               userID,
		Traits:               []string{"curious", "creative"},
		CurrentRotationIndex: 1,
		LastRotationDate:     base,
	}

	svc := NewTraitServiceWithClock(store, fixedClock(base.AddDate(0, 0, 3)))

	state, err := svc.EnsureTraitState(context.Background(), userID, []string{"curious", "creative"})
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentRotationIndex)
	assert.Equal(t, 0, store.upserts)
}

func TestCommitRotation_FoldsElapsedWeeks(t *testing.T) {
	store := newFakeTraitStore()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	userID := primitive.NewObjectID()
	state := &models.UserTraitState{
		ID:                   userID.Hex(),
		UserID:               userID,
		Traits:               []string{"curious", "creative", "helpful"},
		CurrentRotationIndex: 2,
		LastRotationDate:     base,
	}

	svc := NewTraitServiceWithClock(store, fixedClock(base.AddDate(0, 0, 9)))

	committed, err := svc.CommitRotation(context.Background(), state)
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, 0, state.CurrentRotationIndex) // (2+1) mod 3
	assert.Equal(t, base.Add(7*24*time.Hour), state.LastRotationDate)
	require.Contains(t, store.states, userID.Hex())
}

func TestCommitRotation_NoopWithinTheWeek(t *testing.T) {
	store := newFakeTraitStore()
	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	state := &models.UserTraitState{
		Traits:           []string{"curious", "creative"},
		LastRotationDate: base,
	}

	svc := NewTraitServiceWithClock(store, fixedClock(base.AddDate(0, 0, 6)))

	committed, err := svc.CommitRotation(context.Background(), state)
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, 0, store.upserts)
}
