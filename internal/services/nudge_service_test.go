package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nudgeFixture struct {
	svc       *NudgeService
	nudges    *fakeNudgeStore
	traits    *fakeTraitStore
	progress  *fakeProgressStore
	analytics *fakeAnalyticsStore
	now       time.Time
}

func newNudgeFixture() *nudgeFixture {
	f := &nudgeFixture{
		nudges:    newFakeNudgeStore(),
		traits:    newFakeTraitStore(),
		progress:  newFakeProgressStore(),
		analytics: newFakeAnalyticsStore(),
		now:       time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}
	clock := fixedClock(f.now)

	traitSvc := NewTraitServiceWithClock(f.traits, clock)
	badgeSvc := NewBadgeServiceWithClock(newFakeBadgeStore(), clock)
	eventSvc := NewEventServiceWithClock(&fakeEventStore{}, newFakeCounterStore(), f.analytics, badgeSvc, clock)
	progressSvc := NewProgressService(f.progress, eventSvc)
	analyticsSvc := NewAnalyticsServiceWithClock(f.analytics, clock)
	selector := NewNudgeSelector(rand.New(rand.NewSource(5)))

	f.svc = NewNudgeServiceWithClock(f.nudges, traitSvc, progressSvc, analyticsSvc, selector, "fam-1", clock)
	return f
}

func testUser(traits ...string) *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		Username: "amina",
		Traits:   traits,
		FamilyID: "fam-1",
	}
}

func TestGetDailyNudge_GeneratesAndPersists(t *testing.T) {
	f := newNudgeFixture()
	user := testUser("curious", "kind")

	result, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, result.Generated)
	require.NotNil(t, result.Record)

	assert.Equal(t, models.NudgeRecordID(user.ID, "2026-02-10"), result.Record.ID)
	assert.Equal(t, "2026-02-10", result.Record.Date)
	assert.NotEmpty(t, result.Record.TemplateID)
	assert.NotEmpty(t, result.Record.GeneratedText)
	assert.NotContains(t, result.Record.GeneratedText, "{{")

	// Persisted under the deterministic id before being returned.
	stored, err := f.nudges.GetNudgeByID(context.Background(), result.Record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The shown nudge is visible in today's analytics.
	day := f.analytics.day("fam-1", "2026-02-10")
	assert.Equal(t, 1, day.Metrics.NudgesShown)
	assert.True(t, day.UserMetrics[user.ID.Hex()].NudgeShown)
}

func TestGetDailyNudge_SecondCallReturnsSameRecord(t *testing.T) {
	f := newNudgeFixture()
	user := testUser("creative")

	first, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	require.True(t, first.Generated)

	second, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, second.Generated)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, first.Record.GeneratedText, second.Record.GeneratedText)

	// Exactly one record for the day.
	assert.Len(t, f.nudges.records, 1)
}

func TestGetDailyNudge_LostInsertRaceServesWinner(t *testing.T) {
	f := newNudgeFixture()
	user := testUser("brave")
	recordID := models.NudgeRecordID(user.ID, "2026-02-10")

	// Another writer owns today's id but the initial existence check misses
	// it, so generation runs and the insert collides.
	winner := &models.NudgeRecord{
		ID:            recordID,
		UserID:        user.ID,
		Date:          "2026-02-10",
		TemplateID:    "pos-1",
		GeneratedText: "the winner's text",
	}
	f.nudges.records[recordID] = winner
	f.nudges.missFirstGet = true

	result, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, result.Generated)
	assert.Equal(t, "the winner's text", result.Record.GeneratedText)
}

func TestGetDailyNudge_StoreFailurePropagates(t *testing.T) {
	f := newNudgeFixture()
	f.nudges.failInsert = errors.New("write timeout")

	_, err := f.svc.GetDailyNudge(context.Background(), testUser("honest"))
	assert.Error(t, err)
}

func TestGetDailyNudge_RecordsActiveTrait(t *testing.T) {
	f := newNudgeFixture()
	user := testUser("patient", "generous")

	result, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, result.Record.TraitsUsed, 1)
	assert.Equal(t, "patient", result.Record.TraitsUsed[0])
}

func TestGetDailyNudge_NoTraitsStillGenerates(t *testing.T) {
	f := newNudgeFixture()
	user := testUser()

	result, err := f.svc.GetDailyNudge(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, result.Generated)
	assert.Empty(t, result.Record.TraitsUsed)
}

func TestGetHistory_ClampsLimit(t *testing.T) {
	f := newNudgeFixture()
	userID := primitive.NewObjectID()

	for i := 0; i < 5; i++ {
		date := time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC).Format(models.DateKeyFormat)
		id := models.NudgeRecordID(userID, date)
		f.nudges.records[id] = &models.NudgeRecord{ID: id, UserID: userID, Date: date}
	}

	records, err := f.svc.GetHistory(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, records, 5)

	records, err = f.svc.GetHistory(context.Background(), userID, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
