package services

import (
	"context"
	"testing"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestProgressService(store *fakeProgressStore) (*ProgressService, *fakeBadgeStore, *fakeCounterStore) {
	badgeStore := newFakeBadgeStore()
	counterStore := newFakeCounterStore()
	clock := fixedClock(time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))
	badges := NewBadgeServiceWithClock(badgeStore, clock)
	events := NewEventServiceWithClock(&fakeEventStore{}, counterStore, newFakeAnalyticsStore(), badges, clock)
	return NewProgressService(store, events), badgeStore, counterStore
}

func TestNextQuestionID_WalksCatalogOrder(t *testing.T) {
	id, ok := NextQuestionID(nil)
	require.True(t, ok)
	assert.Equal(t, catalog.Questions[0].ID, id)

	id, ok = NextQuestionID([]string{"allah-1", "allah-2"})
	require.True(t, ok)
	assert.Equal(t, "allah-3", id)

	// Order of answers does not matter, only membership.
	id, ok = NextQuestionID([]string{"allah-2", "allah-1"})
	require.True(t, ok)
	assert.Equal(t, "allah-3", id)
}

func TestNextQuestionID_NeverRepeatsAnswered(t *testing.T) {
	var answered []string
	seen := make(map[string]bool)

	for {
		id, ok := NextQuestionID(answered)
		if !ok {
			break
		}
		require.False(t, seen[id], "question %s issued twice", id)
		seen[id] = true
		answered = append(answered, id)
	}

	assert.Len(t, answered, len(catalog.Questions))
}

func TestNextQuestionID_CompletedBank(t *testing.T) {
	all := make([]string, 0, len(catalog.Questions))
	for _, q := range catalog.Questions {
		all = append(all, q.ID)
	}

	_, ok := NextQuestionID(all)
	assert.False(t, ok)
}

func TestProgressService_NextQuestionForNewUser(t *testing.T) {
	svc, _, _ := newTestProgressService(newFakeProgressStore())

	q, ok, err := svc.NextQuestion(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog.Questions[0].ID, q.ID)
}

func TestProgressService_AnswerAdvancesProgress(t *testing.T) {
	store := newFakeProgressStore()
	svc, _, counters := newTestProgressService(store)
	userID := primitive.NewObjectID()

	q := catalog.QuestionByID("allah-1")
	result, err := svc.AnswerQuestion(context.Background(), userID, "fam-1", "allah-1", q.Answer)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.False(t, result.AlreadyAnswered)
	assert.Equal(t, "allah-2", result.NextQuestionID)
	assert.False(t, result.Completed)

	// The quiz counter moved through the ingestion path.
	doc, err := counters.GetCounters(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Get(catalog.CounterIslamicAnswered))
}

func TestProgressService_WrongChoiceStillAdvances(t *testing.T) {
	store := newFakeProgressStore()
	svc, _, _ := newTestProgressService(store)
	userID := primitive.NewObjectID()

	q := catalog.QuestionByID("allah-1")
	wrong := (q.Answer + 1) % len(q.Choices)

	result, err := svc.AnswerQuestion(context.Background(), userID, "fam-1", "allah-1", wrong)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, "allah-2", result.NextQuestionID)
}

func TestProgressService_ReanswerIsIdempotent(t *testing.T) {
	store := newFakeProgressStore()
	svc, _, counters := newTestProgressService(store)
	userID := primitive.NewObjectID()

	q := catalog.QuestionByID("allah-1")
	_, err := svc.AnswerQuestion(context.Background(), userID, "fam-1", "allah-1", q.Answer)
	require.NoError(t, err)

	result, err := svc.AnswerQuestion(context.Background(), userID, "fam-1", "allah-1", q.Answer)
	require.NoError(t, err)
	assert.True(t, result.AlreadyAnswered)
	assert.Equal(t, "allah-2", result.NextQuestionID)

	// No double counting on the replay.
	doc, err := counters.GetCounters(context.Background(), userID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.Get(catalog.CounterIslamicAnswered))
	assert.Len(t, store.progress[userID.Hex()].AnsweredQuestions, 1)
}

func TestProgressService_UnknownQuestionRejected(t *testing.T) {
	svc, _, _ := newTestProgressService(newFakeProgressStore())

	_, err := svc.AnswerQuestion(context.Background(), primitive.NewObjectID(), "fam-1", "nope-1", 0)
	assert.Error(t, err)
}

func TestProgressService_FinalAnswerCompletesBank(t *testing.T) {
	store := newFakeProgressStore()
	svc, _, _ := newTestProgressService(store)
	userID := primitive.NewObjectID()

	// Pre-answer everything except the last question.
	last := catalog.Questions[len(catalog.Questions)-1]
	for _, q := range catalog.Questions[:len(catalog.Questions)-1] {
		require.NoError(t, store.AddAnsweredQuestion(context.Background(), userID, q.ID, ""))
	}

	result, err := svc.AnswerQuestion(context.Background(), userID, "fam-1", last.ID, last.Answer)
	require.NoError(t, err)
	assert.True(t, result.Completed)
	assert.Empty(t, result.NextQuestionID)

	// Completed state is terminal, not an error.
	_, ok, err := svc.NextQuestion(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrentAyah(t *testing.T) {
	// New user: the first question's ayah is current.
	assert.Equal(t, catalog.Questions[0].Ayah, CurrentAyah(&models.IslamicProgress{}))

	// Next question has no ayah: fall back to the most recent answered one.
	progress := &models.IslamicProgress{AnsweredQuestions: []string{"allah-1"}}
	assert.Equal(t, catalog.QuestionByID("allah-1").Ayah, CurrentAyah(progress))

	// Nil progress falls back to the default.
	assert.Equal(t, catalog.DefaultAyah, CurrentAyah(nil))
}
