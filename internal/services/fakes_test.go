package services

import (
	"context"
	"os"
	"testing"

	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

// fakeTraitStore keeps trait states in memory.
type fakeTraitStore struct {
	states  map[string]*models.UserTraitState
	upserts int
	failGet error
	failPut error
}

func newFakeTraitStore() *fakeTraitStore {
	return &fakeTraitStore{states: make(map[string]*models.UserTraitState)}
}

func (f *fakeTraitStore) GetTraitState(ctx context.Context, userIDHex string) (*models.UserTraitState, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	state, ok := f.states[userIDHex]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (f *fakeTraitStore) UpsertTraitState(ctx context.Context, state *models.UserTraitState) error {
	if f.failPut != nil {
		return f.failPut
	}
	copied := *state
	f.states[state.ID] = &copied
	f.upserts++
	return nil
}

// fakeNudgeStore keeps nudge records in memory and enforces the unique id.
type fakeNudgeStore struct {
	records    map[string]*models.NudgeRecord
	failInsert error
	failGet    error
	// missFirstGet makes the first lookup miss even when the record exists,
	// so a concurrent writer can sneak in between the check and the insert.
	missFirstGet bool
}

func newFakeNudgeStore() *fakeNudgeStore {
	return &fakeNudgeStore{records: make(map[string]*models.NudgeRecord)}
}

func (f *fakeNudgeStore) InsertNudge(ctx context.Context, record *models.NudgeRecord) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	if _, exists := f.records[record.ID]; exists {
		return repository.ErrAlreadyExists
	}
	copied := *record
	f.records[record.ID] = &copied
	return nil
}

func (f *fakeNudgeStore) GetNudgeByID(ctx context.Context, id string) (*models.NudgeRecord, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	if f.missFirstGet {
		f.missFirstGet = false
		return nil, nil
	}
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakeNudgeStore) GetNudgesByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.NudgeRecord, error) {
	var out []models.NudgeRecord
	for _, record := range f.records {
		if record.UserID == userID {
			out = append(out, *record)
		}
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

// fakeProgressStore keeps progression documents in memory.
type fakeProgressStore struct {
	progress map[string]*models.IslamicProgress
	failGet  error
	failAdd  error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{progress: make(map[string]*models.IslamicProgress)}
}

func (f *fakeProgressStore) GetProgress(ctx context.Context, userIDHex string) (*models.IslamicProgress, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	p, ok := f.progress[userIDHex]
	if !ok {
		return nil, nil
	}
	copied := *p
	copied.AnsweredQuestions = append([]string(nil), p.AnsweredQuestions...)
	return &copied, nil
}

func (f *fakeProgressStore) AddAnsweredQuestion(ctx context.Context, userID primitive.ObjectID, questionID, nextQuestionID string) error {
	if f.failAdd != nil {
		return f.failAdd
	}
	p, ok := f.progress[userID.Hex()]
	if !ok {
		p = &models.IslamicProgress{ID: userID.Hex(), UserID: userID}
		f.progress[userID.Hex()] = p
	}
	for _, id := range p.AnsweredQuestions {
		if id == questionID {
			return nil
		}
	}
	p.AnsweredQuestions = append(p.AnsweredQuestions, questionID)
	p.CurrentQuestionID = nextQuestionID
	return nil
}

// fakeBadgeStore keeps award documents in memory with duplicate detection.
type fakeBadgeStore struct {
	awards     map[string]*models.UserBadge
	inserts    int
	failInsert error
}

func newFakeBadgeStore() *fakeBadgeStore {
	return &fakeBadgeStore{awards: make(map[string]*models.UserBadge)}
}

func (f *fakeBadgeStore) InsertBadge(ctx context.Context, badge *models.UserBadge) error {
	if f.failInsert != nil {
		return f.failInsert
	}
	if _, exists := f.awards[badge.ID]; exists {
		return repository.ErrAlreadyExists
	}
	copied := *badge
	f.awards[badge.ID] = &copied
	f.inserts++
	return nil
}

func (f *fakeBadgeStore) HasBadge(ctx context.Context, awardID string) (bool, error) {
	_, ok := f.awards[awardID]
	return ok, nil
}

func (f *fakeBadgeStore) GetUserBadges(ctx context.Context, userID primitive.ObjectID) ([]models.UserBadge, error) {
	var out []models.UserBadge
	for _, badge := range f.awards {
		if badge.UserID == userID {
			out = append(out, *badge)
		}
	}
	return out, nil
}

func (f *fakeBadgeStore) MarkNotificationSent(ctx context.Context, awardID string) error {
	if badge, ok := f.awards[awardID]; ok {
		badge.NotificationSent = true
	}
	return nil
}

// fakeCounterStore keeps counter documents in memory.
type fakeCounterStore struct {
	counters map[string]*models.UserCounters
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counters: make(map[string]*models.UserCounters)}
}

func (f *fakeCounterStore) doc(userID primitive.ObjectID) *models.UserCounters {
	c, ok := f.counters[userID.Hex()]
	if !ok {
		c = &models.UserCounters{ID: userID.Hex(), UserID: userID, Counters: make(map[string]int64)}
		f.counters[userID.Hex()] = c
	}
	return c
}

func (f *fakeCounterStore) IncrementCounter(ctx context.Context, userID primitive.ObjectID, name string, delta int64) (*models.UserCounters, error) {
	c := f.doc(userID)
	c.Counters[name] += delta
	copied := *c
	return &copied, nil
}

func (f *fakeCounterStore) GetCounters(ctx context.Context, userIDHex string) (*models.UserCounters, error) {
	c, ok := f.counters[userIDHex]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCounterStore) UpdateStreak(ctx context.Context, userID primitive.ObjectID, current, longest int, lastActiveDate string) (*models.UserCounters, error) {
	c := f.doc(userID)
	c.CurrentStreak = current
	c.LongestStreak = longest
	c.LastActiveDate = lastActiveDate
	c.Counters["streak_days"] = int64(current)
	copied := *c
	return &copied, nil
}

// fakeAnalyticsStore keeps daily documents in memory keyed by family_date.
type fakeAnalyticsStore struct {
	days     map[string]*models.DailyAnalytics
	failMark error
}

func newFakeAnalyticsStore() *fakeAnalyticsStore {
	return &fakeAnalyticsStore{days: make(map[string]*models.DailyAnalytics)}
}

func (f *fakeAnalyticsStore) day(familyID, date string) *models.DailyAnalytics {
	id := models.DailyAnalyticsID(familyID, date)
	doc, ok := f.days[id]
	if !ok {
		doc = &models.DailyAnalytics{
			ID:          id,
			FamilyID:    familyID,
			Date:        date,
			UserMetrics: make(map[string]models.UserDailyMetrics),
		}
		f.days[id] = doc
	}
	return doc
}

func (f *fakeAnalyticsStore) IncTotal(ctx context.Context, familyID, date, field string, delta int) error {
	if f.failMark != nil {
		return f.failMark
	}
	doc := f.day(familyID, date)
	switch field {
	case "nudges_shown":
		doc.Metrics.NudgesShown += delta
	case "nudges_answered":
		doc.Metrics.NudgesAnswered += delta
	case "nudges_skipped":
		doc.Metrics.NudgesSkipped += delta
	case "feedback_completed":
		doc.Metrics.FeedbackCompleted += delta
	case "polls_voted":
		doc.Metrics.PollsVoted += delta
	case "polls_created":
		doc.Metrics.PollsCreated += delta
	case "islamic_answered":
		doc.Metrics.IslamicAnswered += delta
	case "stories_read":
		doc.Metrics.StoriesRead += delta
	case "logins":
		doc.Metrics.Logins += delta
	case "session_minutes":
		doc.Metrics.SessionMinutes += delta
	}
	return nil
}

func (f *fakeAnalyticsStore) IncUserMetric(ctx context.Context, familyID, date, userIDHex, field string, delta int) error {
	doc := f.day(familyID, date)
	m := doc.UserMetrics[userIDHex]
	switch field {
	case "polls_voted":
		m.PollsVoted += delta
	case "polls_created":
		m.PollsCreated += delta
	case "islamic_answered":
		m.IslamicAnswered += delta
	case "islamic_correct":
		m.IslamicCorrect += delta
	case "stories_read":
		m.StoriesRead += delta
	case "session_minutes":
		m.SessionMinutes += delta
	case "logins":
		m.Logins += delta
	}
	doc.UserMetrics[userIDHex] = m
	return nil
}

func (f *fakeAnalyticsStore) SetUserFlag(ctx context.Context, familyID, date, userIDHex, field string, value bool) error {
	if f.failMark != nil {
		return f.failMark
	}
	doc := f.day(familyID, date)
	m := doc.UserMetrics[userIDHex]
	switch field {
	case "nudge_shown":
		m.NudgeShown = value
	case "nudge_answered":
		m.NudgeAnswered = value
	case "nudge_skipped":
		m.NudgeSkipped = value
	case "feedback_completed":
		m.FeedbackCompleted = value
	}
	doc.UserMetrics[userIDHex] = m
	return nil
}

func (f *fakeAnalyticsStore) SetOptimization(ctx context.Context, familyID, date string, hints *models.OptimizationHints) error {
	f.day(familyID, date).Optimization = hints
	return nil
}

func (f *fakeAnalyticsStore) SetEngagementRate(ctx context.Context, familyID, date string, rate float64) error {
	f.day(familyID, date).Metrics.EngagementRate = rate
	return nil
}

func (f *fakeAnalyticsStore) GetDaily(ctx context.Context, familyID, date string) (*models.DailyAnalytics, error) {
	doc, ok := f.days[models.DailyAnalyticsID(familyID, date)]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (f *fakeAnalyticsStore) GetRange(ctx context.Context, familyID, from, to string) ([]models.DailyAnalytics, error) {
	var out []models.DailyAnalytics
	for _, doc := range f.days {
		if doc.FamilyID == familyID && doc.Date >= from && doc.Date <= to {
			out = append(out, *doc)
		}
	}
	// Lexicographic date order, oldest first, mirrors the real query.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date < out[i].Date {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

// fakeEventStore records ingested raw events.
type fakeEventStore struct {
	events []models.EngagementEvent
}

func (f *fakeEventStore) CreateEvent(ctx context.Context, event *models.EngagementEvent) error {
	f.events = append(f.events, *event)
	return nil
}
