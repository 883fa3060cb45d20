package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/catalog"
	"github.com/Nuray2204/FamilyHub/internal/models"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
)

// Engagement classification thresholds. A user's daily rate is realized
// interactions over offered opportunities across the nudge, feedback and
// poll channels.
const (
	riskHighBelow   = 0.3
	riskMediumBelow = 0.6
	trendDelta      = 0.1
	patternWindow   = 7
)

// AnalyticsStore is the slice of the analytics repository the engine needs.
type AnalyticsStore interface {
	IncTotal(ctx context.Context, familyID, date, field string, delta int) error
	IncUserMetric(ctx context.Context, familyID, date, userIDHex, field string, delta int) error
	SetUserFlag(ctx context.Context, familyID, date, userIDHex, field string, value bool) error
	SetOptimization(ctx context.Context, familyID, date string, hints *models.OptimizationHints) error
	SetEngagementRate(ctx context.Context, familyID, date string, rate float64) error
	GetDaily(ctx context.Context, familyID, date string) (*models.DailyAnalytics, error)
	GetRange(ctx context.Context, familyID, from, to string) ([]models.DailyAnalytics, error)
}

// AnalyticsService aggregates daily per-user metrics into family metrics,
// classifies engagement per user and emits the optimization hints the nudge
// selector consumes.
type AnalyticsService struct {
	store AnalyticsStore
	clock func() time.Time
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store, clock: time.Now}
}

// NewAnalyticsServiceWithClock is used by tests to pin the day boundary.
func NewAnalyticsServiceWithClock(store AnalyticsStore, clock func() time.Time) *AnalyticsService {
	return &AnalyticsService{store: store, clock: clock}
}

// EngagementRate computes one user's daily rate. Each channel that was
// offered counts as one opportunity; the nudge channel only counts once a
// nudge was actually shown.
func EngagementRate(m models.UserDailyMetrics) float64 {
	opportunities := 2 // feedback and poll channels are always open
	achieved := 0

	if m.NudgeShown {
		opportunities++
		if m.NudgeAnswered {
			achieved++
		}
	}
	if m.FeedbackCompleted {
		achieved++
	}
	if m.PollsVoted > 0 {
		achieved++
	}

	return float64(achieved) / float64(opportunities)
}

// qualifies reports whether the day counts toward the user's streak.
func qualifies(m models.UserDailyMetrics) bool {
	return m.NudgeAnswered || m.FeedbackCompleted || m.PollsVoted > 0 ||
		m.IslamicAnswered > 0 || m.StoriesRead > 0
}

func classifyRisk(mean float64) string {
	switch {
	case mean < riskHighBelow:
		return "high"
	case mean < riskMediumBelow:
		return "medium"
	default:
		return "low"
	}
}

// classifyTrend compares the mean of the three most recent days against the
// mean of the three earliest days in the window. rates are oldest first.
func classifyTrend(rates []float64) string {
	if len(rates) < 6 {
		return "stable"
	}

	early := (rates[0] + rates[1] + rates[2]) / 3
	recent := (rates[len(rates)-3] + rates[len(rates)-2] + rates[len(rates)-1]) / 3

	switch {
	case recent-early > trendDelta:
		return "increasing"
	case early-recent > trendDelta:
		return "decreasing"
	default:
		return "stable"
	}
}

// AnalyzePatterns derives one engagement pattern per user from the daily
// document history (oldest first). Patterns are computed on demand and never
// persisted as source of truth.
func (s *AnalyticsService) AnalyzePatterns(history []models.DailyAnalytics) []models.EngagementPattern {
	if len(history) > patternWindow {
		history = history[len(history)-patternWindow:]
	}

	// Per-user series, in the history's day order.
	users := make(map[string][]models.UserDailyMetrics)
	var order []string
	for _, day := range history {
		for userID := range day.UserMetrics {
			if _, seen := users[userID]; !seen {
				order = append(order, userID)
			}
		}
	}
	for _, userID := range order {
		series := make([]models.UserDailyMetrics, 0, len(history))
		for _, day := range history {
			series = append(series, day.UserMetrics[userID])
		}
		users[userID] = series
	}

	patterns := make([]models.EngagementPattern, 0, len(order))
	for _, userID := range order {
		series := users[userID]

		rates := make([]float64, len(series))
		sum := 0.0
		for i, m := range series {
			rates[i] = EngagementRate(m)
			sum += rates[i]
		}
		mean := 0.0
		if len(rates) > 0 {
			mean = sum / float64(len(rates))
		}

		streak := 0
		for i := len(series) - 1; i >= 0; i-- {
			if !qualifies(series[i]) {
				break
			}
			streak++
		}

		patterns = append(patterns, models.EngagementPattern{
			UserID:              userID,
			WeeklyTrend:         classifyTrend(rates),
			PreferredNudgeTypes: preferredTypes(series),
			StreakDays:          streak,
			RiskLevel:           classifyRisk(mean),
		})
	}

	return patterns
}

func preferredTypes(series []models.UserDailyMetrics) []string {
	islamic, stories, answered := 0, 0, 0
	for _, m := range series {
		islamic += m.IslamicAnswered
		stories += m.StoriesRead
		if m.NudgeAnswered {
			answered++
		}
	}

	var types []string
	if islamic > 0 {
		types = append(types, catalog.TypeIslamic)
	}
	if stories > 0 {
		types = append(types, catalog.TypeBonding)
	}
	if answered > 0 || len(types) == 0 {
		types = append(types, catalog.TypePositive)
	}
	return types
}

// Recommend turns per-user patterns into family-wide optimization hints.
// High-risk users become candidates for more positive and bonding content;
// low-risk users on an upward trend can take more reflective material. The
// recommended type set can lean constructive only through the selector's
// bounded boost, so the non-constructive floor holds regardless.
func (s *AnalyticsService) Recommend(patterns []models.EngagementPattern, today *models.DailyAnalytics) *models.OptimizationHints {
	hints := &models.OptimizationHints{
		RecommendedTypes: []string{catalog.TypePositive, catalog.TypeIslamic, catalog.TypeBonding},
		GeneratedAt:      s.clock(),
	}

	for _, p := range patterns {
		if p.RiskLevel == "high" {
			hints.LowEngagementUsers = append(hints.LowEngagementUsers, p.UserID)
		}
		if p.RiskLevel == "low" && p.WeeklyTrend == "increasing" {
			hints.HighEngagementUsers = append(hints.HighEngagementUsers, p.UserID)
		}
	}

	if len(patterns) > 0 {
		switch {
		case len(hints.LowEngagementUsers)*2 >= len(patterns):
			// Struggling family: lean harder into personal encouragement.
			hints.RecommendedTypes = append(hints.RecommendedTypes, catalog.TypePersonalized)
		case len(hints.HighEngagementUsers)*2 >= len(patterns):
			// Thriving family: room for reflective and constructive content.
			hints.RecommendedTypes = append(hints.RecommendedTypes, catalog.TypeReflection, catalog.TypeConstructive)
		}
	}

	_ = today // reserved: today's partial totals do not change the hint set
	return hints
}

// OptimizationForToday returns today's hints, computing and persisting them
// from the trailing week once per day.
func (s *AnalyticsService) OptimizationForToday(ctx context.Context, familyID string) (*models.OptimizationHints, error) {
	now := s.clock()
	today := now.Format(models.DateKeyFormat)

	doc, err := s.store.GetDaily(ctx, familyID, today)
	if err != nil {
		return nil, err
	}
	if doc != nil && doc.Optimization != nil {
		return doc.Optimization, nil
	}

	from := now.AddDate(0, 0, -patternWindow).Format(models.DateKeyFormat)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateKeyFormat)

	history, err := s.store.GetRange(ctx, familyID, from, yesterday)
	if err != nil {
		return nil, err
	}

	hints := s.Recommend(s.AnalyzePatterns(history), doc)
	if err := s.store.SetOptimization(ctx, familyID, today, hints); err != nil {
		return nil, err
	}
	return hints, nil
}

// FinalizeDay computes and stores the family engagement rate for a day and
// refreshes the day's optimization block. Safe to run repeatedly.
func (s *AnalyticsService) FinalizeDay(ctx context.Context, familyID, date string) error {
	doc, err := s.store.GetDaily(ctx, familyID, date)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil // nothing recorded that day
	}

	rate := 0.0
	if len(doc.UserMetrics) > 0 {
		sum := 0.0
		for _, m := range doc.UserMetrics {
			sum += EngagementRate(m)
		}
		rate = sum / float64(len(doc.UserMetrics))
	}

	if err := s.store.SetEngagementRate(ctx, familyID, date, rate); err != nil {
		return err
	}

	logger.Log.WithFields(map[string]interface{}{
		"family_id": familyID,
		"date":      date,
		"rate":      rate,
	}).Info("Daily analytics finalized")
	return nil
}

// RangeReport sums the already-computed daily documents across a date range.
// This is plain arithmetic for the reporting surface, not re-derivation.
func (s *AnalyticsService) RangeReport(ctx context.Context, familyID, from, to string) (*models.AnalyticsReport, error) {
	days, err := s.store.GetRange(ctx, familyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics range: %v", err)
	}

	report := &models.AnalyticsReport{FamilyID: familyID, From: from, To: to, Days: days}
	for _, day := range days {
		report.Totals.NudgesShown += day.Metrics.NudgesShown
		report.Totals.NudgesAnswered += day.Metrics.NudgesAnswered
		report.Totals.NudgesSkipped += day.Metrics.NudgesSkipped
		report.Totals.FeedbackCompleted += day.Metrics.FeedbackCompleted
		report.Totals.PollsVoted += day.Metrics.PollsVoted
		report.Totals.PollsCreated += day.Metrics.PollsCreated
		report.Totals.IslamicAnswered += day.Metrics.IslamicAnswered
		report.Totals.StoriesRead += day.Metrics.StoriesRead
		report.Totals.Logins += day.Metrics.Logins
		report.Totals.SessionMinutes += day.Metrics.SessionMinutes
	}
	if len(days) > 0 {
		sum := 0.0
		for _, day := range days {
			sum += day.Metrics.EngagementRate
		}
		report.Totals.EngagementRate = sum / float64(len(days))
	}

	return report, nil
}

// MarkNudgeShown records that a nudge was generated and surfaced today.
func (s *AnalyticsService) MarkNudgeShown(ctx context.Context, familyID, date, userIDHex string) error {
	if err := s.store.IncTotal(ctx, familyID, date, "nudges_shown", 1); err != nil {
		return err
	}
	return s.store.SetUserFlag(ctx, familyID, date, userIDHex, "nudge_shown", true)
}
