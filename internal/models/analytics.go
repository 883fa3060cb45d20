package models

import "time"

// UserDailyMetrics are the per-user interaction facts for one calendar day.
type UserDailyMetrics struct {
	NudgeShown        bool `bson:"nudge_shown" json:"nudge_shown"`
	NudgeAnswered     bool `bson:"nudge_answered" json:"nudge_answered"`
	NudgeSkipped      bool `bson:"nudge_skipped" json:"nudge_skipped"`
	FeedbackCompleted bool `bson:"feedback_completed" json:"feedback_completed"`
	PollsVoted        int  `bson:"polls_voted" json:"polls_voted"`
	PollsCreated      int  `bson:"polls_created" json:"polls_created"`
	IslamicAnswered   int  `bson:"islamic_answered" json:"islamic_answered"`
	IslamicCorrect    int  `bson:"islamic_correct" json:"islamic_correct"`
	StoriesRead       int  `bson:"stories_read" json:"stories_read"`
	SessionMinutes    int  `bson:"session_minutes" json:"session_minutes"`
	Logins            int  `bson:"logins" json:"logins"`
}

// DailyTotals are the family-level sums for one day.
type DailyTotals struct {
	NudgesShown       int     `bson:"nudges_shown" json:"nudges_shown"`
	NudgesAnswered    int     `bson:"nudges_answered" json:"nudges_answered"`
	NudgesSkipped     int     `bson:"nudges_skipped" json:"nudges_skipped"`
	FeedbackCompleted int     `bson:"feedback_completed" json:"feedback_completed"`
	PollsVoted        int     `bson:"polls_voted" json:"polls_voted"`
	PollsCreated      int     `bson:"polls_created" json:"polls_created"`
	IslamicAnswered   int     `bson:"islamic_answered" json:"islamic_answered"`
	StoriesRead       int     `bson:"stories_read" json:"stories_read"`
	Logins            int     `bson:"logins" json:"logins"`
	SessionMinutes    int     `bson:"session_minutes" json:"session_minutes"`
	EngagementRate    float64 `bson:"engagement_rate" json:"engagement_rate"`
}

// OptimizationHints bias tomorrow's nudge selection. They never override the
// weight floor that keeps constructive content rare.
type OptimizationHints struct {
	RecommendedTypes    []string  `bson:"recommended_types" json:"recommended_types"`
	LowEngagementUsers  []string  `bson:"low_engagement_users" json:"low_engagement_users"`
	HighEngagementUsers []string  `bson:"high_engagement_users" json:"high_engagement_users"`
	GeneratedAt         time.Time `bson:"generated_at" json:"generated_at"`
}

// DailyAnalytics is the one-per-family-per-day counters document. It is
// incremented throughout the day and finalized at the day boundary.
type DailyAnalytics struct {
	ID           string                      `bson:"_id" json:"id"` // "<familyID>_<YYYY-MM-DD>"
	FamilyID     string                      `bson:"family_id" json:"family_id"`
	Date         string                      `bson:"date" json:"date"`
	Metrics      DailyTotals                 `bson:"metrics" json:"metrics"`
	UserMetrics  map[string]UserDailyMetrics `bson:"user_metrics" json:"user_metrics"`
	Optimization *OptimizationHints          `bson:"optimization,omitempty" json:"optimization,omitempty"`
	UpdatedAt    time.Time                   `bson:"updated_at" json:"updated_at"`
}

// DailyAnalyticsID builds the deterministic per-family per-day document id.
func DailyAnalyticsID(familyID, date string) string {
	return familyID + "_" + date
}

// EngagementPattern is derived from a user's metric history on demand; it is
// never the source of truth.
type EngagementPattern struct {
	UserID              string   `json:"user_id"`
	WeeklyTrend         string   `json:"weekly_trend"` // increasing | stable | decreasing
	PreferredNudgeTypes []string `json:"preferred_nudge_types"`
	StreakDays          int      `json:"streak_days"`
	RiskLevel           string   `json:"risk_level"` // low | medium | high
}

// AnalyticsReport is the reporting surface's answer for a date range:
// plain sums across the range plus the per-day series they were summed from.
type AnalyticsReport struct {
	FamilyID string           `json:"family_id"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Totals   DailyTotals      `json:"totals"`
	Days     []DailyAnalytics `json:"days"`
}
