package catalog

import "time"

// Badge rarity tiers.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityLegendary = "legendary"
	RaritySeasonal  = "seasonal"
)

// Counter names tracked per user. Badge conditions reference these.
const (
	CounterPollsCreated    = "polls_created"
	CounterPollsVoted      = "polls_voted"
	CounterStoriesRead     = "stories_read"
	CounterFeedbackSent    = "feedback_sent"
	CounterLogins          = "logins"
	CounterIslamicAnswered = "islamic_answered"
	CounterNudgesAnswered  = "nudges_answered"
	CounterStreakDays      = "streak_days"
)

// BadgeCondition ties a counter to the threshold that earns the badge.
type BadgeCondition struct {
	Counter   string `json:"counter" bson:"counter"`
	Threshold int64  `json:"threshold" bson:"threshold"`
}

// BadgeDefinition describes one earnable badge. Seasonal badges carry a
// calendar window and may be earned once per year; all others once ever.
type BadgeDefinition struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	Description string         `json:"description" bson:"description"`
	Rarity      string         `json:"rarity" bson:"rarity"`
	Condition   BadgeCondition `json:"condition" bson:"condition"`
	Window      *SeasonWindow  `json:"window,omitempty" bson:"window,omitempty"`
}

var BadgeDefinitions = []BadgeDefinition{
	{ID: "first-poll", Name: "Poll Pioneer", Rarity: RarityCommon,
		Description: "Created your very first family poll",
		Condition:   BadgeCondition{Counter: CounterPollsCreated, Threshold: 1}},
	{ID: "poll-starter", Name: "Question Master", Rarity: RarityRare,
		Description: "Created 10 family polls",
		Condition:   BadgeCondition{Counter: CounterPollsCreated, Threshold: 10}},
	{ID: "poll-legend", Name: "Voice of the House", Rarity: RarityLegendary,
		Description: "Created 50 family polls",
		Condition:   BadgeCondition{Counter: CounterPollsCreated, Threshold: 50}},

	{ID: "bookworm", Name: "Bookworm", Rarity: RarityCommon,
		Description: "Read 5 stories",
		Condition:   BadgeCondition{Counter: CounterStoriesRead, Threshold: 5}},
	{ID: "story-scholar", Name: "Story Scholar", Rarity: RarityRare,
		Description: "Read 25 stories",
		Condition:   BadgeCondition{Counter: CounterStoriesRead, Threshold: 25}},
	{ID: "library-legend", Name: "Library Legend", Rarity: RarityLegendary,
		Description: "Read 100 stories",
		Condition:   BadgeCondition{Counter: CounterStoriesRead, Threshold: 100}},

	{ID: "first-feedback", Name: "Honest Helper", Rarity: RarityCommon,
		Description: "Shared feedback with the family for the first time",
		Condition:   BadgeCondition{Counter: CounterFeedbackSent, Threshold: 1}},
	{ID: "feedback-champion", Name: "Feedback Champion", Rarity: RarityRare,
		Description: "Shared feedback 20 times",
		Condition:   BadgeCondition{Counter: CounterFeedbackSent, Threshold: 20}},

	{ID: "week-streak", Name: "Seven Day Spark", Rarity: RarityRare,
		Description: "Engaged seven days in a row",
		Condition:   BadgeCondition{Counter: CounterStreakDays, Threshold: 7}},
	{ID: "month-streak", Name: "Thirty Day Flame", Rarity: RarityLegendary,
		Description: "Engaged thirty days in a row",
		Condition:   BadgeCondition{Counter: CounterStreakDays, Threshold: 30}},

	{ID: "seeker", Name: "Knowledge Seeker", Rarity: RarityCommon,
		Description: "Answered 10 quiz questions",
		Condition:   BadgeCondition{Counter: CounterIslamicAnswered, Threshold: 10}},
	{ID: "scholar", Name: "Young Scholar", Rarity: RarityLegendary,
		Description: "Completed the whole question bank",
		Condition:   BadgeCondition{Counter: CounterIslamicAnswered, Threshold: 40}},

	{ID: "ramadan-star", Name: "Ramadan Star", Rarity: RaritySeasonal,
		Description: "Answered 5 quiz questions during Ramadan",
		Condition:   BadgeCondition{Counter: CounterIslamicAnswered, Threshold: 5},
		Window:      &SeasonWindow{StartMonth: time.March, StartDay: 15, EndMonth: time.April, EndDay: 15}},
	{ID: "summer-explorer", Name: "Summer Explorer", Rarity: RaritySeasonal,
		Description: "Read 3 stories over the summer",
		Condition:   BadgeCondition{Counter: CounterStoriesRead, Threshold: 3},
		Window:      &SeasonWindow{StartMonth: time.June, StartDay: 1, EndMonth: time.August, EndDay: 31}},
}

// BadgeByID returns the badge definition, or nil for an unknown id.
func BadgeByID(id string) *BadgeDefinition {
	for i := range BadgeDefinitions {
		if BadgeDefinitions[i].ID == id {
			return &BadgeDefinitions[i]
		}
	}
	return nil
}
