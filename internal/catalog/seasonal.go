package catalog

import "time"

// SeasonWindow is a yearly-recurring calendar window. Islamic seasons are
// fixed Gregorian approximations here; real lunar conversion is a known
// limitation, not something to refine in-place.
type SeasonWindow struct {
	StartMonth time.Month `json:"start_month" bson:"start_month"`
	StartDay   int        `json:"start_day" bson:"start_day"`
	EndMonth   time.Month `json:"end_month" bson:"end_month"`
	EndDay     int        `json:"end_day" bson:"end_day"`
}

// Contains reports whether the given moment falls inside the window for that
// moment's year. Windows that wrap the year boundary (e.g. mid-December to
// early January) are supported.
func (w SeasonWindow) Contains(now time.Time) bool {
	year := now.Year()
	start := time.Date(year, w.StartMonth, w.StartDay, 0, 0, 0, 0, now.Location())
	end := time.Date(year, w.EndMonth, w.EndDay, 23, 59, 59, 0, now.Location())

	if !end.Before(start) {
		return !now.Before(start) && !now.After(end)
	}

	// Wrapping window: active from start through New Year, or from New Year
	// through end.
	return !now.Before(start) || !now.After(end)
}

// SeasonalBanner is a themed banner with a validity window and priority.
type SeasonalBanner struct {
	ID       string       `json:"id" bson:"_id"`
	Title    string       `json:"title" bson:"title"`
	Message  string       `json:"message" bson:"message"`
	Theme    string       `json:"theme" bson:"theme"`
	Priority int          `json:"priority" bson:"priority"`
	Window   SeasonWindow `json:"window" bson:"window"`
}

// SeasonalContent is a content bundle (extra activities, themed stories)
// active during its window. At most one bundle is surfaced at a time.
type SeasonalContent struct {
	ID         string       `json:"id" bson:"_id"`
	Title      string       `json:"title" bson:"title"`
	Activities []string     `json:"activities" bson:"activities"`
	Priority   int          `json:"priority" bson:"priority"`
	Window     SeasonWindow `json:"window" bson:"window"`
}

var SeasonalBanners = []SeasonalBanner{
	{ID: "ramadan", Title: "Ramadan Mubarak!", Theme: "ramadan", Priority: 100,
		Message: "A blessed month of patience and kindness. Check the Ramadan activities!",
		Window:  SeasonWindow{StartMonth: time.March, StartDay: 15, EndMonth: time.April, EndDay: 15}},
	{ID: "eid-fitr", Title: "Eid Mubarak!", Theme: "eid", Priority: 110,
		Message: "Celebrate together — share sweets and stories!",
		Window:  SeasonWindow{StartMonth: time.April, StartDay: 10, EndMonth: time.April, EndDay: 17}},
	{ID: "summer", Title: "Summer Adventures", Theme: "summer", Priority: 50,
		Message: "School is out! Time for family adventures and summer reading.",
		Window:  SeasonWindow{StartMonth: time.June, StartDay: 1, EndMonth: time.August, EndDay: 31}},
	{ID: "back-to-school", Title: "Back to School", Theme: "school", Priority: 60,
		Message: "New school year, new goals. You've got this!",
		Window:  SeasonWindow{StartMonth: time.September, StartDay: 1, EndMonth: time.September, EndDay: 15}},
	{ID: "winter", Title: "Winter Warmth", Theme: "winter", Priority: 40,
		Message: "Cold outside, cozy inside. Perfect weather for family stories.",
		Window:  SeasonWindow{StartMonth: time.December, StartDay: 15, EndMonth: time.January, EndDay: 5}},
}

var SeasonalContents = []SeasonalContent{
	{ID: "ramadan-bundle", Title: "Ramadan Family Activities", Priority: 100,
		Activities: []string{
			"Prepare iftar together once a week",
			"Daily good-deed jar: one note per person",
			"Evening quiz question as a family",
		},
		Window: SeasonWindow{StartMonth: time.March, StartDay: 15, EndMonth: time.April, EndDay: 15}},
	{ID: "summer-bundle", Title: "Summer Reading Club", Priority: 50,
		Activities: []string{
			"Pick a story each and retell it at dinner",
			"Outdoor day: no screens until sunset",
		},
		Window: SeasonWindow{StartMonth: time.June, StartDay: 1, EndMonth: time.August, EndDay: 31}},
	{ID: "winter-bundle", Title: "Winter Evenings", Priority: 40,
		Activities: []string{
			"Family board-game night",
			"Write a thank-you note to someone you missed this year",
		},
		Window: SeasonWindow{StartMonth: time.December, StartDay: 15, EndMonth: time.January, EndDay: 5}},
}
