package catalog

// StorySeed is one entry of the story shelf's seed data. The full story
// documents are loaded into the store in a single batch so a crash mid-seed
// cannot leave a partial shelf.
type StorySeed struct {
	ID       string `json:"id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Summary  string `json:"summary" bson:"summary"`
	Category string `json:"category" bson:"category"`
	AgeBand  string `json:"age_band" bson:"age_band"`
}

var Stories = []StorySeed{
	{ID: "story-honest-woodcutter", Title: "The Honest Woodcutter", Category: "values", AgeBand: "5-8",
		Summary: "A woodcutter loses his axe in the river and learns that honesty is rewarded."},
	{ID: "story-two-brothers", Title: "The Two Brothers and the Harvest", Category: "family", AgeBand: "6-10",
		Summary: "Two brothers secretly carry wheat to each other's barns at night."},
	{ID: "story-spider-cave", Title: "The Spider and the Cave", Category: "islamic", AgeBand: "6-10",
		Summary: "How a small spider helped protect the Prophet (pbuh) during the Hijra."},
	{ID: "story-little-ant", Title: "The Little Ant's Big Lesson", Category: "islamic", AgeBand: "5-8",
		Summary: "Prophet Sulaiman and the ant teach that every creature matters."},
	{ID: "story-date-seed", Title: "The Date Seed", Category: "values", AgeBand: "8-12",
		Summary: "An old man plants a tree he will never sit under, for those who come after."},
	{ID: "story-patient-fisherman", Title: "The Patient Fisherman", Category: "values", AgeBand: "6-10",
		Summary: "A boy learns that sabr fills the net faster than frustration."},
	{ID: "story-shared-umbrella", Title: "The Shared Umbrella", Category: "family", AgeBand: "5-8",
		Summary: "A rainy day shows that sharing makes everything warmer."},
	{ID: "story-star-counter", Title: "The Star Counter", Category: "curiosity", AgeBand: "8-12",
		Summary: "A curious girl tries to count the stars and discovers something better."},
}
