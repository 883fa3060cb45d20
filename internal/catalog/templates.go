package catalog

// Nudge types. Constructive nudges deliberately carry low weights so that
// encouraging content dominates the daily mix (target: at least 80% of the
// selection mass on non-constructive types).
const (
	TypePositive     = "positive"
	TypeIslamic      = "islamic"
	TypePersonalized = "personalized"
	TypeReflection   = "reflection"
	TypeBonding      = "bonding"
	TypeConstructive = "constructive"
)

// RequireAny in RequiredTraits means the template matches any user that has
// at least one trait in their profile.
const RequireAny = "any"

// NudgeTemplate is one selectable daily message. Text may contain the
// placeholders {{trait}}, {{ayah}} and {{character}}.
type NudgeTemplate struct {
	ID             string   `json:"id" bson:"_id"`
	Type           string   `json:"type" bson:"type"`
	Text           string   `json:"text" bson:"text"`
	Weight         int      `json:"weight" bson:"weight"`
	RequiredTraits []string `json:"required_traits,omitempty" bson:"required_traits,omitempty"`
	IslamicContext bool     `json:"islamic_context,omitempty" bson:"islamic_context,omitempty"`
}

var NudgeTemplates = []NudgeTemplate{
	// Positive encouragement
	{ID: "pos-1", Type: TypePositive, Weight: 12, Text: "{{character}} Every small kind act today makes the whole family brighter!"},
	{ID: "pos-2", Type: TypePositive, Weight: 12, Text: "You did great yesterday. Today is a fresh page — fill it with something good!"},
	{ID: "pos-3", Type: TypePositive, Weight: 10, Text: "{{character}} Someone in your family could use a smile today. Will it be yours?"},
	{ID: "pos-4", Type: TypePositive, Weight: 10, Text: "A little effort every day grows into something amazing. Keep going!"},
	{ID: "pos-5", Type: TypePositive, Weight: 8, Text: "{{character}} High five! Checking in every day is already a win."},

	// Islamic content
	{ID: "isl-1", Type: TypeIslamic, Weight: 11, IslamicContext: true, Text: "Today's reflection: {{ayah}}"},
	{ID: "isl-2", Type: TypeIslamic, Weight: 10, IslamicContext: true, Text: "{{character}} Take a quiet moment and think about this: {{ayah}}"},
	{ID: "isl-3", Type: TypeIslamic, Weight: 9, IslamicContext: true, Text: "Before the day gets busy, remember: {{ayah}}"},
	{ID: "isl-4", Type: TypeIslamic, Weight: 8, Text: "There is a new question waiting for you in the quiz corner. Ready to learn something new?"},

	// Personalized (trait-driven)
	{ID: "per-1", Type: TypePersonalized, Weight: 13, RequiredTraits: []string{RequireAny}, Text: "Being {{trait}} is your superpower this week. How will you use it today?"},
	{ID: "per-2", Type: TypePersonalized, Weight: 11, RequiredTraits: []string{RequireAny}, Text: "{{character}} Your family loves how {{trait}} you are. Show it off today!"},
	{ID: "per-3", Type: TypePersonalized, Weight: 9, RequiredTraits: []string{"curious"}, Text: "Curious minds find treasures everywhere. What will you discover today?"},
	{ID: "per-4", Type: TypePersonalized, Weight: 9, RequiredTraits: []string{"creative"}, Text: "Make something today — a drawing, a story, anything. Creative hands are never bored!"},

	// Reflection
	{ID: "ref-1", Type: TypeReflection, Weight: 9, Text: "What was the best moment of your day yesterday? Tell someone about it."},
	{ID: "ref-2", Type: TypeReflection, Weight: 9, Text: "{{character}} Think of one thing you are thankful for right now."},
	{ID: "ref-3", Type: TypeReflection, Weight: 8, Text: "If today had a color, what would it be? Why?"},

	// Family bonding
	{ID: "bon-1", Type: TypeBonding, Weight: 11, Text: "Ask a family member about their favorite childhood memory today."},
	{ID: "bon-2", Type: TypeBonding, Weight: 10, Text: "{{character}} Family challenge: share one funny story at dinner tonight!"},
	{ID: "bon-3", Type: TypeBonding, Weight: 9, Text: "Who in your family made you laugh last? Tell them thanks!"},
	{ID: "bon-4", Type: TypeBonding, Weight: 8, Text: "Start a poll and let the whole family vote — what should this weekend look like?"},

	// Constructive (kept rare on purpose)
	{ID: "con-1", Type: TypeConstructive, Weight: 3, Text: "Is there something you promised to do and haven't yet? Today is a good day to finish it."},
	{ID: "con-2", Type: TypeConstructive, Weight: 3, Text: "{{character}} A tidy room is a calm mind. Five minutes of cleanup — go!"},
	{ID: "con-3", Type: TypeConstructive, Weight: 2, Text: "Screens down for an hour today? Your eyes (and your family) will thank you."},
	{ID: "con-4", Type: TypeConstructive, Weight: 2, Text: "Think about one thing you could have done better yesterday — and do it better today."},
}
