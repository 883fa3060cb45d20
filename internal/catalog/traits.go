package catalog

// Trait is one personalization dimension a user can carry on their profile.
type Trait struct {
	ID          string `json:"id" bson:"_id"`
	DisplayName string `json:"display_name" bson:"display_name"`
	Description string `json:"description" bson:"description"`
}

var Traits = []Trait{
	{ID: "curious", DisplayName: "curious", Description: "Loves asking questions and exploring new things"},
	{ID: "creative", DisplayName: "creative", Description: "Enjoys drawing, building and inventing"},
	{ID: "helpful", DisplayName: "helpful", Description: "First to offer a hand around the house"},
	{ID: "kind", DisplayName: "kind", Description: "Gentle with people and animals alike"},
	{ID: "brave", DisplayName: "brave", Description: "Tries new things even when they are scary"},
	{ID: "patient", DisplayName: "patient", Description: "Knows good things take time"},
	{ID: "generous", DisplayName: "generous", Description: "Happy to share and give"},
	{ID: "honest", DisplayName: "honest", Description: "Tells the truth even when it is hard"},
}

// TraitByID returns the trait definition, or nil for an unknown id.
func TraitByID(id string) *Trait {
	for i := range Traits {
		if Traits[i].ID == id {
			return &Traits[i]
		}
	}
	return nil
}
