package catalog

// Character is a mascot that fronts nudges. The {{character}} placeholder
// resolves to one of its greetings or catchphrases.
type Character struct {
	ID           string   `json:"id" bson:"_id"`
	Name         string   `json:"name" bson:"name"`
	Greetings    []string `json:"greetings" bson:"greetings"`
	Catchphrases []string `json:"catchphrases" bson:"catchphrases"`
}

var Characters = []Character{
	{
		ID:   "zaki",
		Name: "Zaki the Cat",
		Greetings: []string{
			"Salam, friend!",
			"Meow! Good morning!",
			"Zaki here, reporting for fun duty!",
		},
		Catchphrases: []string{
			"Paws up for a great day!",
			"Curiosity never hurt this cat!",
		},
	},
	{
		ID:   "nura",
		Name: "Nura the Owl",
		Greetings: []string{
			"Hoo-hoo! Hello there!",
			"Nura sees a wonderful day ahead!",
		},
		Catchphrases: []string{
			"Wise birds read every day!",
			"A kind word flies far!",
		},
	},
}

// DefaultCharacterLine is the neutral fallback for the {{character}}
// placeholder when no mascot data is available.
const DefaultCharacterLine = "Hi there!"
