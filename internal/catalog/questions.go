package catalog

// Question is one entry of the progressive Islamic question bank.
type Question struct {
	ID       string   `json:"id" bson:"_id"`
	Category string   `json:"category" bson:"category"`
	Prompt   string   `json:"prompt" bson:"prompt"`
	Choices  []string `json:"choices" bson:"choices"`
	Answer   int      `json:"answer" bson:"answer"`
	// Ayah is an optional scripture excerpt shown alongside the question and
	// used for the {{ayah}} nudge placeholder while this question is current.
	Ayah string `json:"ayah,omitempty" bson:"ayah,omitempty"`
}

// DefaultAyah is the neutral fallback for the {{ayah}} placeholder.
const DefaultAyah = "Indeed, with hardship comes ease. (94:6)"

// QuestionCategories lists the bank's categories in presentation order.
// Questions walks category by category, each internally ordered by number,
// so progression is deterministic for every user.
var QuestionCategories = []string{"allah", "prophet", "quran", "akhlaq"}

var Questions = []Question{
	// Allah
	{ID: "allah-1", Category: "allah", Prompt: "How many names of Allah are traditionally counted?", Choices: []string{"33", "99", "100"}, Answer: 1, Ayah: "And to Allah belong the best names, so invoke Him by them. (7:180)"},
	{ID: "allah-2", Category: "allah", Prompt: "What does Ar-Rahman mean?", Choices: []string{"The Most Merciful", "The Creator", "The Judge"}, Answer: 0},
	{ID: "allah-3", Category: "allah", Prompt: "What does Al-Khaliq mean?", Choices: []string{"The Provider", "The Creator", "The Light"}, Answer: 1, Ayah: "He is Allah, the Creator, the Inventor, the Fashioner. (59:24)"},
	{ID: "allah-4", Category: "allah", Prompt: "Which name means 'The Provider'?", Choices: []string{"Ar-Razzaq", "Al-Hakim", "As-Sabur"}, Answer: 0},
	{ID: "allah-5", Category: "allah", Prompt: "What does tawhid mean?", Choices: []string{"Charity", "The oneness of Allah", "Pilgrimage"}, Answer: 1},
	{ID: "allah-6", Category: "allah", Prompt: "Allah sees everything. Which name says this?", Choices: []string{"Al-Basir", "Al-Wadud", "Al-Karim"}, Answer: 0},
	{ID: "allah-7", Category: "allah", Prompt: "What does Al-Wadud mean?", Choices: []string{"The Loving", "The Strong", "The First"}, Answer: 0},
	{ID: "allah-8", Category: "allah", Prompt: "Who do Muslims thank before every meal?", Choices: []string{"Their parents", "Allah", "The cook"}, Answer: 1},
	{ID: "allah-9", Category: "allah", Prompt: "What does As-Sami mean?", Choices: []string{"The All-Hearing", "The Generous", "The Patient"}, Answer: 0},
	{ID: "allah-10", Category: "allah", Prompt: "Which phrase praises Allah?", Choices: []string{"Alhamdulillah", "Marhaba", "Shukran"}, Answer: 0, Ayah: "So remember Me; I will remember you. (2:152)"},

	// Prophet
	{ID: "prophet-1", Category: "prophet", Prompt: "In which city was Prophet Muhammad (pbuh) born?", Choices: []string{"Medina", "Mecca", "Jerusalem"}, Answer: 1},
	{ID: "prophet-2", Category: "prophet", Prompt: "What was the Prophet's (pbuh) nickname for his honesty?", Choices: []string{"Al-Amin", "Al-Farooq", "Al-Siddiq"}, Answer: 0},
	{ID: "prophet-3", Category: "prophet", Prompt: "How old was the Prophet (pbuh) at the first revelation?", Choices: []string{"25", "40", "63"}, Answer: 1, Ayah: "Read in the name of your Lord who created. (96:1)"},
	{ID: "prophet-4", Category: "prophet", Prompt: "Which angel brought the revelation?", Choices: []string{"Mikail", "Israfil", "Jibril"}, Answer: 2},
	{ID: "prophet-5", Category: "prophet", Prompt: "The journey from Mecca to Medina is called...", Choices: []string{"Hajj", "Hijra", "Umrah"}, Answer: 1},
	{ID: "prophet-6", Category: "prophet", Prompt: "What animal carried the Prophet (pbuh) on the Hijra?", Choices: []string{"A camel", "A horse", "A donkey"}, Answer: 0},
	{ID: "prophet-7", Category: "prophet", Prompt: "Who was the Prophet's (pbuh) first wife?", Choices: []string{"Aisha", "Khadija", "Fatima"}, Answer: 1},
	{ID: "prophet-8", Category: "prophet", Prompt: "The Prophet (pbuh) said the best of you are those who...", Choices: []string{"Are strongest", "Have the best character", "Are wealthiest"}, Answer: 1},
	{ID: "prophet-9", Category: "prophet", Prompt: "Which prophet built the Kaaba with his son?", Choices: []string{"Musa", "Ibrahim", "Isa"}, Answer: 1},
	{ID: "prophet-10", Category: "prophet", Prompt: "What do we say after the Prophet's name?", Choices: []string{"Peace be upon him", "The Great", "The Wise"}, Answer: 0},

	// Quran
	{ID: "quran-1", Category: "quran", Prompt: "How many surahs are in the Quran?", Choices: []string{"99", "114", "120"}, Answer: 1},
	{ID: "quran-2", Category: "quran", Prompt: "Which surah do we recite in every prayer?", Choices: []string{"Al-Fatiha", "Al-Ikhlas", "An-Nas"}, Answer: 0, Ayah: "All praise is due to Allah, Lord of the worlds. (1:2)"},
	{ID: "quran-3", Category: "quran", Prompt: "In which month was the Quran first revealed?", Choices: []string{"Muharram", "Ramadan", "Shawwal"}, Answer: 1, Ayah: "The month of Ramadan in which was revealed the Quran. (2:185)"},
	{ID: "quran-4", Category: "quran", Prompt: "What is the shortest surah?", Choices: []string{"Al-Kawthar", "Al-Asr", "Al-Ikhlas"}, Answer: 0},
	{ID: "quran-5", Category: "quran", Prompt: "The Quran was revealed in which language?", Choices: []string{"Hebrew", "Arabic", "Aramaic"}, Answer: 1},
	{ID: "quran-6", Category: "quran", Prompt: "A person who memorizes the whole Quran is called...", Choices: []string{"Imam", "Hafiz", "Qari"}, Answer: 1},
	{ID: "quran-7", Category: "quran", Prompt: "Which surah is named after a spider?", Choices: []string{"Al-Ankabut", "An-Nahl", "Al-Fil"}, Answer: 0},
	{ID: "quran-8", Category: "quran", Prompt: "Which night is better than a thousand months?", Choices: []string{"Laylat al-Qadr", "Laylat al-Miraj", "The first of Ramadan"}, Answer: 0, Ayah: "The Night of Decree is better than a thousand months. (97:3)"},
	{ID: "quran-9", Category: "quran", Prompt: "Which surah is named after bees?", Choices: []string{"An-Naml", "An-Nahl", "Al-Baqara"}, Answer: 1},
	{ID: "quran-10", Category: "quran", Prompt: "What should we say before reading the Quran?", Choices: []string{"Bismillah", "Mashallah", "Inshallah"}, Answer: 0},

	// Akhlaq (character)
	{ID: "akhlaq-1", Category: "akhlaq", Prompt: "What should you do when you meet someone?", Choices: []string{"Look away", "Greet them with salam", "Wait for them to speak"}, Answer: 1},
	{ID: "akhlaq-2", Category: "akhlaq", Prompt: "How should we speak to our parents?", Choices: []string{"Loudly", "With kindness and respect", "Only when asked"}, Answer: 1, Ayah: "And lower to them the wing of humility out of mercy. (17:24)"},
	{ID: "akhlaq-3", Category: "akhlaq", Prompt: "What is sadaqah?", Choices: []string{"Voluntary charity", "A type of prayer", "A festival"}, Answer: 0},
	{ID: "akhlaq-4", Category: "akhlaq", Prompt: "A smile at your brother is...", Choices: []string{"Nothing special", "Charity", "A duty"}, Answer: 1},
	{ID: "akhlaq-5", Category: "akhlaq", Prompt: "What should you do if you borrow something?", Choices: []string{"Keep it", "Return it in good condition", "Wait to be asked"}, Answer: 1},
	{ID: "akhlaq-6", Category: "akhlaq", Prompt: "Telling the truth even when it is hard shows...", Choices: []string{"Weakness", "Honesty", "Fear"}, Answer: 1},
	{ID: "akhlaq-7", Category: "akhlaq", Prompt: "How should we treat our neighbors?", Choices: []string{"Ignore them", "With kindness", "Compete with them"}, Answer: 1},
	{ID: "akhlaq-8", Category: "akhlaq", Prompt: "What do we say when someone sneezes?", Choices: []string{"Yarhamukallah", "Mabrook", "Afwan"}, Answer: 0},
	{ID: "akhlaq-9", Category: "akhlaq", Prompt: "Wasting food and water is...", Choices: []string{"Fine sometimes", "Discouraged", "Encouraged"}, Answer: 1},
	{ID: "akhlaq-10", Category: "akhlaq", Prompt: "Patience in hard times is called...", Choices: []string{"Sabr", "Shukr", "Dua"}, Answer: 0, Ayah: "Indeed, Allah is with the patient. (2:153)"},
}

// QuestionByID returns the question with the given id, or nil.
func QuestionByID(id string) *Question {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}
