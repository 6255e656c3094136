package journal

import (
	"time"
)

// Content is the complete, validated input for one journal.
//
// It is built once by the content adapter and consumed once by the page
// composer. Nothing in the layout engine modifies it.
type Content struct {
	ChildName   string    `yaml:"childName" json:"childName"`
	ChildAge    int       `yaml:"childAge" json:"childAge"`
	Destination string    `yaml:"destination" json:"destination"`
	Country     string    `yaml:"country" json:"country"`
	StartDate   time.Time `yaml:"startDate" json:"startDate"`
	EndDate     time.Time `yaml:"endDate" json:"endDate"`
	TripDays    int       `yaml:"tripDays" json:"tripDays"`
	Landmarks   []string  `yaml:"landmarks" json:"landmarks"`
	Interests   []string  `yaml:"interests" json:"interests"`

	PreTrip    PreTrip     `yaml:"preTrip" json:"preTrip"`
	Activities Activities  `yaml:"activities" json:"activities"`
	DailyPages []DailyPage `yaml:"dailyPages" json:"dailyPages"`
	Closing    Closing     `yaml:"closing" json:"closing"`
}

// PreTrip holds everything printed before the daily pages.
type PreTrip struct {
	WelcomeLetter    string   `yaml:"welcomeLetter" json:"welcomeLetter"`
	Facts            *Facts   `yaml:"facts,omitempty" json:"facts,omitempty"`
	Phrases          []Phrase `yaml:"phrases" json:"phrases"`
	Landmarks        []string `yaml:"landmarks" json:"landmarks"`
	PackingList      []string `yaml:"packingList" json:"packingList"`
	PreflightPrompts []string `yaml:"preflightPrompts" json:"preflightPrompts"`
}

// Facts about the destination.
type Facts struct {
	Language           string   `yaml:"language" json:"language"`
	Currency           string   `yaml:"currency" json:"currency"`
	Population         string   `yaml:"population" json:"population"`
	FunFacts           []string `yaml:"funFacts" json:"funFacts"`
	CulturalHighlights []string `yaml:"culturalHighlights" json:"culturalHighlights"`
}

// Phrase is a useful phrase in the local language.
type Phrase struct {
	Phrase  string `yaml:"phrase" json:"phrase"`
	Meaning string `yaml:"meaning" json:"meaning"`
}

// Activities holds the content of the activity and road trip pages.
// Empty fields are filled with generic defaults before rendering.
type Activities struct {
	WordSearch     []string `yaml:"wordSearch" json:"wordSearch"`
	Trivia         []Trivia `yaml:"trivia" json:"trivia"`
	Bingo          []string `yaml:"bingo" json:"bingo"`
	WouldYouRather []Choice `yaml:"wouldYouRather" json:"wouldYouRather"`
	Categories     []string `yaml:"categories" json:"categories"`
	ScavengerHunt  []string `yaml:"scavengerHunt" json:"scavengerHunt"`
	Tallies        []string `yaml:"tallies" json:"tallies"`
}

// Trivia is a question with its answer.
type Trivia struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Choice is a "would you rather" pair.
type Choice struct {
	A string `yaml:"a" json:"a"`
	B string `yaml:"b" json:"b"`
}

// DailyPage is the content for one trip day.
// Each day is rendered on exactly two pages.
type DailyPage struct {
	Day          int      `yaml:"day" json:"day"`
	Location     string   `yaml:"location" json:"location"`
	Prompts      []string `yaml:"prompts" json:"prompts"`
	SketchPrompt string   `yaml:"sketchPrompt" json:"sketchPrompt"`
	Mood         bool     `yaml:"mood" json:"mood"`
	Weather      bool     `yaml:"weather" json:"weather"`
}

// Closing holds the content of the reflection pages at the end.
type Closing struct {
	ReflectionPrompts []string `yaml:"reflectionPrompts" json:"reflectionPrompts"`
}

// MaxDailyPrompts is the maximum number of writing prompts on a daily page.
const MaxDailyPrompts = 4

// Section identifies a logical part of the journal.
// Sections are rendered in the order of their values.
type Section int

const (
	Cover Section = iota
	Welcome
	AboutTrip
	FactsSection
	LandmarksSection
	ActivitiesSection
	RoadTrip
	Daily
	Reflections
	Final
)

var sectionNames = map[Section]string{
	Cover:             "cover",
	Welcome:           "welcome",
	AboutTrip:         "about-trip",
	FactsSection:      "facts",
	LandmarksSection:  "landmarks",
	ActivitiesSection: "activities",
	RoadTrip:          "road-trip",
	Daily:             "daily",
	Reflections:       "reflections",
	Final:             "final",
}

func (s Section) String() string {
	n, ok := sectionNames[s]
	if !ok {
		return "unknown"
	}
	return n
}
