package content

import (
	"fmt"

	"github.com/akeil/tripjournal"
)

// Built-in content used when neither the trip nor the catalog provide it.

var defaultObservationPrompts = []string{
	"What is the first thing you notice when you look around?",
	"Describe the sounds you hear right now.",
	"What smells are in the air?",
	"How are people around you dressed differently than at home?",
}

var defaultReflectionPrompts = []string{
	"What was the most surprising thing you experienced today?",
	"What would you tell your friends about this place?",
	"How is this place different from home?",
	"What will you remember most about today?",
}

// ClosingPrompts are the questions on the reflections page.
var ClosingPrompts = []string{
	"The BEST thing about this trip was...",
	"Something that SURPRISED me...",
	"A new thing I LEARNED...",
	"I want to REMEMBER...",
	"Next time I travel, I want to...",
}

var defaultPackingList = []string{
	"Clothes",
	"Toothbrush",
	"Favorite toy/book",
	"Camera",
	"Snacks",
	"Journal (this one!)",
	"Comfy shoes",
	"Sunscreen",
}

var defaultWordSearch = []string{"TRAVEL", "ADVENTURE", "EXPLORE", "FUN", "DISCOVER", "JOURNEY"}

var defaultRoadBingo = []string{
	"Red car", "Bird", "Cloud", "River", "Bridge", "Cow",
	"Stop sign", "Gas station", "Mountain", "Restaurant", "Hotel", "Flag",
}

var defaultScavengerHunt = []string{
	"Something red", "A uniform", "The number 7",
	"Something soft", "A cloud shape", "Someone smiling",
	"Something shiny", "A bird", "The color blue",
	"A sign with letters",
}

var defaultTallies = []string{"Airplanes", "Red cars", "Dogs", "Waves"}

var defaultWouldYouRather = []journal.Choice{
	{A: "Fly like a bird", B: "Swim like a dolphin"},
	{A: "Visit 100 years ago", B: "Visit 100 years ahead"},
	{A: "Eat only sweets", B: "Eat only pizza"},
}

var defaultCategories = []string{"Animal", "Food", "Place", "Name", "Color", "Thing"}

var bingoItems = []string{
	"See a local animal",
	"Try new food",
	"Learn a new word",
	"Take a silly photo",
	"Make someone smile",
	"Find something blue",
	"See a street performer",
	"Walk 10,000 steps",
	"FREE SPACE",
	"Buy a souvenir",
	"See something ancient",
	"Eat dessert",
	"Ride public transport",
	"See a sunset",
	"Draw a picture",
	"Find a cool door",
}

// BingoSize is the number of squares on the travel bingo card.
const BingoSize = 16

func sketchPrompts(destination string) []string {
	return []string{
		"Draw something amazing you saw today",
		"Sketch your favorite meal",
		"Draw the view from where you are",
		fmt.Sprintf("Draw yourself exploring %v", destination),
		"Illustrate your favorite moment",
		"Draw something that surprised you",
		"Sketch a building or landmark",
		"Draw something you want to remember",
	}
}

// SketchPrompt returns the sketch prompt for a trip day (1-based).
// Prompts rotate with a period of eight days.
func SketchPrompt(day int, destination string) string {
	p := sketchPrompts(destination)
	if day < 1 {
		day = 1
	}
	return p[(day-1)%len(p)]
}

func welcomeLetter(child, destination string) string {
	return fmt.Sprintf("Dear %v,\n\n"+
		"Get ready for an amazing adventure to %v! "+
		"This journal is all yours - a special place to write down everything you see, learn, and experience.\n\n"+
		"Use it to capture your thoughts, draw pictures, and remember all the wonderful moments from your trip. "+
		"There are no wrong answers - just be curious and have fun!\n\n"+
		"Happy travels!", child, destination)
}

func preflightPrompts(destination string) []string {
	return []string{
		fmt.Sprintf("What are you most excited to see in %v?", destination),
		"What do you already know about this place?",
		"What questions do you want to find answers to?",
		"What foods are you curious to try?",
	}
}

func phrases(d Destination) []journal.Phrase {
	return []journal.Phrase{
		{Phrase: d.Greeting, Meaning: "Hello"},
		{Phrase: d.ThankYou, Meaning: "Thank you"},
		{Phrase: d.Goodbye, Meaning: "Goodbye"},
	}
}

func facts(d Destination) *journal.Facts {
	return &journal.Facts{
		Language:           d.Language,
		Currency:           d.Currency,
		Population:         d.Population,
		FunFacts:           copyStrings(d.FunFacts),
		CulturalHighlights: copyStrings(d.CulturalHighlights),
	}
}

func defaultTrivia(d Destination) []journal.Trivia {
	return []journal.Trivia{
		{Question: "What country is your destination in?", Answer: d.Country},
		{Question: "What language do people speak there?", Answer: d.Language},
		{Question: "What currency do they use?", Answer: d.Currency},
	}
}

// travelBingo fills a 4x4 card. Up to three landmarks replace the last
// generic squares so they always make it onto the card.
func travelBingo(landmarks []string) []string {
	n := len(landmarks)
	if n > 3 {
		n = 3
	}
	items := make([]string, 0, BingoSize)
	items = append(items, bingoItems[:BingoSize-n]...)
	for _, l := range landmarks[:n] {
		items = append(items, "Visit "+l)
	}
	return items
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
