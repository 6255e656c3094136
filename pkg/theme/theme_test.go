package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		dest, country string
		expected      Theme
	}{
		{"Kyoto, Japan", "", Japan},
		{"Kyoto", "Japan", Japan},
		{"Tokyo", "", Japan},
		{"Paris", "France", Paris},
		{"Nice", "", Paris},
		{"Edinburgh", "UK", London},
		{"London", "United Kingdom", London},
		{"Honolulu, Hawaii", "USA", Tropical},
		{"Bali", "", Tropical},
		{"Cancún", "Mexico", Beach},
		{"Miami Beach", "USA", Beach},
		{"Serengeti", "Tanzania", Safari},
		{"Cape Town", "South Africa", Safari},
		{"Orlando", "USA", Travel},
		{"", "", Travel},
	}

	for _, c := range cases {
		got := Classify(c.dest, c.country)
		if got != c.expected {
			t.Errorf("Classify(%q, %q): expected %v, got %v", c.dest, c.country, c.expected, got)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// matches both the tropical and the beach keywords
	assert.Equal(t, Tropical, Classify("Waikiki Beach, Hawaii", ""))
	assert.Equal(t, Tropical, Classify("Bali beach resort", "Indonesia"))
	// matches Japan and beach
	assert.Equal(t, Japan, Classify("Okinawa Beach", "Japan"))
}

func TestClassifyShortKeywords(t *testing.T) {
	assert.Equal(t, Travel, Classify("Kyiv", "Ukraine"))
	assert.Equal(t, Travel, Classify("Venice", "Italy"))
	assert.Equal(t, London, Classify("Manchester", "UK"))
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Classify("Kyoto, Japan", ""), Japan)
	}
}

func TestParseTheme(t *testing.T) {
	for _, th := range Themes() {
		parsed, err := ParseTheme(th.String())
		assert.NoError(t, err)
		assert.Equal(t, th, parsed)
	}
	_, err := ParseTheme("moon")
	assert.Error(t, err)
}
