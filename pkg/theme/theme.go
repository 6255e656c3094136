// Package theme maps destinations to decorative themes and places themed
// decorations in reserved page zones.
package theme

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Theme is a destination-derived decorative style.
type Theme int

const (
	// Travel is the generic theme, used when nothing else matches.
	Travel Theme = iota
	Japan
	Paris
	London
	Tropical
	Beach
	Safari
)

var themeNames = map[Theme]string{
	Travel:   "travel",
	Japan:    "japan",
	Paris:    "paris",
	London:   "london",
	Tropical: "tropical",
	Beach:    "beach",
	Safari:   "safari",
}

func (t Theme) String() string {
	n, ok := themeNames[t]
	if !ok {
		return fmt.Sprintf("theme(%d)", int(t))
	}
	return n
}

// ParseTheme looks up a theme by name.
func ParseTheme(s string) (Theme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range themeNames {
		if n == s {
			return t, nil
		}
	}
	return Travel, fmt.Errorf("unknown theme %q", s)
}

// Themes lists all themes.
func Themes() []Theme {
	return []Theme{Travel, Japan, Paris, London, Tropical, Beach, Safari}
}

// rule matches if any keyword occurs in the country or destination.
type rule struct {
	theme       Theme
	country     []string
	destination []string
}

// Rules are tested in order and the first match wins. Tropical comes
// before Beach so island destinations get the richer tropical set.
var rules = []rule{
	{
		theme:       Japan,
		country:     []string{"japan"},
		destination: []string{"tokyo", "kyoto", "osaka", "japan"},
	},
	{
		theme:       Paris,
		country:     []string{"france"},
		destination: []string{"paris", "france", "nice", "lyon"},
	},
	{
		theme:       London,
		country:     []string{"uk", "united kingdom", "england"},
		destination: []string{"london", "england", "scotland"},
	},
	{
		theme:   Tropical,
		country: []string{"costa rica", "thailand", "indonesia"},
		destination: []string{"costa rica", "hawaii", "caribbean", "puerto rico",
			"jamaica", "bahamas", "fiji", "tahiti", "bali"},
	},
	{
		theme: Beach,
		destination: []string{"beach", "cancun", "miami", "maldives", "cabo",
			"florida", "california", "san diego", "santa monica"},
	},
	{
		theme:       Safari,
		country:     []string{"kenya", "tanzania", "south africa", "botswana", "namibia"},
		destination: []string{"safari", "serengeti", "kruger", "africa"},
	},
}

// Classify returns the theme for a destination and country.
//
// Both strings are compared case-insensitively with diacritics removed,
// so "Cancún" matches "cancun". Classify is a pure function.
func Classify(destination, country string) Theme {
	dest := fold(destination)
	ctry := fold(country)
	for _, r := range rules {
		if matchAny(ctry, r.country) || matchAny(dest, r.destination) {
			return r.theme
		}
	}
	return Travel
}

func matchAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if containsKeyword(s, k) {
			return true
		}
	}
	return false
}

// containsKeyword is a substring match, except for short keywords which
// must appear as a whole word ("uk" must not match "ukraine", "nice" must
// not match "venice").
func containsKeyword(s, k string) bool {
	if len(k) > 4 {
		return strings.Contains(s, k)
	}
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if w == k {
			return true
		}
	}
	return false
}

// fold lower-cases s and strips diacritics.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
