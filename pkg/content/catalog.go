package content

import (
	"bytes"
	_ "embed"
	"io"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// Destination is what the catalog knows about a travel destination.
type Destination struct {
	Name               string           `yaml:"name"`
	Country            string           `yaml:"country"`
	Language           string           `yaml:"language"`
	Currency           string           `yaml:"currency"`
	Population         string           `yaml:"population"`
	Greeting           string           `yaml:"greeting"`
	ThankYou           string           `yaml:"thankyou"`
	Goodbye            string           `yaml:"goodbye"`
	FunFacts           []string         `yaml:"funFacts"`
	CulturalHighlights []string         `yaml:"culturalHighlights"`
	Landmarks          []string         `yaml:"landmarks"`
	WordSearch         []string         `yaml:"wordSearch"`
	Trivia             []journal.Trivia `yaml:"trivia"`
	Prompts            Prompts          `yaml:"prompts"`
}

// Prompts are the writing prompts for daily pages.
// Interest prompts are keyed by interest name, e.g. "food".
type Prompts struct {
	Observation []string            `yaml:"observation"`
	Reflection  []string            `yaml:"reflection"`
	Interests   map[string][]string `yaml:"interests"`
}

// Catalog is a read-only set of destinations.
type Catalog struct {
	entries map[string]Destination
}

// LoadCatalog reads a YAML catalog keyed by destination name.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string]Destination
	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil && err != io.EOF {
		return nil, journal.Wrap(err, "decode catalog")
	}

	c := &Catalog{entries: make(map[string]Destination, len(raw))}
	for k, d := range raw {
		if strings.TrimSpace(d.Name) == "" {
			return nil, journal.NewValidationError("catalog entry %q has no name", k)
		}
		c.entries[catalogKey(k)] = d
	}
	logging.Debug("Loaded catalog with %d destinations", len(c.entries))
	return c, nil
}

var (
	builtin     *Catalog
	builtinErr  error
	builtinOnce sync.Once
)

// BuiltinCatalog returns the catalog compiled into the binary.
func BuiltinCatalog() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = LoadCatalog(bytes.NewReader(builtinCatalog))
	})
	return builtin, builtinErr
}

// Lookup finds a destination by name, ignoring case and surrounding space.
func (c *Catalog) Lookup(name string) (Destination, error) {
	d, ok := c.entries[catalogKey(name)]
	if !ok {
		return Destination{}, journal.NewNotFound("no destination %q in catalog", name)
	}
	return d, nil
}

// Names lists the catalog keys in alphabetical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for k := range c.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func catalogKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// genericDestination is used for destinations the catalog does not know.
func genericDestination(name string) Destination {
	return Destination{
		Name:       name,
		Language:   "Local language",
		Currency:   "Local currency",
		Population: "Check it out!",
		Greeting:   "Hello",
		ThankYou:   "Thank you",
		Goodbye:    "Goodbye",
		FunFacts: []string{
			"Every place has its own unique story",
			"Traveling teaches us about different cultures",
			"The best adventures are ones where you try new things",
		},
		CulturalHighlights: []string{
			"Observe how locals greet each other",
			"Notice what people eat for breakfast",
			"Look at how the buildings are designed",
		},
	}
}
