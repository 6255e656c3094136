// Package compose lays out journal content on pages.
//
// The Composer walks a content.Plan from the cover to the final page,
// keeps a vertical cursor per page and draws everything with the
// primitives from pkg/draw. Decorations come from the theme table and are
// only placed into their fixed zones.
package compose

import (
	"math/rand"
	"sync"
	"time"

	"github.com/akeil/tripjournal/pkg/theme"
)

// Bounds for blocks of writing lines.
const (
	MinFillLines = 3
	MaxFillLines = 7
)

// Context holds parameters and shared data for rendering.
//
// If multiple journals are rendered, they should use the same Context.
type Context struct {
	// Seed makes random elements like word search fillers repeatable.
	// Zero means a new seed for every render.
	Seed int64
	// Theme overrides the theme derived from the destination.
	Theme *theme.Theme

	table   *theme.Table
	tableMx sync.Mutex
}

// NewContext sets up a rendering context.
func NewContext() *Context {
	return &Context{}
}

// NewSeededContext returns a context with repeatable randomness.
func NewSeededContext(seed int64) *Context {
	return &Context{Seed: seed}
}

// decorations returns the shared decoration table, building it on first
// use.
func (c *Context) decorations() *theme.Table {
	c.tableMx.Lock()
	defer c.tableMx.Unlock()
	if c.table == nil {
		c.table = theme.NewTable()
	}
	return c.table
}

func (c *Context) rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c *Context) themeFor(destination, country string) theme.Theme {
	if c.Theme != nil {
		return *c.Theme
	}
	return theme.Classify(destination, country)
}
