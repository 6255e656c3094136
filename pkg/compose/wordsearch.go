package compose

import (
	"math/rand"
	"strings"
)

// WordGrid is a word search puzzle.
type WordGrid struct {
	Size  int
	Cells [][]rune
	// Placed lists the words hidden in the grid, in input order.
	Placed []string
}

const placementAttempts = 100

// NewWordGrid hides words horizontally or vertically in a size x size grid
// and fills the remaining cells with random letters.
//
// Words are upper-cased and stripped of anything but letters. Words that
// are longer than the grid or cannot be placed are left out.
func NewWordGrid(words []string, size int, rng *rand.Rand) *WordGrid {
	g := &WordGrid{Size: size, Cells: make([][]rune, size)}
	for i := range g.Cells {
		g.Cells[i] = make([]rune, size)
	}

	for _, w := range words {
		w = puzzleWord(w)
		if w == "" || len([]rune(w)) > size {
			continue
		}
		if g.place([]rune(w), rng) {
			g.Placed = append(g.Placed, w)
		}
	}

	for _, row := range g.Cells {
		for i := range row {
			if row[i] == 0 {
				row[i] = rune('A' + rng.Intn(26))
			}
		}
	}
	return g
}

func (g *WordGrid) place(w []rune, rng *rand.Rand) bool {
	for n := 0; n < placementAttempts; n++ {
		vertical := rng.Intn(2) == 1
		free := g.Size - len(w) + 1
		row, col := rng.Intn(g.Size), rng.Intn(free)
		if vertical {
			row, col = rng.Intn(free), rng.Intn(g.Size)
		}
		if g.fits(w, row, col, vertical) {
			for i, c := range w {
				if vertical {
					g.Cells[row+i][col] = c
				} else {
					g.Cells[row][col+i] = c
				}
			}
			return true
		}
	}
	return false
}

func (g *WordGrid) fits(w []rune, row, col int, vertical bool) bool {
	for i, c := range w {
		r, k := row, col+i
		if vertical {
			r, k = row+i, col
		}
		if r >= g.Size || k >= g.Size {
			return false
		}
		cur := g.Cells[r][k]
		if cur != 0 && cur != c {
			return false
		}
	}
	return true
}

// Row returns row i as a string.
func (g *WordGrid) Row(i int) string {
	return string(g.Cells[i])
}

// Column returns column i as a string.
func (g *WordGrid) Column(i int) string {
	var b strings.Builder
	for _, row := range g.Cells {
		b.WriteRune(row[i])
	}
	return b.String()
}

func puzzleWord(s string) string {
	var b strings.Builder
	for _, c := range strings.ToUpper(s) {
		if c >= 'A' && c <= 'Z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Scramble shuffles the letters of a word. The result differs from the
// input whenever the word has two different letters.
func Scramble(word string, rng *rand.Rand) string {
	w := []rune(strings.ToUpper(word))
	if len(w) < 2 {
		return string(w)
	}
	orig := string(w)
	rng.Shuffle(len(w), func(i, j int) { w[i], w[j] = w[j], w[i] })
	if string(w) == orig {
		// rotate by one, changes the word unless all letters are equal
		w = append(w[1:], w[0])
	}
	return string(w)
}
