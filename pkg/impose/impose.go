// Package impose arranges rendered journal pages on printer sheets.
//
// Journal pages are half-letter, so two of them fill one landscape letter
// sheet exactly. TwoUp keeps the reading order, Booklet orders the pages
// for a folded, double-sided booklet.
package impose

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/draw"
)

// blank marks an empty slot on a sheet.
const blank = 0

// PageCount returns the number of pages in a PDF.
func PageCount(rs io.ReadSeeker) (int, error) {
	n, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, journal.Wrap(err, "count pages")
	}
	return n, nil
}

// Validate checks that rs holds a well-formed PDF.
func Validate(rs io.ReadSeeker) error {
	err := api.Validate(rs, nil)
	if err != nil {
		return journal.Wrap(err, "validate PDF")
	}
	return nil
}

// TwoUp places pages 1+2, 3+4, ... side by side on landscape letter
// sheets.
func TwoUp(rs io.ReadSeeker, w io.Writer) error {
	n, err := rewind(rs)
	if err != nil {
		return err
	}
	return impose(rs, w, TwoUpOrder(n))
}

// Booklet orders the pages so that the printed sheets, stacked and
// folded, read in order. The page count is padded to a multiple of four
// with blank pages.
func Booklet(rs io.ReadSeeker, w io.Writer) error {
	n, err := rewind(rs)
	if err != nil {
		return err
	}
	return impose(rs, w, BookletOrder(n))
}

// TwoUpOrder lists page numbers as left/right pairs, one pair per sheet.
// Zero means an empty half.
func TwoUpOrder(n int) [][2]int {
	var out [][2]int
	for p := 1; p <= n; p += 2 {
		right := p + 1
		if right > n {
			right = blank
		}
		out = append(out, [2]int{p, right})
	}
	return out
}

// BookletOrder lists the page pairs for saddle stitch printing: front and
// back of each sheet in turn. Zero means an empty half.
func BookletOrder(n int) [][2]int {
	if n == 0 {
		return nil
	}
	total := (n + 3) / 4 * 4
	page := func(p int) int {
		if p > n {
			return blank
		}
		return p
	}

	var out [][2]int
	for s := 0; s < total/4; s++ {
		front := [2]int{page(total - 2*s), page(2*s + 1)}
		back := [2]int{page(2*s + 2), page(total - 2*s - 1)}
		out = append(out, front, back)
	}
	return out
}

func rewind(rs io.ReadSeeker) (int, error) {
	n, err := PageCount(rs)
	if err != nil {
		return 0, err
	}
	_, err = rs.Seek(0, io.SeekStart)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func impose(rs io.ReadSeeker, w io.Writer, sheets [][2]int) error {
	logging.Debug("Impose %d sheets", len(sheets))
	half := draw.HalfLetter
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: draw.LetterLandscape.Height, Ht: draw.LetterLandscape.Width},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("tripjournal", true)

	im := gofpdi.NewImporter()
	templates := make(map[int]int)
	for _, sheet := range sheets {
		pdf.AddPage()
		for i, p := range sheet {
			if p == blank {
				continue
			}
			tpl, ok := templates[p]
			if !ok {
				err := dontPanic(func() {
					tpl = im.ImportPageFromStream(pdf, &rs, p, "/MediaBox")
				})
				if err != nil {
					return journal.Wrap(err, "import page %d", p)
				}
				templates[p] = tpl
			}
			im.UseImportedTemplate(pdf, tpl, float64(i)*half.Width, 0, half.Width, half.Height)
		}
	}

	err := pdf.Error()
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// dontPanic runs f and turns a panic into an error. The PDF importer
// panics on input it cannot parse.
func dontPanic(f func()) (err error) {
	defer func() {
		x := recover()
		if x != nil {
			logging.Warning("Recovered from panic: %v", x)
			err = fmt.Errorf("recovered from: %v", x)
		}
	}()
	f()
	return nil
}
