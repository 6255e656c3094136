package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/compose"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/impose"
	"github.com/akeil/tripjournal/pkg/memories"
	"github.com/akeil/tripjournal/pkg/service"
)

type layout string

const (
	layoutSingle  layout = "single"
	layoutTwoUp   layout = "twoup"
	layoutBooklet layout = "booklet"
)

func layouts() []string {
	return []string{string(layoutSingle), string(layoutTwoUp), string(layoutBooklet)}
}

func doRender(s settings, src tripSource, out string, l layout) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c, _, err := build(s, src)
	if err != nil {
		return err
	}
	if out == "" {
		out = service.Filename(c.ChildName, "Travel_Journal")
	}
	return renderJournal(ctx, s, c, out, l)
}

func doBatch(s settings, files []string, outDir string, l layout) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if outDir == "" {
		outDir = "."
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		path := f // scope
		group.Go(func() error {
			fmt.Printf("%v render %q\n", ellipsis, path)
			c, _, err := build(s, tripSource{file: path})
			if err != nil {
				fmt.Printf("%v Failed to read %q: %v\n", crossmark, path, err)
				return err
			}
			out := filepath.Join(outDir, service.Filename(c.ChildName+"_"+c.Destination, "Travel_Journal"))
			return renderJournal(ctx, s, c, out, l)
		})
	}
	return group.Wait()
}

func renderJournal(ctx context.Context, s settings, c *journal.Content, out string, l layout) error {
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = compose.NewComposer(rc).RenderTo(ctx, c, &buf)
	if err != nil {
		fmt.Printf("%v Failed to render journal for %q: %v\n", crossmark, c.Destination, err)
		return err
	}

	err = writeFile(out, func(w io.Writer) error {
		src := bytes.NewReader(buf.Bytes())
		switch l {
		case layoutTwoUp:
			return impose.TwoUp(src, w)
		case layoutBooklet:
			return impose.Booklet(src, w)
		default:
			_, err := src.WriteTo(w)
			return err
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v journal for %q saved as %q.\n", checkmark, c.Destination, out)
	return nil
}

func doPreview(s settings, src tripSource, page int, scale float64, thumb int, out string) error {
	c, plan, err := build(s, src)
	if err != nil {
		return err
	}
	rc, err := setupContext(s)
	if err != nil {
		return err
	}

	r := draw.NewRaster(draw.HalfLetter, scale)
	err = compose.NewComposer(rc).Render(c, plan, r)
	if err != nil {
		return err
	}
	pages := r.Pages()
	if page < 1 || page > len(pages) {
		return fmt.Errorf("page %d out of range, journal has %d pages", page, len(pages))
	}

	if out == "" {
		out = fmt.Sprintf("%v-page%02d.png", c.Destination, page)
	}
	err = writeFile(out, func(w io.Writer) error {
		if thumb > 0 {
			return png.Encode(w, draw.Thumbnail(pages[page-1], thumb))
		}
		return r.WritePNG(page-1, w)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v page %d of %d saved as %q.\n", checkmark, page, len(pages), out)
	return nil
}

func doCard(s settings, src tripSource, out string, names []string) error {
	c, _, err := build(s, src)
	if err != nil {
		return err
	}

	designs := make([]memories.Design, 0, len(names))
	for _, n := range names {
		d, err := memories.ParseDesign(n)
		if err != nil {
			return err
		}
		designs = append(designs, d)
	}

	if out == "" {
		out = service.Filename(c.ChildName, "Holiday_Cards")
	}
	err = writeFile(out, func(w io.Writer) error {
		return memories.WriteCards(c, w, designs...)
	})
	if err != nil {
		return err
	}
	fmt.Printf("%v holiday cards saved as %q.\n", checkmark, out)
	return nil
}

func doSlides(s settings, src tripSource, out string) error {
	c, _, err := build(s, src)
	if err != nil {
		return err
	}
	if out == "" {
		out = service.Filename(c.ChildName, "School_Slides")
	}
	err = writeFile(out, func(w io.Writer) error {
		return memories.WriteSlides(c, w)
	})
	if err != nil {
		return err
	}
	fmt.Printf("%v slides saved as %q.\n", checkmark, out)
	return nil
}

// writeFile creates path and fills it with write. The file is removed if
// write fails.
func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return journal.Wrap(err, "create output file")
	}

	err = write(f)
	cerr := f.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		logging.Debug("Remove incomplete file %q", path)
		os.Remove(path)
		return journal.Wrap(err, "write %q", path)
	}
	return nil
}
