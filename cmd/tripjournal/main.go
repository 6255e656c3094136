package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	journal.SetLogLevel("warning")

	app := kingpin.New("tripjournal", "Printable travel journals for kids")
	app.HelpFlag.Short('h')

	var (
		settingsPath = app.Flag("settings", "YAML settings file").Short('c').Envar("TRIPJOURNAL_SETTINGS").String()
		logLevel     = app.Flag("log-level", "Log level (debug, info, warning, error)").Envar("TRIPJOURNAL_LOG_LEVEL").String()
		logFile      = app.Flag("log-file", "Write log messages to this file").Envar("TRIPJOURNAL_LOG_FILE").String()
		catalogPath  = app.Flag("catalog", "Destination catalog, replaces the built-in one").Envar("TRIPJOURNAL_CATALOG").String()
		seed         = app.Flag("seed", "Seed for repeatable puzzles").Int64()
		themeName    = app.Flag("theme", "Use this theme instead of the one for the destination").String()
	)

	render := app.Command("render", "Render a travel journal as PDF").Default()
	renderTrip := tripFlags(render)
	var (
		renderOut    = render.Flag("output", "Output file").Short('o').String()
		renderLayout = render.Flag("layout", "Page layout").Short('l').Default(string(layoutSingle)).Enum(layouts()...)
	)

	batch := app.Command("batch", "Render journals for several trip files")
	var (
		batchFiles  = batch.Arg("trips", "Trip files (YAML)").Required().ExistingFiles()
		batchOutDir = batch.Flag("output", "Output directory").Short('o').String()
		batchLayout = batch.Flag("layout", "Page layout").Short('l').Default(string(layoutSingle)).Enum(layouts()...)
	)

	preview := app.Command("preview", "Render a single page as PNG")
	previewTrip := tripFlags(preview)
	var (
		previewPage  = preview.Flag("page", "Page number, starting at 1").Short('p').Default("1").Int()
		previewScale = preview.Flag("scale", "Pixels per point").Default("2").Float64()
		previewThumb = preview.Flag("thumbnail", "Scale the page down to this width in pixels").Int()
		previewOut   = preview.Flag("output", "Output file").Short('o').String()
	)

	themeCmd := app.Command("theme", "Show the theme for a destination")
	var (
		themeDest    = themeCmd.Arg("destination", "Destination name").Required().String()
		themeCountry = themeCmd.Flag("country", "Country of the destination").String()
		themeZones   = themeCmd.Flag("zones", "List the decorations per zone").Bool()
	)

	card := app.Command("card", "Render holiday cards")
	cardTrip := tripFlags(card)
	var (
		cardOut     = card.Flag("output", "Output file").Short('o').String()
		cardDesigns = card.Flag("design", "Card design, may be repeated").Short('d').Strings()
	)

	slides := app.Command("slides", "Render school presentation slides")
	slidesTrip := tripFlags(slides)
	slidesOut := slides.Flag("output", "Output file").Short('o').String()

	serve := app.Command("serve", "Run the journal web service")
	var (
		serveAddr    = serve.Flag("listen", "Listen address").Envar("TRIPJOURNAL_LISTEN").String()
		serveCache   = serve.Flag("cache-dir", "Directory for rendered journals").Envar("TRIPJOURNAL_CACHE_DIR").String()
		serveWorkers = serve.Flag("workers", "Journals rendered at the same time").Envar("TRIPJOURNAL_WORKERS").Int64()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	s, err := loadSettings(*settingsPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	s.override(settings{
		LogLevel: *logLevel,
		LogFile:  *logFile,
		Catalog:  *catalogPath,
		Seed:     *seed,
		Theme:    *themeName,
		Listen:   *serveAddr,
		CacheDir: *serveCache,
		Workers:  *serveWorkers,
	})

	closeLog, err := setupLogging(s)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	switch command {
	case "render":
		err = doRender(s, *renderTrip, *renderOut, layout(*renderLayout))
	case "batch":
		err = doBatch(s, *batchFiles, *batchOutDir, layout(*batchLayout))
	case "preview":
		err = doPreview(s, *previewTrip, *previewPage, *previewScale, *previewThumb, *previewOut)
	case "theme":
		err = doTheme(*themeDest, *themeCountry, *themeZones)
	case "card":
		err = doCard(s, *cardTrip, *cardOut, *cardDesigns)
	case "slides":
		err = doSlides(s, *slidesTrip, *slidesOut)
	case "serve":
		err = doServe(s)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func setupLogging(s settings) (func(), error) {
	journal.SetLogLevel(s.LogLevel)
	if s.LogFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, journal.Wrap(err, "open log file")
	}
	logging.SetOutput(f)
	return func() { f.Close() }, nil
}
