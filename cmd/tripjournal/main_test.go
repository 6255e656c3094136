package main

import (
	"context"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/theme"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadSettings(t *testing.T) {
	s, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)

	path := writeTemp(t, "settings.yaml", "logLevel: debug\nworkers: 4\ntheme: japan\n")
	s, err = loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, int64(4), s.Workers)
	assert.Equal(t, "localhost:8080", s.Listen)

	_, err = loadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSettingsOverride(t *testing.T) {
	s := defaultSettings()
	s.override(settings{Listen: ":9000", Seed: 7})
	assert.Equal(t, ":9000", s.Listen)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, "warning", s.LogLevel)
	assert.Equal(t, int64(2), s.Workers)
}

func TestSetupContext(t *testing.T) {
	ctx, err := setupContext(settings{Seed: 3, Theme: "Safari"})
	require.NoError(t, err)
	require.NotNil(t, ctx.Theme)
	assert.Equal(t, theme.Safari, *ctx.Theme)
	assert.Equal(t, int64(3), ctx.Seed)

	_, err = setupContext(settings{Theme: "moon"})
	assert.Error(t, err)
}

const tripFile = `childName: Emma
childAge: 8
destination: Paris
startDate: 2025-06-01
endDate: 2025-06-03
landmarks: [Eiffel Tower, Louvre]
`

func TestTripFromFile(t *testing.T) {
	src := tripSource{file: writeTemp(t, "trip.yaml", tripFile)}
	trip, err := src.Trip()
	require.NoError(t, err)
	assert.Equal(t, "Emma", trip.ChildName)
	assert.Equal(t, "Paris", trip.Destination)
	assert.Equal(t, 3, journal.TripDays(trip.StartDate, trip.EndDate))
	assert.Equal(t, []string{"Eiffel Tower", "Louvre"}, trip.Landmarks)
}

func TestTripFlagsOverrideFile(t *testing.T) {
	src := tripSource{
		file:      writeTemp(t, "trip.yaml", tripFile),
		dest:      "Kyoto",
		end:       "2025-06-05",
		landmarks: "Kinkaku-ji",
	}
	trip, err := src.Trip()
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", trip.Destination)
	assert.Equal(t, 5, journal.TripDays(trip.StartDate, trip.EndDate))
	assert.Equal(t, []string{"Kinkaku-ji"}, trip.Landmarks)
}

func TestTripFromFlags(t *testing.T) {
	src := tripSource{child: "Leo", dest: "Nairobi", start: "2025-01-10", end: "2025-01-11"}
	trip, err := src.Trip()
	require.NoError(t, err)
	assert.Equal(t, "Leo", trip.ChildName)

	src.start = "10.1.2025"
	_, err = src.Trip()
	assert.True(t, journal.IsValidationError(err))

	_, err = tripSource{dest: "Nairobi"}.Trip()
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	src := tripSource{file: writeTemp(t, "trip.yaml", tripFile)}
	c, plan, err := build(defaultSettings(), src)
	require.NoError(t, err)
	assert.Equal(t, 3, c.TripDays)
	assert.NotEmpty(t, plan)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	ok := filepath.Join(dir, "ok.txt")
	err := writeFile(ok, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	})
	require.NoError(t, err)
	data, err := ioutil.ReadFile(ok)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	bad := filepath.Join(dir, "bad.txt")
	err = writeFile(bad, func(w io.Writer) error {
		return errors.New("boom")
	})
	assert.Error(t, err)
	_, err = os.Stat(bad)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderJournal(t *testing.T) {
	s := defaultSettings()
	s.Seed = 1
	c, _, err := build(s, tripSource{file: writeTemp(t, "trip.yaml", tripFile)})
	require.NoError(t, err)

	for _, l := range []layout{layoutSingle, layoutTwoUp, layoutBooklet} {
		out := filepath.Join(t.TempDir(), string(l)+".pdf")
		require.NoError(t, renderJournal(context.Background(), s, c, out, l), l)
		data, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]), l)
	}
}
