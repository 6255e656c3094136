package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/compose"
	"github.com/akeil/tripjournal/pkg/content"
	"github.com/akeil/tripjournal/pkg/theme"
)

// settings can be read from a YAML file. Command line flags and
// environment variables take precedence.
type settings struct {
	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
	Catalog  string `yaml:"catalog"`
	Seed     int64  `yaml:"seed"`
	Theme    string `yaml:"theme"`
	Listen   string `yaml:"listen"`
	CacheDir string `yaml:"cacheDir"`
	Workers  int64  `yaml:"workers"`
}

func defaultSettings() settings {
	return settings{
		LogLevel: "warning",
		Listen:   "localhost:8080",
		CacheDir: filepath.Join(os.TempDir(), "tripjournal"),
		Workers:  2,
	}
}

// loadSettings reads the settings file at path on top of the defaults.
// An empty path means defaults only.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return s, journal.Wrap(err, "open settings")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&s)
	if err != nil {
		return s, journal.Wrap(err, "read settings %q", path)
	}
	logging.Debug("Loaded settings from %q", path)
	return s, nil
}

// override replaces every field for which o has a non-zero value.
func (s *settings) override(o settings) {
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		s.LogFile = o.LogFile
	}
	if o.Catalog != "" {
		s.Catalog = o.Catalog
	}
	if o.Seed != 0 {
		s.Seed = o.Seed
	}
	if o.Theme != "" {
		s.Theme = o.Theme
	}
	if o.Listen != "" {
		s.Listen = o.Listen
	}
	if o.CacheDir != "" {
		s.CacheDir = o.CacheDir
	}
	if o.Workers != 0 {
		s.Workers = o.Workers
	}
}

func setupGenerator(s settings) (content.Generator, error) {
	if s.Catalog == "" {
		c, err := content.BuiltinCatalog()
		if err != nil {
			return nil, err
		}
		return content.NewGenerator(c), nil
	}

	f, err := os.Open(s.Catalog)
	if err != nil {
		return nil, journal.Wrap(err, "open catalog")
	}
	defer f.Close()
	c, err := content.LoadCatalog(f)
	if err != nil {
		return nil, journal.Wrap(err, "load catalog %q", s.Catalog)
	}
	return content.NewGenerator(c), nil
}

func setupContext(s settings) (*compose.Context, error) {
	ctx := compose.NewSeededContext(s.Seed)
	if s.Theme != "" {
		th, err := theme.ParseTheme(s.Theme)
		if err != nil {
			return nil, err
		}
		ctx.Theme = &th
	}
	return ctx, nil
}
