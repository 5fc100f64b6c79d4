package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/anrid/us-population/pkg/selection"
)

// Config holds the defaults of both commands. Flags override it.
type Config struct {
	// Source is the raw table the create command converts.
	Source  string `env:"US_POPULATION_SOURCE" envDefault:"data/us-population.csv"`
	// Dataset is the snapshot written by create and read by show.
	Dataset string `env:"US_POPULATION_DATASET" envDefault:"/tmp/us-population.json"`
	OutDir  string `env:"US_POPULATION_OUT"`

	Key   string `env:"US_POPULATION_KEY" envDefault:"2011"`
	Theme string `env:"US_POPULATION_THEME" envDefault:"blues"`

	LineWidth     float64 `env:"US_POPULATION_LINE_WIDTH" envDefault:"300"`
	LineHeight    float64 `env:"US_POPULATION_LINE_HEIGHT" envDefault:"300"`
	LineDPI       float64 `env:"US_POPULATION_LINE_DPI" envDefault:"192"`
	HeatmapWidth  float64 `env:"US_POPULATION_HEATMAP_WIDTH" envDefault:"600"`
	HeatmapHeight float64 `env:"US_POPULATION_HEATMAP_HEIGHT" envDefault:"400"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Selection builds the initial selection, validating key and theme.
func (c Config) Selection() (selection.Selection, error) {
	key, err := selection.ParseKey(c.Key)
	if err != nil {
		return selection.Selection{}, err
	}
	theme, err := selection.ParseTheme(c.Theme)
	if err != nil {
		return selection.Selection{}, err
	}
	sel := selection.Default().WithKey(key).WithTheme(theme)
	sel = sel.WithLine(selection.Viewport{Width: c.LineWidth, Height: c.LineHeight, DPI: c.LineDPI, PixelRatio: sel.Line.PixelRatio})
	sel = sel.WithHeatmap(selection.Viewport{Width: c.HeatmapWidth, Height: c.HeatmapHeight})
	return sel, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
