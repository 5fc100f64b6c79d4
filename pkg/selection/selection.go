// Package selection holds the user-controlled inputs of the dashboard.
//
// A Selection is an immutable value. Changing a field produces a new
// Selection; nothing mutates a snapshot once it has been handed to the
// derivation functions.
package selection

import (
	"errors"
	"fmt"
)

var ErrUnknownTheme = errors.New("unknown color theme")

// Theme names a continuous color palette.
type Theme string

var themes = []Theme{"blues", "cividis", "greens", "inferno", "magma", "plasma", "reds", "rainbow", "turbo", "viridis"}

func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

func ParseTheme(s string) (Theme, error) {
	for _, t := range themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// DefaultDPI is used when a size event does not report one.
const DefaultDPI = 192

// Viewport is the size reported by a widget's size observer.
type Viewport struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	DPI        float64 `json:"dpi,omitempty"`
	PixelRatio float64 `json:"pixelRatio,omitempty"`
}

// Resolution returns the DPI, falling back to DefaultDPI.
func (v Viewport) Resolution() float64 {
	if v.DPI <= 0 {
		return DefaultDPI
	}
	return v.DPI
}

type Selection struct {
	Key     Key      `json:"selectedComponentOrYear"`
	Theme   Theme    `json:"selectedColorTheme"`
	Line    Viewport `json:"line_size"`
	Heatmap Viewport `json:"heatmap_size"`
}

func Default() Selection {
	return Selection{
		Key:     "2011",
		Theme:   "blues",
		Line:    Viewport{Width: 300, Height: 300, DPI: DefaultDPI, PixelRatio: 2},
		Heatmap: Viewport{Width: 600, Height: 400},
	}
}

func (s Selection) WithKey(k Key) Selection {
	s.Key = k
	return s
}

func (s Selection) WithTheme(t Theme) Selection {
	s.Theme = t
	return s
}

func (s Selection) WithLine(v Viewport) Selection {
	s.Line = v
	return s
}

func (s Selection) WithHeatmap(v Viewport) Selection {
	s.Heatmap = v
	return s
}

// Validate checks that the key and theme are selectable values.
func (s Selection) Validate() error {
	if _, err := ParseKey(string(s.Key)); err != nil {
		return err
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		return err
	}
	return nil
}
