// Package render turns published view models into files a browser can show.
// It is one rendering backend among possible others; nothing in the
// derivation code depends on it.
package render

import (
	"errors"
	"image/color"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"

	"github.com/anrid/us-population/pkg/derive"
)

var errEmpty = errors.New("nothing to plot")

// LineSVG plots the population over time. The view's size is in inches at
// its DPI.
func LineSVG(w io.Writer, v derive.LineView) error {
	if len(v.Xs) == 0 {
		return errEmpty
	}

	tab := new(table.Builder).
		Add("year", v.Xs).
		Add("population", v.Ys).
		Done()

	plot := gg.NewPlot(tab)
	plot.Add(gg.LayerLines{X: "year", Y: "population"})

	return plot.WriteSVG(w, pixels(v.Width, v.DPI), pixels(v.Height, v.DPI))
}

// HeatmapSVG plots one tile per cell, states across and years down, filled
// from the view's color theme.
func HeatmapSVG(w io.Writer, v derive.HeatmapView) error {
	if len(v.Cells) == 0 {
		return errEmpty
	}

	stateIdx := make(map[string]int, len(v.States))
	for i, s := range v.States {
		stateIdx[s] = i
	}

	grad := Gradient(v.ColorScale)
	xs := make([]int, len(v.Cells))
	ys := make([]int, len(v.Cells))
	fills := make([]color.Color, len(v.Cells))
	for i, c := range v.Cells {
		xs[i] = stateIdx[c.State]
		ys[i], _ = c.Year.Year()
		fills[i] = Scale(grad, c.Population, v.Domain[0], v.Domain[1])
	}

	tab := new(table.Builder).
		Add("state", xs).
		Add("year", ys).
		Add("fill", fills).
		Done()

	plot := gg.NewPlot(tab)
	plot.SetScale("fill", gg.NewIdentityScale())
	plot.Add(gg.LayerTiles{X: "state", Y: "year", Fill: "fill"})

	return plot.WriteSVG(w, max(v.Width, 1), max(v.Height, 1))
}

func pixels(inches, dpi float64) int {
	return max(int(inches*dpi), 1)
}
