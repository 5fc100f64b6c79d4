package derive

import (
	"strings"

	"github.com/anrid/us-population/pkg/selection"
)

type Direction int

const (
	Neutral Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "neutral"
}

// Highlight is the gains or losses panel: a state, its population and its
// year-over-year change, all formatted for display.
type Highlight struct {
	State      string    `json:"state"`
	Population string    `json:"population"`
	Delta      string    `json:"delta"`
	Direction  Direction `json:"direction"`
}

var placeholder = Highlight{State: "N/A", Population: "0 M", Delta: "0 K", Direction: Neutral}

func newHighlight(row DifferenceRow) Highlight {
	h := Highlight{
		State:      row.State,
		Population: FormatPopulation(row.Population),
		Delta:      FormatPopulation(row.Difference),
		Direction:  Up,
	}
	// The sign is read off the formatted text, not the raw value.
	if strings.HasPrefix(h.Delta, "-") {
		h.Direction = Down
	}
	return h
}

// Markdown renders the panel the way the dashboard's markdown widget shows it.
func (h Highlight) Markdown() string {
	var color, arrow string
	switch h.Direction {
	case Up:
		color, arrow = "green", "&uarr;"
	case Down:
		color, arrow = "red", "&darr;"
	default:
		color, arrow = "black", "&harr;"
	}
	return h.State + "  \n<span style='font-size:2.0em;'>" + h.Population + "</span>  \n<span style='color:" + color + "'>" + arrow + h.Delta + "</span>"
}

// Gains picks the state with the largest difference.
func Gains(diffs []DifferenceRow, key selection.Key) Highlight {
	if !key.Diffable() || len(diffs) == 0 {
		return placeholder
	}
	return newHighlight(diffs[0])
}

// Losses picks the state with the smallest difference.
func Losses(diffs []DifferenceRow, key selection.Key) Highlight {
	if !key.Diffable() || len(diffs) == 0 {
		return placeholder
	}
	return newHighlight(diffs[len(diffs)-1])
}

func MakeGainsText(diffs []DifferenceRow, key selection.Key) string {
	return Gains(diffs, key).Markdown()
}

func MakeLossesText(diffs []DifferenceRow, key selection.Key) string {
	return Losses(diffs, key).Markdown()
}
