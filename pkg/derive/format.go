// Package derive computes the dashboard view models from the population
// table and the current selection.
//
// Every function here is pure: it reads its arguments, returns plain data
// and never touches a rendering backend.
package derive

import (
	"fmt"
	"math"

	"github.com/anrid/us-population/pkg/selection"
)

// FormatPopulation abbreviates n for display. Values above one million are
// shown in millions with one decimal ("2.3 M", or "2 M" when evenly
// divisible); everything else is floor-divided into thousands ("45 K").
// Floor division keeps small negative values negative ("-1 K" for -500).
func FormatPopulation(n int) string {
	if n > 1_000_000 {
		if n%1_000_000 == 0 {
			return fmt.Sprintf("%d M", n/1_000_000)
		}
		return fmt.Sprintf("%.1f M", float64(n)/1_000_000)
	}
	return fmt.Sprintf("%d K", floorDiv(n, 1000))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Title is the markdown heading above the map.
func Title(key selection.Key) string {
	return "### Population " + string(key)
}

// roundHalfEven rounds halves to the even neighbour.
func roundHalfEven(x float64) int {
	return int(math.RoundToEven(x))
}

// FormatPercent is the label in the middle of a donut.
func FormatPercent(p int) string {
	return fmt.Sprintf("%d %%", p)
}
