package derive

import (
	"math"

	"github.com/anrid/us-population/pkg/selection"
	"github.com/anrid/us-population/pkg/stats"
)

// ChoroplethView holds what a state map backend needs: one location per
// state, its value and the continuous color scale over Domain.
type ChoroplethView struct {
	Locations  []string        `json:"locations"`
	Names      []string        `json:"names"`
	Values     []int           `json:"values"`
	ColorScale selection.Theme `json:"color_scale"`
	Domain     [2]int          `json:"domain"`
}

// Choropleth maps each record of slice to its state location. Locations are
// the two-letter state codes when the source has them, the state IDs
// otherwise. Domain is [min, max] of the values, [0, 0] for an empty slice.
func Choropleth(slice []stats.Record, theme selection.Theme) ChoroplethView {
	v := ChoroplethView{
		Locations:  make([]string, 0, len(slice)),
		Names:      make([]string, 0, len(slice)),
		Values:     make([]int, 0, len(slice)),
		ColorScale: theme,
	}
	for _, r := range slice {
		loc := r.StateCode
		if loc == "" {
			loc = r.StateID
		}
		v.Locations = append(v.Locations, loc)
		v.Names = append(v.Names, r.State)
		v.Values = append(v.Values, r.Population)
	}
	v.Domain = domain(v.Values)
	return v
}

type HeatmapCell struct {
	Year       selection.Key `json:"year"`
	State      string        `json:"state"`
	Population int           `json:"population"`
}

// HeatmapView is a year by state grid. Width and Height are the plot area
// after the axis padding.
type HeatmapView struct {
	Cells      []HeatmapCell   `json:"cells"`
	Years      []selection.Key `json:"years"`
	States     []string        `json:"states"`
	ColorScale selection.Theme `json:"color_scale"`
	Domain     [2]int          `json:"domain"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
}

const (
	heatmapPadX = 60
	heatmapPadY = 130
)

// Heatmap builds one cell per record. Pass year records only; decade
// components do not belong on the year axis.
func Heatmap(records []stats.Record, theme selection.Theme, width, height float64) HeatmapView {
	v := HeatmapView{
		Cells:      make([]HeatmapCell, 0, len(records)),
		ColorScale: theme,
		Width:      int(math.Max(width-heatmapPadX, 0)),
		Height:     int(math.Max(height-heatmapPadY, 0)),
	}

	seenYear := make(map[selection.Key]bool)
	seenState := make(map[string]bool)
	values := make([]int, 0, len(records))
	for _, r := range records {
		v.Cells = append(v.Cells, HeatmapCell{Year: r.Year, State: r.State, Population: r.Population})
		values = append(values, r.Population)
		if !seenYear[r.Year] {
			seenYear[r.Year] = true
			v.Years = append(v.Years, r.Year)
		}
		if !seenState[r.State] {
			seenState[r.State] = true
			v.States = append(v.States, r.State)
		}
	}
	v.Domain = domain(values)
	return v
}

// LineView is the population-over-time series. Width and Height are in
// inches at DPI.
type LineView struct {
	Xs     []int    `json:"xs"`
	Ys     []int    `json:"ys"`
	Labels []string `json:"labels"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	DPI    float64  `json:"dpi"`
}

// LineSeries turns yearly totals into the line chart input. A dpi that is
// not positive falls back to selection.DefaultDPI.
func LineSeries(totals []stats.YearTotal, width, height, dpi float64) LineView {
	if dpi <= 0 {
		dpi = selection.DefaultDPI
	}
	v := LineView{
		Xs:     make([]int, 0, len(totals)),
		Ys:     make([]int, 0, len(totals)),
		Labels: make([]string, 0, len(totals)),
		Width:  math.Max(width-10, 0) / dpi,
		Height: math.Max(height-5, 0) / dpi,
		DPI:    dpi,
	}
	for _, t := range totals {
		y, ok := t.Year.Year()
		if !ok {
			continue
		}
		v.Xs = append(v.Xs, y)
		v.Ys = append(v.Ys, t.Population)
		v.Labels = append(v.Labels, FormatPopulation(t.Population))
	}
	return v
}

func domain(values []int) [2]int {
	if len(values) == 0 {
		return [2]int{}
	}
	d := [2]int{values[0], values[0]}
	for _, v := range values[1:] {
		d[0] = min(d[0], v)
		d[1] = max(d[1], v)
	}
	return d
}
