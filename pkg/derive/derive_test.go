package derive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anrid/us-population/pkg/selection"
	"github.com/anrid/us-population/pkg/stats"
)

func rec(state, id string, year selection.Key, pop int) stats.Record {
	return stats.Record{State: state, StateID: id, Year: year, Population: pop}
}

// scenario is the two-state example: A grows by 60K, B shrinks by 40K.
func scenario() []stats.Record {
	return []stats.Record{
		rec("A", "01", "2011", 100_000),
		rec("B", "02", "2011", 50_000),
		rec("A", "01", "2012", 160_000),
		rec("B", "02", "2012", 10_000),
	}
}

func TestFormatPopulation(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{2_000_000, "2 M"},
		{2_340_000, "2.3 M"},
		{45_000, "45 K"},
		{1_000_000, "1000 K"},
		{1_000_001, "1.0 M"},
		{39_512_223, "39.5 M"},
		{999, "0 K"},
		{0, "0 K"},
		{-40_000, "-40 K"},
		{-500, "-1 K"},
		{-1_500_000, "-1500 K"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPopulation(tt.n))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "### Population 2015", Title("2015"))
	assert.Equal(t, "### Population Births", Title(selection.Births))
}

func TestComputeDifferencesNotApplicable(t *testing.T) {
	data := scenario()
	assert.Nil(t, ComputeDifferences(data, selection.FirstYear))
	for _, c := range selection.Components() {
		assert.Nil(t, ComputeDifferences(data, c), c)
	}
	assert.Nil(t, ComputeDifferences(data, "nope"))

	// Selected year or prior year missing entirely.
	assert.Nil(t, ComputeDifferences(data, "2015"))
	assert.Nil(t, ComputeDifferences(data, "2013"))
	assert.Nil(t, ComputeDifferences(nil, "2012"))
}

func TestComputeDifferencesScenario(t *testing.T) {
	diffs := ComputeDifferences(scenario(), "2012")
	assert.Equal(t, []DifferenceRow{
		{State: "A", StateID: "01", Population: 160_000, Difference: 60_000},
		{State: "B", StateID: "02", Population: 10_000, Difference: -40_000},
	}, diffs)
}

func TestComputeDifferencesMissingPriorState(t *testing.T) {
	data := append(scenario(), rec("C", "03", "2012", 70_000))
	diffs := ComputeDifferences(data, "2012")
	require.Len(t, diffs, 3)

	byState := make(map[string]int)
	for _, d := range diffs {
		byState[d.State] = d.Difference
	}
	assert.Equal(t, 70_000, byState["C"])
	assert.Equal(t, 60_000, byState["A"])
}

func TestComputeDifferencesProperties(t *testing.T) {
	// Ten years for eight states, with one state dropping out in 2014.
	var data []stats.Record
	for y := 2010; y <= 2019; y++ {
		for s := 0; s < 8; s++ {
			if s == 7 && y == 2014 {
				continue
			}
			pop := 1_000_000 + s*250_000 + ((y*7919+s*104729)%200_000 - 100_000)
			data = append(data, rec(fmt.Sprintf("S%d", s), fmt.Sprintf("%02d", s), selection.Key(fmt.Sprint(y)), pop))
		}
	}
	pop := make(map[string]int)
	for _, r := range data {
		pop[r.StateID+"/"+string(r.Year)] = r.Population
	}

	for y := 2011; y <= 2019; y++ {
		key := selection.Key(fmt.Sprint(y))
		diffs := ComputeDifferences(data, key)
		require.NotNil(t, diffs, key)

		for i := 1; i < len(diffs); i++ {
			assert.GreaterOrEqual(t, diffs[i-1].Difference, diffs[i].Difference)
		}
		for _, d := range diffs {
			prev, ok := pop[d.StateID+"/"+string(key.Prior())]
			if !ok {
				assert.Equal(t, d.Population, d.Difference)
				continue
			}
			assert.Equal(t, d.Population-prev, d.Difference)
		}
	}
}

func TestComputeDifferencesStableTies(t *testing.T) {
	data := []stats.Record{
		rec("X", "1", "2011", 10), rec("Y", "2", "2011", 20), rec("Z", "3", "2011", 30),
		rec("X", "1", "2012", 15), rec("Y", "2", "2012", 25), rec("Z", "3", "2012", 35),
	}
	diffs := ComputeDifferences(data, "2012")
	require.Len(t, diffs, 3)
	assert.Equal(t, "X", diffs[0].State)
	assert.Equal(t, "Y", diffs[1].State)
	assert.Equal(t, "Z", diffs[2].State)
}

func TestGainsLossesScenario(t *testing.T) {
	diffs := ComputeDifferences(scenario(), "2012")

	gains := MakeGainsText(diffs, "2012")
	assert.Equal(t, "A  \n<span style='font-size:2.0em;'>160 K</span>  \n<span style='color:green'>&uarr;60 K</span>", gains)

	losses := MakeLossesText(diffs, "2012")
	assert.True(t, strings.HasPrefix(losses, "B  \n"))
	assert.Contains(t, losses, "40 K")
	assert.Contains(t, losses, "<span style='color:red'>&darr;-40 K</span>")

	assert.Equal(t, Down, Losses(diffs, "2012").Direction)
	assert.Equal(t, Up, Gains(diffs, "2012").Direction)
}

func TestGainsLossesPlaceholder(t *testing.T) {
	want := "N/A  \n<span style='font-size:2.0em;'>0 M</span>  \n<span style='color:black'>&harr;0 K</span>"
	for _, key := range []selection.Key{"2010", selection.Change, selection.Domestic} {
		assert.Equal(t, want, MakeGainsText(nil, key))
		assert.Equal(t, want, MakeLossesText(nil, key))
	}
	assert.Equal(t, want, MakeGainsText([]DifferenceRow{}, "2012"))
	assert.Equal(t, Neutral, Gains(nil, "2012").Direction)
}

func TestHighlightSignFromText(t *testing.T) {
	// -500 formats as "-1 K", so it is a loss even though it rounds away.
	h := newHighlight(DifferenceRow{State: "Q", Population: 2_000_000, Difference: -500})
	assert.Equal(t, "-1 K", h.Delta)
	assert.Equal(t, Down, h.Direction)

	h = newHighlight(DifferenceRow{State: "Q", Population: 2_000_000, Difference: 0})
	assert.Equal(t, Up, h.Direction)
}

func TestComputeGrowthShares(t *testing.T) {
	diffs := ComputeDifferences(scenario(), "2012")
	above, below := ComputeGrowthShares(diffs, DistinctStates(diffs))
	assert.Equal(t, 50, above)
	assert.Equal(t, 0, below)

	above, below = ComputeGrowthShares(nil, 10)
	assert.Equal(t, [2]int{0, 0}, [2]int{above, below})

	none := []DifferenceRow{{State: "A", Difference: 50_000}, {State: "B", Difference: -50_000}}
	above, below = ComputeGrowthShares(none, 2)
	assert.Equal(t, [2]int{0, 0}, [2]int{above, below})

	all := []DifferenceRow{{State: "A", Difference: 60_000}, {State: "B", Difference: 50_001}}
	above, below = ComputeGrowthShares(all, 2)
	assert.Equal(t, [2]int{100, 0}, [2]int{above, below})

	thirds := []DifferenceRow{{State: "A", Difference: -60_000}, {State: "B"}, {State: "C"}}
	above, below = ComputeGrowthShares(thirds, 3)
	assert.Equal(t, [2]int{0, 33}, [2]int{above, below})

	above, below = ComputeGrowthShares(all, 0)
	assert.Equal(t, [2]int{0, 0}, [2]int{above, below})
}

func TestDonut(t *testing.T) {
	d := Donut(37, "Above", Above)
	assert.Equal(t, DonutView{Filled: 37, Remainder: 63, Label: "Above", Text: "37 %", Colors: [2]string{"#27AE60", "#12783D"}}, d)

	d = Donut(5, "Below", Below)
	assert.Equal(t, [2]string{"#E74C3C", "#781F16"}, d.Colors)
	assert.Equal(t, 95, d.Remainder)
}

func rankSlice() []stats.Record {
	return SortByPopulation([]stats.Record{
		rec("Wyoming", "56", "2019", 578_759),
		rec("California", "06", "2019", 39_512_223),
		rec("Vermont", "50", "2019", 623_989),
		rec("Texas", "48", "2019", 28_995_881),
		rec("Florida", "12", "2019", 21_477_737),
		rec("Alaska", "02", "2019", 731_545),
		rec("New York", "36", "2019", 19_453_561),
		rec("District of Columbia", "11", "2019", 705_749),
		rec("Pennsylvania", "42", "2019", 12_801_989),
	})
}

func TestRankTop5(t *testing.T) {
	top := RankTop5(rankSlice())
	require.Len(t, top, 5)
	assert.Equal(t, RankedEntry{State: "California", Percent: 100, Rank: 1}, top[0])
	assert.Equal(t, RankedEntry{State: "Texas", Percent: 73, Rank: 2}, top[1])
	assert.Equal(t, "Pennsylvania", top[4].State)
	assert.Equal(t, 5, top[4].Rank)
}

func TestRankBottom5(t *testing.T) {
	bottom := RankBottom5(rankSlice())
	require.Len(t, bottom, 5)
	assert.Equal(t, RankedEntry{State: "Wyoming", Percent: 1, Rank: 1}, bottom[0])
	assert.Equal(t, "Vermont", bottom[1].State)
	assert.Equal(t, "District of Columbia", bottom[2].State)
	assert.Equal(t, "Alaska", bottom[3].State)
	assert.Equal(t, "Pennsylvania", bottom[4].State)
}

func TestRankNegativeComponent(t *testing.T) {
	// Domestic migration: the largest magnitude is a loss.
	sorted := SortByPopulation([]stats.Record{
		rec("A", "1", selection.Domestic, 200_000),
		rec("B", "2", selection.Domestic, 10_000),
		rec("C", "3", selection.Domestic, -50_000),
		rec("D", "4", selection.Domestic, -400_000),
		rec("E", "5", selection.Domestic, 0),
		rec("F", "6", selection.Domestic, -1_000),
	})

	for _, entries := range [][]RankedEntry{RankTop5(sorted), RankBottom5(sorted)} {
		for _, e := range entries {
			assert.GreaterOrEqual(t, e.Percent, -100)
			assert.LessOrEqual(t, e.Percent, 100)
		}
	}
	top := RankTop5(sorted)
	assert.Equal(t, RankedEntry{State: "A", Percent: 50, Rank: 1}, top[0])

	bottom := RankBottom5(sorted)
	assert.Equal(t, RankedEntry{State: "D", Percent: -100, Rank: 1}, bottom[0])
}

func TestRankShortSlice(t *testing.T) {
	sorted := SortByPopulation(scenario()[2:])
	top := RankTop5(sorted)
	bottom := RankBottom5(sorted)

	assert.Equal(t, []RankedEntry{{State: "A", Percent: 100, Rank: 1}, {State: "B", Percent: 6, Rank: 2}}, top)
	assert.Equal(t, []RankedEntry{{State: "B", Percent: 6, Rank: 1}, {State: "A", Percent: 100, Rank: 2}}, bottom)

	assert.Empty(t, RankTop5(nil))
	assert.NotNil(t, RankTop5(nil))
	assert.Empty(t, RankBottom5(nil))

	zero := []stats.Record{rec("A", "1", "2011", 0)}
	assert.Equal(t, []RankedEntry{{State: "A", Percent: 0, Rank: 1}}, RankTop5(zero))
}

func TestCheckRankable(t *testing.T) {
	assert.NoError(t, CheckRankable(5))
	assert.NoError(t, CheckRankable(52))

	err := CheckRankable(2)
	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 5, insufficient.Need)
	assert.Equal(t, 2, insufficient.Have)
	assert.Contains(t, err.Error(), "need 5, have 2")
}

func TestSortByPopulationDoesNotMutate(t *testing.T) {
	in := scenario()
	out := SortByPopulation(in)
	assert.Equal(t, "A", in[0].State)
	assert.Equal(t, 100_000, in[0].Population)
	assert.Equal(t, 160_000, out[0].Population)
	assert.Equal(t, 10_000, out[3].Population)
}

func TestChoropleth(t *testing.T) {
	slice := []stats.Record{
		{State: "Alabama", StateCode: "AL", StateID: "01", Year: "2012", Population: 4_815_588},
		{State: "Alaska", StateID: "02", Year: "2012", Population: 730_443},
	}
	v := Choropleth(slice, "greens")
	assert.Equal(t, ChoroplethView{
		Locations:  []string{"AL", "02"},
		Names:      []string{"Alabama", "Alaska"},
		Values:     []int{4_815_588, 730_443},
		ColorScale: "greens",
		Domain:     [2]int{730_443, 4_815_588},
	}, v)

	empty := Choropleth(nil, "blues")
	assert.Equal(t, [2]int{0, 0}, empty.Domain)
	assert.Empty(t, empty.Locations)
}

func TestHeatmap(t *testing.T) {
	v := Heatmap(scenario(), "magma", 600, 400)
	assert.Equal(t, 540, v.Width)
	assert.Equal(t, 270, v.Height)
	assert.Len(t, v.Cells, 4)
	assert.Equal(t, HeatmapCell{Year: "2011", State: "A", Population: 100_000}, v.Cells[0])
	assert.Equal(t, []selection.Key{"2011", "2012"}, v.Years)
	assert.Equal(t, []string{"A", "B"}, v.States)
	assert.Equal(t, [2]int{10_000, 160_000}, v.Domain)
	assert.Equal(t, selection.Theme("magma"), v.ColorScale)

	small := Heatmap(nil, "magma", 50, 100)
	assert.Equal(t, 0, small.Width)
	assert.Equal(t, 0, small.Height)
}

func TestLineSeries(t *testing.T) {
	totals := []stats.YearTotal{
		{Year: "2010", Population: 309_321_666},
		{Year: "2011", Population: 311_556_874},
	}
	v := LineSeries(totals, 202, 197, 192)
	assert.Equal(t, []int{2010, 2011}, v.Xs)
	assert.Equal(t, []int{309_321_666, 311_556_874}, v.Ys)
	assert.Equal(t, []string{"309.3 M", "311.6 M"}, v.Labels)
	assert.Equal(t, 1.0, v.Width)
	assert.Equal(t, 1.0, v.Height)

	v = LineSeries(totals, 5, 2, 0)
	assert.Equal(t, float64(selection.DefaultDPI), v.DPI)
	assert.Equal(t, 0.0, v.Width)
	assert.Equal(t, 0.0, v.Height)
}
