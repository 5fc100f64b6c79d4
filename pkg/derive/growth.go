package derive

// States whose annual change passes these thresholds count toward the
// "above" and "below" growth donuts.
const (
	GrowthAbove = 50_000
	GrowthBelow = -50_000
)

// ComputeGrowthShares returns the percentage of states that grew by more than
// GrowthAbove and shrank by more than GrowthBelow. Both are 0 when diffs is
// nil or totalStates is not positive.
func ComputeGrowthShares(diffs []DifferenceRow, totalStates int) (above, below int) {
	if diffs == nil || totalStates <= 0 {
		return 0, 0
	}

	var nAbove, nBelow int
	for _, d := range diffs {
		switch {
		case d.Difference > GrowthAbove:
			nAbove++
		case d.Difference < GrowthBelow:
			nBelow++
		}
	}

	above = roundHalfEven(float64(nAbove) / float64(totalStates) * 100)
	below = roundHalfEven(float64(nBelow) / float64(totalStates) * 100)
	return above, below
}

type Polarity string

const (
	Above Polarity = "above"
	Below Polarity = "below"
)

var (
	aboveColors = [2]string{"#27AE60", "#12783D"}
	belowColors = [2]string{"#E74C3C", "#781F16"}
)

// DonutView is a percentage gauge. Colors holds the ring color and the
// darker shade used for the background track.
type DonutView struct {
	Filled    int       `json:"filled"`
	Remainder int       `json:"remainder"`
	Label     string    `json:"label"`
	Text      string    `json:"text"`
	Colors    [2]string `json:"colors"`
}

func Donut(percent int, label string, polarity Polarity) DonutView {
	colors := belowColors
	if polarity == Above {
		colors = aboveColors
	}
	return DonutView{
		Filled:    percent,
		Remainder: 100 - percent,
		Label:     label,
		Text:      FormatPercent(percent),
		Colors:    colors,
	}
}
