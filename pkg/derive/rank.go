package derive

import (
	"fmt"
	"math"
	"sort"

	"github.com/anrid/us-population/pkg/stats"
)

// RankSize is the length of the top and bottom tables.
const RankSize = 5

// RankedEntry is a row of the top or bottom table. Percent is the state's
// population relative to the normalization base, in [-100, 100]. Rank is
// the 1-based position shown in the table, not a slice index: the first
// entry of either table has Rank 1.
type RankedEntry struct {
	State   string `json:"state"`
	Percent int    `json:"percent"`
	Rank    int    `json:"rank"`
}

// InsufficientDataError reports a slice too small for a full derivation.
// Derivations never return it; they degrade to shorter results. Callers use
// it to report the degradation.
type InsufficientDataError struct {
	What string
	Need int
	Have int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need %d, have %d", e.What, e.Need, e.Have)
}

// CheckRankable returns an *InsufficientDataError when n states cannot fill
// the top and bottom tables.
func CheckRankable(n int) error {
	if n < RankSize {
		return &InsufficientDataError{What: "top/bottom ranking", Need: RankSize, Have: n}
	}
	return nil
}

// SortByPopulation returns a copy of records sorted by population
// descending. Ties keep their order.
func SortByPopulation(records []stats.Record) []stats.Record {
	sorted := append([]stats.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Population > sorted[j].Population
	})
	return sorted
}

// RankTop5 ranks the first RankSize entries of a slice sorted by population
// descending. Slices with fewer entries give a shorter list.
func RankTop5(sorted []stats.Record) []RankedEntry {
	base := normalizationBase(sorted)
	n := min(RankSize, len(sorted))

	entries := make([]RankedEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, rankEntry(sorted[i], base, i+1))
	}
	return entries
}

// RankBottom5 ranks the last RankSize entries, smallest population first.
func RankBottom5(sorted []stats.Record) []RankedEntry {
	base := normalizationBase(sorted)
	n := min(RankSize, len(sorted))

	entries := make([]RankedEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, rankEntry(sorted[len(sorted)-1-i], base, i+1))
	}
	return entries
}

func rankEntry(r stats.Record, base float64, rank int) RankedEntry {
	e := RankedEntry{State: r.State, Rank: rank}
	if base != 0 {
		e.Percent = roundHalfEven(100 * float64(r.Population) / base)
	}
	return e
}

// normalizationBase is the larger of the maximum population and the
// magnitude of the minimum. Decade components can be negative.
func normalizationBase(records []stats.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	hi, lo := records[0].Population, records[0].Population
	for _, r := range records[1:] {
		hi = max(hi, r.Population)
		lo = min(lo, r.Population)
	}
	base := float64(hi)
	if math.Abs(float64(lo)) > base {
		base = math.Abs(float64(lo))
	}
	return base
}
