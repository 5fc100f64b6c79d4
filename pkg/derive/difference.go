package derive

import (
	"sort"

	"github.com/anrid/us-population/pkg/selection"
	"github.com/anrid/us-population/pkg/stats"
)

// DifferenceRow is a state's population for the selected year and its
// change from the year before.
type DifferenceRow struct {
	State      string `json:"state"`
	StateID    string `json:"state_id"`
	Population int    `json:"population"`
	Difference int    `json:"difference"`
}

// ComputeDifferences returns one row per state present in the selected year,
// sorted by difference descending. Ties keep the order of records.
//
// A nil result means "not applicable": key is the first year, a decade
// component or not a year at all, or either the selected or the prior year
// has no rows. A state missing from the prior year is diffed against 0.
func ComputeDifferences(records []stats.Record, key selection.Key) []DifferenceRow {
	if !key.Diffable() {
		return nil
	}
	prior := key.Prior()

	previous := make(map[string]int)
	var rows []DifferenceRow
	for _, r := range records {
		switch r.Year {
		case prior:
			previous[r.StateID] = r.Population
		case key:
			rows = append(rows, DifferenceRow{
				State:      r.State,
				StateID:    r.StateID,
				Population: r.Population,
			})
		}
	}
	if len(rows) == 0 || len(previous) == 0 {
		return nil
	}

	for i := range rows {
		rows[i].Difference = rows[i].Population - previous[rows[i].StateID]
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Difference > rows[j].Difference
	})
	return rows
}

// DistinctStates counts the states in diffs.
func DistinctStates(diffs []DifferenceRow) int {
	seen := make(map[string]bool, len(diffs))
	for _, d := range diffs {
		seen[d.State] = true
	}
	return len(seen)
}
