package stats

import "github.com/anrid/us-population/pkg/selection"

// Record is one row of the population table: a state's population for a
// year or for a decade component.
type Record struct {
	State      string        `json:"state"`
	StateCode  string        `json:"state_code,omitempty"`
	StateID    string        `json:"state_id"`
	Year       selection.Key `json:"year"`
	Population int           `json:"population"`
}

// YearTotal is the population summed over all states for a year.
type YearTotal struct {
	Year       selection.Key
	Population int
}
