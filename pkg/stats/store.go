package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/anrid/us-population/pkg/selection"
)

var (
	errMissingColumn = errors.New("missing required column")
	errShortRow      = errors.New("row is shorter than the header")
	errEmptyValue    = errors.New("empty value")
	errUnknownYear   = errors.New("not a year or decade component")
	errDuplicate     = errors.New("duplicate state and year")
	errNoHeader      = errors.New("no header row")
)

// Store is the loaded population table. It is read-only once built and may
// be shared by any number of readers.
type Store struct {
	source  string
	records []Record
	byYear  map[selection.Key][]Record
}

const (
	colState      = "state"
	colStateCode  = "state_code"
	colStateID    = "state_id"
	colYear       = "year"
	colPopulation = "population"
)

var columnAliases = map[string]string{
	"state":       colState,
	"states":      colState,
	"state_code":  colStateCode,
	"states_code": colStateCode,
	"state_id":    colStateID,
	"id":          colStateID,
	"year":        colYear,
	"population":  colPopulation,
}

var requiredColumns = []string{colState, colStateID, colYear, colPopulation}

// Load reads the population table from a path or http(s) URL. The format is
// chosen by extension: .csv, .xlsx, .xls or a .json dataset written by
// Dataset.Save. Any failure is a *DataLoadError.
func Load(source string) (*Store, error) {
	f, err := OpenFile(source)
	if err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}

	if f.Ext() == ".json" {
		var d Dataset
		if err := json.Unmarshal(f.Content, &d); err != nil {
			return nil, &DataLoadError{Source: source, Err: err}
		}
		return NewStore(source, d.Records)
	}

	var rows [][]string
	err = ExtractDataFromFile(f, func(r []string) {
		rows = append(rows, r)
	})
	if err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}

	records, rowNums, err := parseRows(source, rows)
	if err != nil {
		return nil, err
	}
	return newStore(source, records, rowNums)
}

// parseRows returns the records of a table and, for each, its 1-based row
// in the table.
func parseRows(source string, rows [][]string) ([]Record, []int, error) {
	if len(rows) == 0 {
		return nil, nil, &DataLoadError{Source: source, Err: errNoHeader}
	}

	index := make(map[string]int)
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if col, ok := columnAliases[name]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, nil, &DataLoadError{Source: source, Column: col, Err: errMissingColumn}
		}
	}

	var (
		records []Record
		rowNums []int
	)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rowNum := i + 2

		cell := func(col string) (string, error) {
			j, ok := index[col]
			if !ok {
				return "", nil
			}
			if j >= len(row) {
				return "", &DataLoadError{Source: source, Row: rowNum, Column: col, Err: errShortRow}
			}
			return strings.TrimSpace(row[j]), nil
		}

		var r Record
		var err error
		if r.State, err = cell(colState); err != nil {
			return nil, nil, err
		}
		if r.StateID, err = cell(colStateID); err != nil {
			return nil, nil, err
		}
		if r.StateCode, err = cell(colStateCode); err != nil {
			return nil, nil, err
		}
		year, err := cell(colYear)
		if err != nil {
			return nil, nil, err
		}
		r.Year = selection.Key(year)

		pop, err := cell(colPopulation)
		if err != nil {
			return nil, nil, err
		}
		if r.Population, err = parsePopulation(pop); err != nil {
			return nil, nil, &DataLoadError{Source: source, Row: rowNum, Column: colPopulation, Err: err}
		}

		records = append(records, r)
		rowNums = append(rowNums, rowNum)
	}
	return records, rowNums, nil
}

// parsePopulation accepts plain integers, thousands separators and
// spreadsheet floats with an integral value ("4779736.0").
func parsePopulation(v string) (int, error) {
	v = strings.ReplaceAll(v, ",", "")
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("population %q is not an integer", v)
	}
	return int(f), nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// NewStore validates records and indexes them by year. The records slice is
// copied. Validation errors carry no row: the records did not come from a
// table.
func NewStore(source string, records []Record) (*Store, error) {
	return newStore(source, records, nil)
}

// newStore is NewStore with the table row of each record, used to report
// where a bad record came from.
func newStore(source string, records []Record, rowNums []int) (*Store, error) {
	s := &Store{
		source:  source,
		records: append([]Record(nil), records...),
		byYear:  make(map[selection.Key][]Record),
	}

	type stateYear struct {
		id   string
		year selection.Key
	}
	seen := make(map[stateYear]bool)

	for i, r := range s.records {
		var rowNum int
		if i < len(rowNums) {
			rowNum = rowNums[i]
		}
		switch {
		case r.State == "":
			return nil, &DataLoadError{Source: source, Row: rowNum, Column: colState, Err: errEmptyValue}
		case r.StateID == "":
			return nil, &DataLoadError{Source: source, Row: rowNum, Column: colStateID, Err: errEmptyValue}
		case !r.Year.IsYear() && !r.Year.IsComponent():
			return nil, &DataLoadError{Source: source, Row: rowNum, Column: colYear, Err: fmt.Errorf("%w: %q", errUnknownYear, r.Year)}
		}

		k := stateYear{r.StateID, r.Year}
		if seen[k] {
			return nil, &DataLoadError{Source: source, Row: rowNum, Err: fmt.Errorf("%w: %s %s", errDuplicate, r.StateID, r.Year)}
		}
		seen[k] = true

		s.byYear[r.Year] = append(s.byYear[r.Year], r)
	}

	return s, nil
}

func (s *Store) Source() string {
	return s.source
}

// Records returns every record in load order.
func (s *Store) Records() []Record {
	return append([]Record(nil), s.records...)
}

// FilterByYear returns the records whose year column equals key. An empty
// result is not an error.
func (s *Store) FilterByYear(key selection.Key) []Record {
	return append([]Record(nil), s.byYear[key]...)
}

// YearRecords returns the records of 4-digit years, leaving out the decade
// components.
func (s *Store) YearRecords() []Record {
	var out []Record
	for _, r := range s.records {
		if r.Year.IsYear() {
			out = append(out, r)
		}
	}
	return out
}

// YearlyTotals sums the population over all states for each year, in
// ascending year order.
func (s *Store) YearlyTotals() []YearTotal {
	var totals []YearTotal
	for k, rs := range s.byYear {
		if !k.IsYear() {
			continue
		}
		t := YearTotal{Year: k}
		for _, r := range rs {
			t.Population += r.Population
		}
		totals = append(totals, t)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Year < totals[j].Year
	})
	return totals
}

// States returns the distinct state names in first-seen order.
func (s *Store) States() []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range s.records {
		if !seen[r.State] {
			seen[r.State] = true
			names = append(names, r.State)
		}
	}
	return names
}
