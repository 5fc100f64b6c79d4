package stats

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	moremath "github.com/aclements/go-moremath/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dataset is the snapshot of a population table written by the create
// command and read back by Load.
type Dataset struct {
	Source     string    `json:"source"`
	Downloaded time.Time `json:"downloaded"`
	Records    []Record  `json:"records"`
}

func NewDataset(source string, records []Record) *Dataset {
	return &Dataset{
		Source:     source,
		Downloaded: time.Now().UTC(),
		Records:    records,
	}
}

func LoadIfExists(dbFile string) (db *Dataset, found bool, err error) {
	data, err := os.ReadFile(dbFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	db = new(Dataset)
	if err := json.Unmarshal(data, db); err != nil {
		return nil, false, &DataLoadError{Source: dbFile, Err: err}
	}

	return db, true, nil
}

func (db *Dataset) Save(dbFile string) error {
	js, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dbFile, js, 0644)
}

func (db *Dataset) Info(w io.Writer) {
	states := make(map[string]bool)
	firstYear := ""
	lastYear := ""
	components := 0

	for _, r := range db.Records {
		states[r.StateID] = true
		if !r.Year.IsYear() {
			components++
			continue
		}
		y := string(r.Year)
		if firstYear == "" || firstYear > y {
			firstYear = y
		}
		if lastYear == "" || lastYear < y {
			lastYear = y
		}
	}

	var latest []float64
	for _, r := range db.Records {
		if string(r.Year) == lastYear {
			latest = append(latest, float64(r.Population))
		}
	}
	mean := 0.0
	if len(latest) > 0 {
		mean = moremath.Mean(latest)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(w, `
	Source       : %s
	Downloaded   : %s
	Years        : %s - %s
	States       : %d
	Records      : %d (%d component rows)
	Mean (%s)  : %.f
	`, db.Source, db.Downloaded.Format(time.RFC3339), firstYear, lastYear,
		len(states), len(db.Records), components, lastYear, mean)
	p.Fprintln(w, "")
}
