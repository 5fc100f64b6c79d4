package stats

import "fmt"

// DataLoadError reports a missing or malformed population source.
// Row is 1-based and counts the header; it is 0 when the error is not tied
// to a row.
type DataLoadError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("load %s: row %d, column %q: %v", e.Source, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("load %s: column %q: %v", e.Source, e.Column, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}
