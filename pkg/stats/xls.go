package stats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// ExtractDataFromFile calls handler for every row of the first sheet
// (or of the CSV file), header included.
func ExtractDataFromFile(f *File, handler func(r []string)) error {
	switch f.Ext() {
	case ".xlsx":
		return ExtractDataFromXLSX(f, handler)
	case ".xls":
		return ExtractDataFromXLS(f, handler)
	case ".csv", "":
		return ExtractDataFromCSV(f, handler)
	}
	return fmt.Errorf("unsupported table format %q", f.Ext())
}

func ExtractDataFromCSV(f *File, handler func(r []string)) error {
	Log.Printf("Loading CSV data: %s", f.Source)

	r := csv.NewReader(bytes.NewReader(f.Content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read CSV: %w", err)
		}
		handler(row)
	}
}

func ExtractDataFromXLS(f *File, handler func(r []string)) error {
	Log.Printf("Loading XLS data: %s", f.Source)

	wb, err := xls.OpenReader(bytes.NewReader(f.Content), "utf-8")
	if err != nil {
		return fmt.Errorf("read XLS: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return errors.New("read XLS: workbook has no sheets")
	}

	Log.Printf("Sheet name : %s", sheet.Name)
	Log.Printf("Sheet rows : %d", sheet.MaxRow)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		handler(cols)
	}
	return nil
}

func ExtractDataFromXLSX(f *File, handler func(r []string)) error {
	Log.Printf("Loading XLSX data: %s", f.Source)

	wb, err := xlsx.OpenReader(bytes.NewReader(f.Content))
	if err != nil {
		return fmt.Errorf("read XLSX: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("read XLSX: workbook has no sheets")
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("read XLSX sheet %q: %w", defaultSheet, err)
	}

	Log.Printf("Sheet name : %s", defaultSheet)
	Log.Printf("Sheet rows : %d", len(rows))

	for _, r := range rows {
		handler(r)
	}
	return nil
}
