package sheets

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is one loaded curation spreadsheet.
type Sheet struct {
	Path    string
	Symbol  string
	Header  []string
	Records []Record
}

// Load reads the first worksheet of the xlsx file at path into a Sheet.
// The first row is the header; remaining rows become Records keyed by
// the header. Short rows leave trailing columns absent.
func Load(path, symbol string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheets: open %q: %w", path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, fmt.Errorf("sheets: %q has no worksheets", path)
	}

	rows, err := f.GetRows(names[0])
	if err != nil {
		return nil, fmt.Errorf("sheets: read %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheets: %q is empty", path)
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(cells) {
				rec[col] = cells[i]
			}
		}
		records = append(records, rec)
	}

	return &Sheet{
		Path:    path,
		Symbol:  symbol,
		Header:  header,
		Records: records,
	}, nil
}

// Rows returns the typed curation rows of the sheet, in file order.
func (s *Sheet) Rows() []CurationRow {
	rows := make([]CurationRow, len(s.Records))
	for i, rec := range s.Records {
		rows[i] = RowFromRecord(i, rec)
	}
	return rows
}
