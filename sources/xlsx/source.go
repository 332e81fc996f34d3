package sourcexlsx

import (
	"context"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/agronomiq/soilreport/report"
)

// DefaultIDColumn is the spreadsheet header naming the test identifier.
const DefaultIDColumn = "Test_ID"

// Source reads soil-test records from an XLSX workbook. The first row of the
// sheet is the header; the identifier column is matched by name and every
// other column is treated as a numeric parameter. Cells that do not parse as
// numbers are skipped, as are rows without an identifier.
type Source struct {
	Path     string
	Sheet    string
	IDColumn string
}

// NewSource creates a spreadsheet-backed RecordSource for the given workbook.
func NewSource(path string) *Source {
	return &Source{Path: path}
}

// Fetch opens the workbook and reads all rows. The file is reopened on every
// call so exports observe spreadsheet edits made between calls.
func (s *Source) Fetch(ctx context.Context) ([]report.TestRecord, error) {
	if s == nil || s.Path == "" {
		return nil, report.NewError(report.KindValidation, "xlsx source requires a workbook path", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, report.NewError(report.KindInternal, "xlsx open failed", err)
	}
	defer func() {
		_ = file.Close()
	}()

	sheet := s.Sheet
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, report.NewError(report.KindInternal, "xlsx read failed", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idColumn := s.IDColumn
	if idColumn == "" {
		idColumn = DefaultIDColumn
	}

	header := rows[0]
	idIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), idColumn) {
			idIdx = i
			break
		}
	}
	if idIdx < 0 {
		return nil, report.NewError(report.KindValidation, "xlsx sheet is missing the "+idColumn+" column", nil)
	}

	records := make([]report.TestRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idIdx >= len(row) {
			continue
		}
		testID := strings.TrimSpace(row[idIdx])
		if testID == "" {
			continue
		}

		record := report.TestRecord{TestID: testID, Values: map[string]float64{}}
		for i, cell := range row {
			if i == idIdx || i >= len(header) {
				continue
			}
			name := strings.TrimSpace(header[i])
			if name == "" {
				continue
			}
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}
			record.Values[name] = value
		}
		records = append(records, record)
	}
	return records, nil
}
