package parser

import (
	"fmt"
	"time"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/xuri/excelize/v2"
)

// Fixed header cell addresses of a SimaPro workbook export.
const (
	cellTool    = "A1"
	cellProject = "B2"
	cellDate    = "D1"
	cellTime    = "F1"
)

// OpenXLSX reads the header and grid of one sheet of a workbook. An empty
// sheet name selects the first sheet.
func OpenXLSX(path, sheetName string) (models.Header, []Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Header{}, nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return models.Header{}, nil, fmt.Errorf("no sheets found in %s", path)
		}
	}
	return ReadXLSX(f, sheetName)
}

// ReadXLSX reads the fixed-address header and the raw cell grid of a sheet.
// Cells hold their unformatted values; empty cells are nil.
func ReadXLSX(f *excelize.File, sheetName string) (models.Header, []Row, error) {
	header, err := readHeader(f, sheetName)
	if err != nil {
		return models.Header{}, nil, err
	}

	cells, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Header{}, nil, err
	}

	rows := make([]Row, len(cells))
	for i, row := range cells {
		rows[i] = rowFromStrings(row)
	}
	return header, rows, nil
}

func readHeader(f *excelize.File, sheetName string) (models.Header, error) {
	var h models.Header
	for _, c := range []struct {
		cell string
		dst  *string
	}{
		{cellTool, &h.Tool},
		{cellProject, &h.Project},
		{cellDate, &h.Date},
		{cellTime, &h.Time},
	} {
		v, err := f.GetCellValue(sheetName, c.cell)
		if err != nil {
			return h, err
		}
		*c.dst = v
	}
	return h, nil
}

// excelSerialDate converts an Excel serial day number to a date.
func excelSerialDate(serial float64) *time.Time {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
