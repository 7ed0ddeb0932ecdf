package simapro

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/parser"
	"github.com/xuri/excelize/v2"
)

func TestImportFileNotFound(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.xlsx"), ImportOptions{})
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestImportRejectsForeignCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(path, []byte("{openLCA 2.0}\r\n\r\nProcess\r\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := Import(path, ImportOptions{})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Expected ErrInvalidFormat, got %v", err)
	}
	var formatErr *FormatError
	if !errors.As(err, &formatErr) || formatErr.Found != "openLCA 2.0" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestImportGridChecksMarkerFirst(t *testing.T) {
	rows := []parser.Row{{"Process"}, {}, {"garbage", "row", "without", "structure"}}
	_, err := ImportGrid("grid", models.Header{Tool: "Excel"}, rows)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestImportWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Process"
	if _, err := f.NewSheet(sheetName); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	cells := []struct {
		cell  string
		value any
	}{
		{"A1", "SimaPro 9.5.0.0"},
		{"B2", "Demo project"},
		{"A4", "Process"},
		{"A6", "Category type"},
		{"A7", "material"},
		{"A9", "Process name"},
		{"A10", "Steel sheet"},
		{"A12", "Products"},
		{"A13", "Steel sheet"},
		{"B13", "kg"},
		{"C13", 1},
		{"F13", "Metals"},
	}
	for _, c := range cells {
		f.SetCellValue(sheetName, c.cell, c.value)
	}
	// Every exchange header follows with a blank row; "Waste to treatment"
	// comes last.
	for i, c := range parser.FlowCategories(false)[1:] {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", 15+2*i), c.Name)
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	if _, err := Import(path, ImportOptions{}); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("default sheet is empty and should fail the marker check, got %v", err)
	}

	ds, err := Import(path, ImportOptions{Sheet: sheetName})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if ds.Header.Project != "Demo project" || !ds.ConvertedToConstants || !ds.ExportedFromEditionWindow {
		t.Errorf("unexpected dataset: %+v", ds)
	}
	if len(ds.Processes) != 1 || ds.Processes[0].Name != "Steel sheet" {
		t.Fatalf("unexpected processes: %v", ds.Processes)
	}
	if n := len(ds.Processes[0].Flows); n != 1 {
		t.Errorf("Expected 1 flow, got %d", n)
	}
}

func TestExportEncodingError(t *testing.T) {
	p := &models.Process{Name: "CO₂ capture", CategoryType: models.CategoryMaterial}
	path := filepath.Join(t.TempDir(), "out.csv")

	err := Export(path, []*models.Process{p}, DefaultExportOptions())
	var encErr *EncodingError
	if !errors.As(err, &encErr) || encErr.Rune != '₂' {
		t.Fatalf("Expected EncodingError for '₂', got %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("nothing should be written on failure")
	}
}
