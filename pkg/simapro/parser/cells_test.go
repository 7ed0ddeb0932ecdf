package parser

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a single-sheet workbook starting at A1.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("Invalid coordinates: %v", err)
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return tmpFile
}

// emptyExchanges returns a header and a blank row for every exchange
// category not named in skip, in file order.
func emptyExchanges(skip ...string) []Row {
	var rows []Row
	for _, c := range exchangeCategories {
		if slices.Contains(skip, c.Name) {
			continue
		}
		rows = append(rows, Row{c.Name}, Row{})
	}
	return rows
}

func exportRows() [][]any {
	rows := [][]any{
		{"SimaPro 9.5.0.0", nil, nil, "05/03/2024", nil, "10:15"},
		{nil, "Demo project"},
		{},
		{"Process"},
		{},
		{"Category type"},
		{"material"},
		{},
		{"Process name"},
		{"Steel sheet"},
		{},
		{"Date"},
		{45356},
		{},
		{"Comment"},
		{"first line"},
		{"second line"},
		{},
		{"Products"},
		{"Steel sheet", "kg", 1, 100, "not defined", "Metals", "main"},
		{},
		{"Materials/fuels"},
		{"Iron ore", "kg", "1.2*yield", "Lognormal", 1.1, 0, 0, "mined", "3f2a9c1e-0b7d-4e5f-a1c2-9d8e7f6a5b4c"},
		{nil, nil, nil, nil, nil, nil, nil, "deep"},
		{},
		{"Emissions to air"},
		{"Carbon dioxide", nil, "kg", 0.5},
		{},
	}
	for _, row := range emptyExchanges("Materials/fuels", "Emissions to air") {
		rows = append(rows, row)
	}
	return append(rows, [][]any{
		{"Input parameters"},
		{"yield", 0.9, "Undefined", 0, 0, 0, "No"},
		{},
		{"Calculated parameters"},
		{"loss", "1-yield"},
		{},
		{"End"},
		{},
		{"Database Input parameters"},
		{"grid_share", 0.3, "Uniform", 0, 0.2, 0.4, "No", "share"},
		{},
		{"End"},
		{},
		{"Database Calculated parameters"},
		{},
		{"End"},
		{},
		{"Project Input parameters"},
		{},
		{"End"},
		{},
		{"Project Calculated parameters"},
		{"total", "grid_share*2"},
		{},
		{"End"},
	}...)
}

func TestReadXLSX(t *testing.T) {
	tmpFile := writeWorkbook(t, exportRows())

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	header, rows, err := ReadXLSX(f, "Sheet1")
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	if header.Tool != "SimaPro 9.5.0.0" || header.Project != "Demo project" {
		t.Errorf("unexpected header: %+v", header)
	}
	if len(rows) != len(exportRows()) {
		t.Errorf("Expected %d rows, got %d", len(exportRows()), len(rows))
	}
	if len(rows[2]) != 0 {
		t.Errorf("blank row should be zero-length, got %v", rows[2])
	}
	if rows[12][0] != "45356" {
		t.Errorf("Expected raw serial date, got %v (type: %T)", rows[12][0], rows[12][0])
	}
	if len(rows[23]) != 8 || rows[23][0] != nil || rows[23][7] != "deep" {
		t.Errorf("Expected continuation row, got %v", rows[23])
	}
}

func TestOpenXLSXParse(t *testing.T) {
	tmpFile := writeWorkbook(t, exportRows())

	header, rows, err := OpenXLSX(tmpFile, "")
	if err != nil {
		t.Fatalf("OpenXLSX failed: %v", err)
	}
	ds, err := Parse(tmpFile, header, rows)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if ds.ConvertedToConstants || ds.ExportedFromEditionWindow {
		t.Errorf("unexpected flags: %+v", ds)
	}
	if len(ds.Processes) != 1 {
		t.Fatalf("Expected 1 process, got %d", len(ds.Processes))
	}
	p := ds.Processes[0]
	if p.Name != "Steel sheet" || p.Comment != "first line\nsecond line" {
		t.Errorf("unexpected metadata: name %q, comment %q", p.Name, p.Comment)
	}
	if p.Date == nil || p.Date.Format(DateLayout) != "05/03/2024" {
		t.Errorf("Date = %v", p.Date)
	}

	if len(p.Flows) != 3 {
		t.Fatalf("Expected 3 flows, got %d", len(p.Flows))
	}
	product := p.Flows[0].(*models.ProductFlow)
	if product.Amount != "1" || product.WasteType != nil || product.ProductCategory != "Metals" {
		t.Errorf("unexpected product: %+v", product)
	}
	ore := p.Flows[1].(*models.TechnosphereFlow)
	if ore.Amount != "1.2*yield" || ore.Comment != "mined\ndeep" || ore.Uncertainty == nil {
		t.Errorf("unexpected technosphere flow: %+v", ore)
	}
	co2 := p.Flows[2].(*models.BiosphereFlow)
	if co2.Compartment != "Air" || co2.Amount != "0.5" {
		t.Errorf("unexpected biosphere flow: %+v", co2)
	}

	levels := []models.Level{models.LevelProcess, models.LevelProcess, models.LevelDatabase, models.LevelProject}
	if len(p.Parameters) != len(levels) {
		t.Fatalf("Expected %d parameters, got %d", len(levels), len(p.Parameters))
	}
	for i, level := range levels {
		if got := p.Parameters[i].Base().Level; got != level {
			t.Errorf("parameter %d: level %v, expected %v", i, got, level)
		}
	}
	share := p.Parameters[2].(*models.InputParameter)
	if share.Uncertainty == nil || share.Uncertainty.Distribution != models.DistUniform || share.Uncertainty.Max != 0.4 {
		t.Errorf("unexpected database parameter: %+v", share)
	}
	if len(ds.CommonParameters) != 2 {
		t.Errorf("Expected 2 common parameters, got %d", len(ds.CommonParameters))
	}
}

func TestParseMissingProducts(t *testing.T) {
	rows := []Row{
		{"Process"},
		{},
		{"Category type"},
		{"material"},
		{},
		{"Process name"},
		{"p"},
		{},
		{"Waste to treatment"},
		{},
	}

	_, err := Parse("test.xlsx", models.Header{Tool: "SimaPro"}, rows)
	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) || notFound.Category != "Products" {
		t.Errorf("Expected missing Products error, got %v", err)
	}
}

func TestParseWasteTreatment(t *testing.T) {
	// The capitalized spelling puts a "Waste treatment" value row ahead of
	// the section header of the same name.
	for _, categoryType := range []string{"waste treatment", "Waste treatment"} {
		rows := []Row{
			{"Process"},
			{},
			{"Category type"},
			{categoryType},
			{},
			{"Process name"},
			{"Landfill"},
			{},
			{"Waste treatment"},
			{"Landfill", "kg", "1", "All waste types", "Landfill"},
			{},
		}
		rows = append(rows, emptyExchanges()...)

		ds, err := Parse("test.xlsx", models.Header{Tool: "SimaPro"}, rows)
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", categoryType, err)
		}
		if !ds.ConvertedToConstants || !ds.ExportedFromEditionWindow {
			t.Errorf("%s: unexpected flags: %+v", categoryType, ds)
		}
		p := ds.Processes[0]
		if len(p.Flows) != 1 || p.Flows[0].Base().Category != "Waste treatment" {
			t.Fatalf("%s: expected the waste treatment reference flow, got %v", categoryType, p.Flows)
		}
		if wt := p.Flows[0].(*models.ProductFlow).WasteType; wt != nil {
			t.Errorf("%s: All waste types should read as undefined, got %q", categoryType, *wt)
		}
	}
}

func TestParseMissingExchangeCategory(t *testing.T) {
	rows := []Row{
		{"Process"},
		{},
		{"Category type"},
		{"material"},
		{},
		{"Process name"},
		{"p"},
		{},
		{"Products"},
		{"p", "kg", "1", "100", "not defined", "Metals"},
		{},
	}
	rows = append(rows, emptyExchanges("Emissions to air")...)

	_, err := Parse("test.csv", models.Header{Tool: "SimaPro"}, rows)
	var notFound *CategoryNotFoundError
	if !errors.As(err, &notFound) || notFound.Category != "Emissions to air" || notFound.Path != "test.csv" {
		t.Errorf("Expected missing Emissions to air error, got %v", err)
	}
}
