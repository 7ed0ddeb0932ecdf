package parser

import "testing"

func processRows(name string, withParameters bool) []Row {
	rows := []Row{
		{"Process"},
		{},
		{"Process name"},
		{name},
		{},
		{"Products"},
		{name, "kg", "1"},
		{},
		{"Waste to treatment"},
		{},
	}
	if withParameters {
		rows = append(rows,
			Row{"Input parameters"},
			Row{"a", "1", "Undefined", "0", "0", "0", "No"},
			Row{},
			Row{"Calculated parameters"},
			Row{"b", "a*2"},
			Row{},
		)
	}
	return append(rows, Row{"End"}, Row{})
}

func commonRows() []Row {
	return []Row{
		{"Database Input parameters"},
		{"db", "2", "Undefined", "0", "0", "0", "No"},
		{},
		{"End"},
		{},
		{"Project Input parameters"},
		{},
		{"End"},
	}
}

func TestDetectFlags(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Row
		expected Flags
	}{
		{
			name:     "full export",
			rows:     append(processRows("p", true), commonRows()...),
			expected: Flags{},
		},
		{
			name:     "converted to constants",
			rows:     append(processRows("p", false), commonRows()...),
			expected: Flags{ConvertedToConstants: true},
		},
		{
			name:     "edition window",
			rows:     processRows("p", true),
			expected: Flags{ExportedFromEditionWindow: true},
		},
	}

	for _, tt := range tests {
		if got := DetectFlags(tt.rows); got != tt.expected {
			t.Errorf("%s: DetectFlags() = %+v, expected %+v", tt.name, got, tt.expected)
		}
	}
}

func TestSegment(t *testing.T) {
	var rows []Row
	rows = append(rows, Row{"{SimaPro 9.6.0.1}"}, Row{})
	rows = append(rows, processRows("first", true)...)
	rows = append(rows, processRows("second", true)...)
	rows = append(rows, commonRows()...)

	blocks, common := Segment("test.csv", rows, DetectFlags(rows))
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 process blocks, got %d", len(blocks))
	}
	for i, name := range []string{"first", "second"} {
		b := blocks[i]
		if b.Source != "test.csv" {
			t.Errorf("block %d: Source = %q", i, b.Source)
		}
		if b.Rows[0].first() != "Process" {
			t.Errorf("block %d should start at the Process row, got %v", i, b.Rows[0])
		}
		if b.Rows[3].first() != name {
			t.Errorf("block %d: process name row = %v, expected %q", i, b.Rows[3], name)
		}
		last := b.Rows[len(b.Rows)-1]
		if len(last) != 0 {
			t.Errorf("block %d should end at the blank row after Calculated parameters, got %v", i, last)
		}
	}

	if len(common.Rows) != len(commonRows()) {
		t.Errorf("Expected %d common rows, got %d", len(commonRows()), len(common.Rows))
	}
	if common.Rows[0].first() != "Database Input parameters" {
		t.Errorf("common block should start at its header, got %v", common.Rows[0])
	}
}

func TestSegmentConvertedToConstants(t *testing.T) {
	var rows []Row
	rows = append(rows, processRows("first", false)...)
	rows = append(rows, processRows("second", false)...)

	flags := DetectFlags(rows)
	blocks, common := Segment("test.csv", rows, flags)
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 process blocks, got %d", len(blocks))
	}
	if len(common.Rows) != 0 {
		t.Errorf("edition window export should have an empty common block, got %d rows", len(common.Rows))
	}
	for _, category := range CommonParameterCategories(flags) {
		records, err := Extract(common, category)
		if err != nil || len(records) != 0 {
			t.Errorf("%s on the empty common block: got %v, %v", category.Name, records, err)
		}
	}
}

func TestSegmentFlushesFinalBlock(t *testing.T) {
	rows := Normalize(processRows("only", true)[:15])

	blocks, _ := Segment("test.csv", rows, Flags{ExportedFromEditionWindow: true})
	if len(blocks) != 1 {
		t.Fatalf("Expected the open block to be flushed, got %d blocks", len(blocks))
	}
}

func TestSegmentIgnoresValuesSpelledLikeLabels(t *testing.T) {
	for _, comment := range []string{"Waste to treatment", "Input parameters", "Database Input parameters"} {
		rows := append([]Row{{"Process"}, {}, {"Comment"}, {comment}, {}}, processRows("p", false)[2:]...)

		flags := DetectFlags(rows)
		if flags != (Flags{ConvertedToConstants: true, ExportedFromEditionWindow: true}) {
			t.Errorf("comment %q: DetectFlags() = %+v", comment, flags)
		}
		blocks, common := Segment("test.csv", rows, flags)
		if len(blocks) != 1 {
			t.Fatalf("comment %q: expected 1 process block, got %d", comment, len(blocks))
		}
		// The block closes at the blank row after the real "Waste to treatment".
		if got := len(blocks[0].Rows); got != len(rows)-2 {
			t.Errorf("comment %q: block has %d rows, expected %d", comment, got, len(rows)-2)
		}
		if len(common.Rows) != 0 {
			t.Errorf("comment %q: common block should be empty, got %d rows", comment, len(common.Rows))
		}
	}
}
