package parser

import (
	"regexp"
	"strings"
)

// uuidTail matches the opaque identifier SimaPro appends as an extra
// trailing column on some exports.
var uuidTail = regexp.MustCompile(`^\w{8}-\w{4}-\w{4}-\w{4}-\w{12}`)

// RawRecord maps field names to cell values for one row of a category.
// Absent fields are either missing or nil; callers treat both alike.
type RawRecord map[string]any

// Extract returns the records of category within block.
//
// The table starts after the section header carrying the category name
// and ends at an empty row followed by a row with at most one populated
// cell (the next header, or nothing). An empty block yields no records.
func Extract(block Block, category Category) ([]RawRecord, error) {
	if len(block.Rows) == 0 {
		return nil, nil
	}

	start := -1
	for i := range block.Rows {
		if label, ok := sectionHeader(block.Rows, i); ok && label == category.Name {
			start = i + 1
			break
		}
	}
	if start < 0 {
		if category.Optional {
			return nil, nil
		}
		return nil, &CategoryNotFoundError{Category: category.Name, Path: block.Source}
	}

	var records []RawRecord
	for i := start; i < len(block.Rows); i++ {
		row := block.Rows[i].trimmed()
		var next Row
		if i+1 < len(block.Rows) {
			next = block.Rows[i+1]
		}
		if row.populated() == 0 {
			if next.populated() <= 1 {
				break
			}
			continue
		}

		row = stripUUIDTail(row, len(category.Fields))
		if len(row) > len(category.Fields) {
			return nil, &RowTooLongError{
				Category: category.Name,
				Fields:   category.Fields,
				Row:      i + 1,
				Cells:    len(row),
				Path:     block.Source,
			}
		}
		records = append(records, mapFields(row, category.Fields))
	}
	return records, nil
}

func stripUUIDTail(row Row, fields int) Row {
	if len(row) != fields+1 {
		return row
	}
	s, ok := row[fields].(string)
	if !ok {
		return row
	}
	if uuidTail.MatchString(strings.TrimLeft(s, "\n")) {
		return row[:fields]
	}
	return row
}

func mapFields(row Row, fields []string) RawRecord {
	rec := make(RawRecord, len(fields))
	for i, field := range fields {
		if i >= len(row) {
			rec[field] = nil
			continue
		}
		switch v := row[i].(type) {
		case nil:
		case string:
			if s := strings.TrimSpace(v); s != "" {
				rec[field] = s
			}
		default:
			rec[field] = v
		}
	}
	return rec
}
