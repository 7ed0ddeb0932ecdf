// Package parser turns SimaPro export grids into life-cycle inventory
// entities.
package parser

import (
	"strconv"
	"strings"
	"time"
)

// Row is one physical sheet row. Elements are nil (empty cell), string,
// float64, int64, int or time.Time.
type Row []any

// RowKind classifies a row by its populated cells.
type RowKind int

const (
	// RowEmpty has no populated cells; it separates sections.
	RowEmpty RowKind = iota
	// RowHeader has a single populated cell, such as a category label.
	RowHeader
	// RowData has two or more populated cells.
	RowData
)

// Kind reports whether the row is empty, a single-cell header or data.
func (r Row) Kind() RowKind {
	switch r.populated() {
	case 0:
		return RowEmpty
	case 1:
		return RowHeader
	}
	return RowData
}

func (r Row) populated() int {
	n := 0
	for _, c := range r {
		if c != nil {
			n++
		}
	}
	return n
}

// trimmed returns r without trailing empty cells.
func (r Row) trimmed() Row {
	end := len(r)
	for end > 0 && r[end-1] == nil {
		end--
	}
	return r[:end]
}

// first returns the trimmed text of the first cell, or "" when it is empty.
func (r Row) first() string {
	if len(r) == 0 || r[0] == nil {
		return ""
	}
	return strings.TrimSpace(cellText(r[0]))
}

// sole returns the text of a row holding exactly one populated cell in its
// first column.
func (r Row) sole() (string, bool) {
	if len(r) == 0 || r[0] == nil || r.populated() != 1 {
		return "", false
	}
	return strings.TrimSpace(cellText(r[0])), true
}

// sectionHeader returns the label of rows[i] when it opens a section: a
// single-cell row at the start of rows or right after an empty row. A
// metadata value sits directly below its label and never qualifies, even
// when its text equals a category name.
func sectionHeader(rows []Row, i int) (string, bool) {
	if i > 0 && rows[i-1].populated() != 0 {
		return "", false
	}
	return rows[i].sole()
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Block is a contiguous run of rows belonging to one process or to the
// common parameters section.
type Block struct {
	// Source is the file the rows were read from.
	Source string
	Rows   []Row
}

// cellText renders a cell value as text.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case time.Time:
		return x.Format(DateLayout)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	}
	return ""
}

// rowFromStrings converts reader output to a Row: empty strings become nil
// and trailing empty cells are dropped.
func rowFromStrings(cells []string) Row {
	row := make(Row, len(cells))
	for i, c := range cells {
		if c != "" {
			row[i] = c
		}
	}
	return row.trimmed()
}
