package parser

import (
	"fmt"
	"strings"
)

// CategoryNotFoundError reports a mandatory category header missing from a
// non-empty block.
type CategoryNotFoundError struct {
	Category string
	Path     string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found in %s", e.Category, e.Path)
}

// RowTooLongError reports a data row with more cells than its category
// declares fields.
type RowTooLongError struct {
	Category string
	Fields   []string
	// Row is the 1-based row index within the block.
	Row   int
	Cells int
	Path  string
}

func (e *RowTooLongError) Error() string {
	return fmt.Sprintf("row %d of category %q in %s has %d cells, expected at most %d (%s)",
		e.Row, e.Category, e.Path, e.Cells, len(e.Fields), strings.Join(e.Fields, ", "))
}
