package parser

// Normalize cleans a raw grid: trailing blank rows are dropped, rows whose
// first cell is empty are merged into the row above (SimaPro wraps long
// comments onto such rows), and the remaining first-cell-empty rows are
// removed. Zero-length rows survive as section separators.
func Normalize(rows []Row) []Row {
	end := len(rows)
	for end > 0 && rows[end-1].populated() == 0 {
		end--
	}

	out := make([]Row, end)
	for i := 0; i < end; i++ {
		out[i] = rows[i].clone()
	}

	for i := len(out) - 1; i > 0; i-- {
		row := out[i]
		if row.populated() == 0 || row[0] != nil {
			continue
		}
		out[i-1] = mergeContinuation(out[i-1], row)
		out = append(out[:i], out[i+1:]...)
	}

	kept := out[:0]
	for _, row := range out {
		if len(row) > 0 && row[0] == nil {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// mergeContinuation appends every populated cell of cont to the matching
// column of upper, joined by a newline.
func mergeContinuation(upper, cont Row) Row {
	for j, v := range cont {
		if v == nil {
			continue
		}
		if j >= len(upper) {
			grown := make(Row, j+1)
			copy(grown, upper)
			upper = grown
		}
		if upper[j] == nil {
			upper[j] = cellText(v)
			continue
		}
		above := cellText(upper[j])
		if above == "" {
			upper[j] = cellText(v)
			continue
		}
		upper[j] = above + "\n" + cellText(v)
	}
	return upper
}
