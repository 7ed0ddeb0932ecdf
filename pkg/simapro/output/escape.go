// Package output renders life-cycle inventory entities to the SimaPro CSV
// import format and to JSON.
package output

import (
	"strconv"
	"strings"
	"time"
)

const (
	separator = ";"
	lineBreak = "\r\n"
	// fieldLineBreak stands for a line break inside a field.
	fieldLineBreak = "\x7f"
	dateLayout     = "02/01/2006"
)

// Field is one escaped column value. Fields are only built by the
// constructors below, so every value placed in a line has been escaped.
type Field struct {
	s string
}

// Text escapes s for one column: line breaks become 0x7F and values holding
// the separator or a double quote are quoted with doubled quotes.
func Text(s string) Field {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", fieldLineBreak)
	if strings.ContainsAny(s, separator+`"`) {
		s = `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return Field{s: s}
}

// Number formats f with the shortest exact representation.
func Number(f float64) Field {
	return Field{s: strconv.FormatFloat(f, 'g', -1, 64)}
}

// OptionalNumber formats f, or leaves the column empty when f is nil.
func OptionalNumber(f *float64) Field {
	if f == nil {
		return Field{}
	}
	return Number(*f)
}

// Date formats d as dd/MM/yyyy, or leaves the column empty when d is nil.
func Date(d *time.Time) Field {
	if d == nil {
		return Field{}
	}
	return Field{s: d.Format(dateLayout)}
}

// YesNo formats b as SimaPro's Yes/No.
func YesNo(b bool) Field {
	if b {
		return Field{s: "Yes"}
	}
	return Field{s: "No"}
}

func (f Field) String() string { return f.s }

// line joins fields into one output line.
func line(fields ...Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.s
	}
	return strings.Join(parts, separator)
}
