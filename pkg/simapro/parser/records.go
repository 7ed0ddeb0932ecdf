package parser

import (
	"strconv"
	"strings"
	"time"
)

// Text returns the field as text; ok is false when the field is absent.
func (r RawRecord) Text(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	s := strings.TrimSpace(cellText(v))
	return s, s != ""
}

func (r RawRecord) str(field string) *string {
	s, ok := r.Text(field)
	if !ok {
		return nil
	}
	return &s
}

func (r RawRecord) float(field string) *float64 {
	switch v := r[field].(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	}
	s, ok := r.Text(field)
	if !ok {
		return nil
	}
	return parseFloat(s)
}

func parseFloat(s string) *float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &i
}

// DateLayout is SimaPro's short date format (dd/MM/yyyy).
const DateLayout = "02/01/2006"

var dateLayouts = []string{DateLayout, "2006-01-02", "02.01.2006", "1/2/2006"}

// parseDate accepts SimaPro dates, ISO dates, Excel serial numbers and
// time.Time cells.
func parseDate(v any) *time.Time {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		d := time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
		return &d
	case float64:
		return excelSerialDate(x)
	case int64:
		return excelSerialDate(float64(x))
	}
	s := strings.TrimSpace(cellText(v))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if f := parseFloat(s); f != nil {
		return excelSerialDate(*f)
	}
	return nil
}

func nonEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// productRow is one row of "Products" or "Waste treatment".
type productRow struct {
	Name, Unit, Amount *string
	Allocation         *float64
	WasteType          *string
	Category           *string
	Comment            *string
}

func decodeProduct(r RawRecord) productRow {
	return productRow{
		Name:       r.str(FieldName),
		Unit:       r.str(FieldUnit),
		Amount:     r.str(FieldAmount),
		Allocation: r.float(FieldAllocation),
		WasteType:  r.str(FieldWasteType),
		Category:   r.str(FieldCategory),
		Comment:    r.str(FieldComment),
	}
}

// exchangeRow is one row of a technosphere category.
type exchangeRow struct {
	Name, Unit, Amount *string
	Distribution       *string
	SD, Min, Max       *float64
	Comment            *string
}

func decodeExchange(r RawRecord) exchangeRow {
	return exchangeRow{
		Name:         r.str(FieldName),
		Unit:         r.str(FieldUnit),
		Amount:       r.str(FieldAmount),
		Distribution: r.str(FieldDistribution),
		SD:           r.float(FieldSD),
		Min:          r.float(FieldMin),
		Max:          r.float(FieldMax),
		Comment:      r.str(FieldComment),
	}
}

// elementaryRow is one row of a biosphere category.
type elementaryRow struct {
	exchangeRow
	SubCompartment *string
}

func decodeElementary(r RawRecord) elementaryRow {
	return elementaryRow{
		exchangeRow:    decodeExchange(r),
		SubCompartment: r.str(FieldSubCompartment),
	}
}

// inputParameterRow is one row of an input parameters category.
type inputParameterRow struct {
	Name         *string
	Value        *float64
	Distribution *string
	SD, Min, Max *float64
	Hide         *string
	Comment      *string
}

func decodeInputParameter(r RawRecord) inputParameterRow {
	return inputParameterRow{
		Name:         r.str(FieldName),
		Value:        r.float(FieldValue),
		Distribution: r.str(FieldDistribution),
		SD:           r.float(FieldSD),
		Min:          r.float(FieldMin),
		Max:          r.float(FieldMax),
		Hide:         r.str(FieldHide),
		Comment:      r.str(FieldComment),
	}
}

// calculatedParameterRow is one row of a calculated parameters category.
type calculatedParameterRow struct {
	Name       *string
	Expression *string
	Comment    *string
}

func decodeCalculatedParameter(r RawRecord) calculatedParameterRow {
	return calculatedParameterRow{
		Name:       r.str(FieldName),
		Expression: r.str(FieldExpression),
		Comment:    r.str(FieldComment),
	}
}
