package parser

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	rows := []Row{
		{"Process"},
		{},
		{"Comment"},
		{"first line"},
		{nil, nil},
		{nil, "tail"},
		{nil},
		{"Products"},
		{"steel", "kg", "1", nil, nil, nil, "a"},
		{nil, nil, nil, nil, nil, nil, "b"},
		{nil, nil, nil, nil, nil, nil, "c"},
		{},
		{},
	}

	got := Normalize(rows)
	want := []Row{
		{"Process"},
		{},
		{"Comment"},
		{"first line", "tail"},
		{"Products"},
		{"steel", "kg", "1", nil, nil, nil, "a\nb\nc"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() =\n%v\nwant\n%v", got, want)
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	rows := []Row{
		{"Comment", nil},
		{nil, "more"},
	}
	Normalize(rows)
	if rows[0][1] != nil {
		t.Errorf("input row modified: %v", rows[0])
	}
}

func TestMergeContinuation(t *testing.T) {
	tests := []struct {
		upper    Row
		cont     Row
		expected Row
	}{
		{Row{"a"}, Row{nil, "b"}, Row{"a", "b"}},
		{Row{"a", "x"}, Row{nil, "y"}, Row{"a", "x\ny"}},
		{Row{"a", ""}, Row{nil, "y"}, Row{"a", "y"}},
		{Row{"a", 1.5}, Row{nil, 2.0}, Row{"a", "1.5\n2"}},
	}

	for _, tt := range tests {
		result := mergeContinuation(tt.upper.clone(), tt.cont)
		if !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("mergeContinuation(%v, %v) = %v, expected %v",
				tt.upper, tt.cont, result, tt.expected)
		}
	}
}

func TestRowKind(t *testing.T) {
	tests := []struct {
		row      Row
		expected RowKind
	}{
		{Row{}, RowEmpty},
		{Row{nil, nil}, RowEmpty},
		{Row{"Products"}, RowHeader},
		{Row{nil, "x"}, RowHeader},
		{Row{"steel", "kg"}, RowData},
	}

	for _, tt := range tests {
		if result := tt.row.Kind(); result != tt.expected {
			t.Errorf("%v.Kind() = %v, expected %v", tt.row, result, tt.expected)
		}
	}
}
