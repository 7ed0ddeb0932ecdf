package models

import "strings"

// Level is the scope a parameter is defined at.
type Level int

const (
	LevelProcess Level = iota
	LevelDatabase
	LevelProject
)

func (l Level) String() string {
	switch l {
	case LevelDatabase:
		return "database"
	case LevelProject:
		return "project"
	}
	return "process"
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LevelOf derives the parameter level from the category a parameter was
// filed under.
func LevelOf(category string) Level {
	switch {
	case strings.Contains(category, "Project"):
		return LevelProject
	case strings.Contains(category, "Database"):
		return LevelDatabase
	}
	return LevelProcess
}

// Parameter is a named value used by process amounts. The concrete type is
// *InputParameter or *CalculatedParameter.
type Parameter interface {
	Base() *ParameterBase
	// Equal reports whether other is the same definition: same variant,
	// name, level and every value-bearing field.
	Equal(other Parameter) bool
	parameter()
}

// ParameterBase holds the attributes shared by both parameter variants.
type ParameterBase struct {
	Name    string `json:"name"`
	Level   Level  `json:"level"`
	Comment string `json:"comment,omitempty"`
}

// InputParameter is a free parameter with a value and optional uncertainty.
// Value is nil when the source cell was empty or not a number.
type InputParameter struct {
	ParameterBase
	Value       *float64     `json:"value,omitempty"`
	Uncertainty *Uncertainty `json:"uncertainty,omitempty"`
	Hidden      bool         `json:"hidden,omitempty"`
}

// CalculatedParameter is defined by an expression over other parameters.
type CalculatedParameter struct {
	ParameterBase
	Expression string `json:"expression"`
}

func (p *InputParameter) Base() *ParameterBase      { return &p.ParameterBase }
func (p *CalculatedParameter) Base() *ParameterBase { return &p.ParameterBase }

func (p *InputParameter) Equal(other Parameter) bool {
	o, ok := other.(*InputParameter)
	if !ok {
		return false
	}
	return p.ParameterBase == o.ParameterBase &&
		equalValue(p.Value, o.Value) &&
		p.Hidden == o.Hidden &&
		EqualUncertainty(p.Uncertainty, o.Uncertainty)
}

func equalValue(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (p *CalculatedParameter) Equal(other Parameter) bool {
	o, ok := other.(*CalculatedParameter)
	if !ok {
		return false
	}
	return p.ParameterBase == o.ParameterBase && p.Expression == o.Expression
}

func (*InputParameter) parameter()      {}
func (*CalculatedParameter) parameter() {}

// ParameterSets partitions database and project parameters by level and
// variant for export.
type ParameterSets struct {
	DatabaseInput      []*InputParameter
	DatabaseCalculated []*CalculatedParameter
	ProjectInput       []*InputParameter
	ProjectCalculated  []*CalculatedParameter
}

// Add files prm under its level and variant. Process-level parameters are
// ignored.
func (s *ParameterSets) Add(prm Parameter) {
	switch p := prm.(type) {
	case *InputParameter:
		switch p.Level {
		case LevelDatabase:
			s.DatabaseInput = append(s.DatabaseInput, p)
		case LevelProject:
			s.ProjectInput = append(s.ProjectInput, p)
		}
	case *CalculatedParameter:
		switch p.Level {
		case LevelDatabase:
			s.DatabaseCalculated = append(s.DatabaseCalculated, p)
		case LevelProject:
			s.ProjectCalculated = append(s.ProjectCalculated, p)
		}
	}
}
