package models

import "fmt"

// Distribution is an uncertainty distribution type.
type Distribution string

const (
	DistUndefined Distribution = "Undefined"
	DistLognormal Distribution = "Lognormal"
	DistNormal    Distribution = "Normal"
	DistTriangle  Distribution = "Triangle"
	DistUniform   Distribution = "Uniform"
)

// ParseDistribution maps a SimaPro distribution label to a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case DistUndefined, DistLognormal, DistNormal, DistTriangle, DistUniform:
		return Distribution(s), nil
	}
	return "", fmt.Errorf("unknown distribution %q", s)
}

// Uncertainty describes the spread of an amount or parameter value.
// SD is the squared geometric standard deviation for lognormal and twice
// the standard deviation for normal distributions, as SimaPro stores it.
type Uncertainty struct {
	Distribution Distribution `json:"distribution"`
	SD           float64      `json:"sd"`
	Min          float64      `json:"min"`
	Max          float64      `json:"max"`
}

// EqualUncertainty reports whether a and b describe the same uncertainty.
// Two nil values are equal.
func EqualUncertainty(a, b *Uncertainty) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
