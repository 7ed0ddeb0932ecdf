// Package models defines the life-cycle inventory entities read from and
// written to SimaPro files.
package models

import (
	"strings"
	"time"
)

// CategoryType is the SimaPro process category type (material, energy,
// waste treatment, ...).
type CategoryType string

const (
	// CategoryMaterial is the default category type.
	CategoryMaterial CategoryType = "material"
	// CategoryWasteTreatment marks processes whose reference flow is a
	// treated waste instead of a product.
	CategoryWasteTreatment CategoryType = "waste treatment"
)

// IsWasteTreatment reports whether the category type is a waste treatment.
func (c CategoryType) IsWasteTreatment() bool {
	return strings.EqualFold(strings.TrimSpace(string(c)), string(CategoryWasteTreatment))
}

// Process is one SimaPro process with its exchanges and parameters.
type Process struct {
	// Name is the process name (required).
	Name string `json:"name"`
	// CategoryType is the SimaPro category type.
	CategoryType CategoryType `json:"category_type"`
	// Identifier is the SimaPro process identifier.
	Identifier string `json:"identifier,omitempty"`
	// Type is "Unit process" or "System".
	Type string `json:"type,omitempty"`
	// Status is the documentation status.
	Status string `json:"status,omitempty"`
	// TimePeriod is the temporal representativeness.
	TimePeriod string `json:"time_period,omitempty"`
	// Geography is the geographical representativeness.
	Geography string `json:"geography,omitempty"`
	// Technology is the technological representativeness.
	Technology string `json:"technology,omitempty"`
	// Representativeness describes the data representativeness.
	Representativeness string `json:"representativeness,omitempty"`
	// Infrastructure is the "Yes"/"No" infrastructure marker.
	Infrastructure string `json:"infrastructure,omitempty"`
	// Date is the process date (day precision).
	Date *time.Time `json:"date,omitempty"`
	// Record is the data entry person.
	Record string `json:"record,omitempty"`
	// Author is the data generator.
	Author string `json:"author,omitempty"`
	// CollectionMethod describes the data collection.
	CollectionMethod string `json:"collection_method,omitempty"`
	// DataTreatment describes the data treatment.
	DataTreatment string `json:"data_treatment,omitempty"`
	// Verification describes the data verification.
	Verification string `json:"verification,omitempty"`
	// AllocationRules describes the allocation rules.
	AllocationRules string `json:"allocation_rules,omitempty"`
	// SystemDescription names the system description.
	SystemDescription string `json:"system_description,omitempty"`
	// Comment is the free-text comment with annotations removed.
	Comment string `json:"comment,omitempty"`
	// Annotations holds the annotations parsed out of the comment.
	Annotations map[string]string `json:"annotations,omitempty"`
	// Flows are the exchanges of the process in file order.
	Flows []Flow `json:"-"`
	// Parameters are the process, database and project parameters.
	Parameters []Parameter `json:"-"`
}

// AddFlow appends a flow to the process.
func (p *Process) AddFlow(f Flow) {
	p.Flows = append(p.Flows, f)
}

// AddParameter appends a parameter to the process.
func (p *Process) AddParameter(prm Parameter) {
	p.Parameters = append(p.Parameters, prm)
}

// FlowsIn returns the flows filed under the given category, in order.
func (p *Process) FlowsIn(category string) []Flow {
	var out []Flow
	for _, f := range p.Flows {
		if f.Base().Category == category {
			out = append(out, f)
		}
	}
	return out
}

// ParametersAt returns the parameters defined at the given level, in order.
func (p *Process) ParametersAt(level Level) []Parameter {
	var out []Parameter
	for _, prm := range p.Parameters {
		if prm.Base().Level == level {
			out = append(out, prm)
		}
	}
	return out
}

// Header holds the workbook metadata read by fixed cell address.
type Header struct {
	// Tool is the tool name and version marker (A1).
	Tool string `json:"tool"`
	// Project is the project name (B2).
	Project string `json:"project,omitempty"`
	// Date is the export date (D1).
	Date string `json:"date,omitempty"`
	// Time is the export time (F1).
	Time string `json:"time,omitempty"`
}

// Dataset is the result of importing one file.
type Dataset struct {
	// Source is the path the dataset was read from.
	Source string `json:"source"`
	// Header is the fixed-address header metadata.
	Header Header `json:"header"`
	// ConvertedToConstants is set when the file carries no parameter
	// categories because expressions were converted to constants.
	ConvertedToConstants bool `json:"converted_to_constants"`
	// ExportedFromEditionWindow is set when the file carries no database
	// or project parameter sections.
	ExportedFromEditionWindow bool `json:"exported_from_edition_window"`
	// Processes are the imported processes in file order.
	Processes []*Process `json:"-"`
	// CommonParameters are the database and project parameters.
	CommonParameters []Parameter `json:"-"`
}
