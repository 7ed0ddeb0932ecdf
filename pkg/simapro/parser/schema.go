package parser

import "github.com/ukaji3/simapro-go/pkg/simapro/models"

// Category declares one named sub-table of a block and its ordered fields.
type Category struct {
	Name   string
	Fields []string
	// Kind is the flow variant built from the category's rows.
	Kind models.FlowKind
	// Compartment is the default compartment of biosphere categories.
	Compartment string
	// Optional categories yield no records when their header is absent.
	Optional bool
}

// Field names shared by the category tables.
const (
	FieldName           = "Name"
	FieldUnit           = "Unit"
	FieldAmount         = "Amount"
	FieldAllocation     = "Allocation"
	FieldWasteType      = "Waste type"
	FieldCategory       = "Category"
	FieldComment        = "Comment"
	FieldSubCompartment = "Sub-compartment"
	FieldDistribution   = "Distribution"
	FieldSD             = "SD2 or 2SD"
	FieldMin            = "Min"
	FieldMax            = "Max"
	FieldValue          = "Value"
	FieldHide           = "Hide"
	FieldExpression     = "Expression"
)

var (
	productFields        = []string{FieldName, FieldUnit, FieldAmount, FieldAllocation, FieldWasteType, FieldCategory, FieldComment}
	wasteTreatmentFields = []string{FieldName, FieldUnit, FieldAmount, FieldWasteType, FieldCategory, FieldComment}
	exchangeFields       = []string{FieldName, FieldUnit, FieldAmount, FieldDistribution, FieldSD, FieldMin, FieldMax, FieldComment}
	elementaryFields     = []string{FieldName, FieldSubCompartment, FieldUnit, FieldAmount, FieldDistribution, FieldSD, FieldMin, FieldMax, FieldComment}
	inputParameterFields = []string{FieldName, FieldValue, FieldDistribution, FieldSD, FieldMin, FieldMax, FieldHide, FieldComment}
	calculatedFields     = []string{FieldName, FieldExpression, FieldComment}
)

// Reference flow categories. Exactly one applies to a process.
var (
	ProductsCategory       = Category{Name: "Products", Fields: productFields, Kind: models.KindProduct}
	WasteTreatmentCategory = Category{Name: "Waste treatment", Fields: wasteTreatmentFields, Kind: models.KindProduct}
)

// exchangeCategories follow the reference category in every process. SimaPro
// writes each header even when the section is empty, so all are required.
var exchangeCategories = []Category{
	{Name: "Avoided products", Fields: exchangeFields, Kind: models.KindTechnosphere},
	{Name: "Resources", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Raw"},
	{Name: "Materials/fuels", Fields: exchangeFields, Kind: models.KindTechnosphere},
	{Name: "Electricity/heat", Fields: exchangeFields, Kind: models.KindTechnosphere},
	{Name: "Emissions to air", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Air"},
	{Name: "Emissions to water", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Water"},
	{Name: "Emissions to soil", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Soil"},
	{Name: "Final waste flows", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Waste"},
	{Name: "Non material emissions", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Non mat."},
	{Name: "Social issues", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Social"},
	{Name: "Economic issues", Fields: elementaryFields, Kind: models.KindBiosphere, Compartment: "Economic"},
	{Name: "Waste to treatment", Fields: exchangeFields, Kind: models.KindTechnosphere},
}

// FlowCategories returns the flow categories of a process in file order.
// Waste treatments carry "Waste treatment" instead of "Products".
func FlowCategories(wasteTreatment bool) []Category {
	out := make([]Category, 0, len(exchangeCategories)+1)
	if wasteTreatment {
		out = append(out, WasteTreatmentCategory)
	} else {
		out = append(out, ProductsCategory)
	}
	return append(out, exchangeCategories...)
}

// ProcessParameterCategories returns the parameter categories of a process
// block; none exist when expressions were converted to constants.
func ProcessParameterCategories(flags Flags) []Category {
	if flags.ConvertedToConstants {
		return nil
	}
	return []Category{
		{Name: labelInputParameters, Fields: inputParameterFields},
		{Name: labelCalculatedParameters, Fields: calculatedFields},
	}
}

// CommonParameterCategories returns the database and project parameter
// categories of the common block. Calculated sections are absent when
// expressions were converted to constants.
func CommonParameterCategories(flags Flags) []Category {
	out := []Category{
		{Name: labelDatabaseInputParameters, Fields: inputParameterFields},
	}
	if !flags.ConvertedToConstants {
		out = append(out, Category{Name: "Database Calculated parameters", Fields: calculatedFields})
	}
	out = append(out, Category{Name: "Project Input parameters", Fields: inputParameterFields})
	if !flags.ConvertedToConstants {
		out = append(out, Category{Name: "Project Calculated parameters", Fields: calculatedFields})
	}
	return out
}

// IsCalculated reports whether the category holds calculated parameters.
func (c Category) IsCalculated() bool {
	for _, f := range c.Fields {
		if f == FieldExpression {
			return true
		}
	}
	return false
}

// MetadataCategory returns the single-field category of a process
// metadata label.
func MetadataCategory(f models.MetadataField) Category {
	return Category{Name: f.Label, Fields: []string{f.Label}, Optional: !f.Required}
}
