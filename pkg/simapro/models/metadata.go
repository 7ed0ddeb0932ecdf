package models

// Metadata labels with special handling.
const (
	LabelCategoryType = "Category type"
	LabelProcessName  = "Process name"
	LabelDate         = "Date"
	LabelComment      = "Comment"
)

// MetadataField maps one process metadata label to its Process field.
type MetadataField struct {
	Label    string
	Required bool
	// Text returns the string field behind the label; nil for Date.
	Text func(p *Process) *string
}

// ProcessMetadata lists the process metadata labels in file order.
var ProcessMetadata = []MetadataField{
	{Label: LabelCategoryType, Required: true, Text: func(p *Process) *string { return (*string)(&p.CategoryType) }},
	{Label: "Process identifier", Text: func(p *Process) *string { return &p.Identifier }},
	{Label: "Type", Text: func(p *Process) *string { return &p.Type }},
	{Label: LabelProcessName, Required: true, Text: func(p *Process) *string { return &p.Name }},
	{Label: "Status", Text: func(p *Process) *string { return &p.Status }},
	{Label: "Time period", Text: func(p *Process) *string { return &p.TimePeriod }},
	{Label: "Geography", Text: func(p *Process) *string { return &p.Geography }},
	{Label: "Technology", Text: func(p *Process) *string { return &p.Technology }},
	{Label: "Representativeness", Text: func(p *Process) *string { return &p.Representativeness }},
	{Label: "Infrastructure", Text: func(p *Process) *string { return &p.Infrastructure }},
	{Label: LabelDate},
	{Label: "Record", Text: func(p *Process) *string { return &p.Record }},
	{Label: "Generator", Text: func(p *Process) *string { return &p.Author }},
	{Label: "Collection method", Text: func(p *Process) *string { return &p.CollectionMethod }},
	{Label: "Data treatment", Text: func(p *Process) *string { return &p.DataTreatment }},
	{Label: "Verification", Text: func(p *Process) *string { return &p.Verification }},
	{Label: LabelComment, Text: func(p *Process) *string { return &p.Comment }},
	{Label: "Allocation rules", Text: func(p *Process) *string { return &p.AllocationRules }},
	{Label: "System description", Text: func(p *Process) *string { return &p.SystemDescription }},
}
