package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/simapro-go/pkg/simapro/annotation"
	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/parser"
)

// DefaultToolVersion is written to the preamble when none is configured.
const DefaultToolVersion = "SimaPro 9.6.0.1"

// Options configures rendering.
type Options struct {
	// IncludeExtensions writes fields SimaPro has no column for (review
	// state, modification, relevance and confidence codes, process
	// annotations) into the comment as annotations.
	IncludeExtensions bool
	// ToolVersion is the preamble tool marker.
	ToolVersion string
	// Project is the preamble project name.
	Project string
	// Timestamp is the preamble export date and time.
	Timestamp time.Time
}

// Section is rendered text for one slot of the document. It is only built
// from escaped fields.
type Section struct {
	lines []string
}

func (s *Section) row(fields ...Field) {
	s.lines = append(s.lines, line(fields...))
}

func (s *Section) header(name string) {
	s.row(Text(name))
}

func (s *Section) blank() {
	s.lines = append(s.lines, "")
}

func (s Section) text() string {
	return strings.Join(s.lines, lineBreak)
}

// Slots are the named parts of an import document.
type Slots struct {
	Processes                    Section
	DatabaseInputParameters      Section
	DatabaseCalculatedParameters Section
	ProjectInputParameters       Section
	ProjectCalculatedParameters  Section
}

// Render writes processes and the reconciled database and project
// parameters as a SimaPro CSV import document.
func Render(processes []*models.Process, sets *models.ParameterSets, opts Options) (string, error) {
	if sets == nil {
		sets = &models.ParameterSets{}
	}
	var slots Slots
	for _, p := range processes {
		if err := renderProcess(&slots.Processes, p, opts.IncludeExtensions); err != nil {
			return "", err
		}
	}
	for _, p := range sets.DatabaseInput {
		slots.DatabaseInputParameters.row(inputParameterFields(p)...)
	}
	for _, p := range sets.DatabaseCalculated {
		slots.DatabaseCalculatedParameters.row(calculatedParameterFields(p)...)
	}
	for _, p := range sets.ProjectInput {
		slots.ProjectInputParameters.row(inputParameterFields(p)...)
	}
	for _, p := range sets.ProjectCalculated {
		slots.ProjectCalculatedParameters.row(calculatedParameterFields(p)...)
	}
	return assemble(slots, opts), nil
}

func assemble(slots Slots, opts Options) string {
	tool := opts.ToolVersion
	if tool == "" {
		tool = DefaultToolVersion
	}
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	var doc Section
	for _, entry := range []string{
		tool,
		"processes",
		"Date: " + ts.Format(dateLayout),
		"Time: " + ts.Format("15:04:05"),
		"Project: " + opts.Project,
		"CSV Format version: 9.0.0",
		"CSV separator: Semicolon",
		"Decimal separator: .",
		"Date separator: /",
		"Short date format: dd/MM/yyyy",
		"Convert expressions to constants: No",
	} {
		doc.row(Text("{" + entry + "}"))
	}
	doc.blank()

	var b strings.Builder
	b.WriteString(doc.text())
	b.WriteString(lineBreak)
	if len(slots.Processes.lines) > 0 {
		b.WriteString(slots.Processes.text())
		b.WriteString(lineBreak)
	}

	categories := parser.CommonParameterCategories(parser.Flags{})
	for i, s := range []Section{
		slots.DatabaseInputParameters,
		slots.DatabaseCalculatedParameters,
		slots.ProjectInputParameters,
		slots.ProjectCalculatedParameters,
	} {
		var sec Section
		sec.header(categories[i].Name)
		sec.lines = append(sec.lines, s.lines...)
		sec.blank()
		sec.header("End")
		sec.blank()
		b.WriteString(sec.text())
		b.WriteString(lineBreak)
	}
	return b.String()
}

func renderProcess(s *Section, p *models.Process, ext bool) error {
	categories := parser.FlowCategories(p.CategoryType.IsWasteTreatment())
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Name] = true
	}
	for _, f := range p.Flows {
		if !known[f.Base().Category] {
			return fmt.Errorf("process %q: flow %q has category %q, which a %q process cannot hold",
				p.Name, f.Base().Name, f.Base().Category, p.CategoryType)
		}
	}

	s.header("Process")
	s.blank()
	for _, m := range models.ProcessMetadata {
		s.header(m.Label)
		switch m.Label {
		case models.LabelDate:
			s.row(Date(p.Date))
		case models.LabelComment:
			s.row(Text(processComment(p, ext)))
		default:
			s.row(Text(*m.Text(p)))
		}
		s.blank()
	}

	for _, c := range categories {
		s.header(c.Name)
		for _, f := range p.FlowsIn(c.Name) {
			s.row(pick(c.Fields, flowValues(f, ext))...)
		}
		s.blank()
	}

	for _, c := range parser.ProcessParameterCategories(parser.Flags{}) {
		s.header(c.Name)
		for _, prm := range p.ParametersAt(models.LevelProcess) {
			switch v := prm.(type) {
			case *models.InputParameter:
				if !c.IsCalculated() {
					s.row(inputParameterFields(v)...)
				}
			case *models.CalculatedParameter:
				if c.IsCalculated() {
					s.row(calculatedParameterFields(v)...)
				}
			}
		}
		s.blank()
	}
	s.header("End")
	s.blank()
	return nil
}

// pick orders values by the category's field list.
func pick(fields []string, values map[string]Field) []Field {
	out := make([]Field, len(fields))
	for i, name := range fields {
		out[i] = values[name]
	}
	return out
}

func flowValues(f models.Flow, ext bool) map[string]Field {
	base := f.Base()
	values := map[string]Field{
		parser.FieldName:   Text(base.Name),
		parser.FieldUnit:   Text(base.Unit),
		parser.FieldAmount: Text(base.Amount),
	}
	notes := map[annotation.Key]string{}
	if base.ReviewState != nil {
		notes[annotation.ReviewState] = strconv.Itoa(*base.ReviewState)
	}
	notes[annotation.ReviewerComment] = base.ReviewerComment

	switch v := f.(type) {
	case *models.ProductFlow:
		wasteType := "not defined"
		if v.WasteType != nil {
			wasteType = *v.WasteType
		}
		values[parser.FieldAllocation] = OptionalNumber(v.Allocation)
		values[parser.FieldWasteType] = Text(wasteType)
		values[parser.FieldCategory] = Text(v.ProductCategory)
	case *models.TechnosphereFlow:
		exchangeValues(values, notes, &v.Exchange)
	case *models.BiosphereFlow:
		exchangeValues(values, notes, &v.Exchange)
		values[parser.FieldSubCompartment] = Text(v.SubCompartment)
	}

	comment := base.Comment
	if ext {
		comment = annotation.Format(comment, notes)
	}
	values[parser.FieldComment] = Text(comment)
	return values
}

func exchangeValues(values map[string]Field, notes map[annotation.Key]string, ex *models.Exchange) {
	for k, v := range uncertaintyFields(ex.Uncertainty) {
		values[k] = v
	}
	if ex.ModificationCode != nil {
		notes[annotation.ModificationCode] = strconv.Itoa(*ex.ModificationCode)
	}
	notes[annotation.ModificationComment] = ex.ModificationComment
	notes[annotation.RelevanceCode] = ex.RelevanceCode
	notes[annotation.RelevanceComment] = ex.RelevanceComment
	notes[annotation.ConfidenceCode] = ex.ConfidenceCode
	notes[annotation.ConfidenceComment] = ex.ConfidenceComment
}

func uncertaintyFields(u *models.Uncertainty) map[string]Field {
	if u == nil {
		return map[string]Field{
			parser.FieldDistribution: Text(string(models.DistUndefined)),
			parser.FieldSD:           Number(0),
			parser.FieldMin:          Number(0),
			parser.FieldMax:          Number(0),
		}
	}
	return map[string]Field{
		parser.FieldDistribution: Text(string(u.Distribution)),
		parser.FieldSD:           Number(u.SD),
		parser.FieldMin:          Number(u.Min),
		parser.FieldMax:          Number(u.Max),
	}
}

func processComment(p *models.Process, ext bool) string {
	if !ext || len(p.Annotations) == 0 {
		return p.Comment
	}
	notes := make(map[annotation.Key]string, len(p.Annotations))
	for k, v := range p.Annotations {
		notes[annotation.Key(k)] = v
	}
	return annotation.Format(p.Comment, notes)
}

func inputParameterFields(p *models.InputParameter) []Field {
	u := uncertaintyFields(p.Uncertainty)
	return []Field{
		Text(p.Name),
		OptionalNumber(p.Value),
		u[parser.FieldDistribution],
		u[parser.FieldSD],
		u[parser.FieldMin],
		u[parser.FieldMax],
		YesNo(p.Hidden),
		Text(p.Comment),
	}
}

func calculatedParameterFields(p *models.CalculatedParameter) []Field {
	return []Field{Text(p.Name), Text(p.Expression), Text(p.Comment)}
}
