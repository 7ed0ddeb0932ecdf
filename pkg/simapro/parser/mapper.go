package parser

import (
	"strings"

	"github.com/ukaji3/simapro-go/pkg/simapro/annotation"
	"github.com/ukaji3/simapro-go/pkg/simapro/models"
)

// Sentinels SimaPro writes for an unset product waste type.
var undefinedWasteTypes = map[string]bool{
	"not defined":     true,
	"All waste types": true,
}

const (
	defaultProductCategory = "Materials"
	noneValue              = "None"
)

// NewFlow builds the flow variant declared by category from one record.
func NewFlow(category Category, r RawRecord) models.Flow {
	switch category.Kind {
	case models.KindProduct:
		return newProduct(category, decodeProduct(r))
	case models.KindTechnosphere:
		row := decodeExchange(r)
		f := &models.TechnosphereFlow{}
		f.FlowBase, f.Exchange = exchangeBase(category, row)
		return f
	case models.KindBiosphere:
		row := decodeElementary(r)
		f := &models.BiosphereFlow{
			Compartment:    category.Compartment,
			SubCompartment: nonEmpty(row.SubCompartment),
		}
		f.FlowBase, f.Exchange = exchangeBase(category, row.exchangeRow)
		return f
	}
	return nil
}

func newProduct(category Category, row productRow) *models.ProductFlow {
	comment, notes := annotation.Parse(nonEmpty(row.Comment), annotation.ReviewKeys...)
	f := &models.ProductFlow{
		FlowBase: models.FlowBase{
			Category: category.Name,
			Name:     nonEmpty(row.Name),
			Unit:     nonEmpty(row.Unit),
			Amount:   nonEmpty(row.Amount),
			Comment:  comment,
		},
		Allocation:      row.Allocation,
		ProductCategory: nonEmpty(row.Category),
	}
	applyReview(&f.FlowBase, notes)
	if row.WasteType != nil && !undefinedWasteTypes[*row.WasteType] {
		wt := *row.WasteType
		f.WasteType = &wt
	}
	if f.ProductCategory == "" {
		f.ProductCategory = defaultProductCategory
	}
	return f
}

func exchangeBase(category Category, row exchangeRow) (models.FlowBase, models.Exchange) {
	comment, notes := annotation.Parse(nonEmpty(row.Comment))
	base := models.FlowBase{
		Category: category.Name,
		Name:     nonEmpty(row.Name),
		Unit:     nonEmpty(row.Unit),
		Amount:   nonEmpty(row.Amount),
		Comment:  comment,
	}
	applyReview(&base, notes)

	ex := models.Exchange{
		Uncertainty:         uncertainty(row.Distribution, row.SD, row.Min, row.Max),
		ModificationComment: notes[annotation.ModificationComment],
		RelevanceCode:       notes[annotation.RelevanceCode],
		RelevanceComment:    notes[annotation.RelevanceComment],
		ConfidenceCode:      notes[annotation.ConfidenceCode],
		ConfidenceComment:   notes[annotation.ConfidenceComment],
	}
	if v, ok := notes[annotation.ModificationCode]; ok {
		ex.ModificationCode = parseInt(v)
	}
	return base, ex
}

func applyReview(base *models.FlowBase, notes map[annotation.Key]string) {
	if v, ok := notes[annotation.ReviewState]; ok {
		base.ReviewState = parseInt(v)
	}
	base.ReviewerComment = notes[annotation.ReviewerComment]
}

// uncertainty returns nil for a missing, undefined or unknown distribution.
func uncertainty(dist *string, sd, min, max *float64) *models.Uncertainty {
	if dist == nil {
		return nil
	}
	d, err := models.ParseDistribution(*dist)
	if err != nil || d == models.DistUndefined {
		return nil
	}
	return &models.Uncertainty{
		Distribution: d,
		SD:           orZero(sd),
		Min:          orZero(min),
		Max:          orZero(max),
	}
}

// NewParameter builds the parameter variant of category from one record.
// The level comes from the category name.
func NewParameter(category Category, r RawRecord) models.Parameter {
	level := models.LevelOf(category.Name)
	if category.IsCalculated() {
		row := decodeCalculatedParameter(r)
		return &models.CalculatedParameter{
			ParameterBase: models.ParameterBase{
				Name:    nonEmpty(row.Name),
				Level:   level,
				Comment: nonEmpty(row.Comment),
			},
			Expression: nonEmpty(row.Expression),
		}
	}

	row := decodeInputParameter(r)
	if row.Distribution != nil && *row.Distribution == string(models.DistUndefined) {
		row.Distribution = nil
	}
	return &models.InputParameter{
		ParameterBase: models.ParameterBase{
			Name:    nonEmpty(row.Name),
			Level:   level,
			Comment: nonEmpty(row.Comment),
		},
		Value:       row.Value,
		Uncertainty: uncertainty(row.Distribution, row.SD, row.Min, row.Max),
		Hidden:      strings.EqualFold(nonEmpty(row.Hide), "Yes"),
	}
}

// NewProcess builds a process from its merged metadata map. Values equal
// to "None" count as absent, as do annotations carrying it.
func NewProcess(meta map[string]string) *models.Process {
	for k, v := range meta {
		if v == noneValue {
			delete(meta, k)
		}
	}

	p := &models.Process{}
	for _, f := range models.ProcessMetadata {
		v, ok := meta[f.Label]
		if !ok {
			continue
		}
		if f.Label == models.LabelDate {
			p.Date = parseDate(v)
			continue
		}
		*f.Text(p) = v
	}

	comment, notes := annotation.Parse(p.Comment)
	p.Comment = comment
	for k, v := range notes {
		if v == noneValue || v == "" {
			continue
		}
		if p.Annotations == nil {
			p.Annotations = make(map[string]string)
		}
		p.Annotations[string(k)] = v
	}
	return p
}
