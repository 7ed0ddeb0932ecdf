package output

import (
	"encoding/json"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
)

type flowView struct {
	Kind string      `json:"kind"`
	Flow models.Flow `json:"flow"`
}

type parameterView struct {
	Variant   string           `json:"variant"`
	Level     string           `json:"level"`
	Parameter models.Parameter `json:"parameter"`
}

type processView struct {
	*models.Process
	Flows      []flowView      `json:"flows"`
	Parameters []parameterView `json:"parameters"`
}

type datasetView struct {
	*models.Dataset
	Processes        []processView   `json:"processes"`
	CommonParameters []parameterView `json:"common_parameters,omitempty"`
}

// ToJSON serializes an imported dataset, tagging every flow and parameter
// with its variant.
func ToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	view := datasetView{Dataset: ds, CommonParameters: parameterViews(ds.CommonParameters)}
	for _, p := range ds.Processes {
		pv := processView{Process: p, Parameters: parameterViews(p.Parameters)}
		for _, f := range p.Flows {
			pv.Flows = append(pv.Flows, flowView{Kind: f.Kind().String(), Flow: f})
		}
		view.Processes = append(view.Processes, pv)
	}
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}

func parameterViews(params []models.Parameter) []parameterView {
	out := make([]parameterView, 0, len(params))
	for _, prm := range params {
		variant := "input"
		if _, ok := prm.(*models.CalculatedParameter); ok {
			variant = "calculated"
		}
		out = append(out, parameterView{
			Variant:   variant,
			Level:     prm.Base().Level.String(),
			Parameter: prm,
		})
	}
	return out
}
