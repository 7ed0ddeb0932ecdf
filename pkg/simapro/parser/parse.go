package parser

import (
	"strings"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
)

// Parse turns a raw grid into a dataset. The grid is normalized, split into
// process blocks and the common parameters block, and every category is
// mapped to entities. Database and project parameters are attached to every
// process. The first error aborts the whole parse.
func Parse(source string, header models.Header, rows []Row) (*models.Dataset, error) {
	rows = Normalize(rows)
	flags := DetectFlags(rows)
	blocks, common := Segment(source, rows, flags)

	ds := &models.Dataset{
		Source:                    source,
		Header:                    header,
		ConvertedToConstants:      flags.ConvertedToConstants,
		ExportedFromEditionWindow: flags.ExportedFromEditionWindow,
	}

	for _, category := range CommonParameterCategories(flags) {
		records, err := Extract(common, category)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			ds.CommonParameters = append(ds.CommonParameters, NewParameter(category, r))
		}
	}

	for _, block := range blocks {
		p, err := parseProcess(block, flags)
		if err != nil {
			return nil, err
		}
		for _, prm := range ds.CommonParameters {
			p.AddParameter(prm)
		}
		ds.Processes = append(ds.Processes, p)
	}
	return ds, nil
}

func parseProcess(block Block, flags Flags) (*models.Process, error) {
	meta := make(map[string]string, len(models.ProcessMetadata))
	for _, f := range models.ProcessMetadata {
		category := MetadataCategory(f)
		records, err := Extract(block, category)
		if err != nil {
			return nil, err
		}
		// A value wrapped over several rows arrives as several records.
		var lines []string
		for _, r := range records {
			if s, ok := r.Text(f.Label); ok {
				lines = append(lines, s)
			}
		}
		if len(lines) > 0 {
			meta[f.Label] = strings.Join(lines, "\n")
		}
	}
	p := NewProcess(meta)

	for _, category := range FlowCategories(p.CategoryType.IsWasteTreatment()) {
		records, err := Extract(block, category)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			p.AddFlow(NewFlow(category, r))
		}
	}

	for _, category := range ProcessParameterCategories(flags) {
		records, err := Extract(block, category)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			p.AddParameter(NewParameter(category, r))
		}
	}
	return p, nil
}
