// Package simapro imports SimaPro process exports and writes SimaPro CSV
// import files.
package simapro

import (
	"time"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/output"
)

// ToolMarker must appear in the tool cell of every supported file.
const ToolMarker = "SimaPro"

// ImportOptions configures import behavior.
type ImportOptions struct {
	// Sheet names the workbook sheet to read. Empty selects the first sheet.
	Sheet string
}

// ExportOptions configures export behavior.
type ExportOptions struct {
	// IncludeExtensions embeds fields SimaPro has no column for into
	// comments so a later import recovers them.
	IncludeExtensions bool
	// Overrides are pre-resolved database and project parameters. Their
	// names are excluded from conflict detection and they are written as is.
	Overrides []models.Parameter
	// ToolVersion is the preamble tool marker.
	ToolVersion string
	// Project is the preamble project name.
	Project string
	// Timestamp is the preamble export date and time.
	// If zero, the time of rendering is used.
	Timestamp time.Time
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		ToolVersion: output.DefaultToolVersion,
	}
}

func (o ExportOptions) renderOptions() output.Options {
	return output.Options{
		IncludeExtensions: o.IncludeExtensions,
		ToolVersion:       o.ToolVersion,
		Project:           o.Project,
		Timestamp:         o.Timestamp,
	}
}
