package simapro

import (
	"os"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/output"
)

// Render reconciles the shared parameters of processes and renders them as
// a Windows-1252 SimaPro CSV import document.
func Render(processes []*models.Process, opts ExportOptions) ([]byte, error) {
	sets, err := Reconcile(processes, opts.Overrides)
	if err != nil {
		return nil, err
	}
	text, err := output.Render(processes, sets, opts.renderOptions())
	if err != nil {
		return nil, err
	}
	return output.Encode(text)
}

// Export renders processes and writes the document to path. Nothing is
// written when rendering fails.
func Export(path string, processes []*models.Process, opts ExportOptions) error {
	data, err := Render(processes, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewExtractionError(path, "write", err)
	}
	return nil
}
