package simapro

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/parser"
)

// Import reads a SimaPro export. Workbooks are read through their first
// (or the configured) sheet; .csv and .txt files are read as SimaPro CSV.
// Any error aborts the import; there are no partial results.
func Import(path string, opts ImportOptions) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	var (
		header models.Header
		rows   []parser.Row
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		header, rows, err = parser.OpenCSV(path)
	default:
		header, rows, err = parser.OpenXLSX(path, opts.Sheet)
	}
	if err != nil {
		return nil, NewExtractionError(path, "cells", err)
	}

	return ImportGrid(path, header, rows)
}

// ImportGrid parses an already loaded grid. The tool marker is checked
// before any row is processed.
func ImportGrid(source string, header models.Header, rows []parser.Row) (*models.Dataset, error) {
	if !strings.Contains(header.Tool, ToolMarker) {
		return nil, &FormatError{Path: source, Found: header.Tool}
	}
	return parser.Parse(source, header, rows)
}
