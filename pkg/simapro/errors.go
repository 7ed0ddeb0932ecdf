package simapro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/simapro-go/pkg/simapro/models"
	"github.com/ukaji3/simapro-go/pkg/simapro/output"
	"github.com/ukaji3/simapro-go/pkg/simapro/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a SimaPro export.
var ErrInvalidFormat = errors.New("not a SimaPro export")

// FormatError reports a file whose tool marker cell lacks the SimaPro
// marker. It matches ErrInvalidFormat with errors.Is.
type FormatError struct {
	Path string
	// Found is the content of the marker cell.
	Found string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %v (marker cell holds %q)", e.Path, ErrInvalidFormat, e.Found)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// ExtractionError represents a failure to load a file before parsing.
type ExtractionError struct {
	Path  string
	Stage string // "cells", "write"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s error in %q: %v", e.Stage, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, stage string, err error) *ExtractionError {
	return &ExtractionError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}

type (
	// CategoryNotFoundError reports a missing mandatory category.
	CategoryNotFoundError = parser.CategoryNotFoundError
	// RowTooLongError reports a row with more cells than its category has fields.
	RowTooLongError = parser.RowTooLongError
	// EncodingError reports a character Windows-1252 cannot represent.
	EncodingError = output.EncodingError
)

// ParameterConflictError lists every group of same-named database or
// project parameters whose definitions differ across processes.
type ParameterConflictError struct {
	// Conflicts holds one group per name, each with two or more distinct
	// definitions in first-seen order.
	Conflicts [][]models.Parameter
}

func (e *ParameterConflictError) Error() string {
	names := make([]string, len(e.Conflicts))
	for i, group := range e.Conflicts {
		names[i] = fmt.Sprintf("%q (%d definitions)", group[0].Base().Name, len(group))
	}
	return fmt.Sprintf("conflicting parameter definitions: %s", strings.Join(names, ", "))
}
