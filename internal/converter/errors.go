package converter

import (
	"errors"
	"fmt"
	"strings"

	"converter-service/internal/models"
)

// ErrEmptyFile is returned when a file parses but yields no data rows. A
// header-only file reports the same way as a truly empty one.
var ErrEmptyFile = errors.New("the file contains no data rows")

// ParseError wraps failures to decode the uploaded blob as either CSV or a
// spreadsheet workbook. It is not recoverable without a new upload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse file: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingHeaderError reports required columns absent from the detected
// source schema. Missing lists the exact header names so the caller can fix
// their file in one pass.
type MissingHeaderError struct {
	Schema  models.Schema
	Missing []string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ValidationErrors aggregates per-row mapping failures across the whole
// batch. If any row fails, the batch fails and no output file is produced.
type ValidationErrors struct {
	Errors []models.RowError
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("%d row(s) failed validation", len(e.Errors))
}

// TemplateNotFoundError means the target requires a template preamble but no
// override was supplied and no default exists on the server. This is a
// recoverable condition: the caller can retry with their own template file.
type TemplateNotFoundError struct {
	Target models.Schema
	Path   string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no template found for target %q (looked for %s); upload a template file and retry", e.Target, e.Path)
}
