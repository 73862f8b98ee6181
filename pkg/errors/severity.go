// Package errors provides severity-aware error types for input ingestion.
package errors

import "fmt"

// Severity indicates error impact level.
type Severity int

const (
	// SeverityError marks a bad row in an otherwise readable input.
	SeverityError Severity = iota + 1
	// SeverityFatal marks an input that cannot be read at all.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// IngestError is a structured error pointing at the offending input location.
type IngestError struct {
	Code     string
	Message  string
	Severity Severity
	Source   string
	Line     int
	Column   string
	Value    string
	Err      error
}

func (e *IngestError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	msg := fmt.Sprintf("[%s] %s: %s (%s)", e.Severity, e.Code, e.Message, loc)
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q value %q", e.Column, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeMalformedCSV    = "MALFORMED_CSV"
	ErrCodeEmptyInput      = "EMPTY_INPUT"
	ErrCodeMissingColumn   = "MISSING_COLUMN"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidRate     = "INVALID_RATE"
	ErrCodeInvalidRateArea = "INVALID_RATE_AREA"
)

// NewMalformedCSVError wraps a reader failure at the given line.
func NewMalformedCSVError(source string, line int, err error) *IngestError {
	return &IngestError{
		Code:     ErrCodeMalformedCSV,
		Message:  "Malformed CSV record",
		Severity: SeverityFatal,
		Source:   source,
		Line:     line,
		Err:      err,
	}
}

// NewEmptyInputError reports an input without a header row.
func NewEmptyInputError(source string) *IngestError {
	return &IngestError{
		Code:     ErrCodeEmptyInput,
		Message:  "Input has no header row",
		Severity: SeverityFatal,
		Source:   source,
	}
}

// NewMissingColumnError reports a required column absent from the header.
func NewMissingColumnError(source, column string) *IngestError {
	return &IngestError{
		Code:     ErrCodeMissingColumn,
		Message:  fmt.Sprintf("Missing required column: %s", column),
		Severity: SeverityFatal,
		Source:   source,
		Line:     1,
	}
}

// NewMissingFieldError reports a row whose required field is blank or absent.
func NewMissingFieldError(source string, line int, column string) *IngestError {
	return &IngestError{
		Code:     ErrCodeMissingField,
		Message:  "Missing required field",
		Severity: SeverityError,
		Source:   source,
		Line:     line,
		Column:   column,
	}
}

// NewInvalidRateError reports a rate that is not a non-negative decimal.
func NewInvalidRateError(source string, line int, value string, err error) *IngestError {
	return &IngestError{
		Code:     ErrCodeInvalidRate,
		Message:  "Rate must be a non-negative decimal",
		Severity: SeverityError,
		Source:   source,
		Line:     line,
		Column:   "rate",
		Value:    value,
		Err:      err,
	}
}

// NewInvalidRateAreaError reports a rate area that is not a positive integer.
func NewInvalidRateAreaError(source string, line int, value string, err error) *IngestError {
	return &IngestError{
		Code:     ErrCodeInvalidRateArea,
		Message:  "Rate area must be a positive integer",
		Severity: SeverityError,
		Source:   source,
		Line:     line,
		Column:   "rate_area",
		Value:    value,
		Err:      err,
	}
}
