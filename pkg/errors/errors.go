// Package errors provides custom error types for the ostiposter system.
// The validation and merge rules report violations through typed errors so
// callers can check them with errors.Is and errors.As instead of matching
// on message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join is an alias for the standard library errors.Join.
var Join = errors.Join

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the ostiposter system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchema indicates a required column is absent from the compliance table
	ErrSchema = errors.New("schema error")

	// ErrMissingField indicates a required cell is empty
	ErrMissingField = errors.New("missing field")

	// ErrInvalidEnum indicates a value outside a closed set of codes
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrJoinIntegrity indicates a join key did not resolve to exactly one record
	ErrJoinIntegrity = errors.New("join integrity violation")

	// ErrNotConfigured indicates a component was used without required configuration
	ErrNotConfigured = errors.New("not configured")

	// ErrRegistryUnavailable indicates the registry answered with a server error
	ErrRegistryUnavailable = errors.New("registry unavailable")
)

// SchemaError represents a required column missing from a tabular input.
type SchemaError struct {
	Column string
	Source string // optional file or table name
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("schema error: required column %q not found in %s", e.Column, e.Source)
	}
	return fmt.Sprintf("schema error: required column %q not found", e.Column)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema || target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(column string) *SchemaError {
	return &SchemaError{Column: column}
}

// MissingFieldError represents an empty cell in a required column.
type MissingFieldError struct {
	Column string
	Row    string // DSpace ID of the offending row, may be empty
	Line   int    // 1-based line in the source file, 0 if unknown
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	msg := fmt.Sprintf("missing value in column %q", e.Column)
	if loc := location(e.Row, e.Line); loc != "" {
		msg += " " + loc
	}
	return msg
}

// Is implements errors.Is support
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField || target == ErrInvalidInput
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(column, row string, line int) *MissingFieldError {
	return &MissingFieldError{Column: column, Row: row, Line: line}
}

// InvalidEnumError represents a value outside the accepted set for a column.
type InvalidEnumError struct {
	Column  string
	Value   string
	Row     string
	Line    int
	Allowed []string
}

// Error implements the error interface
func (e *InvalidEnumError) Error() string {
	msg := fmt.Sprintf("invalid value %q in column %q", e.Value, e.Column)
	if loc := location(e.Row, e.Line); loc != "" {
		msg += " " + loc
	}
	if len(e.Allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return msg
}

// Is implements errors.Is support
func (e *InvalidEnumError) Is(target error) bool {
	return target == ErrInvalidEnum || target == ErrInvalidInput
}

// NewInvalidEnumError creates a new InvalidEnumError
func NewInvalidEnumError(column, value, row string, line int, allowed []string) *InvalidEnumError {
	return &InvalidEnumError{
		Column:  column,
		Value:   value,
		Row:     row,
		Line:    line,
		Allowed: allowed,
	}
}

// JoinIntegrityError represents a join key that matched zero or several
// repository records.
type JoinIntegrityError struct {
	Key     string
	Matches int
	Line    int
}

// Error implements the error interface
func (e *JoinIntegrityError) Error() string {
	msg := fmt.Sprintf("join key %q matched %d repository records, want exactly 1", e.Key, e.Matches)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	return msg
}

// Is implements errors.Is support
func (e *JoinIntegrityError) Is(target error) bool {
	return target == ErrJoinIntegrity || target == ErrInvalidInput
}

// NewJoinIntegrityError creates a new JoinIntegrityError
func NewJoinIntegrityError(key string, matches, line int) *JoinIntegrityError {
	return &JoinIntegrityError{Key: key, Matches: matches, Line: line}
}

func location(row string, line int) string {
	switch {
	case row != "" && line > 0:
		return fmt.Sprintf("(row %s, line %d)", row, line)
	case row != "":
		return fmt.Sprintf("(row %s)", row)
	case line > 0:
		return fmt.Sprintf("(line %d)", line)
	}
	return ""
}

// APIError represents an error from the registry API
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrRegistryUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "csv", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsValidationError reports whether err is any input violation
// (schema, missing field, enum or join).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSchemaError checks if an error is a schema error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsMissingField checks if an error is a missing field error
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsInvalidEnum checks if an error is an invalid enum error
func IsInvalidEnum(err error) bool {
	return errors.Is(err, ErrInvalidEnum)
}

// IsJoinIntegrity checks if an error is a join integrity error
func IsJoinIntegrity(err error) bool {
	return errors.Is(err, ErrJoinIntegrity)
}

// IsRegistryUnavailable checks if an error indicates a registry outage
func IsRegistryUnavailable(err error) bool {
	return errors.Is(err, ErrRegistryUnavailable)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
