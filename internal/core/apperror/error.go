// Package apperror provides structured error handling for the document engine.
// All business errors must use AppError so the host UI can present them.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes
const (
	// CodeInternal covers unspecified failures.
	CodeInternal = "INTERNAL_ERROR"

	// CodeValidation covers user-recoverable input problems
	// (empty ledger, blank client name at export time).
	CodeValidation = "VALIDATION_ERROR"

	// CodeBusinessRule covers violated document rules.
	CodeBusinessRule = "BUSINESS_RULE_VIOLATION"

	// CodeRender covers failures during the layout/capture stage of export.
	CodeRender = "RENDER_ERROR"

	// CodeAssembly covers failures while assembling the output binary.
	CodeAssembly = "ASSEMBLY_ERROR"
)

// AppError is the standard error type for the engine.
// Message is user-facing; the host shows it verbatim.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field names, ids, etc.)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewValidation creates a validation error.
func NewValidation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewBusinessRule creates a business rule violation error.
func NewBusinessRule(message string) *AppError {
	return &AppError{Code: CodeBusinessRule, Message: message}
}

// NewRender creates a layout/capture error.
func NewRender(message string, err error) *AppError {
	return &AppError{Code: CodeRender, Message: message, Err: err}
}

// NewAssembly creates a binary assembly error.
func NewAssembly(message string, err error) *AppError {
	return &AppError{Code: CodeAssembly, Message: message, Err: err}
}

// NewInternal creates an unspecified internal error.
func NewInternal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Απρόσμενο σφάλμα", Err: err}
}

// --- Helper functions ---

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of an error, or CodeInternal for foreign errors.
func CodeOf(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeInternal
}

// IsValidation checks if error is CodeValidation
func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}

// IsRender checks if error is CodeRender
func IsRender(err error) bool {
	return CodeOf(err) == CodeRender
}

// IsAssembly checks if error is CodeAssembly
func IsAssembly(err error) bool {
	return CodeOf(err) == CodeAssembly
}
