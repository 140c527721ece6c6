// Package errors provides the unified error type and factory functions for the
// GHS label service.  Every layer (core resolvers, gateway, interfaces) carries
// structured failures as *AppError so HTTP responses, logs and metrics can be
// derived from a single code.
package errors

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// stackDepth is the maximum number of frames captured per error.
const stackDepth = 32

// captureStack returns a formatted call-stack string starting two frames above
// the caller (skipping captureStack itself and the factory).
func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !strings.Contains(f.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", f.File, f.Line, f.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// AppError
// ─────────────────────────────────────────────────────────────────────────────

// AppError is the structured error type used across the service.  It supports
// errors.Is / errors.As through Unwrap.
//
// Usage:
//
//	return errors.New(errors.ErrCodeCASMalformed, "CAS number is malformed")
//	return errors.Wrap(err, errors.ErrCodeDataSourceUnavailable, "pubchem request failed")
//	return errors.NotFound("compound not found").WithDetail("cas=64-17-5")
type AppError struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description.
	Message string

	// Detail carries supplementary context such as the identifier or URL.
	Detail string

	// Cause is the underlying error, if any.
	Cause error

	// Stack is captured by the factories and never rendered by Error().
	Stack string
}

// Error implements the error interface.
// Format: "[<code>] <message>: <detail>"; the detail segment is omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// It is safe to call on a nil pointer (returns nil).
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set to err.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// HTTPStatus returns the HTTP status mapped to the error's code.
func (e *AppError) HTTPStatus() int {
	return HTTPStatusForCode(e.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Factories
// ─────────────────────────────────────────────────────────────────────────────

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Stack:   captureStack(1),
	}
}

// Errorf constructs an AppError whose message is formatted with fmt.Sprintf.
func Errorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(1),
	}
}

// Wrap constructs an AppError that wraps err.  A nil err yields nil so Wrap
// can be used inline.  When code is CodeUnknown and err already carries an
// AppError, the original code is preserved.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
		Stack:   captureStack(1),
	}
}

// FromContext converts a context error into an AppError.  It returns nil when
// err is not a context cancellation or deadline error.
func FromContext(err error) *AppError {
	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "request timed out")
	default:
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// IsCode reports whether any error in err's chain is an *AppError with code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound reports whether err's chain carries one of the not-found codes.
func IsNotFound(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) {
			switch ae.Code {
			case ErrCodeNotFound, ErrCodeChemicalNotFound, ErrCodeNameUnresolved,
				ErrCodeDataSourceNoRecord, ErrCodeCacheMiss:
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsValidation reports whether err's chain carries a client-input code.
func IsValidation(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) {
			switch ae.Code {
			case ErrCodeBadRequest, ErrCodeValidation, ErrCodeCASEmpty, ErrCodeCASMalformed,
				ErrCodeNameTooShort, ErrCodeBatchTooLarge, ErrCodeExportFormat:
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// Is and As re-export the standard library helpers so callers importing this
// package under the name "errors" keep access to them.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// ─────────────────────────────────────────────────────────────────────────────
// Convenience factories
// ─────────────────────────────────────────────────────────────────────────────

// NotFound constructs a CodeNotFound AppError.
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Stack: captureStack(1)}
}

// InvalidParam constructs a CodeInvalidParam AppError.
func InvalidParam(message string) *AppError {
	return &AppError{Code: CodeInvalidParam, Message: message, Stack: captureStack(1)}
}

// Internal constructs a CodeInternal AppError.
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message, Stack: captureStack(1)}
}

// RateLimit constructs a CodeRateLimit AppError.
func RateLimit(message string) *AppError {
	return &AppError{Code: CodeRateLimit, Message: message, Stack: captureStack(1)}
}

// Unavailable constructs a CodeUnavailable AppError.
func Unavailable(message string) *AppError {
	return &AppError{Code: CodeUnavailable, Message: message, Stack: captureStack(1)}
}
