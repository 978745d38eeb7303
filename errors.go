package funnelplot

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// ErrCodeInvalidInput is used for bad groups, percentages or counts.
	// Such errors are reported before anything is drawn.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeDegenerate is used when the population statistics make the
	// funnel undefined, e.g. a population without variance.
	ErrCodeDegenerate Code = "DEGENERATE_STATISTICS"

	// ErrCodeLabelPlacement is used when no free spot was found for a label.
	ErrCodeLabelPlacement Code = "LABEL_PLACEMENT_FAILED"

	// ErrCodeInvalidColumn is used for missing or mistyped data frame columns.
	ErrCodeInvalidColumn Code = "INVALID_COLUMN"

	// ErrCodeInvalidFormat is used for unparsable input data.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error with code wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether err (or any error it wraps) is an *Error with code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// LabelPlacementError is returned when the label placer ran out of
// attempts. Partially drawn output may remain on the surface.
type LabelPlacementError struct {
	Label    string
	Attempts int
}

func (e *LabelPlacementError) Error() string {
	return fmt.Sprintf("%s: no free position for label %q after %d attempts",
		ErrCodeLabelPlacement, e.Label, e.Attempts)
}

// Unwrap makes IsCode(err, ErrCodeLabelPlacement) work.
func (e *LabelPlacementError) Unwrap() error {
	return NewError(ErrCodeLabelPlacement, "label %q", e.Label)
}

func invalidf(format string, args ...any) *Error {
	return NewError(ErrCodeInvalidInput, format, args...)
}
