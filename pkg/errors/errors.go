// Package errors provides the error types used across tabprep.
//
// The pipeline reports failures through structured error values rather than
// sentinel strings, so callers can branch on the failure kind with errors.As.
// All constructors attach a stack trace via cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// NoHeaderError indicates that a loaded dataset has no detectable header and
// the caller supplied none. It is the recoverable error of the cleaning
// pipeline: callers are expected to retry with an explicit header.
type NoHeaderError struct {
	Path string
}

func (e *NoHeaderError) Error() string {
	return fmt.Sprintf("tabprep: dataset %q has no header and no column names were supplied", e.Path)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NoHeaderError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("type", "NoHeaderError")
}

// NewNoHeaderError creates a NoHeaderError with a stack trace attached.
func NewNoHeaderError(path string) error {
	return errors.WithStack(&NoHeaderError{Path: path})
}

// DimensionError indicates that input data has an unexpected shape.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("tabprep: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError indicates that a caller-supplied parameter failed validation,
// for example a reduction target dimension larger than the feature count.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tabprep: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError indicates that input data, rather than a parameter, is unusable.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("tabprep: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// NotFittedError is returned when Transform is called on an estimator whose
// Fit has not run yet.
type NotFittedError struct {
	EstimatorName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("tabprep: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.EstimatorName, e.Method)
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(estimator, method string) error {
	return errors.WithStack(&NotFittedError{EstimatorName: estimator, Method: method})
}

// PipelineError wraps a failure from an underlying routine (file loading, the
// dataframe layer, or one of the external projection libraries) with the
// pipeline stage it occurred in.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("tabprep: %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError wraps err with the pipeline stage and a stack trace.
func NewPipelineError(stage string, err error) error {
	return errors.WithStack(&PipelineError{Stage: stage, Err: err})
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

var (
	// ErrEmptyData is returned when a dataset or matrix has no rows or columns.
	ErrEmptyData = New("empty data")
)
