package crt

import "fmt"

// IoError wraps a failure from the underlying file or stream
type IoError struct {
	Op  string
	Err error
}

// Error describes the failed operation and its cause
func (e *IoError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("io error: %v", e.Err)
	}
	return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped cause
func (e *IoError) Unwrap() error {
	return e.Err
}

// InvalidAlgorithm reports an algorithm name that is not recognized
type InvalidAlgorithm struct {
	Name string
}

// Error names the unsupported algorithm
func (e *InvalidAlgorithm) Error() string {
	return fmt.Sprintf("invalid algorithm: %q", e.Name)
}

// InvalidOutputFormat reports a hash container that is malformed or can't be produced
type InvalidOutputFormat struct {
	msg string
}

// NewInvalidOutputFormat returns an InvalidOutputFormat with a formatted message
func NewInvalidOutputFormat(format string, a ...any) *InvalidOutputFormat {
	return &InvalidOutputFormat{msg: fmt.Sprintf(format, a...)}
}

func (e *InvalidOutputFormat) Error() string {
	if e.msg == "" {
		return "invalid output format"
	}
	return "invalid output format: " + e.msg
}

// InvalidParameters reports numeric inputs or a password batch that can't be used
type InvalidParameters struct {
	msg string
}

// NewInvalidParameters returns an InvalidParameters with a formatted message
func NewInvalidParameters(format string, a ...any) *InvalidParameters {
	return &InvalidParameters{msg: fmt.Sprintf(format, a...)}
}

func (e *InvalidParameters) Error() string {
	if e.msg == "" {
		return "invalid parameters"
	}
	return "invalid parameters: " + e.msg
}

// WorkerFailure reports a worker that could not be joined cleanly because it panicked
type WorkerFailure struct {
	Worker int
	Cause  any
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("worker %d failed: %v", e.Worker, e.Cause)
}
