// Package errors provides structured diagnostics for the interop layer.
//
// Nothing in this module returns panics to callers of Wrap or Equivalent;
// they are recovered and reported to a process-wide handler instead so that
// misbehaving props accessors can be traced without breaking rendering.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid interop.yaml or environment override.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InteropError represents a structured error in the interop layer.
type InteropError struct {
	// Op is the operation that failed (e.g., "config.Apply").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field is the configuration key involved, if applicable.
	Field string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InteropError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InteropError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "props.GetKey").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the interop layer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *InteropError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
