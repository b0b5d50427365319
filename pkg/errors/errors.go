// Package errors provides structured error handling for the engine.
//
// Recoverable failures are reported through a process-wide ErrorHandler.
// Broken internal invariants, such as reading a state cell with the wrong
// type, are not recoverable: they panic with an *InvariantError.
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
	// KindInvariant indicates a broken internal invariant.
	KindInvariant
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindTask indicates a failed background task.
	KindTask
	// KindSubscription indicates a failed subscription stream.
	KindSubscription
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	case KindTask:
		return "task"
	case KindSubscription:
		return "subscription"
	default:
		return "unknown"
	}
}

// EngineError represents a structured error reported by the engine.
type EngineError struct {
	// Op is the operation that failed (e.g., "runtime.Executor.Spawn").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "runtime.Tracker.run").
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

// InvariantError is raised when the engine detects a state it can never
// legitimately reach.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Message describes what was violated.
	Message string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Message)
}

// Invariant reports the violation to the global handler, then panics with an
// *InvariantError.
func Invariant(op, format string, args ...any) {
	err := &InvariantError{
		Op:         op,
		Message:    fmt.Sprintf(format, args...),
		StackTrace: CaptureStack(),
	}
	Handler().HandleInvariant(err)
	panic(err)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EngineError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleInvariant is called right before an invariant panic.
	HandleInvariant(err *InvariantError)
}
