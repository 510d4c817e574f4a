package meshsimplify

import (
	"fmt"
	"log"
)

// Logger is the host-supplied sink for shape-mismatch warnings: callers can
// plug in their own logging, or silence warnings entirely with NopLogger.
// This package calls fmt/log directly rather than pulling in a logging
// library, and exposes the narrowest possible interface to wrap one.
type Logger interface {
	Warnf(format string, args ...any)
}

// NopLogger silences all warnings.
type NopLogger struct{}

func (NopLogger) Warnf(string, ...any) {}

// defaultLogger writes to the standard library's default logger.
type defaultLogger struct{}

func (defaultLogger) Warnf(format string, args ...any) {
	log.Printf(format, args...)
}

// InvalidArgumentError reports a null input, a negative or out-of-range
// index, or a malformed index array. Setters and constructors that hit
// this fail fast and never partially apply.
type InvalidArgumentError struct {
	Name    string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("meshsimplify: invalid argument %q: %s", e.Name, e.Message)
}

// InvalidOptionsError reports an invalid Options combination, carrying the
// offending field's name (see ValidateOptions).
type InvalidOptionsError struct {
	Property string
	Message  string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("meshsimplify: invalid option %q: %s", e.Property, e.Message)
}

// InvalidStateError reports an internal invariant violation, such as a
// sub-mesh offset table whose size disagrees with the sub-mesh count.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("meshsimplify: invalid internal state: %s", e.Message)
}

// OutOfRangeError reports an out-of-bounds sub-mesh or vertex index lookup.
type OutOfRangeError struct {
	Name  string
	Index int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("meshsimplify: %s index %d out of range", e.Name, e.Index)
}
