// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrUnsupportedStyle   = errors.New("unsupported exercise style")
	ErrExerciseDateCount  = errors.New("invalid number of exercise dates")
	ErrBarrierLevelCount  = errors.New("invalid number of barrier levels")
	ErrBarrierStyle       = errors.New("only european barrier style supported")
	ErrNegativeRebate     = errors.New("rebate must be non-negative")
	ErrTradeActions       = errors.New("trade actions not supported")
	ErrInvalidAmounts     = errors.New("bought and sold amounts must be positive")
	ErrConfigInvalid      = errors.New("invalid configuration")
	ErrMarketDataNotFound = errors.New("market data not found")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError represents a trade validation failure. It is raised before
// any replication logic runs; no partial composite is ever produced.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s (%v): %s: %v", e.Field, e.Value, e.Message, e.Err)
	}
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// ConfigurationError represents a missing leg pricer for a required
// (instrument kind, key) combination.
type ConfigurationError struct {
	Kind string
	Key  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: no pricer registered for %s [%s]", e.Kind, e.Key)
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(kind, key string) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Key: key}
}

// UnsupportedBarrierTypeError represents a barrier type outside the four
// supported values. It is fatal and never silently defaulted.
type UnsupportedBarrierTypeError struct {
	Type string
}

func (e *UnsupportedBarrierTypeError) Error() string {
	return fmt.Sprintf("unsupported barrier type: %q", e.Type)
}

// NewUnsupportedBarrierTypeError creates a new UnsupportedBarrierTypeError.
func NewUnsupportedBarrierTypeError(barrierType string) *UnsupportedBarrierTypeError {
	return &UnsupportedBarrierTypeError{Type: barrierType}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
