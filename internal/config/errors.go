package config

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFileNotFound is returned when an explicitly named config file is
	// missing.
	ErrFileNotFound = errors.New("config file not found")
)

// ValidationError describes an invalid setting.
type ValidationError struct {
	// Key is the setting path, e.g. "log.level".
	Key string
	// Value is the invalid value.
	Value any
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Key, e.Message, e.Value)
}

// Is makes ValidationError match ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
