// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors. Fatal, raised at construction time, never recovered.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Input errors.
	ErrEmptyTitle = errors.New("lot has no usable title")

	// Classification service errors. Recovered locally: the pipeline degrades
	// to the fallback stage instead of propagating them.
	ErrServiceUnavailable = errors.New("classification service unavailable")
	ErrInvalidAnswer      = errors.New("answer not in taxonomy")

	// Storage errors.
	ErrNotFound = errors.New("not found")
)

// ConfigError wraps a fatal configuration problem detected at startup.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("configuration: %s", e.Detail)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidConfig
}

// NewConfigError creates a configuration error with a human-readable detail.
func NewConfigError(detail string, err error) error {
	return &ConfigError{Detail: detail, Err: err}
}

// IsConfigError reports whether err is a fatal configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce) ||
		errors.Is(err, ErrMissingConfig) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
