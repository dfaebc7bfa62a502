// errors.go: structured error handling for xanthos cache construction
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes.
// The steady-state cache API is error-free (comma-ok lookups, comma-ok
// downcast), so everything here concerns construction and configuration.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthos cache operations
const (
	// Configuration errors
	ErrCodeInvalidConfig     errors.ErrorCode = "XANTHOS_INVALID_CONFIG"
	ErrCodeInvalidCapacity   errors.ErrorCode = "XANTHOS_INVALID_CAPACITY"
	ErrCodeInvalidConfigPath errors.ErrorCode = "XANTHOS_INVALID_CONFIG_PATH"

	// Watcher errors
	ErrCodeWatcherFailed errors.ErrorCode = "XANTHOS_WATCHER_FAILED"
)

// Common error messages
const (
	msgInvalidConfig     = "invalid cache configuration"
	msgInvalidCapacity   = "invalid capacity: must be greater than 0"
	msgInvalidConfigPath = "config path cannot be empty"
	msgWatcherFailed     = "configuration watcher failed"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidConfig creates a generic configuration error.
func NewErrInvalidConfig(reason string) error {
	return errors.NewWithField(ErrCodeInvalidConfig, msgInvalidConfig, "reason", reason)
}

// NewErrInvalidCapacity creates an error for a non-positive pool capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrInvalidConfigPath creates an error for a missing hot-reload config path.
func NewErrInvalidConfigPath() error {
	return errors.NewWithField(ErrCodeInvalidConfigPath, msgInvalidConfigPath, "required", "config_path")
}

// =============================================================================
// WATCHER ERRORS
// =============================================================================

// NewErrWatcherFailed wraps a failure from the underlying file watcher.
func NewErrWatcherFailed(configPath string, cause error) error {
	return errors.Wrap(cause, ErrCodeWatcherFailed, msgWatcherFailed).
		WithContext("config_path", configPath).
		AsRetryable()
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidConfig || code == ErrCodeInvalidCapacity ||
			code == ErrCodeInvalidConfigPath
	}
	return false
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xerr *errors.Error
	if goerrors.As(err, &xerr) {
		return xerr.Context
	}
	return nil
}
