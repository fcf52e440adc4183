// Package errors provides standardized error handling for the SSF CLI.
// It defines the error kinds used across the tool and helper
// constructors for consistent creation, wrapping, and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Validation failed before any filesystem access
	Validation
	// Config mutation error kinds
	UnknownKey
	TypeConversion
	// A config source file exists but does not parse; non-fatal
	Parse
	// File error kinds, per-file and non-fatal to a batch
	FileNotFound
	FileOperationFailed
	ConfigSaveFailed
)

// kinder is implemented by every error type in this package.
type kinder interface {
	Kind() ErrorKind
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// KindOf reports the kind of the first classified error in err's
// chain, or Unknown.
func KindOf(err error) ErrorKind {
	for ; err != nil; err = errors.Unwrap(err) {
		if k, ok := err.(kinder); ok {
			return k.Kind()
		}
	}
	return Unknown
}

// NewValidationError creates an error for parameters rejected before
// any I/O was attempted.
func NewValidationError(format string, args ...interface{}) *ApplicationError {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Validation,
	}
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors raised while mutating or loading the
// configuration.
type ConfigError struct {
	ApplicationError
	key string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, key string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		key: key,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.key != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.key, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.key)
	}
	return e.ApplicationError.Error()
}

// Key returns the configuration key associated with the error
func (e *ConfigError) Key() string {
	return e.key
}

// NewUnknownKeyError creates the error returned when a set targets a
// key absent from the configuration schema.
func NewUnknownKeyError(key string) *ConfigError {
	return NewConfigError("unknown configuration key", key, UnknownKey, nil)
}

// NewTypeConversionError creates the error returned when a raw string
// value cannot be converted to the declared type of its key.
func NewTypeConversionError(key, value, want string) *ConfigError {
	return NewConfigError(
		fmt.Sprintf("invalid %s value %q", want, value), key, TypeConversion, nil)
}

// NewParseError creates the non-fatal error recorded when a config
// source file exists but cannot be parsed.
func NewParseError(path string, err error) *FileError {
	return NewFileError("cannot parse config file", path, Parse, err)
}
