// Package errors provides standardized error types for the pyinstall CLI.
//
// The errors package defines installer-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// InstallError is the primary error type, containing:
//   - Code: Categorizes the error (CONFIG, IO, RELOCATE, etc.)
//   - Message: Human-readable error description
//   - Path: The filesystem path involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Error Taxonomy
//
// The codes follow the installer's failure model:
//
//   - CONFIG and VALIDATION errors are reported before any mutation.
//   - IO errors abort the remaining pipeline; the destination may be
//     left partially populated.
//   - ADVISORY errors never abort; they degrade to informational
//     "not found" output.
//
// # Usage
//
// Creating installer errors:
//
//	// Target path exists but is not a directory
//	return errors.NotDirectory("/opt/python-3.11")
//
//	// Wrapping an underlying I/O error
//	return errors.WrapPath(errors.ErrCodeIO, "failed to copy tree", dst, err)
//
// # Error Checking
//
// Use errors.Is for sentinel comparison:
//
//	if errors.Is(err, errors.ErrPlaceholderOverflow) {
//	    // install path too long for the reserved placeholder width
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Bundle metadata or option error
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodeIO         ErrorCode = "IO"         // Filesystem read/write/copy failure
	ErrCodeRelocate   ErrorCode = "RELOCATE"   // Placeholder substitution failure
	ErrCodePlatform   ErrorCode = "PLATFORM"   // Platform integration failure
	ErrCodeAdvisory   ErrorCode = "ADVISORY"   // Best-effort lookup failure (never fatal)
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// InstallError represents a structured error with context about the operation.
type InstallError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // Filesystem path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *InstallError) Is(target error) bool {
	t, ok := target.(*InstallError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrNotDirectory indicates the install target exists and is not a directory.
	ErrNotDirectory = &InstallError{Code: ErrCodeValidation, Message: "target exists and is not a directory"}

	// ErrNoTTY indicates interactive mode was requested without a terminal.
	ErrNoTTY = &InstallError{Code: ErrCodeConfig, Message: "interactive install requires a terminal (use --install-dir)"}

	// ErrBundleInvalid indicates the bundle metadata is missing or corrupt.
	ErrBundleInvalid = &InstallError{Code: ErrCodeConfig, Message: "invalid bundle metadata"}

	// ErrManifestMissing indicates the relocation manifest does not exist.
	ErrManifestMissing = &InstallError{Code: ErrCodeRelocate, Message: "relocation manifest not found"}

	// ErrPlaceholderOverflow indicates the install path does not fit the
	// placeholder's reserved width in a length-sensitive file.
	ErrPlaceholderOverflow = &InstallError{Code: ErrCodeConfig, Message: "install path exceeds placeholder width"}

	// ErrPatchelfMissing indicates RPATH rewriting was requested but
	// patchelf is not installed.
	ErrPatchelfMissing = &InstallError{Code: ErrCodePlatform, Message: "patchelf is required but not installed"}

	// ErrUnsupportedPlatform indicates the current OS has no integration adapter.
	ErrUnsupportedPlatform = &InstallError{Code: ErrCodePlatform, Message: "unsupported platform"}
)

// NotDirectory creates an error for a target path that is not a directory.
func NotDirectory(path string) error {
	return &InstallError{
		Code:    ErrCodeValidation,
		Message: "target exists and is not a directory",
		Path:    path,
	}
}

// Overflow creates a placeholder-overflow error for a specific file.
func Overflow(path string) error {
	return &InstallError{
		Code:    ErrCodeConfig,
		Message: "install path exceeds placeholder width",
		Path:    path,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &InstallError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &InstallError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context and underlying error.
func WrapPath(code ErrorCode, msg, path string, err error) error {
	return &InstallError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
