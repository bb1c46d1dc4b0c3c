package errors

import (
	"errors"
	"fmt"

	"github.com/bashhack/pkglock/internal/constants"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrLockHeld indicates a marker from another owner exists in the target directory
	ErrLockHeld = errors.New("lock is held by another process")

	// ErrCommandFailed indicates the command run under the lock exited unsuccessfully
	ErrCommandFailed = errors.New("command failed")

	// ErrInvalidConfiguration indicates an invalid or conflicting user configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// New creates a new error with the given message.
// This is a convenience function that wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
// This is a convenience function that wraps errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// LockHeldError reports that a target directory already carries a lock marker
// belonging to a different owner. Its message always starts with
// constants.ErrorToken.
type LockHeldError struct {
	TargetDir string
	Marker    string
	Owner     string
}

// Error implements the error interface with guidance for the user.
func (e *LockHeldError) Error() string {
	return fmt.Sprintf("%s: It looks like another %s instance is already running.\n"+
		"The lock %s was found. Wait for it to finish before continuing.\n"+
		"If you are sure that no other instance is running, remove it and try again.\n"+
		"You can also use: $ %s clean %s",
		constants.ErrorToken, constants.AppName, e.Marker, constants.AppName, e.TargetDir)
}

// Unwrap returns ErrLockHeld so callers can match with errors.Is.
func (e *LockHeldError) Unwrap() error {
	return ErrLockHeld
}

// NewLockHeldError creates a new LockHeldError with the given parameters.
func NewLockHeldError(targetDir, marker, owner string) *LockHeldError {
	return &LockHeldError{
		TargetDir: targetDir,
		Marker:    marker,
		Owner:     owner,
	}
}

// CommandError represents a failure of the command run while holding the lock.
// ExitCode is -1 when the command never started or was killed by a signal.
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

// Error implements the error interface with the command and its exit status.
func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with status %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is makes every CommandError match ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError with the given parameters.
func NewCommandError(command string, exitCode int, err error) *CommandError {
	return &CommandError{
		Command:  command,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
