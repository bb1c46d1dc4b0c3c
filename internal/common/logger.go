package common

// Logger defines the common logging interface used throughout the application
type Logger interface {
	// Private logging methods (file only)

	// Info logs an informational message
	Info(format string, args ...interface{})

	// Warning logs a warning message
	Warning(format string, args ...interface{})

	// Error logs an error message
	Error(format string, args ...interface{})

	// User-facing logging methods (file + stdout)

	// InfoToUser logs an informational message to the user
	InfoToUser(format string, args ...interface{})

	// WarningToUser logs a warning message to the user
	WarningToUser(format string, args ...interface{})

	// Success logs a success message to the user
	Success(format string, args ...interface{})

	// StatusMessage logs a status message to the user
	StatusMessage(format string, args ...interface{})
}

// NopLogger discards everything. It is the default for library code that was
// not handed a logger.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})          {}
func (NopLogger) Warning(string, ...interface{})       {}
func (NopLogger) Error(string, ...interface{})         {}
func (NopLogger) InfoToUser(string, ...interface{})    {}
func (NopLogger) WarningToUser(string, ...interface{}) {}
func (NopLogger) Success(string, ...interface{})       {}
func (NopLogger) StatusMessage(string, ...interface{}) {}
