// Package errors provides pkglock's error types and helpers.
//
// Sentinel errors (ErrLockHeld, ErrCommandFailed, ErrInvalidConfiguration)
// are matched with Is. Typed errors carry the context needed to act on them:
//
// - LockHeldError: the conflicting marker; its message starts with LOCKERROR
// - CommandError: the command run under the lock and its exit status
// - ConfigError: the offending configuration parameter
//
// The package shadows the standard library's errors package so callers can
// use one import for both.
package errors
