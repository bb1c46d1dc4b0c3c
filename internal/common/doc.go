// Package common provides shared interfaces used throughout pkglock.
//
// # Core Components
//
// - Logger: interface separating diagnostic logs from user-facing messages
// - NopLogger: a Logger that discards everything
//
// # Usage
//
// The Logger interface is injected into components that need logging; the
// lock package falls back to NopLogger when none is given:
//
//	l := lock.New(dir, lock.WithLogger(appLogger))
//
// The common package has no dependencies on other internal packages so that
// any of them can import it.
package common
