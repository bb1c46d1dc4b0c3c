// Package constants provides application-wide constant values for pkglock.
//
// This package centralizes the fixed values that every cooperating pkglock
// process must agree on, such as the marker directory prefix and the error
// token that external tooling greps for.
//
// # Core Components
//
// - LockPrefix: name prefix of lock marker directories
// - ErrorToken: literal token present in every lock-held error message
// - OwnerEnvVar: environment variable overriding the owner identity
//
// # Usage
//
//	import "github.com/bashhack/pkglock/internal/constants"
//
//	marker := filepath.Join(dir, constants.LockPrefix+"-"+owner)
//
// # Maintenance
//
// Changing LockPrefix or ErrorToken breaks compatibility with processes and
// scripts built against the previous values.
package constants
