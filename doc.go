// Package pkglock serializes work on a shared directory across processes.
//
// pkglock guards a directory, such as a package cache, with a lock marker: a
// subdirectory named .pkglock-<pid> whose existence means "in use". Processes
// that are started independently of each other, from cron jobs, CI steps or
// interactive shells, coordinate through the filesystem alone.
//
// # Quick Start
//
//	# Run a command while holding the lock on the cache
//	pkglock run /var/cache/pkgs -- make install
//
//	# See who holds the lock
//	pkglock status /var/cache/pkgs
//
//	# Remove a lock left behind by a crashed process
//	pkglock clean /var/cache/pkgs
//
// When the lock is held by another process, pkglock exits with status 1 and
// prints an error starting with LOCKERROR, which scripts can grep for.
//
// # Module Structure
//
//   - cmd/pkglock: Command-line interface
//   - internal/lock: The directory lock
//   - internal/config: Configuration and flag binding
//   - internal/logger: Logging facilities
//   - internal/errors: Error types
//   - internal/proc: Owner process liveness probe
//   - internal/constants: Marker prefix and other fixed values
//
// # Guarantees
//
// Acquisition is a single list-then-create step with no waiting. Two
// processes that list an empty directory at the same moment can both take
// the lock. Locks of crashed processes are not detected automatically; use
// "pkglock status" to see whether an owner is still running and
// "pkglock clean" to remove its marker.
package pkglock
