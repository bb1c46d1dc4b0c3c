// Command pkglock runs commands under a directory lock.
//
// # Usage
//
//	pkglock [--debug] [--log-file FILE] [--quiet] <command>
//
// # Commands
//
//	run <dir> [--] <command> [args...]
//	    Take the lock on dir, run the command, release the lock. The exit
//	    status is the command's. The command inherits PKGLOCK_OWNER, so a
//	    pkglock run on the same dir from inside it reenters the lock.
//
//	status <dir>
//	    List the lock markers in dir with their owner and whether the owner
//	    process is still running.
//
//	clean [--dry-run] <dir>
//	    Remove every lock marker in dir.
//
//	version
//	    Print version information.
//
// # Exit Status
//
// 0 on success, 1 when the lock is held elsewhere or pkglock itself fails,
// otherwise the exit status of the command run under the lock.
//
// # Environment
//
// PKGLOCK_DEBUG, PKGLOCK_LOG_FILE, PKGLOCK_QUIET and PKGLOCK_OWNER mirror the
// flags of the same name. A .env file in the working directory is read too.
package main
