package constants

const (
	// LockPrefix is the name prefix of every lock marker directory. All
	// cooperating processes on a system must agree on it.
	LockPrefix = ".pkglock"

	// ErrorToken appears verbatim in every lock-held error message so that
	// external tooling can grep for this failure class.
	ErrorToken = "LOCKERROR"

	// OwnerEnvVar overrides the owner identity of a lock. The run command sets
	// it for its child so nested invocations reenter the parent's lock.
	OwnerEnvVar = "PKGLOCK_OWNER"

	// EnvPrefix is the prefix for configuration environment variables.
	EnvPrefix = "PKGLOCK"

	// AppName is used for log directories and user-facing messages.
	AppName = "pkglock"
)
