// Package config provides configuration management for pkglock.
//
// Settings come from, in increasing precedence: built-in defaults, a .env
// file in the working directory, PKGLOCK_* environment variables, and
// command-line flags. viper merges the sources; cobra flags are bound into
// the same viper instance.
//
// # Settings
//
//	Flag         Environment         Meaning
//	--debug      PKGLOCK_DEBUG       write diagnostics to the log file
//	--log-file   PKGLOCK_LOG_FILE    log file path
//	--quiet      PKGLOCK_QUIET       hide informational messages
//	--owner      PKGLOCK_OWNER       owner identity (hidden flag)
//
// PKGLOCK_OWNER is also how a child started by "pkglock run" inherits its
// parent's identity, which makes nested runs on the same target reentrant.
//
// # Usage
//
//	v := config.NewViper()
//	config.RegisterFlags(cmd.PersistentFlags())
//	_ = v.BindPFlags(cmd.PersistentFlags())
//
//	cfg := config.New()
//	cfg.Load(v)
//	cfg.TargetDir = args[0]
//	if err := cfg.Finalize(); err != nil {
//	    return err
//	}
//
// Finalize resolves the target to an absolute path and derives a default log
// file under $XDG_DATA_HOME/pkglock/logs, keyed by a hash of the target.
package config
