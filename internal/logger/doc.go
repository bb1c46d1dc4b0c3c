// Package logger provides logging facilities for pkglock.
//
// Diagnostics and user-facing messages travel on separate channels.
// Diagnostics (Info, Warning, Error) go to a zerolog JSON log file when debug
// logging is enabled. User-facing messages (InfoToUser, WarningToUser,
// Success, StatusMessage) go to stdout or stderr with a leading emoji, and are
// also recorded in the log file.
//
// # Message Types
//
// - Info: file only
// - Warning: file, plus stderr in verbose mode
// - Error: file, plus always stderr
// - InfoToUser: file, plus stdout in verbose mode
// - WarningToUser: file, plus stderr
// - Success: file, plus stdout
// - StatusMessage: stdout only
//
// # Usage
//
//	log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
//	defer log.Close()
//
//	log.Info("acquiring %s", dir)
//	log.Success("lock released")
//
// DefaultLogger is safe for concurrent use.
package logger
