package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bashhack/pkglock/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	// Cancelling the context kills a child started by "run"; the lock is
	// released as WithLock unwinds.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	code := app.Execute(ctx, os.Args[1:])
	stop()

	_ = app.Close()
	app.exit(code)
}
