package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/viper"

	"github.com/bashhack/pkglock/internal/config"
	"github.com/bashhack/pkglock/internal/constants"
	"github.com/bashhack/pkglock/internal/errors"
	"github.com/bashhack/pkglock/internal/lock"
	"github.com/bashhack/pkglock/internal/logger"
	"github.com/bashhack/pkglock/internal/proc"
)

// CommandRunner runs argv to completion with the given extra environment.
type CommandRunner func(ctx context.Context, argv []string, env []string) error

// AppOptions contains app configuration and dependencies.
// This struct allows injection of both required and optional dependencies,
// enabling flexible configuration and easier testing.
type AppOptions struct {
	// Config holds the application configuration settings (required).
	Config *config.Config

	// Viper supplies environment and flag values (optional, config.NewViper if nil).
	Viper *viper.Viper

	// Logger provides logging functionality (optional, created from Config if nil).
	Logger logger.Logger

	// I/O dependencies
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit       func(code int)
	RunCommand CommandRunner
	Probe      func(owner string) proc.Liveness
}

// App is the pkglock application
type App struct {
	Config *config.Config
	Logger logger.Logger

	// I/O streams
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	viper *viper.Viper

	// System dependencies
	exit       func(code int)
	runCommand CommandRunner
	probe      func(owner string) proc.Liveness
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	return NewApp(AppOptions{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
	})
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:     opts.Config,
		Logger:     opts.Logger,
		Stdin:      opts.Stdin,
		Stdout:     opts.Stdout,
		Stderr:     opts.Stderr,
		viper:      opts.Viper,
		exit:       opts.Exit,
		runCommand: opts.RunCommand,
		probe:      opts.Probe,
	}

	// Set defaults for nil dependencies
	if app.Stdin == nil {
		app.Stdin = os.Stdin
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.viper == nil {
		app.viper = config.NewViper()
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.runCommand == nil {
		app.runCommand = app.execCommand
	}
	if app.probe == nil {
		app.probe = proc.Alive
	}

	return app
}

// Execute runs the command line args and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// A command that ran and failed has already reported why; pass its status on
	var cmdErr *errors.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		if a.Logger != nil {
			a.Logger.Info("%v", cmdErr)
		}
		return cmdErr.ExitCode
	}

	_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v\n", err)
	return 1
}

// Initialize finalizes the configuration for targetDir and sets up
// components not provided during construction
func (a *App) Initialize(targetDir string) error {
	a.Config.Load(a.viper)
	a.Config.TargetDir = targetDir

	if err := a.Config.Finalize(); err != nil {
		// Finalize already returns a properly wrapped error
		if errors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Config.Debug, a.Config.LogFile, a.Config.Verbose, a.Stdout, a.Stderr)
	}

	return nil
}

// owner returns the configured owner identity, or the current process's.
func (a *App) owner() string {
	if a.Config.Owner != "" {
		return a.Config.Owner
	}
	return lock.DefaultOwner()
}

// RunLocked runs argv while holding the lock over the configured target.
// The child inherits the owner identity so that nested runs reenter the lock.
func (a *App) RunLocked(ctx context.Context, argv []string) error {
	owner := a.owner()
	target := a.Config.TargetDir

	a.Logger.Info("Acquiring lock on %s as owner %s", target, owner)

	return lock.WithLock(ctx, target, func(ctx context.Context) error {
		a.Logger.InfoToUser("Lock acquired on %s", target)
		a.Logger.Info("Running %s", strings.Join(argv, " "))

		env := []string{constants.OwnerEnvVar + "=" + owner}
		if err := a.runCommand(ctx, argv, env); err != nil {
			return commandError(argv, err)
		}

		a.Logger.Info("Command finished, releasing lock on %s", target)
		return nil
	}, lock.WithOwner(owner), lock.WithLogger(a.Logger))
}

// execCommand runs argv with the app's standard streams attached.
func (a *App) execCommand(ctx context.Context, argv []string, env []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = a.Stdin
	cmd.Stdout = a.Stdout
	cmd.Stderr = a.Stderr
	return cmd.Run()
}

func commandError(argv []string, err error) error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return errors.NewCommandError(strings.Join(argv, " "), code, err)
}

// Close releases resources held by the App
func (a *App) Close() error {
	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
			return err
		}
	}
	return nil
}
