package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bashhack/pkglock/internal/config"
	"github.com/bashhack/pkglock/internal/constants"
	"github.com/bashhack/pkglock/internal/errors"
	"github.com/bashhack/pkglock/internal/lock"
	"github.com/bashhack/pkglock/internal/proc"
)

// NewRootCommand builds the pkglock command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Serialize work on a shared directory across processes",
		Long: `pkglock guards a directory with a lock marker so that independently
started processes do not work on it at the same time.

The lock is held while a directory named ` + constants.LockPrefix + `-<pid> exists inside
the target. A process that finds another process's marker refuses to run and
reports an error containing ` + constants.ErrorToken + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())
	_ = app.viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRunCommand(app))
	root.AddCommand(newStatusCommand(app))
	root.AddCommand(newCleanCommand(app))
	root.AddCommand(newVersionCommand(app))

	return root
}

func newRunCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <dir> [--] <command> [args...]",
		Short: "Run a command while holding the lock on dir",
		Example: `  pkglock run /var/cache/pkgs -- make install
  pkglock run ~/.cache/downloads curl -O https://example.com/pkg.tar.gz`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := args[1:]
			if argv[0] == "--" {
				argv = argv[1:]
			}
			if len(argv) == 0 {
				return errors.Errorf("no command given to run under the lock on %s", args[0])
			}

			if err := app.Initialize(args[0]); err != nil {
				return err
			}
			return app.RunLocked(cmd.Context(), argv)
		},
	}

	// Everything after the target belongs to the command being run
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "status <dir>",
		Short:   "Show lock markers in dir",
		Example: `  pkglock status /var/cache/pkgs`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Initialize(args[0]); err != nil {
				return err
			}
			return app.Status()
		},
	}
}

func newCleanCommand(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean <dir>",
		Short: "Remove lock markers left in dir",
		Long: `Remove every lock marker in dir, whoever created it.

Use this when a process died while holding the lock. Removing the marker of a
process that is still running lets a second process start on the same
directory.`,
		Example: `  pkglock clean /var/cache/pkgs
  pkglock clean --dry-run /var/cache/pkgs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Initialize(args[0]); err != nil {
				return err
			}
			return app.Clean(dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List the markers that would be removed")
	return cmd
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.ShowVersion()
		},
	}
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "%s %s (%s) built on %s\n",
		constants.AppName,
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// Status prints the markers present in the configured target.
func (a *App) Status() error {
	target := a.Config.TargetDir
	markers, err := lock.Markers(target)
	if err != nil {
		return err
	}

	if len(markers) == 0 {
		a.Logger.StatusMessage("No lock markers in %s", target)
		return nil
	}

	self := a.owner()
	rows := make([][]string, 0, len(markers))
	for _, m := range markers {
		mine := ""
		if m.Owner == self {
			mine = "yes"
		}
		rows = append(rows, []string{m.Path, m.Owner, mine, a.probe(m.Owner).String()})
	}

	table := tablewriter.NewWriter(a.Stdout)
	table.SetHeader([]string{"Marker", "Owner", "Self", "Process"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	if len(markers) > 1 {
		a.Logger.WarningToUser("%d markers found in %s; more than one process raced for the lock", len(markers), target)
	}
	return nil
}

// Clean removes the markers in the configured target, or lists them when dryRun is set.
func (a *App) Clean(dryRun bool) error {
	target := a.Config.TargetDir
	markers, err := lock.Markers(target)
	if err != nil {
		return err
	}

	if len(markers) == 0 {
		a.Logger.StatusMessage("No lock markers in %s", target)
		return nil
	}

	for _, m := range markers {
		if a.probe(m.Owner) == proc.Running {
			a.Logger.WarningToUser("Process %s owning %s is still running", m.Owner, m.Path)
		}
	}

	if dryRun {
		for _, m := range markers {
			a.Logger.StatusMessage("Would remove %s", m.Path)
		}
		return nil
	}

	removed, err := lock.Clear(target)
	for _, path := range removed {
		a.Logger.Success("Removed %s", path)
	}
	return err
}
