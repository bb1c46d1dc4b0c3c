package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashhack/pkglock/internal/proc"
)

func TestStatus(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.Mkdir(filepath.Join(target, ".pkglock-999"), 0o755))
	app := newTestApp(t, "999")
	app.probe = func(owner string) proc.Liveness {
		if owner == "999" {
			return proc.Running
		}
		return proc.Gone
	}

	code := app.Execute(context.Background(), []string{"status", target})

	assert.Equal(t, 0, code)
	out := app.stdout.String()
	assert.Contains(t, out, "MARKER")
	assert.Contains(t, out, filepath.Join(target, ".pkglock-999"))
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "running")
	assert.Empty(t, app.stderr.String())
}

func TestStatusMultipleMarkers(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.Mkdir(filepath.Join(target, ".pkglock-100"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(target, ".pkglock-200"), 0o755))
	app := newTestApp(t, "123")

	code := app.Execute(context.Background(), []string{"status", target})

	assert.Equal(t, 0, code)
	assert.Contains(t, app.stdout.String(), ".pkglock-100")
	assert.Contains(t, app.stdout.String(), ".pkglock-200")
	assert.Contains(t, app.stdout.String(), "gone")
	assert.Contains(t, app.stderr.String(), "2 markers found")
}

func TestStatusEmpty(t *testing.T) {
	target := newTarget(t)
	app := newTestApp(t, "123")

	code := app.Execute(context.Background(), []string{"status", target})

	assert.Equal(t, 0, code)
	assert.Equal(t, "No lock markers in "+target+"\n", app.stdout.String())
}

func TestStatusMissingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing")
	app := newTestApp(t, "123")

	code := app.Execute(context.Background(), []string{"status", target})

	assert.Equal(t, 0, code)
	assert.Contains(t, app.stdout.String(), "No lock markers")
	assert.False(t, exists(target), "status must not create the target")
}

func TestClean(t *testing.T) {
	tests := map[string]struct {
		args        []string
		expectGone  bool
		expectedOut string
	}{
		"Remove": {
			args:        []string{"clean"},
			expectGone:  true,
			expectedOut: "✅ Removed",
		},
		"DryRun": {
			args:        []string{"clean", "--dry-run"},
			expectGone:  false,
			expectedOut: "Would remove",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			target := newTarget(t)
			marker := filepath.Join(target, ".pkglock-999")
			require.NoError(t, os.Mkdir(marker, 0o755))
			app := newTestApp(t, "123")

			code := app.Execute(context.Background(), append(test.args, target))

			assert.Equal(t, 0, code)
			assert.Contains(t, app.stdout.String(), test.expectedOut)
			assert.Contains(t, app.stdout.String(), marker)
			assert.Equal(t, !test.expectGone, exists(marker))
			assert.True(t, exists(target), "clean only removes markers")
		})
	}
}

func TestCleanWarnsAboutRunningOwner(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.Mkdir(filepath.Join(target, ".pkglock-999"), 0o755))
	app := newTestApp(t, "123")
	app.probe = func(string) proc.Liveness { return proc.Running }

	code := app.Execute(context.Background(), []string{"clean", target})

	assert.Equal(t, 0, code)
	assert.Contains(t, app.stderr.String(), "Process 999 owning")
}

func TestCleanThenRun(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.Mkdir(filepath.Join(target, ".pkglock-999"), 0o755))

	refused := newTestApp(t, "123")
	require.Equal(t, 1, refused.Execute(context.Background(), []string{"run", target, "true"}))

	cleaner := newTestApp(t, "123")
	require.Equal(t, 0, cleaner.Execute(context.Background(), []string{"clean", target}))

	runner := newTestApp(t, "123")
	assert.Equal(t, 0, runner.Execute(context.Background(), []string{"run", target, "true"}))
	assert.Len(t, runner.runner.Calls, 1)
}
