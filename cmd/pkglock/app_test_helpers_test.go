package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/viper"

	"github.com/bashhack/pkglock/internal/config"
	"github.com/bashhack/pkglock/internal/proc"
)

// MockRunner records the commands the app asks to run
type MockRunner struct {
	mu     sync.Mutex
	Calls  [][]string
	Envs   [][]string
	OnRun  func(ctx context.Context, argv []string, env []string) error
	RunErr error
}

func (m *MockRunner) Run(ctx context.Context, argv []string, env []string) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, argv)
	m.Envs = append(m.Envs, env)
	m.mu.Unlock()

	if m.OnRun != nil {
		return m.OnRun(ctx, argv, env)
	}
	return m.RunErr
}

type testApp struct {
	*App
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	runner   *MockRunner
	exitCode int
}

// newTestApp creates an App with captured output, a mock runner and the
// given owner identity. Probes report every owner as gone.
func newTestApp(t *testing.T, owner string) *testApp {
	t.Helper()

	v := viper.New()
	if owner != "" {
		v.Set(config.KeyOwner, owner)
	}

	ta := &testApp{
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
		runner:   &MockRunner{},
		exitCode: -1,
	}
	ta.App = NewApp(AppOptions{
		Config:     config.New(),
		Viper:      v,
		Stdin:      &bytes.Buffer{},
		Stdout:     ta.stdout,
		Stderr:     ta.stderr,
		Exit:       func(code int) { ta.exitCode = code },
		RunCommand: ta.runner.Run,
		Probe:      func(string) proc.Liveness { return proc.Gone },
	})
	t.Cleanup(func() { _ = ta.Close() })
	return ta
}

// WithRealCommands makes the app execute commands for real
func (ta *testApp) WithRealCommands() *testApp {
	ta.runCommand = ta.execCommand
	return ta
}

func newTarget(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "cache")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}
	return dir
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
