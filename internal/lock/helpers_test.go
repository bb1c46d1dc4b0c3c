package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// recordingLogger captures diagnostics for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warning(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Error(format string, args ...interface{})         { r.Warning(format, args...) }
func (r *recordingLogger) InfoToUser(format string, args ...interface{})    { r.Info(format, args...) }
func (r *recordingLogger) WarningToUser(format string, args ...interface{}) { r.Warning(format, args...) }
func (r *recordingLogger) Success(format string, args ...interface{})       { r.Info(format, args...) }
func (r *recordingLogger) StatusMessage(string, ...interface{})             {}

func (r *recordingLogger) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

// newTarget returns an existing, empty target directory inside the test's temp dir.
func newTarget(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("failed to create target dir: %v", err)
	}
	return dir
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
