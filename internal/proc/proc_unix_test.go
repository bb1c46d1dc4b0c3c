//go:build unix

package proc

import (
	"os"
	"os/exec"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		owner    string
		expected Liveness
	}{
		"CurrentProcess": {
			owner:    strconv.Itoa(os.Getpid()),
			expected: Running,
		},
		"NotANumber": {
			owner:    "build-42",
			expected: Unknown,
		},
		"Zero": {
			owner:    "0",
			expected: Unknown,
		},
		"Negative": {
			owner:    "-1",
			expected: Unknown,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, Alive(test.owner))
		})
	}
}

func TestAliveExitedProcess(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	// The child has been reaped by Run, so its PID is free
	assert.Equal(t, Gone, Alive(strconv.Itoa(cmd.Process.Pid)))
}

func TestLivenessString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "gone", Gone.String())
	assert.Equal(t, "unknown", Unknown.String())
}
