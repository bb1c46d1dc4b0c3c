//go:build unix

package proc

import (
	"errors"
	"strconv"

	"golang.org/x/sys/unix"
)

// Alive reports whether a process with the given owner identity is running.
// Owners that are not PIDs report Unknown.
func Alive(owner string) Liveness {
	pid, err := strconv.Atoi(owner)
	if err != nil || pid <= 0 {
		return Unknown
	}

	// Signal 0 performs the permission and existence checks without delivering anything
	err = unix.Kill(pid, 0)
	switch {
	case err == nil:
		return Running
	case errors.Is(err, unix.EPERM):
		// Exists, but belongs to another user
		return Running
	case errors.Is(err, unix.ESRCH):
		return Gone
	default:
		return Unknown
	}
}
