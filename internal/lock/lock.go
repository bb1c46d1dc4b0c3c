package lock

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bashhack/pkglock/internal/common"
	"github.com/bashhack/pkglock/internal/constants"
	"github.com/bashhack/pkglock/internal/errors"
)

// State is the lifecycle position of a DirLock.
type State int

const (
	Unattempted State = iota
	Held
	Refused
	Released
)

func (s State) String() string {
	switch s {
	case Unattempted:
		return "unattempted"
	case Held:
		return "held"
	case Refused:
		return "refused"
	case Released:
		return "released"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// DirLock is one attempt by one process to hold the lock over a target
// directory. The lock is the presence of a marker directory named
// <LockPrefix>-<owner> inside the target.
//
// A DirLock is not safe for concurrent use by multiple goroutines.
type DirLock struct {
	targetDir string
	owner     string
	path      string
	pattern   string
	owns      bool
	state     State
	log       common.Logger

	// beforeCreate runs between listing and creating; tests use it to force
	// the list/create race.
	beforeCreate func()
}

// Option configures a DirLock.
type Option func(*DirLock)

// WithOwner replaces the default owner identity (the current PID).
// An empty id, or one containing a path separator, is ignored.
func WithOwner(id string) Option {
	return func(l *DirLock) {
		if id != "" {
			l.owner = id
		}
	}
}

// WithLogger routes diagnostics about absorbed filesystem errors to log.
func WithLogger(log common.Logger) Option {
	return func(l *DirLock) {
		if log != nil {
			l.log = log
		}
	}
}

// DefaultOwner returns the owner identity of the current process.
func DefaultOwner() string {
	return strconv.Itoa(os.Getpid())
}

// New creates a DirLock for targetDir. It performs no I/O.
func New(targetDir string, opts ...Option) *DirLock {
	l := &DirLock{
		targetDir: targetDir,
		owner:     DefaultOwner(),
		owns:      true,
		state:     Unattempted,
		log:       common.NopLogger{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if strings.ContainsAny(l.owner, `/\`) {
		l.log.Warning("Ignoring owner %q: it contains a path separator", l.owner)
		l.owner = DefaultOwner()
	}

	l.path = filepath.Join(targetDir, markerName(l.owner))
	l.pattern = filepath.Join(targetDir, constants.LockPrefix+"-*")
	return l
}

// Acquire makes a single attempt to take the lock. It never blocks or retries.
//
// It returns a *errors.LockHeldError when a marker of another owner exists.
// A marker carrying this lock's own owner is treated as a reentry: the lock
// is held but this instance does not own the marker. Calling Acquire on a lock
// that is already held is a no-op. Filesystem errors while
// creating the marker are logged and absorbed.
func (l *DirLock) Acquire() error {
	// Already holding; keep whatever ownership the first call established
	if l.state == Held {
		return nil
	}

	markers, err := listMarkers(l.targetDir)
	if err != nil {
		l.log.Warning("Failed to list lock markers in %s: %v", l.targetDir, err)
	}

	var conflict *Marker
	for i := range markers {
		if markers[i].Path == l.path {
			l.log.Info("Lock %s already present for owner %s, reentering", l.path, l.owner)
			l.owns = false
			l.state = Held
			return nil
		}
		if conflict == nil {
			conflict = &markers[i]
		}
	}

	if conflict != nil {
		l.owns = false
		l.state = Refused
		return errors.NewLockHeldError(l.targetDir, conflict.Path, conflict.Owner)
	}

	if l.beforeCreate != nil {
		l.beforeCreate()
	}
	l.createMarker()

	l.owns = true
	l.state = Held
	return nil
}

// createMarker creates the marker directory. It never fails the acquisition:
// losing a race and unexpected filesystem errors are only logged.
func (l *DirLock) createMarker() {
	if err := os.MkdirAll(l.targetDir, 0o755); err != nil {
		l.log.Warning("Failed to create lock target %s: %v", l.targetDir, err)
	}

	err := os.Mkdir(l.path, 0o755)
	switch {
	case err == nil:
		l.log.Info("Created lock %s", l.path)
	case errors.Is(err, fs.ErrExist):
		l.log.Info("Lock %s appeared before it could be created: %v", l.path, err)
	default:
		l.log.Warning("Failed to create lock %s, continuing without it: %v", l.path, err)
	}
}

// Release removes the marker and then the target directory if this instance
// created the marker. The target is only removed when empty. Release never
// fails; removal errors are logged. Calling it more than once is a no-op.
func (l *DirLock) Release() {
	if l.state != Held {
		return
	}
	l.state = Released

	if !l.owns {
		return
	}
	l.owns = false

	for _, path := range []string{l.path, l.targetDir} {
		err := removeDir(path)
		switch {
		case err == nil:
			l.log.Info("Removed %s", path)
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTEMPTY), errors.Is(err, syscall.EEXIST):
			l.log.Info("Left %s in place: %v", path, err)
		default:
			l.log.Warning("Failed to remove %s: %v", path, err)
		}
	}
}

// TargetDir returns the protected directory.
func (l *DirLock) TargetDir() string { return l.targetDir }

// Owner returns the owner identity.
func (l *DirLock) Owner() string { return l.owner }

// Path returns the marker directory this instance creates.
func (l *DirLock) Path() string { return l.path }

// Pattern returns the glob pattern matching any marker of the target.
func (l *DirLock) Pattern() string { return l.pattern }

// Owns reports whether this instance is responsible for removing the marker.
func (l *DirLock) Owns() bool { return l.owns }

// State returns the lifecycle state.
func (l *DirLock) State() State { return l.state }

// WithLock acquires the lock over targetDir, runs fn, and releases the lock
// on every exit path, including a panic in fn. fn is not run when the lock is
// held by someone else; the *errors.LockHeldError is returned instead.
// Otherwise fn's error is returned unchanged.
func WithLock(ctx context.Context, targetDir string, fn func(ctx context.Context) error, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := New(targetDir, opts...)
	if err := l.Acquire(); err != nil {
		return err
	}
	defer l.Release()

	return fn(ctx)
}

// removeDir removes path only if it is an empty directory.
func removeDir(path string) error {
	if err := syscall.Rmdir(path); err != nil {
		return &fs.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

func markerName(owner string) string {
	return constants.LockPrefix + "-" + owner
}

func isMarkerName(name string) bool {
	return strings.HasPrefix(name, constants.LockPrefix+"-")
}
