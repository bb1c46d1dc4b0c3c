// Package lock provides a directory-based lock for serializing work on a
// shared directory across independently started processes.
//
// A lock is held when the target directory contains a marker directory named
//
//	<target>/.pkglock-<owner>
//
// where <owner> is the PID of the process that created it. Directory creation
// is atomic, so the filesystem itself is the only synchronization primitive.
// There is no polling, no waiting and no in-memory state shared between
// instances.
//
// # Usage
//
//	err := lock.WithLock(ctx, "/var/cache/pkgs", func(ctx context.Context) error {
//	    return refreshCache(ctx)
//	})
//	if errors.Is(err, pkgerrors.ErrLockHeld) {
//	    // another process is working on the cache
//	}
//
// Or step by step:
//
//	l := lock.New(dir, lock.WithLogger(log))
//	if err := l.Acquire(); err != nil {
//	    return err
//	}
//	defer l.Release()
//
// # Acquisition
//
// Acquire lists the markers in the target. A marker of another owner refuses
// the lock with a LockHeldError whose message starts with LOCKERROR. A marker
// of the same owner is a reentry: the lock is held, but the marker belongs to
// the earlier acquisition and is not removed by this one. With no marker, the
// instance creates its own.
//
// Listing and creation are two separate steps. Two processes that both list
// an empty target before either creates its marker will both hold the lock.
// This window is accepted; callers needing strict exclusion should use an
// OS-level lock instead.
//
// # Release
//
// Release removes the marker and then the target directory itself when it is
// empty. Release never fails. Filesystem errors during creation and removal
// are reported to the configured logger and otherwise ignored, so the lock
// never stands in the way of the work it protects.
//
// # Stale Locks
//
// A marker left by a crashed process is indistinguishable from an active one
// and keeps refusing acquisitions until it is removed, for example with Clear.
package lock
