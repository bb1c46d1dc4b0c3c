package lock

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bashhack/pkglock/internal/constants"
	"github.com/bashhack/pkglock/internal/errors"
)

// Marker is a lock marker found inside a target directory.
type Marker struct {
	Path  string
	Owner string
}

// listMarkers returns the markers in targetDir sorted by name. A missing
// targetDir has no markers.
func listMarkers(targetDir string) ([]Marker, error) {
	entries, err := os.ReadDir(targetDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var markers []Marker
	for _, entry := range entries {
		name := entry.Name()
		if !isMarkerName(name) {
			continue
		}
		markers = append(markers, Marker{
			Path:  filepath.Join(targetDir, name),
			Owner: strings.TrimPrefix(name, constants.LockPrefix+"-"),
		})
	}
	return markers, nil
}

// Markers lists the lock markers currently present in targetDir.
func Markers(targetDir string) ([]Marker, error) {
	markers, err := listMarkers(targetDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list lock markers in %s", targetDir)
	}
	return markers, nil
}

// Clear removes every lock marker in targetDir, whoever owns it, and returns
// the removed paths. It is meant for clearing stale locks by hand. A failure
// on one marker does not stop the others; all failures are joined.
func Clear(targetDir string) ([]string, error) {
	markers, err := Markers(targetDir)
	if err != nil {
		return nil, err
	}

	var removed []string
	var errs []error
	for _, m := range markers {
		if err := os.RemoveAll(m.Path); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to remove %s", m.Path))
			continue
		}
		removed = append(removed, m.Path)
	}
	return removed, errors.Join(errs...)
}
