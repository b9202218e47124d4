// Package tracker merges extra files into the baseline and computes the set
// of tracked files that changed since it was established.
package tracker

import (
	"path/filepath"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/scanner"
	"go.trai.ch/zerr"
)

// pathRef adapts a bare file path to the ModuleRef shape so tracked extras
// go through the same normalization and not-found policy as module files.
type pathRef string

func (p pathRef) Name() string { return string(p) }

func (p pathRef) SourceFile() (string, bool) { return string(p), true }

func (p pathRef) Imports() []ports.ModuleRef { return nil }

var _ ports.ModuleRef = pathRef("")

// Tracker extends the process baseline with user-supplied files and diffs the
// baseline against the live filesystem.
type Tracker struct {
	app     *scanner.App
	scanner *scanner.Scanner
	stater  ports.FileStater
}

// New creates a tracker over the process baseline service.
func New(app *scanner.App, sc *scanner.Scanner, stater ports.FileStater) *Tracker {
	return &Tracker{app: app, scanner: sc, stater: stater}
}

// Track merges the given paths into the baseline, establishing it first if no
// scan has run yet. Paths that do not currently exist on disk are silently
// skipped, so a pre-expanded glob with zero matches is fine. Already-tracked
// paths are re-stated and overwritten. Returns the baseline for chaining.
func (t *Tracker) Track(paths ...string) *domain.Baseline {
	baseline := t.app.Files()
	for _, path := range paths {
		t.scanner.Scan(pathRef(path), baseline)
	}
	return baseline
}

// TrackGlob expands each pattern and tracks the matches. Only a malformed
// pattern is an error; a pattern matching nothing is not.
func (t *Tracker) TrackGlob(patterns ...string) error {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidGlobPattern, err.Error()), "pattern", pattern)
		}
		t.Track(matches...)
	}
	return nil
}

// Modified re-stats every tracked path and returns, in lexicographic order,
// those whose modification time no longer equals the baseline value. A path
// missing from disk counts as changed: deletion is modification. The baseline
// itself is never updated by the check, so repeated calls keep reporting the
// same changes.
func (t *Tracker) Modified() domain.ChangeSet {
	baseline := t.app.Files()
	var changed domain.ChangeSet
	for _, file := range baseline.Files() {
		current, ok := t.stater.ModTime(file.Path)
		if !ok || !current.Equal(file.LastModified) {
			changed = append(changed, file.Path)
		}
	}
	return changed
}
