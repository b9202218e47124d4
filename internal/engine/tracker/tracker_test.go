package tracker_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/modules"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/engine/scanner"
	"go.trai.ch/stale/internal/engine/tracker"
)

// newTracker builds a tracker over an empty module registry and the real
// filesystem.
func newTracker(refs ...*modules.Ref) *tracker.Tracker {
	registry := modules.NewStaticRegistry()
	for _, ref := range refs {
		registry.Add(ref)
	}
	stater := fs.NewStater()
	sc := scanner.NewScanner(stater)
	return tracker.New(scanner.NewApp(sc, registry), sc, stater)
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	return path
}

func touch(t *testing.T, path string, stamp time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestTracker_TrackThenModified_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.ini")

	tr := newTracker()
	tr.Track(path)

	assert.Empty(t, tr.Modified(), "freshly tracked file must not report as changed")

	touch(t, path, time.Now().Add(time.Hour))
	assert.Equal(t, domain.ChangeSet{path}, tr.Modified())
}

func TestTracker_Modified_StableUnderPolling(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.ini")

	tr := newTracker()
	tr.Track(path)
	touch(t, path, time.Now().Add(time.Hour))

	// The check never acknowledges: both polls report the change.
	assert.Equal(t, domain.ChangeSet{path}, tr.Modified())
	assert.Equal(t, domain.ChangeSet{path}, tr.Modified())
}

func TestTracker_Modified_DeletionCountsAsChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "template.tmpl")

	tr := newTracker()
	tr.Track(path)
	require.NoError(t, os.Remove(path))

	assert.Equal(t, domain.ChangeSet{path}, tr.Modified())
}

func TestTracker_Track_MissingPathSilentlySkipped(t *testing.T) {
	tr := newTracker()
	baseline := tr.Track(filepath.Join(t.TempDir(), "never-existed"))

	assert.Zero(t, baseline.Len())
	assert.Empty(t, tr.Modified())
}

func TestTracker_Track_OverwritesBaselineEntry(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.ini")

	tr := newTracker()
	tr.Track(path)
	touch(t, path, time.Now().Add(time.Hour))
	require.NotEmpty(t, tr.Modified())

	// Re-tracking re-baselines the file.
	tr.Track(path)
	assert.Empty(t, tr.Modified())
}

func TestTracker_Track_EstablishesBaselineImplicitly(t *testing.T) {
	dir := t.TempDir()
	modFile := writeFile(t, dir, "loaded.lua")
	extra := writeFile(t, dir, "extra.txt")

	tr := newTracker(modules.NewRef("loaded", modFile))
	baseline := tr.Track(extra)

	// The first Track ran the process-wide scan too.
	assert.True(t, baseline.Contains(modFile))
	assert.True(t, baseline.Contains(extra))
}

func TestTracker_TrackGlob(t *testing.T) {
	dir := t.TempDir()
	one := writeFile(t, dir, "a.tmpl")
	two := writeFile(t, dir, "b.tmpl")
	writeFile(t, dir, "ignored.txt")

	tr := newTracker()
	require.NoError(t, tr.TrackGlob(filepath.Join(dir, "*.tmpl")))

	baseline := tr.Track()
	assert.True(t, baseline.Contains(one))
	assert.True(t, baseline.Contains(two))
	assert.Equal(t, 2, baseline.Len())
}

func TestTracker_TrackGlob_NoMatchesIsFine(t *testing.T) {
	tr := newTracker()
	require.NoError(t, tr.TrackGlob(filepath.Join(t.TempDir(), "*.tmpl")))
	assert.Zero(t, tr.Track().Len())
}

func TestTracker_TrackGlob_MalformedPattern(t *testing.T) {
	tr := newTracker()
	err := tr.TrackGlob("[")
	assert.ErrorIs(t, err, domain.ErrInvalidGlobPattern)
}

func TestTracker_Modified_Ordered(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.ini")
	a := writeFile(t, dir, "a.ini")
	c := writeFile(t, dir, "c.ini")

	tr := newTracker()
	tr.Track(b, a, c)

	future := time.Now().Add(time.Hour)
	touch(t, c, future)
	touch(t, a, future)
	touch(t, b, future)

	assert.Equal(t, domain.ChangeSet{a, b, c}, tr.Modified())
}
