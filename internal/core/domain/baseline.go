// Package domain contains the core types for file modification tracking.
package domain

import (
	"sort"
	"sync"
	"time"
)

// TrackedFile is a single file known to the baseline.
type TrackedFile struct {
	// Path is the absolute path of the file, always in its source form.
	Path string
	// LastModified is the modification time recorded when the file was tracked.
	LastModified time.Time
}

// ChangeSet is the ordered list of tracked paths whose on-disk state no
// longer matches the baseline.
type ChangeSet []string

// Baseline maps file paths to the modification time they had when they were
// first scanned or tracked. Entries are only ever inserted or overwritten,
// never removed.
type Baseline struct {
	mu    sync.RWMutex
	files map[string]time.Time
}

// NewBaseline creates an empty baseline.
func NewBaseline() *Baseline {
	return &Baseline{files: make(map[string]time.Time)}
}

// Put records the modification time for a path, overwriting any prior value.
func (b *Baseline) Put(path string, modified time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[path] = modified
}

// ModTime returns the recorded modification time for a path.
func (b *Baseline) ModTime(path string) (time.Time, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.files[path]
	return t, ok
}

// Contains reports whether the path is already tracked.
func (b *Baseline) Contains(path string) bool {
	_, ok := b.ModTime(path)
	return ok
}

// Len returns the number of tracked paths.
func (b *Baseline) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.files)
}

// Paths returns all tracked paths in lexicographic order.
func (b *Baseline) Paths() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Files returns a copy of all entries in lexicographic path order.
func (b *Baseline) Files() []TrackedFile {
	b.mu.RLock()
	defer b.mu.RUnlock()
	files := make([]TrackedFile, 0, len(b.files))
	for p, t := range b.files {
		files = append(files, TrackedFile{Path: p, LastModified: t})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

// Snapshot returns a copy of the underlying path to modification time map.
func (b *Baseline) Snapshot() map[string]time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]time.Time, len(b.files))
	for p, t := range b.files {
		out[p] = t
	}
	return out
}
