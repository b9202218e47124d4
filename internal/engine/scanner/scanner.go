// Package scanner builds the baseline of files backing the loaded modules.
package scanner

import (
	"strings"
	"time"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

// defaultArtifactSources maps byte-compiled artifact extensions to the source
// form they were compiled from. Covers the runtimes commonly embedded in a
// host process; registries for other runtimes extend the table via
// WithArtifactSource.
var defaultArtifactSources = map[string]string{
	".pyc":  ".py",
	".luac": ".lua",
	".elc":  ".el",
}

// Scanner records the files backing individual modules into a baseline.
type Scanner struct {
	stater    ports.FileStater
	artifacts map[string]string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithArtifactSource registers an extra artifact extension and the source
// extension it should be normalized to.
func WithArtifactSource(artifactExt, sourceExt string) Option {
	return func(s *Scanner) {
		s.artifacts[artifactExt] = sourceExt
	}
}

// NewScanner creates a scanner that stats paths through the given stater.
func NewScanner(stater ports.FileStater, opts ...Option) *Scanner {
	s := &Scanner{
		stater:    stater,
		artifacts: make(map[string]string, len(defaultArtifactSources)),
	}
	for ext, src := range defaultArtifactSources {
		s.artifacts[ext] = src
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan records the file backing ref into the baseline. A nil baseline creates
// a new one. Modules without a backing file, and paths that do not exist in
// either source or artifact form, are skipped without error: a module with no
// source on disk is an expected condition, not a failure.
func (s *Scanner) Scan(ref ports.ModuleRef, baseline *domain.Baseline) *domain.Baseline {
	if baseline == nil {
		baseline = domain.NewBaseline()
	}
	path, ok := ref.SourceFile()
	if !ok {
		return baseline
	}
	realPath, modified, ok := s.resolve(path)
	if !ok {
		return baseline
	}
	baseline.Put(realPath, modified)
	return baseline
}

// Walk scans ref and every module transitively reachable through its imports
// into the baseline. A visited set keyed on module identity guarantees
// termination: in-memory dependency graphs routinely contain cycles.
func (s *Scanner) Walk(ref ports.ModuleRef, baseline *domain.Baseline) *domain.Baseline {
	if baseline == nil {
		baseline = domain.NewBaseline()
	}
	s.walk(ref, baseline, make(map[string]struct{}))
	return baseline
}

func (s *Scanner) walk(ref ports.ModuleRef, baseline *domain.Baseline, visited map[string]struct{}) {
	if _, seen := visited[ref.Name()]; seen {
		return
	}
	visited[ref.Name()] = struct{}{}

	s.Scan(ref, baseline)
	for _, dep := range ref.Imports() {
		s.walk(dep, baseline, visited)
	}
}

// resolve normalizes a module path to its source form and stats it. When the
// path carries a recognized artifact extension the source file is preferred;
// the artifact itself is the fallback so compiled-only modules still get
// tracked.
func (s *Scanner) resolve(path string) (string, time.Time, bool) {
	for ext, src := range s.artifacts {
		if !strings.HasSuffix(path, ext) {
			continue
		}
		sourcePath := strings.TrimSuffix(path, ext) + src
		if modified, ok := s.stater.ModTime(sourcePath); ok {
			return sourcePath, modified, true
		}
		break
	}
	if modified, ok := s.stater.ModTime(path); ok {
		return path, modified, true
	}
	return "", time.Time{}, false
}
