package stale

import "sync"

var (
	defaultOnce    sync.Once
	defaultService *Service
)

// Default returns the shared Service backing the package-level functions,
// built on first use from the default adapters.
func Default() *Service {
	defaultOnce.Do(func() {
		defaultService = NewService()
	})
	return defaultService
}

// Files returns the process-wide baseline of the default Service.
func Files() *Baseline { return Default().Files() }

// ModuleFiles scans ref and its transitive dependencies with the default
// Service.
func ModuleFiles(ref ModuleRef, baseline *Baseline) *Baseline {
	return Default().ModuleFiles(ref, baseline)
}

// Track merges extra paths into the default baseline.
func Track(paths ...string) *Baseline { return Default().Track(paths...) }

// TrackGlob expands the patterns and tracks the matches in the default
// baseline.
func TrackGlob(patterns ...string) error { return Default().TrackGlob(patterns...) }

// Modified returns the tracked paths that changed since the default
// baseline.
func Modified() ChangeSet { return Default().Modified() }

// InstallHook registers the change-check signal handler on the default
// Service.
func InstallHook(opts ...HookOption) error { return Default().InstallHook(opts...) }

// FromConfig loads a settings file into the default Service.
func FromConfig(path string) error { return Default().FromConfig(path) }

// Reset discards the default Service's cached baseline. Intended for test
// harnesses.
func Reset() { Default().Reset() }
