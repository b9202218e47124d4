// Package stale detects when files backing a running process's loaded code,
// plus user-registered extras such as templates or config files, have been
// modified since the process started. It ties that check to an inbound OS
// signal: on SIGHUP (by default) the tracked files are re-stated and, if any
// changed, the process re-signals itself (SIGTERM by default) or invokes a
// callback so a supervisor can restart it gracefully.
//
// The simplest usage installs the hook with the defaults:
//
//	if err := stale.InstallHook(); err != nil {
//		log.Fatal(err)
//	}
//	stale.TrackGlob("templates/*.tmpl", "config.ini")
//
// What counts as "the files backing the loaded code" is pluggable: the
// default registry maps the program to its executable, a SourceRegistry
// tracks every Go file the program was built from, and a StaticRegistry lets
// embedders register script modules by hand.
package stale

import (
	"go.trai.ch/stale/internal/adapters/config"
	"go.trai.ch/stale/internal/adapters/fs"
	"go.trai.ch/stale/internal/adapters/logger"
	"go.trai.ch/stale/internal/adapters/modules"
	"go.trai.ch/stale/internal/adapters/signals"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/stale/internal/engine/hook"
	"go.trai.ch/stale/internal/engine/scanner"
	"go.trai.ch/stale/internal/engine/tracker"
)

// Re-exported core types.
type (
	// Baseline is the store of tracked paths and their recorded
	// modification times.
	Baseline = domain.Baseline
	// TrackedFile is one entry of the baseline.
	TrackedFile = domain.TrackedFile
	// ChangeSet is the ordered list of changed paths.
	ChangeSet = domain.ChangeSet
	// ModuleRef is a handle to a loaded unit of code.
	ModuleRef = ports.ModuleRef
	// ModuleRegistry enumerates the modules loaded in the process.
	ModuleRegistry = ports.ModuleRegistry
	// Ref is a caller-constructed module reference.
	Ref = modules.Ref
	// HookOption configures InstallHook.
	HookOption = hook.Option
)

// Sentinel errors.
var (
	// ErrInvalidSignalName reports an unresolvable signal specifier.
	ErrInvalidSignalName = domain.ErrInvalidSignalName
	// ErrInvalidGlobPattern reports a malformed track pattern.
	ErrInvalidGlobPattern = domain.ErrInvalidGlobPattern
	// ErrConfigNotFound reports that FromConfig found no settings file.
	ErrConfigNotFound = domain.ErrConfigNotFound
)

// Hook option constructors, re-exported from the hook engine.
var (
	// WithTrigger sets the signal the hook listens for (default SIGHUP).
	WithTrigger = hook.WithTrigger
	// WithReaction sets the signal raised when files changed (default SIGTERM).
	WithReaction = hook.WithReaction
	// WithReactionFunc reacts by calling fn with the changed files.
	WithReactionFunc = hook.WithReactionFunc
	// WithVerbose announces the action through the logger.
	WithVerbose = hook.WithVerbose
	// WithVerboseFunc announces the action through fn.
	WithVerboseFunc = hook.WithVerboseFunc
)

// Registry constructors.

// NewRef creates a module reference for a StaticRegistry.
func NewRef(name, file string) *Ref { return modules.NewRef(name, file) }

// NewStaticRegistry creates a caller-maintained registry.
func NewStaticRegistry(refs ...ModuleRef) ModuleRegistry {
	return modules.NewStaticRegistry(refs...)
}

// NewBinaryRegistry creates the build-metadata registry over the running
// executable. This is the default.
func NewBinaryRegistry() ModuleRegistry { return modules.NewBinaryRegistry() }

// NewSourceRegistry creates the registry over the Go package graph rooted at
// dir. With no patterns, "./..." is used.
func NewSourceRegistry(dir string, patterns ...string) ModuleRegistry {
	return modules.NewSourceRegistry(dir, patterns...)
}

// Service bundles a baseline, tracker and signal hook over one set of
// collaborators. The package-level functions delegate to a lazily built
// default Service; construct your own to scope tracking in tests or to swap
// in a different registry.
type Service struct {
	scanner *scanner.Scanner
	app     *scanner.App
	tracker *tracker.Tracker
	hook    *hook.Hook
	loader  *config.Loader
}

type serviceConfig struct {
	registry ports.ModuleRegistry
	stater   ports.FileStater
	signals  ports.SignalDispatcher
	logger   ports.Logger
	scanOpts []scanner.Option
}

// ServiceOption configures NewService.
type ServiceOption func(*serviceConfig)

// WithRegistry replaces the default binary registry.
func WithRegistry(registry ModuleRegistry) ServiceOption {
	return func(c *serviceConfig) { c.registry = registry }
}

// WithStater replaces the filesystem stater.
func WithStater(stater ports.FileStater) ServiceOption {
	return func(c *serviceConfig) { c.stater = stater }
}

// WithDispatcher replaces the signal dispatcher.
func WithDispatcher(dispatcher ports.SignalDispatcher) ServiceOption {
	return func(c *serviceConfig) { c.signals = dispatcher }
}

// WithLogger replaces the logger.
func WithLogger(log ports.Logger) ServiceOption {
	return func(c *serviceConfig) { c.logger = log }
}

// WithArtifactSource registers an extra compiled-artifact extension and its
// source form for the scanner.
func WithArtifactSource(artifactExt, sourceExt string) ServiceOption {
	return func(c *serviceConfig) {
		c.scanOpts = append(c.scanOpts, scanner.WithArtifactSource(artifactExt, sourceExt))
	}
}

// NewService creates a Service with the default adapters, overridable per
// option.
func NewService(opts ...ServiceOption) *Service {
	cfg := serviceConfig{
		registry: modules.NewBinaryRegistry(),
		stater:   fs.NewStater(),
		signals:  signals.NewDispatcher(),
		logger:   logger.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := scanner.NewScanner(cfg.stater, cfg.scanOpts...)
	app := scanner.NewApp(sc, cfg.registry)
	tr := tracker.New(app, sc, cfg.stater)

	return &Service{
		scanner: sc,
		app:     app,
		tracker: tr,
		hook:    hook.New(tr, cfg.signals, cfg.logger),
		loader:  config.NewLoader(cfg.logger),
	}
}

// Files returns the process-wide baseline, scanning every loaded module on
// the first call and returning the same store on every later one.
func (s *Service) Files() *Baseline {
	return s.app.Files()
}

// ModuleFiles scans ref and its transitive dependencies. A nil baseline
// builds a fresh store; a non-nil one is extended and returned.
func (s *Service) ModuleFiles(ref ModuleRef, baseline *Baseline) *Baseline {
	return s.scanner.Walk(ref, baseline)
}

// Track merges extra paths into the baseline. Missing paths are silently
// skipped.
func (s *Service) Track(paths ...string) *Baseline {
	return s.tracker.Track(paths...)
}

// TrackGlob expands the patterns and tracks the matches.
func (s *Service) TrackGlob(patterns ...string) error {
	return s.tracker.TrackGlob(patterns...)
}

// Modified returns the tracked paths that changed since the baseline, in
// lexicographic order. The baseline is not updated by the call.
func (s *Service) Modified() ChangeSet {
	return s.tracker.Modified()
}

// InstallHook registers the change-check signal handler. See the hook
// options for the trigger, reaction and verbosity knobs.
func (s *Service) InstallHook(opts ...HookOption) error {
	return s.hook.Install(opts...)
}

// FromConfig loads a settings file, tracks its globs and installs the hook
// it describes. An empty path searches upward from the working directory for
// stale.yaml.
func (s *Service) FromConfig(path string) error {
	if path == "" {
		found, err := s.loader.Find(".")
		if err != nil {
			return err
		}
		path = found
	}

	settings, err := s.loader.Load(path)
	if err != nil {
		return err
	}
	if err := s.TrackGlob(settings.Track...); err != nil {
		return err
	}

	opts := []HookOption{
		WithTrigger(settings.Hook.Trigger),
		WithReaction(settings.Hook.Reaction),
	}
	if settings.Hook.Verbose {
		opts = append(opts, WithVerbose())
	}
	return s.InstallHook(opts...)
}

// Reset discards the cached baseline so the next scan starts over. Intended
// for test harnesses.
func (s *Service) Reset() {
	s.app.Reset()
}
