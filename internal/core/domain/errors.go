package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidSignalName is returned when a signal specifier cannot be
	// resolved to a known OS signal. It is raised at hook installation time,
	// never at delivery time.
	ErrInvalidSignalName = zerr.New("invalid signal name")

	// ErrSignalDeliveryFailed is returned when raising a signal against the
	// current process fails.
	ErrSignalDeliveryFailed = zerr.New("failed to deliver signal")

	// ErrInvalidGlobPattern is returned when a tracked glob pattern is
	// syntactically malformed.
	ErrInvalidGlobPattern = zerr.New("invalid glob pattern")

	// ErrConfigNotFound is returned when no settings file exists in the
	// searched directories. Distinct from ErrConfigReadFailed so callers can
	// treat "no config anywhere" as optional rather than broken.
	ErrConfigNotFound = zerr.New("no settings file found")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPackageLoadFailed is returned when the source registry cannot load
	// the package graph.
	ErrPackageLoadFailed = zerr.New("failed to load package graph")
)
