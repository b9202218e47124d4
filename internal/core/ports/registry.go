// Package ports defines the interfaces between the tracking engine and its
// host collaborators.
package ports

// ModuleRef is an opaque handle to a loaded unit of code. The engine only
// derives two facts from it: an optional backing file path and its direct
// dependencies as currently materialized in the process.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ModuleRef interface {
	// Name returns a stable identity for the module, used to deduplicate
	// traversal over cyclic dependency graphs.
	Name() string

	// SourceFile returns the file path backing the module, if it has one.
	// The path may point at a compiled artifact; normalization to the source
	// form is the scanner's job.
	SourceFile() (string, bool)

	// Imports returns the module's direct dependencies. The slice reflects
	// what is loaded in memory right now, not a static analysis, and may
	// contain cycles.
	Imports() []ModuleRef
}

// ModuleRegistry enumerates the modules currently loaded in the process.
type ModuleRegistry interface {
	// Modules returns a snapshot of the loaded modules. Implementations must
	// tolerate the underlying registry growing or shrinking concurrently;
	// returning a point-in-time copy satisfies that.
	Modules() []ModuleRef
}
