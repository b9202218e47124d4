// Package modules provides ModuleRegistry strategies. What counts as a
// "loaded module" does not map 1:1 onto a compiled program, so the registry
// is pluggable: a caller-built graph for embedded interpreters and template
// engines, build metadata for the running binary, or the Go package graph
// loaded from source.
package modules

import (
	"sync"

	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.ModuleRef = (*Ref)(nil)

// Ref is a plain ModuleRef backed by caller-supplied data.
type Ref struct {
	name    string
	file    string
	imports []ports.ModuleRef
}

// NewRef creates a module reference. An empty file means the module has no
// backing file and will be skipped by the scanner.
func NewRef(name, file string) *Ref {
	return &Ref{name: name, file: file}
}

// AddImports appends direct dependencies. Calling this after the refs are
// cross-linked is how cyclic graphs are built.
func (r *Ref) AddImports(deps ...ports.ModuleRef) *Ref {
	r.imports = append(r.imports, deps...)
	return r
}

// Name returns the module identity.
func (r *Ref) Name() string { return r.name }

// SourceFile returns the backing file path, if any.
func (r *Ref) SourceFile() (string, bool) {
	if r.file == "" {
		return "", false
	}
	return r.file, true
}

// Imports returns the module's direct dependencies.
func (r *Ref) Imports() []ports.ModuleRef { return r.imports }

var _ ports.ModuleRegistry = (*StaticRegistry)(nil)

// StaticRegistry is a caller-maintained module registry. Modules can be added
// while a scan is in progress; Modules returns a point-in-time copy.
type StaticRegistry struct {
	mu   sync.RWMutex
	refs []ports.ModuleRef
}

// NewStaticRegistry creates a registry seeded with the given modules.
func NewStaticRegistry(refs ...ports.ModuleRef) *StaticRegistry {
	return &StaticRegistry{refs: append([]ports.ModuleRef(nil), refs...)}
}

// Add registers more loaded modules.
func (r *StaticRegistry) Add(refs ...ports.ModuleRef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs = append(r.refs, refs...)
}

// Modules returns a snapshot of the registered modules.
func (r *StaticRegistry) Modules() []ports.ModuleRef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ports.ModuleRef(nil), r.refs...)
}
