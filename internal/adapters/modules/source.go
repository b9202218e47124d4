package modules

import (
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/tools/go/packages"
)

var _ ports.ModuleRegistry = (*SourceRegistry)(nil)

// SourceRegistry enumerates the Go source files that make up the program,
// loaded from the package graph on disk. It is the development-mode strategy:
// a server run from a source checkout tracks every file it was built from,
// not just the linked binary.
type SourceRegistry struct {
	dir      string
	patterns []string

	mu     sync.Mutex
	loaded bool
	refs   []ports.ModuleRef
	err    error
}

// NewSourceRegistry creates a registry over the packages matched by the given
// patterns, resolved relative to dir. With no patterns, "./..." is used.
func NewSourceRegistry(dir string, patterns ...string) *SourceRegistry {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	return &SourceRegistry{dir: dir, patterns: patterns}
}

// Load materializes the package graph. It runs once; later calls return the
// first result.
func (r *SourceRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *SourceRegistry) loadLocked() error {
	if r.loaded {
		return r.err
	}
	r.loaded = true

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps,
		Dir:  r.dir,
	}
	pkgs, err := packages.Load(cfg, r.patterns...)
	if err != nil {
		r.err = zerr.With(zerr.Wrap(domain.ErrPackageLoadFailed, err.Error()), "dir", r.dir)
		return r.err
	}
	r.refs = buildSourceRefs(pkgs)
	return nil
}

// Modules returns one ref per Go source file in the loaded graph. A registry
// that failed to load reports no modules; absence is data, not an error.
func (r *SourceRegistry) Modules() []ports.ModuleRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.loadLocked()
	return append([]ports.ModuleRef(nil), r.refs...)
}

// buildSourceRefs flattens a package graph into per-file module refs. The
// first file of each package anchors it: the anchor imports the package's
// sibling files and the anchors of imported packages, and every sibling
// imports the anchor back. Files of one package reference each other in
// memory, so the edges are deliberately cyclic.
func buildSourceRefs(pkgs []*packages.Package) []ports.ModuleRef {
	anchors := make(map[string]*Ref)
	var all []ports.ModuleRef

	var visit func(pkg *packages.Package) *Ref
	visit = func(pkg *packages.Package) *Ref {
		if anchor, seen := anchors[pkg.ID]; seen {
			return anchor
		}
		if len(pkg.GoFiles) == 0 {
			anchors[pkg.ID] = nil
			return nil
		}

		anchor := NewRef(pkg.GoFiles[0], pkg.GoFiles[0])
		anchors[pkg.ID] = anchor
		all = append(all, anchor)

		for _, file := range pkg.GoFiles[1:] {
			sibling := NewRef(file, file)
			sibling.AddImports(anchor)
			anchor.AddImports(sibling)
			all = append(all, sibling)
		}

		for _, imp := range pkg.Imports {
			if dep := visit(imp); dep != nil {
				anchor.AddImports(dep)
			}
		}
		return anchor
	}

	for _, pkg := range pkgs {
		visit(pkg)
	}
	return all
}
