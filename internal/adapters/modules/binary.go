package modules

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.ModuleRegistry = (*BinaryRegistry)(nil)

// BinaryRegistry derives the loaded-module set from the build metadata
// embedded in the running executable. An ahead-of-time-linked program has no
// per-module source files at runtime, so the main module maps to the
// executable itself; a changed binary on disk is the signal that the code
// backing the process is stale. Dependency modules carry no file and are
// skipped by the scanner.
type BinaryRegistry struct {
	once sync.Once
	refs []ports.ModuleRef
}

// NewBinaryRegistry creates a registry over the current executable.
func NewBinaryRegistry() *BinaryRegistry {
	return &BinaryRegistry{}
}

// Modules returns the main module, backed by the executable path, plus one
// file-less ref per dependency module.
func (r *BinaryRegistry) Modules() []ports.ModuleRef {
	r.once.Do(func() {
		r.refs = buildBinaryRefs()
	})
	return append([]ports.ModuleRef(nil), r.refs...)
}

func buildBinaryRefs() []ports.ModuleRef {
	mainName := "main"
	var deps []*debug.Module
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			mainName = info.Main.Path
		}
		deps = info.Deps
	}

	var exe string
	if path, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			exe = resolved
		} else {
			exe = path
		}
	}

	main := NewRef(mainName, exe)
	refs := []ports.ModuleRef{main}
	for _, dep := range deps {
		ref := NewRef(dep.Path+"@"+dep.Version, "")
		main.AddImports(ref)
		refs = append(refs, ref)
	}
	return refs
}
