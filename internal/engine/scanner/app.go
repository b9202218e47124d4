package scanner

import (
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
)

// App owns the process-wide baseline: the files backing every module loaded
// at the time of the first scan. The scan runs once; later calls return the
// cached baseline unchanged so it keeps describing the world as of
// application start.
type App struct {
	scanner  *Scanner
	registry ports.ModuleRegistry

	mu       sync.Mutex
	baseline *domain.Baseline
	scanned  bool
}

// NewApp creates the baseline service over the given registry.
func NewApp(scanner *Scanner, registry ports.ModuleRegistry) *App {
	return &App{scanner: scanner, registry: registry}
}

// Files returns the process-wide baseline, scanning every loaded module on
// the first call. The registry hands back a snapshot, so modules loaded or
// unloaded concurrently with the scan are tolerated; they are picked up or
// missed best-effort, never failed on.
func (a *App) Files() *domain.Baseline {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.scanned {
		return a.baseline
	}
	a.scanned = true
	a.baseline = domain.NewBaseline()
	for _, ref := range a.registry.Modules() {
		a.scanner.Scan(ref, a.baseline)
	}
	return a.baseline
}

// Reset discards the cached baseline so the next Files call re-scans. Only
// test harnesses should need this; the baseline is meant to live for the
// process lifetime.
func (a *App) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.baseline = nil
	a.scanned = false
}
