// Package wiring registers all Graft nodes for the library.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stale/internal/adapters/config"
	_ "go.trai.ch/stale/internal/adapters/fs"
	_ "go.trai.ch/stale/internal/adapters/logger"
	_ "go.trai.ch/stale/internal/adapters/modules"
	_ "go.trai.ch/stale/internal/adapters/signals"
	// Register engine nodes.
	_ "go.trai.ch/stale/internal/engine/hook"
	_ "go.trai.ch/stale/internal/engine/scanner"
	_ "go.trai.ch/stale/internal/engine/tracker"
)
