// Package fs implements the FileStater port over the local filesystem.
package fs

import (
	"os"
	"time"

	"go.trai.ch/stale/internal/core/ports"
)

var _ ports.FileStater = (*Stater)(nil)

// Stater reports modification times via os.Stat.
type Stater struct{}

// NewStater creates a new filesystem stater.
func NewStater() *Stater {
	return &Stater{}
}

// ModTime returns the modification time of path. Any stat failure, including
// permission errors, is reported as "absent"; a file that cannot be read is
// simply never tracked, and a tracked file that becomes unreadable reports as
// changed.
func (s *Stater) ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
