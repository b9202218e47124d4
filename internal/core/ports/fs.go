package ports

import "time"

// FileStater reports the last-modified time of a path.
//
//go:generate mockgen -source=fs.go -destination=mocks/mock_fs.go -package=mocks
type FileStater interface {
	// ModTime returns the modification time of path. The second return is
	// false when the path does not exist; any other stat failure is folded
	// into "absent" as a deliberate simplification.
	ModTime(path string) (time.Time, bool)
}
