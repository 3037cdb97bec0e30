package organize

import (
	"io/fs"
	"time"
)

// FilesystemManager provides an interface for filesystem operations.
// It abstracts file access and mutation to enable testing without touching
// the real filesystem.
type FilesystemManager interface {
	// Resolve validates a raw path and returns a Path object.
	// It resolves the path to an absolute path, stats it, and validates
	// it's a regular file or directory (not a symlink, device, etc.).
	Resolve(rawPath string) (*Path, error)

	// FindFiles discovers regular files under the given directory path.
	// When recursive is true, files in subdirectories are included.
	FindFiles(path *Path, recursive bool) ([]*Path, error)

	// Stat returns fresh file info for a path.
	// Unlike path.Info() which returns cached info from when the path was
	// resolved, this always fetches current info from the filesystem.
	Stat(path *Path) (fs.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	// It succeeds if the directory already exists.
	MkdirAll(dir string) error

	// Move relocates a file to dst, preserving its content.
	// It must refuse to overwrite an existing destination.
	Move(src *Path, dst string) error

	// Copy duplicates a file at dst, leaving the source in place.
	// It must refuse to overwrite an existing destination.
	Copy(src *Path, dst string) error
}

// CreationTimeProvider reports when a file was created.
// The stat-based implementation uses filesystem birth time where the
// platform records it, falling back to modification time. A provider that
// reads embedded capture metadata can be swapped in later without touching
// the scan and move logic.
type CreationTimeProvider interface {
	CreationTime(path *Path) (time.Time, error)
}
