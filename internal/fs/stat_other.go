//go:build !darwin

package fs

import (
	"io/fs"
	"time"
)

// Birth time is not available through os.Stat on most Unix filesystems, so
// the provider falls back to modification time.
func birthTime(fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
