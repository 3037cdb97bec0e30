//go:build darwin

package fs

import (
	"io/fs"
	"syscall"
	"time"
)

// birthTime extracts the file birth time, which APFS and HFS+ record.
func birthTime(info fs.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec), true
}
