package fs

import (
	"fmt"
	"os"
	"time"

	"po-go/internal/organize"
)

// StatCreationTimes derives creation timestamps from filesystem metadata.
// It prefers the platform birth time when stat data carries one and falls
// back to the modification time, the best available proxy on filesystems
// that do not record creation.
type StatCreationTimes struct{}

// NewStatCreationTimes creates a stat-based creation time provider.
func NewStatCreationTimes() *StatCreationTimes {
	return &StatCreationTimes{}
}

// CreationTime returns the creation timestamp for the given path.
func (p *StatCreationTimes) CreationTime(path *organize.Path) (time.Time, error) {
	info := path.Info()
	if info == nil {
		fresh, err := os.Stat(path.String())
		if err != nil {
			return time.Time{}, fmt.Errorf("stat %s: %w", path.String(), err)
		}
		info = fresh
	}
	if birth, ok := birthTime(info); ok {
		return birth, nil
	}
	return info.ModTime(), nil
}

// Compile-time check that StatCreationTimes implements the
// organize.CreationTimeProvider interface
var _ organize.CreationTimeProvider = (*StatCreationTimes)(nil)
