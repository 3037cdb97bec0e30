package organize

import (
	"path/filepath"
	"sort"
	"strings"
)

// ExtensionFilter is a case-insensitive allowlist of file suffixes.
// Entries may be given with or without a leading dot; blank entries are
// skipped. Files without an extension never match.
type ExtensionFilter struct {
	exts map[string]struct{}
}

// NewExtensionFilter creates an ExtensionFilter from raw suffix strings.
func NewExtensionFilter(types []string) *ExtensionFilter {
	exts := make(map[string]struct{}, len(types))
	for _, raw := range types {
		ext := strings.ToLower(strings.TrimSpace(raw))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		exts[ext] = struct{}{}
	}
	return &ExtensionFilter{exts: exts}
}

// Match reports whether the given filename carries an allowed suffix.
func (f *ExtensionFilter) Match(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	_, ok := f.exts[strings.ToLower(ext)]
	return ok
}

// Empty reports whether the filter contains no suffixes at all.
func (f *ExtensionFilter) Empty() bool {
	return len(f.exts) == 0
}

// Types returns the allowed suffixes, sorted, without leading dots.
func (f *ExtensionFilter) Types() []string {
	types := make([]string, 0, len(f.exts))
	for ext := range f.exts {
		types = append(types, ext)
	}
	sort.Strings(types)
	return types
}
