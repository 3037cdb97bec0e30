package organize

import "time"

// DefaultLayout places files under year/month subdirectories.
// The layout is a Go time format string applied to each file's creation
// timestamp to produce the destination subpath.
const DefaultLayout = "2006/01"

// DefaultTypes is the extension allowlist used when none is configured.
var DefaultTypes = []string{"jpg", "dng", "arw"}

// Request describes a single organize invocation: where to scan, where the
// date-organized hierarchy lives, and which files qualify. It is owned by
// the invocation and not retained afterward.
type Request struct {
	// Source is the directory scanned for files to organize.
	Source string

	// DestinationRoot is the directory under which the date-based
	// hierarchy is created.
	DestinationRoot string

	// Types is the case-insensitive set of file suffixes eligible for
	// organization.
	Types []string

	// Layout is the time format applied to creation timestamps to build
	// destination subdirectories. Empty means DefaultLayout.
	Layout string

	// Recursive includes files in subdirectories of Source.
	Recursive bool

	// DryRun computes the plan without mutating the filesystem.
	DryRun bool

	// Copy duplicates files into the destination instead of moving them,
	// leaving the source directory untouched.
	Copy bool
}

// FileEntry is a discovered source file paired with its creation timestamp.
// Entries are computed fresh each run and never persisted.
type FileEntry struct {
	Path      *Path
	CreatedAt time.Time
}

// Move maps one source file onto its computed destination path.
type Move struct {
	Entry       FileEntry
	Destination string
}

// Plan is the computed outcome of scanning a source directory: the moves to
// perform and the destination directories they require. Each matching file
// maps to exactly one destination; files outside the allowlist are listed
// in Skipped and left in place.
type Plan struct {
	Moves       []Move
	Directories []string
	Skipped     []string
}

// Empty reports whether the plan contains no moves.
func (p *Plan) Empty() bool {
	return len(p.Moves) == 0
}
