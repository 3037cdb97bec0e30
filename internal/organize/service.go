package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Service is the orchestration layer that scans a source directory, plans
// destination paths from creation timestamps, and applies the resulting
// moves. It holds no state between invocations; the filesystem itself is
// the only thing mutated.
type Service struct {
	fsmgr  FilesystemManager
	ctimes CreationTimeProvider
	logger Logger
	clock  Clock
}

// NewService creates a new Service with the provided dependencies.
func NewService(fsmgr FilesystemManager, ctimes CreationTimeProvider, logger Logger, clock Clock) *Service {
	return &Service{
		fsmgr:  fsmgr,
		ctimes: ctimes,
		logger: logger,
		clock:  clock,
	}
}

// Plan scans the request's source directory and computes the moves it calls
// for. It performs no filesystem mutation, so a failed or dry-run plan
// leaves everything exactly as it was.
func (s *Service) Plan(req Request) (*Plan, error) {
	filter := NewExtensionFilter(req.Types)
	if filter.Empty() {
		return nil, fmt.Errorf("no file types specified")
	}
	if req.DestinationRoot == "" {
		return nil, fmt.Errorf("no destination root specified")
	}
	layout := req.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	src, err := s.fsmgr.Resolve(req.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, req.Source)
		}
		return nil, fmt.Errorf("resolving source: %w", err)
	}
	if !src.IsDir() {
		return nil, fmt.Errorf("source is not a directory: %s", src)
	}

	s.logger.Debug("scanning source", "path", src.String(), "types", filter.Types(), "recursive", req.Recursive)

	files, err := s.fsmgr.FindFiles(src, req.Recursive)
	if err != nil {
		return nil, fmt.Errorf("finding files: %w", err)
	}

	plan := &Plan{}
	dirs := make(map[string]struct{})

	for _, f := range files {
		name := filepath.Base(f.String())
		if !filter.Match(name) {
			s.logger.Debug("skipping file outside allowlist", "path", f.String())
			plan.Skipped = append(plan.Skipped, f.String())
			continue
		}

		created, err := s.ctimes.CreationTime(f)
		if err != nil {
			return nil, fmt.Errorf("reading creation time of %s: %w", f, err)
		}

		dir := filepath.Join(req.DestinationRoot, created.Format(layout))
		dirs[dir] = struct{}{}
		plan.Moves = append(plan.Moves, Move{
			Entry:       FileEntry{Path: f, CreatedAt: created},
			Destination: filepath.Join(dir, name),
		})
		s.logger.Debug("planned move", "from", f.String(), "to", filepath.Join(dir, name))
	}

	plan.Directories = make([]string, 0, len(dirs))
	for dir := range dirs {
		plan.Directories = append(plan.Directories, dir)
	}
	sort.Strings(plan.Directories)

	s.logger.Info("plan computed", "moves", len(plan.Moves), "directories", len(plan.Directories), "skipped", len(plan.Skipped))
	return plan, nil
}

// Apply executes a computed plan. Destination directories are created first
// (MkdirAll, so two files sharing a month is not an error), then each file
// is moved — or copied when the request asks for it — preserving its
// original filename. A per-file failure is recorded in the report and the
// batch continues; only a failure to create a destination directory aborts.
func (s *Service) Apply(req Request, plan *Plan) (*Report, error) {
	report := &Report{StartedAt: s.clock.Now()}

	for _, dir := range plan.Directories {
		if err := s.fsmgr.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("creating destination directory: %w", err)
		}
	}

	for _, mv := range plan.Moves {
		var err error
		outcome := OutcomeMoved
		if req.Copy {
			outcome = OutcomeCopied
			err = s.fsmgr.Copy(mv.Entry.Path, mv.Destination)
		} else {
			err = s.fsmgr.Move(mv.Entry.Path, mv.Destination)
		}
		if err != nil {
			moveErr := &MoveError{Source: mv.Entry.Path.String(), Destination: mv.Destination, Err: err}
			s.logger.Warn("file not relocated", "from", moveErr.Source, "to", moveErr.Destination, "error", err)
			report.Results = append(report.Results, Result{Move: mv, Outcome: OutcomeFailed, Err: moveErr})
			continue
		}
		s.logger.Info("file "+outcome.String(), "from", mv.Entry.Path.String(), "to", mv.Destination)
		report.Results = append(report.Results, Result{Move: mv, Outcome: outcome})
	}

	report.FinishedAt = s.clock.Now()
	s.logger.Info("organize complete", "succeeded", report.Succeeded(), "failed", report.Failed())
	return report, nil
}

// Organize runs Plan followed by Apply. For dry runs the returned report is
// nil and nothing on disk changes.
func (s *Service) Organize(req Request) (*Plan, *Report, error) {
	plan, err := s.Plan(req)
	if err != nil {
		return nil, nil, err
	}
	if req.DryRun {
		return plan, nil, nil
	}
	report, err := s.Apply(req, plan)
	if err != nil {
		return plan, nil, err
	}
	return plan, report, nil
}
