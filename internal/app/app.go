package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"po-go/internal/config"
	"po-go/internal/fs"
	"po-go/internal/organize"
)

// POApp is the application layer between the CLI and the organize service.
// It constructs all dependencies from config, fills request defaults from
// config, and manages the log file and run lock lifecycle on Close.
type POApp struct {
	cfg      *config.Config
	service  *organize.Service
	run      *Run
	lockPath string
	lock     *flock.Flock
	logger   *slog.Logger
	logFile  *os.File
}

// NewPOApp creates a fully wired POApp from the given config.
// operation identifies the CLI command being run (e.g. "Organize").
// The caller must call Close when done.
func NewPOApp(cfg *config.Config, operation string, verbose bool) (*POApp, error) {
	run := NewRun(operation)

	logger, logFile, err := newLogger(cfg.LogDir, run.ID, verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	fsmgr := fs.NewOSFilesystemManager()
	ctimes := fs.NewStatCreationTimes()
	svc := organize.NewService(fsmgr, ctimes, &slogAdapter{l: logger}, organize.RealClock{})

	lockPath := filepath.Join(cfg.LogDir, "po.lock")

	return &POApp{
		cfg:      cfg,
		service:  svc,
		run:      run,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		logger:   logger,
		logFile:  logFile,
	}, nil
}

// Organize runs the scan, plan, and apply pipeline for the given request.
// Request fields left empty fall back to config values. Mutating runs hold
// a file lock so two invocations cannot race moves into the same library;
// dry runs skip the lock since they touch nothing.
func (a *POApp) Organize(req organize.Request) (*organize.Plan, *organize.Report, error) {
	if req.DestinationRoot == "" {
		req.DestinationRoot = a.cfg.LibraryDir
	}
	if len(req.Types) == 0 {
		req.Types = a.cfg.Organize.Types
	}
	if req.Layout == "" {
		req.Layout = a.cfg.Organize.Layout
	}

	if !req.DryRun {
		ok, err := a.lock.TryLock()
		if err != nil {
			a.run.Fail()
			return nil, nil, fmt.Errorf("acquiring run lock: %w", err)
		}
		if !ok {
			a.run.Fail()
			return nil, nil, fmt.Errorf("another po run is in progress (lock: %s)", a.lockPath)
		}
		defer func() {
			_ = a.lock.Unlock()
		}()
	}

	a.logger.Info("starting organize",
		"source", req.Source,
		"destination", req.DestinationRoot,
		"recursive", req.Recursive,
		"dry_run", req.DryRun,
		"copy", req.Copy,
	)

	plan, report, err := a.service.Organize(req)
	if err != nil {
		a.run.Fail()
		return nil, nil, err
	}
	if report != nil && report.Failed() > 0 {
		a.run.Fail()
	}
	return plan, report, nil
}

// Close finalizes the run record and closes the log file.
func (a *POApp) Close() error {
	a.logger.Info("run finished", "operation", a.run.Operation, "status", a.run.Status)

	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
