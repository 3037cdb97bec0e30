package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"po-go/internal/organize"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Content     []byte
	Permissions fs.FileMode
	ModTime     time.Time
	CreatedAt   time.Time
	IsDirectory bool
}

// MockFilesystemManager is an in-memory filesystem for testing. It
// implements both organize.FilesystemManager and
// organize.CreationTimeProvider so a single fake drives the service.
type MockFilesystemManager struct {
	files map[string]*MockFile

	// FailMoves maps source paths to errors, forcing Move/Copy failures.
	FailMoves map[string]error
}

// NewMockFilesystemManager creates a new mock filesystem.
func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files:     make(map[string]*MockFile),
		FailMoves: make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem with the given creation time.
func (m *MockFilesystemManager) AddFile(path string, content []byte, createdAt time.Time) {
	m.files[path] = &MockFile{
		Content:     content,
		Permissions: 0644,
		ModTime:     createdAt,
		CreatedAt:   createdAt,
		IsDirectory: false,
	}
}

// AddDirectory adds a directory to the mock filesystem.
func (m *MockFilesystemManager) AddDirectory(path string) {
	now := time.Now()
	m.files[path] = &MockFile{
		Permissions: 0755,
		ModTime:     now,
		CreatedAt:   now,
		IsDirectory: true,
	}
}

// Exists reports whether a path is present in the mock filesystem.
func (m *MockFilesystemManager) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *MockFilesystemManager) Resolve(rawPath string) (*organize.Path, error) {
	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, err
	}

	file, ok := m.files[absPath]
	if !ok {
		return nil, fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}

	return organize.NewPath(absPath, file.IsDirectory, m.infoFor(absPath, file)), nil
}

func (m *MockFilesystemManager) Stat(path *organize.Path) (fs.FileInfo, error) {
	file, ok := m.files[path.String()]
	if !ok {
		return nil, fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}
	return m.infoFor(path.String(), file), nil
}

func (m *MockFilesystemManager) FindFiles(path *organize.Path, recursive bool) ([]*organize.Path, error) {
	if !path.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path.String())
	}

	prefix := path.String() + string(filepath.Separator)
	var paths []*organize.Path
	for p, file := range m.files {
		if file.IsDirectory || !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if !recursive && strings.Contains(rel, string(filepath.Separator)) {
			continue
		}
		paths = append(paths, organize.NewPath(p, false, m.infoFor(p, file)))
	}
	return paths, nil
}

func (m *MockFilesystemManager) MkdirAll(dir string) error {
	for d := dir; d != "/" && d != "."; d = filepath.Dir(d) {
		if existing, ok := m.files[d]; ok && !existing.IsDirectory {
			return fmt.Errorf("not a directory: %s", d)
		}
		m.AddDirectory(d)
	}
	return nil
}

func (m *MockFilesystemManager) Move(src *organize.Path, dst string) error {
	if err := m.FailMoves[src.String()]; err != nil {
		return err
	}
	file, ok := m.files[src.String()]
	if !ok {
		return fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}
	if _, exists := m.files[dst]; exists {
		return fmt.Errorf("destination already exists: %s", dst)
	}
	m.files[dst] = file
	delete(m.files, src.String())
	return nil
}

func (m *MockFilesystemManager) Copy(src *organize.Path, dst string) error {
	if err := m.FailMoves[src.String()]; err != nil {
		return err
	}
	file, ok := m.files[src.String()]
	if !ok {
		return fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}
	if _, exists := m.files[dst]; exists {
		return fmt.Errorf("destination already exists: %s", dst)
	}
	dup := *file
	dup.Content = append([]byte(nil), file.Content...)
	m.files[dst] = &dup
	return nil
}

// CreationTime returns the creation time recorded by AddFile.
func (m *MockFilesystemManager) CreationTime(path *organize.Path) (time.Time, error) {
	file, ok := m.files[path.String()]
	if !ok {
		return time.Time{}, fmt.Errorf("stat path: %w", fs.ErrNotExist)
	}
	return file.CreatedAt, nil
}

func (m *MockFilesystemManager) infoFor(path string, file *MockFile) fs.FileInfo {
	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Permissions,
		modTime: file.ModTime,
		isDir:   file.IsDirectory,
	}
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() any           { return nil }

// Compile-time checks
var _ organize.FilesystemManager = (*MockFilesystemManager)(nil)
var _ organize.CreationTimeProvider = (*MockFilesystemManager)(nil)
