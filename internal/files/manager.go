package files

import (
	"log/slog"
	"os"
	"path/filepath"

	"jereport/internal/config"
	"jereport/internal/errors"
)

// Manager provides file management operations relative to a base directory
type Manager struct {
	baseDir string
	logger  *slog.Logger
}

// NewManager creates a new file manager instance. Relative paths are resolved
// against baseDir; an empty baseDir means the working directory.
func NewManager(baseDir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{baseDir: baseDir, logger: logger.With(slog.String("component", "files"))}
}

// EnsureDirectory creates a directory and any missing parents
func (m *Manager) EnsureDirectory(path string) error {
	fullPath := m.resolvePath(path)

	m.logger.Debug("Ensuring directory exists",
		slog.String("path", path),
		slog.String("full_path", fullPath))

	if err := os.MkdirAll(fullPath, config.DirPermission); err != nil {
		return errors.NewStorageError("failed to create directory", err).
			WithContext("path", fullPath)
	}
	return nil
}

// Persist writes text to outputDir/filename, creating outputDir if absent and
// replacing any existing file. It returns the path written. The content is
// staged in a temporary file in outputDir and renamed into place, so a failed
// write leaves any previous report untouched.
func (m *Manager) Persist(text, outputDir, filename string) (string, error) {
	if err := m.EnsureDirectory(outputDir); err != nil {
		return "", err
	}

	target := filepath.Join(outputDir, filename)
	if err := m.WriteFileAtomic(target, []byte(text)); err != nil {
		return "", err
	}

	m.logger.Info("Report written",
		slog.String("path", target),
		slog.Int("size_bytes", len(text)))

	return target, nil
}

// WriteFileAtomic writes data to path by way of a temporary sibling file.
// The directory containing path must already exist.
func (m *Manager) WriteFileAtomic(path string, data []byte) error {
	fullPath := m.resolvePath(path)
	dir := filepath.Dir(fullPath)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return errors.NewStorageError("failed to create temporary file", err).
			WithContext("path", fullPath)
	}
	tmpPath := tmp.Name()

	fail := func(message string, cause error) error {
		tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			m.logger.Warn("Failed to remove temporary file",
				slog.String("path", tmpPath),
				slog.String("error", rmErr.Error()))
		}
		return errors.NewStorageError(message, cause).WithContext("path", fullPath)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("failed to write file", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("failed to sync file", err)
	}
	if err := tmp.Chmod(config.FilePermission); err != nil {
		return fail("failed to set file permissions", err)
	}
	if err := tmp.Close(); err != nil {
		return fail("failed to close file", err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		return fail("failed to replace file", err)
	}

	m.logger.Debug("File written",
		slog.String("path", path),
		slog.String("full_path", fullPath),
		slog.Int("size_bytes", len(data)))

	return nil
}

// resolvePath resolves a path relative to the base directory
func (m *Manager) resolvePath(path string) string {
	if filepath.IsAbs(path) || m.baseDir == "" {
		return path
	}
	return filepath.Join(m.baseDir, path)
}
