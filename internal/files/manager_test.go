package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jereport/internal/errors"
	"jereport/internal/shared/testutil"
)

func TestNewManager(t *testing.T) {
	manager := NewManager("/test/base", nil)
	assert.NotNil(t, manager)
	assert.Equal(t, "/test/base", manager.baseDir)
	assert.NotNil(t, manager.logger)
}

func TestEnsureDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewManager(tmpDir, nil)

	require.NoError(t, manager.EnsureDirectory("a/b/c"))
	info, err := os.Stat(filepath.Join(tmpDir, "a", "b", "c"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, manager.EnsureDirectory("a/b/c"), "existing directory is not an error")
}

func TestPersist(t *testing.T) {
	tmpDir := t.TempDir()
	logger, handler := testutil.NewTestLogger(t)
	manager := NewManager("", logger)

	outputDir := filepath.Join(tmpDir, "nested", "output")
	path, err := manager.Persist("first\n", outputDir, "analysis_report.txt")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, "analysis_report.txt"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))
	assert.True(t, handler.ContainsMessage("Report written"))

	t.Run("overwrites existing file", func(t *testing.T) {
		_, err := manager.Persist("second\n", outputDir, "analysis_report.txt")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second\n", string(content))
	})

	t.Run("leaves no temporary files", func(t *testing.T) {
		entries, err := os.ReadDir(outputDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "analysis_report.txt", entries[0].Name())
	})
}

func TestPersist_RelativeToBaseDir(t *testing.T) {
	tmpDir := t.TempDir()
	manager := NewManager(tmpDir, nil)

	path, err := manager.Persist("report", "output", "analysis_report.txt")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("output", "analysis_report.txt"), path)
	assert.FileExists(t, filepath.Join(tmpDir, "output", "analysis_report.txt"))
}

func TestPersist_OutputDirIsAFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "output")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))

	_, err := NewManager("", nil).Persist("report", blocker, "analysis_report.txt")

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, blocker, appErr.Context["path"])
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.txt")

	err := NewManager("", nil).WriteFileAtomic(path, []byte("x"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeStorage))
	assert.NoFileExists(t, path)
}
