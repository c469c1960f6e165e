package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to path, creating any missing parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	return string(content)
}

// RequireFileContent asserts that path exists and holds exactly expected.
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)
	require.Equal(t, expected, ReadFile(t, path), "Unexpected content in: %s", path)
}
