package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/hqlfmt/pkg/cmd/testutil"
	"github.com/pseudomuto/hqlfmt/pkg/config"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestWatchCommand_RequiresDirectory(t *testing.T) {
	_, err := testutil.RunCommand(t, watchCmd(testParams()))
	require.EqualError(t, err, "exactly one directory argument is required")
}

func TestFileWatcher_Reformat(t *testing.T) {
	tmpDir := t.TempDir()
	w := newFileWatcher(config.Default(), format.Pretty, time.Millisecond)

	t.Run("unformatted file is rewritten", func(t *testing.T) {
		path := filepath.Join(tmpDir, "a.sql")
		testutil.WriteFile(t, path, unformattedSQL)

		w.reformat(path)
		testutil.RequireFileContent(t, path, formattedSQL)
	})

	t.Run("invalid file is left alone", func(t *testing.T) {
		path := filepath.Join(tmpDir, "b.sql")
		testutil.WriteFile(t, path, "select from t")

		w.reformat(path)
		testutil.RequireFileContent(t, path, "select from t")
	})
}

func TestFileWatcher_Watch(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "nested")
	testutil.WriteFile(t, filepath.Join(subDir, ".keep"), "")

	sqlFile := filepath.Join(subDir, "query.sql")
	txtFile := filepath.Join(tmpDir, "notes.txt")
	testutil.WriteFile(t, sqlFile, unformattedSQL)
	testutil.WriteFile(t, txtFile, unformattedSQL)

	w := newFileWatcher(config.Default(), format.Minify, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.watch(ctx, tmpDir) }()

	// Keep touching the files until the watcher has picked them up
	require.Eventually(t, func() bool {
		content, err := os.ReadFile(sqlFile)
		if err == nil && string(content) == "SELECT a,b FROM t WHERE x = 1\n" {
			return true
		}

		_ = os.WriteFile(sqlFile, []byte(unformattedSQL), consts.ModeFile)
		_ = os.WriteFile(txtFile, []byte(unformattedSQL), consts.ModeFile)
		return false
	}, 5*time.Second, 50*time.Millisecond)

	testutil.RequireFileContent(t, txtFile, unformattedSQL)

	cancel()
	require.NoError(t, <-done)
}
