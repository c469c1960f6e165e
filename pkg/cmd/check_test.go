package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/hqlfmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_RequiresPath(t *testing.T) {
	_, err := testutil.RunCommand(t, checkCmd(testParams()))
	require.EqualError(t, err, "at least one path argument is required")
}

func TestCheckCommand_AllFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(tmpDir, "a.sql"), formattedSQL)
	testutil.WriteFile(t, filepath.Join(tmpDir, "b.hql"), "SELECT\n\t1;\n\nSELECT\n\t2\n")

	out, err := testutil.RunCommand(t, checkCmd(testParams()), tmpDir)
	require.NoError(t, err)

	require.Contains(t, out.Stdout, filepath.Join(tmpDir, "a.sql"))
	require.Contains(t, out.Stdout, filepath.Join(tmpDir, "b.hql"))
	require.Equal(t, 2, strings.Count(out.Stdout, statusOK))
	require.Contains(t, strings.ToLower(out.Stdout), "all files formatted")
}

func TestCheckCommand_Failures(t *testing.T) {
	tmpDir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(tmpDir, "a.sql"), formattedSQL)
	testutil.WriteFile(t, filepath.Join(tmpDir, "b.sql"), unformattedSQL)
	testutil.WriteFile(t, filepath.Join(tmpDir, "c.sql"), "select 'unterminated")

	out, err := testutil.RunCommand(t, checkCmd(testParams()), tmpDir)
	require.EqualError(t, err, "2 of 3 files need attention")

	require.Contains(t, out.Stdout, statusUnformatted)
	require.Contains(t, out.Stdout, statusInvalid)
	require.Contains(t, out.Stdout, `c.sql:1:8: unterminated string starting with '\''`)
	require.Contains(t, strings.ToLower(out.Stdout), "2 of 3 need attention")
}

func TestCheckCommand_MinifyFlag(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "a.sql")
	testutil.WriteFile(t, sqlFile, "SELECT a,b FROM t WHERE x = 1\n")

	_, err := testutil.RunCommand(t, checkCmd(testParams()), "--minify", sqlFile)
	require.NoError(t, err)

	_, err = testutil.RunCommand(t, checkCmd(testParams()), sqlFile)
	require.Error(t, err)
}
