package cmd

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/batch"
	"github.com/pseudomuto/hqlfmt/pkg/config"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
)

// The streams are configured on the root command only.
func stdin(cmd *cli.Command) io.Reader  { return cmd.Root().Reader }
func stdout(cmd *cli.Command) io.Writer { return cmd.Root().Writer }
func stderr(cmd *cli.Command) io.Writer { return cmd.Root().ErrWriter }

// collectFiles expands paths into the files to format. Files are taken as
// given, directories are walked recursively for files with a configured
// extension. The result is sorted and free of duplicates.
func collectFiles(paths []string, cfg *config.Config) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", path)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && cfg.Matches(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
		}
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in: %s", strings.Join(paths, ", "))
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// formatFiles reads and formats every file as a script.
func formatFiles(ctx context.Context, runner *batch.Runner, files []string, style format.Style) ([]batch.Result, error) {
	jobs := make([]batch.Job, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read file: %s", file)
		}

		jobs = append(jobs, batch.Job{
			Name:   file,
			Text:   string(content),
			Style:  style,
			Script: true,
		})
	}

	return runner.Run(ctx, jobs)
}

// fileContent is the content a formatted file should have: the formatted
// text terminated by a newline.
func fileContent(res batch.Result) string {
	if res.Output == "" {
		return ""
	}

	return res.Output + "\n"
}

// needsFormatting reports whether a successfully formatted file differs from
// its formatted content.
func needsFormatting(res batch.Result) bool {
	return res.Err == nil && fileContent(res) != res.Job.Text
}
