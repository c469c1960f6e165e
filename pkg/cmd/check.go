package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

const (
	statusOK          = "ok"
	statusUnformatted = "unformatted"
	statusInvalid     = "invalid"
)

// checkCmd creates a CLI command that verifies files are already formatted
// without touching them. Every file gets a row in a summary table and the
// command fails when any file is unformatted or does not parse, which makes
// it suitable for CI.
//
// Examples:
//
//	# Check every query file in a directory tree
//	hqlfmt check queries/
//
//	# Check against the minified layout
//	hqlfmt check --minify dist/
func checkCmd(p formatParams) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check that SQL files are formatted",
		ArgsUsage: "<path...>",
		Flags:     styleFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one path argument is required")
			}

			files, err := collectFiles(cmd.Args().Slice(), p.Config)
			if err != nil {
				return err
			}

			results, err := formatFiles(ctx, p.Runner, files, commandStyle(cmd, p.Style))
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(stdout(cmd))
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"File", "Status", "Detail"})

			failed := 0
			for _, res := range results {
				status, detail := statusOK, ""

				switch {
				case res.Err != nil:
					status, detail = statusInvalid, errorDetail(res.Err)
				case needsFormatting(res):
					status = statusUnformatted
				}

				if status != statusOK {
					failed++
				}

				t.AppendRow(table.Row{res.Job.Name, status, detail})
			}

			t.AppendFooter(table.Row{"", "", checkSummary(failed, len(results))})
			t.Render()

			if failed > 0 {
				return errors.Errorf("%d of %d files need attention", failed, len(results))
			}

			return nil
		},
	}
}

// errorDetail prefers the position and message of a format error over the
// full wrapped error chain.
func errorDetail(err error) string {
	var fmtErr parser.Error
	if errors.As(err, &fmtErr) {
		return fmtErr.Error()
	}

	return err.Error()
}

func checkSummary(failed, total int) string {
	if failed == 0 {
		return "all files formatted"
	}

	return fmt.Sprintf("%d of %d need attention", failed, total)
}
