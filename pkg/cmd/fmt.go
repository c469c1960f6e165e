package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// fmtCmd creates a CLI command for formatting query files, in the spirit of
// gofmt.
//
// Path handling:
//   - File paths: Format the specified file directly
//   - Directory paths: Recursively format every file with a configured
//     extension (.sql and .hql by default)
//   - No path: Format the queries piped on standard input
//
// Files are formatted concurrently; a file that fails to parse is reported
// on stderr without stopping the others, and the command fails at the end.
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List the files whose formatting differs instead of printing them
//   - --minify: Collapse every query onto a single line
//   - --drop-comments: Remove comments from the output
//
// Examples:
//
//	# Format single file to stdout
//	hqlfmt fmt daily.sql
//
//	# Format all query files in a directory tree in-place
//	hqlfmt fmt -w queries/
//
//	# Minify a query from stdin
//	echo "select a, b from t" | hqlfmt fmt --minify
func fmtCmd(p formatParams) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
		}, styleFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			style := commandStyle(cmd, p.Style)

			if cmd.Args().Len() == 0 {
				return formatStdin(stdin(cmd), stdout(cmd), style)
			}

			files, err := collectFiles(cmd.Args().Slice(), p.Config)
			if err != nil {
				return err
			}

			return runFmt(ctx, cmd, p, files, style)
		},
	}
}

func runFmt(ctx context.Context, cmd *cli.Command, p formatParams, files []string, style format.Style) error {
	results, err := formatFiles(ctx, p.Runner, files, style)
	if err != nil {
		return err
	}

	writeBack := cmd.Bool("write")
	list := cmd.Bool("list")
	failed := 0

	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintln(stderr(cmd), res.Err)
			continue
		}

		if list && needsFormatting(res) {
			fmt.Fprintln(stdout(cmd), res.Job.Name)
		}

		switch {
		case writeBack:
			if !needsFormatting(res) {
				continue
			}

			if err := os.WriteFile(res.Job.Name, []byte(fileContent(res)), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", res.Job.Name)
			}
		case !list:
			if _, err := fmt.Fprint(stdout(cmd), fileContent(res)); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}
	}

	if failed > 0 {
		return errors.Errorf("failed to format %d of %d files", failed, len(results))
	}

	return nil
}

// formatStdin formats the script read from r. Reading from an interactive
// terminal is refused so that a bare `hqlfmt fmt` does not hang.
func formatStdin(r io.Reader, w io.Writer, style format.Style) error {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("no input: pass paths or pipe SQL on stdin")
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	out, err := format.Script("<stdin>", string(content), style)
	if err != nil {
		return err
	}

	if out == "" {
		return nil
	}

	_, err = fmt.Fprintln(w, out)
	return errors.Wrap(err, "failed to write formatted content to output")
}
