package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/batch"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/pseudomuto/hqlfmt/pkg/parser"
	"github.com/urfave/cli/v3"
)

const (
	replPrompt         = "hqlfmt> "
	replContinuePrompt = "   ...> "
)

type (
	// lineReader is the part of *readline.Instance the REPL loop uses.
	lineReader interface {
		Readline() (string, error)
		SetPrompt(prompt string)
	}

	repl struct {
		in     lineReader
		out    io.Writer
		errOut io.Writer
		style  format.Style
		buf    strings.Builder
	}
)

// replCmd creates an interactive command that formats queries as they are
// typed. Lines are accumulated until one ends with a semicolon, then the
// query is formatted with the current style. Errors are shown with a caret
// under the offending position.
//
// Dot commands:
//   - .pretty: Switch to the pretty style
//   - .minify: Switch to the minify style
//   - .help: Show the available commands
//   - .quit / .exit: Leave the REPL
//
// History is kept in the user cache directory.
func replCmd(p formatParams) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Format queries interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          replPrompt,
				HistoryFile:     historyFile(),
				AutoComplete:    dotCompleter(),
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
				Stdout:          stdout(cmd),
				Stderr:          stderr(cmd),
			})
			if err != nil {
				return errors.Wrap(err, "failed to initialize REPL")
			}
			defer func() { _ = rl.Close() }()

			r := &repl{
				in:     rl,
				out:    stdout(cmd),
				errOut: stderr(cmd),
				style:  p.Style,
			}

			return r.run(ctx)
		},
	}
}

// historyFile returns the REPL history path, or an empty string (no history)
// when the cache directory is unknown.
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, consts.HistoryFile)
}

func dotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".pretty"),
		readline.PcItem(".minify"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Type .help for commands, .quit to exit")

	for ctx.Err() == nil {
		line, err := r.in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			r.buf.Reset()
			r.in.SetPrompt(replPrompt)
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return errors.Wrap(err, "failed to read input")
		}

		trimmed := strings.TrimSpace(line)
		if r.buf.Len() == 0 {
			if trimmed == "" {
				continue
			}

			if strings.HasPrefix(trimmed, ".") {
				if quit := r.command(trimmed); quit {
					return nil
				}
				continue
			}
		}

		r.buf.WriteString(line + "\n")
		if !strings.HasSuffix(trimmed, ";") {
			r.in.SetPrompt(replContinuePrompt)
			continue
		}

		r.in.SetPrompt(replPrompt)
		text := strings.TrimRight(r.buf.String(), "\n")
		r.buf.Reset()

		r.format(text)
	}

	return nil
}

// command runs a dot command and reports whether the REPL should exit.
func (r *repl) command(line string) bool {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".quit", ".exit":
		return true
	case ".pretty":
		r.style = format.Pretty
		fmt.Fprintln(r.out, "style: pretty")
	case ".minify":
		r.style = format.Minify
		fmt.Fprintln(r.out, "style: minify")
	case ".help":
		fmt.Fprint(r.out, replHelp)
	default:
		fmt.Fprintf(r.errOut, "Unknown command: %s (type .help for commands)\n", line)
	}

	return false
}

func (r *repl) format(text string) {
	out, err := format.String(text, r.style)
	if err == nil {
		fmt.Fprintln(r.out, out)
		return
	}

	var fmtErr parser.Error
	if !errors.As(err, &fmtErr) {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(r.errOut, "Error: %s\n%s\n", fmtErr.Message(), batch.Excerpt(text, fmtErr.Offset()))
}

const replHelp = `Commands:
  .pretty         Format with one clause per line
  .minify         Format onto a single line
  .help           Show this help message
  .quit / .exit   Exit the REPL

Queries end with a semicolon (;) and may span several lines.
`
