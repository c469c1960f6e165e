package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pseudomuto/hqlfmt/pkg/batch"
	"github.com/pseudomuto/hqlfmt/pkg/config"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// formatParams holds what the formatting commands share: the loaded
	// configuration, the style derived from it and the batch runner.
	formatParams struct {
		fx.In

		Config *config.Config
		Style  format.Style
		Runner *batch.Runner
	}
)

// Run creates the hqlfmt CLI application and executes it with the given
// command-line arguments once the fx application starts. The process exit
// code reflects the outcome of the command.
//
// Example usage:
//
//	hqlfmt fmt -w queries/
//	hqlfmt check queries/
//	echo "select 1" | hqlfmt fmt --minify
//	hqlfmt repl
//	hqlfmt watch queries/
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "hqlfmt",
		Usage: "A formatter for Hive-like SQL queries",
		Description: `hqlfmt lays out Hive-like SQL queries canonically: one clause per line,
one column per line, upper-cased keywords and nested blocks indented. Comments
are kept next to the token they annotate. The minify style collapses a query
onto a single line instead.`,
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// styleFlags are the layout overrides shared by the formatting commands.
func styleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "minify",
			Usage: "Collapse every query onto a single line",
		},
		&cli.BoolFlag{
			Name:  "drop-comments",
			Usage: "Remove comments from the output",
		},
	}
}

// commandStyle applies the style flags of cmd on top of the configured style.
func commandStyle(cmd *cli.Command, style format.Style) format.Style {
	if cmd.Bool("minify") {
		style = format.Minify
	}

	if cmd.Bool("drop-comments") {
		style.DropComments = true
	}

	return style
}
