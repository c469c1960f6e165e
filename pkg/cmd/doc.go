// Package cmd provides CLI commands for the hqlfmt tool.
//
// This package implements the command-line interface for hqlfmt, a formatter
// for Hive-like SQL queries. Commands share the configuration loaded from
// .hqlfmt.yaml, the layout style derived from it and a concurrent batch
// runner, all provided through go.uber.org/fx.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format files, directory trees or standard input
//   - check: Report files that are unformatted or do not parse
//   - repl: Format queries interactively
//   - watch: Format files in place as they change
//
// # Command Structure
//
// Each command is implemented as a constructor that returns a *cli.Command,
// following the urfave/cli/v3 pattern. Constructors are annotated into the
// "commands" fx group and collected by Run.
//
// # Style Flags
//
// The formatting commands accept:
//   - --minify: Collapse every query onto a single line
//   - --drop-comments: Remove comments from the output
//
// # Example Usage
//
//	hqlfmt fmt daily.sql                  # Print the formatted file
//	hqlfmt fmt -w queries/                # Format a directory tree in place
//	hqlfmt fmt -l queries/                # List files that need formatting
//	cat daily.sql | hqlfmt fmt --minify   # Minify stdin
//	hqlfmt check queries/                 # Fail when anything is unformatted
//	hqlfmt repl                           # Interactive formatting
//	hqlfmt watch queries/                 # Format on save
package cmd
