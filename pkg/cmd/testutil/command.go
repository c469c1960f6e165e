package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// Output holds everything a command wrote while running.
type Output struct {
	Stdout string
	Stderr string
}

// RunCommand executes command as a subcommand of a test app with empty stdin.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (Output, error) {
	t.Helper()
	return RunCommandWithInput(t, command, "", args...)
}

// RunCommandWithInput executes command with input available on stdin.
func RunCommandWithInput(t *testing.T, command *cli.Command, input string, args ...string) (Output, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Commands:  []*cli.Command{command},
		Reader:    strings.NewReader(input),
		Writer:    &stdout,
		ErrWriter: &stderr,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)
	err := app.Run(context.Background(), fullArgs)

	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
