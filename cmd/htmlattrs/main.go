package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}

	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return ExitCodeSuccess
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           CLIName,
		Short:         CLIDescription,
		Long:          CLILong,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newCLIError(ExitCodeUsageError, ErrMsgUsage, err)
	})

	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// cliError carries the exit code a failure should produce.
type cliError struct {
	code int
	msg  string
	err  error
}

func newCLIError(code int, msg string, err error) *cliError {
	return &cliError{code: code, msg: msg, err: err}
}

func (e *cliError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

// exitCode maps an error to a process exit code. Errors raised by cobra
// itself (unknown command, bad arguments) are usage errors.
func exitCode(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ExitCodeUsageError
}

func reportError(stderr io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(stderr, FmtErrorPrefix)
	fmt.Fprintln(stderr, err)
}
