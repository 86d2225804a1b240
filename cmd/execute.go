package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/LegacyCodeHQ/cpexpand/cmd/workspace"
	"github.com/LegacyCodeHQ/cpexpand/project"
)

const (
	exitFailure       = 1
	exitInputNotFound = 2
)

// Execute runs the root command and exits the process with the matching status.
// This is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	var exitErr *workspace.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var notFound *project.InputNotFoundError
	if errors.As(err, &notFound) {
		return exitInputNotFound
	}
	return exitFailure
}
