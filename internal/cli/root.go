// Package cli implements the readinglist command line.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/readinglist/internal/domain"
	"github.com/MrSnakeDoc/readinglist/internal/sources/markdown"
)

// Exit codes
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "readinglist",
		Short:         "Parse, lint, render and serve a markdown reading list",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLintCmd(),
		newFmtCmd(),
		newRenderCmd(),
		newExportCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag and argument errors from cobra
	return exitUserError
}

// Execute runs the command line against the process arguments.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// readSource loads a reading list from a path, or from stdin when path is "-".
func readSource(cmd *cobra.Command, path string) (*domain.Document, []byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, sysError(fmt.Errorf("failed to read stdin: %w", err))
		}
		doc, err := markdown.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, nil, userError(err)
		}
		return doc, data, nil
	}

	doc, data, err := markdown.NewLoader(path).Load()
	if err != nil {
		return nil, nil, userError(err)
	}
	return doc, data, nil
}

// writeOutput writes data to the output file, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return sysError(fmt.Errorf("failed to write output: %w", err))
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return sysError(fmt.Errorf("failed to write %s: %w", path, err))
	}
	return nil
}
