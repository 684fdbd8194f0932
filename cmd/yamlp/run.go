package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jacobcolvin/yamlp/internal/yamlevent"
	"github.com/jacobcolvin/yamlp/internal/yamlwrite"
	"github.com/jacobcolvin/yamlp/yamlpath"
)

// Sentinel errors returned by run, for use with errors.Is, following the
// same %w-wrapping idiom magicschema uses for ErrReadInput/ErrWriteOutput.
var (
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
)

// Exit codes per the CLI's documented contract.
const (
	exitOK = iota
	exitBadFlag
	exitBadFile
	exitBadPath
	exitFilterFailure
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newExitError(code int, err error) *exitError {
	return &exitError{code: code, err: err}
}

// run reads YAML from cfg.File (or stdin, when File is empty or "-"),
// filters it through pathText, and writes the projection to out.
func run(cfg *Config, pathText string, widthFlagSet bool, stdin io.Reader, out io.Writer) error {
	path, err := yamlpath.Parse(pathText)
	if err != nil {
		return newExitError(exitBadPath, formatPathError(pathText, path.Err()))
	}

	src, err := readInput(cfg.File, stdin)
	if err != nil {
		return newExitError(exitBadFile, err)
	}

	slog.Debug("parsed input", "bytes", len(src), "path", path.String())

	stream, err := yamlevent.NewStream(src)
	if err != nil {
		return newExitError(exitFilterFailure, fmt.Errorf("parsing input: %w", err))
	}

	width := cfg.Width
	if !widthFlagSet {
		width = autoWidth(os.Stdout)
	}

	text, err := yamlwrite.Write(stream, path, yamlwrite.Config{
		ForceFlow: cfg.ForceFlow,
		Width:     width,
	})
	if err != nil {
		return newExitError(exitFilterFailure, fmt.Errorf("emitting output: %w", err))
	}

	if _, err := io.WriteString(out, text); err != nil {
		return newExitError(exitFilterFailure, fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}

	return nil
}

// readInput reads from file, or from stdin when file is empty or "-".
func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: reading standard input: %w", ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(file) //nolint:gosec // File path comes from a CLI flag, as intended.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return data, nil
}

// autoWidth reports the terminal width of w, or 0 (unwrapped) if w isn't a
// terminal or its size can't be determined.
func autoWidth(w *os.File) int {
	if !term.IsTerminal(int(w.Fd())) {
		return 0
	}

	width, _, err := term.GetSize(int(w.Fd()))
	if err != nil {
		return 0
	}

	return width
}

// formatPathError renders perr as a caret diagnostic under the offending
// position in pathText, for exit code 3.
func formatPathError(pathText string, perr *yamlpath.Error) error {
	if perr == nil {
		return fmt.Errorf("invalid path %q", pathText)
	}

	caret := strings.Repeat(" ", perr.Pos) + "^"

	return fmt.Errorf("%s\n%s\n%w", pathText, caret, perr)
}
