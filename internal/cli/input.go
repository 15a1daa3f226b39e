package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/graph"
	"github.com/matzehuels/graphinsight/pkg/io"
)

// stdinArg selects standard input as the document source.
const stdinArg = "-"

// addImportFlags registers the validation flags on cmd.
func addImportFlags(cmd *cobra.Command, f *importFlags) {
	cmd.Flags().StringVar(&f.shape, "shape", "auto", "expected shape: auto, flat or tree")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject duplicate ids, empty labels and ragged embeddings")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "deepest tree nesting accepted (0 = default, -1 = unlimited)")
}

// loadDocument reads the document named by args (a path, "-" or nothing
// for stdin) and imports it with the merged options.
func (c *CLI) loadDocument(cmd *cobra.Command, args []string, f importFlags) (*graph.Document, string, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := f.options(c.Config, cmd.Flags().Changed)
	if err != nil {
		return nil, "", err
	}
	opts.Logger = logger

	src := stdinArg
	if len(args) > 0 {
		src = args[0]
	}

	var doc *graph.Document
	if src == stdinArg {
		logger.Debug("reading document from stdin")
		doc, err = io.Read(cmd.InOrStdin(), opts)
		src = "stdin"
	} else {
		doc, err = io.ReadFile(src, opts)
		src = filepath.Base(src)
	}
	if err != nil {
		return nil, src, &inputError{source: src, err: err}
	}
	return doc, src, checkCanceled(ctx)
}

func checkCanceled(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

// =============================================================================
// Output
// =============================================================================

// writeOutput writes v as JSON to path, or to the command's stdout when path
// is empty or "-".
func writeOutput(cmd *cobra.Command, path string, v any, pretty bool) error {
	if path == "" || path == stdinArg {
		return io.WriteJSON(cmd.OutOrStdout(), v, pretty)
	}
	prog := newProgress(loggerFromContext(cmd.Context()))
	if err := io.ExportJSON(path, v, pretty); err != nil {
		return err
	}
	prog.done("Wrote " + path)
	return nil
}

// =============================================================================
// Errors
// =============================================================================

// inputError reports an import failure in the two user-facing categories:
// malformed JSON and malformed graph data.
type inputError struct {
	source string
	err    error
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.source, errorCategory(e.err), errors.UserMessage(e.err))
}

func (e *inputError) Unwrap() error { return e.err }

func errorCategory(err error) string {
	switch {
	case errors.IsParseError(err):
		return "Invalid JSON format"
	case errors.IsShapeError(err):
		return "Invalid graph data structure"
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return "File not found"
	}
	return "Cannot read input"
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
