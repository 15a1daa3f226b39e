package cli

import (
	stderrors "errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphinsight/pkg/errors"
)

// validateCommand creates the validate command for checking documents.
func (c *CLI) validateCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check that a document is a valid flat graph or tree",
		Long: `Check that a JSON document is a valid flat graph or hierarchical tree.

The shape is detected from the document's keys unless --shape is given.
Malformed JSON and well-formed JSON with the wrong structure are reported
separately, with the JSON path of the first offending value.`,
		Example: `  # Validate a file
  graphinsight validate graph.json

  # Validate stdin as a tree, rejecting ragged embeddings
  graphinsight sample taxonomy | graphinsight validate --shape tree --strict -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			doc, src, err := c.loadDocument(cmd, args, flags)
			if err != nil {
				reportInvalid(out, err)
				return err
			}
			printSuccess(out, "%s is a valid %s graph", src, doc.Shape)
			printCounts(out, doc.Stats())
			return nil
		},
	}

	addImportFlags(cmd, &flags)
	return cmd
}

// reportInvalid prints the category and location of an import failure.
func reportInvalid(w io.Writer, err error) {
	var ie *inputError
	if !stderrors.As(err, &ie) {
		return
	}
	printError(w, "%s", errorCategory(ie.err))
	printDetail(w, "%s", errors.UserMessage(ie.err))
}
