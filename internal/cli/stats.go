package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "stats [file|-]",
		Short: "Print structural statistics for a document",
		Long: `Print structural statistics for a valid document.

Flat graphs report components, cycles, self-loops, parallel edges and degrees.
Trees report leaves, depth, fan-out and embedding dimension.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, src, err := c.loadDocument(cmd, args, flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), statsTable(src, doc.Stats()))
			return nil
		},
	}

	addImportFlags(cmd, &flags)
	return cmd
}
