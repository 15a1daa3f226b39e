package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command that opens the node browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "explore [file|-]",
		Short: "Browse a document's nodes in the terminal",
		Long: `Browse a document's nodes interactively.

Trees are listed in pre-order and indented by depth; flat graphs are listed
in input order. The panel on the right shows the selected node's metadata,
embedding size and neighbors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, src, err := c.loadDocument(cmd, args, flags)
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			}
			// stdin already carried the document; read keys from the terminal.
			if len(args) == 0 || args[0] == stdinArg || !isTerminal(os.Stdin) {
				opts = append(opts, tea.WithInputTTY())
			}

			_, err = tea.NewProgram(NewExploreModel(src, doc), opts...).Run()
			return err
		},
	}

	addImportFlags(cmd, &flags)
	return cmd
}
