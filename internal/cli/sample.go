package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphinsight/pkg/samples"
)

// sampleCommand creates the sample command for the built-in documents.
func (c *CLI) sampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample [name]",
		Short: "List or print built-in example documents",
		Example: `  graphinsight sample
  graphinsight sample taxonomy | graphinsight stats -`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: samples.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, s := range samples.List() {
					printInfo(out, "%-10s %s", StyleHighlight.Render(s.Name), StyleDim.Render(s.Description))
				}
				return nil
			}

			data, err := samples.Get(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == stdinArg {
				_, err := out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(out, "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
