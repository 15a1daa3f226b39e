package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/io"
)

type outputFlags struct {
	output string
	pretty bool
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", true, "indent JSON output")
}

func (f outputFlags) prettyOr(cfg Config, changed func(string) bool) bool {
	if changed("pretty") {
		return f.pretty
	}
	return cfg.Output.Pretty
}

// convertCommand creates the convert command that emits render-ready data.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		in  importFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a document into render-ready JSON",
		Long: `Convert a validated document into the data a visualization library consumes.

Trees become force-graph data: {"nodes": [...], "links": [...]} with derived
unique ids and a size hint (val). Flat graphs become network data:
{"nodes": [{id, label, title}], "edges": [{from, to}]}.`,
		Example: `  graphinsight convert tree.json -o force.json
  graphinsight sample network | graphinsight convert --pretty=false -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.loadDocument(cmd, args, in)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("converting", "shape", doc.Shape)

			v, err := io.Prepare(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out.output, v, out.prettyOr(c.Config, cmd.Flags().Changed))
		},
	}

	addImportFlags(cmd, &in)
	addOutputFlags(cmd, &out)
	return cmd
}

// flattenCommand creates the flatten command for trees.
func (c *CLI) flattenCommand() *cobra.Command {
	var (
		in  importFlags
		out outputFlags
	)

	cmd := &cobra.Command{
		Use:   "flatten [file|-]",
		Short: "Flatten a tree into force-graph nodes and links",
		Long: `Flatten a hierarchical tree into {"nodes": [...], "links": [...]}.

Nodes are listed in pre-order with ids of the form <name>_<n>, where n is the
visit index starting at 0 for the root. Each node's val is 1 plus its number
of children, and every non-root node is linked from its parent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, src, err := c.loadDocument(cmd, args, in)
			if err != nil {
				return err
			}
			if !doc.IsTree() {
				return errors.New(errors.ErrCodeUnsupported, "%s: flatten needs a tree document, got a %s graph (use convert)", src, doc.Shape)
			}

			rg, err := io.Prepare(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out.output, rg, out.prettyOr(c.Config, cmd.Flags().Changed))
		},
	}

	addImportFlags(cmd, &in)
	addOutputFlags(cmd, &out)
	return cmd
}
