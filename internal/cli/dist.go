package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/metriclines/pkg/pipeline"
)

// distCommand creates the dist command, which prints the distance matrix of
// every input graph as "n d01 d02 ... d(n-2)(n-1) sparse6".
func (c *CLI) distCommand() *cobra.Command {
	var count, workers int

	cmd := &cobra.Command{
		Use:   "dist [FILE]",
		Short: "Print the distance matrix of each graph",
		Long: `Print one line per input graph: the number of vertices, the upper triangle
of the distance matrix in row order, and the graph in sparse6. Pairs in
different components are printed as "-".`,
		Example: `  geng -b -C 6 | dbe dist`,
		Args:    fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(cmd, args, pipeline.Options{
				Mode:    pipeline.ModeDistances,
				Limit:   count,
				Workers: workers,
			}, true, 0)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "o", 0, "read only the first `N` graphs")
	cmd.Flags().IntVarP(&workers, "workers", "j", pipeline.DefaultWorkers, "number of graphs processed in parallel")
	return cmd
}
