package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metriclines/pkg/cache"
	"github.com/matzehuels/metriclines/pkg/classify"
	"github.com/matzehuels/metriclines/pkg/codec"
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/lines"
	"github.com/matzehuels/metriclines/pkg/pipeline"
)

// analyzeOpts holds the command-line flags of the root command.
type analyzeOpts struct {
	nonUniversal bool   // -u: keep graphs without a universal line
	fewerThanN   bool   // -n: keep graphs with fewer lines than vertices
	nmax         int    // -nmax=K: keep graphs with gap <= K
	nmin         int    // -nmin=K: keep graphs with gap >= K
	count        int    // -o=N: analyze the first N graphs only
	lines        string // line rule: "closure" or "collinear"
	format       string // encoding of filtered graphs: "graph6" or "sparse6"
	workers      int    // parallel workers (1 = sequential)
	extended     bool   // append extended statistics columns
	header       bool   // print column names before statistics rows
	pairDist     string // MIN:MAX distances of pairs counted in pair_lines
	univDist     string // MIN:MAX distances of pairs counted in universal_pairs
	noCache      bool   // disable the memo cache
	cacheSize    int    // memo cache capacity in graphs
}

// analyzeCommand creates the root command. Without a filter it prints
// "lines,universal,gap" per graph; with one of -u, -n, -nmax or -nmin it
// prints the graphs that pass.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{
		lines:     pipeline.DefaultRule.String(),
		format:    pipeline.DefaultFormat.String(),
		workers:   pipeline.DefaultWorkers,
		cacheSize: cache.DefaultSize,
	}

	cmd := &cobra.Command{
		Use:   cmdName + " [flags] [FILE]",
		Short: "dbe counts the metric lines of graphs",
		Long: `dbe reads graphs in graph6 or sparse6 format, one per line, from FILE or
standard input, and computes the lines of their shortest-path metric.

Without a filter it prints "lines,universal,gap" for every graph, where
universal is the number of lines that contain every vertex. With a filter it
prints the graphs that pass, re-encoded in graph6.`,
		Example: `  geng -c 6 | dbe
  geng -c 7 | dbe -u
  dbe -nmax=0 graphs.g6
  dbe --extended --header --pair-dist=1:2 graphs.g6
  echo DUW | dbe -o=1`,
		Args: fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.filter(cmd)
			if err != nil {
				return err
			}
			rule, err := lines.ParseRule(opts.lines)
			if err != nil {
				return err
			}
			format, err := codec.ParseStyle(opts.format)
			if err != nil {
				return err
			}
			pairDist, err := classify.ParseRange(opts.pairDist)
			if err != nil {
				return err
			}
			univDist, err := classify.ParseRange(opts.univDist)
			if err != nil {
				return err
			}
			return c.runPipeline(cmd, args, pipeline.Options{
				Mode:     pipeline.ModeAnalyze,
				Filter:   filter,
				Rule:     rule,
				Format:   format,
				Extended: opts.extended,
				Header:   opts.header,
				Limit:    opts.count,
				Workers:  opts.workers,

				PairDist:      pairDist,
				UniversalDist: univDist,
			}, opts.noCache, opts.cacheSize)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.nonUniversal, "non-universal", "u", false, "keep graphs without a universal line")
	f.BoolVarP(&opts.fewerThanN, "fewer-than-n", "n", false, "keep graphs with fewer lines than vertices")
	f.IntVar(&opts.nmax, "nmax", 0, "keep graphs with lines - vertices <= `K`")
	f.IntVar(&opts.nmin, "nmin", 0, "keep graphs with lines - vertices >= `K`")
	f.IntVarP(&opts.count, "count", "o", 0, "analyze only the first `N` graphs (-o=1: single graph)")
	f.StringVar(&opts.lines, "lines", opts.lines, "line rule: closure or collinear")
	f.StringVar(&opts.format, "format", opts.format, "encoding of filtered graphs: graph6 or sparse6")
	f.IntVarP(&opts.workers, "workers", "j", opts.workers, "number of graphs analyzed in parallel")
	f.BoolVar(&opts.extended, "extended", false, "append universal pairs, bridges, diameter, line pairs and the amrz gap")
	f.BoolVar(&opts.header, "header", false, "print column names before statistics rows")
	f.StringVar(&opts.pairDist, "pair-dist", "", "count line pairs only at distances `MIN:MAX` (extended columns)")
	f.StringVar(&opts.univDist, "universal-dist", "", "count universal pairs only at distances `MIN:MAX` (extended columns)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable memoization of repeated graphs")
	f.IntVar(&opts.cacheSize, "cache-size", opts.cacheSize, "number of memoized graphs")

	return cmd
}

// filter combines the filter flags into a single predicate.
func (o *analyzeOpts) filter(cmd *cobra.Command) (classify.Filter, error) {
	var maxGap, minGap *int
	if cmd.Flags().Changed("nmax") {
		maxGap = &o.nmax
	}
	if cmd.Flags().Changed("nmin") {
		minGap = &o.nmin
	}
	return classify.Combine(o.nonUniversal, o.fewerThanN, maxGap, minGap)
}

// runPipeline opens the input, runs the pipeline and logs a summary.
func (c *CLI) runPipeline(cmd *cobra.Command, args []string, opts pipeline.Options, noCache bool, cacheSize int) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if cmd.Flags().Changed("count") {
		if err := errs.ValidateLimit(opts.Limit); err != nil {
			return err
		}
		if opts.Limit == 0 {
			return errs.New(errs.ErrCodeUsage, "-o must be a positive graph count")
		}
	}

	in, name, err := c.openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	runner, err := c.newRunner(noCache, cacheSize)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Logger = logger
	logger.Debug("reading graphs", "input", name, "mode", opts.Filter, "workers", opts.Workers)

	prog := newProgress(logger)
	sum, err := runner.Run(ctx, in, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Analyzed %d graphs, skipped %d", sum.Read-sum.Skipped, sum.Skipped)
	if opts.Filtering() {
		msg += fmt.Sprintf(", kept %d", sum.Written)
	}
	if sum.CacheHits > 0 {
		msg += fmt.Sprintf(", %d from cache", sum.CacheHits)
	}
	prog.done(msg)
	return nil
}
