package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/metriclines/pkg/cache"
	"github.com/matzehuels/metriclines/pkg/classify"
	"github.com/matzehuels/metriclines/pkg/codec"
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/graph"
	"github.com/matzehuels/metriclines/pkg/lines"
	"github.com/matzehuels/metriclines/pkg/metric"
	"github.com/matzehuels/metriclines/pkg/observability"
)

// Runner executes the pipeline with memoization.
//
// The Runner holds no per-run state besides the cache, so one Runner may
// serve several runs in sequence. Cache implementations used with
// Options.Workers > 1 must be safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. If c is nil, caching is disabled. If logger is
// nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result is the outcome of one input graph.
type Result struct {
	Index  int
	Token  string
	Stats  classify.Stats
	Output string // line to write, empty when the graph produces none
	Cached bool
	Err    error
}

// Run reads tokens from in, processes each graph and writes the rendered
// lines to out in input order.
//
// Per-graph errors are logged at error level and counted in Summary.Skipped,
// so they stay visible when only errors are logged.
// Run returns ctx.Err() when cancelled between graphs.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (Summary, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	w := bufio.NewWriter(out)
	var err error
	if opts.Header && opts.Mode == ModeAnalyze && !opts.Filtering() {
		if _, werr := w.WriteString(classify.Header(opts.Extended) + "\n"); werr != nil {
			err = fmt.Errorf("write output: %w", werr)
		}
	}
	switch {
	case err != nil:
	case opts.Workers > 1:
		err = r.runParallel(ctx, in, w, opts, &sum)
	default:
		err = r.runSequential(ctx, in, w, opts, &sum)
	}
	if ferr := w.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("write output: %w", ferr)
	}
	if err != nil {
		return sum, err
	}
	if opts.Limit > 0 && sum.Read == 0 {
		return sum, errs.New(errs.ErrCodeUsage, "-o=%d expects a graph, but the input is empty", opts.Limit)
	}
	return sum, nil
}

func (r *Runner) runSequential(ctx context.Context, in io.Reader, w *bufio.Writer, opts Options, sum *Summary) error {
	return scanTokens(ctx, in, opts.Limit, func(index int, token string) error {
		return r.emit(w, r.process(ctx, index, token, opts), opts, sum)
	})
}

// job is one graph in flight. done receives exactly one Result.
type job struct {
	index int
	token string
	done  chan Result
}

// runParallel fans tokens out to a worker pool and writes results in input
// order. At most 2*Workers graphs are in flight.
func (r *Runner) runParallel(ctx context.Context, in io.Reader, w *bufio.Writer, opts Options, sum *Summary) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan *job)
	pending := make(chan *job, 2*opts.Workers)

	g.Go(func() error {
		defer close(pending)
		defer close(jobs)
		return scanTokens(ctx, in, opts.Limit, func(index int, token string) error {
			j := &job{index: index, token: token, done: make(chan Result, 1)}
			select {
			case pending <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	})

	for i := 0; i < opts.Workers; i++ {
		g.Go(func() error {
			for j := range jobs {
				j.done <- r.process(ctx, j.index, j.token, opts)
			}
			return nil
		})
	}

	g.Go(func() error {
		for j := range pending {
			select {
			case res := <-j.done:
				if err := r.emit(w, res, opts, sum); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return g.Wait()
}

// scanTokens calls fn for every non-blank line of in, stopping after limit
// tokens when limit is positive.
func scanTokens(ctx context.Context, in io.Reader, limit int, fn func(index int, token string) error) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	index := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		token := strings.TrimSpace(sc.Text())
		if token == "" {
			continue
		}
		if err := fn(index, token); err != nil {
			return err
		}
		index++
		if limit > 0 && index >= limit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// emit writes one result and updates the summary. Per-graph errors are
// logged and swallowed; anything else is returned.
func (r *Runner) emit(w *bufio.Writer, res Result, opts Options, sum *Summary) error {
	sum.Read++
	if res.Err != nil {
		if !errs.IsPerGraph(res.Err) {
			return res.Err
		}
		sum.Skipped++
		opts.Logger.Error("skipping graph", "index", res.Index+1, "token", res.Token, "err", errs.UserMessage(res.Err))
		return nil
	}
	if opts.Mode == ModeAnalyze {
		sum.Analyzed++
	}
	if res.Cached {
		sum.CacheHits++
	}
	if res.Output == "" {
		return nil
	}
	sum.Written++
	if _, err := w.WriteString(res.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// process decodes and analyzes one token. It never panics on bad input; all
// failures are reported in Result.Err.
func (r *Runner) process(ctx context.Context, index int, token string, opts Options) Result {
	hooks := observability.Pipeline()
	hooks.OnGraphStart(ctx, index, token)
	start := time.Now()

	res := Result{Index: index, Token: token}
	g, err := codec.Decode(token)
	if err != nil {
		res.Err = err
		hooks.OnGraphSkipped(ctx, index, token, err)
		return res
	}

	if opts.Mode == ModeDistances {
		res.Output = DistanceRow(g, metric.Distances(g))
		hooks.OnGraphComplete(ctx, index, g.Order(), 0, time.Since(start))
		return res
	}

	stats, cached, err := r.analyze(ctx, g, opts.Rule, opts.statsOptions(), opts.Logger)
	if err != nil {
		res.Err = err
		if errs.IsPerGraph(err) {
			hooks.OnGraphSkipped(ctx, index, token, err)
		}
		return res
	}
	res.Stats, res.Cached = stats, cached
	switch {
	case !opts.Filtering():
		res.Output = classify.Row(stats, opts.Extended)
	case opts.Filter.Keep(stats):
		res.Output = codec.Encode(g, opts.Format)
	}
	opts.Logger.Debug("analyzed graph", "index", index+1, "order", stats.Order, "lines", stats.Lines, "cached", cached)
	hooks.OnGraphComplete(ctx, index, stats.Order, stats.Lines, time.Since(start))
	return res
}

// Analyze computes the statistics of g under rule, consulting the cache
// first. cached reports whether the result came from the cache.
func (r *Runner) Analyze(ctx context.Context, g *graph.Graph, rule lines.Rule, so classify.Options) (stats classify.Stats, cached bool, err error) {
	return r.analyze(ctx, g, rule, so, r.Logger)
}

// analyze is Analyze logging to logger. Cache failures never fail the
// analysis; they are logged at debug level and the graph is recomputed.
func (r *Runner) analyze(ctx context.Context, g *graph.Graph, rule lines.Rule, so classify.Options, logger *log.Logger) (stats classify.Stats, cached bool, err error) {
	key := cache.AnalysisKey(codec.Encode(g, codec.Compact), rule.String(), so)
	data, hit, err := r.Cache.Get(ctx, key)
	switch {
	case err != nil:
		logger.Debug("cache get failed", "key", key, "err", err)
	case hit:
		uerr := json.Unmarshal(data, &stats)
		if uerr == nil {
			observability.Cache().OnCacheHit(ctx, "analysis")
			return stats, true, nil
		}
		logger.Debug("discarding corrupt cache entry", "key", key, "err", uerr)
	}
	observability.Cache().OnCacheMiss(ctx, "analysis")

	m := metric.Distances(g)
	h, err := lines.Build(g, m, lines.WithRule(rule))
	if err != nil {
		return classify.Stats{}, false, err
	}
	stats = classify.Classify(g, h, m, so)

	data, err = json.Marshal(stats)
	if err != nil {
		logger.Debug("cache encode failed", "key", key, "err", err)
		return stats, false, nil
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLAnalysis); err != nil {
		logger.Debug("cache set failed", "key", key, "err", err)
		return stats, false, nil
	}
	observability.Cache().OnCacheSet(ctx, "analysis", len(data))
	return stats, false, nil
}

// DistanceRow renders "n d01 d02 ... d(n-2)(n-1) token", where the distances
// are the upper triangle in row order and token is the sparse6 encoding of
// g. Unreachable pairs are written as "-".
func DistanceRow(g *graph.Graph, m *metric.Matrix) string {
	fields := []string{strconv.Itoa(g.Order())}
	for _, d := range m.UpperTriangle() {
		if d == metric.Unreachable {
			fields = append(fields, "-")
		} else {
			fields = append(fields, strconv.Itoa(d))
		}
	}
	fields = append(fields, codec.Encode(g, codec.Incremental))
	return strings.Join(fields, " ")
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
