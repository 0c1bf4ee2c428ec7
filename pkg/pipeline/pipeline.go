// Package pipeline drives the line analysis over a stream of encoded graphs.
//
// This package implements the decode → distances → lines → classify → render
// pipeline used by the dbe command. Input is consumed one token at a time, so
// memory stays bounded by a single graph (or by a small window of graphs when
// several workers are used).
//
// # Architecture
//
// For every non-blank input line the pipeline:
//
//  1. Decodes the graph6 or sparse6 token
//  2. Computes the distance matrix
//  3. Builds the line hypergraph and its statistics
//  4. Renders a statistics row, or the re-encoded graph if it passes the
//     active filter
//
// Malformed tokens and disconnected graphs are logged and skipped. Only I/O
// failures, cancellation and internal errors end a run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	defer runner.Close()
//	sum, err := runner.Run(ctx, os.Stdin, os.Stdout, pipeline.Options{
//	    Filter: classify.NonUniversal(),
//	})
//
// # Concurrency
//
// With Options.Workers > 1 graphs are analyzed by a bounded errgroup pool and
// written in input order. Output is identical to a sequential run.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/metriclines/pkg/classify"
	"github.com/matzehuels/metriclines/pkg/codec"
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/lines"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWorkers analyzes graphs sequentially.
	DefaultWorkers = 1

	// DefaultFormat is the output encoding of filtered graphs.
	DefaultFormat = codec.Compact

	// DefaultRule is the line rule.
	DefaultRule = lines.RuleClosure

	// maxTokenSize bounds a single input line.
	maxTokenSize = 1 << 20
)

// Mode selects what is written per graph.
type Mode int

const (
	// ModeAnalyze writes statistics rows, or filtered graphs when a filter
	// is active.
	ModeAnalyze Mode = iota
	// ModeDistances writes "n d01 d02 ... token" rows.
	ModeDistances
)

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for a run.
type Options struct {
	Mode     Mode
	Filter   classify.Filter
	Rule     lines.Rule
	Format   codec.Style // encoding of graphs written in filter mode
	Extended bool        // append extended columns to statistics rows
	Header   bool        // write the column names before statistics rows

	// PairDist and UniversalDist restrict the extended line and universal
	// pair counts to pairs at these distances.
	PairDist      classify.Range
	UniversalDist classify.Range

	// Limit stops the run after this many graphs; 0 reads all input. A
	// positive limit also requires at least one graph.
	Limit   int
	Workers int

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Summary counts what a run did.
type Summary struct {
	Read      int // tokens consumed
	Analyzed  int // graphs analyzed successfully
	Written   int // output lines written
	Skipped   int // graphs dropped by per-graph errors
	CacheHits int
}

// ValidateAndSetDefaults checks options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if err := errs.ValidateWorkers(o.Workers); err != nil {
		return err
	}
	if err := errs.ValidateLimit(o.Limit); err != nil {
		return err
	}
	if o.Mode != ModeAnalyze && o.Mode != ModeDistances {
		return errs.New(errs.ErrCodeUsage, "unknown mode %d", o.Mode)
	}
	if o.Mode == ModeDistances && o.Filter.Active() {
		return errs.New(errs.ErrCodeUsage, "filter %v does not apply to distance output", o.Filter)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Filtering reports whether graphs are selected rather than summarized.
func (o *Options) Filtering() bool {
	return o.Mode == ModeAnalyze && o.Filter.Active()
}

// statsOptions returns the statistics requested by o.
func (o *Options) statsOptions() classify.Options {
	return classify.Options{
		Extended:      o.Extended,
		PairDist:      o.PairDist,
		UniversalDist: o.UniversalDist,
	}
}
