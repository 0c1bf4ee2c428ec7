// Package pkg provides the libraries behind dbe, a tool that enumerates the
// metric lines of small graphs and classifies graphs by their line count.
//
// # Overview
//
// A line of a connected graph is derived from a vertex pair {x,y} and the
// graph's shortest-path metric. The packages split that work into layers:
//
//  1. [codec] - graph6 and sparse6 decoding and encoding
//  2. [graph] - undirected graphs on at most 64 vertices, vertex sets as bitmasks
//  3. [metric] - all-pairs distances, betweenness, bridges
//  4. [lines] - line rules and the deduplicated line hypergraph
//  5. [classify] - per-graph statistics and output filters
//  6. [pipeline] - streaming analysis of token streams, sequential or parallel
//  7. [cache] - memoization of per-graph results
//
// # Architecture
//
// The data flow for one input token:
//
//	graph6 / sparse6 token
//	         ↓
//	    [codec] package (decode)
//	         ↓
//	    [metric] package (distances)
//	         ↓
//	    [lines] package (hypergraph)
//	         ↓
//	    [classify] package (stats, filter)
//	         ↓
//	    CSV row or re-encoded token
//
// # Quick Start
//
// Count the lines of the 5-cycle:
//
//	g, _ := codec.Decode("DUW")
//	m := metric.Distances(g)
//	h, _ := lines.Build(g, m)
//	fmt.Println(h.Len()) // 10
//
// Stream a file of graphs through the pipeline:
//
//	r := pipeline.NewRunner(cache.NewNullCache(), nil)
//	summary, err := r.Run(ctx, in, out, pipeline.Options{Workers: 4})
//
// [codec]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/codec
// [graph]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/graph
// [metric]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/metric
// [lines]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/lines
// [classify]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/classify
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/metriclines/pkg/cache
package pkg
