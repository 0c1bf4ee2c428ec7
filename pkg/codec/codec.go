package codec

import (
	"strings"

	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/graph"
)

// Style selects the textual encoding produced by [Encode].
type Style int

const (
	// Compact is the graph6 encoding: the full upper-triangular adjacency
	// bitmap, six bits per byte.
	Compact Style = iota
	// Incremental is the sparse6 encoding: a ':' sentinel followed by
	// (vertex, edge) records for vertices in index order.
	Incremental
)

// String returns the conventional name of the encoding.
func (s Style) String() string {
	switch s {
	case Compact:
		return "graph6"
	case Incremental:
		return "sparse6"
	}
	return "unknown"
}

// ParseStyle maps an encoding name to a Style. It accepts "graph6" or
// "compact", and "sparse6" or "incremental".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "graph6", "compact", "g6":
		return Compact, nil
	case "sparse6", "incremental", "s6":
		return Incremental, nil
	}
	return 0, errs.New(errs.ErrCodeUsage, "unknown graph encoding %q (must be graph6 or sparse6)", name)
}

// Optional headers some generators emit at the start of a file.
const (
	headerGraph6  = ">>graph6<<"
	headerSparse6 = ">>sparse6<<"
)

const (
	sentinelSparse6     = ':'
	sentinelIncremental = ';' // incremental sparse6, relative to a previous graph
	sentinelDigraph6    = '&'
)

// Decode parses one encoded graph. The encoding is chosen by the leading
// sentinel: none for graph6, ':' for sparse6. Surrounding whitespace and an
// optional ">>graph6<<" or ">>sparse6<<" header are ignored.
//
// Every failure is an INVALID_FORMAT error from pkg/errors.
func Decode(token string) (*graph.Graph, error) {
	tok := strings.TrimSpace(token)
	tok = strings.TrimPrefix(tok, headerGraph6)
	tok = strings.TrimPrefix(tok, headerSparse6)
	if tok == "" {
		return nil, formatError(token, "empty token")
	}

	switch tok[0] {
	case sentinelSparse6:
		g, err := decodeSparse6(tok[1:])
		if err != nil {
			return nil, formatError(token, err.Error())
		}
		return g, nil
	case sentinelIncremental:
		return nil, formatError(token, "incremental sparse6 (';') needs a previous graph and is not supported")
	case sentinelDigraph6:
		return nil, formatError(token, "digraph6 ('&') encodes directed graphs and is not supported")
	}

	g, err := decodeGraph6(tok)
	if err != nil {
		return nil, formatError(token, err.Error())
	}
	return g, nil
}

// Encode serializes g in the given style. The output has no trailing newline.
func Encode(g *graph.Graph, style Style) string {
	if style == Incremental {
		return string(sentinelSparse6) + encodeSparse6(g)
	}
	return encodeGraph6(g)
}

// maxTokenEcho bounds how much of a bad token is echoed in diagnostics.
const maxTokenEcho = 40

func formatError(token, reason string) error {
	shown := strings.TrimSpace(token)
	if len(shown) > maxTokenEcho {
		shown = shown[:maxTokenEcho] + "..."
	}
	return errs.New(errs.ErrCodeInvalidFormat, "token %q: %s", shown, reason)
}
