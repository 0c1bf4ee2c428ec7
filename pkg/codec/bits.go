package codec

import (
	"errors"
	"fmt"

	"github.com/matzehuels/metriclines/pkg/graph"
)

// Every data byte carries six bits offset by bias, so encoded graphs are
// printable ASCII in the range '?' (63) to '~' (126).
const (
	bias    = 63
	maxByte = 126
	wordLen = 6
)

var (
	errTooLarge   = fmt.Errorf("vertex count exceeds %d", graph.MaxOrder)
	errTruncated  = errors.New("truncated vertex count")
	errEmptyGraph = errors.New("missing vertex count")
)

// =============================================================================
// Vertex count prefix
// =============================================================================

// encodeOrder writes the vertex-count prefix: one byte for n <= 62, otherwise
// '~' followed by n as three 6-bit words.
func encodeOrder(n int) []byte {
	if n <= 62 {
		return []byte{byte(n + bias)}
	}
	return []byte{
		maxByte,
		byte((n>>12)&0x3f + bias),
		byte((n>>6)&0x3f + bias),
		byte(n&0x3f + bias),
	}
}

// decodeOrder reads the vertex-count prefix and returns the remaining body.
// The eight-byte form ("~~") describes graphs far beyond [graph.MaxOrder] and
// is rejected outright.
func decodeOrder(s string) (int, string, error) {
	if s == "" {
		return 0, "", errEmptyGraph
	}
	if err := checkByte(s[0], 0); err != nil {
		return 0, "", err
	}
	if s[0] != maxByte {
		return int(s[0]) - bias, s[1:], nil
	}
	if len(s) >= 2 && s[1] == maxByte {
		return 0, "", errTooLarge
	}
	if len(s) < 4 {
		return 0, "", errTruncated
	}
	n := 0
	for i := 1; i < 4; i++ {
		if err := checkByte(s[i], i); err != nil {
			return 0, "", err
		}
		n = n<<wordLen | int(s[i]-bias)
	}
	if n > graph.MaxOrder {
		return 0, "", errTooLarge
	}
	return n, s[4:], nil
}

func checkByte(c byte, pos int) error {
	if c < bias || c > maxByte {
		return fmt.Errorf("byte %d (%q) outside printable range 63..126", pos, c)
	}
	return nil
}

// =============================================================================
// Bit streams
// =============================================================================

// bitReader reads big-endian bit fields from six-bit words.
type bitReader struct {
	data string
	pos  int // next byte in data
	cur  int // current word value
	left int // unread bits in cur
	base int // byte offset of data within the token, for diagnostics
}

func (r *bitReader) bit() (int, bool, error) {
	v, ok, err := r.bits(1)
	return v, ok, err
}

// bits reads an n-bit field. ok is false when the stream ends before the
// field is complete.
func (r *bitReader) bits(n int) (int, bool, error) {
	v := 0
	for n > 0 {
		if r.left == 0 {
			if r.pos >= len(r.data) {
				return 0, false, nil
			}
			c := r.data[r.pos]
			if err := checkByte(c, r.base+r.pos); err != nil {
				return 0, false, err
			}
			r.cur = int(c - bias)
			r.left = wordLen
			r.pos++
		}
		take := min(n, r.left)
		r.left -= take
		v = v<<take | (r.cur>>r.left)&(1<<take-1)
		n -= take
	}
	return v, true, nil
}

// bitWriter packs big-endian bit fields into six-bit words.
type bitWriter struct {
	out  []byte
	cur  int
	used int // bits used in cur
}

func (w *bitWriter) bit(b int) { w.bits(b, 1) }

func (w *bitWriter) bits(v, n int) {
	for i := n - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | (v>>i)&1
		w.used++
		if w.used == wordLen {
			w.out = append(w.out, byte(w.cur+bias))
			w.cur, w.used = 0, 0
		}
	}
}

// free returns the number of unused bits in the current partial word, or 0
// when the stream ends on a word boundary.
func (w *bitWriter) free() int {
	if w.used == 0 {
		return 0
	}
	return wordLen - w.used
}
