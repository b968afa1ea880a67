package ngram

import "iter"

// NGrams lazily produces every contiguous substring of a string whose
// character length falls within [minN, maxN]. For each starting character
// the substrings are emitted in descending length order before the start
// advances by one character. Substrings are slices of the original string,
// so no text is copied, and they always begin and end on rune boundaries.
//
// A generator is consumed once, front to back. Construct a new one to
// traverse again.
type NGrams struct {
	minN int
	maxN int
	s    string

	// Byte offsets of the runes not yet consumed as start positions.
	// The first offset is the current anchor.
	offsets []int

	// Candidate length (in runes) of the next substring at the anchor.
	length int
}

// New creates a generator over the substrings of s with lengths in [minN, maxN].
// It assumes 1 <= minN <= maxN; callers validate their configuration before
// constructing a generator.
func New(s string, minN, maxN int) *NGrams {
	offsets := make([]int, 0, len(s))
	for i := range s {
		offsets = append(offsets, i)
	}

	return &NGrams{
		minN:    minN,
		maxN:    maxN,
		s:       s,
		offsets: offsets,
		length:  min(maxN, len(offsets)),
	}
}

// Next returns the next substring, or "" and false when the generator is
// exhausted.
func (g *NGrams) Next() (string, bool) {
	// All lengths at the current anchor emitted: drop the leading rune
	// to move to the next anchor.
	if g.length < g.minN {
		if len(g.offsets) == 0 {
			return "", false
		}
		g.offsets = g.offsets[1:]

		// Fewer runes remain than the minimal length: nothing further
		// can be emitted, here or at any later anchor.
		if len(g.offsets) < g.minN {
			return "", false
		}
		g.length = min(g.maxN, len(g.offsets))
	}

	var s string
	if g.length == len(g.offsets) {
		s = g.s[g.offsets[0]:]
	} else {
		s = g.s[g.offsets[0]:g.offsets[g.length]]
	}
	g.length--

	return s, true
}

// All returns the remaining substrings as a single-use sequence, for use
// with range-over-func.
func (g *NGrams) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s, ok := g.Next(); ok; s, ok = g.Next() {
			if !yield(s) {
				return
			}
		}
	}
}
