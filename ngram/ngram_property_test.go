package ngram

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

// naive re-derives the expected sequence by slicing runes directly.
func naive(s string, minN, maxN int) []string {
	runes := []rune(s)
	var out []string
	for i := 0; i < len(runes); i++ {
		upper := min(maxN, len(runes)-i)
		if upper < minN {
			break
		}
		for l := upper; l >= minN; l-- {
			out = append(out, string(runes[i:i+l]))
		}
	}
	return out
}

func TestNGramsMatchesRuneSlicing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		minN := rapid.IntRange(1, 4).Draw(t, "minN")
		maxN := rapid.IntRange(minN, 8).Draw(t, "maxN")

		expected := naive(s, minN, maxN)
		got := collect(s, minN, maxN)

		if len(got) != len(expected) {
			t.Fatalf("got %d ngrams, want %d", len(got), len(expected))
		}
		for i := range got {
			if got[i] != expected[i] {
				t.Fatalf("ngram %d = %q, want %q", i, got[i], expected[i])
			}
			if !utf8.ValidString(got[i]) {
				t.Fatalf("ngram %d = %q is not valid UTF-8", i, got[i])
			}
		}
	})
}

func TestNGramsItemCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		minN := rapid.IntRange(1, 4).Draw(t, "minN")
		maxN := rapid.IntRange(minN, 8).Draw(t, "maxN")

		n := utf8.RuneCountInString(s)
		want := 0
		for i := 0; i < n; i++ {
			want += max(0, min(maxN, n-i)-minN+1)
		}

		if got := len(collect(s, minN, maxN)); got != want {
			t.Fatalf("emitted %d ngrams, want %d", got, want)
		}
	})
}
