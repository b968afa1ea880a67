package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/teatak/corpuscount/freq"
)

// Vocab holds tokens or ngrams with their corpus counts, as produced by the
// counting pipeline.
type Vocab struct {
	Counts map[string]int
	Total  int
}

// New creates a new empty vocabulary.
func New() *Vocab {
	return &Vocab{
		Counts: make(map[string]int),
	}
}

// Load reads a counts file into the vocabulary. Counts for entries already
// present are summed, so loading several files merges them.
// File format: text and count, tab or space separated, one entry per line.
func (v *Vocab) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := v.Read(file); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Read reads counts lines from r into the vocabulary.
func (v *Vocab) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: expected text and count, got %q", lineNo, line)
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("line %d: bad count %q", lineNo, parts[1])
		}
		v.Counts[parts[0]] += count
		v.Total += count
	}
	return scanner.Err()
}

// Count returns the count of text.
func (v *Vocab) Count(text string) (int, bool) {
	count, ok := v.Counts[text]
	return count, ok
}

// Contains checks if text exists in the vocabulary.
func (v *Vocab) Contains(text string) bool {
	_, ok := v.Counts[text]
	return ok
}

// Sorted returns the vocabulary's entries in rank order, dropping entries
// with a count below minCount.
func (v *Vocab) Sorted(minCount int) []freq.Entry {
	return freq.Counter(v.Counts).Sorted(minCount)
}

// WriteEntries writes entries to w in the counts file format, one
// tab-separated text/count pair per line, in the given order.
func WriteEntries(w io.Writer, entries []freq.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", e.Text, e.Count); err != nil {
			return err
		}
	}
	return nil
}
