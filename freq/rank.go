package freq

import "sort"

// Entry is a counted string.
type Entry struct {
	Text  string
	Count int
}

// Sorted returns the counter's entries ordered by descending count, with
// ties broken by ascending text. Entries with a count below minCount are
// dropped before sorting; pass 0 to keep everything.
func (c Counter) Sorted(minCount int) []Entry {
	entries := make([]Entry, 0, len(c))
	for text, count := range c {
		if count < minCount {
			continue
		}
		entries = append(entries, Entry{Text: text, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Text < entries[j].Text
	})
	return entries
}
