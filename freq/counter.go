package freq

import (
	"bufio"
	"io"
	"strings"
)

// Counter accumulates occurrence counts for strings.
type Counter map[string]int

// NewCounter creates an empty counter.
func NewCounter() Counter {
	return make(Counter)
}

// Add counts one occurrence of s.
func (c Counter) Add(s string) {
	c[s]++
}

// AddN counts n occurrences of s.
func (c Counter) AddN(s string, n int) {
	c[s] += n
}

// Total returns the sum of all counts.
func (c Counter) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CountTokens reads r line by line and counts every whitespace-separated
// token, one occurrence each.
func CountTokens(r io.Reader) (Counter, error) {
	counts := NewCounter()

	scanner := bufio.NewScanner(r)
	// Increase buffer size to handle long lines
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			counts.Add(token)
		}
	}
	return counts, scanner.Err()
}
