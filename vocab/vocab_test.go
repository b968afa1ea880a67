package vocab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/corpuscount/freq"
)

func TestRead(t *testing.T) {
	v := New()
	require.NoError(t, v.Read(strings.NewReader("foo\t3\nbar\t2\n\n")))

	assert.Equal(t, 5, v.Total)
	assert.True(t, v.Contains("foo"))
	assert.False(t, v.Contains("baz"))

	count, ok := v.Count("bar")
	require.True(t, ok)
	assert.Equal(t, 2, count)
}

func TestReadMalformed(t *testing.T) {
	assert.Error(t, New().Read(strings.NewReader("foo\t3\nbar\n")))
	assert.Error(t, New().Read(strings.NewReader("foo\tmany\n")))
}

func TestLoadMerges(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("foo\t3\nbar\t2\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("bar\t4\nbaz\t1\n"), 0644))

	v := New()
	require.NoError(t, v.Load(first))
	require.NoError(t, v.Load(second))

	assert.Equal(t, map[string]int{"foo": 3, "bar": 6, "baz": 1}, v.Counts)
	assert.Equal(t, 10, v.Total)

	expected := []freq.Entry{{Text: "bar", Count: 6}, {Text: "foo", Count: 3}, {Text: "baz", Count: 1}}
	assert.Equal(t, expected, v.Sorted(0))
	assert.Equal(t, []freq.Entry{{Text: "bar", Count: 6}, {Text: "foo", Count: 3}}, v.Sorted(2))
}

func TestWriteEntries(t *testing.T) {
	var sb strings.Builder
	entries := []freq.Entry{{Text: "a", Count: 2}, {Text: "b", Count: 1}}
	require.NoError(t, WriteEntries(&sb, entries))

	assert.Equal(t, "a\t2\nb\t1\n", sb.String())
}
