package netrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLineWords(t *testing.T, line string) []string {
	t.Helper()
	tok := lineTokens{buf: line}
	var words []string
	for {
		w, ok := tok.next()
		if !ok {
			break
		}
		words = append(words, w)
	}
	return words
}

func TestLineTokensWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"machine example.com", []string{"machine", "example.com"}},
		{"  login test  ", []string{"login", "test"}},
		{"a\tb\tc", []string{"a", "b", "c"}},
		{"one", []string{"one"}},
		{"p@ss w0rd\n", []string{"p@ss", "w0rd"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, collectLineWords(t, tt.input), "input: %q", tt.input)
	}
}

func TestLineTokensEmpty(t *testing.T) {
	assert.Empty(t, collectLineWords(t, ""))
	assert.Empty(t, collectLineWords(t, "   \t  \n"))
}

func TestLineTokensUnicodeWhitespace(t *testing.T) {
	// U+00A0 (no-break space) separates words like any other space.
	words := collectLineWords(t, "foo bar")
	assert.Equal(t, []string{"foo", "bar"}, words)
}

func TestLineTokensRest(t *testing.T) {
	tok := lineTokens{buf: "macdef upload cd /tmp\n"}

	w, ok := tok.next()
	require.True(t, ok)
	assert.Equal(t, "macdef", w)

	w, ok = tok.next()
	require.True(t, ok)
	assert.Equal(t, "upload", w)

	// The remainder keeps its leading whitespace and line terminator.
	assert.Equal(t, " cd /tmp\n", tok.rest())
}

func TestLineTokensRestAtEnd(t *testing.T) {
	tok := lineTokens{buf: "word"}
	_, ok := tok.next()
	require.True(t, ok)
	assert.Equal(t, "", tok.rest())

	_, ok = tok.next()
	assert.False(t, ok)
}
