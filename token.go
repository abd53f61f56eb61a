package netrc

import "unicode"

// lineTokens walks one line of text, yielding whitespace-delimited words.
// The cursor advances incrementally so the unconsumed remainder of the line
// stays available for macro-body capture.
type lineTokens struct {
	buf string
	cur int // byte offset of the first unconsumed character
}

// rest returns everything after the cursor, untokenized.
func (t *lineTokens) rest() string {
	return t.buf[t.cur:]
}

// next returns the next word, or ok=false when the remainder of the line is
// empty or only whitespace. Whitespace follows unicode.IsSpace.
func (t *lineTokens) next() (word string, ok bool) {
	rest := t.rest()
	start := len(rest)
	for i, r := range rest {
		if !unicode.IsSpace(r) {
			start = i
			break
		}
	}
	t.cur += start
	rest = rest[start:]
	if rest == "" {
		return "", false
	}
	end := len(rest)
	for i, r := range rest {
		if unicode.IsSpace(r) {
			end = i
			break
		}
	}
	t.cur += end
	return rest[:end], true
}
