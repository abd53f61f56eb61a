package netrc

import (
	"bufio"
	"io"
	"strings"
)

// lexer turns a sequential byte source into a stream of words. It owns one
// lineTokens for the current line and replaces it wholesale on refill. lnum
// counts physical lines actually read from the source, so diagnostics point
// at the line where a keyword sits even when several keywords share it.
type lexer struct {
	r    *bufio.Reader
	line lineTokens
	lnum int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r)}
}

// readLine reads one physical line including its terminator. An empty
// return with a nil error means the source is exhausted. The line counter
// advances only when bytes were actually read.
func (l *lexer) readLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if len(line) > 0 {
		l.lnum++
	}
	if err != nil && err != io.EOF {
		return "", &ReadError{Line: l.lnum, Cause: err}
	}
	// io.EOF with a partial final line still yields that line; the next
	// call returns empty and signals exhaustion.
	return line, nil
}

// next returns the next word, pulling new lines from the source as the
// current one runs out. ok=false signals end of input at a word boundary.
func (l *lexer) next() (word string, ok bool, err error) {
	for {
		if w, ok := l.line.next(); ok {
			return w, true, nil
		}
		line, err := l.readLine()
		if err != nil {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
		l.line = lineTokens{buf: line}
	}
}

// mustNext is next for positions where the grammar requires a word.
func (l *lexer) mustNext() (string, error) {
	w, ok, err := l.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &ParseError{Message: "Unexpected end of file", Line: l.lnum}
	}
	return w, nil
}

// rawBlock captures a macro body: the unconsumed remainder of the current
// line, then whole raw lines until one of at most a single byte (empty or a
// bare newline) is read. The terminating blank line is kept in the body;
// historical netrc macros end with that trailing blank line and consumers
// depend on it. A "\r\n" blank line is two bytes and does not terminate.
func (l *lexer) rawBlock() (string, error) {
	var body strings.Builder
	body.WriteString(l.line.rest())
	l.line = lineTokens{}
	for {
		line, err := l.readLine()
		if err != nil {
			return "", err
		}
		body.WriteString(line)
		if len(line) <= 1 {
			return body.String(), nil
		}
	}
}
