package netrc

import "fmt"

// ParseError reports a syntactic violation in the input. Line is the
// 1-based physical line number active when the failing keyword was read.
type ParseError struct {
	Message string
	Line    int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ReadError wraps a failure from the underlying byte source. The source
// error is propagated unchanged and reachable through Unwrap.
type ReadError struct {
	Line  int
	Cause error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: read error: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("read error: %v", e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }
