// Package netrc parses .netrc credential files into a structured model.
//
// A .netrc file is a whitespace-delimited, line-oriented list of machine
// entries (machine/login/password/account/port), an optional default entry,
// and named macro definitions (macdef) whose raw bodies run until a blank
// line. The parser is a single forward pass with three layers:
//
//   - lineTokens: splits one line into whitespace-delimited words with an
//     incremental cursor.
//   - lexer: wraps a buffered byte source, refilling the tokenizer line by
//     line and tracking a 1-based line number for diagnostics.
//   - Parse: the entry dispatch loop that consumes words, recognizes
//     keywords, and builds the Netrc model.
//
// Usage:
//
//	n, err := netrc.ParseFile("/home/me/.netrc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m := n.MachineFor("example.com"); m != nil {
//	    fmt.Println(m.Login)
//	}
//
// Parsing is purely syntactic: duplicate hosts are preserved in order, field
// values are never validated beyond the port's numeric range, and the first
// error aborts the parse with the offending line number.
package netrc
