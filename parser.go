package netrc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// refKind discriminates the current-target reference.
type refKind int

const (
	refNone refKind = iota
	refDefault
	refHost
)

// machineRef selects which Machine record in-progress field keywords
// mutate: nothing yet, the default record, or a host by index. It is
// resolved to a live pointer fresh at every field keyword so it stays valid
// while the host slice grows.
type machineRef struct {
	kind refKind
	host int // valid when kind == refHost
}

// Parse reads netrc text from src and returns the parsed model.
// Returns a *ParseError on malformed input or a *ReadError if the source
// fails; the first error of either kind aborts the parse.
func Parse(src io.Reader) (*Netrc, error) {
	p := &parser{lex: newLexer(src), netrc: &Netrc{}}
	return p.run()
}

// ParseString parses netrc text held in memory.
func ParseString(s string) (*Netrc, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile opens path and parses its contents.
func ParseFile(path string) (*Netrc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening netrc file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

type parser struct {
	lex    *lexer
	netrc  *Netrc
	target machineRef
}

func (p *parser) run() (*Netrc, error) {
	for {
		w, ok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return p.netrc, nil
		}
		if err := p.parseEntry(w); err != nil {
			return nil, err
		}
	}
}

// parseEntry dispatches one keyword, mutating the model and the
// current-target reference.
func (p *parser) parseEntry(word string) error {
	switch word {
	case "machine":
		name, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		p.netrc.Hosts = append(p.netrc.Hosts, Host{Name: name})
		p.target = machineRef{kind: refHost, host: len(p.netrc.Hosts) - 1}
		return nil

	case "default":
		p.netrc.Default = &Machine{}
		p.target = machineRef{kind: refDefault}
		return nil

	case "login":
		m, err := p.currentMachine("login")
		if err != nil {
			return err
		}
		w, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		m.Login = w
		return nil

	case "password":
		m, err := p.currentMachine("password")
		if err != nil {
			return err
		}
		w, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		m.Password = w
		return nil

	case "account":
		m, err := p.currentMachine("account")
		if err != nil {
			return err
		}
		w, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		m.Account = w
		return nil

	case "port":
		m, err := p.currentMachine("port")
		if err != nil {
			return err
		}
		w, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(w, 10, 16)
		if err != nil {
			return &ParseError{
				Message: fmt.Sprintf("Unable to parse port number `%s'", w),
				Line:    p.lex.lnum,
			}
		}
		m.Port = uint16(n)
		return nil

	case "macdef":
		name, err := p.lex.mustNext()
		if err != nil {
			return err
		}
		body, err := p.lex.rawBlock()
		if err != nil {
			return err
		}
		p.netrc.Macros = append(p.netrc.Macros, Macro{Name: name, Body: body})
		// Fields never leak across a macro boundary onto the machine
		// that was active before it.
		p.target = machineRef{}
		return nil

	default:
		return &ParseError{
			Message: fmt.Sprintf("Unknown entry `%s'", word),
			Line:    p.lex.lnum,
		}
	}
}

// currentMachine resolves the current-target reference to the record a
// field keyword mutates, or fails when no machine or default entry has been
// seen yet.
func (p *parser) currentMachine(entry string) (*Machine, error) {
	switch p.target.kind {
	case refDefault:
		return p.netrc.Default, nil
	case refHost:
		return &p.netrc.Hosts[p.target.host].Machine, nil
	default:
		return nil, &ParseError{
			Message: "No machine defined for " + entry,
			Line:    p.lex.lnum,
		}
	}
}
