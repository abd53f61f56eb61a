package netrc

// Machine is one credential record. Password and Account are optional; the
// zero string means the field was not present (a parsed word is never
// empty). Port is optional in the same way and is range-checked to 16 bits
// at parse time.
type Machine struct {
	Login    string
	Password string
	Account  string
	Port     uint16
}

// Host pairs a machine entry's name with its record. Hosts appear in the
// order they were declared; later hosts with the same name are legal and
// kept distinct.
type Host struct {
	Name    string
	Machine Machine
}

// Macro is a named block of raw text defined by a macdef entry. The body is
// everything after the macro name up to and including the terminating blank
// line (or end of input), with line terminators preserved.
type Macro struct {
	Name string
	Body string
}

// Netrc is the parsed representation of a netrc file.
type Netrc struct {
	Hosts   []Host   // all machine entries in declaration order
	Default *Machine // the default entry, nil if none
	Macros  []Macro  // all macdef entries in declaration order
}

// MachineFor resolves credentials for a host name: the first matching host
// entry wins, the default record is the fallback, nil means no match at
// all. The returned pointer aliases the Netrc's own record.
func (n *Netrc) MachineFor(host string) *Machine {
	for i := range n.Hosts {
		if n.Hosts[i].Name == host {
			return &n.Hosts[i].Machine
		}
	}
	return n.Default
}
