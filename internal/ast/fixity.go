package ast

import "wisp/internal/source"

// Associativity is an operator's associativity (§4.4's binding-power rule).
type Associativity uint8

const (
	AssocLeft Associativity = iota
	AssocRight
)

// FixityDomain is the grammar a fixity declaration applies to: expressions
// or types each get their own table.
type FixityDomain uint8

const (
	FixityValue FixityDomain = iota
	FixityType
)

// FixityEntry is the Fixity entry entity: an operator's associativity,
// precedence (0..=9), the domain it applies in, and the identifier the
// operator expands to.
type FixityEntry struct {
	Assoc  Associativity
	Power  uint8
	Domain FixityDomain
	Target source.StringID
}

// BindingPower returns the (left, right) binding-power pair used by the
// Pratt loop: left-associative p binds as (p, p+1), right-associative p as
// (p+1, p).
func (f FixityEntry) BindingPower() (left, right uint8) {
	switch f.Assoc {
	case AssocRight:
		return f.Power + 1, f.Power
	default:
		return f.Power, f.Power + 1
	}
}

// FixityTable maps an operator spelling to its declared fixity. A Module
// carries one for the value domain and one for the type domain.
type FixityTable map[string]FixityEntry
