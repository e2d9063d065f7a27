package ast

// Module is the Module entity (§3): an ordered list of declarations plus
// the value and type fixity tables collected from the source's own
// infixl/infixr declarations.
type Module struct {
	Declarations []*Declaration
	ValueFixity  FixityTable
	TypeFixity   FixityTable
}

// NewModule creates an empty Module with both fixity tables initialized.
func NewModule() *Module {
	return &Module{
		ValueFixity: make(FixityTable),
		TypeFixity:  make(FixityTable),
	}
}
