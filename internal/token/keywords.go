package token

// keywords maps exact identifier spellings to their reserved Kind. Applied
// after an identifier has been lexed as a run of lower-case-leading
// identifier characters; anything absent from this table is IdentLower.
var keywords = map[string]Kind{
	"ado":    KwAdo,
	"as":     KwAs,
	"case":   KwCase,
	"do":     KwDo,
	"else":   KwElse,
	"if":     KwIf,
	"in":     KwIn,
	"infixl": KwInfixl,
	"infixr": KwInfixr,
	"let":    KwLet,
	"of":     KwOf,
	"then":   KwThen,
}

// LookupKeyword returns the keyword Kind for s, and whether s is a keyword.
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// operators maps exact symbolic-operator spellings to their reserved Kind.
// A symbolic run that does not match exactly becomes OpSource, an
// arbitrary user-defined operator.
var operators = map[string]Kind{
	"->": OpArrowRight,
	"<-": OpArrowLeft,
	"=":  OpEqual,
	":":  OpColon,
	".":  OpPeriod,
	"|":  OpPipe,
	"?":  OpQuestion,
	"!":  OpBang,
	"<":  OpLessThan,
	">":  OpGreaterThan,
}

// LookupOperator returns the reserved Kind for a scanned symbolic run, and
// whether it was reserved (as opposed to a user-defined OpSource operator).
func LookupOperator(s string) (Kind, bool) {
	k, ok := operators[s]
	return k, ok
}
