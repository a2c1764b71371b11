package expr

// Kind tags every node of an Expression. Behavior over Kind is
// table-driven (Arity, Precedence, Associativity, the operator symbol)
// rather than dispatched through an interface hierarchy, collapsing
// the Formula sum type onto a handful of switch statements.
type Kind uint8

const (
	Const Kind = iota // leaf, Bool payload
	Var               // leaf, VarNr payload
	Not               // unary
	And               // binary
	Or                // binary
	Impl              // binary
	Eqv               // binary
	Xor               // binary
)

// Assoc records how chains of equal-precedence binary operators of a
// given Kind associate, for stringification purposes only: the parser
// always treats binary operators as right-associative (see package
// parser), regardless of the Assoc reported here.
type Assoc uint8

const (
	NonAssoc Assoc = iota
	RightAssoc
	BothAssoc
)

// Arity returns the number of operands a node of this Kind carries.
func (k Kind) Arity() int {
	switch k {
	case Const, Var:
		return 0
	case Not:
		return 1
	case And, Or, Impl, Eqv, Xor:
		return 2
	default:
		panic("expr: invalid Kind")
	}
}

// Precedence returns the operator's binding strength; higher binds
// tighter. Leaves report the highest precedence so they are never
// parenthesized.
func (k Kind) Precedence() int {
	switch k {
	case Const, Var:
		return 20
	case Not:
		return 14
	case And:
		return 12
	case Or:
		return 10
	case Impl:
		return 8
	case Eqv, Xor:
		return 6
	default:
		panic("expr: invalid Kind")
	}
}

// Associativity reports the stringification associativity of k.
func (k Kind) Associativity() Assoc {
	switch k {
	case Const, Var:
		return NonAssoc
	case Not:
		return NonAssoc
	case And, Or, Eqv, Xor:
		return BothAssoc
	case Impl:
		return RightAssoc
	default:
		panic("expr: invalid Kind")
	}
}

// Symbol returns the operator's prefix/infix rendering symbol.
func (k Kind) Symbol() string {
	switch k {
	case Not:
		return "~"
	case And:
		return "&"
	case Or:
		return "|"
	case Impl:
		return ">"
	case Eqv:
		return "="
	case Xor:
		return "^"
	default:
		panic("expr: invalid Kind")
	}
}

func (k Kind) String() string {
	switch k {
	case Const:
		return "Const"
	case Var:
		return "Var"
	case Not:
		return "Not"
	case And:
		return "And"
	case Or:
		return "Or"
	case Impl:
		return "Impl"
	case Eqv:
		return "Eqv"
	case Xor:
		return "Xor"
	default:
		return "Invalid"
	}
}
