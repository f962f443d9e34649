package exprs

import (
	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
)

// Expr is a closed sum type. Each node exclusively owns its children.
type Expr interface {
	isExpr()
}

type Literal struct {
	Value values.Value
}

type Grouping struct {
	Inner Expr
}

type Unary struct {
	Op      UnaryOp
	Operand Expr
}

type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

var (
	_ Expr = new(Literal)
	_ Expr = new(Grouping)
	_ Expr = new(Unary)
	_ Expr = new(Binary)
)

func (*Literal) isExpr()  {}
func (*Grouping) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}

type UnaryOpKind uint8

const (
	Negate UnaryOpKind = iota + 1
	Not
)

func (k UnaryOpKind) String() string {
	switch k {
	case Negate:
		return "-"
	case Not:
		return "!"
	}
	return "?"
}

type UnaryOp struct {
	Kind UnaryOpKind
	Pos  tokens.Pos
}

type BinaryOpKind uint8

const (
	Equal BinaryOpKind = iota + 1
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Add
	Subtract
	Multiply
	Divide
)

var binaryOpSymbols = [...]string{
	Equal:        "==",
	NotEqual:     "!=",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Add:          "+",
	Subtract:     "-",
	Multiply:     "*",
	Divide:       "/",
}

func (k BinaryOpKind) String() string {
	if k > 0 && int(k) < len(binaryOpSymbols) {
		return binaryOpSymbols[k]
	}
	return "?"
}

type BinaryOp struct {
	Kind BinaryOpKind
	Pos  tokens.Pos
}

var unaryOpKinds = map[tokens.Kind]UnaryOpKind{
	tokens.Minus: Negate,
	tokens.Bang:  Not,
}

var binaryOpKinds = map[tokens.Kind]BinaryOpKind{
	tokens.EqualEqual:   Equal,
	tokens.BangEqual:    NotEqual,
	tokens.Less:         Less,
	tokens.LessEqual:    LessEqual,
	tokens.Greater:      Greater,
	tokens.GreaterEqual: GreaterEqual,
	tokens.Plus:         Add,
	tokens.Minus:        Subtract,
	tokens.Star:         Multiply,
	tokens.Slash:        Divide,
}

// UnaryOpOf converts an operator token. ok is false if the token is not a unary operator.
func UnaryOpOf(token tokens.Token) (op UnaryOp, ok bool) {
	kind, ok := unaryOpKinds[token.Kind]
	if !ok {
		return
	}
	return UnaryOp{
		Kind: kind,
		Pos:  token.Pos,
	}, true
}

// BinaryOpOf converts an operator token. ok is false if the token is not a binary operator.
func BinaryOpOf(token tokens.Token) (op BinaryOp, ok bool) {
	kind, ok := binaryOpKinds[token.Kind]
	if !ok {
		return
	}
	return BinaryOp{
		Kind: kind,
		Pos:  token.Pos,
	}, true
}
