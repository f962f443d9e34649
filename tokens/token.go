package tokens

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is immutable once scanned.
// Literal is float64 for Number, string for String, and nil for every other kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Pos     Pos
}

func (t Token) String() string {
	literal := "nil"
	switch v := t.Literal.(type) {
	case float64:
		literal = fmt.Sprintf("%g", v)
	case string:
		literal = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("%s %s %s (%d)", t.Kind, t.Lexeme, literal, t.Pos.Line)
}
