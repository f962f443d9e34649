package exprs

import (
	"fmt"
	"strings"
)

// Print renders expr in parenthesized prefix form, e.g. (* (group (+ 1 2)) 3).
func Print(expr Expr) string {
	var b strings.Builder
	printTo(&b, expr)
	return b.String()
}

func printTo(b *strings.Builder, expr Expr) {
	switch expr := expr.(type) {

	case *Literal:
		b.WriteString(expr.Value.String())

	case *Grouping:
		b.WriteString("(group ")
		printTo(b, expr.Inner)
		b.WriteString(")")

	case *Unary:
		b.WriteString("(")
		b.WriteString(expr.Op.Kind.String())
		b.WriteString(" ")
		printTo(b, expr.Operand)
		b.WriteString(")")

	case *Binary:
		b.WriteString("(")
		b.WriteString(expr.Op.Kind.String())
		b.WriteString(" ")
		printTo(b, expr.Left)
		b.WriteString(" ")
		printTo(b, expr.Right)
		b.WriteString(")")

	default:
		panic(fmt.Errorf("unknown expression: %T", expr))
	}
}
