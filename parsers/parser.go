package parsers

import (
	"errors"
	"fmt"

	"github.com/reusee/lox/exprs"
	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
)

/*
Grammar, lowest to highest binding power:

	expression → equality
	equality   → comparison ( ( "!=" | "==" ) comparison )*
	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term       → factor ( ( "-" | "+" ) factor )*
	factor     → unary ( ( "/" | "*" ) unary )*
	unary      → ( "!" | "-" ) unary | primary
	primary    → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"

Binary levels are left-associative, unary is right-associative.
*/

const DefaultMaxDepth = 256

type Parser struct {
	tokens   []tokens.Token
	current  int
	depth    int
	maxDepth int
}

type Option func(*Parser)

// WithMaxDepth bounds the nesting of unary operators and groupings.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

func New(toks []tokens.Token, options ...Option) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != tokens.EOF {
		var pos tokens.Pos
		if len(toks) > 0 {
			pos = toks[len(toks)-1].Pos
		}
		toks = append(toks[:len(toks):len(toks)], tokens.Token{
			Kind: tokens.EOF,
			Pos:  pos,
		})
	}
	p := &Parser{
		tokens:   toks,
		maxDepth: DefaultMaxDepth,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses exactly one expression spanning all tokens.
func (p *Parser) Parse() (exprs.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.errorAt(p.peek(), ErrExpectEnd, "Expect end of expression.")
	}
	return expr, nil
}

// ParseAll parses semicolon-separated expressions. After an error it synchronizes and
// continues, so the returned error joins every diagnostic.
func (p *Parser) ParseAll() ([]exprs.Expr, error) {
	var ret []exprs.Expr
	var errs []error
	for !p.isAtEnd() {
		if p.match(tokens.Semicolon) {
			continue
		}
		expr, err := p.unit()
		if err != nil {
			errs = append(errs, err)
			p.Synchronize()
			continue
		}
		ret = append(ret, expr)
	}
	return ret, errors.Join(errs...)
}

func (p *Parser) unit() (exprs.Expr, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.match(tokens.Semicolon) || p.isAtEnd() {
		return expr, nil
	}
	return nil, p.errorAt(p.peek(), ErrExpectSemicolon, "Expect ';' after expression.")
}

// Synchronize discards tokens until a statement boundary: just after a semicolon,
// or before a token that begins a declaration or statement.
func (p *Parser) Synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == tokens.Semicolon {
			return
		}
		if p.peek().Kind.StartsStatement() {
			return
		}
		p.advance()
	}
}

func (p *Parser) expression() (exprs.Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (exprs.Expr, error) {
	return p.leftAssoc(p.comparison, tokens.BangEqual, tokens.EqualEqual)
}

func (p *Parser) comparison() (exprs.Expr, error) {
	return p.leftAssoc(p.term, tokens.Greater, tokens.GreaterEqual, tokens.Less, tokens.LessEqual)
}

func (p *Parser) term() (exprs.Expr, error) {
	return p.leftAssoc(p.factor, tokens.Minus, tokens.Plus)
}

func (p *Parser) factor() (exprs.Expr, error) {
	return p.leftAssoc(p.unary, tokens.Slash, tokens.Star)
}

func (p *Parser) leftAssoc(
	operand func() (exprs.Expr, error),
	operators ...tokens.Kind,
) (exprs.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		op, ok := exprs.BinaryOpOf(p.previous())
		if !ok {
			panic(fmt.Errorf("not a binary operator: %v", p.previous()))
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &exprs.Binary{
			Left:  expr,
			Op:    op,
			Right: right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (exprs.Expr, error) {
	if !p.match(tokens.Bang, tokens.Minus) {
		return p.primary()
	}
	token := p.previous()
	op, ok := exprs.UnaryOpOf(token)
	if !ok {
		panic(fmt.Errorf("not a unary operator: %v", token))
	}
	if err := p.enter(token); err != nil {
		return nil, err
	}
	defer p.leave()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &exprs.Unary{
		Op:      op,
		Operand: operand,
	}, nil
}

func (p *Parser) primary() (exprs.Expr, error) {
	switch {

	case p.match(tokens.False):
		return &exprs.Literal{Value: values.Boolean(false)}, nil
	case p.match(tokens.True):
		return &exprs.Literal{Value: values.Boolean(true)}, nil
	case p.match(tokens.Nil):
		return &exprs.Literal{Value: values.Nil{}}, nil

	case p.match(tokens.Number):
		return &exprs.Literal{
			Value: values.Number(p.previous().Literal.(float64)),
		}, nil
	case p.match(tokens.String):
		return &exprs.Literal{
			Value: values.String(p.previous().Literal.(string)),
		}, nil

	case p.match(tokens.LeftParen):
		if err := p.enter(p.previous()); err != nil {
			return nil, err
		}
		defer p.leave()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(tokens.RightParen, ErrExpectRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &exprs.Grouping{
			Inner: inner,
		}, nil

	}

	token := p.peek()
	return nil, p.errorAt(token, ErrUnexpectedToken, fmt.Sprintf("Unexpected token %s.", token.Kind))
}

func (p *Parser) enter(token tokens.Token) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depth--
		return p.errorAt(token, ErrTooDeep, fmt.Sprintf("Expression nested deeper than %d levels.", p.maxDepth))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) errorAt(token tokens.Token, err error, message string) error {
	return &Error{
		Err:     err,
		Token:   token,
		Message: message,
	}
}

func (p *Parser) consume(kind tokens.Kind, err error, message string) error {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return p.errorAt(p.peek(), err, message)
}

func (p *Parser) match(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind tokens.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() {
	if !p.isAtEnd() {
		p.current++
	}
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == tokens.EOF
}

func (p *Parser) peek() tokens.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() tokens.Token {
	return p.tokens[p.current-1]
}
