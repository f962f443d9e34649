package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type Scanner struct {
	source  []byte
	tokens  []Token
	start   int
	current int
	line    int
	column  int
}

func NewScanner(source []byte) *Scanner {
	if !utf8.Valid(source) {
		panic(fmt.Errorf("source is not valid utf-8"))
	}
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Scan returns every token of src, ending with a single EOF token.
// Scanning stops at the first lexical error.
func Scan(src []byte) ([]Token, error) {
	return NewScanner(src).Scan()
}

func (s *Scanner) Scan() ([]Token, error) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.tokens = append(s.tokens, Token{
		Kind: EOF,
		Pos:  s.pos(),
	})
	return s.tokens, nil
}

func (s *Scanner) pos() Pos {
	return Pos{
		Line:   s.line,
		Column: s.column,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRune(s.source[s.current:])
	s.current += size
	s.column++
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRune(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.isAtEnd() {
		return 0
	}
	_, size := utf8.DecodeRune(s.source[s.current:])
	if s.current+size >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRune(s.source[s.current+size:])
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) newline() {
	s.line++
	s.column = 0
}

func (s *Scanner) addToken(kind Kind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  string(s.source[s.start:s.current]),
		Literal: literal,
		Pos:     s.pos(),
	})
}

func (s *Scanner) pick(expected rune, matched Kind, otherwise Kind) {
	if s.match(expected) {
		s.addToken(matched, nil)
	} else {
		s.addToken(otherwise, nil)
	}
}

func (s *Scanner) scanToken() error {
	c := s.advance()
	switch c {

	case '(':
		s.addToken(LeftParen, nil)
	case ')':
		s.addToken(RightParen, nil)
	case '{':
		s.addToken(LeftBrace, nil)
	case '}':
		s.addToken(RightBrace, nil)
	case ',':
		s.addToken(Comma, nil)
	case '.':
		s.addToken(Dot, nil)
	case '-':
		s.addToken(Minus, nil)
	case '+':
		s.addToken(Plus, nil)
	case ';':
		s.addToken(Semicolon, nil)
	case '*':
		s.addToken(Star, nil)

	case '!':
		s.pick('=', BangEqual, Bang)
	case '=':
		s.pick('=', EqualEqual, Equal)
	case '<':
		s.pick('=', LessEqual, Less)
	case '>':
		s.pick('=', GreaterEqual, Greater)

	case '/':
		if s.match('/') {
			// comment runs to the end of the line
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(Slash, nil)
		}

	case ' ', '\r', '\t':
	case '\n':
		s.newline()

	case '"':
		return s.string()

	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			return &Error{
				Err:  ErrUnexpectedCharacter,
				Pos:  s.pos(),
				Char: c,
			}
		}
	}

	return nil
}

func (s *Scanner) string() error {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.newline()
		}
		s.advance()
	}
	if s.isAtEnd() {
		return &Error{
			Err: ErrUnterminatedString,
			Pos: s.pos(),
		}
	}
	// closing quote
	s.advance()
	value := string(s.source[s.start+1 : s.current-1])
	s.addToken(String, value)
	return nil
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	// a trailing dot without digits is not part of the number
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, err := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// digits with an optional fraction always parse, overflow yields inf
		panic(err)
	}
	s.addToken(Number, value)
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) {
		s.advance()
	}
	s.addToken(LookupKeyword(string(s.source[s.start:s.current])), nil)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
