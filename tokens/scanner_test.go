package tokens

import (
	"errors"
	"math"
	"testing"
)

func TestScan(t *testing.T) {
	type TokenInfo struct {
		Kind   Kind
		Lexeme string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "(){},.-+;*/",
			tokens: []TokenInfo{
				{LeftParen, "("},
				{RightParen, ")"},
				{LeftBrace, "{"},
				{RightBrace, "}"},
				{Comma, ","},
				{Dot, "."},
				{Minus, "-"},
				{Plus, "+"},
				{Semicolon, ";"},
				{Star, "*"},
				{Slash, "/"},
			},
		},
		{
			input: "! != = == < <= > >=",
			tokens: []TokenInfo{
				{Bang, "!"},
				{BangEqual, "!="},
				{Equal, "="},
				{EqualEqual, "=="},
				{Less, "<"},
				{LessEqual, "<="},
				{Greater, ">"},
				{GreaterEqual, ">="},
			},
		},
		{
			input: "!",
			tokens: []TokenInfo{
				{Bang, "!"},
			},
		},
		{
			input: "1 // comment ( ) \"\n2",
			tokens: []TokenInfo{
				{Number, "1"},
				{Number, "2"},
			},
		},
		{
			input: "// only a comment",
		},
		{
			input: "and class else false for fun if nil or print return super this true var while",
			tokens: []TokenInfo{
				{And, "and"},
				{Class, "class"},
				{Else, "else"},
				{False, "false"},
				{For, "for"},
				{Fun, "fun"},
				{If, "if"},
				{Nil, "nil"},
				{Or, "or"},
				{Print, "print"},
				{Return, "return"},
				{Super, "super"},
				{This, "this"},
				{True, "true"},
				{Var, "var"},
				{While, "while"},
			},
		},
		{
			input: "orchid _foo classy",
			tokens: []TokenInfo{
				{Identifier, "orchid"},
				{Identifier, "_foo"},
				{Identifier, "classy"},
			},
		},
		{
			input: "foo1",
			tokens: []TokenInfo{
				{Identifier, "foo"},
				{Number, "1"},
			},
		},
		{
			input: "12.",
			tokens: []TokenInfo{
				{Number, "12"},
				{Dot, "."},
			},
		},
		{
			input: "12.5.3",
			tokens: []TokenInfo{
				{Number, "12.5"},
				{Dot, "."},
				{Number, "3"},
			},
		},
		{
			input: `"a" "" "with // slash"`,
			tokens: []TokenInfo{
				{String, `"a"`},
				{String, `""`},
				{String, `"with // slash"`},
			},
		},
		{
			input: " \t\r\n",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := Scan([]byte(test.input))
			if err != nil {
				t.Fatal(err)
			}
			if len(tokens) != len(test.tokens)+1 {
				t.Fatalf("got %v", tokens)
			}
			for i, expected := range test.tokens {
				if tokens[i].Kind != expected.Kind {
					t.Errorf("step %d: expected kind %v, got %v", i, expected.Kind, tokens[i].Kind)
				}
				if tokens[i].Lexeme != expected.Lexeme {
					t.Errorf("step %d: expected lexeme %q, got %q", i, expected.Lexeme, tokens[i].Lexeme)
				}
			}
			if last := tokens[len(tokens)-1]; last.Kind != EOF {
				t.Fatalf("expected EOF, got %v", last.Kind)
			}
		})
	}
}

func TestNumberLiteral(t *testing.T) {
	for input, expected := range map[string]float64{
		"123":  123,
		"12.5": 12.5,
		"0":    0,
		"0.25": 0.25,
		"007":  7,
	} {
		tokens, err := Scan([]byte(input))
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 2 {
			t.Fatalf("got %v", tokens)
		}
		if tokens[0].Kind != Number {
			t.Fatalf("got %v", tokens[0].Kind)
		}
		if v := tokens[0].Literal.(float64); v != expected {
			t.Fatalf("%s: got %v", input, v)
		}
	}
}

func TestHugeNumberLiteral(t *testing.T) {
	src := make([]byte, 400)
	for i := range src {
		src[i] = '9'
	}
	tokens, err := Scan(src)
	if err != nil {
		t.Fatal(err)
	}
	if v := tokens[0].Literal.(float64); !math.IsInf(v, 1) {
		t.Fatalf("got %v", v)
	}
}

func TestLiteralPresence(t *testing.T) {
	tokens, err := Scan([]byte(`"s" 1 x true + nil`))
	if err != nil {
		t.Fatal(err)
	}
	for _, token := range tokens {
		hasLiteral := token.Literal != nil
		wantLiteral := token.Kind == Number || token.Kind == String
		if hasLiteral != wantLiteral {
			t.Fatalf("bad literal: %v", token)
		}
	}
	if s := tokens[0].Literal.(string); s != "s" {
		t.Fatalf("got %q", s)
	}
}

func TestPositions(t *testing.T) {
	tokens, err := Scan([]byte("1 + 2\n  >= x"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []Pos{
		{1, 1},
		{1, 3},
		{1, 5},
		{2, 4},
		{2, 6},
		{2, 6},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, pos := range expected {
		if tokens[i].Pos != pos {
			t.Fatalf("token %d: got %v, want %v", i, tokens[i].Pos, pos)
		}
	}
}

func TestMultilineString(t *testing.T) {
	tokens, err := Scan([]byte("\"a\nbc\" 1"))
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Literal.(string) != "a\nbc" {
		t.Fatalf("got %q", tokens[0].Literal)
	}
	if tokens[0].Pos != (Pos{2, 4}) {
		t.Fatalf("got %v", tokens[0].Pos)
	}
	if tokens[1].Pos.Line != 2 {
		t.Fatalf("got %v", tokens[1].Pos)
	}
}

func TestNoEscapes(t *testing.T) {
	tokens, err := Scan([]byte(`"a\nb"`))
	if err != nil {
		t.Fatal(err)
	}
	if s := tokens[0].Literal.(string); s != `a\nb` {
		t.Fatalf("got %q", s)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Scan([]byte("\"abc"))
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, ErrLexical) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Pos.Line != 1 {
		t.Fatalf("got %v", e.Pos)
	}

	_, err = Scan([]byte("1\n\"abc\ndef"))
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Pos.Line != 3 {
		t.Fatalf("got %v", e.Pos)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := Scan([]byte("1 + @ + #"))
	if !errors.Is(err, ErrUnexpectedCharacter) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Char != '@' {
		t.Fatalf("got %q", e.Char)
	}
	if e.Pos != (Pos{1, 5}) {
		t.Fatalf("got %v", e.Pos)
	}
	if e.Message() != `Unexpected character '@'.` {
		t.Fatalf("got %s", e.Message())
	}
}

func TestInvalidUTF8(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	Scan([]byte{'"', 0xff, '"'})
}

func TestUnicodeIdentifier(t *testing.T) {
	tokens, err := Scan([]byte("héllo"))
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != Identifier || tokens[0].Lexeme != "héllo" {
		t.Fatalf("got %v", tokens[0])
	}
	if tokens[0].Pos.Column != 5 {
		t.Fatalf("got %v", tokens[0].Pos)
	}
}

func TestTokenString(t *testing.T) {
	tokens, err := Scan([]byte(`12.5 "s" +`))
	if err != nil {
		t.Fatal(err)
	}
	if s := tokens[0].String(); s != "Number 12.5 12.5 (1)" {
		t.Fatalf("got %s", s)
	}
	if s := tokens[1].String(); s != `String "s" "s" (1)` {
		t.Fatalf("got %s", s)
	}
	if s := tokens[2].String(); s != "Plus + nil (1)" {
		t.Fatalf("got %s", s)
	}
}
