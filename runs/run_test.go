package runs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/evals"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/parsers"
	"github.com/reusee/lox/tokens"
	"github.com/reusee/lox/values"
)

func newScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(logs.Module),
		new(debugs.Module),
		new(loxconfigs.Module),
		new(Module),
	)
}

func TestRun(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "7\n"},
		{"(1 + 2) * 3", "9\n"},
		{"8 - 3 - 2", "3\n"},
		{"-(-3)", "3\n"},
		{"3.5", "3.5\n"},
		{`"foo" + "bar"`, "foobar\n"},
		{"nil", "nil\n"},
		{"!nil", "true\n"},
		{`5 == "5"`, "true\n"},
		{"1 / 0", "inf\n"},
		{"-1 / 0", "-inf\n"},
		{"0 / 0", "nan\n"},
		{"1; 2; 3", "1\n2\n3\n"},
		{"1;\n\"a\";\ntrue;", "1\na\ntrue\n"},
		{"", ""},
		{";;", ""},
		{"// comment only", ""},
	}
	newScope(t).Call(func(
		run Run,
	) {
		for _, test := range tests {
			t.Run(test.input, func(t *testing.T) {
				out := new(bytes.Buffer)
				if err := run(context.Background(), "test", []byte(test.input), out); err != nil {
					t.Fatal(err)
				}
				if out.String() != test.expected {
					t.Fatalf("got %q", out.String())
				}
			})
		}
	})
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		input  string
		output string
		err    error
		code   int
		report string
	}{
		{
			"1 @ 2", "", tokens.ErrUnexpectedCharacter, ExitDataErr,
			"[line 1] Error: Unexpected character '@'.\n",
		},
		{
			"1;\n\"abc", "", tokens.ErrUnterminatedString, ExitDataErr,
			"[line 2] Error: Unterminated string.\n",
		},
		{
			"1 +; 2; (3", "", parsers.ErrParse, ExitDataErr,
			"[line 1] Error at ';': Unexpected token Semicolon.\n" +
				"[line 1] Error at end: Expect ')' after expression.\n",
		},
		{
			"1 2", "", parsers.ErrExpectSemicolon, ExitDataErr,
			"[line 1] Error at '2': Expect ';' after expression.\n",
		},
		{
			"1; -nil; 2", "1\n", evals.ErrOperandNumber, ExitSoftware,
			"[line 1] Error at '-': Operand must be a number, got nil.\n",
		},
		{
			"\"a\"\n + 1", "", evals.ErrOperandsNumbersOrStrings, ExitSoftware,
			"[line 2] Error at '+': Operands must be two numbers or two strings, got string \"a\" and number 1.\n",
		},
		{
			"\xff", "", ErrInvalidUTF8, ExitDataErr,
			"Error: source is not valid utf-8\n",
		},
	}
	newScope(t).Call(func(
		run Run,
	) {
		for _, test := range tests {
			t.Run(test.input, func(t *testing.T) {
				out := new(bytes.Buffer)
				err := run(context.Background(), "test", []byte(test.input), out)
				if !errors.Is(err, test.err) {
					t.Fatalf("got %v", err)
				}
				if out.String() != test.output {
					t.Fatalf("got %q", out.String())
				}
				if code := ExitCode(err); code != test.code {
					t.Fatalf("got %d", code)
				}
				report := new(bytes.Buffer)
				Report(report, err)
				if report.String() != test.report {
					t.Fatalf("got %q", report.String())
				}
			})
		}
	})
}

func TestRunMaxDepth(t *testing.T) {
	src := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	newScope(t).Fork(
		func() loxconfigs.MaxDepth {
			return 5
		},
	).Call(func(
		run Run,
	) {
		err := run(context.Background(), "test", []byte(src), new(bytes.Buffer))
		if !errors.Is(err, parsers.ErrTooDeep) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRunLongChain(t *testing.T) {
	src := "1" + strings.Repeat(" + 1", 70000) + ";\n" + "0" + strings.Repeat(" - 1", 70000)
	newScope(t).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		if err := run(context.Background(), "test", []byte(src), out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "70001\n-70000\n" {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestRunDumps(t *testing.T) {
	newScope(t).Fork(
		func() loxconfigs.DumpTokens {
			return true
		},
		func() loxconfigs.DumpAST {
			return true
		},
	).Call(func(
		run Run,
	) {
		out := new(bytes.Buffer)
		if err := run(context.Background(), "test", []byte("-1 + 2"), out); err != nil {
			t.Fatal(err)
		}
		output := out.String()
		for _, expected := range []string{
			"- kind: Minus\n",
			"- kind: Number\n",
			"  literal: 2\n",
			"- kind: EOF\n",
			"(+ (- 1) 2)\n1\n",
		} {
			if !strings.Contains(output, expected) {
				t.Fatalf("%q not in %q", expected, output)
			}
		}
	})
}

func TestRunTap(t *testing.T) {
	var tapped []map[string]any
	newScope(t).Fork(
		func() loxconfigs.Tapping {
			return true
		},
		func() debugs.Tap {
			return func(_ context.Context, _ string, globals map[string]any) {
				tapped = append(tapped, globals)
			}
		},
	).Call(func(
		run Run,
	) {
		if err := run(context.Background(), "test", []byte("1; 2 * 3"), new(bytes.Buffer)); err != nil {
			t.Fatal(err)
		}
		if len(tapped) != 2 {
			t.Fatalf("got %d", len(tapped))
		}
		if v := tapped[1]["value"]; v != values.Number(6) {
			t.Fatalf("got %v", v)
		}
		eval := tapped[0]["eval"].(func(string) string)
		if s := eval(`"a" + "b"`); s != "ab" {
			t.Fatalf("got %s", s)
		}
		if s := eval("-nil"); !strings.Contains(s, "runtime error") {
			t.Fatalf("got %s", s)
		}
	})
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitOK {
		t.Fatal()
	}
	if ExitCode(errors.New("foo")) != ExitFailure {
		t.Fatal()
	}
	// parse errors win
	err := errors.Join(&parsers.Error{Err: parsers.ErrUnexpectedToken}, &evals.Error{Err: evals.ErrOperandNumber})
	if ExitCode(err) != ExitDataErr {
		t.Fatal()
	}
}
