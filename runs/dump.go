package runs

import (
	"io"

	"github.com/reusee/lox/tokens"
	"gopkg.in/yaml.v3"
)

type tokenDump struct {
	Kind    string `yaml:"kind"`
	Lexeme  string `yaml:"lexeme,omitempty"`
	Literal any    `yaml:"literal,omitempty"`
	Line    int    `yaml:"line"`
	Column  int    `yaml:"column"`
}

func writeTokens(w io.Writer, toks []tokens.Token) error {
	dumps := make([]tokenDump, 0, len(toks))
	for _, token := range toks {
		dumps = append(dumps, tokenDump{
			Kind:    token.Kind.String(),
			Lexeme:  token.Lexeme,
			Literal: token.Literal,
			Line:    token.Pos.Line,
			Column:  token.Pos.Column,
		})
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(dumps); err != nil {
		return err
	}
	return encoder.Close()
}
