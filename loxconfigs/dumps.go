package loxconfigs

import (
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
)

// DumpTokens prints the scanned token stream as yaml before parsing.
type DumpTokens bool

var _ configs.Configurable = DumpTokens(false)

func (DumpTokens) ConfigPath() string {
	return "dump_tokens"
}

var dumpTokensFlag = cmds.Switch("-tokens", "print scanned tokens as yaml")

func (Module) DumpTokens(
	loader configs.Loader,
) DumpTokens {
	return DumpTokens(*dumpTokensFlag) || configs.Lookup[DumpTokens](loader)
}

// DumpAST prints every parsed tree before evaluating it.
type DumpAST bool

var _ configs.Configurable = DumpAST(false)

func (DumpAST) ConfigPath() string {
	return "dump_ast"
}

var dumpASTFlag = cmds.Switch("-ast", "print parsed trees")

func (Module) DumpAST(
	loader configs.Loader,
) DumpAST {
	return DumpAST(*dumpASTFlag) || configs.Lookup[DumpAST](loader)
}

// Tapping opens a debug REPL after each evaluation. Flag only.
type Tapping bool

var tappingFlag = cmds.Switch("-tap", "open a starlark prompt after each evaluation")

func (Module) Tapping() Tapping {
	return Tapping(*tappingFlag)
}
