package loxconfigs

import (
	"cmp"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/parsers"
)

// MaxDepth bounds unary and grouping nesting when parsing.
type MaxDepth int

var _ configs.Configurable = MaxDepth(0)

func (MaxDepth) ConfigPath() string {
	return "max_depth"
}

var maxDepthFlag = cmds.Var[int]("-max-depth", "bound unary and grouping nesting")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return cmp.Or(
		MaxDepth(max(*maxDepthFlag, 0)),
		configs.Lookup[MaxDepth](loader),
		MaxDepth(parsers.DefaultMaxDepth),
	)
}
