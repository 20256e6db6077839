package filter

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type exprEnv struct {
	Value string   `expr:"value"`
	Args  []string `expr:"args"`
}

// AddExpr registers a custom filter whose predicate is an expression
// over `value` and `args`, e.g.
//
//	r.AddExpr("slug", `value matches "^[a-z0-9-]+$"`)
//
// The expression must evaluate to a bool.
func (r *Registry) AddExpr(name, src string) error {
	prog, err := expr.Compile(src, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return err
	}
	return r.Add(name, exprFunc(prog))
}

func exprFunc(prog *vm.Program) Func {
	return func(value string, args []string) bool {
		out, err := expr.Run(prog, exprEnv{Value: value, Args: args})
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}
}
