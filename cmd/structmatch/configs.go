package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structmatch/filter"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	filters []filterDef

	Main *cli.Command
}

type filterDef struct {
	name string
	expr string
}

// filterOpt accumulates -filter name=expr definitions.
func (cfg *MainConfig) filterOpt() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		name, src, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -filter wants name=expr, got %q", cli.ErrUsage, v)
		}
		cfg.filters = append(cfg.filters, filterDef{name: name, expr: src})
		return v, nil
	})
}

func (cfg *MainConfig) registry() (*filter.Registry, error) {
	reg := filter.NewRegistry()
	for _, def := range cfg.filters {
		if err := reg.AddExpr(def.name, def.expr); err != nil {
			return nil, fmt.Errorf("bad filter %q: %w", def.name, err)
		}
	}
	return reg, nil
}

type TypeConfig struct {
	*MainConfig

	S bool `cli:"name=s desc='schema argument is a literal string'"`
	F bool `cli:"name=f desc='schema argument is a file'"`

	Command *cli.Command
}

type ContainsConfig struct {
	*MainConfig

	S    bool `cli:"name=s desc='needle argument is a literal string'"`
	F    bool `cli:"name=f desc='needle argument is a file'"`
	Diff bool `cli:"name=diff desc='show a diff of needle vs matched fragment on failure'"`

	Command *cli.Command
}
