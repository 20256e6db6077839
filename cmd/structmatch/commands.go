package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "filter",
		Description: "register a custom filter from an expression",
		Type:        cli.NamedFuncOpt(cfg.filterOpt(), "(name=expr)"),
	})

	return cli.NewCommandAt(&cfg.Main, "structmatch").
		WithSynopsis("structmatch [opts] command [opts]").
		WithDescription("structmatch checks documents against declarative contracts.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			if _, err := cfg.Main.Parse(cc, args); err != nil {
				return err
			}
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			TypeCommand(cfg),
			ContainsCommand(cfg))
}

func TypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "type").
		WithAliases("t", "ty").
		WithSynopsis("type [opts] <schema> [files]").
		WithDescription("match documents field by field against a type schema").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return typeMatch(cfg, cc, args)
		})
}

func ContainsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ContainsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "contains").
		WithAliases("c", "co").
		WithSynopsis("contains [opts] <needle> [files]").
		WithDescription("check that documents structurally contain a needle").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return contains(cfg, cc, args)
		})
}
