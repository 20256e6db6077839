package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structmatch"
	"github.com/signadot/structmatch/report"
)

func typeMatch(cfg *TypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: type requires 1 argument, a schema", cli.ErrUsage)
	}
	schema, err := getish(cfg.S, cfg.F, cc, args[0])
	if err != nil {
		return err
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	matcher := structmatch.New(structmatch.WithFilters(reg))
	pr := printer(cfg.MainConfig, cc)

	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	failed := false
	for _, file := range files {
		docs, err := readDocs(cc, file)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		for i, doc := range docs {
			if err := matcher.Matches(doc, schema); err != nil {
				failed = true
				pr.Failure(err)
				continue
			}
			pr.Success("%s: document %d matches", file, i)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func printer(cfg *MainConfig, cc *cli.Context) *report.Printer {
	if cfg.Color {
		return report.New(cc.Out, report.Color(true))
	}
	return report.New(cc.Out)
}
