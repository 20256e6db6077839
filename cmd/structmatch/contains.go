package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structmatch"
)

func contains(cfg *ContainsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: contains requires 1 argument, a needle object", cli.ErrUsage)
	}
	needle, err := getish(cfg.S, cfg.F, cc, args[0])
	if err != nil {
		return err
	}
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
			if structmatch.Contains(needle, doc) {
				pr.Success("%s: document %d contains needle", file, i)
				continue
			}
			failed = true
			pr.Failure(fmt.Errorf("%s: document %d does not contain needle", file, i))
			if cfg.Diff {
				pr.Diff(needle, structmatch.Intersect(needle, doc))
			}
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
