package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/structmatch/ir"
	"github.com/signadot/structmatch/parse"
)

func getish(s, f bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	switch {
	case f:
		if arg == "-" {
			r = cc.In
			break
		}
		file, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer file.Close()
		r = file
	default:
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	res, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding: %w", err)
	}
	return res, nil
}

func readDocs(cc *cli.Context, file string) ([]*ir.Node, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		targetFile, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", file, err)
		}
		defer targetFile.Close()
		r = targetFile
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	res := make([]*ir.Node, 0, len(docs))
	for i, doc := range docs {
		y, err := parse.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, y)
	}
	return res, nil
}
