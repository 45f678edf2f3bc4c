package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/parse"
)

func oboMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc parses one input, "-" or "" meaning stdin.
func readDoc(cfg *MainConfig, name string) (*ast.Document, error) {
	in, err := cfg.input(name)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	doc, err := parse.Reader(in, cfg.parseOpts()...)
	if err != nil {
		if name == "" || name == "-" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// readDocs parses every named input, or stdin when args is empty.
func readDocs(cfg *MainConfig, args []string) ([]*ast.Document, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([]*ast.Document, 0, len(args))
	for _, arg := range args {
		doc, err := readDoc(cfg, arg)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
