package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	bad := 0
	for _, doc := range docs {
		if cfg.TreatXrefs {
			doc.TreatXrefs()
		}
		if cfg.Namespaces {
			if err := doc.AssignNamespaces(); err != nil {
				return err
			}
		}
		bad += reportFrame(cc, doc.Header.Validate())
		for _, e := range doc.Entities {
			bad += reportFrame(cc, e.Validate())
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d cardinality violations", bad)
	}
	return nil
}

func reportFrame(cc *cli.Context, err error) int {
	if err == nil {
		return 0
	}
	var cerr *ast.CardinalityError
	if errors.As(err, &cerr) {
		fmt.Fprintf(cc.Out, "%v\n", cerr)
		return 1
	}
	fmt.Fprintf(cc.Out, "%v\n", err)
	return 1
}
