package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	obo "github.com/obolibrary/obo-format/go-obo"
	"github.com/obolibrary/obo-format/go-obo/encode"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter needs -e <expr>", cli.ErrUsage)
	}
	prog, err := obo.CompileFilter(cfg.Expr)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		out, err := obo.Filter(doc, prog)
		if err != nil {
			return err
		}
		opts := cfg.encOpts(cc.Out)
		if err := encode.Encode(out, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
