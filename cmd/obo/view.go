package main

import (
	"github.com/scott-cotton/cli"

	"github.com/obolibrary/obo-format/go-obo/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(cfg.Comments))
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
