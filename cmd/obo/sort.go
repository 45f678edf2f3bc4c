package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/obolibrary/obo-format/go-obo/encode"
)

func sortRun(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	if cfg.Check {
		for i, doc := range docs {
			if !doc.IsSorted() {
				name := "<stdin>"
				if len(args) > 0 {
					name = args[i]
				}
				return fmt.Errorf("%s is not sorted", name)
			}
		}
		return nil
	}
	for _, doc := range docs {
		doc.Sort()
		opts := cfg.encOpts(cc.Out)
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
