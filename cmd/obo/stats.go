package main

import (
	"github.com/scott-cotton/cli"

	"github.com/goccy/go-json"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

type docStats struct {
	Terms     int            `json:"terms"`
	Typedefs  int            `json:"typedefs"`
	Instances int            `json:"instances"`
	Clauses   int            `json:"clauses"`
	Prefixes  map[string]int `json:"prefixes"`
	Tags      map[string]int `json:"tags"`
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	st := &docStats{
		Prefixes: map[string]int{},
		Tags:     map[string]int{},
	}
	for _, doc := range docs {
		for _, e := range doc.Entities {
			countFrame(st, e)
		}
	}
	d, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = cc.Out.Write(d)
	return err
}

func countFrame(st *docStats, e ast.EntityFrame) {
	if p, ok := e.ID().(ast.PrefixedIdent); ok {
		st.Prefixes[p.Prefix]++
	}
	switch f := e.(type) {
	case *ast.TermFrame:
		st.Terms++
		for _, ln := range f.Clauses {
			st.Clauses++
			st.Tags[ln.Clause.Tag()]++
		}
	case *ast.TypedefFrame:
		st.Typedefs++
		for _, ln := range f.Clauses {
			st.Clauses++
			st.Tags[ln.Clause.Tag()]++
		}
	case *ast.InstanceFrame:
		st.Instances++
		for _, ln := range f.Clauses {
			st.Clauses++
			st.Tags[ln.Clause.Tag()]++
		}
	}
}
