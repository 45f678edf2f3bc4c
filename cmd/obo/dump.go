package main

import (
	"github.com/scott-cotton/cli"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// dumpClause is one clause line in the dump model.
type dumpClause struct {
	Tag        string            `json:"tag" yaml:"tag"`
	Value      string            `json:"value" yaml:"value"`
	Qualifiers map[string]string `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	Comment    string            `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type dumpFrame struct {
	Kind    string       `json:"kind" yaml:"kind"`
	ID      string       `json:"id" yaml:"id"`
	Clauses []dumpClause `json:"clauses" yaml:"clauses"`
}

type dumpDoc struct {
	Header []dumpClause `json:"header" yaml:"header"`
	Frames []dumpFrame  `json:"frames" yaml:"frames"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	docs, err := readDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		model := dumpModel(doc)
		if cfg.YAML {
			d, err := yaml.Marshal(model)
			if err != nil {
				return err
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		d, err := json.MarshalIndent(model, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}

func dumpModel(doc *ast.Document) *dumpDoc {
	model := &dumpDoc{}
	for _, ln := range doc.Header.Clauses {
		model.Header = append(model.Header, clauseModel(ln.Clause, ln.Qualifiers, ln.Comment))
	}
	for _, e := range doc.Entities {
		frame := dumpFrame{ID: e.ID().String()}
		switch f := e.(type) {
		case *ast.TermFrame:
			frame.Kind = "Term"
			for _, ln := range f.Clauses {
				frame.Clauses = append(frame.Clauses, clauseModel(ln.Clause, ln.Qualifiers, ln.Comment))
			}
		case *ast.TypedefFrame:
			frame.Kind = "Typedef"
			for _, ln := range f.Clauses {
				frame.Clauses = append(frame.Clauses, clauseModel(ln.Clause, ln.Qualifiers, ln.Comment))
			}
		case *ast.InstanceFrame:
			frame.Kind = "Instance"
			for _, ln := range f.Clauses {
				frame.Clauses = append(frame.Clauses, clauseModel(ln.Clause, ln.Qualifiers, ln.Comment))
			}
		}
		model.Frames = append(model.Frames, frame)
	}
	return model
}

func clauseModel(c ast.Clause, quals ast.QualifierList, comment string) dumpClause {
	dc := dumpClause{
		Tag:     c.Tag(),
		Value:   ast.ValueString(c),
		Comment: comment,
	}
	if len(quals) > 0 {
		dc.Qualifiers = make(map[string]string, len(quals))
		for _, q := range quals {
			dc.Qualifiers[q.Key] = q.Value
		}
	}
	return dc
}
