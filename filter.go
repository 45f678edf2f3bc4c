package obo

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// FilterEnv is the expression environment built from one entity
// frame. Expressions see the frame's id, kind and common clause
// values plus the full tag multiset.
type FilterEnv struct {
	ID        string         `expr:"id"`
	Prefix    string         `expr:"prefix"`
	Kind      string         `expr:"kind"`
	Name      string         `expr:"name"`
	Namespace string         `expr:"namespace"`
	Obsolete  bool           `expr:"obsolete"`
	Tags      map[string]int `expr:"tags"`
	Subsets   []string       `expr:"subsets"`
	Xrefs     []string       `expr:"xrefs"`
}

// CompileFilter compiles a frame-selection expression, for example
// `kind == "Term" && !obsolete && prefix == "GO"`.
func CompileFilter(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return prog, nil
}

// Filter returns a document holding only the entity frames for which
// the compiled expression is true. The header is kept as is and the
// selected frames are shared with doc, not copied.
func Filter(doc *Document, prog *vm.Program) (*Document, error) {
	out := &Document{Header: doc.Header}
	for _, e := range doc.Entities {
		keep, err := EvalFilter(e, prog)
		if err != nil {
			return nil, err
		}
		if keep {
			out.Entities = append(out.Entities, e)
		}
	}
	return out, nil
}

// EvalFilter runs a compiled filter against one frame.
func EvalFilter(e ast.EntityFrame, prog *vm.Program) (bool, error) {
	res, err := expr.Run(prog, frameEnv(e))
	if err != nil {
		return false, fmt.Errorf("filter frame %s: %w", e.ID(), err)
	}
	return res.(bool), nil
}

func frameEnv(e ast.EntityFrame) FilterEnv {
	env := FilterEnv{
		ID:   e.ID().String(),
		Tags: map[string]int{},
	}
	if p, ok := e.ID().(ast.PrefixedIdent); ok {
		env.Prefix = p.Prefix
	}
	switch f := e.(type) {
	case *ast.TermFrame:
		env.Kind = "Term"
		for _, ln := range f.Clauses {
			envClause(&env, ln.Clause)
		}
	case *ast.TypedefFrame:
		env.Kind = "Typedef"
		for _, ln := range f.Clauses {
			envClause(&env, ln.Clause)
		}
	case *ast.InstanceFrame:
		env.Kind = "Instance"
		for _, ln := range f.Clauses {
			envClause(&env, ln.Clause)
		}
	}
	return env
}

func envClause(env *FilterEnv, c ast.Clause) {
	env.Tags[c.Tag()]++
	switch x := c.(type) {
	case ast.NameClause:
		env.Name = x.Name
	case ast.NamespaceClause:
		env.Namespace = x.Namespace.String()
	case ast.IsObsoleteClause:
		env.Obsolete = x.Value
	case ast.SubsetClause:
		env.Subsets = append(env.Subsets, x.Subset.String())
	case ast.XrefClause:
		env.Xrefs = append(env.Xrefs, x.Xref.ID.String())
	}
}
