package parse

import (
	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/intern"
	"github.com/obolibrary/obo-format/go-obo/token"
)

// Frame is one parsed frame from a streaming read: the document
// header (first, exactly once) or an entity frame.
type Frame struct {
	Header *ast.HeaderFrame
	Entity ast.EntityFrame
}

// buildFrame turns one tokenized frame into its typed form.
func buildFrame(fr *token.Frame, cache *intern.Cache) (Frame, error) {
	switch fr.Kind {
	case token.Header:
		h, err := buildHeaderFrame(fr, cache)
		return Frame{Header: h}, err
	case token.Term:
		f, err := buildTermFrame(fr, cache)
		return Frame{Entity: f}, err
	case token.Typedef:
		f, err := buildTypedefFrame(fr, cache)
		return Frame{Entity: f}, err
	default:
		f, err := buildInstanceFrame(fr, cache)
		return Frame{Entity: f}, err
	}
}

func buildHeaderFrame(fr *token.Frame, cache *intern.Cache) (*ast.HeaderFrame, error) {
	h := &ast.HeaderFrame{Pos: framePos(fr)}
	for _, ln := range fr.Lines {
		c, err := buildHeaderClause(ln, cache)
		if err != nil {
			return nil, err
		}
		h.Clauses = append(h.Clauses, ast.Line[ast.HeaderClause]{
			Clause:     c,
			Qualifiers: buildQualifiers(ln.Qualifiers),
			Comment:    ln.Comment,
		})
	}
	return h, nil
}

// frameID consumes the mandatory leading id clause of an entity frame
// and returns the remaining lines.
func frameID(fr *token.Frame, cache *intern.Cache) (ast.Ident, []token.Line, error) {
	if len(fr.Lines) == 0 || fr.Lines[0].Tag != "id" {
		return nil, nil, syntaxErr(fr.Pos, "expected id clause")
	}
	ln := fr.Lines[0]
	c := newCursor(ln)
	id, err := c.ident(cache, "frame identifier")
	if err != nil {
		return nil, nil, err
	}
	if err := c.end(); err != nil {
		return nil, nil, err
	}
	return id, fr.Lines[1:], nil
}

// framePos records where the frame starts, for cardinality errors
// raised later against the built frame.
func framePos(fr *token.Frame) ast.Position {
	line, col := fr.Pos.LineCol()
	return ast.Position{Line: line, Col: col}
}

func buildQualifiers(quals []token.Qual) ast.QualifierList {
	if len(quals) == 0 {
		return nil
	}
	list := make(ast.QualifierList, len(quals))
	for i, q := range quals {
		list[i] = ast.Qualifier{
			Key:   ast.Unescape(q.Key),
			Value: ast.Unescape(q.Value),
		}
	}
	return list
}

func buildTermFrame(fr *token.Frame, cache *intern.Cache) (*ast.TermFrame, error) {
	id, lines, err := frameID(fr, cache)
	if err != nil {
		return nil, err
	}
	f := &ast.TermFrame{Ident: id, Pos: framePos(fr)}
	for _, ln := range lines {
		c, err := buildTermClause(ln, cache)
		if err != nil {
			return nil, err
		}
		f.Clauses = append(f.Clauses, ast.Line[ast.TermClause]{
			Clause:     c,
			Qualifiers: buildQualifiers(ln.Qualifiers),
			Comment:    ln.Comment,
		})
	}
	return f, nil
}

func buildTypedefFrame(fr *token.Frame, cache *intern.Cache) (*ast.TypedefFrame, error) {
	id, lines, err := frameID(fr, cache)
	if err != nil {
		return nil, err
	}
	f := &ast.TypedefFrame{Ident: id, Pos: framePos(fr)}
	for _, ln := range lines {
		c, err := buildTypedefClause(ln, cache)
		if err != nil {
			return nil, err
		}
		f.Clauses = append(f.Clauses, ast.Line[ast.TypedefClause]{
			Clause:     c,
			Qualifiers: buildQualifiers(ln.Qualifiers),
			Comment:    ln.Comment,
		})
	}
	return f, nil
}

func buildInstanceFrame(fr *token.Frame, cache *intern.Cache) (*ast.InstanceFrame, error) {
	id, lines, err := frameID(fr, cache)
	if err != nil {
		return nil, err
	}
	f := &ast.InstanceFrame{Ident: id, Pos: framePos(fr)}
	for _, ln := range lines {
		c, err := buildInstanceClause(ln, cache)
		if err != nil {
			return nil, err
		}
		f.Clauses = append(f.Clauses, ast.Line[ast.InstanceClause]{
			Clause:     c,
			Qualifiers: buildQualifiers(ln.Qualifiers),
			Comment:    ln.Comment,
		})
	}
	return f, nil
}
