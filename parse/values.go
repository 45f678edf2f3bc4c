package parse

import (
	"fmt"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/intern"
	"github.com/obolibrary/obo-format/go-obo/token"
)

// cursor walks the raw value region of one clause line. It keeps the
// region's base position so sub-values report absolute document
// coordinates.
type cursor struct {
	d    []byte
	i    int
	base *token.Pos
}

func newCursor(ln token.Line) *cursor {
	return &cursor{d: ln.Value, base: ln.ValuePos}
}

func (c *cursor) pos() *token.Pos {
	return c.base.D.Pos(c.base.I + c.i)
}

func (c *cursor) skipBlank() {
	c.i = token.SkipBlank(c.d, c.i)
}

func (c *cursor) rest() []byte {
	return c.d[c.i:]
}

func (c *cursor) atEnd() bool {
	c.skipBlank()
	return c.i >= len(c.d)
}

// syntaxErr converts a position and expectation into the public
// syntax error form.
func syntaxErr(p *token.Pos, msg string) *ast.SyntaxError {
	line, col := p.LineCol()
	return &ast.SyntaxError{Line: line, Col: col, Message: msg}
}

// fromTokenErr lifts a tokenizer error into an ast.SyntaxError.
func fromTokenErr(err error) error {
	if te, ok := err.(*token.TokenizeErr); ok {
		line, col := te.Pos.LineCol()
		return &ast.SyntaxError{Line: line, Col: col, Message: te.Err.Error(), Err: te}
	}
	return err
}

// word consumes one blank-delimited word, or fails with the given
// expectation.
func (c *cursor) word(what string) ([]byte, error) {
	c.skipBlank()
	w, n := token.ScanWord(c.rest())
	if n == 0 {
		return nil, syntaxErr(c.pos(), "expected "+what)
	}
	c.i += n
	return w, nil
}

// ident consumes one identifier.
func (c *cursor) ident(cache *intern.Cache, what string) (ast.Ident, error) {
	w, err := c.word(what)
	if err != nil {
		return nil, err
	}
	return ast.ParseIdentBytes(w, cache), nil
}

// quoted consumes one double-quoted string and returns its decoded
// text.
func (c *cursor) quoted(what string) (string, error) {
	c.skipBlank()
	inner, n, err := token.ScanQuoted(c.rest(), c.base.D, c.base.I+c.i)
	if err != nil {
		return "", syntaxErr(c.pos(), "expected "+what)
	}
	c.i += n
	return ast.Unescape(inner), nil
}

// boolean consumes a literal true or false.
func (c *cursor) boolean() (bool, error) {
	w, err := c.word("boolean")
	if err != nil {
		return false, err
	}
	switch string(w) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, syntaxErr(c.pos(), fmt.Sprintf("expected true or false, found %q", w))
}

// text consumes the remaining value as decoded unquoted text.
func (c *cursor) text() string {
	c.skipBlank()
	s := ast.Unescape(c.rest())
	c.i = len(c.d)
	return s
}

// end fails when undigested input remains after a fully parsed value.
func (c *cursor) end() error {
	if !c.atEnd() {
		return syntaxErr(c.pos(), fmt.Sprintf("unexpected trailing %q", c.rest()))
	}
	return nil
}

// xrefList consumes a bracketed, comma-separated xref list. A missing
// list parses as empty, matching documents that omit the brackets on
// synonyms.
func (c *cursor) xrefList(cache *intern.Cache) (ast.XrefList, error) {
	c.skipBlank()
	if c.i >= len(c.d) || c.d[c.i] != '[' {
		return nil, nil
	}
	inner, n, err := token.ScanBracketList(c.rest(), c.base.D, c.base.I+c.i)
	if err != nil {
		return nil, fromTokenErr(err)
	}
	innerAt := c.base.I + c.i + 1
	c.i += n

	elems, offs := token.SplitList(inner)
	list := make(ast.XrefList, 0, len(elems))
	for k, elem := range elems {
		ec := &cursor{d: elem, base: c.base.D.Pos(innerAt + offs[k])}
		x, err := ec.xref(cache)
		if err != nil {
			return nil, err
		}
		list = append(list, x)
	}
	return list, nil
}

// xref consumes one cross-reference: an identifier with an optional
// quoted description.
func (c *cursor) xref(cache *intern.Cache) (ast.Xref, error) {
	id, err := c.ident(cache, "xref identifier")
	if err != nil {
		return ast.Xref{}, err
	}
	x := ast.Xref{ID: id}
	if c.peekQuote() {
		if x.Description, err = c.quoted("xref description"); err != nil {
			return ast.Xref{}, err
		}
	}
	return x, err
}

// synonym consumes a synonym value: quoted text, scope, optional
// type, and an optional xref list.
func (c *cursor) synonym(cache *intern.Cache) (ast.Synonym, error) {
	var s ast.Synonym
	var err error
	if s.Text, err = c.quoted("synonym text"); err != nil {
		return s, err
	}
	w, err := c.word("synonym scope")
	if err != nil {
		return s, err
	}
	scope, ok := ast.ParseSynonymScope(string(w))
	if !ok {
		return s, syntaxErr(c.pos(), fmt.Sprintf("expected synonym scope, found %q", w))
	}
	s.Scope = scope

	c.skipBlank()
	if c.i < len(c.d) && c.d[c.i] != '[' {
		if s.Type, err = c.ident(cache, "synonym type"); err != nil {
			return s, err
		}
	}
	s.Xrefs, err = c.xrefList(cache)
	return s, err
}

// propertyValue consumes a property_value: a relation followed either
// by a quoted literal and its datatype, or by a resource identifier.
func (c *cursor) propertyValue(cache *intern.Cache) (ast.PropertyValue, error) {
	rel, err := c.ident(cache, "property relation")
	if err != nil {
		return nil, err
	}
	if c.peekQuote() {
		lit, err := c.quoted("property literal")
		if err != nil {
			return nil, err
		}
		dt, err := c.ident(cache, "property datatype")
		if err != nil {
			return nil, err
		}
		return ast.LiteralPropertyValue{Rel: rel, Value: lit, Datatype: dt}, nil
	}
	value, err := c.ident(cache, "property value")
	if err != nil {
		return nil, err
	}
	return ast.ResourcePropertyValue{Rel: rel, Value: value}, nil
}

// definition consumes a def value: quoted text plus an optional xref
// list.
func (c *cursor) definition(cache *intern.Cache) (ast.Definition, error) {
	var d ast.Definition
	var err error
	if d.Text, err = c.quoted("definition text"); err != nil {
		return d, err
	}
	d.Xrefs, err = c.xrefList(cache)
	return d, err
}

// peekQuote reports whether the next nonblank byte opens a quoted
// string.
func (c *cursor) peekQuote() bool {
	c.skipBlank()
	return c.i < len(c.d) && c.d[c.i] == '"'
}
