package encode

import (
	"bufio"
	"io"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// EncState holds the serializer configuration and output cursor.
type EncState struct {
	canonical bool
	comments  bool
	wroteAny  bool

	Color func(ColorAttr, string) string
}

// Encode writes doc to w in flat-file form. Frames are separated by a
// single blank line and the output ends with a single newline. With
// Canonical(true) the clause and frame order follows the canonical
// sort without mutating doc.
func Encode(doc *ast.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		comments: true,
		Color:    plain,
	}
	for _, opt := range opts {
		opt(es)
	}
	bw := bufio.NewWriter(w)
	if err := es.encodeDoc(doc, bw); err != nil {
		return err
	}
	return bw.Flush()
}

func (es *EncState) encodeDoc(doc *ast.Document, w *bufio.Writer) error {
	if es.canonical {
		doc = canonicalCopy(doc)
	}
	if !doc.Header.IsEmpty() {
		es.wroteAny = true
		for _, ln := range doc.Header.Clauses {
			if err := es.encodeLine(w, ln.Clause, ln.Qualifiers, ln.Comment); err != nil {
				return err
			}
		}
	}
	for _, e := range doc.Entities {
		if err := es.encodeEntity(e, w); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) encodeEntity(e ast.EntityFrame, w *bufio.Writer) error {
	if es.wroteAny {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	es.wroteAny = true
	if _, err := w.WriteString(es.Color(FrameColor, "["+frameHeader(e)+"]")); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	if err := es.encodeID(w, e.ID()); err != nil {
		return err
	}
	switch f := e.(type) {
	case *ast.TermFrame:
		for _, ln := range f.Clauses {
			if err := es.encodeLine(w, ln.Clause, ln.Qualifiers, ln.Comment); err != nil {
				return err
			}
		}
	case *ast.TypedefFrame:
		for _, ln := range f.Clauses {
			if err := es.encodeLine(w, ln.Clause, ln.Qualifiers, ln.Comment); err != nil {
				return err
			}
		}
	case *ast.InstanceFrame:
		for _, ln := range f.Clauses {
			if err := es.encodeLine(w, ln.Clause, ln.Qualifiers, ln.Comment); err != nil {
				return err
			}
		}
	}
	return nil
}

func frameHeader(e ast.EntityFrame) string {
	switch e.(type) {
	case *ast.TypedefFrame:
		return "Typedef"
	case *ast.InstanceFrame:
		return "Instance"
	default:
		return "Term"
	}
}

func (es *EncState) encodeID(w *bufio.Writer, id ast.Ident) error {
	if _, err := w.WriteString(es.Color(TagColor, "id")); err != nil {
		return err
	}
	if _, err := w.WriteString(es.Color(SepColor, ": ")); err != nil {
		return err
	}
	if _, err := w.WriteString(es.Color(ValueColor, id.String())); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

func (es *EncState) encodeLine(w *bufio.Writer, c ast.Clause, quals ast.QualifierList, comment string) error {
	if _, err := w.WriteString(es.Color(TagColor, c.Tag())); err != nil {
		return err
	}
	if _, err := w.WriteString(es.Color(SepColor, ": ")); err != nil {
		return err
	}
	if _, err := w.WriteString(es.Color(ValueColor, ast.ValueString(c))); err != nil {
		return err
	}
	if len(quals) > 0 {
		if err := w.WriteByte(' '); err != nil {
			return err
		}
		if _, err := w.WriteString(es.Color(QualifierColor, quals.String())); err != nil {
			return err
		}
	}
	if es.comments && comment != "" {
		if _, err := w.WriteString(es.Color(CommentColor, " ! "+comment)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// canonicalCopy sorts a shallow copy so Encode leaves its input
// intact. Frame clause slices are copied before sorting.
func canonicalCopy(doc *ast.Document) *ast.Document {
	cp := &ast.Document{
		Header:   ast.HeaderFrame{Clauses: clone(doc.Header.Clauses)},
		Entities: make([]ast.EntityFrame, 0, len(doc.Entities)),
	}
	for _, e := range doc.Entities {
		switch f := e.(type) {
		case *ast.TermFrame:
			cp.Entities = append(cp.Entities, &ast.TermFrame{Ident: f.Ident, Clauses: clone(f.Clauses)})
		case *ast.TypedefFrame:
			cp.Entities = append(cp.Entities, &ast.TypedefFrame{Ident: f.Ident, Clauses: clone(f.Clauses)})
		case *ast.InstanceFrame:
			cp.Entities = append(cp.Entities, &ast.InstanceFrame{Ident: f.Ident, Clauses: clone(f.Clauses)})
		}
	}
	cp.Sort()
	return cp
}

func clone[T ast.Clause](lines []ast.Line[T]) []ast.Line[T] {
	cp := make([]ast.Line[T], len(lines))
	copy(cp, lines)
	return cp
}
