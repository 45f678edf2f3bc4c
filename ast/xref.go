package ast

import "strings"

// Xref is a cross-reference to an identifier in another namespace,
// optionally carrying a quoted description.
type Xref struct {
	ID          Ident
	Description string
}

func (x Xref) String() string {
	var b strings.Builder
	x.write(&b)
	return b.String()
}

func (x Xref) write(b *strings.Builder) {
	b.WriteString(x.ID.String())
	if x.Description != "" {
		b.WriteByte(' ')
		EscapeQuoted(b, x.Description)
	}
}

// XrefList is ordered and may contain duplicates; deduplication is
// the document author's concern, not the parser's.
type XrefList []Xref

func (xs XrefList) String() string {
	var b strings.Builder
	xs.write(&b)
	return b.String()
}

func (xs XrefList) write(b *strings.Builder) {
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		x.write(b)
	}
	b.WriteByte(']')
}
