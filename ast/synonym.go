package ast

import "strings"

// SynonymScope is the mandatory scope keyword of a synonym clause.
type SynonymScope int

const (
	Exact SynonymScope = iota
	Broad
	Narrow
	Related
)

func (s SynonymScope) String() string {
	switch s {
	case Exact:
		return "EXACT"
	case Broad:
		return "BROAD"
	case Narrow:
		return "NARROW"
	case Related:
		return "RELATED"
	}
	return "RELATED"
}

// ParseSynonymScope maps a scope keyword to its SynonymScope. The
// second return is false for unknown keywords.
func ParseSynonymScope(s string) (SynonymScope, bool) {
	switch s {
	case "EXACT":
		return Exact, true
	case "BROAD":
		return Broad, true
	case "NARROW":
		return Narrow, true
	case "RELATED":
		return Related, true
	}
	return 0, false
}

// Synonym is the value of a synonym clause: quoted text, a scope, an
// optional synonym type, and supporting cross-references.
type Synonym struct {
	Text  string
	Scope SynonymScope
	Type  Ident
	Xrefs XrefList
}

func (s Synonym) String() string {
	var b strings.Builder
	s.write(&b)
	return b.String()
}

func (s Synonym) write(b *strings.Builder) {
	EscapeQuoted(b, s.Text)
	b.WriteByte(' ')
	b.WriteString(s.Scope.String())
	if s.Type != nil {
		b.WriteByte(' ')
		b.WriteString(s.Type.String())
	}
	b.WriteByte(' ')
	s.Xrefs.write(b)
}
