package ast

import "strings"

// PropertyValue is the value of a property_value clause, either a
// resource form (relation and identifier) or a literal form (relation,
// quoted text, and a datatype identifier).
type PropertyValue interface {
	String() string
	Relation() Ident
	isPropertyValue()
}

// ResourcePropertyValue relates an entity to another identifier.
type ResourcePropertyValue struct {
	Rel   Ident
	Value Ident
}

// LiteralPropertyValue relates an entity to a typed literal.
type LiteralPropertyValue struct {
	Rel      Ident
	Value    string
	Datatype Ident
}

func (ResourcePropertyValue) isPropertyValue() {}
func (LiteralPropertyValue) isPropertyValue()  {}

func (pv ResourcePropertyValue) Relation() Ident { return pv.Rel }
func (pv LiteralPropertyValue) Relation() Ident  { return pv.Rel }

func (pv ResourcePropertyValue) String() string {
	var b strings.Builder
	pv.write(&b)
	return b.String()
}

func (pv ResourcePropertyValue) write(b *strings.Builder) {
	b.WriteString(pv.Rel.String())
	b.WriteByte(' ')
	b.WriteString(pv.Value.String())
}

func (pv LiteralPropertyValue) String() string {
	var b strings.Builder
	pv.write(&b)
	return b.String()
}

func (pv LiteralPropertyValue) write(b *strings.Builder) {
	b.WriteString(pv.Rel.String())
	b.WriteByte(' ')
	EscapeQuoted(b, pv.Value)
	b.WriteByte(' ')
	b.WriteString(pv.Datatype.String())
}

func writePropertyValue(b *strings.Builder, pv PropertyValue) {
	switch v := pv.(type) {
	case ResourcePropertyValue:
		v.write(b)
	case LiteralPropertyValue:
		v.write(b)
	default:
		b.WriteString(pv.String())
	}
}
