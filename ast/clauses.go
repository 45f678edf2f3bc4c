package ast

import "strings"

// Clause is one tagged value inside a frame. Tag returns the raw
// clause tag; writeValue renders the value in canonical escaped form,
// without the tag, qualifiers or comment.
type Clause interface {
	Tag() string
	writeValue(b *strings.Builder)
}

// ClauseString renders a clause as `tag: value`.
func ClauseString(c Clause) string {
	var b strings.Builder
	b.WriteString(c.Tag())
	b.WriteString(": ")
	c.writeValue(&b)
	return b.String()
}

// ValueString renders only the clause value, in canonical escaped
// form.
func ValueString(c Clause) string {
	var b strings.Builder
	c.writeValue(&b)
	return b.String()
}

// TermClause is a clause valid in a term frame.
type TermClause interface {
	Clause
	termClause()
}

// TypedefClause is a clause valid in a typedef frame.
type TypedefClause interface {
	Clause
	typedefClause()
}

// InstanceClause is a clause valid in an instance frame.
type InstanceClause interface {
	Clause
	instanceClause()
}

// Definition is the value of a def clause: quoted text plus the
// cross-references supporting it.
type Definition struct {
	Text  string
	Xrefs XrefList
}

func (d Definition) String() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d Definition) write(b *strings.Builder) {
	EscapeQuoted(b, d.Text)
	b.WriteByte(' ')
	d.Xrefs.write(b)
}

// Clauses shared by two or more frame kinds. Each carries the marker
// methods of every kind it is valid in.

// IsAnonymousClause is the `is_anonymous` boolean clause.
type IsAnonymousClause struct {
	Value bool
}

// NameClause is the `name` clause holding an entity's label.
type NameClause struct {
	Name string
}

// NamespaceClause assigns an entity to a namespace.
type NamespaceClause struct {
	Namespace Ident
}

// AltIDClause declares an alternate identifier for the entity.
type AltIDClause struct {
	ID Ident
}

// DefClause holds the entity definition.
type DefClause struct {
	Definition Definition
}

// CommentClause is the free-text `comment` clause.
type CommentClause struct {
	Comment string
}

// SubsetClause places the entity in a subset declared by the header.
type SubsetClause struct {
	Subset Ident
}

// SynonymClause attaches a synonym to the entity.
type SynonymClause struct {
	Synonym Synonym
}

// XrefClause attaches a cross-reference to the entity.
type XrefClause struct {
	Xref Xref
}

// BuiltinClause marks the entity as builtin to OBO.
type BuiltinClause struct {
	Value bool
}

// PropertyValueClause attaches an arbitrary property value; valid in
// the header and in every entity frame kind.
type PropertyValueClause struct {
	Value PropertyValue
}

// IsAClause declares a subclassing or subproperty relation.
type IsAClause struct {
	ID Ident
}

// IntersectionOfClause contributes one operand of an intersection
// definition. In term frames the genus form has a nil Relation; in
// typedef frames Relation is always nil.
type IntersectionOfClause struct {
	Relation Ident
	ID       Ident
}

// UnionOfClause contributes one operand of a union definition.
type UnionOfClause struct {
	ID Ident
}

// EquivalentToClause declares equivalence with another entity.
type EquivalentToClause struct {
	ID Ident
}

// DisjointFromClause declares disjointness with another entity.
type DisjointFromClause struct {
	ID Ident
}

// RelationshipClause relates the entity to a target through a typed
// relation.
type RelationshipClause struct {
	Relation Ident
	Target   Ident
}

// IsObsoleteClause marks the entity as obsolete.
type IsObsoleteClause struct {
	Value bool
}

// ReplacedByClause points from an obsolete entity to its replacement.
type ReplacedByClause struct {
	ID Ident
}

// ConsiderClause suggests a substitute for an obsolete entity.
type ConsiderClause struct {
	ID Ident
}

// CreatedByClause records the entity author.
type CreatedByClause struct {
	Name string
}

// CreationDateClause records when the entity was created.
type CreationDateClause struct {
	Date CreationDate
}

func (IsAnonymousClause) termClause()     {}
func (IsAnonymousClause) typedefClause()  {}
func (IsAnonymousClause) instanceClause() {}
func (NameClause) termClause()            {}
func (NameClause) typedefClause()         {}
func (NameClause) instanceClause()        {}
func (NamespaceClause) termClause()       {}
func (NamespaceClause) typedefClause()    {}
func (NamespaceClause) instanceClause()   {}
func (AltIDClause) termClause()           {}
func (AltIDClause) typedefClause()        {}
func (AltIDClause) instanceClause()       {}
func (DefClause) termClause()             {}
func (DefClause) typedefClause()          {}
func (DefClause) instanceClause()         {}
func (CommentClause) termClause()         {}
func (CommentClause) typedefClause()      {}
func (CommentClause) instanceClause()     {}
func (SubsetClause) termClause()          {}
func (SubsetClause) typedefClause()       {}
func (SubsetClause) instanceClause()      {}
func (SynonymClause) termClause()         {}
func (SynonymClause) typedefClause()      {}
func (SynonymClause) instanceClause()     {}
func (XrefClause) termClause()            {}
func (XrefClause) typedefClause()         {}
func (XrefClause) instanceClause()        {}
func (BuiltinClause) termClause()         {}
func (BuiltinClause) typedefClause()      {}
func (PropertyValueClause) headerClause() {}
func (PropertyValueClause) termClause()   {}
func (PropertyValueClause) typedefClause() {}
func (PropertyValueClause) instanceClause() {}
func (IsAClause) termClause()             {}
func (IsAClause) typedefClause()          {}
func (IntersectionOfClause) termClause()    {}
func (IntersectionOfClause) typedefClause() {}
func (UnionOfClause) termClause()         {}
func (UnionOfClause) typedefClause()      {}
func (EquivalentToClause) termClause()    {}
func (EquivalentToClause) typedefClause() {}
func (DisjointFromClause) termClause()    {}
func (DisjointFromClause) typedefClause() {}
func (RelationshipClause) termClause()     {}
func (RelationshipClause) typedefClause()  {}
func (RelationshipClause) instanceClause() {}
func (IsObsoleteClause) termClause()      {}
func (IsObsoleteClause) typedefClause()   {}
func (IsObsoleteClause) instanceClause()  {}
func (ReplacedByClause) termClause()      {}
func (ReplacedByClause) typedefClause()   {}
func (ReplacedByClause) instanceClause()  {}
func (ConsiderClause) termClause()        {}
func (ConsiderClause) typedefClause()     {}
func (ConsiderClause) instanceClause()    {}
func (CreatedByClause) termClause()       {}
func (CreatedByClause) typedefClause()    {}
func (CreatedByClause) instanceClause()   {}
func (CreationDateClause) termClause()     {}
func (CreationDateClause) typedefClause()  {}
func (CreationDateClause) instanceClause() {}

func (IsAnonymousClause) Tag() string     { return "is_anonymous" }
func (NameClause) Tag() string            { return "name" }
func (NamespaceClause) Tag() string       { return "namespace" }
func (AltIDClause) Tag() string           { return "alt_id" }
func (DefClause) Tag() string             { return "def" }
func (CommentClause) Tag() string         { return "comment" }
func (SubsetClause) Tag() string          { return "subset" }
func (SynonymClause) Tag() string         { return "synonym" }
func (XrefClause) Tag() string            { return "xref" }
func (BuiltinClause) Tag() string         { return "builtin" }
func (PropertyValueClause) Tag() string   { return "property_value" }
func (IsAClause) Tag() string             { return "is_a" }
func (IntersectionOfClause) Tag() string  { return "intersection_of" }
func (UnionOfClause) Tag() string         { return "union_of" }
func (EquivalentToClause) Tag() string    { return "equivalent_to" }
func (DisjointFromClause) Tag() string    { return "disjoint_from" }
func (RelationshipClause) Tag() string    { return "relationship" }
func (IsObsoleteClause) Tag() string      { return "is_obsolete" }
func (ReplacedByClause) Tag() string      { return "replaced_by" }
func (ConsiderClause) Tag() string        { return "consider" }
func (CreatedByClause) Tag() string       { return "created_by" }
func (CreationDateClause) Tag() string    { return "creation_date" }

func writeBool(b *strings.Builder, v bool) {
	if v {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
}

func (c IsAnonymousClause) writeValue(b *strings.Builder) { writeBool(b, c.Value) }
func (c NameClause) writeValue(b *strings.Builder)        { EscapeUnquoted(b, c.Name) }
func (c NamespaceClause) writeValue(b *strings.Builder)   { b.WriteString(c.Namespace.String()) }
func (c AltIDClause) writeValue(b *strings.Builder)       { b.WriteString(c.ID.String()) }
func (c DefClause) writeValue(b *strings.Builder)         { c.Definition.write(b) }
func (c CommentClause) writeValue(b *strings.Builder)     { EscapeUnquoted(b, c.Comment) }
func (c SubsetClause) writeValue(b *strings.Builder)      { b.WriteString(c.Subset.String()) }
func (c SynonymClause) writeValue(b *strings.Builder)     { c.Synonym.write(b) }
func (c XrefClause) writeValue(b *strings.Builder)        { c.Xref.write(b) }
func (c BuiltinClause) writeValue(b *strings.Builder)     { writeBool(b, c.Value) }
func (c PropertyValueClause) writeValue(b *strings.Builder) {
	writePropertyValue(b, c.Value)
}
func (c IsAClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }

func (c IntersectionOfClause) writeValue(b *strings.Builder) {
	if c.Relation != nil {
		b.WriteString(c.Relation.String())
		b.WriteByte(' ')
	}
	b.WriteString(c.ID.String())
}

func (c UnionOfClause) writeValue(b *strings.Builder)      { b.WriteString(c.ID.String()) }
func (c EquivalentToClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }
func (c DisjointFromClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }

func (c RelationshipClause) writeValue(b *strings.Builder) {
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')
	b.WriteString(c.Target.String())
}

func (c IsObsoleteClause) writeValue(b *strings.Builder) { writeBool(b, c.Value) }
func (c ReplacedByClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }
func (c ConsiderClause) writeValue(b *strings.Builder)   { b.WriteString(c.ID.String()) }
func (c CreatedByClause) writeValue(b *strings.Builder)  { EscapeUnquoted(b, c.Name) }
func (c CreationDateClause) writeValue(b *strings.Builder) {
	b.WriteString(c.Date.String())
}
