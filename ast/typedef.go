package ast

import "strings"

// Clauses valid only in typedef frames.

// DomainClause restricts the subject of the relation.
type DomainClause struct {
	ID Ident
}

// RangeClause restricts the object of the relation.
type RangeClause struct {
	ID Ident
}

// HoldsOverChainClause declares that the relation holds over a chain
// of two relations.
type HoldsOverChainClause struct {
	First  Ident
	Second Ident
}

// IsAntiSymmetricClause is the `is_anti_symmetric` boolean clause.
type IsAntiSymmetricClause struct {
	Value bool
}

// IsCyclicClause is the `is_cyclic` boolean clause.
type IsCyclicClause struct {
	Value bool
}

// IsReflexiveClause is the `is_reflexive` boolean clause.
type IsReflexiveClause struct {
	Value bool
}

// IsSymmetricClause is the `is_symmetric` boolean clause.
type IsSymmetricClause struct {
	Value bool
}

// IsAsymmetricClause is the `is_asymmetric` boolean clause.
type IsAsymmetricClause struct {
	Value bool
}

// IsTransitiveClause is the `is_transitive` boolean clause.
type IsTransitiveClause struct {
	Value bool
}

// IsFunctionalClause is the `is_functional` boolean clause.
type IsFunctionalClause struct {
	Value bool
}

// IsInverseFunctionalClause is the `is_inverse_functional` boolean
// clause.
type IsInverseFunctionalClause struct {
	Value bool
}

// InverseOfClause names the inverse relation.
type InverseOfClause struct {
	ID Ident
}

// TransitiveOverClause declares transitivity over another relation.
type TransitiveOverClause struct {
	ID Ident
}

// EquivalentToChainClause declares equivalence to a chain of two
// relations.
type EquivalentToChainClause struct {
	First  Ident
	Second Ident
}

// DisjointOverClause declares disjointness over another relation.
type DisjointOverClause struct {
	ID Ident
}

// ExpandAssertionToClause carries an OWL assertion template.
type ExpandAssertionToClause struct {
	Template string
	Xrefs    XrefList
}

// ExpandExpressionToClause carries an OWL expression template.
type ExpandExpressionToClause struct {
	Template string
	Xrefs    XrefList
}

// IsMetadataTagClause marks the relation as a metadata tag.
type IsMetadataTagClause struct {
	Value bool
}

// IsClassLevelClause marks the relation as class level.
type IsClassLevelClause struct {
	Value bool
}

func (DomainClause) typedefClause()              {}
func (RangeClause) typedefClause()               {}
func (HoldsOverChainClause) typedefClause()      {}
func (IsAntiSymmetricClause) typedefClause()     {}
func (IsCyclicClause) typedefClause()            {}
func (IsReflexiveClause) typedefClause()         {}
func (IsSymmetricClause) typedefClause()         {}
func (IsAsymmetricClause) typedefClause()        {}
func (IsTransitiveClause) typedefClause()        {}
func (IsFunctionalClause) typedefClause()        {}
func (IsInverseFunctionalClause) typedefClause() {}
func (InverseOfClause) typedefClause()           {}
func (TransitiveOverClause) typedefClause()      {}
func (EquivalentToChainClause) typedefClause()   {}
func (DisjointOverClause) typedefClause()        {}
func (ExpandAssertionToClause) typedefClause()   {}
func (ExpandExpressionToClause) typedefClause()  {}
func (IsMetadataTagClause) typedefClause()       {}
func (IsClassLevelClause) typedefClause()        {}

func (DomainClause) Tag() string              { return "domain" }
func (RangeClause) Tag() string               { return "range" }
func (HoldsOverChainClause) Tag() string      { return "holds_over_chain" }
func (IsAntiSymmetricClause) Tag() string     { return "is_anti_symmetric" }
func (IsCyclicClause) Tag() string            { return "is_cyclic" }
func (IsReflexiveClause) Tag() string         { return "is_reflexive" }
func (IsSymmetricClause) Tag() string         { return "is_symmetric" }
func (IsAsymmetricClause) Tag() string        { return "is_asymmetric" }
func (IsTransitiveClause) Tag() string        { return "is_transitive" }
func (IsFunctionalClause) Tag() string        { return "is_functional" }
func (IsInverseFunctionalClause) Tag() string { return "is_inverse_functional" }
func (InverseOfClause) Tag() string           { return "inverse_of" }
func (TransitiveOverClause) Tag() string      { return "transitive_over" }
func (EquivalentToChainClause) Tag() string   { return "equivalent_to_chain" }
func (DisjointOverClause) Tag() string        { return "disjoint_over" }
func (ExpandAssertionToClause) Tag() string   { return "expand_assertion_to" }
func (ExpandExpressionToClause) Tag() string  { return "expand_expression_to" }
func (IsMetadataTagClause) Tag() string       { return "is_metadata_tag" }
func (IsClassLevelClause) Tag() string        { return "is_class_level" }

func (c DomainClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }
func (c RangeClause) writeValue(b *strings.Builder)  { b.WriteString(c.ID.String()) }

func (c HoldsOverChainClause) writeValue(b *strings.Builder) {
	b.WriteString(c.First.String())
	b.WriteByte(' ')
	b.WriteString(c.Second.String())
}

func (c IsAntiSymmetricClause) writeValue(b *strings.Builder)     { writeBool(b, c.Value) }
func (c IsCyclicClause) writeValue(b *strings.Builder)            { writeBool(b, c.Value) }
func (c IsReflexiveClause) writeValue(b *strings.Builder)         { writeBool(b, c.Value) }
func (c IsSymmetricClause) writeValue(b *strings.Builder)         { writeBool(b, c.Value) }
func (c IsAsymmetricClause) writeValue(b *strings.Builder)        { writeBool(b, c.Value) }
func (c IsTransitiveClause) writeValue(b *strings.Builder)        { writeBool(b, c.Value) }
func (c IsFunctionalClause) writeValue(b *strings.Builder)        { writeBool(b, c.Value) }
func (c IsInverseFunctionalClause) writeValue(b *strings.Builder) { writeBool(b, c.Value) }

func (c InverseOfClause) writeValue(b *strings.Builder)      { b.WriteString(c.ID.String()) }
func (c TransitiveOverClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }

func (c EquivalentToChainClause) writeValue(b *strings.Builder) {
	b.WriteString(c.First.String())
	b.WriteByte(' ')
	b.WriteString(c.Second.String())
}

func (c DisjointOverClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }

func (c ExpandAssertionToClause) writeValue(b *strings.Builder) {
	EscapeQuoted(b, c.Template)
	b.WriteByte(' ')
	c.Xrefs.write(b)
}

func (c ExpandExpressionToClause) writeValue(b *strings.Builder) {
	EscapeQuoted(b, c.Template)
	b.WriteByte(' ')
	c.Xrefs.write(b)
}

func (c IsMetadataTagClause) writeValue(b *strings.Builder) { writeBool(b, c.Value) }
func (c IsClassLevelClause) writeValue(b *strings.Builder)  { writeBool(b, c.Value) }

// InstanceOfClause names the class an instance belongs to. It is the
// only clause specific to instance frames.
type InstanceOfClause struct {
	ID Ident
}

func (InstanceOfClause) instanceClause() {}

func (InstanceOfClause) Tag() string { return "instance_of" }

func (c InstanceOfClause) writeValue(b *strings.Builder) { b.WriteString(c.ID.String()) }
