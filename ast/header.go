package ast

import (
	"sort"
	"strings"
)

// HeaderClause is a clause valid in the header frame.
type HeaderClause interface {
	Clause
	headerClause()
}

// FormatVersionClause is the `format-version` header clause.
type FormatVersionClause struct {
	Version string
}

// DataVersionClause is the `data-version` header clause.
type DataVersionClause struct {
	Version string
}

// DateClause is the naive `date` header clause.
type DateClause struct {
	Date NaiveDateTime
}

// SavedByClause is the `saved-by` header clause.
type SavedByClause struct {
	Name string
}

// AutoGeneratedByClause is the `auto-generated-by` header clause.
type AutoGeneratedByClause struct {
	Name string
}

// ImportClause references another ontology by URL or abbreviated
// identifier; the reference is kept as written.
type ImportClause struct {
	Reference string
}

// SubsetdefClause declares a subset identifier with a description.
type SubsetdefClause struct {
	Subset      Ident
	Description string
}

// SynonymTypedefClause declares a synonym type, optionally bound to a
// default scope.
type SynonymTypedefClause struct {
	Type        Ident
	Description string
	Scope       *SynonymScope
}

// DefaultNamespaceClause is the `default-namespace` header clause.
type DefaultNamespaceClause struct {
	Namespace Ident
}

// NamespaceIDRuleClause carries the `namespace-id-rule` directive
// governing identifier generation for a namespace; the rule text is
// kept as written.
type NamespaceIDRuleClause struct {
	Rule string
}

// IdspaceClause maps an identifier prefix to a URL prefix.
type IdspaceClause struct {
	Prefix      string
	URL         Url
	Description string
}

// TreatXrefsAsEquivalentClause is the macro directive turning xrefs
// with the given prefix into equivalent_to clauses.
type TreatXrefsAsEquivalentClause struct {
	Prefix string
}

// TreatXrefsAsGenusDifferentiaClause is the macro directive turning
// matching xrefs into a genus plus differentia intersection.
type TreatXrefsAsGenusDifferentiaClause struct {
	Prefix   string
	Relation Ident
	Class    Ident
}

// TreatXrefsAsReverseGenusDifferentiaClause is the reverse form,
// rewriting the frame the xref points at instead of the owning frame.
type TreatXrefsAsReverseGenusDifferentiaClause struct {
	Prefix   string
	Relation Ident
	Class    Ident
}

// TreatXrefsAsRelationshipClause is the macro directive turning
// matching xrefs into relationship clauses.
type TreatXrefsAsRelationshipClause struct {
	Prefix   string
	Relation Ident
}

// TreatXrefsAsIsAClause is the macro directive turning matching xrefs
// into is_a clauses.
type TreatXrefsAsIsAClause struct {
	Prefix string
}

// TreatXrefsAsHasSubclassClause is the macro directive adding is_a
// clauses on the frames matching xrefs point at.
type TreatXrefsAsHasSubclassClause struct {
	Prefix string
}

// RemarkClause is the free-text `remark` header clause.
type RemarkClause struct {
	Remark string
}

// OntologyClause is the `ontology` header clause naming the document.
type OntologyClause struct {
	Name string
}

// OwlAxiomsClause carries OWL axiom text that cannot be expressed in
// OBO clauses.
type OwlAxiomsClause struct {
	Axioms string
}

// UnreservedClause is a header clause with a tag the format guide
// does not reserve; tag and value are kept as written.
type UnreservedClause struct {
	TagName string
	Value   string
}

func (FormatVersionClause) headerClause()                     {}
func (DataVersionClause) headerClause()                       {}
func (DateClause) headerClause()                              {}
func (SavedByClause) headerClause()                           {}
func (AutoGeneratedByClause) headerClause()                   {}
func (ImportClause) headerClause()                            {}
func (SubsetdefClause) headerClause()                         {}
func (SynonymTypedefClause) headerClause()                    {}
func (DefaultNamespaceClause) headerClause()                  {}
func (NamespaceIDRuleClause) headerClause()                   {}
func (IdspaceClause) headerClause()                           {}
func (TreatXrefsAsEquivalentClause) headerClause()            {}
func (TreatXrefsAsGenusDifferentiaClause) headerClause()      {}
func (TreatXrefsAsReverseGenusDifferentiaClause) headerClause() {}
func (TreatXrefsAsRelationshipClause) headerClause()          {}
func (TreatXrefsAsIsAClause) headerClause()                   {}
func (TreatXrefsAsHasSubclassClause) headerClause()           {}
func (RemarkClause) headerClause()                            {}
func (OntologyClause) headerClause()                          {}
func (OwlAxiomsClause) headerClause()                         {}
func (UnreservedClause) headerClause()                        {}

func (FormatVersionClause) Tag() string                       { return "format-version" }
func (DataVersionClause) Tag() string                         { return "data-version" }
func (DateClause) Tag() string                                { return "date" }
func (SavedByClause) Tag() string                             { return "saved-by" }
func (AutoGeneratedByClause) Tag() string                     { return "auto-generated-by" }
func (ImportClause) Tag() string                              { return "import" }
func (SubsetdefClause) Tag() string                           { return "subsetdef" }
func (SynonymTypedefClause) Tag() string                      { return "synonymtypedef" }
func (DefaultNamespaceClause) Tag() string                    { return "default-namespace" }
func (NamespaceIDRuleClause) Tag() string                     { return "namespace-id-rule" }
func (IdspaceClause) Tag() string                             { return "idspace" }
func (TreatXrefsAsEquivalentClause) Tag() string              { return "treat-xrefs-as-equivalent" }
func (TreatXrefsAsGenusDifferentiaClause) Tag() string        { return "treat-xrefs-as-genus-differentia" }
func (TreatXrefsAsReverseGenusDifferentiaClause) Tag() string {
	return "treat-xrefs-as-reverse-genus-differentia"
}
func (TreatXrefsAsRelationshipClause) Tag() string { return "treat-xrefs-as-relationship" }
func (TreatXrefsAsIsAClause) Tag() string          { return "treat-xrefs-as-is_a" }
func (TreatXrefsAsHasSubclassClause) Tag() string  { return "treat-xrefs-as-has-subclass" }
func (RemarkClause) Tag() string                   { return "remark" }
func (OntologyClause) Tag() string                 { return "ontology" }
func (OwlAxiomsClause) Tag() string                { return "owl-axioms" }
func (c UnreservedClause) Tag() string             { return c.TagName }

func (c FormatVersionClause) writeValue(b *strings.Builder) { EscapeUnquoted(b, c.Version) }
func (c DataVersionClause) writeValue(b *strings.Builder)   { EscapeUnquoted(b, c.Version) }
func (c DateClause) writeValue(b *strings.Builder)          { b.WriteString(c.Date.String()) }
func (c SavedByClause) writeValue(b *strings.Builder)       { EscapeUnquoted(b, c.Name) }
func (c AutoGeneratedByClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Name)
}
func (c ImportClause) writeValue(b *strings.Builder) { EscapeUnquoted(b, c.Reference) }

func (c SubsetdefClause) writeValue(b *strings.Builder) {
	b.WriteString(c.Subset.String())
	b.WriteByte(' ')
	EscapeQuoted(b, c.Description)
}

func (c SynonymTypedefClause) writeValue(b *strings.Builder) {
	b.WriteString(c.Type.String())
	b.WriteByte(' ')
	EscapeQuoted(b, c.Description)
	if c.Scope != nil {
		b.WriteByte(' ')
		b.WriteString(c.Scope.String())
	}
}

func (c DefaultNamespaceClause) writeValue(b *strings.Builder) {
	b.WriteString(c.Namespace.String())
}

func (c NamespaceIDRuleClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Rule)
}

func (c IdspaceClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
	b.WriteByte(' ')
	b.WriteString(string(c.URL))
	if c.Description != "" {
		b.WriteByte(' ')
		EscapeQuoted(b, c.Description)
	}
}

func (c TreatXrefsAsEquivalentClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
}

func (c TreatXrefsAsGenusDifferentiaClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')
	b.WriteString(c.Class.String())
}

func (c TreatXrefsAsReverseGenusDifferentiaClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
	b.WriteByte(' ')
	b.WriteString(c.Class.String())
}

func (c TreatXrefsAsRelationshipClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
	b.WriteByte(' ')
	b.WriteString(c.Relation.String())
}

func (c TreatXrefsAsIsAClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
}

func (c TreatXrefsAsHasSubclassClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Prefix)
}

func (c RemarkClause) writeValue(b *strings.Builder)    { EscapeUnquoted(b, c.Remark) }
func (c OntologyClause) writeValue(b *strings.Builder)  { EscapeUnquoted(b, c.Name) }
func (c OwlAxiomsClause) writeValue(b *strings.Builder) { EscapeUnquoted(b, c.Axioms) }
func (c UnreservedClause) writeValue(b *strings.Builder) {
	EscapeUnquoted(b, c.Value)
}

// headerRank is the fixed tag precedence for header serialization:
// format-version first, owl-axioms last, unreserved tags just before
// owl-axioms.
var headerRank = func() map[string]int {
	order := []string{
		"format-version",
		"data-version",
		"date",
		"saved-by",
		"auto-generated-by",
		"import",
		"subsetdef",
		"synonymtypedef",
		"default-namespace",
		"namespace-id-rule",
		"idspace",
		"treat-xrefs-as-equivalent",
		"treat-xrefs-as-genus-differentia",
		"treat-xrefs-as-reverse-genus-differentia",
		"treat-xrefs-as-relationship",
		"treat-xrefs-as-is_a",
		"treat-xrefs-as-has-subclass",
		"property_value",
		"remark",
		"ontology",
	}
	m := make(map[string]int, len(order))
	for i, tag := range order {
		m[tag] = i
	}
	return m
}()

func headerTagRank(tag string) int {
	if r, ok := headerRank[tag]; ok {
		return r
	}
	if tag == "owl-axioms" {
		return len(headerRank) + 1
	}
	return len(headerRank)
}

// HeaderFrame is the leading unnamed frame of a document.
type HeaderFrame struct {
	Clauses []Line[HeaderClause]
	Pos     Position
}

// Push appends a bare clause with no qualifiers or comment.
func (h *HeaderFrame) Push(c HeaderClause) {
	h.Clauses = append(h.Clauses, Line[HeaderClause]{Clause: c})
}

// IsEmpty reports whether the header holds no clauses at all.
func (h *HeaderFrame) IsEmpty() bool {
	return len(h.Clauses) == 0
}

// FormatVersion returns the unique format-version value, or a
// CardinalityError on absence or multiplicity.
func (h *HeaderFrame) FormatVersion() (string, error) {
	c, err := uniqueHeaderClause[FormatVersionClause](h, "format-version")
	if err != nil {
		return "", err
	}
	return c.Version, nil
}

// DataVersion returns the unique data-version value, or a
// CardinalityError on absence or multiplicity.
func (h *HeaderFrame) DataVersion() (string, error) {
	c, err := uniqueHeaderClause[DataVersionClause](h, "data-version")
	if err != nil {
		return "", err
	}
	return c.Version, nil
}

// DefaultNamespace returns the unique default-namespace identifier,
// or a CardinalityError on absence or multiplicity.
func (h *HeaderFrame) DefaultNamespace() (Ident, error) {
	c, err := uniqueHeaderClause[DefaultNamespaceClause](h, "default-namespace")
	if err != nil {
		return nil, err
	}
	return c.Namespace, nil
}

// Ontology returns the unique ontology name, or a CardinalityError on
// absence or multiplicity.
func (h *HeaderFrame) Ontology() (string, error) {
	c, err := uniqueHeaderClause[OntologyClause](h, "ontology")
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

func uniqueHeaderClause[T HeaderClause](h *HeaderFrame, tag string) (T, error) {
	var found *T
	for i := range h.Clauses {
		if c, ok := h.Clauses[i].Clause.(T); ok {
			if found != nil {
				var zero T
				return zero, duplicateClauses(tag, nil, h.Pos)
			}
			found = &c
		}
	}
	if found == nil {
		var zero T
		return zero, missingClause(tag, nil, h.Pos)
	}
	return *found, nil
}

// MergeOWLAxioms concatenates all owl-axioms clauses into a single
// clause appended at the end of the header, joining their text with
// newlines. Applying it again is a no-op.
func (h *HeaderFrame) MergeOWLAxioms() {
	var merged []string
	kept := h.Clauses[:0]
	var quals QualifierList
	var comment string
	for _, ln := range h.Clauses {
		if c, ok := ln.Clause.(OwlAxiomsClause); ok {
			merged = append(merged, c.Axioms)
			if len(merged) == 1 {
				quals, comment = ln.Qualifiers, ln.Comment
			}
			continue
		}
		kept = append(kept, ln)
	}
	h.Clauses = kept
	if len(merged) > 0 {
		h.Clauses = append(h.Clauses, Line[HeaderClause]{
			Clause:     OwlAxiomsClause{Axioms: strings.Join(merged, "\n")},
			Qualifiers: quals,
			Comment:    comment,
		})
	}
}

// Sort reorders header clauses by the fixed tag precedence. The sort
// is stable so equal-ranked clauses, owl-axioms in particular, keep
// their relative order.
func (h *HeaderFrame) Sort() {
	sort.SliceStable(h.Clauses, func(i, j int) bool {
		return headerTagRank(h.Clauses[i].Clause.Tag()) < headerTagRank(h.Clauses[j].Clause.Tag())
	})
}

// IsSorted reports whether the header is already in precedence order.
func (h *HeaderFrame) IsSorted() bool {
	for i := 1; i < len(h.Clauses); i++ {
		if headerTagRank(h.Clauses[i-1].Clause.Tag()) > headerTagRank(h.Clauses[i].Clause.Tag()) {
			return false
		}
	}
	return true
}

// Validate checks header clause counts against the header cardinality
// table.
func (h *HeaderFrame) Validate() error {
	return validateLines(h.Clauses, headerCardinality, nil, h.Pos)
}
