package ast

import (
	"errors"
	"testing"
)

func termWithClauses(id string, clauses ...TermClause) *TermFrame {
	f := &TermFrame{Ident: ParseIdent(id, nil)}
	for _, c := range clauses {
		f.Push(c)
	}
	return f
}

func TestValidateDuplicateName(t *testing.T) {
	f := termWithClauses("GO:0000001",
		NamespaceClause{Namespace: UnprefixedIdent("test")},
		NameClause{Name: "foo"},
		NameClause{Name: "bar"},
	)
	err := f.Validate()
	var cerr *CardinalityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CardinalityError", err)
	}
	if cerr.Tag != "name" {
		t.Fatalf("got tag %q, want name", cerr.Tag)
	}
	if cerr.ID != (PrefixedIdent{Prefix: "GO", Local: "0000001"}) {
		t.Fatalf("got id %v", cerr.ID)
	}
	if cerr.Reason != DuplicateClauses {
		t.Fatalf("got reason %d", cerr.Reason)
	}
}

func TestValidateMissingNamespace(t *testing.T) {
	f := termWithClauses("GO:0000001", NameClause{Name: "foo"})
	err := f.Validate()
	var cerr *CardinalityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CardinalityError", err)
	}
	if cerr.Tag != "namespace" || cerr.Reason != MissingClause {
		t.Fatalf("got %v", cerr)
	}
}

func TestValidateSingleIntersectionOf(t *testing.T) {
	f := termWithClauses("GO:0000001",
		NamespaceClause{Namespace: UnprefixedIdent("test")},
		IntersectionOfClause{ID: ParseIdent("GO:0000002", nil)},
	)
	err := f.Validate()
	var cerr *CardinalityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CardinalityError", err)
	}
	if cerr.Tag != "intersection_of" || cerr.Reason != SingleClause {
		t.Fatalf("got %v", cerr)
	}

	f.Push(IntersectionOfClause{
		Relation: ParseIdent("part_of", nil),
		ID:       ParseIdent("GO:0000003", nil),
	})
	if err := f.Validate(); err != nil {
		t.Fatalf("two intersection_of clauses should validate: %v", err)
	}
}

func TestValidateOK(t *testing.T) {
	f := termWithClauses("GO:0000001",
		NameClause{Name: "foo"},
		NamespaceClause{Namespace: UnprefixedIdent("test")},
		XrefClause{Xref: Xref{ID: ParseIdent("EC:1.1.1.1", nil)}},
		XrefClause{Xref: Xref{ID: ParseIdent("EC:1.1.1.1", nil)}},
	)
	if err := f.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDefinitionAccessor(t *testing.T) {
	f := termWithClauses("GO:0000001")
	if _, err := f.Definition(); err == nil {
		t.Fatal("expected missing def error")
	}

	f.Push(DefClause{Definition: Definition{Text: "first"}})
	def, err := f.Definition()
	if err != nil {
		t.Fatal(err)
	}
	if def.Text != "first" {
		t.Fatalf("got %q", def.Text)
	}

	f.Push(DefClause{Definition: Definition{Text: "second"}})
	_, err = f.Definition()
	var cerr *CardinalityError
	if !errors.As(err, &cerr) || cerr.Reason != DuplicateClauses {
		t.Fatalf("got %v, want duplicate def error", err)
	}
}

func TestLineString(t *testing.T) {
	ln := Line[TermClause]{
		Clause:     XrefClause{Xref: Xref{ID: ParseIdent("EC:1.1.1.1", nil), Description: "enzyme"}},
		Qualifiers: QualifierList{{Key: "source", Value: "orcid:0"}},
		Comment:    "checked",
	}
	want := `xref: EC:1.1.1.1 "enzyme" {source="orcid:0"} ! checked`
	if got := ln.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSortClauses(t *testing.T) {
	f := termWithClauses("GO:0000001",
		XrefClause{Xref: Xref{ID: ParseIdent("EC:2.1.1.1", nil)}},
		NameClause{Name: "foo"},
		XrefClause{Xref: Xref{ID: ParseIdent("EC:1.1.1.1", nil)}},
		NamespaceClause{Namespace: UnprefixedIdent("test")},
	)
	f.SortClauses()
	tags := make([]string, len(f.Clauses))
	for i, ln := range f.Clauses {
		tags[i] = ln.Clause.Tag()
	}
	want := []string{"name", "namespace", "xref", "xref"}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("got order %v, want %v", tags, want)
		}
	}
	if ClauseString(f.Clauses[2].Clause) != "xref: EC:1.1.1.1" {
		t.Fatalf("same-tag clauses not ordered by text: %v", f.Clauses[2])
	}
}
