package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func docString(d *Document) []string {
	var out []string
	for _, ln := range d.Header.Clauses {
		out = append(out, ln.String())
	}
	for _, e := range d.Entities {
		out = append(out, e.ID().String())
	}
	return out
}

func TestHeaderAccessors(t *testing.T) {
	h := &HeaderFrame{}
	if _, err := h.FormatVersion(); err == nil {
		t.Fatal("expected missing format-version")
	}
	h.Push(FormatVersionClause{Version: "1.4"})
	v, err := h.FormatVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != "1.4" {
		t.Fatalf("got %q", v)
	}
	h.Push(FormatVersionClause{Version: "1.2"})
	if _, err := h.FormatVersion(); err == nil {
		t.Fatal("expected duplicate format-version")
	}
}

func TestMergeOWLAxiomsIdempotent(t *testing.T) {
	h := &HeaderFrame{}
	h.Push(OwlAxiomsClause{Axioms: "axiom-one"})
	h.Push(OntologyClause{Name: "go"})
	h.Push(OwlAxiomsClause{Axioms: "axiom-two"})

	h.MergeOWLAxioms()
	if len(h.Clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(h.Clauses))
	}
	merged, ok := h.Clauses[1].Clause.(OwlAxiomsClause)
	if !ok {
		t.Fatalf("owl-axioms not last: %v", h.Clauses[1])
	}
	if merged.Axioms != "axiom-one\naxiom-two" {
		t.Fatalf("got %q", merged.Axioms)
	}

	before := make([]Line[HeaderClause], len(h.Clauses))
	copy(before, h.Clauses)
	h.MergeOWLAxioms()
	if diff := cmp.Diff(before, h.Clauses); diff != "" {
		t.Fatalf("second merge changed the header (-want +got):\n%s", diff)
	}
}

func TestHeaderSortKeepsOwlAxiomsLast(t *testing.T) {
	h := &HeaderFrame{}
	h.Push(OwlAxiomsClause{Axioms: "first"})
	h.Push(OntologyClause{Name: "go"})
	h.Push(OwlAxiomsClause{Axioms: "second"})
	h.Push(FormatVersionClause{Version: "1.4"})

	h.Sort()
	tags := make([]string, len(h.Clauses))
	for i, ln := range h.Clauses {
		tags[i] = ln.Clause.Tag()
	}
	want := []string{"format-version", "ontology", "owl-axioms", "owl-axioms"}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Fatalf("bad header order (-want +got):\n%s", diff)
	}
	// Stability: the two owl-axioms clauses keep their input order.
	if h.Clauses[2].Clause.(OwlAxiomsClause).Axioms != "first" {
		t.Fatal("owl-axioms clauses were shuffled")
	}
	if !h.IsSorted() {
		t.Fatal("sorted header not reported sorted")
	}
}

func TestDocumentSortIdempotent(t *testing.T) {
	d := &Document{
		Entities: []EntityFrame{
			&InstanceFrame{Ident: ParseIdent("ex:b", nil)},
			&TermFrame{Ident: ParseIdent("GO:0000002", nil)},
			&TypedefFrame{Ident: ParseIdent("part_of", nil)},
			&TermFrame{Ident: ParseIdent("GO:0000001", nil)},
			&TermFrame{Ident: ParseIdent("http://example.com", nil)},
			&TermFrame{Ident: ParseIdent("zz_unprefixed", nil)},
		},
	}
	d.Sort()
	got := docString(d)
	want := []string{
		"GO:0000001", "GO:0000002", "zz_unprefixed", "http://example.com",
		"part_of", "ex:b",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bad entity order (-want +got):\n%s", diff)
	}
	if !d.IsSorted() {
		t.Fatal("sorted document not reported sorted")
	}

	d.Sort()
	if diff := cmp.Diff(want, docString(d)); diff != "" {
		t.Fatalf("sort not idempotent (-want +got):\n%s", diff)
	}
}

func TestAssignNamespaces(t *testing.T) {
	d := &Document{}
	d.Header.Push(DefaultNamespaceClause{Namespace: UnprefixedIdent("TST")})
	bare := &TermFrame{Ident: ParseIdent("TST:01", nil)}
	owned := termWithClauses("PATO:0000001", NamespaceClause{Namespace: UnprefixedIdent("quality")})
	d.Entities = []EntityFrame{bare, owned}

	if err := d.AssignNamespaces(); err != nil {
		t.Fatal(err)
	}
	if len(bare.Clauses) != 1 || ClauseString(bare.Clauses[0].Clause) != "namespace: TST" {
		t.Fatalf("bare frame not assigned: %v", bare.Clauses)
	}
	if len(owned.Clauses) != 1 {
		t.Fatalf("owned frame altered: %v", owned.Clauses)
	}

	// All frames already owning a namespace is not an error and is a
	// no-op.
	d2 := &Document{Entities: []EntityFrame{owned}}
	d2.Header.Push(DefaultNamespaceClause{Namespace: UnprefixedIdent("TST")})
	if err := d2.AssignNamespaces(); err != nil {
		t.Fatal(err)
	}
	if len(owned.Clauses) != 1 {
		t.Fatalf("owned frame altered: %v", owned.Clauses)
	}
}

func TestAssignNamespacesNoDefault(t *testing.T) {
	d := &Document{Entities: []EntityFrame{&TermFrame{Ident: ParseIdent("TST:01", nil)}}}
	if err := d.AssignNamespaces(); err == nil {
		t.Fatal("expected missing default-namespace error")
	}
}

func TestIsFullyLabeled(t *testing.T) {
	d := &Document{Entities: []EntityFrame{
		termWithClauses("GO:0000001", NameClause{Name: "foo"}),
	}}
	if !d.IsFullyLabeled() {
		t.Fatal("labeled document reported unlabeled")
	}
	d.Entities = append(d.Entities, &TermFrame{Ident: ParseIdent("GO:0000002", nil)})
	if d.IsFullyLabeled() {
		t.Fatal("unlabeled frame not detected")
	}
}

func TestIsEmpty(t *testing.T) {
	d := &Document{}
	if !d.IsEmpty() {
		t.Fatal("fresh document not empty")
	}
	d.Header.Push(FormatVersionClause{Version: "1.4"})
	if d.IsEmpty() {
		t.Fatal("document with header clause reported empty")
	}
}

func TestTreatXrefsAsEquivalent(t *testing.T) {
	d := &Document{}
	d.Header.Push(TreatXrefsAsEquivalentClause{Prefix: "TST"})
	f := termWithClauses("GO:0000001",
		XrefClause{Xref: Xref{ID: ParseIdent("TST:001", nil)}},
		XrefClause{Xref: Xref{ID: ParseIdent("OTHER:001", nil)}},
	)
	d.Entities = []EntityFrame{f}

	d.TreatXrefs()
	if len(f.Clauses) != 3 {
		t.Fatalf("got %d clauses, want 3: %v", len(f.Clauses), f.Clauses)
	}
	if ClauseString(f.Clauses[2].Clause) != "equivalent_to: TST:001" {
		t.Fatalf("got %q", ClauseString(f.Clauses[2].Clause))
	}

	d.TreatXrefs()
	if len(f.Clauses) != 3 {
		t.Fatalf("expansion not idempotent: %v", f.Clauses)
	}
}

func TestTreatXrefsImplicitBFO(t *testing.T) {
	d := &Document{}
	f := termWithClauses("GO:0000001",
		XrefClause{Xref: Xref{ID: ParseIdent("BFO:0000050", nil)}},
	)
	d.Entities = []EntityFrame{f}
	d.TreatXrefs()
	if len(f.Clauses) != 2 || ClauseString(f.Clauses[1].Clause) != "equivalent_to: BFO:0000050" {
		t.Fatalf("implicit BFO macro not applied: %v", f.Clauses)
	}
}

func TestTreatXrefsAsGenusDifferentia(t *testing.T) {
	d := &Document{}
	d.Header.Push(TreatXrefsAsGenusDifferentiaClause{
		Prefix:   "TST",
		Relation: ParseIdent("part_of", nil),
		Class:    ParseIdent("GO:0000100", nil),
	})
	f := termWithClauses("GO:0000001",
		XrefClause{Xref: Xref{ID: ParseIdent("TST:001", nil)}},
	)
	d.Entities = []EntityFrame{f}

	d.TreatXrefs()
	if len(f.Clauses) != 3 {
		t.Fatalf("got %d clauses: %v", len(f.Clauses), f.Clauses)
	}
	if ClauseString(f.Clauses[1].Clause) != "intersection_of: TST:001" {
		t.Fatalf("got %q", ClauseString(f.Clauses[1].Clause))
	}
	if ClauseString(f.Clauses[2].Clause) != "intersection_of: part_of GO:0000100" {
		t.Fatalf("got %q", ClauseString(f.Clauses[2].Clause))
	}

	d.TreatXrefs()
	if len(f.Clauses) != 3 {
		t.Fatalf("expansion not idempotent: %v", f.Clauses)
	}
}

func TestTreatXrefsAsHasSubclass(t *testing.T) {
	d := &Document{}
	d.Header.Push(TreatXrefsAsHasSubclassClause{Prefix: "TST"})
	super := termWithClauses("GO:0000001",
		XrefClause{Xref: Xref{ID: ParseIdent("TST:001", nil)}},
	)
	sub := &TermFrame{Ident: ParseIdent("TST:001", nil)}
	d.Entities = []EntityFrame{super, sub}

	d.TreatXrefs()
	if len(sub.Clauses) != 1 || ClauseString(sub.Clauses[0].Clause) != "is_a: GO:0000001" {
		t.Fatalf("subclass frame not rewritten: %v", sub.Clauses)
	}
	d.TreatXrefs()
	if len(sub.Clauses) != 1 {
		t.Fatalf("expansion not idempotent: %v", sub.Clauses)
	}
}
