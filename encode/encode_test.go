package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/parse"
)

const sample = `format-version: 1.4
ontology: go

[Term]
id: GO:0000001
name: mitochondrion inheritance
def: "The distribution of mitochondria." [GOC:mcc]
synonym: "mitochondrial inheritance" EXACT []
is_a: GO:0048308 ! organelle inheritance
relationship: part_of GO:0048311 {source="reactome"}

[Typedef]
id: part_of
name: part of
is_transitive: true
`

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := parse.String(sample, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(doc)
	if got != sample {
		t.Fatalf("got:\n%s\nwant:\n%s", got, sample)
	}
}

func TestEncodeReparse(t *testing.T) {
	doc, err := parse.String(sample, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	again, err := parse.String(MustString(doc), parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(MustString(doc), MustString(again)); d != "" {
		t.Fatalf("reparse changed document (-first +second):\n%s", d)
	}
}

func TestEncodeEscaping(t *testing.T) {
	doc := &ast.Document{}
	term := &ast.TermFrame{Ident: ast.PrefixedIdent{Prefix: "X", Local: "1"}}
	term.Push(ast.NameClause{Name: "uses ! and {braces}"})
	doc.Entities = append(doc.Entities, term)

	got := MustString(doc)
	want := "[Term]\nid: X:1\nname: uses \\! and \\{braces\\}\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	again, err := parse.String(got, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	name, err := again.Entities[0].(*ast.TermFrame).Name()
	if err != nil {
		t.Fatal(err)
	}
	if name != "uses ! and {braces}" {
		t.Fatalf("got %q", name)
	}
}

func TestEncodeCanonicalLeavesInputIntact(t *testing.T) {
	input := "[Term]\nid: B:2\n\n[Term]\nid: A:1\nname: alpha\nis_a: B:2\n"
	doc, err := parse.String(input, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(doc, Canonical(true))
	want := "[Term]\nid: A:1\nname: alpha\nis_a: B:2\n\n[Term]\nid: B:2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if MustString(doc) != input {
		t.Fatal("Canonical(true) mutated the input document")
	}
}

func TestEncodeCommentsOff(t *testing.T) {
	doc, err := parse.String("[Term]\nid: X:1\nis_a: Y:2 ! label\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(doc, EncodeComments(false))
	if strings.Contains(got, "label") {
		t.Fatalf("comment survived: %q", got)
	}
}

func TestEncodeHeaderOnly(t *testing.T) {
	doc, err := parse.String("format-version: 1.4\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(doc); got != "format-version: 1.4\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	if got := MustString(&ast.Document{}); got != "" {
		t.Fatalf("got %q", got)
	}
}
