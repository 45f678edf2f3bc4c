package parse

import (
	"errors"
	"testing"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

const miniDoc = `format-version: 1.4
date: 18:06:2019 14:02
default-namespace: gene_ontology
subsetdef: goslim_plant "Plant GO slim"
synonymtypedef: systematic_synonym "Systematic synonym" EXACT
ontology: go

[Term]
id: GO:0000001
name: mitochondrion inheritance
namespace: biological_process
def: "The distribution of mitochondria." [GOC:mcc, PMID:10873824 "PMID desc"]
synonym: "mitochondrial inheritance" EXACT []
xref: EC:1.1.1.1 "an enzyme"
is_a: GO:0048308 ! organelle inheritance
relationship: part_of GO:0048311 {source="reactome"}
property_value: seeAlso "documentation" xsd:string
creation_date: 2017-04-13T12:04:31Z

[Typedef]
id: part_of
name: part of
namespace: external
is_transitive: true
inverse_of: has_part

[Instance]
id: ex:sample
name: a sample
instance_of: GO:0000001
`

func TestParseDocument(t *testing.T) {
	doc, err := String(miniDoc, Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Header.Clauses) != 6 {
		t.Fatalf("got %d header clauses, want 6", len(doc.Header.Clauses))
	}
	v, err := doc.Header.FormatVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != "1.4" {
		t.Fatalf("got format version %q", v)
	}
	if len(doc.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(doc.Entities))
	}

	term, ok := doc.Entities[0].(*ast.TermFrame)
	if !ok {
		t.Fatalf("entity 0 is %T", doc.Entities[0])
	}
	if term.Ident != (ast.PrefixedIdent{Prefix: "GO", Local: "0000001"}) {
		t.Fatalf("got id %v", term.Ident)
	}
	name, err := term.Name()
	if err != nil {
		t.Fatal(err)
	}
	if name != "mitochondrion inheritance" {
		t.Fatalf("got name %q", name)
	}
	def, err := term.Definition()
	if err != nil {
		t.Fatal(err)
	}
	if def.Text != "The distribution of mitochondria." {
		t.Fatalf("got def %q", def.Text)
	}
	if len(def.Xrefs) != 2 || def.Xrefs[1].Description != "PMID desc" {
		t.Fatalf("got def xrefs %v", def.Xrefs)
	}

	if _, ok := doc.Entities[1].(*ast.TypedefFrame); !ok {
		t.Fatalf("entity 1 is %T", doc.Entities[1])
	}
	if _, ok := doc.Entities[2].(*ast.InstanceFrame); !ok {
		t.Fatalf("entity 2 is %T", doc.Entities[2])
	}
}

func findTermLine(t *testing.T, f *ast.TermFrame, tag string) ast.Line[ast.TermClause] {
	t.Helper()
	for _, ln := range f.Clauses {
		if ln.Clause.Tag() == tag {
			return ln
		}
	}
	t.Fatalf("no %q clause in %v", tag, f.Ident)
	return ast.Line[ast.TermClause]{}
}

func TestParseClauseDetail(t *testing.T) {
	doc, err := String(miniDoc, Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	term := doc.Entities[0].(*ast.TermFrame)

	isa := findTermLine(t, term, "is_a")
	if isa.Comment != "organelle inheritance" {
		t.Fatalf("got comment %q", isa.Comment)
	}

	rel := findTermLine(t, term, "relationship")
	if len(rel.Qualifiers) != 1 || rel.Qualifiers[0] != (ast.Qualifier{Key: "source", Value: "reactome"}) {
		t.Fatalf("got qualifiers %v", rel.Qualifiers)
	}
	rc := rel.Clause.(ast.RelationshipClause)
	if rc.Relation != ast.UnprefixedIdent("part_of") {
		t.Fatalf("got relation %v", rc.Relation)
	}

	pv := findTermLine(t, term, "property_value").Clause.(ast.PropertyValueClause)
	lit, ok := pv.Value.(ast.LiteralPropertyValue)
	if !ok {
		t.Fatalf("got %T, want literal property value", pv.Value)
	}
	if lit.Value != "documentation" || lit.Datatype != (ast.PrefixedIdent{Prefix: "xsd", Local: "string"}) {
		t.Fatalf("got %v", lit)
	}

	cd := findTermLine(t, term, "creation_date").Clause.(ast.CreationDateClause)
	if cd.Date.Time == nil || cd.Date.String() != "2017-04-13T12:04:31Z" {
		t.Fatalf("got %v", cd.Date)
	}

	syn := findTermLine(t, term, "synonym").Clause.(ast.SynonymClause)
	if syn.Synonym.Scope != ast.Exact || syn.Synonym.Text != "mitochondrial inheritance" {
		t.Fatalf("got %v", syn.Synonym)
	}
	if len(syn.Synonym.Xrefs) != 0 {
		t.Fatalf("got xrefs %v", syn.Synonym.Xrefs)
	}
}

func TestParseEscapedValue(t *testing.T) {
	doc, err := String("[Term]\nid: X:1\nname: not a comment \\! really\n", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	name, err := doc.Entities[0].(*ast.TermFrame).Name()
	if err != nil {
		t.Fatal(err)
	}
	if name != "not a comment ! really" {
		t.Fatalf("got %q", name)
	}
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := String("[Term]\nid: X:1\n\n[Term]\nid: X:2\nis_obsolete: maybe\n", Workers(0))
	var serr *ast.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want SyntaxError", err)
	}
	if serr.Line != 6 {
		t.Fatalf("got line %d, want 6", serr.Line)
	}
	if serr.Col == 0 {
		t.Fatal("column not set")
	}
}

func TestParseTrailingInput(t *testing.T) {
	for _, in := range []string{
		"[Term]\nid: X:1\nis_a: GO:0000002 GO:0000003\n",
		"[Term]\nid: X:1\nnamespace: biological_process extra_token\n",
		"[Typedef]\nid: part_of\ninverse_of: has_part junk\n",
		"[Term]\nid: X:1\nis_obsolete: true false\n",
		"subsetdef: goslim_plant \"Plant GO slim\" leftover\n",
	} {
		_, err := String(in, Workers(0))
		var serr *ast.SyntaxError
		if !errors.As(err, &serr) {
			t.Fatalf("%q: got %v, want SyntaxError", in, err)
		}
	}
}

func TestParseMissingID(t *testing.T) {
	_, err := String("[Term]\nname: foo\n", Workers(0))
	var serr *ast.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want SyntaxError", err)
	}
}

func TestParseUnknownTag(t *testing.T) {
	_, err := String("[Term]\nid: X:1\nno_such_tag: v\n", Workers(0))
	if err == nil {
		t.Fatal("expected error")
	}
	// Unknown header tags, by contrast, are kept as unreserved
	// clauses.
	doc, err := String("custom-tag: custom value\n", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	c, ok := doc.Header.Clauses[0].Clause.(ast.UnreservedClause)
	if !ok {
		t.Fatalf("got %T", doc.Header.Clauses[0].Clause)
	}
	if c.TagName != "custom-tag" || c.Value != "custom value" {
		t.Fatalf("got %v", c)
	}
}

func TestParseValidateScenario(t *testing.T) {
	doc, err := String("[Term]\nid: GO:0000001\nname: foo\nname: bar\n", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Entities[0].Validate()
	var cerr *ast.CardinalityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CardinalityError", err)
	}
	if cerr.Tag != "name" {
		t.Fatalf("got tag %q", cerr.Tag)
	}
	if cerr.ID != (ast.PrefixedIdent{Prefix: "GO", Local: "0000001"}) {
		t.Fatalf("got id %v", cerr.ID)
	}
}

func TestParseValidatePosition(t *testing.T) {
	doc, err := String("[Term]\nid: GO:0000001\n\n[Term]\nid: GO:0000002\nname: a\nname: b\n", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Entities[1].Validate()
	var cerr *ast.CardinalityError
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want CardinalityError", err)
	}
	// The error points at the start of the offending frame.
	if cerr.Line != 4 {
		t.Fatalf("got line %d, want 4", cerr.Line)
	}
}

func TestParseEmptyAndHeaderOnly(t *testing.T) {
	doc, err := String("", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.IsEmpty() {
		t.Fatal("empty input gave nonempty document")
	}

	doc, err = String("format-version: 1.4\n", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if doc.IsEmpty() || len(doc.Entities) != 0 {
		t.Fatalf("got %d entities", len(doc.Entities))
	}
}

func TestParseSingleFrameNoBlankLines(t *testing.T) {
	doc, err := String("[Term]\nid: X:1", Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Entities) != 1 {
		t.Fatalf("got %d entities", len(doc.Entities))
	}
}
