package obo

import (
	"testing"
)

const filterDoc = `format-version: 1.4

[Term]
id: GO:0000001
name: mitochondrion inheritance
namespace: biological_process
subset: goslim_yeast

[Term]
id: GO:0000002
name: obsolete thing
is_obsolete: true

[Term]
id: PO:0000003
name: plant thing

[Typedef]
id: part_of
name: part of
`

func filterIDs(t *testing.T, src string) []string {
	t.Helper()
	doc, err := ParseString(filterDoc)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := CompileFilter(src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Filter(doc, prog)
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, len(out.Entities))
	for i, e := range out.Entities {
		ids[i] = e.ID().String()
	}
	return ids
}

func TestFilterByKindAndPrefix(t *testing.T) {
	got := filterIDs(t, `kind == "Term" && prefix == "GO"`)
	want := []string{"GO:0000001", "GO:0000002"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFilterObsolete(t *testing.T) {
	got := filterIDs(t, `!obsolete && kind == "Term"`)
	if len(got) != 2 || got[0] != "GO:0000001" || got[1] != "PO:0000003" {
		t.Fatalf("got %v", got)
	}
}

func TestFilterByTagAndSubset(t *testing.T) {
	got := filterIDs(t, `tags["subset"] > 0 && "goslim_yeast" in subsets`)
	if len(got) != 1 || got[0] != "GO:0000001" {
		t.Fatalf("got %v", got)
	}
}

func TestFilterName(t *testing.T) {
	got := filterIDs(t, `name startsWith "obsolete"`)
	if len(got) != 1 || got[0] != "GO:0000002" {
		t.Fatalf("got %v", got)
	}
}

func TestCompileFilterError(t *testing.T) {
	if _, err := CompileFilter(`kind ==`); err == nil {
		t.Fatal("expected compile error")
	}
	// Non-boolean expressions are rejected at compile time.
	if _, err := CompileFilter(`name`); err == nil {
		t.Fatal("expected compile error for non-bool result")
	}
}

func TestFilterKeepsHeader(t *testing.T) {
	doc, err := ParseString(filterDoc)
	if err != nil {
		t.Fatal(err)
	}
	prog, err := CompileFilter(`false`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Filter(doc, prog)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Entities) != 0 {
		t.Fatalf("got %d entities", len(out.Entities))
	}
	v, err := out.Header.FormatVersion()
	if err != nil || v != "1.4" {
		t.Fatalf("got %q, %v", v, err)
	}
}
