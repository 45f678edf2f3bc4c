package libdiff

import (
	"strings"
	"testing"

	"github.com/obolibrary/obo-format/go-obo/parse"
)

func TestDiffEqualDocuments(t *testing.T) {
	const s = "format-version: 1.4\n\n[Term]\nid: X:1\nname: one\n"
	a, err := parse.String(s, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.String(s, parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if d := Diff(a, b); !d.IsEmpty() {
		t.Fatalf("expected empty diff, got:\n%s", d)
	}
}

func TestDiffReorderIsNoChange(t *testing.T) {
	a, err := parse.String("[Term]\nid: X:1\n\n[Term]\nid: X:2\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.String("[Term]\nid: X:2\n\n[Term]\nid: X:1\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	if d := Diff(a, b); !d.IsEmpty() {
		t.Fatalf("expected empty diff, got:\n%s", d)
	}
}

func TestDiffAddedRemovedChanged(t *testing.T) {
	a, err := parse.String("[Term]\nid: X:1\nname: one\n\n[Term]\nid: X:2\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.String("[Term]\nid: X:1\nname: uno\n\n[Term]\nid: X:3\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if len(d.Frames) != 3 {
		t.Fatalf("got %d frame diffs, want 3:\n%s", len(d.Frames), d)
	}
	ops := map[string]FrameOp{}
	for _, f := range d.Frames {
		ops[f.ID.String()] = f.Op
	}
	if ops["X:1"] != FrameChanged || ops["X:2"] != FrameRemoved || ops["X:3"] != FrameAdded {
		t.Fatalf("got ops %v", ops)
	}

	out := d.String()
	for _, want := range []string{"- name: one", "+ name: uno", "removed [Term] X:2", "added [Term] X:3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiffHeader(t *testing.T) {
	a, err := parse.String("format-version: 1.4\nontology: go\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.String("format-version: 1.4\nontology: po\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if len(d.Header) != 2 {
		t.Fatalf("got %d header line diffs, want 2:\n%s", len(d.Header), d)
	}
}

func TestDiffClauseInsertOnly(t *testing.T) {
	a, err := parse.String("[Term]\nid: X:1\nname: one\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.String("[Term]\nid: X:1\nname: one\nis_a: X:2\n", parse.Workers(0))
	if err != nil {
		t.Fatal(err)
	}
	d := Diff(a, b)
	if len(d.Frames) != 1 || len(d.Frames[0].Lines) != 1 {
		t.Fatalf("got:\n%s", d)
	}
	ln := d.Frames[0].Lines[0]
	if !ln.Insert || ln.Text != "is_a: X:2" {
		t.Fatalf("got %+v", ln)
	}
}
