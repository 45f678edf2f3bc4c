package ast

import (
	"testing"

	"github.com/obolibrary/obo-format/go-obo/intern"
)

func TestParseIdent(t *testing.T) {
	c := intern.NewCache()
	for _, tc := range []struct {
		in   string
		want Ident
	}{
		{"GO:0000001", PrefixedIdent{Prefix: "GO", Local: "0000001"}},
		{"part_of", UnprefixedIdent("part_of")},
		{"http://example.com", Url("http://example.com")},
		{"http://purl.obolibrary.org/obo/GO_0000001", Url("http://purl.obolibrary.org/obo/GO_0000001")},
		{"EC:1.1.1.1", PrefixedIdent{Prefix: "EC", Local: "1.1.1.1"}},
		{"BFO:0000050", PrefixedIdent{Prefix: "BFO", Local: "0000050"}},
	} {
		got := ParseIdent(tc.in, c)
		if got != tc.want {
			t.Fatalf("%q: got %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestParseIdentBytesEscapedColon(t *testing.T) {
	c := intern.NewCache()
	for _, tc := range []struct {
		in     string
		want   Ident
		render string
	}{
		{`A\:B:C`, PrefixedIdent{Prefix: "A:B", Local: "C"}, `A\:B:C`},
		{`A:B\:C`, PrefixedIdent{Prefix: "A", Local: "B:C"}, `A:B:C`},
		{`no\:colon`, UnprefixedIdent("no:colon"), `no\:colon`},
		{`GO:0000001`, PrefixedIdent{Prefix: "GO", Local: "0000001"}, `GO:0000001`},
	} {
		got := ParseIdentBytes([]byte(tc.in), c)
		if got != tc.want {
			t.Fatalf("%q: got %#v, want %#v", tc.in, got, tc.want)
		}
		if got.String() != tc.render {
			t.Fatalf("%q: rendered as %q, want %q", tc.in, got.String(), tc.render)
		}
	}
}

func TestIdentInterning(t *testing.T) {
	c := intern.NewCache()
	a := ParseIdent("GO:0000001", c).(PrefixedIdent)
	b := ParseIdent("GO:0000002", c).(PrefixedIdent)
	if a.Prefix != b.Prefix {
		t.Fatal("prefixes differ")
	}
	if c.Len() != 3 {
		t.Fatalf("got %d cache entries, want 3", c.Len())
	}
}

func TestIdentString(t *testing.T) {
	for _, tc := range []struct {
		id   Ident
		want string
	}{
		{PrefixedIdent{Prefix: "GO", Local: "0000001"}, "GO:0000001"},
		{PrefixedIdent{Prefix: "a b", Local: "x:y"}, `a\ b:x:y`},
		{UnprefixedIdent("has_part"), "has_part"},
		{Url("http://example.com"), "http://example.com"},
	} {
		if got := tc.id.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}

func TestCompareIdent(t *testing.T) {
	ordered := []Ident{
		PrefixedIdent{Prefix: "GO", Local: "0000001"},
		PrefixedIdent{Prefix: "GO", Local: "0000002"},
		PrefixedIdent{Prefix: "PATO", Local: "0000001"},
		UnprefixedIdent("part_of"),
		Url("http://example.com"),
	}
	for i := 1; i < len(ordered); i++ {
		if CompareIdent(ordered[i-1], ordered[i]) >= 0 {
			t.Fatalf("%s should sort before %s", ordered[i-1], ordered[i])
		}
	}
}

func TestCompactor(t *testing.T) {
	patterns := map[string]string{
		"GO": "http://purl.obolibrary.org/obo/GO_",
	}
	comp := NewIDCompactor(patterns, nil)
	dec := NewIDDecompactor(patterns, nil)

	u := Url("http://purl.obolibrary.org/obo/GO_0000001")
	p := comp.Compact(u)
	want := PrefixedIdent{Prefix: "GO", Local: "0000001"}
	if p != want {
		t.Fatalf("got %#v, want %#v", p, want)
	}
	if back := dec.Decompact(p); back != u {
		t.Fatalf("got %#v, want %#v", back, u)
	}

	other := Url("http://example.com/X_1")
	if got := comp.Compact(other); got != other {
		t.Fatalf("unmatched URL changed: %#v", got)
	}
}
