package ast

import (
	"strings"
	"testing"
)

func TestEscapeUnquotedRoundTrip(t *testing.T) {
	for _, in := range []string{
		"plain text",
		"bang! brace{ close} quote\" slash\\",
		"line\nbreak",
		"",
	} {
		var b strings.Builder
		EscapeUnquoted(&b, in)
		if got := Unescape([]byte(b.String())); got != in {
			t.Fatalf("%q: round trip gave %q via %q", in, got, b.String())
		}
	}
}

func TestEscapeUnquotedBang(t *testing.T) {
	var b strings.Builder
	EscapeUnquoted(&b, "a!b")
	if got := b.String(); got != `a\!b` {
		t.Fatalf("got %q, want %q", got, `a\!b`)
	}
}

func TestEscapeQuoted(t *testing.T) {
	var b strings.Builder
	EscapeQuoted(&b, `say "hi" \now`)
	want := `"say \"hi\" \\now"`
	if got := b.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	inner := b.String()[1 : b.Len()-1]
	if got := Unescape([]byte(inner)); got != `say "hi" \now` {
		t.Fatalf("round trip gave %q", got)
	}
}

func TestUnescapeUnknownEscape(t *testing.T) {
	if got := Unescape([]byte(`a\:b`)); got != "a:b" {
		t.Fatalf("got %q", got)
	}
	if got := Unescape([]byte(`trailing\`)); got != `trailing\` {
		t.Fatalf("got %q", got)
	}
}
