package ast

import (
	"net/url"
	"strings"

	"github.com/obolibrary/obo-format/go-obo/intern"
)

// Ident is an OBO identifier in one of its three forms: prefixed
// (GO:0000001), unprefixed (part_of), or a full URL. All three are
// comparable value types, so two idents are equal exactly when their
// text is equal.
type Ident interface {
	String() string
	isIdent()
}

// PrefixedIdent is a `prefix:local` identifier. Both components are
// interned by the parser, so repeated identifiers across a document
// share their backing text.
type PrefixedIdent struct {
	Prefix string
	Local  string
}

// UnprefixedIdent is a bare identifier with no prefix separator.
type UnprefixedIdent string

// Url is an identifier given as an absolute URL.
type Url string

func (PrefixedIdent) isIdent()   {}
func (UnprefixedIdent) isIdent() {}
func (Url) isIdent()             {}

func (p PrefixedIdent) String() string {
	var b strings.Builder
	b.Grow(len(p.Prefix) + len(p.Local) + 1)
	escapeIdent(&b, p.Prefix, true)
	b.WriteByte(':')
	escapeIdent(&b, p.Local, false)
	return b.String()
}

func (u UnprefixedIdent) String() string {
	var b strings.Builder
	b.Grow(len(u))
	escapeIdent(&b, string(u), true)
	return b.String()
}

func (u Url) String() string {
	return string(u)
}

// escapeIdent escapes an identifier component. The prefix separator
// is only escaped where a raw ':' would change how the identifier
// reparses, so URLs and locals keep their colons.
func escapeIdent(b *strings.Builder, s string, colon bool) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '!':
			b.WriteString(`\!`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '"':
			b.WriteString(`\"`)
		case ' ':
			b.WriteString(`\ `)
		case '\t':
			b.WriteString(`\t`)
		case ':':
			if colon {
				b.WriteString(`\:`)
			} else {
				b.WriteByte(':')
			}
		default:
			b.WriteByte(c)
		}
	}
}

// ParseIdent classifies decoded identifier text. Absolute URLs win,
// then anything with a prefix separator, then bare identifiers. The
// cache deduplicates components; a nil cache skips interning.
func ParseIdent(text string, c *intern.Cache) Ident {
	if isUrl(text) {
		return Url(internOne(text, c))
	}
	if i := strings.IndexByte(text, ':'); i >= 0 {
		return PrefixedIdent{
			Prefix: internOne(text[:i], c),
			Local:  internOne(text[i+1:], c),
		}
	}
	return UnprefixedIdent(internOne(text, c))
}

// ParseIdentBytes decodes escaped source bytes and classifies them.
// The prefix split happens on the first unescaped colon in the raw
// bytes, before decoding, so an escaped colon stays inside its
// component.
func ParseIdentBytes(raw []byte, c *intern.Cache) Ident {
	text := Unescape(raw)
	if isUrl(text) {
		return Url(internOne(text, c))
	}
	if i := indexUnescaped(raw, ':'); i >= 0 {
		return PrefixedIdent{
			Prefix: internOne(Unescape(raw[:i]), c),
			Local:  internOne(Unescape(raw[i+1:]), c),
		}
	}
	return UnprefixedIdent(internOne(text, c))
}

// indexUnescaped finds the first occurrence of b not preceded by a
// backslash.
func indexUnescaped(d []byte, b byte) int {
	for i := 0; i < len(d); i++ {
		switch d[i] {
		case '\\':
			i++
		case b:
			return i
		}
	}
	return -1
}

// isUrl reports whether text is an absolute URL. The scheme check
// keeps ordinary prefixed identifiers out: `GO:0000001` has a colon
// but no authority, while `http://example.com` with an empty path is
// a valid URL identifier.
func isUrl(text string) bool {
	if !strings.Contains(text, "://") {
		return false
	}
	u, err := url.Parse(text)
	return err == nil && u.IsAbs()
}

func internOne(s string, c *intern.Cache) string {
	if c == nil {
		return s
	}
	return c.Intern(s)
}

// identRank partitions identifiers for canonical ordering: prefixed
// before unprefixed before URL.
func identRank(id Ident) int {
	switch id.(type) {
	case PrefixedIdent:
		return 0
	case UnprefixedIdent:
		return 1
	default:
		return 2
	}
}

// CompareIdent orders identifiers per the canonical serialization
// convention: by form first, then lexicographically within a form.
func CompareIdent(a, b Ident) int {
	if ra, rb := identRank(a), identRank(b); ra != rb {
		return ra - rb
	}
	switch x := a.(type) {
	case PrefixedIdent:
		y := b.(PrefixedIdent)
		if c := strings.Compare(x.Prefix, y.Prefix); c != 0 {
			return c
		}
		return strings.Compare(x.Local, y.Local)
	case UnprefixedIdent:
		return strings.Compare(string(x), string(b.(UnprefixedIdent)))
	default:
		return strings.Compare(string(a.(Url)), string(b.(Url)))
	}
}
