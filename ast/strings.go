package ast

import (
	"bytes"
	"strings"
)

// Escaping rules for OBO string values. Unquoted strings must escape
// the characters that carry lexical meaning on a clause line; quoted
// strings only escape the quote and the backslash. Both forms encode
// raw newlines, carriage returns and form feeds so a value can never
// span lines.

// EscapeUnquoted writes s to b with unquoted-string escaping applied.
func EscapeUnquoted(b *strings.Builder, s string) {
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
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
}

// EscapeQuoted writes s to b surrounded by double quotes, with
// quoted-string escaping applied.
func EscapeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

// Unescape resolves backslash escapes in raw source bytes and returns
// the decoded text. Both string forms share one decoding table: an
// escaped character not in the table decodes to itself, which keeps
// the decoder total over sloppy real-world input.
func Unescape(raw []byte) string {
	i := bytes.IndexByte(raw, '\\')
	if i < 0 {
		return string(raw)
	}
	var b strings.Builder
	b.Grow(len(raw))
	b.Write(raw[:i])
	esc := false
	for ; i < len(raw); i++ {
		c := raw[i]
		if esc {
			esc = false
			switch c {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 'f':
				b.WriteByte('\f')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(c)
			}
			continue
		}
		if c == '\\' {
			esc = true
			continue
		}
		b.WriteByte(c)
	}
	if esc {
		b.WriteByte('\\')
	}
	return b.String()
}
