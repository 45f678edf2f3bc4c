package ast

import "strings"

// Qualifier is one key="value" annotation from a trailing qualifier
// block.
type Qualifier struct {
	Key   string
	Value string
}

func (q Qualifier) String() string {
	var b strings.Builder
	q.write(&b)
	return b.String()
}

func (q Qualifier) write(b *strings.Builder) {
	EscapeUnquoted(b, q.Key)
	b.WriteByte('=')
	EscapeQuoted(b, q.Value)
}

// QualifierList preserves order and permits duplicate keys.
type QualifierList []Qualifier

func (qs QualifierList) String() string {
	var b strings.Builder
	qs.write(&b)
	return b.String()
}

func (qs QualifierList) write(b *strings.Builder) {
	b.WriteByte('{')
	for i, q := range qs {
		if i > 0 {
			b.WriteString(", ")
		}
		q.write(b)
	}
	b.WriteByte('}')
}
