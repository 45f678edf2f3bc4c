package ast

// Cardinality is the declared occurrence constraint of a clause kind
// within one frame. The mapping from clause kind to cardinality is a
// static table, independent of instance data.
type Cardinality int

const (
	// Any: no constraint.
	Any Cardinality = iota
	// ZeroOrOne: at most one occurrence.
	ZeroOrOne
	// One: exactly one occurrence.
	One
	// NotOne: any count except exactly one.
	NotOne
)

// IsMatch reports whether an occurrence count satisfies the
// constraint.
func (c Cardinality) IsMatch(n int) bool {
	switch c {
	case ZeroOrOne:
		return n < 2
	case One:
		return n == 1
	case NotOne:
		return n != 1
	}
	return true
}

// toError converts a violating count into the error to report, or nil
// when the count satisfies the constraint.
func (c Cardinality) toError(n int, tag string, id Ident, at Position) *CardinalityError {
	switch {
	case c == ZeroOrOne && n > 1:
		return duplicateClauses(tag, id, at)
	case c == One && n == 0:
		return missingClause(tag, id, at)
	case c == One && n > 1:
		return duplicateClauses(tag, id, at)
	case c == NotOne && n == 1:
		return singleClause(tag, id, at)
	}
	return nil
}

// Per-kind cardinality tables. Tags absent from a table carry Any.

var headerCardinality = map[string]Cardinality{
	"format-version":    ZeroOrOne,
	"data-version":      ZeroOrOne,
	"date":              ZeroOrOne,
	"saved-by":          ZeroOrOne,
	"auto-generated-by": ZeroOrOne,
	"default-namespace": ZeroOrOne,
	"namespace-id-rule": ZeroOrOne,
	"ontology":          ZeroOrOne,
}

var termCardinality = map[string]Cardinality{
	"is_anonymous":    ZeroOrOne,
	"name":            ZeroOrOne,
	"namespace":       One,
	"def":             ZeroOrOne,
	"comment":         ZeroOrOne,
	"builtin":         ZeroOrOne,
	"intersection_of": NotOne,
	"union_of":        NotOne,
	"created_by":      ZeroOrOne,
	"creation_date":   ZeroOrOne,
	"is_obsolete":     ZeroOrOne,
}

var typedefCardinality = map[string]Cardinality{
	"is_anonymous":          ZeroOrOne,
	"name":                  ZeroOrOne,
	"namespace":             One,
	"def":                   ZeroOrOne,
	"comment":               ZeroOrOne,
	"domain":                ZeroOrOne,
	"range":                 ZeroOrOne,
	"builtin":               ZeroOrOne,
	"is_anti_symmetric":     ZeroOrOne,
	"is_cyclic":             ZeroOrOne,
	"is_reflexive":          ZeroOrOne,
	"is_symmetric":          ZeroOrOne,
	"is_asymmetric":         ZeroOrOne,
	"is_transitive":         ZeroOrOne,
	"is_functional":         ZeroOrOne,
	"is_inverse_functional": ZeroOrOne,
	"intersection_of":       NotOne,
	"union_of":              NotOne,
	"inverse_of":            ZeroOrOne,
	"is_obsolete":           ZeroOrOne,
	"created_by":            ZeroOrOne,
	"creation_date":         ZeroOrOne,
	"is_metadata_tag":       ZeroOrOne,
	"is_class_level":        ZeroOrOne,
}

var instanceCardinality = map[string]Cardinality{
	"is_anonymous":  ZeroOrOne,
	"name":          ZeroOrOne,
	"namespace":     One,
	"def":           ZeroOrOne,
	"created_by":    ZeroOrOne,
	"creation_date": ZeroOrOne,
	"is_obsolete":   ZeroOrOne,
}

func lookupCardinality(table map[string]Cardinality, tag string) Cardinality {
	if c, ok := table[tag]; ok {
		return c
	}
	return Any
}
