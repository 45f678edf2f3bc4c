package ast

import (
	"sort"
	"strings"
)

// Line wraps one clause with its trailing qualifier block and
// comment.
type Line[T Clause] struct {
	Clause     T
	Qualifiers QualifierList
	Comment    string
}

func (l Line[T]) String() string {
	var b strings.Builder
	b.WriteString(l.Clause.Tag())
	b.WriteString(": ")
	l.Clause.writeValue(&b)
	if len(l.Qualifiers) > 0 {
		b.WriteByte(' ')
		l.Qualifiers.write(&b)
	}
	if l.Comment != "" {
		b.WriteString(" ! ")
		b.WriteString(l.Comment)
	}
	return b.String()
}

// EntityFrame is one of the three named frame variants.
type EntityFrame interface {
	// ID returns the frame identifier from its id clause.
	ID() Ident
	// Validate checks clause counts against the frame kind's
	// cardinality table.
	Validate() error
	// Definition returns the unique def clause value; absence and
	// multiplicity both surface as a CardinalityError.
	Definition() (Definition, error)
	// Name returns the unique name clause value under the same
	// contract as Definition.
	Name() (string, error)
	// SortClauses orders the frame's clauses canonically in place.
	SortClauses()

	entityFrame()
	kindRank() int
}

// TermFrame is a `[Term]` frame.
type TermFrame struct {
	Ident   Ident
	Clauses []Line[TermClause]
	Pos     Position
}

// TypedefFrame is a `[Typedef]` frame.
type TypedefFrame struct {
	Ident   Ident
	Clauses []Line[TypedefClause]
	Pos     Position
}

// InstanceFrame is an `[Instance]` frame.
type InstanceFrame struct {
	Ident   Ident
	Clauses []Line[InstanceClause]
	Pos     Position
}

func (*TermFrame) entityFrame()     {}
func (*TypedefFrame) entityFrame()  {}
func (*InstanceFrame) entityFrame() {}

func (*TermFrame) kindRank() int     { return 0 }
func (*TypedefFrame) kindRank() int  { return 1 }
func (*InstanceFrame) kindRank() int { return 2 }

func (f *TermFrame) ID() Ident     { return f.Ident }
func (f *TypedefFrame) ID() Ident  { return f.Ident }
func (f *InstanceFrame) ID() Ident { return f.Ident }

// Push appends a bare clause with no qualifiers or comment.
func (f *TermFrame) Push(c TermClause) {
	f.Clauses = append(f.Clauses, Line[TermClause]{Clause: c})
}

func (f *TypedefFrame) Push(c TypedefClause) {
	f.Clauses = append(f.Clauses, Line[TypedefClause]{Clause: c})
}

func (f *InstanceFrame) Push(c InstanceClause) {
	f.Clauses = append(f.Clauses, Line[InstanceClause]{Clause: c})
}

func (f *TermFrame) Validate() error {
	return validateLines(f.Clauses, termCardinality, f.Ident, f.Pos)
}

func (f *TypedefFrame) Validate() error {
	return validateLines(f.Clauses, typedefCardinality, f.Ident, f.Pos)
}

func (f *InstanceFrame) Validate() error {
	return validateLines(f.Clauses, instanceCardinality, f.Ident, f.Pos)
}

func (f *TermFrame) Definition() (Definition, error) {
	return uniqueDefinition(f.Clauses, f.Ident, f.Pos)
}

func (f *TypedefFrame) Definition() (Definition, error) {
	return uniqueDefinition(f.Clauses, f.Ident, f.Pos)
}

func (f *InstanceFrame) Definition() (Definition, error) {
	return uniqueDefinition(f.Clauses, f.Ident, f.Pos)
}

func (f *TermFrame) Name() (string, error) {
	return uniqueName(f.Clauses, f.Ident, f.Pos)
}

func (f *TypedefFrame) Name() (string, error) {
	return uniqueName(f.Clauses, f.Ident, f.Pos)
}

func (f *InstanceFrame) Name() (string, error) {
	return uniqueName(f.Clauses, f.Ident, f.Pos)
}

func (f *TermFrame) SortClauses() {
	sortClauses(f.Clauses, termRank)
}

func (f *TypedefFrame) SortClauses() {
	sortClauses(f.Clauses, typedefRank)
}

func (f *InstanceFrame) SortClauses() {
	sortClauses(f.Clauses, instanceRank)
}

// validateLines tallies clause occurrences per tag and checks each
// tally against the kind's table, including tags the table requires
// but the frame omits.
func validateLines[T Clause](lines []Line[T], table map[string]Cardinality, id Ident, at Position) error {
	counts := make(map[string]int, len(lines))
	for i := range lines {
		counts[lines[i].Clause.Tag()]++
	}
	for tag, n := range counts {
		if err := lookupCardinality(table, tag).toError(n, tag, id, at); err != nil {
			return err
		}
	}
	for tag, card := range table {
		if card == One && counts[tag] == 0 {
			return missingClause(tag, id, at)
		}
	}
	return nil
}

func uniqueDefinition[T Clause](lines []Line[T], id Ident, at Position) (Definition, error) {
	var def *Definition
	for i := range lines {
		if c, ok := Clause(lines[i].Clause).(DefClause); ok {
			if def != nil {
				return Definition{}, duplicateClauses("def", id, at)
			}
			d := c.Definition
			def = &d
		}
	}
	if def == nil {
		return Definition{}, missingClause("def", id, at)
	}
	return *def, nil
}

func uniqueName[T Clause](lines []Line[T], id Ident, at Position) (string, error) {
	var name *string
	for i := range lines {
		if c, ok := Clause(lines[i].Clause).(NameClause); ok {
			if name != nil {
				return "", duplicateClauses("name", id, at)
			}
			n := c.Name
			name = &n
		}
	}
	if name == nil {
		return "", missingClause("name", id, at)
	}
	return *name, nil
}

// sortClauses orders clauses by tag rank, then by rendered text for
// clauses of the same kind.
func sortClauses[T Clause](lines []Line[T], rank map[string]int) {
	sort.SliceStable(lines, func(i, j int) bool {
		ri, rj := clauseRank(rank, lines[i].Clause.Tag()), clauseRank(rank, lines[j].Clause.Tag())
		if ri != rj {
			return ri < rj
		}
		return ClauseString(lines[i].Clause) < ClauseString(lines[j].Clause)
	})
}

func clausesSorted[T Clause](lines []Line[T], rank map[string]int) bool {
	for i := 1; i < len(lines); i++ {
		ri, rj := clauseRank(rank, lines[i-1].Clause.Tag()), clauseRank(rank, lines[i].Clause.Tag())
		if ri > rj {
			return false
		}
		if ri == rj && ClauseString(lines[i-1].Clause) > ClauseString(lines[i].Clause) {
			return false
		}
	}
	return true
}

func clauseRank(rank map[string]int, tag string) int {
	if r, ok := rank[tag]; ok {
		return r
	}
	return len(rank)
}

func makeRank(order []string) map[string]int {
	m := make(map[string]int, len(order))
	for i, tag := range order {
		m[tag] = i
	}
	return m
}

// Serialization precedence of entity clause tags, one table per frame
// kind.
var (
	termRank = makeRank([]string{
		"is_anonymous", "name", "namespace", "alt_id", "def", "comment",
		"subset", "synonym", "xref", "builtin", "property_value", "is_a",
		"intersection_of", "union_of", "equivalent_to", "disjoint_from",
		"relationship", "created_by", "creation_date", "is_obsolete",
		"replaced_by", "consider",
	})
	typedefRank = makeRank([]string{
		"is_anonymous", "name", "namespace", "alt_id", "def", "comment",
		"subset", "synonym", "xref", "property_value", "domain", "range",
		"builtin", "holds_over_chain", "is_anti_symmetric", "is_cyclic",
		"is_reflexive", "is_symmetric", "is_asymmetric", "is_transitive",
		"is_functional", "is_inverse_functional", "is_a", "intersection_of",
		"union_of", "equivalent_to", "disjoint_from", "inverse_of",
		"transitive_over", "equivalent_to_chain", "disjoint_over",
		"relationship", "is_obsolete", "replaced_by", "consider",
		"created_by", "creation_date", "expand_assertion_to",
		"expand_expression_to", "is_metadata_tag", "is_class_level",
	})
	instanceRank = makeRank([]string{
		"is_anonymous", "name", "namespace", "alt_id", "def", "comment",
		"subset", "synonym", "xref", "property_value", "instance_of",
		"relationship", "created_by", "creation_date", "is_obsolete",
		"replaced_by", "consider",
	})
)
