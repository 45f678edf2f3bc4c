// Package ast is the typed document model for OBO 1.4: identifiers,
// clause variants with declared cardinalities, the four frame kinds,
// and the whole-document semantic operations (canonical sorting,
// namespace assignment, OWL axiom merging, xref macro expansion).
// Nodes are plain values built once by the parse package; semantic
// operations rewrite owned slices in place.
package ast

import "sort"

// Document is a whole OBO document: the header frame followed by
// entity frames in their original order until canonicalized.
type Document struct {
	Header   HeaderFrame
	Entities []EntityFrame
}

// IsEmpty reports whether the document has neither header clauses nor
// entity frames.
func (d *Document) IsEmpty() bool {
	return d.Header.IsEmpty() && len(d.Entities) == 0
}

// Validate checks the header and every entity frame against the
// cardinality tables, returning the first violation.
func (d *Document) Validate() error {
	if err := d.Header.Validate(); err != nil {
		return err
	}
	for _, e := range d.Entities {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sort puts the document in canonical serialization order: header
// clauses by tag precedence, frame clauses by their kind's
// precedence, and entity frames by kind then identifier, with
// prefixed identifiers before unprefixed before URLs.
func (d *Document) Sort() {
	d.Header.Sort()
	for _, e := range d.Entities {
		e.SortClauses()
	}
	sort.SliceStable(d.Entities, func(i, j int) bool {
		return compareEntities(d.Entities[i], d.Entities[j]) < 0
	})
}

// IsSorted reports whether Sort would leave the document unchanged.
func (d *Document) IsSorted() bool {
	if !d.Header.IsSorted() {
		return false
	}
	for _, e := range d.Entities {
		if !entityClausesSorted(e) {
			return false
		}
	}
	for i := 1; i < len(d.Entities); i++ {
		if compareEntities(d.Entities[i-1], d.Entities[i]) > 0 {
			return false
		}
	}
	return true
}

func compareEntities(a, b EntityFrame) int {
	if ra, rb := a.kindRank(), b.kindRank(); ra != rb {
		return ra - rb
	}
	return CompareIdent(a.ID(), b.ID())
}

func entityClausesSorted(e EntityFrame) bool {
	switch f := e.(type) {
	case *TermFrame:
		return clausesSorted(f.Clauses, termRank)
	case *TypedefFrame:
		return clausesSorted(f.Clauses, typedefRank)
	case *InstanceFrame:
		return clausesSorted(f.Clauses, instanceRank)
	}
	return true
}

// AssignNamespaces adds a namespace clause holding the header's
// default namespace to every entity frame lacking one. Frames with
// their own namespace are left alone; the only error is a missing or
// duplicated default-namespace in the header.
func (d *Document) AssignNamespaces() error {
	ns, err := d.Header.DefaultNamespace()
	if err != nil {
		return err
	}
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			if !hasNamespace(f.Clauses) {
				f.Push(NamespaceClause{Namespace: ns})
			}
		case *TypedefFrame:
			if !hasNamespace(f.Clauses) {
				f.Push(NamespaceClause{Namespace: ns})
			}
		case *InstanceFrame:
			if !hasNamespace(f.Clauses) {
				f.Push(NamespaceClause{Namespace: ns})
			}
		}
	}
	return nil
}

func hasNamespace[T Clause](lines []Line[T]) bool {
	for i := range lines {
		if _, ok := Clause(lines[i].Clause).(NamespaceClause); ok {
			return true
		}
	}
	return false
}

// MergeOWLAxioms merges all owl-axioms header clauses into one.
func (d *Document) MergeOWLAxioms() {
	d.Header.MergeOWLAxioms()
}

// IsFullyLabeled reports whether every entity frame carries exactly
// one name clause.
func (d *Document) IsFullyLabeled() bool {
	for _, e := range d.Entities {
		if _, err := e.Name(); err != nil {
			return false
		}
	}
	return true
}
