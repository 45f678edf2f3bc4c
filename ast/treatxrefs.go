package ast

// TreatXrefs processes the header's treat-xrefs-as-* macro directives,
// rewriting entity frames whose xrefs match a directive's prefix. The
// implicit equivalences for the BFO and RO idspaces are applied even
// when the header does not declare them. Translated clauses already
// present in a frame are not added twice, so reapplying the expansion
// leaves the document unchanged. Neither the source xrefs nor the
// header directives are removed.
func (d *Document) TreatXrefs() {
	d.treatAsEquivalent("BFO")
	d.treatAsEquivalent("RO")

	for _, ln := range d.Header.Clauses {
		switch c := ln.Clause.(type) {
		case TreatXrefsAsEquivalentClause:
			d.treatAsEquivalent(c.Prefix)
		case TreatXrefsAsIsAClause:
			d.treatAsIsA(c.Prefix)
		case TreatXrefsAsHasSubclassClause:
			d.treatAsHasSubclass(c.Prefix)
		case TreatXrefsAsGenusDifferentiaClause:
			d.treatAsGenusDifferentia(c.Prefix, c.Relation, c.Class)
		case TreatXrefsAsReverseGenusDifferentiaClause:
			d.treatAsReverseGenusDifferentia(c.Prefix, c.Relation, c.Class)
		case TreatXrefsAsRelationshipClause:
			d.treatAsRelationship(c.Prefix, c.Relation)
		}
	}
}

// xrefTargets returns the identifiers of xref clauses whose id is
// prefixed with the given idspace.
func xrefTargets[T Clause](lines []Line[T], prefix string) []Ident {
	var ids []Ident
	for i := range lines {
		c, ok := Clause(lines[i].Clause).(XrefClause)
		if !ok {
			continue
		}
		if p, ok := c.Xref.ID.(PrefixedIdent); ok && p.Prefix == prefix {
			ids = append(ids, c.Xref.ID)
		}
	}
	return ids
}

func containsClause[T Clause](lines []Line[T], c T) bool {
	want := (Line[T]{Clause: c}).String()
	for i := range lines {
		if lines[i].String() == want {
			return true
		}
	}
	return false
}

func pushUnique[T Clause](lines []Line[T], cs []T) []Line[T] {
	for _, c := range cs {
		if !containsClause(lines, c) {
			lines = append(lines, Line[T]{Clause: c})
		}
	}
	return lines
}

func (d *Document) treatAsEquivalent(prefix string) {
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			var add []TermClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, EquivalentToClause{ID: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		case *TypedefFrame:
			var add []TypedefClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, EquivalentToClause{ID: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		}
	}
}

func (d *Document) treatAsIsA(prefix string) {
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			var add []TermClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, IsAClause{ID: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		case *TypedefFrame:
			var add []TypedefClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, IsAClause{ID: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		}
	}
}

// treatAsHasSubclass inverts the direction: a frame whose xref
// matches declares itself the superclass, and the frame the xref
// points at receives the is_a clause.
func (d *Document) treatAsHasSubclass(prefix string) {
	byID := make(map[Ident]EntityFrame, len(d.Entities))
	for _, e := range d.Entities {
		byID[e.ID()] = e
	}
	for _, e := range d.Entities {
		var targets []Ident
		switch f := e.(type) {
		case *TermFrame:
			targets = xrefTargets(f.Clauses, prefix)
		case *TypedefFrame:
			targets = xrefTargets(f.Clauses, prefix)
		}
		for _, sub := range targets {
			switch f := byID[sub].(type) {
			case *TermFrame:
				f.Clauses = pushUnique(f.Clauses, []TermClause{IsAClause{ID: e.ID()}})
			case *TypedefFrame:
				f.Clauses = pushUnique(f.Clauses, []TypedefClause{IsAClause{ID: e.ID()}})
			}
		}
	}
}

func (d *Document) treatAsGenusDifferentia(prefix string, rel, class Ident) {
	for _, e := range d.Entities {
		f, ok := e.(*TermFrame)
		if !ok {
			continue
		}
		if hasIntersectionOf(f.Clauses) {
			continue
		}
		var add []TermClause
		for _, id := range xrefTargets(f.Clauses, prefix) {
			add = append(add,
				IntersectionOfClause{ID: id},
				IntersectionOfClause{Relation: rel, ID: class},
			)
		}
		f.Clauses = pushUnique(f.Clauses, add)
	}
}

func (d *Document) treatAsReverseGenusDifferentia(prefix string, rel, class Ident) {
	byID := make(map[Ident]EntityFrame, len(d.Entities))
	for _, e := range d.Entities {
		byID[e.ID()] = e
	}
	for _, e := range d.Entities {
		f, ok := e.(*TermFrame)
		if !ok {
			continue
		}
		for _, target := range xrefTargets(f.Clauses, prefix) {
			tf, ok := byID[target].(*TermFrame)
			if !ok {
				continue
			}
			tf.Clauses = pushUnique(tf.Clauses, []TermClause{
				IntersectionOfClause{ID: f.Ident},
				IntersectionOfClause{Relation: rel, ID: class},
			})
		}
	}
}

func (d *Document) treatAsRelationship(prefix string, rel Ident) {
	for _, e := range d.Entities {
		switch f := e.(type) {
		case *TermFrame:
			var add []TermClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, RelationshipClause{Relation: rel, Target: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		case *TypedefFrame:
			var add []TypedefClause
			for _, id := range xrefTargets(f.Clauses, prefix) {
				add = append(add, RelationshipClause{Relation: rel, Target: id})
			}
			f.Clauses = pushUnique(f.Clauses, add)
		}
	}
}

func hasIntersectionOf[T Clause](lines []Line[T]) bool {
	for i := range lines {
		if _, ok := Clause(lines[i].Clause).(IntersectionOfClause); ok {
			return true
		}
	}
	return false
}
