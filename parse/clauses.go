package parse

import (
	"fmt"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/intern"
	"github.com/obolibrary/obo-format/go-obo/token"
)

// Clause builders. Each builder consumes the value region of one
// tokenized line and produces the typed clause for its frame kind.
// Construction is local: cardinality is checked at the frame level,
// never here. A builder must digest its whole value region; leftover
// input after the last expected part is a syntax error.

func buildHeaderClause(ln token.Line, cache *intern.Cache) (ast.HeaderClause, error) {
	c := newCursor(ln)
	cl, err := headerClause(c, ln, cache)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return cl, nil
}

func headerClause(c *cursor, ln token.Line, cache *intern.Cache) (ast.HeaderClause, error) {
	switch ln.Tag {
	case "format-version":
		return ast.FormatVersionClause{Version: c.text()}, nil
	case "data-version":
		return ast.DataVersionClause{Version: c.text()}, nil
	case "date":
		d, err := ast.ParseNaiveDateTime(c.text())
		if err != nil {
			return nil, syntaxErr(ln.ValuePos, err.Error())
		}
		return ast.DateClause{Date: d}, nil
	case "saved-by":
		return ast.SavedByClause{Name: c.text()}, nil
	case "auto-generated-by":
		return ast.AutoGeneratedByClause{Name: c.text()}, nil
	case "import":
		return ast.ImportClause{Reference: c.text()}, nil
	case "subsetdef":
		subset, err := c.ident(cache, "subset identifier")
		if err != nil {
			return nil, err
		}
		desc, err := c.quoted("subset description")
		if err != nil {
			return nil, err
		}
		return ast.SubsetdefClause{Subset: subset, Description: desc}, err
	case "synonymtypedef":
		ty, err := c.ident(cache, "synonym type identifier")
		if err != nil {
			return nil, err
		}
		desc, err := c.quoted("synonym type description")
		if err != nil {
			return nil, err
		}
		cl := ast.SynonymTypedefClause{Type: ty, Description: desc}
		if !c.atEnd() {
			w, err := c.word("synonym scope")
			if err != nil {
				return nil, err
			}
			scope, ok := ast.ParseSynonymScope(string(w))
			if !ok {
				return nil, syntaxErr(c.pos(), fmt.Sprintf("expected synonym scope, found %q", w))
			}
			cl.Scope = &scope
		}
		return cl, nil
	case "default-namespace":
		ns, err := c.ident(cache, "namespace identifier")
		if err != nil {
			return nil, err
		}
		return ast.DefaultNamespaceClause{Namespace: ns}, nil
	case "namespace-id-rule":
		return ast.NamespaceIDRuleClause{Rule: c.text()}, nil
	case "idspace":
		prefix, err := c.word("idspace prefix")
		if err != nil {
			return nil, err
		}
		urlWord, err := c.word("idspace URL")
		if err != nil {
			return nil, err
		}
		cl := ast.IdspaceClause{
			Prefix: ast.Unescape(prefix),
			URL:    ast.Url(ast.Unescape(urlWord)),
		}
		if !c.atEnd() {
			if cl.Description, err = c.quoted("idspace description"); err != nil {
				return nil, err
			}
		}
		return cl, nil
	case "treat-xrefs-as-equivalent":
		prefix, err := c.word("idspace prefix")
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsEquivalentClause{Prefix: ast.Unescape(prefix)}, nil
	case "treat-xrefs-as-genus-differentia":
		prefix, rel, class, err := prefixRelClass(c, cache)
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsGenusDifferentiaClause{Prefix: prefix, Relation: rel, Class: class}, nil
	case "treat-xrefs-as-reverse-genus-differentia":
		prefix, rel, class, err := prefixRelClass(c, cache)
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsReverseGenusDifferentiaClause{Prefix: prefix, Relation: rel, Class: class}, nil
	case "treat-xrefs-as-relationship":
		prefix, err := c.word("idspace prefix")
		if err != nil {
			return nil, err
		}
		rel, err := c.ident(cache, "relation identifier")
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsRelationshipClause{Prefix: ast.Unescape(prefix), Relation: rel}, nil
	case "treat-xrefs-as-is_a":
		prefix, err := c.word("idspace prefix")
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsIsAClause{Prefix: ast.Unescape(prefix)}, nil
	case "treat-xrefs-as-has-subclass":
		prefix, err := c.word("idspace prefix")
		if err != nil {
			return nil, err
		}
		return ast.TreatXrefsAsHasSubclassClause{Prefix: ast.Unescape(prefix)}, nil
	case "property_value":
		pv, err := c.propertyValue(cache)
		if err != nil {
			return nil, err
		}
		return ast.PropertyValueClause{Value: pv}, nil
	case "remark":
		return ast.RemarkClause{Remark: c.text()}, nil
	case "ontology":
		return ast.OntologyClause{Name: c.text()}, nil
	case "owl-axioms":
		return ast.OwlAxiomsClause{Axioms: c.text()}, nil
	}
	return ast.UnreservedClause{TagName: ast.Unescape([]byte(ln.Tag)), Value: c.text()}, nil
}

func prefixRelClass(c *cursor, cache *intern.Cache) (string, ast.Ident, ast.Ident, error) {
	prefix, err := c.word("idspace prefix")
	if err != nil {
		return "", nil, nil, err
	}
	rel, err := c.ident(cache, "relation identifier")
	if err != nil {
		return "", nil, nil, err
	}
	class, err := c.ident(cache, "class identifier")
	if err != nil {
		return "", nil, nil, err
	}
	return ast.Unescape(prefix), rel, class, nil
}

func buildTermClause(ln token.Line, cache *intern.Cache) (ast.TermClause, error) {
	c := newCursor(ln)
	cl, err := termClause(c, ln, cache)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return cl, nil
}

func termClause(c *cursor, ln token.Line, cache *intern.Cache) (ast.TermClause, error) {
	switch ln.Tag {
	case "is_anonymous":
		v, err := c.boolean()
		return ast.IsAnonymousClause{Value: v}, err
	case "name":
		return ast.NameClause{Name: c.text()}, nil
	case "namespace":
		ns, err := c.ident(cache, "namespace identifier")
		return ast.NamespaceClause{Namespace: ns}, err
	case "alt_id":
		id, err := c.ident(cache, "identifier")
		return ast.AltIDClause{ID: id}, err
	case "def":
		d, err := c.definition(cache)
		return ast.DefClause{Definition: d}, err
	case "comment":
		return ast.CommentClause{Comment: c.text()}, nil
	case "subset":
		id, err := c.ident(cache, "subset identifier")
		return ast.SubsetClause{Subset: id}, err
	case "synonym":
		s, err := c.synonym(cache)
		return ast.SynonymClause{Synonym: s}, err
	case "xref":
		x, err := c.xref(cache)
		return ast.XrefClause{Xref: x}, err
	case "builtin":
		v, err := c.boolean()
		return ast.BuiltinClause{Value: v}, err
	case "property_value":
		pv, err := c.propertyValue(cache)
		if err != nil {
			return nil, err
		}
		return ast.PropertyValueClause{Value: pv}, nil
	case "is_a":
		id, err := c.ident(cache, "class identifier")
		return ast.IsAClause{ID: id}, err
	case "intersection_of":
		first, err := c.ident(cache, "class or relation identifier")
		if err != nil {
			return nil, err
		}
		if c.atEnd() {
			return ast.IntersectionOfClause{ID: first}, nil
		}
		class, err := c.ident(cache, "class identifier")
		return ast.IntersectionOfClause{Relation: first, ID: class}, err
	case "union_of":
		id, err := c.ident(cache, "class identifier")
		return ast.UnionOfClause{ID: id}, err
	case "equivalent_to":
		id, err := c.ident(cache, "class identifier")
		return ast.EquivalentToClause{ID: id}, err
	case "disjoint_from":
		id, err := c.ident(cache, "class identifier")
		return ast.DisjointFromClause{ID: id}, err
	case "relationship":
		rel, err := c.ident(cache, "relation identifier")
		if err != nil {
			return nil, err
		}
		target, err := c.ident(cache, "class identifier")
		return ast.RelationshipClause{Relation: rel, Target: target}, err
	case "created_by":
		return ast.CreatedByClause{Name: c.text()}, nil
	case "creation_date":
		d, err := ast.ParseCreationDate(c.text())
		if err != nil {
			return nil, syntaxErr(ln.ValuePos, err.Error())
		}
		return ast.CreationDateClause{Date: d}, nil
	case "is_obsolete":
		v, err := c.boolean()
		return ast.IsObsoleteClause{Value: v}, err
	case "replaced_by":
		id, err := c.ident(cache, "class identifier")
		return ast.ReplacedByClause{ID: id}, err
	case "consider":
		id, err := c.ident(cache, "identifier")
		return ast.ConsiderClause{ID: id}, err
	}
	return nil, syntaxErr(ln.TagPos, fmt.Sprintf("unexpected term clause tag %q", ln.Tag))
}

func buildTypedefClause(ln token.Line, cache *intern.Cache) (ast.TypedefClause, error) {
	c := newCursor(ln)
	cl, err := typedefClause(c, ln, cache)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return cl, nil
}

func typedefClause(c *cursor, ln token.Line, cache *intern.Cache) (ast.TypedefClause, error) {
	switch ln.Tag {
	case "is_anonymous":
		v, err := c.boolean()
		return ast.IsAnonymousClause{Value: v}, err
	case "name":
		return ast.NameClause{Name: c.text()}, nil
	case "namespace":
		ns, err := c.ident(cache, "namespace identifier")
		return ast.NamespaceClause{Namespace: ns}, err
	case "alt_id":
		id, err := c.ident(cache, "identifier")
		return ast.AltIDClause{ID: id}, err
	case "def":
		d, err := c.definition(cache)
		return ast.DefClause{Definition: d}, err
	case "comment":
		return ast.CommentClause{Comment: c.text()}, nil
	case "subset":
		id, err := c.ident(cache, "subset identifier")
		return ast.SubsetClause{Subset: id}, err
	case "synonym":
		s, err := c.synonym(cache)
		return ast.SynonymClause{Synonym: s}, err
	case "xref":
		x, err := c.xref(cache)
		return ast.XrefClause{Xref: x}, err
	case "property_value":
		pv, err := c.propertyValue(cache)
		if err != nil {
			return nil, err
		}
		return ast.PropertyValueClause{Value: pv}, nil
	case "domain":
		id, err := c.ident(cache, "class identifier")
		return ast.DomainClause{ID: id}, err
	case "range":
		id, err := c.ident(cache, "class identifier")
		return ast.RangeClause{ID: id}, err
	case "builtin":
		v, err := c.boolean()
		return ast.BuiltinClause{Value: v}, err
	case "holds_over_chain":
		first, second, err := relPair(c, cache)
		return ast.HoldsOverChainClause{First: first, Second: second}, err
	case "is_anti_symmetric":
		v, err := c.boolean()
		return ast.IsAntiSymmetricClause{Value: v}, err
	case "is_cyclic":
		v, err := c.boolean()
		return ast.IsCyclicClause{Value: v}, err
	case "is_reflexive":
		v, err := c.boolean()
		return ast.IsReflexiveClause{Value: v}, err
	case "is_symmetric":
		v, err := c.boolean()
		return ast.IsSymmetricClause{Value: v}, err
	case "is_asymmetric":
		v, err := c.boolean()
		return ast.IsAsymmetricClause{Value: v}, err
	case "is_transitive":
		v, err := c.boolean()
		return ast.IsTransitiveClause{Value: v}, err
	case "is_functional":
		v, err := c.boolean()
		return ast.IsFunctionalClause{Value: v}, err
	case "is_inverse_functional":
		v, err := c.boolean()
		return ast.IsInverseFunctionalClause{Value: v}, err
	case "is_a":
		id, err := c.ident(cache, "relation identifier")
		return ast.IsAClause{ID: id}, err
	case "intersection_of":
		id, err := c.ident(cache, "relation identifier")
		return ast.IntersectionOfClause{ID: id}, err
	case "union_of":
		id, err := c.ident(cache, "relation identifier")
		return ast.UnionOfClause{ID: id}, err
	case "equivalent_to":
		id, err := c.ident(cache, "relation identifier")
		return ast.EquivalentToClause{ID: id}, err
	case "disjoint_from":
		id, err := c.ident(cache, "relation identifier")
		return ast.DisjointFromClause{ID: id}, err
	case "inverse_of":
		id, err := c.ident(cache, "relation identifier")
		return ast.InverseOfClause{ID: id}, err
	case "transitive_over":
		id, err := c.ident(cache, "relation identifier")
		return ast.TransitiveOverClause{ID: id}, err
	case "equivalent_to_chain":
		first, second, err := relPair(c, cache)
		return ast.EquivalentToChainClause{First: first, Second: second}, err
	case "disjoint_over":
		id, err := c.ident(cache, "relation identifier")
		return ast.DisjointOverClause{ID: id}, err
	case "relationship":
		rel, err := c.ident(cache, "relation identifier")
		if err != nil {
			return nil, err
		}
		target, err := c.ident(cache, "relation identifier")
		return ast.RelationshipClause{Relation: rel, Target: target}, err
	case "is_obsolete":
		v, err := c.boolean()
		return ast.IsObsoleteClause{Value: v}, err
	case "replaced_by":
		id, err := c.ident(cache, "relation identifier")
		return ast.ReplacedByClause{ID: id}, err
	case "consider":
		id, err := c.ident(cache, "identifier")
		return ast.ConsiderClause{ID: id}, err
	case "created_by":
		return ast.CreatedByClause{Name: c.text()}, nil
	case "creation_date":
		d, err := ast.ParseCreationDate(c.text())
		if err != nil {
			return nil, syntaxErr(ln.ValuePos, err.Error())
		}
		return ast.CreationDateClause{Date: d}, nil
	case "expand_assertion_to":
		tmpl, err := c.quoted("assertion template")
		if err != nil {
			return nil, err
		}
		xrefs, err := c.xrefList(cache)
		return ast.ExpandAssertionToClause{Template: tmpl, Xrefs: xrefs}, err
	case "expand_expression_to":
		tmpl, err := c.quoted("expression template")
		if err != nil {
			return nil, err
		}
		xrefs, err := c.xrefList(cache)
		return ast.ExpandExpressionToClause{Template: tmpl, Xrefs: xrefs}, err
	case "is_metadata_tag":
		v, err := c.boolean()
		return ast.IsMetadataTagClause{Value: v}, err
	case "is_class_level":
		v, err := c.boolean()
		return ast.IsClassLevelClause{Value: v}, err
	}
	return nil, syntaxErr(ln.TagPos, fmt.Sprintf("unexpected typedef clause tag %q", ln.Tag))
}

func relPair(c *cursor, cache *intern.Cache) (ast.Ident, ast.Ident, error) {
	first, err := c.ident(cache, "relation identifier")
	if err != nil {
		return nil, nil, err
	}
	second, err := c.ident(cache, "relation identifier")
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

func buildInstanceClause(ln token.Line, cache *intern.Cache) (ast.InstanceClause, error) {
	c := newCursor(ln)
	cl, err := instanceClause(c, ln, cache)
	if err != nil {
		return nil, err
	}
	if err := c.end(); err != nil {
		return nil, err
	}
	return cl, nil
}

func instanceClause(c *cursor, ln token.Line, cache *intern.Cache) (ast.InstanceClause, error) {
	switch ln.Tag {
	case "is_anonymous":
		v, err := c.boolean()
		return ast.IsAnonymousClause{Value: v}, err
	case "name":
		return ast.NameClause{Name: c.text()}, nil
	case "namespace":
		ns, err := c.ident(cache, "namespace identifier")
		return ast.NamespaceClause{Namespace: ns}, err
	case "alt_id":
		id, err := c.ident(cache, "identifier")
		return ast.AltIDClause{ID: id}, err
	case "def":
		d, err := c.definition(cache)
		return ast.DefClause{Definition: d}, err
	case "comment":
		return ast.CommentClause{Comment: c.text()}, nil
	case "subset":
		id, err := c.ident(cache, "subset identifier")
		return ast.SubsetClause{Subset: id}, err
	case "synonym":
		s, err := c.synonym(cache)
		return ast.SynonymClause{Synonym: s}, err
	case "xref":
		x, err := c.xref(cache)
		return ast.XrefClause{Xref: x}, err
	case "property_value":
		pv, err := c.propertyValue(cache)
		if err != nil {
			return nil, err
		}
		return ast.PropertyValueClause{Value: pv}, nil
	case "instance_of":
		id, err := c.ident(cache, "class identifier")
		return ast.InstanceOfClause{ID: id}, err
	case "relationship":
		rel, err := c.ident(cache, "relation identifier")
		if err != nil {
			return nil, err
		}
		target, err := c.ident(cache, "identifier")
		return ast.RelationshipClause{Relation: rel, Target: target}, err
	case "created_by":
		return ast.CreatedByClause{Name: c.text()}, nil
	case "creation_date":
		d, err := ast.ParseCreationDate(c.text())
		if err != nil {
			return nil, syntaxErr(ln.ValuePos, err.Error())
		}
		return ast.CreationDateClause{Date: d}, nil
	case "is_obsolete":
		v, err := c.boolean()
		return ast.IsObsoleteClause{Value: v}, err
	case "replaced_by":
		id, err := c.ident(cache, "instance identifier")
		return ast.ReplacedByClause{ID: id}, err
	case "consider":
		id, err := c.ident(cache, "identifier")
		return ast.ConsiderClause{ID: id}, err
	}
	return nil, syntaxErr(ln.TagPos, fmt.Sprintf("unexpected instance clause tag %q", ln.Tag))
}
