package ast

import (
	"sort"
	"strings"

	"github.com/obolibrary/obo-format/go-obo/intern"
)

// IDCompactor rewrites URL identifiers into prefixed form using a
// caller-supplied map of identifier prefix to URL expansion pattern,
// such as "GO" -> "http://purl.obolibrary.org/obo/GO_". Identifiers
// that match no pattern pass through unchanged. IDDecompactor is its
// inverse. Neither is applied implicitly during parsing.
type IDCompactor struct {
	patterns map[string]string
	ordered  []string
	cache    *intern.Cache
}

// NewIDCompactor builds a compactor over a prefix-to-pattern map. The
// map is copied. Longer patterns win when one pattern is a prefix of
// another, so the most specific expansion is always preferred.
func NewIDCompactor(patterns map[string]string, c *intern.Cache) *IDCompactor {
	cp := make(map[string]string, len(patterns))
	ordered := make([]string, 0, len(patterns))
	for prefix, pattern := range patterns {
		cp[prefix] = pattern
		ordered = append(ordered, prefix)
	}
	sort.Slice(ordered, func(i, j int) bool {
		pi, pj := cp[ordered[i]], cp[ordered[j]]
		if len(pi) != len(pj) {
			return len(pi) > len(pj)
		}
		return pi < pj
	})
	return &IDCompactor{patterns: cp, ordered: ordered, cache: c}
}

// Compact converts a URL identifier whose text matches a known
// expansion pattern into the equivalent prefixed identifier.
func (c *IDCompactor) Compact(id Ident) Ident {
	u, ok := id.(Url)
	if !ok {
		return id
	}
	for _, prefix := range c.ordered {
		pattern := c.patterns[prefix]
		if rest, ok := strings.CutPrefix(string(u), pattern); ok && rest != "" {
			return PrefixedIdent{
				Prefix: internOne(prefix, c.cache),
				Local:  internOne(rest, c.cache),
			}
		}
	}
	return id
}

// IDDecompactor rewrites prefixed identifiers into URL form using the
// same prefix-to-pattern map an IDCompactor consumes.
type IDDecompactor struct {
	patterns map[string]string
	cache    *intern.Cache
}

func NewIDDecompactor(patterns map[string]string, c *intern.Cache) *IDDecompactor {
	cp := make(map[string]string, len(patterns))
	for prefix, pattern := range patterns {
		cp[prefix] = pattern
	}
	return &IDDecompactor{patterns: cp, cache: c}
}

// Decompact converts a prefixed identifier with a known prefix into
// the equivalent URL identifier.
func (d *IDDecompactor) Decompact(id Ident) Ident {
	p, ok := id.(PrefixedIdent)
	if !ok {
		return id
	}
	pattern, ok := d.patterns[p.Prefix]
	if !ok {
		return id
	}
	return Url(internOne(pattern+p.Local, d.cache))
}
