// Package obo reads and writes ontologies in the OBO 1.4 flat-file
// format.
//
// The subpackages do the work: token splits input into frames and
// tagged lines, parse builds the typed syntax tree from package ast,
// and encode serializes it back. This package ties them together for
// the common whole-document cases.
package obo

import (
	"io"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/encode"
	"github.com/obolibrary/obo-format/go-obo/parse"
)

// Document is the root of a parsed ontology.
type Document = ast.Document

// SyntaxError reports a malformed input with its line and column.
type SyntaxError = ast.SyntaxError

// CardinalityError reports a clause count that violates the tag's
// cardinality.
type CardinalityError = ast.CardinalityError

// Option configures parsing. See parse.Workers, parse.Ordered and
// parse.WithCache.
type Option = parse.Option

// ParseString parses a whole document held in memory.
func ParseString(s string, opts ...Option) (*Document, error) {
	return parse.String(s, opts...)
}

// ParseReader parses a whole document from r, preserving input order.
func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	return parse.Reader(r, opts...)
}

// ParseFile parses the named file. Files ending in .gz are
// transparently decompressed.
func ParseFile(path string, opts ...Option) (*Document, error) {
	return parse.File(path, opts...)
}

// NewFrameReader returns a streaming frame iterator over r for inputs
// too large to hold as a Document.
func NewFrameReader(r io.Reader, opts ...Option) *parse.FrameReader {
	return parse.NewFrameReader(r, opts...)
}

// Write serializes doc to w.
func Write(doc *Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc, w, opts...)
}

// DocumentString serializes doc to a string.
func DocumentString(doc *Document, opts ...encode.EncodeOption) string {
	return encode.MustString(doc, opts...)
}
