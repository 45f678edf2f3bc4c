// Package parse builds the typed OBO document model from tokenized
// frames, either whole-document or streaming. Frame parsing can fan
// out across a worker pool; identifier interning goes through one
// cache per parse session.
package parse

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// Reader parses a whole document from r. Frames are parsed on the
// configured worker pool but assembled in input order.
func Reader(r io.Reader, opts ...Option) (*ast.Document, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Ordered(true))
	fr := NewFrameReader(r, all...)
	defer fr.Close()

	doc := &ast.Document{}
	for {
		frame, err := fr.Next()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, err
		}
		switch {
		case frame.Header != nil:
			doc.Header = *frame.Header
		case frame.Entity != nil:
			doc.Entities = append(doc.Entities, frame.Entity)
		}
	}
}

// String parses a whole document from a string.
func String(s string, opts ...Option) (*ast.Document, error) {
	return Reader(strings.NewReader(s), opts...)
}

// Bytes parses a whole document from a byte slice.
func Bytes(d []byte, opts ...Option) (*ast.Document, error) {
	return Reader(bytes.NewReader(d), opts...)
}

// File parses a whole document from a file on disk. A .gz suffix
// selects transparent gzip decompression, as published ontology
// releases are commonly compressed.
func File(path string, opts ...Option) (*ast.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return Reader(r, opts...)
}
