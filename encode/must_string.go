package encode

import (
	"bytes"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// MustString renders doc to a string and panics on error. Encoding to
// a bytes.Buffer cannot fail, so any panic indicates a bug.
func MustString(doc *ast.Document, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(doc, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
