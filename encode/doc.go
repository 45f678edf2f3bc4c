// Package encode serializes ontology documents back to the flat-file
// form.
//
// Output is deterministic: values are written in canonical escaped
// form, one clause per line, frames separated by a single blank line,
// and a document parsed from Encode output is structurally equal to
// the one passed in. Canonical(true) additionally orders header
// clauses, frames and frame clauses so that two structurally equal
// documents serialize to identical bytes.
package encode
