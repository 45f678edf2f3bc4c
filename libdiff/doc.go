// Package libdiff computes structural diffs between two ontology
// documents.
//
//	d := libdiff.Diff(from, to)
//	if !d.IsEmpty() {
//	    fmt.Print(d)
//	}
//
// Frames are matched by identifier, so reordering frames is not a
// change. Within a matched frame the clause lines are aligned with a
// sequence diff, so the report shows only inserted and deleted lines.
package libdiff
