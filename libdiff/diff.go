package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/obolibrary/obo-format/go-obo/ast"
)

// FrameOp classifies how a frame differs between the two documents.
type FrameOp int

const (
	FrameAdded FrameOp = iota
	FrameRemoved
	FrameChanged
)

func (op FrameOp) String() string {
	switch op {
	case FrameAdded:
		return "added"
	case FrameRemoved:
		return "removed"
	default:
		return "changed"
	}
}

// LineDiff is one inserted or deleted clause line within a changed
// frame. Text is the canonical rendering of the line.
type LineDiff struct {
	Insert bool
	Text   string
}

// FrameDiff reports one differing frame.
type FrameDiff struct {
	Op    FrameOp
	ID    ast.Ident
	Kind  string
	Lines []LineDiff
}

// DocumentDiff is the full comparison result.
type DocumentDiff struct {
	Header []LineDiff
	Frames []FrameDiff
}

func (d *DocumentDiff) IsEmpty() bool {
	return len(d.Header) == 0 && len(d.Frames) == 0
}

// Diff compares two documents. Removed and changed frames appear in
// from's order, added frames in to's order.
func Diff(from, to *ast.Document) *DocumentDiff {
	d := &DocumentDiff{
		Header: diffLines(headerLines(&from.Header), headerLines(&to.Header)),
	}
	toByID := make(map[ast.Ident]ast.EntityFrame, len(to.Entities))
	for _, e := range to.Entities {
		toByID[e.ID()] = e
	}
	fromIDs := make(map[ast.Ident]bool, len(from.Entities))
	for _, e := range from.Entities {
		fromIDs[e.ID()] = true
		after, ok := toByID[e.ID()]
		if !ok {
			d.Frames = append(d.Frames, FrameDiff{
				Op:    FrameRemoved,
				ID:    e.ID(),
				Kind:  frameKind(e),
				Lines: deleteAll(entityLines(e)),
			})
			continue
		}
		lines := diffLines(entityLines(e), entityLines(after))
		if len(lines) > 0 {
			d.Frames = append(d.Frames, FrameDiff{
				Op:    FrameChanged,
				ID:    e.ID(),
				Kind:  frameKind(after),
				Lines: lines,
			})
		}
	}
	for _, e := range to.Entities {
		if !fromIDs[e.ID()] {
			d.Frames = append(d.Frames, FrameDiff{
				Op:    FrameAdded,
				ID:    e.ID(),
				Kind:  frameKind(e),
				Lines: insertAll(entityLines(e)),
			})
		}
	}
	return d
}

// diffLines aligns two rendered line sequences. Each distinct line
// maps to one rune so the character differ works on whole lines.
func diffLines(from, to []string) []LineDiff {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []LineDiff
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res = append(res, LineDiff{Text: runeMap[r]})
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res = append(res, LineDiff{Insert: true, Text: runeMap[r]})
			}
		}
	}
	return res
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

func headerLines(h *ast.HeaderFrame) []string {
	lines := make([]string, len(h.Clauses))
	for i, ln := range h.Clauses {
		lines[i] = ln.String()
	}
	return lines
}

func entityLines(e ast.EntityFrame) []string {
	switch f := e.(type) {
	case *ast.TermFrame:
		return renderLines(f.Clauses)
	case *ast.TypedefFrame:
		return renderLines(f.Clauses)
	case *ast.InstanceFrame:
		return renderLines(f.Clauses)
	}
	return nil
}

func renderLines[T ast.Clause](clauses []ast.Line[T]) []string {
	lines := make([]string, len(clauses))
	for i, ln := range clauses {
		lines[i] = ln.String()
	}
	return lines
}

func frameKind(e ast.EntityFrame) string {
	switch e.(type) {
	case *ast.TypedefFrame:
		return "Typedef"
	case *ast.InstanceFrame:
		return "Instance"
	default:
		return "Term"
	}
}

func deleteAll(lines []string) []LineDiff {
	res := make([]LineDiff, len(lines))
	for i, ln := range lines {
		res[i] = LineDiff{Text: ln}
	}
	return res
}

func insertAll(lines []string) []LineDiff {
	res := make([]LineDiff, len(lines))
	for i, ln := range lines {
		res[i] = LineDiff{Insert: true, Text: ln}
	}
	return res
}

// String renders the diff in a +/- line format grouped by frame.
func (d *DocumentDiff) String() string {
	var b strings.Builder
	if len(d.Header) > 0 {
		b.WriteString("header\n")
		writeLines(&b, d.Header)
	}
	for _, f := range d.Frames {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f.Op.String())
		b.WriteString(" [")
		b.WriteString(f.Kind)
		b.WriteString("] ")
		b.WriteString(f.ID.String())
		b.WriteByte('\n')
		writeLines(&b, f.Lines)
	}
	return b.String()
}

func writeLines(b *strings.Builder, lines []LineDiff) {
	for _, ln := range lines {
		if ln.Insert {
			b.WriteString("+ ")
		} else {
			b.WriteString("- ")
		}
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
}
