package ast

import "fmt"

// SyntaxError is a grammar or lexical violation with its 1-based
// source location and a description of what was expected.
type SyntaxError struct {
	Line    int
	Col     int
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at line %d column %d", e.Message, e.Line, e.Col)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// CardinalityReason classifies how a clause count violated its
// declared cardinality.
type CardinalityReason int

const (
	// MissingClause: a required clause did not appear.
	MissingClause CardinalityReason = iota
	// DuplicateClauses: a clause limited to one occurrence appeared
	// more than once.
	DuplicateClauses
	// SingleClause: a clause that cannot stand alone appeared exactly
	// once.
	SingleClause
)

// Position is a 1-based source location. The parser records one on
// every frame it builds; hand-built frames leave it zero.
type Position struct {
	Line int
	Col  int
}

// CardinalityError reports a clause kind whose occurrence count within
// one frame violates its declared cardinality. ID is the owning
// frame's identifier, nil for the header frame. Line and Col locate
// the start of the frame when the parser recorded its position.
type CardinalityError struct {
	Tag    string
	ID     Ident
	Reason CardinalityReason
	Line   int
	Col    int
}

func (e *CardinalityError) Error() string {
	var msg string
	switch e.Reason {
	case MissingClause:
		msg = fmt.Sprintf("missing %q clause", e.Tag)
	case DuplicateClauses:
		msg = fmt.Sprintf("duplicate %q clauses", e.Tag)
	case SingleClause:
		msg = fmt.Sprintf("invalid single %q clause", e.Tag)
	default:
		msg = fmt.Sprintf("invalid cardinality for %q clauses", e.Tag)
	}
	if e.ID != nil {
		return fmt.Sprintf("%s in frame %s", msg, e.ID)
	}
	return msg + " in header"
}

func missingClause(tag string, id Ident, at Position) *CardinalityError {
	return &CardinalityError{Tag: tag, ID: id, Reason: MissingClause, Line: at.Line, Col: at.Col}
}

func duplicateClauses(tag string, id Ident, at Position) *CardinalityError {
	return &CardinalityError{Tag: tag, ID: id, Reason: DuplicateClauses, Line: at.Line, Col: at.Col}
}

func singleClause(tag string, id Ident, at Position) *CardinalityError {
	return &CardinalityError{Tag: tag, ID: id, Reason: SingleClause, Line: at.Line, Col: at.Col}
}
