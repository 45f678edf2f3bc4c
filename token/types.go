// Package token splits OBO 1.4 flat-file text into frames, clause
// lines, and the lexical pieces (quoted strings, qualifier blocks,
// trailing comments) that the parse package assembles into the typed
// AST. Every piece carries its position for error reporting.
package token

import "fmt"

// FrameKind discriminates the four frame types of an OBO document.
type FrameKind int

const (
	Header FrameKind = iota
	Term
	Typedef
	Instance
)

func (k FrameKind) String() string {
	switch k {
	case Header:
		return "Header"
	case Term:
		return "Term"
	case Typedef:
		return "Typedef"
	case Instance:
		return "Instance"
	}
	return fmt.Sprintf("FrameKind(%d)", int(k))
}

// Frame is one tokenized frame: the header block or one entity block.
type Frame struct {
	Kind  FrameKind
	Pos   *Pos
	Lines []Line
}

// Line is one tokenized clause line: tag, raw value region, optional
// trailing qualifier block and optional trailing comment. Value keeps
// the escaped source bytes; unescaping happens during AST building so
// that builders can report positions inside the value.
type Line struct {
	Tag        string
	TagPos     *Pos
	Value      []byte
	ValuePos   *Pos
	Qualifiers []Qual
	Comment    string
}

// Qual is one raw key="value" pair from a trailing qualifier block.
// Value holds the escaped contents without the surrounding quotes.
type Qual struct {
	Key    []byte
	KeyPos *Pos
	Value  []byte
	ValPos *Pos
}

// TokenizeErr is a lexical error with its source position.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// ExpectedErr reports that the input was missing something at p.
func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

// UnexpectedErr reports that the input held something unwanted at p.
func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
