package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets within one tokenized chunk to line/column
// numbers. When the chunk is a slice of a larger document (one frame
// handed to a worker), baseLine and baseOff shift reported positions
// back into document coordinates.
type PosDoc struct {
	d        []byte
	n        []int // offsets of newlines seen so far, increasing
	baseLine int
	baseOff  int
}

// NewPosDoc creates a PosDoc for a chunk that starts at the given
// 1-based line and 0-based byte offset of the enclosing document.
func NewPosDoc(d []byte, baseLine, baseOff int) *PosDoc {
	p := &PosDoc{d: d, baseLine: baseLine, baseOff: baseOff}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol converts a chunk-relative offset to 1-based document line
// and column numbers.
func (p *PosDoc) LineCol(off int) (int, int) {
	n := len(p.n)
	di := sort.Search(n, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return p.baseLine, off + 1
	}
	return p.baseLine + di, off - p.n[di-1]
}

// Pos returns a position handle for the chunk-relative offset i.
func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a location within a tokenized chunk, kept cheap so every
// token can carry one.
type Pos struct {
	I int
	D *PosDoc
}

// LineCol reports the 1-based document line and column of p.
func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

// Line reports the 1-based document line of p.
func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

// Col reports the 1-based column of p.
func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// Offset reports the absolute byte offset of p in the document.
func (p *Pos) Offset() int {
	return p.D.baseOff + p.I
}

func (p Pos) String() string {
	var sample string
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+10, len(p.D.d))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` (line=%d, col=%d)", sample, l, c)
}
