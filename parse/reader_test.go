package parse

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obolibrary/obo-format/go-obo/ast"
	"github.com/obolibrary/obo-format/go-obo/intern"
)

func bigDoc(n int) string {
	var b strings.Builder
	b.WriteString("format-version: 1.4\nontology: big\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "\n[Term]\nid: T:%07d\nname: term %d\n", i, i)
	}
	return b.String()
}

func readAll(t *testing.T, input string, opts ...Option) []Frame {
	t.Helper()
	fr := NewFrameReader(strings.NewReader(input), opts...)
	defer fr.Close()
	var frames []Frame
	for {
		f, err := fr.Next()
		if err == io.EOF {
			return frames
		}
		require.NoError(t, err)
		frames = append(frames, f)
	}
}

func frameIDs(frames []Frame) []string {
	var ids []string
	for _, f := range frames {
		if f.Entity != nil {
			ids = append(ids, f.Entity.ID().String())
		}
	}
	return ids
}

func TestFrameReaderHeaderFirst(t *testing.T) {
	// The header is parsed eagerly, so it comes first even in
	// completion-order mode.
	for _, workers := range []int{2, 4, 8} {
		frames := readAll(t, bigDoc(50), Workers(workers))
		require.Len(t, frames, 51, "workers=%d", workers)
		require.NotNil(t, frames[0].Header, "workers=%d", workers)
		assert.Len(t, frames[0].Header.Clauses, 2)
		for _, f := range frames[1:] {
			require.NotNil(t, f.Entity)
		}
	}
}

func TestFrameReaderSequential(t *testing.T) {
	frames := readAll(t, bigDoc(10), Workers(0))
	require.Len(t, frames, 11)
	assert.NotNil(t, frames[0].Header)
	assert.Len(t, frames[0].Header.Clauses, 2)
	for i, f := range frames[1:] {
		require.NotNil(t, f.Entity)
		assert.Equal(t, fmt.Sprintf("T:%07d", i), f.Entity.ID().String())
	}
}

func TestFrameReaderOrderedMatchesSequential(t *testing.T) {
	input := bigDoc(200)
	want := frameIDs(readAll(t, input, Workers(0)))
	for _, workers := range []int{1, 2, 4, 8} {
		got := frameIDs(readAll(t, input, Workers(workers), Ordered(true)))
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestFrameReaderCompletionSameSet(t *testing.T) {
	input := bigDoc(200)
	want := frameIDs(readAll(t, input, Workers(0)))
	got := frameIDs(readAll(t, input, Workers(4)))
	assert.ElementsMatch(t, want, got)
}

func TestFrameReaderErrorIsTerminal(t *testing.T) {
	input := bigDoc(50) + "\n[Term]\nid: bad id here extra\n" + bigDoc(0)
	for _, workers := range []int{0, 4} {
		fr := NewFrameReader(strings.NewReader(input), Workers(workers), Ordered(true))
		var firstErr error
		for {
			_, err := fr.Next()
			if err != nil {
				firstErr = err
				break
			}
		}
		require.Error(t, firstErr, "workers=%d", workers)
		assert.NotEqual(t, io.EOF, firstErr)

		// The reader stays terminal after the first error.
		_, err := fr.Next()
		assert.Equal(t, firstErr, err)
		assert.NoError(t, fr.Close())
	}
}

func TestFrameReaderEarlyClose(t *testing.T) {
	fr := NewFrameReader(strings.NewReader(bigDoc(500)), Workers(4))
	_, err := fr.Next()
	require.NoError(t, err)
	require.NoError(t, fr.Close())
	_, err = fr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFrameReaderEmptyInput(t *testing.T) {
	fr := NewFrameReader(strings.NewReader(""), Workers(4))
	f, err := fr.Next()
	require.NoError(t, err)
	require.NotNil(t, f.Header)
	assert.True(t, f.Header.IsEmpty())
	_, err = fr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestFrameReaderSharedCache(t *testing.T) {
	cache := intern.NewCache()
	frames := readAll(t, bigDoc(20), Workers(4), WithCache(cache))
	require.Len(t, frames, 21)
	assert.Greater(t, cache.Len(), 0)
}

func TestReaderEquivalentAcrossWorkers(t *testing.T) {
	input := bigDoc(100)
	want, err := String(input, Workers(0))
	require.NoError(t, err)
	for _, workers := range []int{2, 8} {
		got, err := String(input, Workers(workers))
		require.NoError(t, err)
		require.Len(t, got.Entities, len(want.Entities))
		for i := range want.Entities {
			assert.Equal(t, want.Entities[i].ID(), got.Entities[i].ID())
		}
	}
}

func TestFrameReaderInterning(t *testing.T) {
	input := "[Term]\nid: GO:0000001\nis_a: GO:0000002\n\n[Term]\nid: GO:0000002\nis_a: GO:0000001\n"
	frames := readAll(t, input, Workers(4), Ordered(true))
	require.Len(t, frames, 3)
	var xa ast.Ident
	for _, ln := range frames[1].Entity.(*ast.TermFrame).Clauses {
		if c, ok := ln.Clause.(ast.IsAClause); ok {
			xa = c.ID
		}
	}
	assert.Equal(t, frames[2].Entity.ID(), xa)
}
