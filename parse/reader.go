package parse

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/obolibrary/obo-format/go-obo/debug"
	"github.com/obolibrary/obo-format/go-obo/intern"
	"github.com/obolibrary/obo-format/go-obo/token"
)

// chunker slices the input stream into frame-sized byte chunks. The
// header chunk comes first, then one chunk per `[`-introduced frame.
// Boundary detection is strictly sequential since it depends on
// stream position; everything downstream of here can parallelize.
type chunker struct {
	r       *bufio.Reader
	line    int
	off     int
	pend    []byte
	pendAt  [2]int
	started bool
	eof     bool
}

func newChunker(r io.Reader) *chunker {
	return &chunker{r: bufio.NewReader(r), line: 1}
}

// next returns the next chunk with the 1-based line and byte offset
// it starts at, or io.EOF after the last frame.
func (c *chunker) next() ([]byte, int, int, error) {
	if c.eof && c.pend == nil {
		if !c.started {
			// Empty input still has a header frame.
			c.started = true
			return nil, 1, 0, nil
		}
		return nil, 0, 0, io.EOF
	}

	var buf []byte
	baseLine, baseOff := c.line, c.off
	if c.pend != nil {
		baseLine, baseOff = c.pendAt[0], c.pendAt[1]
		buf = append(buf, c.pend...)
		c.pend = nil
	}
	first := !c.started
	c.started = true

	for !c.eof {
		raw, err := c.r.ReadBytes('\n')
		if err == io.EOF {
			c.eof = true
		} else if err != nil {
			return nil, 0, 0, err
		}
		if len(raw) == 0 {
			break
		}
		at, atOff := c.line, c.off
		c.line++
		c.off += len(raw)

		trimmed := bytes.TrimLeft(raw, " \t")
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if len(buf) > 0 || first {
				c.pend = raw
				c.pendAt = [2]int{at, atOff}
				if debug.Chunks() {
					debug.Logf("chunk at line %d off %d, %d bytes\n", baseLine, baseOff, len(buf))
				}
				return buf, baseLine, baseOff, nil
			}
			buf = append(buf, raw...)
			continue
		}
		buf = append(buf, raw...)
	}
	return buf, baseLine, baseOff, nil
}

// parseChunk tokenizes and builds one frame chunk.
func parseChunk(chunk []byte, line, off int, cache *intern.Cache) (Frame, error) {
	fr, err := token.TokenizeFrame(chunk, line, off)
	if err != nil {
		return Frame{}, fromTokenErr(err)
	}
	if debug.Parse() {
		debug.Logf("frame %s with %d lines\n", fr.Kind, len(fr.Lines))
	}
	return buildFrame(fr, cache)
}

type work struct {
	seq   int
	chunk []byte
	line  int
	off   int
}

type result struct {
	seq   int
	frame Frame
	err   error
}

// FrameReader parses a stream frame by frame across a worker pool. A
// single producer slices the input sequentially; workers tokenize and
// build frames in parallel. By default frames are delivered as they
// complete; with Ordered(true) a reorder buffer restores input order.
// The first error terminates the sequence. A FrameReader is a
// single-consumer iterator and is not safe for concurrent use.
type FrameReader struct {
	cfg    config
	cancel context.CancelFunc

	// concurrent mode
	header  *result
	results chan result
	pending map[int]result
	next    int

	// sequential mode
	seqChunks *chunker

	err  error
	done bool
}

// NewFrameReader starts reading OBO frames from r. With zero or one
// workers the reader degrades to fully sequential parsing. The header
// is parsed eagerly by the constructor and is always the first frame
// delivered, in either mode.
func NewFrameReader(r io.Reader, opts ...Option) *FrameReader {
	cfg := newConfig(opts)
	fr := &FrameReader{cfg: cfg}
	if cfg.workers <= 1 {
		fr.seqChunks = newChunker(r)
		return fr
	}

	ctx, cancel := context.WithCancel(context.Background())
	fr.cancel = cancel
	fr.results = make(chan result, cfg.workers)
	fr.pending = make(map[int]result)

	ch := newChunker(r)
	if chunk, line, off, err := ch.next(); err != nil {
		fr.header = &result{err: err}
	} else {
		frame, perr := parseChunk(chunk, line, off, cfg.cache)
		fr.header = &result{frame: frame, err: perr}
	}

	workCh := make(chan work, cfg.workers)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(workCh)
		for seq := 1; ; seq++ {
			chunk, line, off, err := ch.next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				// Surface the I/O failure at its position in the
				// sequence, like any parse failure.
				select {
				case fr.results <- result{seq: seq, err: err}:
				case <-ctx.Done():
				}
				return nil
			}
			select {
			case workCh <- work{seq: seq, chunk: chunk, line: line, off: off}:
			case <-ctx.Done():
				return nil
			}
		}
	})
	for i := 0; i < cfg.workers; i++ {
		g.Go(func() error {
			for w := range workCh {
				frame, err := parseChunk(w.chunk, w.line, w.off, cfg.cache)
				select {
				case fr.results <- result{seq: w.seq, frame: frame, err: err}:
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(fr.results)
	}()
	return fr
}

// Next returns the next frame. It returns io.EOF after the final
// frame, and after the first parse error keeps returning that error:
// frame boundaries beyond a malformed frame cannot be trusted, so the
// iteration is terminal.
func (fr *FrameReader) Next() (Frame, error) {
	if fr.done {
		return Frame{}, fr.err
	}
	if fr.seqChunks != nil {
		return fr.nextSequential()
	}
	return fr.nextConcurrent()
}

func (fr *FrameReader) nextSequential() (Frame, error) {
	chunk, line, off, err := fr.seqChunks.next()
	if err != nil {
		return Frame{}, fr.finish(err)
	}
	frame, err := parseChunk(chunk, line, off, fr.cfg.cache)
	if err != nil {
		return Frame{}, fr.finish(err)
	}
	return frame, nil
}

func (fr *FrameReader) nextConcurrent() (Frame, error) {
	if fr.header != nil {
		res := *fr.header
		fr.header = nil
		return fr.deliver(res)
	}
	for {
		if fr.cfg.ordered {
			if res, ok := fr.pending[fr.next]; ok {
				delete(fr.pending, fr.next)
				return fr.deliver(res)
			}
		}
		res, ok := <-fr.results
		if !ok {
			return Frame{}, fr.finish(io.EOF)
		}
		if !fr.cfg.ordered {
			return fr.deliver(res)
		}
		if res.seq != fr.next {
			fr.pending[res.seq] = res
			continue
		}
		return fr.deliver(res)
	}
}

func (fr *FrameReader) deliver(res result) (Frame, error) {
	fr.next = res.seq + 1
	if res.err != nil {
		return Frame{}, fr.finish(res.err)
	}
	return res.frame, nil
}

// finish records the terminal error and stops all background work.
func (fr *FrameReader) finish(err error) error {
	fr.done = true
	fr.err = err
	if fr.cancel != nil {
		fr.cancel()
	}
	return err
}

// Close stops the reader early, shutting down the worker pool and
// dropping unconsumed input. Frames already returned stay valid.
func (fr *FrameReader) Close() error {
	if !fr.done {
		fr.finish(io.EOF)
	}
	return nil
}
