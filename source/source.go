// Package source provides chunk sources for driving binget computations:
// whole byte slices, pre-split chunk lists, io.Reader streams, and a byte
// budget wrapper. A source is consumed once; create a fresh one per run.
package source

import (
	"context"
	"io"
)

// Source produces the chunks of a byte stream in order, io.EOF when
// exhausted. It mirrors binget.Source so implementations here satisfy it
// without an adapter.
type Source interface {
	Next(ctx context.Context) ([]byte, error)
}

// Bytes returns a source that yields b as a single chunk, then io.EOF.
func Bytes(b []byte) Source {
	return Chunks(b)
}

// Chunks returns a source that yields the given chunks one at a time, in
// order. Chunks are handed out as-is, never copied.
func Chunks(chunks ...[]byte) Source {
	return &chunkSource{chunks: chunks}
}

type chunkSource struct {
	chunks [][]byte
}

func (s *chunkSource) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.chunks) == 0 {
		return nil, io.EOF
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

const defaultReadSize = 4096

// Reader wraps r as a source, reading up to size bytes per chunk (a
// default of 4096 applies when size <= 0). Each chunk is freshly allocated
// so the engine may retain it across appends.
func Reader(r io.Reader, size int) Source {
	if size <= 0 {
		size = defaultReadSize
	}
	return &readerSource{r: r, size: size}
}

type readerSource struct {
	r    io.Reader
	size int
	done bool
}

func (s *readerSource) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.done {
		return nil, io.EOF
	}
	buf := make([]byte, s.size)
	n, err := s.r.Read(buf)
	if n > 0 {
		// Defer the error; it resurfaces on the next call.
		if err != nil {
			if err == io.EOF {
				s.done = true
			} else {
				s.r = errReader{err}
			}
		}
		return buf[:n], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return nil, err
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// Limit truncates s after max bytes: once the budget is spent the wrapped
// source reports io.EOF, and a chunk straddling the budget is trimmed to
// fit. A non-positive max disables the limit.
func Limit(s Source, max int64) Source {
	if max <= 0 {
		return s
	}
	return &limitSource{inner: s, left: max}
}

type limitSource struct {
	inner Source
	left  int64
}

func (s *limitSource) Next(ctx context.Context) ([]byte, error) {
	if s.left <= 0 {
		return nil, io.EOF
	}
	c, err := s.inner.Next(ctx)
	if err != nil {
		return nil, err
	}
	if int64(len(c)) > s.left {
		c = c[:s.left]
	}
	s.left -= int64(len(c))
	return c, nil
}
