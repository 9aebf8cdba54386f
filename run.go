package binget

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/binget/internal/engine"
)

// Source produces the chunks of a byte stream in order. Next returns io.EOF
// once the stream is exhausted; any other error aborts the run. The source
// package provides implementations over byte slices, chunk lists, and
// io.Reader.
type Source interface {
	Next(ctx context.Context) ([]byte, error)
}

// Run drives g against src, feeding chunks into suspensions until the
// computation finishes or the source is exhausted. Chunks are handed
// through strictly one at a time, in stream order. Leftover input is
// discarded; use RunRest to inspect it.
func Run[T any](ctx context.Context, g Get[T], src Source) (T, error) {
	v, _, err := RunRest(ctx, g, src)
	return v, err
}

// RunRest is Run exposing the unconsumed tail of the input alongside the
// value.
func RunRest[T any](ctx context.Context, g Get[T], src Source) (T, Leftover, error) {
	var zero T
	res := Start(g)
	for {
		switch r := res.(type) {
		case Done[T]:
			return r.Value, r.Rest, nil
		case Failed[T]:
			return zero, Leftover{}, r.Err
		case Suspended[T]:
			chunk, err := src.Next(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) {
					res = r.End()
					continue
				}
				return zero, Leftover{}, &DecodeError{
					Code:     CodeSourceError,
					Consumed: r.Consumed(),
					Message:  "chunk source failed",
					Cause:    err,
				}
			}
			res = r.Feed(chunk)
		default:
			panic("binget: unknown result")
		}
	}
}

// RunBytes drives g against a single complete buffer, the whole-input mode
// for callers that already hold all the data. The computation starts with
// end-of-stream already confirmed, so it never suspends.
func RunBytes[T any](g Get[T], data []byte) (T, Leftover, error) {
	var zero T
	res := toResult[T](g.step(state{buf: eng.NewBuffer(data), eof: true}))
	switch r := res.(type) {
	case Done[T]:
		return r.Value, r.Rest, nil
	case Failed[T]:
		return zero, Leftover{}, r.Err
	default:
		panic("binget: suspended after end of input")
	}
}
