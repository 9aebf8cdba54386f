package binget

import (
	eng "github.com/reoring/binget/internal/engine"
)

// Leftover is the unconsumed tail of the input once a computation has
// finished. It preserves the engine's zero-copy chunk view; Bytes
// materializes it (aliasing the underlying chunk when the tail fits in
// one).
type Leftover struct {
	buf eng.Buffer
}

// Len reports the number of leftover bytes.
func (l Leftover) Len() int { return l.buf.Len() }

// Bytes materializes the leftover bytes. The result must be treated as
// read-only.
func (l Leftover) Bytes() []byte { return l.buf.Bytes() }

// Result is the outcome of driving a Get computation: Done, Suspended, or
// Failed. Event-loop callers obtain one via Start and drive Suspended
// values by hand; everyone else uses Run.
type Result[T any] interface{ resultNode() }

// Done carries the produced value, the leftover input, and the total bytes
// consumed.
type Done[T any] struct {
	Value    T
	Rest     Leftover
	Consumed int64
}

// Suspended is a computation that cannot proceed without more input. Feed
// resumes it with the next chunk of the stream, in order; End tells it the
// source is exhausted, after which it either finishes with what it has or
// fails with insufficient input. The continuation re-attempts exactly the
// step that ran short; it never skips or duplicates consumption.
type Suspended[T any] struct {
	consumed int64
	cont     func(chunk []byte, eof bool) outcome[T]
}

// Failed is a terminal failure. Err is the cause (insufficient input, a
// source error surfaced by the driver, or a Fail from a layered decoder);
// Consumed is the cursor at the point of failure. Failed computations are
// not resumable: callers wanting another attempt re-run a fresh
// computation.
type Failed[T any] struct {
	Err      error
	Consumed int64
}

func (Done[T]) resultNode()      {}
func (Suspended[T]) resultNode() {}
func (Failed[T]) resultNode()    {}

// Feed resumes the computation with the next chunk.
func (s Suspended[T]) Feed(chunk []byte) Result[T] {
	return toResult[T](s.cont(chunk, false))
}

// End signals that no further chunks exist. The resulting Result is never
// Suspended again.
func (s Suspended[T]) End() Result[T] {
	return toResult[T](s.cont(nil, true))
}

// Consumed reports the total bytes consumed before the suspension.
func (s Suspended[T]) Consumed() int64 { return s.consumed }

// Start steps a computation against an empty buffer and returns its first
// Result, for callers that drive resumption manually (for example inside an
// event loop).
func Start[T any](g Get[T]) Result[T] {
	return toResult[T](g.step(state{}))
}

func toResult[T any](o outcome[T]) Result[T] {
	switch o := o.(type) {
	case oDone[T]:
		return Done[T]{Value: o.v, Rest: Leftover{buf: o.st.buf}, Consumed: o.st.consumed}
	case oFail[T]:
		return Failed[T]{Err: o.err, Consumed: o.st.consumed}
	case oSuspend[T]:
		return Suspended[T]{consumed: o.consumed, cont: o.cont}
	default:
		panic("binget: unknown outcome")
	}
}
