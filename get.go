package binget

import (
	eng "github.com/reoring/binget/internal/engine"
)

// state is the position of a computation: the unconsumed buffer, the cursor
// (total bytes consumed so far, used only for diagnostics), and whether the
// end of the chunk stream has been confirmed.
type state struct {
	buf      eng.Buffer
	consumed int64
	eof      bool
}

// outcome is the internal counterpart of the public Result: the effect of
// stepping a computation against a state.
type outcome[T any] interface{ outcomeNode() }

type oDone[T any] struct {
	v  T
	st state
}

type oFail[T any] struct {
	err error
	st  state
}

// oSuspend captures the remaining work as an explicit continuation. Feeding
// a chunk (or the end-of-input signal) re-attempts exactly the step that ran
// short of data; completed steps are never re-executed.
type oSuspend[T any] struct {
	consumed int64
	cont     func(chunk []byte, eof bool) outcome[T]
}

func (oDone[T]) outcomeNode()    {}
func (oFail[T]) outcomeNode()    {}
func (oSuspend[T]) outcomeNode() {}

// Get is a composable decoding computation producing a T. Computations are
// built from Pure, the extraction primitives (GetBytes and the fixed-width
// decoders), and Bind/Map sequencing, then driven by Run or Start. A Get
// value is inert and reusable: stepping it never mutates shared state.
type Get[T any] struct {
	step func(st state) outcome[T]
}

// Pure wraps a known value into a computation that consumes nothing.
func Pure[T any](v T) Get[T] {
	return Get[T]{step: func(st state) outcome[T] {
		return oDone[T]{v: v, st: st}
	}}
}

// Fail wraps an error into a computation that fails without consuming
// input. The engine itself only fails for lack of bytes; Fail exists so
// layers built on top (payload codecs, varint overflow) can surface their
// own terminal errors through the same Result protocol. A *DecodeError with
// a zero Consumed field is stamped with the cursor at the point of failure.
func Fail[T any](err error) Get[T] {
	return Get[T]{step: func(st state) outcome[T] {
		if de, ok := err.(*DecodeError); ok && de.Consumed == 0 {
			cp := *de
			cp.Consumed = st.consumed
			return oFail[T]{err: &cp, st: st}
		}
		return oFail[T]{err: err, st: st}
	}}
}

// Bind sequences g with f: run g, feed its value to f, continue with the
// resulting computation. Sequencing is associative, Pure is its identity,
// and suspension is transparent: if any step inside suspends, the composed
// computation reports itself suspended and resumes exactly there.
func Bind[A, B any](g Get[A], f func(A) Get[B]) Get[B] {
	return Get[B]{step: func(st state) outcome[B] {
		return bindOutcome(g.step(st), f)
	}}
}

func bindOutcome[A, B any](o outcome[A], f func(A) Get[B]) outcome[B] {
	switch o := o.(type) {
	case oDone[A]:
		return f(o.v).step(o.st)
	case oFail[A]:
		return oFail[B]{err: o.err, st: o.st}
	case oSuspend[A]:
		return oSuspend[B]{consumed: o.consumed, cont: func(chunk []byte, eof bool) outcome[B] {
			return bindOutcome(o.cont(chunk, eof), f)
		}}
	default:
		panic("binget: unknown outcome")
	}
}

// Map transforms the result of g with a pure function.
func Map[A, B any](g Get[A], f func(A) B) Get[B] {
	return Bind(g, func(v A) Get[B] { return Pure(f(v)) })
}

// resumeState applies the next chunk (or the end-of-input signal) to a
// checkpointed state. Once eof is set it stays set, so primitives stop
// suspending and report insufficient input instead.
func resumeState(st state, chunk []byte, eof bool) state {
	if eof {
		st.eof = true
		return st
	}
	st.buf = st.buf.Append(chunk)
	return st
}
