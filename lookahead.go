package binget

// Lookahead combinators. A checkpoint is the (buffer, cursor) pair at entry;
// restoring it rewinds consumption while keeping any chunks that arrived
// while the inner computation was suspended, so the stream stays intact.

// replay records input that arrived during a lookahead so a restored
// checkpoint still contains it.
type replay struct {
	chunks [][]byte
	eof    bool
}

func (r replay) apply(st state) state {
	for _, c := range r.chunks {
		st.buf = st.buf.Append(c)
	}
	if r.eof {
		st.eof = true
	}
	return st
}

func (r replay) with(chunk []byte, eof bool) replay {
	if eof {
		return replay{chunks: r.chunks, eof: true}
	}
	chunks := make([][]byte, len(r.chunks), len(r.chunks)+1)
	copy(chunks, r.chunks)
	return replay{chunks: append(chunks, chunk), eof: r.eof}
}

// lookOutcome drives an inner outcome to completion, then either keeps its
// consumption or restores the checkpoint, decided by keep. Failures
// propagate as-is (terminal, nothing to restore for).
func lookOutcome[T any](o outcome[T], orig state, rp replay, keep func(T) bool) outcome[T] {
	switch o := o.(type) {
	case oDone[T]:
		if keep(o.v) {
			return o
		}
		return oDone[T]{v: o.v, st: rp.apply(orig)}
	case oFail[T]:
		return o
	case oSuspend[T]:
		return oSuspend[T]{consumed: o.consumed, cont: func(chunk []byte, eof bool) outcome[T] {
			return lookOutcome(o.cont(chunk, eof), orig, rp.with(chunk, eof), keep)
		}}
	default:
		panic("binget: unknown outcome")
	}
}

// LookAhead runs g and unconditionally restores the checkpoint afterwards:
// g's value is returned but the cursor does not advance, no matter how many
// suspensions g went through on the way.
func LookAhead[T any](g Get[T]) Get[T] {
	return Get[T]{step: func(st state) outcome[T] {
		return lookOutcome(g.step(st), st, replay{}, func(T) bool { return false })
	}}
}

// LookAheadMay runs g and keeps its consumption only when g produced a
// non-nil value; a nil result restores the checkpoint.
func LookAheadMay[T any](g Get[*T]) Get[*T] {
	return Get[*T]{step: func(st state) outcome[*T] {
		return lookOutcome(g.step(st), st, replay{}, func(v *T) bool { return v != nil })
	}}
}

// Either is a two-branch result for LookAheadE: Right is the accepting
// branch, Left the rejecting one.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

// LeftOf builds the rejecting branch.
func LeftOf[L, R any](v L) Either[L, R] { return Either[L, R]{Left: v} }

// RightOf builds the accepting branch.
func RightOf[L, R any](v R) Either[L, R] { return Either[L, R]{Right: v, IsRight: true} }

// LookAheadE runs g and keeps its consumption only when g produced the
// Right branch; a Left result restores the checkpoint.
func LookAheadE[L, R any](g Get[Either[L, R]]) Get[Either[L, R]] {
	return Get[Either[L, R]]{step: func(st state) outcome[Either[L, R]] {
		return lookOutcome(g.step(st), st, replay{}, func(v Either[L, R]) bool { return v.IsRight })
	}}
}

// Remaining reports the total bytes buffered up to the end of the stream,
// without consuming them. It keeps requesting chunks until the source is
// exhausted, so it materializes the full tail and breaks the streaming
// property for this one call.
func Remaining() Get[int] {
	return Get[int]{step: remainingStep}
}

func remainingStep(st state) outcome[int] {
	if st.eof {
		return oDone[int]{v: st.buf.Len(), st: st}
	}
	return oSuspend[int]{consumed: st.consumed, cont: func(chunk []byte, eof bool) outcome[int] {
		return remainingStep(resumeState(st, chunk, eof))
	}}
}

// IsEmpty reports whether the buffer is empty and no more chunks are
// forthcoming, without consuming anything. Like Remaining it may need to
// pull the next chunk to decide.
func IsEmpty() Get[bool] {
	return Get[bool]{step: isEmptyStep}
}

func isEmptyStep(st state) outcome[bool] {
	if st.buf.Len() > 0 {
		return oDone[bool]{v: false, st: st}
	}
	if st.eof {
		return oDone[bool]{v: true, st: st}
	}
	return oSuspend[bool]{consumed: st.consumed, cont: func(chunk []byte, eof bool) outcome[bool] {
		return isEmptyStep(resumeState(st, chunk, eof))
	}}
}

// BytesRead reports the cursor: total bytes consumed since the computation
// began. Diagnostic only; never needed for control flow.
func BytesRead() Get[int64] {
	return Get[int64]{step: func(st state) outcome[int64] {
		return oDone[int64]{v: st.consumed, st: st}
	}}
}
