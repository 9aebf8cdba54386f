package binget

// GetBytes extracts exactly n bytes from the stream. When the buffer
// already holds n bytes the split is zero-copy where the range fits in a
// single chunk; a range spanning chunk boundaries is joined with one copy.
// When fewer than n bytes are buffered the computation suspends and, on
// each resumption, re-attempts the same extraction — n may span arbitrarily
// many chunks. n <= 0 yields an empty slice and consumes nothing. The
// returned slice aliases buffered input and must be treated as read-only.
func GetBytes(n int) Get[[]byte] {
	return Get[[]byte]{step: func(st state) outcome[[]byte] {
		return getBytesStep(n, st)
	}}
}

func getBytesStep(n int, st state) outcome[[]byte] {
	if n <= 0 {
		return oDone[[]byte]{v: []byte{}, st: st}
	}
	if st.buf.Len() >= n {
		pre, suf := st.buf.Split(n)
		next := state{buf: suf, consumed: st.consumed + int64(n), eof: st.eof}
		return oDone[[]byte]{v: pre.Bytes(), st: next}
	}
	if st.eof {
		return oFail[[]byte]{err: insufficient(st.consumed), st: st}
	}
	return oSuspend[[]byte]{consumed: st.consumed, cont: func(chunk []byte, eof bool) outcome[[]byte] {
		return getBytesStep(n, resumeState(st, chunk, eof))
	}}
}

// Skip discards exactly n bytes and reports how many were skipped (always n
// on success). Suspension and failure behave as in GetBytes; the skipped
// region is never materialized.
func Skip(n int) Get[int] {
	return Get[int]{step: func(st state) outcome[int] {
		return skipStep(n, st)
	}}
}

func skipStep(n int, st state) outcome[int] {
	if n <= 0 {
		return oDone[int]{v: 0, st: st}
	}
	if st.buf.Len() >= n {
		_, suf := st.buf.Split(n)
		next := state{buf: suf, consumed: st.consumed + int64(n), eof: st.eof}
		return oDone[int]{v: n, st: next}
	}
	if st.eof {
		return oFail[int]{err: insufficient(st.consumed), st: st}
	}
	return oSuspend[int]{consumed: st.consumed, cont: func(chunk []byte, eof bool) outcome[int] {
		return skipStep(n, resumeState(st, chunk, eof))
	}}
}

// GetString extracts n bytes and converts them to a string (one copy, owned
// by the caller).
func GetString(n int) Get[string] {
	return Map(GetBytes(n), func(b []byte) string { return string(b) })
}

// GetUvarint decodes an unsigned base-128 varint, one byte at a time, so a
// varint split across chunk boundaries decodes the same as a contiguous
// one. Values that do not fit in 64 bits fail with CodeOverflow.
func GetUvarint() Get[uint64] {
	return uvarintStep(0, 0)
}

func uvarintStep(x uint64, shift uint) Get[uint64] {
	return Bind(GetUint8(), func(b uint8) Get[uint64] {
		if shift == 63 && b > 1 {
			return Fail[uint64](&DecodeError{Code: CodeOverflow, Message: "uvarint exceeds 64 bits"})
		}
		if b < 0x80 {
			return Pure(x | uint64(b)<<shift)
		}
		if shift >= 63 {
			return Fail[uint64](&DecodeError{Code: CodeOverflow, Message: "uvarint exceeds 64 bits"})
		}
		return uvarintStep(x|uint64(b&0x7f)<<shift, shift+7)
	})
}
