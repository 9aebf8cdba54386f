package engine

// Buffer is the engine's accumulated unconsumed input: an ordered list of
// independently appended chunks plus a consumed offset into the first one.
// A Buffer value is immutable; Append and Split return new values that share
// chunk storage with the originals. Chunk contents are never written.
type Buffer struct {
	chunks [][]byte
	off    int // consumed prefix of chunks[0]
	size   int // total unconsumed bytes
}

// NewBuffer builds a Buffer over the given chunks. Empty chunks are dropped
// so that the invariant "chunks[0] has at least one unconsumed byte" holds
// whenever size > 0.
func NewBuffer(chunks ...[]byte) Buffer {
	var b Buffer
	for _, c := range chunks {
		b = b.Append(c)
	}
	return b
}

// Len reports the number of unconsumed bytes.
func (b Buffer) Len() int { return b.size }

// IsEmpty reports whether no unconsumed bytes remain.
func (b Buffer) IsEmpty() bool { return b.size == 0 }

// Append returns a Buffer extended by chunk. The chunk is shared, not
// copied. The chunk list itself is reallocated so that sibling Buffer
// values (checkpoints held by lookahead) are never clobbered by a later
// append through a shared backing array.
func (b Buffer) Append(chunk []byte) Buffer {
	if len(chunk) == 0 {
		return b
	}
	chunks := make([][]byte, len(b.chunks), len(b.chunks)+1)
	copy(chunks, b.chunks)
	chunks = append(chunks, chunk)
	return Buffer{chunks: chunks, off: b.off, size: b.size + len(chunk)}
}

// Split divides the buffer at n: the prefix holds exactly min(n, Len())
// bytes, the suffix the remainder. When n <= 0 the prefix is empty and the
// suffix is the receiver unchanged. Splitting only trims the boundary
// chunks; interior chunks are shared between both halves, and the suffix is
// an offset reference into the existing chunk list rather than a recopy.
func (b Buffer) Split(n int) (prefix, suffix Buffer) {
	if n <= 0 {
		return Buffer{}, b
	}
	if n >= b.size {
		return b, Buffer{}
	}

	// Walk chunks until n bytes are covered.
	off := b.off
	left := n
	var pre [][]byte
	for i, c := range b.chunks {
		avail := len(c) - off
		if left < avail {
			pre = append(pre, c[off:off+left])
			prefix = Buffer{chunks: pre, size: n}
			suffix = Buffer{chunks: b.chunks[i:], off: off + left, size: b.size - n}
			return prefix, suffix
		}
		pre = append(pre, c[off:])
		left -= avail
		off = 0
		if left == 0 {
			prefix = Buffer{chunks: pre, size: n}
			suffix = Buffer{chunks: b.chunks[i+1:], size: b.size - n}
			return prefix, suffix
		}
	}
	// Unreachable: n < size guarantees the walk terminates inside the list.
	return b, Buffer{}
}

// Bytes materializes the unconsumed bytes as one contiguous slice. When the
// buffer lies within a single chunk the slice aliases that chunk (zero
// copy); a buffer spanning chunk boundaries is joined with one copy.
// Callers must treat the result as read-only.
func (b Buffer) Bytes() []byte {
	switch len(b.chunks) {
	case 0:
		return nil
	case 1:
		return b.chunks[0][b.off : b.off+b.size]
	}
	out := make([]byte, 0, b.size)
	out = append(out, b.chunks[0][b.off:]...)
	for _, c := range b.chunks[1:] {
		out = append(out, c...)
	}
	return out
}
