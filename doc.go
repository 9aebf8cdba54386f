// Package binget decodes structured values out of a byte stream that may
// arrive in arbitrary-sized chunks. A computation is a composable Get[T]
// built from Pure, the extraction primitives (GetBytes and the fixed-width
// big/little/host-endian decoders), and Bind/Map sequencing. Driving one
// yields a Result: Done with the value and leftover input, Suspended with
// an explicit continuation awaiting the next chunk, or Failed with a
// structured DecodeError carrying the bytes consumed. Buffer splitting is
// zero-copy over the appended chunks, and lookahead/backtracking
// combinators restore a saved (buffer, cursor) checkpoint.
//
// Design policy: only public APIs live in the root package, the chunked
// buffer lives under internal/engine, chunk sources under source/, payload
// codecs under codec/. Tests are black-box against the public API.
//
// Typical usage:
//
//	g := binget.Bind(binget.GetUint32BE(), func(n uint32) binget.Get[[]byte] {
//		return binget.GetBytes(int(n))
//	})
//	payload, err := binget.Run(ctx, g, source.Reader(conn, 0))
//
// Event-loop callers drive suspension by hand:
//
//	res := binget.Start(g)
//	for {
//		s, ok := res.(binget.Suspended[[]byte])
//		if !ok {
//			break
//		}
//		res = s.Feed(<-chunks)
//	}
//
// The engine is single-threaded and synchronous: evaluation is a pure state
// transition over its own buffer and cursor, and a suspension is a concrete
// value rather than a blocked goroutine, so independent computations can be
// interleaved over many byte sources on one goroutine. Chunks must be fed
// in stream order; out-of-order delivery corrupts the logical byte sequence
// with no detection possible at this layer.
package binget
