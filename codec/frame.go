package codec

import (
	"fmt"
	"math"

	binget "github.com/reoring/binget"
)

// maxFrameLen caps the payload length a frame may declare. Lengths beyond
// it are rejected up front: a declared length that wraps the int conversion
// would otherwise turn into GetBytes(n <= 0), an empty payload, and a
// silent zero-value decode.
const maxFrameLen = math.MaxInt32

// Frame decodes one length-prefixed frame: a 4-byte big-endian payload
// length followed by the payload, unmarshalled into T via c. The length
// prefix and payload may arrive split across any number of chunks; an
// unmarshal failure surfaces as a terminal CodePayloadDecode error, and a
// declared length above maxFrameLen as CodeOverflow.
func Frame[T any](c Codec) binget.Get[T] {
	return binget.Bind(binget.GetUint32BE(), func(n uint32) binget.Get[T] {
		return payload[T](c, uint64(n))
	})
}

// FrameUvarint is Frame with a base-128 varint length prefix instead of a
// fixed 4-byte one.
func FrameUvarint[T any](c Codec) binget.Get[T] {
	return binget.Bind(binget.GetUvarint(), func(n uint64) binget.Get[T] {
		return payload[T](c, n)
	})
}

func payload[T any](c Codec, n uint64) binget.Get[T] {
	if n > maxFrameLen {
		return binget.Fail[T](&binget.DecodeError{
			Code:    binget.CodeOverflow,
			Message: fmt.Sprintf("frame length %d exceeds %d", n, uint64(maxFrameLen)),
		})
	}
	return binget.Bind(binget.GetBytes(int(n)), func(data []byte) binget.Get[T] {
		var v T
		if err := c.Unmarshal(data, &v); err != nil {
			return binget.Fail[T](&binget.DecodeError{
				Code:    binget.CodePayloadDecode,
				Message: fmt.Sprintf("%s payload", c.Name()),
				Cause:   err,
			})
		}
		return binget.Pure(v)
	})
}
