package binget

import (
	"encoding/binary"
)

// Fixed-width unsigned integer decoders. Each extracts exactly k bytes via
// GetBytes and assembles the value with the standard byte-order arithmetic:
// big-endian places the first stream byte at the most significant position,
// little-endian at the least significant. These layouts are the library's
// only bit-exact contract; downstream protocol decoders depend on them.
//
// The Host variants reinterpret the raw bytes using the executing machine's
// native byte order. Their encoding is platform-defined: the same input
// yields different values on big- and little-endian hosts, so they are only
// suitable for data produced on the same machine.

// GetUint8 decodes one byte.
func GetUint8() Get[uint8] {
	return Map(GetBytes(1), func(b []byte) uint8 { return b[0] })
}

// GetUint16BE decodes a 2-byte big-endian word.
func GetUint16BE() Get[uint16] {
	return Map(GetBytes(2), binary.BigEndian.Uint16)
}

// GetUint16LE decodes a 2-byte little-endian word.
func GetUint16LE() Get[uint16] {
	return Map(GetBytes(2), binary.LittleEndian.Uint16)
}

// GetUint32BE decodes a 4-byte big-endian word.
func GetUint32BE() Get[uint32] {
	return Map(GetBytes(4), binary.BigEndian.Uint32)
}

// GetUint32LE decodes a 4-byte little-endian word.
func GetUint32LE() Get[uint32] {
	return Map(GetBytes(4), binary.LittleEndian.Uint32)
}

// GetUint64BE decodes an 8-byte big-endian word.
func GetUint64BE() Get[uint64] {
	return Map(GetBytes(8), binary.BigEndian.Uint64)
}

// GetUint64LE decodes an 8-byte little-endian word.
func GetUint64LE() Get[uint64] {
	return Map(GetBytes(8), binary.LittleEndian.Uint64)
}

// GetUint16Host decodes a 2-byte word in the host's native order
// (platform-defined, see package note above).
func GetUint16Host() Get[uint16] {
	return Map(GetBytes(2), binary.NativeEndian.Uint16)
}

// GetUint32Host decodes a 4-byte word in the host's native order
// (platform-defined).
func GetUint32Host() Get[uint32] {
	return Map(GetBytes(4), binary.NativeEndian.Uint32)
}

// GetUint64Host decodes an 8-byte word in the host's native order
// (platform-defined).
func GetUint64Host() Get[uint64] {
	return Map(GetBytes(8), binary.NativeEndian.Uint64)
}

// GetUint64HostPair decodes an 8-byte value as two native-order 32-bit
// words composed as (high << 32) | low, with the first word in the stream
// taken as high. This matches 32-bit targets that store 64-bit values as a
// big-endian-ordered pair of native words, regardless of the host's own
// order within a single word.
func GetUint64HostPair() Get[uint64] {
	return Bind(GetUint32Host(), func(high uint32) Get[uint64] {
		return Map(GetUint32Host(), func(low uint32) uint64 {
			return uint64(high)<<32 | uint64(low)
		})
	})
}
