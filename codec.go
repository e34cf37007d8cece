package wad

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// ToSignedOfBitlength masks v to its low n bits and reads the result as an n-bit two's
// complement number, so any input wraps into [-2^(n-1), 2^(n-1)-1]. n must be in 1..64.
func ToSignedOfBitlength[T constraints.Integer](v T, n uint) int64 {
	mask := ^uint64(0)
	if n < 64 {
		mask = uint64(1)<<n - 1
	}
	x := uint64(v) & mask
	if x&(uint64(1)<<(n-1)) != 0 {
		// Sign extend; same as subtracting 2^n.
		x |= ^mask
	}
	return int64(x)
}

// EncodeInt32 wraps v to 32 bits and returns it little-endian
func EncodeInt32[T constraints.Integer](v T) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(ToSignedOfBitlength(v, 32)))
	return b
}

// EncodeInt16 wraps v to 16 bits and returns it little-endian
func EncodeInt16[T constraints.Integer](v T) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(ToSignedOfBitlength(v, 16)))
	return b
}

// DecodeInt32 reads a little-endian signed 32-bit value from the first 4 bytes of b.
func DecodeInt32(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b[:4]))
}

// DecodeInt16 reads a little-endian signed 16-bit value from the first 2 bytes of b.
func DecodeInt16(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b[:2]))
}

// PackShortPair wraps hi and lo to 16 bits each and packs them into one 32-bit field, hi in
// the upper half. On disk the lo half comes first, so an (x, y) position is PackShortPair(y, x).
func PackShortPair[T constraints.Integer](hi, lo T) int32 {
	h := uint32(uint16(ToSignedOfBitlength(hi, 16)))
	l := uint32(uint16(ToSignedOfBitlength(lo, 16)))
	return int32(h<<16 | l)
}
