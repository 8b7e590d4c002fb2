package rawlist

import (
	"encoding/binary"
	"math"
)

// Uint64Width is the width of elements produced by EncodeUint64 and EncodeInt64.
var Uint64Width = binary.Size(uint64(0))

// EncodeUint64 returns v as an 8 byte little endian element.
func EncodeUint64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, Uint64Width), v)
}

// DecodeUint64 reads an element written by EncodeUint64.
func DecodeUint64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// EncodeInt64 returns v as an 8 byte little endian element.
func EncodeInt64(v int64) []byte {
	return EncodeUint64(uint64(v))
}

// DecodeInt64 reads an element written by EncodeInt64.
func DecodeInt64(b []byte) int64 {
	return int64(DecodeUint64(b))
}

// EncodeFloat64 returns the IEEE 754 bits of v as an 8 byte element.
func EncodeFloat64(v float64) []byte {
	return EncodeUint64(math.Float64bits(v))
}

// DecodeFloat64 reads an element written by EncodeFloat64.
func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(DecodeUint64(b))
}
