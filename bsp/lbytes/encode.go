package lbytes

import (
	"encoding/binary"
	"math"
)

// The encoders below produce the little-endian layouts the reader consumes.
// They exist for building synthetic files in tests; the decoder never writes.

func EncodeValueInt(value any) []byte {
	valueUInt32 := uint32(0)
	switch v := value.(type) {
	case int:
		valueUInt32 = uint32(v)
	case uint32:
		valueUInt32 = v
	case int32:
		valueUInt32 = uint32(v)
	case float32:
		valueUInt32 = math.Float32bits(v)
	}
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, valueUInt32)
	return bs
}

func EncodeValueShort(value any) []byte {
	valueUInt16 := uint16(0)
	switch v := value.(type) {
	case int:
		valueUInt16 = uint16(v)
	case uint16:
		valueUInt16 = v
	case int16:
		valueUInt16 = uint16(v)
	}
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, valueUInt16)
	return bs
}

func EncodeVector(v Vector) []byte {
	bs := make([]byte, 0, SizeVector)
	bs = append(bs, EncodeValueInt(v.X)...)
	bs = append(bs, EncodeValueInt(v.Y)...)
	bs = append(bs, EncodeValueInt(v.Z)...)
	return bs
}

func EncodeCString(s string) []byte {
	bs := make([]byte, 0, len(s)+1)
	bs = append(bs, s...)
	bs = append(bs, '\u0000')
	return bs
}

// EncodePaddedString writes s into a zero padded slot of n bytes.
func EncodePaddedString(s string, n int) []byte {
	bs := make([]byte, n)
	copy(bs, s)
	return bs
}
