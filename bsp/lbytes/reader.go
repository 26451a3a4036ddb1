package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) Position() int64 {
	return b.Size() - int64(b.Len())
}

func (b *Reader) outOfBounds(n int64) error {
	return ErrOutOfBounds{
		Offset:    b.Position(),
		Want:      n,
		Remaining: int64(b.Len()),
	}
}

// SeekTo moves to an absolute position. Seeking to the very end is allowed.
func (b *Reader) SeekTo(position int64) error {
	if position < 0 || position > b.Size() {
		return ErrOutOfBounds{
			Offset:    position,
			Want:      0,
			Remaining: 0,
		}
	}
	_, err := b.Reader.Seek(position, io.SeekStart)
	return err
}

func (b *Reader) Skip(n int64) error {
	return b.SeekTo(b.Position() + n)
}

// ReadBytes copies the next n bytes. n comes straight from file data in most
// callers, so it is checked before anything is allocated.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, b.outOfBounds(int64(n))
	}
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := b.Read(bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadByte() (byte, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadSignedByte() (int8, error) {
	result, err := b.ReadByte()
	return int8(result), err
}

func (b *Reader) ReadUShort() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadShort() (int16, error) {
	result, err := b.ReadUShort()
	return int16(result), err
}

func (b *Reader) ReadUInt() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt() (int32, error) {
	result, err := b.ReadUInt()
	return int32(result), err
}

func (b *Reader) ReadFloat() (float32, error) {
	result, err := b.ReadUInt()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(result), nil
}

func (b *Reader) ReadVector() (Vector, error) {
	if b.Len() < SizeVector {
		return Vector{}, b.outOfBounds(SizeVector)
	}
	v := Vector{}
	// the length check above guarantees the three reads succeed
	v.X, _ = b.ReadFloat()
	v.Y, _ = b.ReadFloat()
	v.Z, _ = b.ReadFloat()
	return v, nil
}

// ReadCString reads up to the next zero byte and consumes it.
// The zero byte is not part of the result.
func (b *Reader) ReadCString() (string, error) {
	return b.ReadCStringBefore(b.Size())
}

// ReadCStringBefore is ReadCString with the zero byte required to sit before
// the absolute position end, usually the end of the lump being read.
func (b *Reader) ReadCStringBefore(end int64) (string, error) {
	start := b.Position()
	if end > b.Size() {
		end = b.Size()
	}
	bs := make([]byte, 0, 64)
	for {
		c, err := byte(0), io.EOF
		if b.Position() < end {
			c, err = b.Reader.ReadByte()
		}
		if err != nil {
			_ = b.SeekTo(start)
			return "", ErrOutOfBounds{
				Offset:    start,
				Want:      int64(len(bs) + 1),
				Remaining: int64(len(bs)),
			}
		}
		if c == 0 {
			break
		}
		bs = append(bs, c)
	}
	if !utf8.Valid(bs) {
		_ = b.SeekTo(start)
		return "", ErrMalformedText{
			Offset: start,
			Reason: "invalid UTF-8",
		}
	}
	return string(bs), nil
}

// ReadString reads exactly n bytes and returns the text before the first zero byte.
func (b *Reader) ReadString(n int) (string, error) {
	start := b.Position()
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(bs, 0); i >= 0 {
		bs = bs[:i]
	}
	if !utf8.Valid(bs) {
		_ = b.SeekTo(start)
		return "", ErrMalformedText{
			Offset: start,
			Reason: "invalid UTF-8",
		}
	}
	return string(bs), nil
}

// ReadRecord fills the fixed-size value v points to, field by field.
func (b *Reader) ReadRecord(v any) error {
	size := binary.Size(v)
	if size < 0 {
		return errors.Errorf("lbytes.ReadRecord error: %T has no fixed size", v)
	}
	if size > b.Len() {
		return b.outOfBounds(int64(size))
	}
	return binary.Read(&b.Reader, binary.LittleEndian, v)
}

// ReadCount reads a signed 32-bit element count and checks that count elements
// of elementSize bytes can still follow.
func (b *Reader) ReadCount(elementSize int) (int, error) {
	count, err := b.ReadInt()
	if err != nil {
		return 0, err
	}
	if count < 0 || int64(count)*int64(elementSize) > int64(b.Len()) {
		err := ErrOutOfBounds{
			Offset:    b.Position(),
			Want:      int64(count) * int64(elementSize),
			Remaining: int64(b.Len()),
		}
		_ = b.Skip(-4)
		return 0, err
	}
	return int(count), nil
}
