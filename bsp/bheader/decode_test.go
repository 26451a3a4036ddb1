package bheader_test

import (
	"testing"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	expectedValues := map[uint32]bheader.Dialect{
		bheader.MagicVBSP:    bheader.DialectVBSP,
		bheader.MagicGoldSrc: bheader.DialectGoldSrc,
		bheader.MagicQuake:   bheader.DialectQuake,
	}
	for magic, dialect := range expectedValues {
		descriptor, err := bheader.Detect(magic)
		require.NoError(t, err)
		assert.Equal(t, dialect, descriptor.Dialect)
	}

	for _, magic := range []uint32{0, 0x4C5A4D41, 0x56425350, 38} {
		_, err := bheader.Detect(magic)
		var unsupported bheader.ErrUnsupportedFormat
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, magic, unsupported.Magic)
	}
}

func TestIsValidMagicNumber(t *testing.T) {
	assert.True(t, bheader.IsValidMagicNumber([]byte("VBSP")))
	assert.True(t, bheader.IsValidMagicNumber([]byte{30, 0, 0, 0}))
	assert.False(t, bheader.IsValidMagicNumber([]byte("IBSP")))
	assert.False(t, bheader.IsValidMagicNumber([]byte("VB")))
}

func TestDecode_VBSPDirectory(t *testing.T) {
	builder := bsptest.NewVBSP().MapRevision(4127)
	for i := 0; i < bheader.LumpCountVBSP; i += 3 {
		builder.LumpVersion(i, uint32(i%2), make([]byte, 4*(i+1)))
	}
	builder.LumpIdent(9, []byte{1, 2, 3, 4})
	bs := builder.Build()

	header, err := bheader.Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, bheader.DialectVBSP, header.Dialect)
	assert.Equal(t, bheader.MagicVBSP, header.Magic)
	assert.Equal(t, int32(20), header.Version)
	assert.Equal(t, int32(4127), header.MapRevision)
	require.Len(t, header.Lumps, bheader.LumpCountVBSP)

	lo.ForEach(
		header.Lumps,
		func(entry bheader.LumpEntry, i int) {
			assert.Equal(t, i, entry.Index)
			if i%3 != 0 {
				assert.Equal(t, uint32(0), entry.Offset)
				assert.Equal(t, uint32(0), entry.Length)
				return
			}
			assert.Equal(t, uint32(builder.OffsetOf(i)), entry.Offset)
			assert.Equal(t, uint32(4*(i+1)), entry.Length)
			assert.Equal(t, uint32(i%2), entry.Version)
		},
	)
	assert.Equal(t, []byte{1, 2, 3, 4}, header.Lumps[9].Ident)
	assert.Equal(t, []byte{0, 0, 0, 0}, header.Lumps[12].Ident)
}

func TestDecode_LegacyDirectory(t *testing.T) {
	for _, magic := range []uint32{bheader.MagicGoldSrc, bheader.MagicQuake} {
		builder := bsptest.New(magic).Lump(1, make([]byte, 20)).Lump(14, make([]byte, 64))
		reader := lbytes.NewBytesReader(builder.Build())

		header, err := bheader.Decode(reader)
		require.NoError(t, err)
		assert.Equal(t, int32(magic), header.Version)
		assert.Equal(t, int32(0), header.MapRevision)
		require.Len(t, header.Lumps, bheader.LumpCountLegacy)
		assert.Equal(t, int64(builder.HeaderSize()), reader.Position())
		assert.Equal(t, uint32(builder.OffsetOf(14)), header.Lumps[14].Offset)
		assert.Equal(t, uint32(64), header.Lumps[14].Length)
		assert.Equal(t, 14, header.Lumps[14].Index)
		assert.Equal(t, uint32(0), header.Lumps[14].Version)
	}
}

func TestDecode_Failures(t *testing.T) {
	_, err := bheader.Decode(lbytes.NewBytesReader([]byte("IBSP&\u0000\u0000\u0000")))
	assert.ErrorAs(t, err, &bheader.ErrUnsupportedFormat{})

	truncated := bsptest.NewVBSP().Build()[:100]
	_, err = bheader.Decode(lbytes.NewBytesReader(truncated))
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	_, err = bheader.Decode(lbytes.NewBytesReader([]byte{1}))
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
}
