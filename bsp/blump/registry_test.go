package blump

import (
	"testing"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Len(t, Registry(bheader.DialectVBSP), bheader.LumpCountVBSP)
	assert.Len(t, Registry(bheader.DialectQuake), bheader.LumpCountLegacy)
	assert.Len(t, Registry(bheader.DialectGoldSrc), bheader.LumpCountLegacy)

	unparsed := lo.Filter(
		lo.Range(bheader.LumpCountVBSP),
		func(index int, _ int) bool {
			return VBSPRegistry[index].Decode == nil
		},
	)
	assert.Equal(
		t,
		[]int{15, 22, 23, 24, 25, 32, 36, 49, 50, 54, 57, 59, 60, 61, 62, 63},
		unparsed,
	)

	assert.Equal(t, "LUMP_GAME_LUMP", Name(bheader.DialectVBSP, LumpGameLump))
	assert.Equal(t, "LUMP_CLIPNODES", Name(bheader.DialectQuake, 9))
	assert.Equal(t, "LUMP_UNKNOWN", Name(bheader.DialectQuake, 15))
}

func TestRegistry_EmptyLumps(t *testing.T) {
	// every decoder accepts an empty lump
	for index, binding := range VBSPRegistry {
		entry := bheader.LumpEntry{Index: index}
		lump, err := Decode(lbytes.NewBytesReader(nil), bheader.DialectVBSP, binding, entry)
		require.NoErrorf(t, err, binding.Name)
		assert.NotNilf(t, lump, binding.Name)
	}
	for index, binding := range LegacyRegistry {
		entry := bheader.LumpEntry{Index: index}
		lump, err := Decode(lbytes.NewBytesReader(nil), bheader.DialectQuake, binding, entry)
		require.NoErrorf(t, err, binding.Name)
		assert.NotNilf(t, lump, binding.Name)
	}
}

func TestDecodeAll(t *testing.T) {
	b := bsptest.NewVBSP()
	b.Lump(LumpEntities, []byte("{\n\"classname\" \"worldspawn\"\n}\n\u0000"))
	b.Lump(1, bsptest.Concat(bsptest.Floats(0, 0, 1, 0), bsptest.Ints(2)))
	b.Lump(12, bsptest.Shorts(0, 1, 1, 2))
	b.Lump(15, make([]byte, 88))
	bs := b.Build()

	reader := lbytes.NewBytesReader(bs)
	header, err := bheader.Decode(reader)
	require.NoError(t, err)
	lumps, err := DecodeAll(reader, *header)
	require.NoError(t, err)
	require.Len(t, lumps, bheader.LumpCountVBSP)

	assert.Equal(t, KindEntities, lumps[0].Kind())
	assert.Equal(t, Planes{{Normal: lbytes.Vector{Z: 1}, Type: 2}}, lumps[1])
	assert.Equal(t, Edges{{0, 1}, {1, 2}}, lumps[12])
	assert.Equal(t, Unparsed{Index: 15, Offset: uint32(b.OffsetOf(15)), Length: 88}, lumps[15])
	assert.Empty(t, lumps[7].(Faces))
}

func TestDecodeAll_ErrorCarriesIndex(t *testing.T) {
	b := bsptest.NewVBSP()
	b.Lump(3, make([]byte, 13))
	bs := b.Build()

	reader := lbytes.NewBytesReader(bs)
	header, err := bheader.Decode(reader)
	require.NoError(t, err)
	_, err = DecodeAll(reader, *header)
	var decodeErr DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 3, decodeErr.Lump)
	assert.Equal(t, int64(b.OffsetOf(3)+12), decodeErr.Offset)
}
