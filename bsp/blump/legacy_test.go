package blump

import (
	"testing"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLegacy(t *testing.T, index int, data []byte) (Lump, error) {
	t.Helper()
	entry := bheader.LumpEntry{
		Length: uint32(len(data)),
		Index:  index,
	}
	return Decode(lbytes.NewBytesReader(data), bheader.DialectGoldSrc, LegacyRegistry[index], entry)
}

func TestDecode_MipTextures(t *testing.T) {
	const firstOffset = 4 + 2*4
	data := bsptest.Concat(
		bsptest.Ints(2, firstOffset, MissingMipTexture),
		lbytes.EncodePaddedString("+0button", SizeMipTextureName),
		bsptest.Ints(64, 32, 40, 2088, 2600, 2728),
	)
	lump, err := decodeLegacy(t, 2, data)
	require.NoError(t, err)
	assert.Equal(
		t,
		MipTextures{
			{Name: "+0button", Width: 64, Height: 32, Offsets: [4]uint32{40, 2088, 2600, 2728}},
			{Missing: true},
		},
		lump,
	)

	// offset past the end of the lump
	data = bsptest.Concat(bsptest.Ints(1, 400), make([]byte, 40))
	_, err = decodeLegacy(t, 2, data)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
}

func TestDecode_LegacyRecords(t *testing.T) {
	data := bsptest.Concat(
		bsptest.Ints(1, 7),
		bsptest.Shorts(-8, -8, -8, 8, 8, 8),
		bsptest.Shorts(4, 2),
		[]byte{0, 0, 255, 255},
	)
	lump, err := decodeLegacy(t, 10, data)
	require.NoError(t, err)
	assert.Equal(
		t,
		LegacyLeafs{{
			Contents:         1,
			VisOffset:        7,
			Mins:             [3]int16{-8, -8, -8},
			Maxs:             [3]int16{8, 8, 8},
			FirstMarkSurface: 4,
			NumMarkSurfaces:  2,
			AmbientLevels:    [4]uint8{0, 0, 255, 255},
		}},
		lump,
	)

	lump, err = decodeLegacy(t, 11, bsptest.Shorts(3, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, MarkSurfaces{3, 1, 4}, lump)

	// legacy visibility stays unparsed
	lump, err = decodeLegacy(t, 4, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, KindUnparsed, lump.Kind())
}

func TestDecode_LegacyNeverDecompressed(t *testing.T) {
	// an edge list that happens to start with the LZMA id
	data := bsptest.Concat([]byte("LZMA"), make([]byte, 16))
	lump, err := decodeLegacy(t, 12, data)
	require.NoError(t, err)
	assert.Len(t, lump.(Edges), 5)
}
