package bvis

import (
	"testing"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompress_SkipRun(t *testing.T) {
	result, overrun, err := Decompress([]byte{0x00, 0x02, 0xFF}, 16)
	require.NoError(t, err)
	assert.False(t, overrun)
	assert.Equal(t, make([]bool, 16), result)
}

func TestDecompress_Literals(t *testing.T) {
	// 0x05 = clusters 0 and 2, then skip 8, then 0x81 = clusters 16 and 23
	result, overrun, err := Decompress([]byte{0x05, 0x00, 0x01, 0x81}, 24)
	require.NoError(t, err)
	assert.False(t, overrun)
	visible := lo.Filter(
		lo.Range(24),
		func(i int, _ int) bool {
			return result[i]
		},
	)
	assert.Equal(t, []int{0, 2, 16, 23}, visible)
}

func TestDecompress_TailOverrun(t *testing.T) {
	result, overrun, err := Decompress([]byte{0xFF, 0xFF}, 12)
	require.NoError(t, err)
	assert.True(t, overrun)
	assert.Len(t, result, 12)
	assert.True(t, lo.EveryBy(result, func(b bool) bool { return b }))
}

func TestDecompress_ShortInput(t *testing.T) {
	_, _, err := Decompress([]byte{0x01}, 16)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	_, _, err = Decompress([]byte{0x00}, 16)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
}

func TestDecode(t *testing.T) {
	// two clusters: both see each other, only cluster 1 hears cluster 0
	lump := bsptest.Concat(
		bsptest.Ints(2),
		bsptest.Ints(20, 22),
		bsptest.Ints(21, 23),
		[]byte{0x03, 0x03, 0x00, 0x01},
	)
	builder := bsptest.NewVBSP().Lump(4, lump)
	bs := builder.Build()
	reader := lbytes.NewBytesReader(bs)
	entry := bheader.LumpEntry{
		Offset: uint32(builder.OffsetOf(4)),
		Length: uint32(len(lump)),
		Index:  4,
	}
	require.NoError(t, reader.SeekTo(int64(entry.Offset)))

	table, err := Decode(reader, entry)
	require.NoError(t, err)
	assert.Equal(t, int32(2), table.NumClusters)
	assert.Equal(t, [][2]int32{{20, 22}, {21, 23}}, table.ByteOffsets)
	assert.Equal(t, []int{0, 1}, table.Visible(0))
	assert.Equal(t, []int{0, 1}, table.Visible(1))
	assert.Equal(t, []int{}, table.Audible(0))
	assert.Equal(t, []int{0}, table.Audible(1))
	assert.Equal(t, 3, table.Overruns)
	assert.Equal(t, entry.End(), reader.Position())
}

func TestDecode_Empty(t *testing.T) {
	table, err := Decode(lbytes.NewBytesReader(nil), bheader.LumpEntry{Index: 4})
	require.NoError(t, err)
	assert.Equal(t, int32(0), table.NumClusters)
	assert.Nil(t, table.PVS)
}

func TestDecode_InvalidClusterCount(t *testing.T) {
	testCases := []struct {
		name string
		lump []byte
	}{
		{"count beyond the file", bsptest.Concat(bsptest.Ints(0x7FFFFFFF), bsptest.Ints(12, 12))},
		{"negative count", bsptest.Concat(bsptest.Ints(-1), bsptest.Ints(12, 12))},
		{"offsets past the lump", bsptest.Ints(2, 12, 12)},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			// trailing bytes belong to whatever follows the lump
			bs := bsptest.Concat(testCase.lump, make([]byte, 16))
			entry := bheader.LumpEntry{Length: uint32(len(testCase.lump)), Index: 4}

			_, err := Decode(lbytes.NewBytesReader(bs), entry)
			require.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
		})
	}
}
