package bphys

import (
	"testing"

	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keyData = "solid {\n\"index\" \"0\"\n\"mass\" \"25.0\"\n}\n\u0000"

var sentinel = bsptest.Ints(-1, 0, 0, 0)

func decode(t *testing.T, lump []byte) ([]Model, error) {
	t.Helper()
	return Decode(lbytes.NewBytesReader(lump), bheader.LumpEntry{Length: uint32(len(lump))})
}

func solid(id int, modelType int, surfaceHeader []byte, payload []byte) []byte {
	return bsptest.Concat(
		bsptest.Ints(len(surfaceHeader)+len(payload)+4, id),
		bsptest.Shorts(1, modelType),
		surfaceHeader,
		payload,
	)
}

func TestDecode(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	lump := bsptest.Concat(
		bsptest.Ints(0, 64, len(keyData), 2),
		solid(
			7,
			ModelTypeCompact,
			bsptest.Concat(bsptest.Ints(len(payload)), bsptest.Floats(1, 2, 3), bsptest.Ints(0)),
			payload,
		),
		solid(8, ModelTypeMopp, bsptest.Ints(2), []byte{1, 2}),
		[]byte(keyData),
		sentinel,
	)

	models, err := decode(t, lump)
	require.NoError(t, err)
	require.Len(t, models, 1)

	model := models[0]
	assert.Equal(t, ModelHeader{ModelIndex: 0, DataSize: 64, KeyDataSize: int32(len(keyData)), SolidCount: 2}, model.ModelHeader)
	require.Len(t, model.Solids, 2)

	assert.Equal(t, int32(7), model.Solids[0].Header.ID)
	assert.Equal(
		t,
		CompactSurfaceHeader{
			SurfaceSize:   4,
			DragAxisAreas: lbytes.Vector{X: 1, Y: 2, Z: 3},
			AxisMapSize:   0,
		},
		model.Solids[0].SurfaceHeader,
	)
	assert.Equal(t, payload, model.Solids[0].Data)

	assert.Equal(t, MoppSurfaceHeader{Size: 2}, model.Solids[1].SurfaceHeader)
	assert.Equal(t, []byte{1, 2}, model.Solids[1].Data)

	assert.Equal(
		t,
		[]bentity.KeyValueObject{
			{
				Name:  "solid",
				Pairs: []bentity.Pair{{Key: "index", Value: "0"}, {Key: "mass", Value: "25.0"}},
			},
		},
		model.KeyData,
	)
}

func TestDecode_UnknownModelType(t *testing.T) {
	lump := bsptest.Concat(
		bsptest.Ints(3, 0, 0, 1),
		solid(1, 9, bsptest.Ints(3), []byte{1, 2, 3}),
		sentinel,
	)
	models, err := decode(t, lump)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, UnknownSurfaceHeader{ModelType: 9, Size: 3}, models[0].Solids[0].SurfaceHeader)
	assert.Equal(t, []byte{1, 2, 3}, models[0].Solids[0].Data)
	assert.Empty(t, models[0].KeyData)
}

func TestDecode_SentinelFirst(t *testing.T) {
	// whatever follows the sentinel is never looked at
	lump := bsptest.Concat(sentinel, make([]byte, 128))
	models, err := decode(t, lump)
	require.NoError(t, err)
	assert.Empty(t, models)
}

func TestDecode_Failures(t *testing.T) {
	// payload size past the end of the lump
	lump := bsptest.Concat(
		bsptest.Ints(0, 0, 0, 1),
		solid(1, ModelTypeMopp, bsptest.Ints(1000), nil),
	)
	_, err := decode(t, lump)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	// broken key data
	text := "\"index\" \"0\"\n"
	lump = bsptest.Concat(
		bsptest.Ints(0, 0, len(text), 0),
		[]byte(text),
		sentinel,
	)
	_, err = decode(t, lump)
	assert.ErrorAs(t, err, &lbytes.ErrMalformedText{})
}

func TestDecode_InvalidSizes(t *testing.T) {
	// negative payload size
	lump := bsptest.Concat(
		bsptest.Ints(0, 64, 0, 1),
		bsptest.Ints(8, 1),
		bsptest.Shorts(1, ModelTypeMopp),
		bsptest.Ints(-5),
		sentinel,
	)
	_, err := decode(t, lump)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	// solid count far beyond what the lump can hold
	lump = bsptest.Concat(
		bsptest.Ints(0, 64, 0, 0x7FFFFFFF),
		make([]byte, 32),
	)
	_, err = decode(t, lump)
	var oob lbytes.ErrOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, int64(0x7FFFFFFF)*SizeMinSolid, oob.Want)

	// negative solid count
	lump = bsptest.Concat(bsptest.Ints(0, 64, 0, -1), sentinel)
	_, err = decode(t, lump)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	// negative key data size
	lump = bsptest.Concat(bsptest.Ints(0, 64, -3, 0), sentinel)
	_, err = decode(t, lump)
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
}
