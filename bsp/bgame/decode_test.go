package bgame

import (
	"testing"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bsptest"
	"bsp-dump/bsp/lbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptorBytes(id string, version int, offset int, length int) []byte {
	return bsptest.Concat(
		[]byte(id),
		bsptest.Shorts(0, version),
		bsptest.Ints(offset, length),
	)
}

func TestDescriptor_Tag(t *testing.T) {
	descriptor := Descriptor{ID: []byte("prps")}
	assert.Equal(t, "sprp", descriptor.Tag())
	assert.True(t, descriptor.IsStaticProps())

	descriptor = Descriptor{ID: []byte("sprp")}
	assert.False(t, descriptor.IsStaticProps())
}

func TestDecode(t *testing.T) {
	const lumpOffset = 100
	const propsOffset = lumpOffset + 4 + 2*SizeDescriptor
	props := bsptest.Concat(
		bsptest.Ints(1),
		lbytes.EncodePaddedString("models/foo.mdl", SizeStaticPropName),
		bsptest.Ints(2),
		bsptest.Shorts(7, 9),
		bsptest.Ints(5),
	)
	lump := bsptest.Concat(
		bsptest.Ints(2),
		descriptorBytes("prps", 10, propsOffset, len(props)),
		descriptorBytes("prdd", 4, 0, 0),
		props,
	)
	bs := append(make([]byte, lumpOffset), lump...)

	reader := lbytes.NewBytesReader(bs)
	require.NoError(t, reader.SeekTo(lumpOffset))
	gameLump, err := Decode(reader, bheader.LumpEntry{Offset: lumpOffset, Length: uint32(len(lump))})
	require.NoError(t, err)

	require.Len(t, gameLump.Descriptors, 2)
	assert.Equal(t, uint16(10), gameLump.Descriptors[0].Version)
	assert.Equal(t, int32(propsOffset), gameLump.Descriptors[0].FileOffset)
	assert.Equal(t, int32(len(props)), gameLump.Descriptors[0].FileLength)
	assert.Equal(
		t,
		[]Data{
			StaticProps{
				Dictionary:    []string{"models/foo.mdl"},
				Leaves:        []uint16{7, 9},
				InstanceCount: 5,
			},
			Unparsed{ID: "ddrp"},
		},
		gameLump.Data,
	)
}

func TestDecode_Empty(t *testing.T) {
	gameLump, err := Decode(lbytes.NewBytesReader(nil), bheader.LumpEntry{})
	require.NoError(t, err)
	assert.Empty(t, gameLump.Descriptors)
	assert.Empty(t, gameLump.Data)
}

func TestDecode_Failures(t *testing.T) {
	// the static prop sub-lump points past the end of the file
	lump := bsptest.Concat(
		bsptest.Ints(1),
		descriptorBytes("prps", 10, 4096, 12),
	)
	_, err := Decode(lbytes.NewBytesReader(lump), bheader.LumpEntry{Length: uint32(len(lump))})
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})

	// the count promises more descriptors than the file holds
	lump = bsptest.Ints(3)
	_, err = Decode(lbytes.NewBytesReader(lump), bheader.LumpEntry{Length: uint32(len(lump))})
	assert.ErrorAs(t, err, &lbytes.ErrOutOfBounds{})
}
