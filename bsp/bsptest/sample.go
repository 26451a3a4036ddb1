package bsptest

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
)

const (
	SampleEntities = "{\n\"classname\" \"worldspawn\"\n\"mapversion\" \"1\"\n}\n" +
		"{\n\"classname\" \"light\"\n\"_light\" \"255 255 255 200\"\n}\n\u0000"
	SamplePropModel   = "models/props/crate.mdl"
	SampleMapRevision = 7
)

// SampleVisibility holds two clusters that see and hear each other.
func SampleVisibility() []byte {
	const dataOffset = 4 + 2*8
	return Concat(
		Ints(2),
		Ints(dataOffset, dataOffset),
		Ints(dataOffset, dataOffset),
		[]byte{0x03},
	)
}

// SampleGameLump builds a game lump with a static prop sub-lump and one
// unknown sub-lump. offset is where the game lump itself will be written.
func SampleGameLump(offset int) []byte {
	props := Concat(
		Ints(1),
		lbytes.EncodePaddedString(SamplePropModel, 128),
		Ints(1),
		Shorts(0),
		Ints(0),
	)
	return Concat(
		Ints(2),
		[]byte("prps"), Shorts(0, 10), Ints(offset+4+2*16, len(props)),
		[]byte("prdd"), Shorts(0, 4), Ints(0, 0),
		props,
	)
}

// SampleVBSP returns a small but complete VBSP file: every decoder with a
// payload is fed something and a few lumps stay unparsed.
func SampleVBSP() *Builder {
	b := NewVBSP().MapRevision(SampleMapRevision)
	b.Lump(0, []byte(SampleEntities))
	b.Lump(1, Concat(Floats(0, 0, 1, 0), Ints(2), Floats(1, 0, 0, 64), Ints(0)))
	b.Lump(3, Floats(0, 0, 0, 64, 0, 0, 64, 64, 0))
	b.Lump(4, SampleVisibility())
	b.LumpVersion(10, 1, Concat(
		Ints(0),
		Shorts(0, 0),
		Shorts(-64, -64, -64, 64, 64, 64),
		Shorts(0, 0, 0, 0, -1),
		Shorts(0),
	))
	b.Lump(12, Shorts(0, 1, 1, 2, 2, 0))
	b.Lump(13, Ints(1, -2, 3))
	b.Lump(15, make([]byte, 88))
	b.Lump(29, Ints(-1, 0, 0, 0))
	b.Lump(35, SampleGameLump(b.OffsetOf(35)))
	b.Lump(40, []byte("PK\u0005\u0006"+string(make([]byte, 18))))
	b.Lump(43, Concat(lbytes.EncodeCString("TOOLS/TOOLSNODRAW"), lbytes.EncodeCString("DEV/DEV_MEASUREGENERIC01")))
	b.Lump(44, Ints(0, 18))
	return b
}

// SampleGoldSrc returns a GoldSrc file with entities, planes and a
// texture directory.
func SampleGoldSrc() *Builder {
	b := New(bheader.MagicGoldSrc)
	b.Lump(0, []byte(SampleEntities))
	b.Lump(1, Concat(Floats(0, 0, 1, 0), Ints(2)))
	b.Lump(2, Concat(
		Ints(2, 12, -1),
		lbytes.EncodePaddedString("+0button", 16),
		Ints(16, 16, 40, 296, 360, 376),
	))
	b.Lump(12, Shorts(0, 1))
	return b
}
