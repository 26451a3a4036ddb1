package bheader

import (
	"fmt"
)

type (
	Dialect string
	// DialectDescriptor describes the header shape a magic value selects.
	DialectDescriptor struct {
		Dialect        Dialect
		Magic          uint32
		LumpCount      int
		HasLumpVersion bool
		HasMapRevision bool
	}
	Header struct {
		Dialect     Dialect     `json:"dialect"`
		Magic       uint32      `json:"magic"`
		Version     int32       `json:"version"`
		MapRevision int32       `json:"map_revision"`
		Lumps       []LumpEntry `json:"lumps"`
	}
	LumpEntry struct {
		Offset  uint32 `json:"offset"`
		Length  uint32 `json:"length"`
		Version uint32 `json:"version"`
		Ident   []byte `json:"ident"`
		// Index is not stored in the file, it is the position inside the directory.
		Index int `json:"index"`
	}
	ErrUnsupportedFormat struct {
		Magic uint32
	}
)

const (
	DialectVBSP    = Dialect("vbsp")
	DialectGoldSrc = Dialect("goldsrc")
	DialectQuake   = Dialect("quake")
)

const (
	MagicVBSP    = uint32(0x50534256) // "VBSP"
	MagicGoldSrc = uint32(30)
	MagicQuake   = uint32(29)

	LumpCountVBSP   = 64
	LumpCountLegacy = 15

	DefaultEntrySizeVBSP   = 16
	DefaultEntrySizeLegacy = 8
)

var Dialects = []DialectDescriptor{
	{
		Dialect:        DialectVBSP,
		Magic:          MagicVBSP,
		LumpCount:      LumpCountVBSP,
		HasLumpVersion: true,
		HasMapRevision: true,
	},
	{
		Dialect:   DialectGoldSrc,
		Magic:     MagicGoldSrc,
		LumpCount: LumpCountLegacy,
	},
	{
		Dialect:   DialectQuake,
		Magic:     MagicQuake,
		LumpCount: LumpCountLegacy,
	},
}

func (r ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: unknown magic number 0x%08X", r.Magic)
}

// End returns the offset one past the last byte of the lump.
func (r LumpEntry) End() int64 {
	return int64(r.Offset) + int64(r.Length)
}

// Entry returns the directory entry at index, or a zero entry carrying only the index.
func (r Header) Entry(index int) LumpEntry {
	if index < 0 || index >= len(r.Lumps) {
		return LumpEntry{Index: index}
	}
	return r.Lumps[index]
}
