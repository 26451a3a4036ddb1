package blump

import (
	"bytes"
	"encoding/binary"
	"io"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"bsp-dump/ds"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/ulikunitz/xz/lzma"
)

const (
	LumpEntities    = 0
	LumpVisibility  = 4
	LumpLeafs       = 10
	LumpPhysCollide = 29
	LumpGameLump    = 35
	LumpPakFile     = 40

	// "LZMA" read as a little-endian integer
	LZMAID             = 0x414D5A4C
	SizeLZMAHeader     = 4 + 4 + 4 + 5
	sizeLZMAProperties = 5
)

// VBSPRegistry binds every VBSP directory index.
var VBSPRegistry = [bheader.LumpCountVBSP]Binding{
	{"LUMP_ENTITIES", decodeEntities},
	{"LUMP_PLANES", records[Plane, Planes]()},
	{"LUMP_TEXDATA", records[TexData, TexDataLump]()},
	{"LUMP_VERTEXES", records[lbytes.Vector, Vertexes]()},
	{"LUMP_VISIBILITY", decodeVisibility},
	{"LUMP_NODES", records[Node, Nodes]()},
	{"LUMP_TEXINFO", records[TexInfo, TexInfos]()},
	{"LUMP_FACES", records[Face, Faces]()},
	{"LUMP_LIGHTING", records[ColorRGBExp32, Lighting]()},
	{"LUMP_OCCLUSION", decodeOcclusion},
	{"LUMP_LEAFS", decodeLeafs},
	{"LUMP_FACEIDS", records[uint16, FaceIDs]()},
	{"LUMP_EDGES", records[Edge, Edges]()},
	{"LUMP_SURFEDGES", records[int32, SurfEdges]()},
	{"LUMP_MODELS", records[Model, Models]()},
	{"LUMP_WORLDLIGHTS", nil},
	{"LUMP_LEAFFACES", records[uint16, LeafFaces]()},
	{"LUMP_LEAFBRUSHES", records[uint16, LeafBrushes]()},
	{"LUMP_BRUSHES", records[Brush, Brushes]()},
	{"LUMP_BRUSHSIDES", records[BrushSide, BrushSides]()},
	{"LUMP_AREAS", records[Area, Areas]()},
	{"LUMP_AREAPORTALS", records[AreaPortal, AreaPortals]()},
	{"LUMP_UNUSED0", nil},
	{"LUMP_UNUSED1", nil},
	{"LUMP_UNUSED2", nil},
	{"LUMP_UNUSED3", nil},
	{"LUMP_DISPINFO", records[DispInfo, DispInfos]()},
	{"LUMP_ORIGINALFACES", records[Face, OriginalFaces]()},
	{"LUMP_PHYSDISP", decodePhysDisp},
	{"LUMP_PHYSCOLLIDE", decodePhysCollide},
	{"LUMP_VERTNORMALS", records[lbytes.Vector, VertNormals]()},
	{"LUMP_VERTNORMALINDICES", records[uint16, VertNormalIndices]()},
	{"LUMP_DISP_LIGHTMAP_ALPHAS", nil},
	{"LUMP_DISP_VERTS", records[DispVert, DispVerts]()},
	{"LUMP_DISP_LIGHTMAP_SAMPLE_POSITIONS", records[uint8, DispLightmapSamplePositions]()},
	{"LUMP_GAME_LUMP", decodeGameLump},
	{"LUMP_LEAFWATERDATA", nil},
	{"LUMP_PRIMITIVES", records[Primitive, Primitives]()},
	{"LUMP_PRIMVERTS", records[lbytes.Vector, PrimVerts]()},
	{"LUMP_PRIMINDICES", records[uint16, PrimIndices]()},
	{"LUMP_PAKFILE", decodePakFile},
	{"LUMP_CLIPPORTALVERTS", records[lbytes.Vector, ClipPortalVerts]()},
	{"LUMP_CUBEMAPS", records[CubemapSample, Cubemaps]()},
	{"LUMP_TEXDATA_STRING_DATA", decodeTexDataStringData},
	{"LUMP_TEXDATA_STRING_TABLE", records[uint32, TexDataStringTable]()},
	{"LUMP_OVERLAYS", records[Overlay, Overlays]()},
	{"LUMP_LEAFMINDISTTOWATER", records[uint16, LeafMinDistToWater]()},
	{"LUMP_FACE_MACRO_TEXTURE_INFO", records[uint16, FaceMacroTextureInfo]()},
	{"LUMP_DISP_TRIS", records[uint16, DispTris]()},
	{"LUMP_PHYSCOLLIDESURFACE", nil},
	{"LUMP_WATEROVERLAYS", nil},
	{"LUMP_LEAF_AMBIENT_INDEX_HDR", records[LeafAmbientIndexEntry, LeafAmbientIndexHDR]()},
	{"LUMP_LEAF_AMBIENT_INDEX", records[LeafAmbientIndexEntry, LeafAmbientIndex]()},
	{"LUMP_LIGHTING_HDR", records[ColorRGBExp32, LightingHDR]()},
	{"LUMP_WORLDLIGHTS_HDR", nil},
	{"LUMP_LEAF_AMBIENT_LIGHTING_HDR", records[LeafAmbientSample, LeafAmbientLightingHDR]()},
	{"LUMP_LEAF_AMBIENT_LIGHTING", records[LeafAmbientSample, LeafAmbientLighting]()},
	{"LUMP_XZIPPAKFILE", nil},
	{"LUMP_FACES_HDR", records[Face, FacesHDR]()},
	{"LUMP_MAP_FLAGS", nil},
	{"LUMP_OVERLAY_FADES", nil},
	{"LUMP_OVERLAY_SYSTEM_LEVELS", nil},
	{"LUMP_PHYSLEVEL", nil},
	{"LUMP_DISP_MULTIBLEND", nil},
}

// LegacyRegistry binds the directory of Quake and GoldSrc files.
var LegacyRegistry = [bheader.LumpCountLegacy]Binding{
	{"LUMP_ENTITIES", decodeEntities},
	{"LUMP_PLANES", records[Plane, Planes]()},
	{"LUMP_TEXTURES", decodeMipTextures},
	{"LUMP_VERTEXES", records[lbytes.Vector, Vertexes]()},
	{"LUMP_VISIBILITY", nil},
	{"LUMP_NODES", records[LegacyNode, LegacyNodes]()},
	{"LUMP_TEXINFO", records[LegacyTexInfo, LegacyTexInfos]()},
	{"LUMP_FACES", records[LegacyFace, LegacyFaces]()},
	{"LUMP_LIGHTING", nil},
	{"LUMP_CLIPNODES", records[ClipNode, ClipNodes]()},
	{"LUMP_LEAFS", records[LegacyLeaf, LegacyLeafs]()},
	{"LUMP_MARKSURFACES", records[uint16, MarkSurfaces]()},
	{"LUMP_EDGES", records[Edge, Edges]()},
	{"LUMP_SURFEDGES", records[int32, SurfEdges]()},
	{"LUMP_MODELS", records[LegacyModel, LegacyModels]()},
}

func Registry(dialect bheader.Dialect) []Binding {
	if dialect == bheader.DialectVBSP {
		return VBSPRegistry[:]
	}
	return LegacyRegistry[:]
}

// IsCompressible reports whether a VBSP lump may be stored LZMA compressed.
// The game lump compresses its sub-lumps individually and the pak file is
// a zip archive of its own.
func IsCompressible(index int) bool {
	return index != LumpGameLump && index != LumpPakFile
}

func isCompressed(reader *lbytes.Reader, entry bheader.LumpEntry) bool {
	if entry.Length < SizeLZMAHeader {
		return false
	}
	id, err := reader.ReadUInt()
	if err != nil {
		return false
	}
	_ = reader.Skip(-4)
	return id == LZMAID
}

// Decompress reads an LZMA lump body: the id, the uncompressed and the
// compressed sizes, 5 bytes of properties, then the raw stream.
func Decompress(body []byte) ([]byte, error) {
	reader := lbytes.NewBytesReader(body)
	if err := reader.Skip(4); err != nil {
		return nil, err
	}
	actualSize, err := reader.ReadUInt()
	if err != nil {
		return nil, err
	}
	lzmaSize, err := reader.ReadUInt()
	if err != nil {
		return nil, err
	}
	properties, err := reader.ReadBytes(sizeLZMAProperties)
	if err != nil {
		return nil, err
	}
	stream, err := reader.ReadBytes(int(lzmaSize))
	if err != nil {
		return nil, err
	}

	// the lzma package expects the classic 13 byte header:
	// properties, dictionary size, then the uncompressed size as uint64
	header := make([]byte, 0, 13)
	header = append(header, properties...)
	header = binary.LittleEndian.AppendUint64(header, uint64(actualSize))

	lzmaReader, err := lzma.NewReader(io.MultiReader(bytes.NewReader(header), bytes.NewReader(stream)))
	if err != nil {
		return nil, err
	}
	// the buffer grows with the stream instead of trusting actualSize
	data, err := io.ReadAll(io.LimitReader(lzmaReader, int64(actualSize)))
	if err != nil {
		return nil, err
	}
	if len(data) != int(actualSize) {
		return nil, io.ErrUnexpectedEOF
	}
	return data, nil
}

// Decode seeks to the lump and runs its decoder. Lumps without a decoder
// become Unparsed and are never read.
func Decode(
	reader *lbytes.Reader,
	dialect bheader.Dialect,
	binding Binding,
	entry bheader.LumpEntry,
) (Lump, error) {
	if binding.Decode == nil {
		return Unparsed{
			Index:  entry.Index,
			Offset: entry.Offset,
			Length: entry.Length,
		}, nil
	}
	if err := reader.SeekTo(int64(entry.Offset)); err != nil {
		return nil, DecodeError{Lump: entry.Index, Offset: int64(entry.Offset), Err: err}
	}

	compressed := dialect == bheader.DialectVBSP &&
		IsCompressible(entry.Index) &&
		isCompressed(reader, entry)
	if compressed {
		body, err := reader.ReadBytes(int(entry.Length))
		if err != nil {
			return nil, DecodeError{Lump: entry.Index, Offset: reader.Position(), Err: err}
		}
		data, err := Decompress(body)
		if err != nil {
			return nil, DecodeError{
				Lump:   entry.Index,
				Offset: int64(entry.Offset),
				Err:    ErrCompressedLump{Lump: entry.Index, Err: err},
			}
		}
		// offsets inside the lump now count from the start of data
		reader = lbytes.NewBytesReader(data)
		entry.Offset = 0
		entry.Length = uint32(len(data))
	}

	lump, err := binding.Decode(reader, entry)
	if err != nil {
		return nil, DecodeError{Lump: entry.Index, Offset: reader.Position(), Err: err}
	}

	log.Debug().
		Int("index", entry.Index).
		Str("name", binding.Name).
		Str("kind", string(lump.Kind())).
		Bool("compressed", compressed).
		Msg("decoded lump")
	return lump, nil
}

// DecodeAll decodes every directory entry in index order.
func DecodeAll(reader *lbytes.Reader, header bheader.Header) ([]Lump, error) {
	registry := Registry(header.Dialect)
	if len(registry) != len(header.Lumps) {
		err := errors.Errorf(
			"blump.DecodeAll error: %d directory entries for %d registry slots",
			len(header.Lumps), len(registry),
		)
		return nil, err
	}

	lumps := make([]Lump, 0, len(header.Lumps))
	for _, i := range ds.MakeRange(0, len(header.Lumps), 1) {
		lump, err := Decode(reader, header.Dialect, registry[i], header.Lumps[i])
		if err != nil {
			err := errors.Wrapf(err, "blump.DecodeAll error decoding %s", registry[i].Name)
			return nil, err
		}
		lumps = append(lumps, lump)
	}
	return lumps, nil
}

// Name returns the conventional name of a directory index.
func Name(dialect bheader.Dialect, index int) string {
	registry := Registry(dialect)
	if index < 0 || index >= len(registry) {
		return "LUMP_UNKNOWN"
	}
	return registry[index].Name
}
