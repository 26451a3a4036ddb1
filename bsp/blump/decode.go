package blump

import (
	"encoding/binary"

	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/bgame"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/bphys"
	"bsp-dump/bsp/bvis"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
)

type (
	RecordFunc[T any] func(reader *lbytes.Reader) (T, error)
	// recordLump is satisfied by every Lump that is a plain list of T.
	recordLump[T any] interface {
		~[]T
		Lump
	}
)

func readRecord[T any](reader *lbytes.Reader) (T, error) {
	var record T
	err := reader.ReadRecord(&record)
	return record, err
}

// DecodeRecords reads records of size bytes until the end of the lump.
// A lump that stops in the middle of a record is an error.
func DecodeRecords[T any](
	reader *lbytes.Reader,
	entry bheader.LumpEntry,
	size int,
	decode RecordFunc[T],
) ([]T, error) {
	end := entry.End()
	available := int64(entry.Length)
	if remaining := int64(reader.Len()); remaining < available {
		available = remaining
	}
	records := make([]T, 0, available/int64(size))
	for reader.Position() < end {
		if remaining := end - reader.Position(); remaining < int64(size) {
			return nil, lbytes.ErrOutOfBounds{
				Offset:    reader.Position(),
				Want:      int64(size),
				Remaining: remaining,
			}
		}
		record, err := decode(reader)
		if err != nil {
			err := errors.Wrapf(err, "blump.DecodeRecords error reading record %d", len(records))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// records builds the decoder of a lump holding nothing but fixed-size T.
func records[T any, L recordLump[T]]() DecodeFunc {
	var zero T
	size := binary.Size(zero)
	return func(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
		items, err := DecodeRecords(reader, entry, size, readRecord[T])
		if err != nil {
			return nil, err
		}
		return L(items), nil
	}
}

func decodeEntities(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	entities, err := bentity.Decode(reader, entry)
	if err != nil {
		return nil, err
	}
	return Entities(entities), nil
}

func decodeVisibility(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	table, err := bvis.Decode(reader, entry)
	if err != nil {
		return nil, err
	}
	return Visibility{Table: *table}, nil
}

func decodeOccluderData(reader *lbytes.Reader, version uint32) (OccluderData, error) {
	data := OccluderData{}
	var err error
	readInt := func(v *int32) {
		if err == nil {
			*v, err = reader.ReadInt()
		}
	}
	readVector := func(v *lbytes.Vector) {
		if err == nil {
			*v, err = reader.ReadVector()
		}
	}
	readInt(&data.Flags)
	readInt(&data.FirstPoly)
	readInt(&data.PolyCount)
	readVector(&data.Mins)
	readVector(&data.Maxs)
	if version >= 2 {
		readInt(&data.Area)
	}
	return data, err
}

// decodeOcclusion reads three count prefixed arrays: occluders, their
// polygons and the polygon vertex indices.
func decodeOcclusion(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	occlusion := Occlusion{
		Data:          make([]OccluderData, 0),
		Polys:         make([]OccluderPolyData, 0),
		VertexIndices: make([]int32, 0),
	}
	if entry.Length == 0 {
		return occlusion, nil
	}

	dataSize := SizeOccluderDataVersion1
	if entry.Version >= 2 {
		dataSize += 4
	}
	count, err := reader.ReadCount(dataSize)
	if err != nil {
		err := errors.Wrap(err, "blump.decodeOcclusion error reading occluder count")
		return nil, err
	}
	for i := 0; i < count; i++ {
		data, err := decodeOccluderData(reader, entry.Version)
		if err != nil {
			err := errors.Wrapf(err, "blump.decodeOcclusion error reading occluder %d", i)
			return nil, err
		}
		occlusion.Data = append(occlusion.Data, data)
	}

	count, err = reader.ReadCount(SizeOccluderPolyData)
	if err != nil {
		err := errors.Wrap(err, "blump.decodeOcclusion error reading polygon count")
		return nil, err
	}
	for i := 0; i < count; i++ {
		poly, err := readRecord[OccluderPolyData](reader)
		if err != nil {
			err := errors.Wrapf(err, "blump.decodeOcclusion error reading polygon %d", i)
			return nil, err
		}
		occlusion.Polys = append(occlusion.Polys, poly)
	}

	count, err = reader.ReadCount(4)
	if err != nil {
		err := errors.Wrap(err, "blump.decodeOcclusion error reading vertex index count")
		return nil, err
	}
	for i := 0; i < count; i++ {
		index, err := reader.ReadInt()
		if err != nil {
			err := errors.Wrapf(err, "blump.decodeOcclusion error reading vertex index %d", i)
			return nil, err
		}
		occlusion.VertexIndices = append(occlusion.VertexIndices, index)
	}

	return occlusion, nil
}

// decodeLeafs picks the record width from the lump version: version 0
// leaves carry an ambient light cube, later versions moved it to its own lump.
func decodeLeafs(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	withCube := entry.Version == 0
	size := SizeLeaf
	if withCube {
		size = SizeLeafVersion0
	}
	leafs, err := DecodeRecords(
		reader,
		entry,
		size,
		func(reader *lbytes.Reader) (Leaf, error) {
			leaf := Leaf{}
			if err := reader.ReadRecord(&leaf.LeafCommon); err != nil {
				return leaf, err
			}
			if withCube {
				cube := CompressedLightCube{}
				if err := reader.ReadRecord(&cube); err != nil {
					return leaf, err
				}
				leaf.AmbientLighting = &cube
			}
			var err error
			leaf.Padding, err = reader.ReadShort()
			return leaf, err
		},
	)
	if err != nil {
		return nil, err
	}
	return Leafs(leafs), nil
}

func decodePhysDisp(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	sizes := make(PhysDisp, 0)
	if entry.Length == 0 {
		return sizes, nil
	}
	count, err := reader.ReadUShort()
	if err != nil {
		err := errors.Wrap(err, "blump.decodePhysDisp error reading count")
		return nil, err
	}
	for i := 0; i < int(count); i++ {
		size, err := reader.ReadUShort()
		if err != nil {
			err := errors.Wrapf(err, "blump.decodePhysDisp error reading size %d", i)
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func decodePhysCollide(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	models, err := bphys.Decode(reader, entry)
	if err != nil {
		return nil, err
	}
	return PhysCollide(models), nil
}

func decodeGameLump(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	gameLump, err := bgame.Decode(reader, entry)
	if err != nil {
		return nil, err
	}
	return GameLump{GameLump: *gameLump}, nil
}

// decodePakFile copies the embedded archive out of the file buffer.
func decodePakFile(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	bs, err := reader.ReadBytes(int(entry.Length))
	if err != nil {
		return nil, err
	}
	return PakFile(bs), nil
}

// decodeTexDataStringData reads consecutive zero terminated names. Offsets
// are relative to the lump so TexDataStringTable values can be looked up.
func decodeTexDataStringData(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error) {
	names := make(TexDataStringData, 0)
	for reader.Position() < entry.End() {
		offset := int(reader.Position() - int64(entry.Offset))
		value, err := reader.ReadCStringBefore(entry.End())
		if err != nil {
			err := errors.Wrapf(err, "blump.decodeTexDataStringData error at lump offset %d", offset)
			return nil, err
		}
		names = append(names, TexDataString{Offset: offset, Value: value})
	}
	return names, nil
}

// Lookup returns the name stored at a lump relative offset.
func (r TexDataStringData) Lookup(offset uint32) (string, bool) {
	for _, s := range r {
		if s.Offset == int(offset) {
			return s.Value, true
		}
	}
	return "", false
}
