package bphys

import (
	"bytes"
	"unicode/utf8"

	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func DecodeModelHeader(reader *lbytes.Reader) (*ModelHeader, error) {
	readInt := lbytes.CreateIntReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "model_index", ReadFunction: readInt},
		{Key: "data_size", ReadFunction: readInt},
		{Key: "key_data_size", ReadFunction: readInt},
		{Key: "solid_count", ReadFunction: readInt},
	}
	header, err := lbytes.ExecuteInstructions[ModelHeader](instructions)
	if err != nil {
		err := errors.Wrap(err, "bphys.DecodeModelHeader error")
		return nil, err
	}
	return header, nil
}

func DecodeCollideHeader(reader *lbytes.Reader) (*CollideHeader, error) {
	readInt := lbytes.CreateIntReadFunction(reader)
	readUShort := lbytes.CreateUShortReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "size", ReadFunction: readInt},
		{Key: "id", ReadFunction: readInt},
		{Key: "version", ReadFunction: readUShort},
		{Key: "model_type", ReadFunction: readUShort},
	}
	header, err := lbytes.ExecuteInstructions[CollideHeader](instructions)
	if err != nil {
		err := errors.Wrap(err, "bphys.DecodeCollideHeader error")
		return nil, err
	}
	return header, nil
}

func DecodeSurfaceHeader(reader *lbytes.Reader, modelType uint16) (SurfaceHeader, error) {
	switch modelType {
	case ModelTypeCompact:
		header := CompactSurfaceHeader{}
		var err error
		if header.SurfaceSize, err = reader.ReadInt(); err != nil {
			return nil, err
		}
		if header.DragAxisAreas, err = reader.ReadVector(); err != nil {
			return nil, err
		}
		if header.AxisMapSize, err = reader.ReadInt(); err != nil {
			return nil, err
		}
		return header, nil
	case ModelTypeMopp:
		size, err := reader.ReadInt()
		if err != nil {
			return nil, err
		}
		return MoppSurfaceHeader{Size: size}, nil
	default:
		size, err := reader.ReadInt()
		if err != nil {
			return nil, err
		}
		log.Warn().
			Uint16("model_type", modelType).
			Msg("unknown collision model type")
		return UnknownSurfaceHeader{ModelType: modelType, Size: size}, nil
	}
}

func DecodeCollisionData(reader *lbytes.Reader) (*CollisionData, error) {
	header, err := DecodeCollideHeader(reader)
	if err != nil {
		return nil, err
	}
	surfaceHeader, err := DecodeSurfaceHeader(reader, header.ModelType)
	if err != nil {
		err := errors.Wrapf(err, "bphys.DecodeCollisionData error reading surface header of solid %d", header.ID)
		return nil, err
	}
	data, err := reader.ReadBytes(int(surfaceHeader.PayloadSize()))
	if err != nil {
		err := errors.Wrapf(err, "bphys.DecodeCollisionData error reading surface data of solid %d", header.ID)
		return nil, err
	}
	return &CollisionData{
		Header:        *header,
		SurfaceHeader: surfaceHeader,
		Data:          data,
	}, nil
}

// DecodeKeyData reads size bytes of key-value text, cut at the first zero byte.
func DecodeKeyData(reader *lbytes.Reader, size int) ([]bentity.KeyValueObject, error) {
	start := reader.Position()
	bs, err := reader.ReadBytes(size)
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(bs, 0); i >= 0 {
		bs = bs[:i]
	}
	if !utf8.Valid(bs) {
		return nil, lbytes.ErrMalformedText{
			Offset: start,
			Reason: "invalid UTF-8",
		}
	}
	return bentity.DecodeKeyValueBlocks(string(bs), start)
}

func DecodeModel(reader *lbytes.Reader, header ModelHeader) (*Model, error) {
	want := int64(header.SolidCount) * SizeMinSolid
	if header.SolidCount < 0 || want > int64(reader.Len()) {
		return nil, lbytes.ErrOutOfBounds{
			Offset:    reader.Position(),
			Want:      want,
			Remaining: int64(reader.Len()),
		}
	}
	model := Model{
		ModelHeader: header,
		Solids:      make([]CollisionData, 0, header.SolidCount),
	}
	for i := int32(0); i < header.SolidCount; i++ {
		solid, err := DecodeCollisionData(reader)
		if err != nil {
			err := errors.Wrapf(err, "bphys.DecodeModel error reading solid %d", i)
			return nil, err
		}
		model.Solids = append(model.Solids, *solid)
	}

	keyData, err := DecodeKeyData(reader, int(header.KeyDataSize))
	if err != nil {
		err := errors.Wrap(err, "bphys.DecodeModel error reading key data")
		return nil, err
	}
	model.KeyData = keyData
	return &model, nil
}

// Decode reads models until the sentinel model index or the end of the lump.
func Decode(reader *lbytes.Reader, entry bheader.LumpEntry) ([]Model, error) {
	models := make([]Model, 0)
	for reader.Position() < entry.End() {
		header, err := DecodeModelHeader(reader)
		if err != nil {
			err := errors.Wrapf(err, "bphys.Decode error reading model header %d", len(models))
			return nil, err
		}
		if header.ModelIndex == SentinelModelIndex {
			break
		}
		if header.SolidCount < 0 || header.KeyDataSize < 0 {
			return nil, lbytes.ErrOutOfBounds{
				Offset:    reader.Position(),
				Want:      int64(header.KeyDataSize),
				Remaining: int64(reader.Len()),
			}
		}
		model, err := DecodeModel(reader, *header)
		if err != nil {
			err := errors.Wrapf(err, "bphys.Decode error reading model %d", header.ModelIndex)
			return nil, err
		}
		models = append(models, *model)
	}
	return models, nil
}
