package bheader

import (
	"encoding/binary"

	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Detect matches the first four bytes against the known magic numbers.
func Detect(magic uint32) (*DialectDescriptor, error) {
	descriptor, ok := lo.Find(
		Dialects,
		func(descriptor DialectDescriptor) bool {
			return descriptor.Magic == magic
		},
	)
	if !ok {
		return nil, ErrUnsupportedFormat{Magic: magic}
	}
	return &descriptor, nil
}

func IsValidMagicNumber(bs []byte) bool {
	if len(bs) < 4 {
		return false
	}
	_, err := Detect(binary.LittleEndian.Uint32(bs))
	return err == nil
}

func DecodeEntry(reader *lbytes.Reader, descriptor DialectDescriptor, index int) (*LumpEntry, error) {
	readUInt := lbytes.CreateUIntReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "offset", ReadFunction: readUInt},
		{Key: "length", ReadFunction: readUInt},
	}
	if descriptor.HasLumpVersion {
		instructions = append(
			instructions,
			lbytes.Instruction{Key: "version", ReadFunction: readUInt},
			lbytes.Instruction{Key: "ident", ReadFunction: lbytes.CreateNBytesReadFunction(reader, 4)},
		)
	}

	entry, err := lbytes.ExecuteInstructions[LumpEntry](instructions)
	if err != nil {
		err := errors.Wrapf(err, "bheader.DecodeEntry error at index %d", index)
		return nil, err
	}
	if entry.Ident == nil {
		entry.Ident = make([]byte, 4)
	}
	entry.Index = index

	return entry, nil
}

func DecodeDirectory(reader *lbytes.Reader, descriptor DialectDescriptor) ([]LumpEntry, error) {
	entries := make([]LumpEntry, 0, descriptor.LumpCount)
	for i := 0; i < descriptor.LumpCount; i++ {
		entry, err := DecodeEntry(reader, descriptor, i)
		if err != nil {
			err := errors.Wrap(err, "bheader.DecodeDirectory error")
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	magic, err := reader.ReadUInt()
	if err != nil {
		err := errors.Wrap(err, "bheader.Decode error reading magic number")
		return nil, err
	}
	descriptor, err := Detect(magic)
	if err != nil {
		return nil, err
	}

	header := Header{
		Dialect: descriptor.Dialect,
		Magic:   magic,
		// legacy files start with their version number, there is no separate magic
		Version: int32(magic),
	}
	if descriptor.Dialect == DialectVBSP {
		header.Version, err = reader.ReadInt()
		if err != nil {
			err := errors.Wrap(err, "bheader.Decode error reading version")
			return nil, err
		}
	}

	header.Lumps, err = DecodeDirectory(reader, *descriptor)
	if err != nil {
		return nil, err
	}

	if descriptor.HasMapRevision {
		header.MapRevision, err = reader.ReadInt()
		if err != nil {
			err := errors.Wrap(err, "bheader.Decode error reading map revision")
			return nil, err
		}
	}

	log.Debug().
		Str("dialect", string(header.Dialect)).
		Int32("version", header.Version).
		Int32("map_revision", header.MapRevision).
		Msg("decoded header")

	return &header, nil
}
