package bgame

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func DecodeDescriptor(reader *lbytes.Reader) (*Descriptor, error) {
	readInt := lbytes.CreateIntReadFunction(reader)
	readUShort := lbytes.CreateUShortReadFunction(reader)
	instructions := []lbytes.Instruction{
		{Key: "id", ReadFunction: lbytes.CreateNBytesReadFunction(reader, 4)},
		{Key: "flags", ReadFunction: readUShort},
		{Key: "version", ReadFunction: readUShort},
		{Key: "file_offset", ReadFunction: readInt},
		{Key: "file_length", ReadFunction: readInt},
	}
	descriptor, err := lbytes.ExecuteInstructions[Descriptor](instructions)
	if err != nil {
		err := errors.Wrap(err, "bgame.DecodeDescriptor error")
		return nil, err
	}
	return descriptor, nil
}

// DecodeStaticProps reads the prop dictionary and leaf list of a static prop
// sub-lump. Instance records are only counted.
func DecodeStaticProps(reader *lbytes.Reader) (*StaticProps, error) {
	dictionaryCount, err := reader.ReadCount(SizeStaticPropName)
	if err != nil {
		err := errors.Wrap(err, "bgame.DecodeStaticProps error reading dictionary count")
		return nil, err
	}
	props := StaticProps{
		Dictionary: make([]string, 0, dictionaryCount),
	}
	for i := 0; i < dictionaryCount; i++ {
		name, err := reader.ReadString(SizeStaticPropName)
		if err != nil {
			err := errors.Wrapf(err, "bgame.DecodeStaticProps error reading dictionary entry %d", i)
			return nil, err
		}
		props.Dictionary = append(props.Dictionary, name)
	}

	leafCount, err := reader.ReadCount(SizeStaticPropLeafItem)
	if err != nil {
		err := errors.Wrap(err, "bgame.DecodeStaticProps error reading leaf count")
		return nil, err
	}
	props.Leaves = make([]uint16, 0, leafCount)
	for i := 0; i < leafCount; i++ {
		// the count check above guarantees the read succeeds
		leaf, _ := reader.ReadUShort()
		props.Leaves = append(props.Leaves, leaf)
	}

	props.InstanceCount, err = reader.ReadInt()
	if err != nil {
		err := errors.Wrap(err, "bgame.DecodeStaticProps error reading instance count")
		return nil, err
	}
	return &props, nil
}

// Decode reads the sub-lump directory, then visits every sub-lump through
// its absolute file offset.
func Decode(reader *lbytes.Reader, entry bheader.LumpEntry) (*GameLump, error) {
	gameLump := GameLump{
		Descriptors: make([]Descriptor, 0),
		Data:        make([]Data, 0),
	}
	if entry.Length == 0 {
		return &gameLump, nil
	}

	count, err := reader.ReadCount(SizeDescriptor)
	if err != nil {
		err := errors.Wrap(err, "bgame.Decode error reading sub-lump count")
		return nil, err
	}
	for i := 0; i < count; i++ {
		descriptor, err := DecodeDescriptor(reader)
		if err != nil {
			err := errors.Wrapf(err, "bgame.Decode error reading descriptor %d", i)
			return nil, err
		}
		gameLump.Descriptors = append(gameLump.Descriptors, *descriptor)
	}

	for _, descriptor := range gameLump.Descriptors {
		if !descriptor.IsStaticProps() {
			log.Warn().
				Str("id", descriptor.Tag()).
				Uint16("version", descriptor.Version).
				Msg("game sub-lump left unparsed")
			gameLump.Data = append(gameLump.Data, Unparsed{ID: descriptor.Tag()})
			continue
		}
		if err := reader.SeekTo(int64(descriptor.FileOffset)); err != nil {
			err := errors.Wrapf(err, "bgame.Decode error seeking to sub-lump %q", descriptor.Tag())
			return nil, err
		}
		props, err := DecodeStaticProps(reader)
		if err != nil {
			err := errors.Wrapf(err, "bgame.Decode error decoding sub-lump %q", descriptor.Tag())
			return nil, err
		}
		gameLump.Data = append(gameLump.Data, *props)
	}

	return &gameLump, nil
}
