package bvis

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Decompress expands the run-length encoded set starting at input[0].
//
// A zero byte is followed by a count k and skips 8*k clusters. Any other byte
// carries 8 clusters, least significant bit first. Decoding stops as soon as
// numClusters clusters are covered. Bits of a literal byte that fall past
// numClusters are dropped and reported through overrun.
func Decompress(input []byte, numClusters int) (result []bool, overrun bool, err error) {
	result = make([]bool, numClusters)
	c := 0
	v := 0
	for c < numClusters {
		if v >= len(input) {
			return nil, false, lbytes.ErrOutOfBounds{
				Offset:    int64(v),
				Want:      1,
				Remaining: 0,
			}
		}
		if input[v] == 0 {
			if v+1 >= len(input) {
				return nil, false, lbytes.ErrOutOfBounds{
					Offset:    int64(v + 1),
					Want:      1,
					Remaining: 0,
				}
			}
			c += 8 * int(input[v+1])
			v += 2
			continue
		}
		for bit := 0; bit < 8; bit++ {
			if c+bit >= numClusters {
				overrun = true
				break
			}
			result[c+bit] = input[v]&(1<<bit) != 0
		}
		c += 8
		v++
	}
	return result, overrun, nil
}

// Decode reads the cluster count and offsets, then decompresses both sets
// for every cluster. Offsets are relative to the start of the lump.
func Decode(reader *lbytes.Reader, entry bheader.LumpEntry) (*Table, error) {
	table := Table{}
	if entry.Length == 0 {
		return &table, nil
	}

	// every cluster carries a PVS and a PAS offset
	count, err := reader.ReadCount(2 * 4)
	if err != nil {
		err := errors.Wrap(err, "bvis.Decode error reading cluster count")
		return nil, err
	}
	if want := int64(count) * 2 * 4; want > int64(entry.Length)-4 {
		return nil, lbytes.ErrOutOfBounds{
			Offset:    reader.Position(),
			Want:      want,
			Remaining: int64(entry.Length) - 4,
		}
	}
	numClusters := int32(count)
	table.NumClusters = numClusters
	table.ByteOffsets = make([][2]int32, 0, numClusters)
	for i := int32(0); i < numClusters; i++ {
		pvs, err := reader.ReadInt()
		if err != nil {
			err := errors.Wrapf(err, "bvis.Decode error reading offsets of cluster %d", i)
			return nil, err
		}
		pas, err := reader.ReadInt()
		if err != nil {
			err := errors.Wrapf(err, "bvis.Decode error reading offsets of cluster %d", i)
			return nil, err
		}
		table.ByteOffsets = append(table.ByteOffsets, [2]int32{pvs, pas})
	}

	if err := reader.SeekTo(int64(entry.Offset)); err != nil {
		return nil, err
	}
	data, err := reader.ReadBytes(int(entry.Length))
	if err != nil {
		err := errors.Wrap(err, "bvis.Decode error reading compressed data")
		return nil, err
	}

	table.PVS = make([][]bool, 0, numClusters)
	table.PAS = make([][]bool, 0, numClusters)
	for cluster, offsets := range table.ByteOffsets {
		for set, offset := range offsets {
			if offset < 0 || int(offset) > len(data) {
				return nil, lbytes.ErrOutOfBounds{
					Offset:    int64(entry.Offset) + int64(offset),
					Want:      1,
					Remaining: 0,
				}
			}
			decompressed, overrun, err := Decompress(data[offset:], int(numClusters))
			if err != nil {
				err := errors.Wrapf(err, "bvis.Decode error decompressing set %d of cluster %d", set, cluster)
				return nil, err
			}
			if overrun {
				table.Overruns++
				log.Warn().
					Int("cluster", cluster).
					Int("set", set).
					Msg("visibility data overruns the cluster count")
			}
			if set == SetVisible {
				table.PVS = append(table.PVS, decompressed)
			} else {
				table.PAS = append(table.PAS, decompressed)
			}
		}
	}

	return &table, nil
}
