package bentity

import (
	"strings"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/pkg/errors"
)

const (
	blockTerminator = "}\n"
)

// DecodePair splits a `"key" "value"` line on its first space and strips the quotes.
func DecodePair(line string, offset int64) (*Pair, error) {
	key, value, found := strings.Cut(line, " ")
	if !found {
		return nil, lbytes.ErrMalformedText{
			Offset: offset,
			Reason: `expected "key" "value", got "` + line + `"`,
		}
	}
	return &Pair{
		Key:   strings.Trim(key, `"`),
		Value: strings.Trim(value, `"`),
	}, nil
}

// DecodeEntities parses an entity lump string. offset is where the string
// starts in the file and only serves error reporting.
func DecodeEntities(text string, offset int64) ([]Entity, error) {
	entities := make([]Entity, 0)
	position := offset
	for _, block := range strings.Split(text, blockTerminator) {
		blockOffset := position
		position += int64(len(block) + len(blockTerminator))

		pairs := make([]Pair, 0)
		lineOffset := blockOffset
		for _, line := range strings.Split(block, "\n") {
			current := lineOffset
			lineOffset += int64(len(line) + 1)
			line = strings.TrimRight(strings.ReplaceAll(line, "{", ""), "\r")
			if line == "" || line == "\u0000" {
				continue
			}
			pair, err := DecodePair(line, current)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, *pair)
		}
		if len(pairs) == 0 {
			continue
		}
		entities = append(entities, Entity{Pairs: pairs})
	}
	return entities, nil
}

// Decode reads the single zero terminated string of the entity lump.
func Decode(reader *lbytes.Reader, entry bheader.LumpEntry) ([]Entity, error) {
	if entry.Length == 0 {
		return make([]Entity, 0), nil
	}
	text, err := reader.ReadCStringBefore(entry.End())
	if err != nil {
		err := errors.Wrap(err, "bentity.Decode error reading entity string")
		return nil, err
	}
	entities, err := DecodeEntities(text, int64(entry.Offset))
	if err != nil {
		err := errors.Wrap(err, "bentity.Decode error")
		return nil, err
	}
	return entities, nil
}
