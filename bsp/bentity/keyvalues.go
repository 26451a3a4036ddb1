package bentity

import (
	"strings"

	"bsp-dump/bsp/lbytes"
)

func isBlank(line string) bool {
	return strings.Trim(line, "\u0000 \t\r") == ""
}

// DecodeKeyValueBlocks parses the physics key-value grammar:
//
//	solid {
//	"index" "0"
//	}
//
// Blank and zero-filled lines are skipped, which drops the zero-filled marker
// that closes the section.
func DecodeKeyValueBlocks(text string, offset int64) ([]KeyValueObject, error) {
	objects := make([]KeyValueObject, 0)
	var current *KeyValueObject
	lineOffset := offset
	for _, line := range strings.Split(text, "\n") {
		position := lineOffset
		lineOffset += int64(len(line) + 1)
		line = strings.TrimRight(line, "\r")
		if isBlank(line) {
			continue
		}

		switch {
		case strings.HasSuffix(line, "{"):
			if current != nil {
				return nil, lbytes.ErrMalformedText{
					Offset: position,
					Reason: `object "` + current.Name + `" is not closed before the next one`,
				}
			}
			current = &KeyValueObject{
				Name:  strings.TrimSpace(strings.TrimSuffix(line, "{")),
				Pairs: make([]Pair, 0),
			}
		case line == "}":
			if current == nil {
				return nil, lbytes.ErrMalformedText{
					Offset: position,
					Reason: "closing brace without an open object",
				}
			}
			objects = append(objects, *current)
			current = nil
		default:
			if current == nil {
				return nil, lbytes.ErrMalformedText{
					Offset: position,
					Reason: `key-value pair outside of an object: "` + line + `"`,
				}
			}
			pair, err := DecodePair(line, position)
			if err != nil {
				return nil, err
			}
			current.Pairs = append(current.Pairs, *pair)
		}
	}
	if current != nil {
		return nil, lbytes.ErrMalformedText{
			Offset: lineOffset,
			Reason: `object "` + current.Name + `" is not closed`,
		}
	}
	return objects, nil
}
