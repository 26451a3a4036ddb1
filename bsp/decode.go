package bsp

import (
	"encoding/json"

	"bsp-dump/bsp/bdoc"
	"github.com/pkg/errors"
)

func Decode(bs []byte) (*bdoc.Document, error) {
	return bdoc.ToDocument(bs)
}

// DecodeJSON decodes bs and renders it as indented JSON with the lumps in
// directory order.
func DecodeJSON(bs []byte) ([]byte, error) {
	document, err := bdoc.ToDocument(bs)
	if err != nil {
		return nil, err
	}
	return MarshalJSON(*document)
}

func MarshalJSON(document bdoc.Document) ([]byte, error) {
	lhm := bdoc.ToOrderedMap(document)
	decodedBytes, err := json.MarshalIndent(lhm, "", "  ")
	if err != nil {
		err := errors.Wrap(err, "bsp.MarshalJSON error marshalling document")
		return nil, err
	}
	return decodedBytes, nil
}
