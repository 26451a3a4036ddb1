package bdoc

import (
	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/blump"
	"bsp-dump/bsp/lbytes"
	"bsp-dump/ds"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

const (
	FieldNameHeader = "header"
	FieldNameLumps  = "lumps"
	FieldNameIndex  = "index"
	FieldNameKind   = "kind"
	FieldNameData   = "data"
)

func ToDocument(bs []byte) (*Document, error) {
	reader := lbytes.NewBytesReader(bs)
	document := Document{}

	header, err := bheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	document.Header = *header

	document.Lumps, err = blump.DecodeAll(reader, *header)
	if err != nil {
		err := errors.Wrap(err, "bdoc.ToDocument error")
		return nil, err
	}

	return &document, nil
}

// ToOrderedMap lays the document out for JSON output: the header first, then
// every lump under its conventional name in directory order.
func ToOrderedMap(document Document) *orderedmap.OrderedMap {
	lumps := orderedmap.New()
	for index, lump := range document.Lumps {
		lhm := orderedmap.New()
		lhm.Set(FieldNameIndex, index)
		lhm.Set(FieldNameKind, lump.Kind())
		lhm.Set(FieldNameData, lump)
		lumps.Set(blump.Name(document.Header.Dialect, index), lhm)
	}

	lhm := orderedmap.New()
	lhm.Set(FieldNameHeader, document.Header)
	lhm.Set(FieldNameLumps, lumps)
	return lhm
}

// Lump returns the lump at a directory index.
func (r Document) Lump(index int) (blump.Lump, bool) {
	if index < 0 || index >= len(r.Lumps) {
		return nil, false
	}
	return r.Lumps[index], true
}

// PakFile returns a copy of the embedded zip archive. Legacy files have none.
func (r Document) PakFile() ([]byte, bool) {
	if r.Header.Dialect != bheader.DialectVBSP {
		return nil, false
	}
	lump, ok := r.Lump(blump.LumpPakFile)
	if !ok {
		return nil, false
	}
	pakFile, ok := lump.(blump.PakFile)
	if !ok || len(pakFile) == 0 {
		return nil, false
	}
	return ds.ShallowCopy(pakFile), true
}

func (r Document) Entities() []bentity.Entity {
	lump, ok := r.Lump(blump.LumpEntities)
	if !ok {
		return nil
	}
	entities, ok := lump.(blump.Entities)
	if !ok {
		return nil
	}
	return entities
}
