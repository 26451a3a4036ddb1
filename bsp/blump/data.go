// Package blump turns the regions named by the lump directory into typed
// values. Every directory index maps to exactly one Lump.
package blump

import (
	"fmt"

	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
)

type (
	Kind string
	// Lump is the closed set of decoded lump values. Switch on the concrete
	// type, or on Kind when only the label matters.
	Lump interface {
		Kind() Kind
		isLump()
	}
	// DecodeFunc decodes one lump. The reader is positioned at entry.Offset.
	DecodeFunc func(reader *lbytes.Reader, entry bheader.LumpEntry) (Lump, error)
	// Binding ties a directory index to its name and decoder. A nil Decode
	// leaves the lump Unparsed.
	Binding struct {
		Name   string
		Decode DecodeFunc
	}
	// Unparsed marks a region nobody decodes yet.
	Unparsed struct {
		Index  int    `json:"index"`
		Offset uint32 `json:"offset"`
		Length uint32 `json:"length"`
	}
	// DecodeError carries the lump index and the reader offset of a failure.
	DecodeError struct {
		Lump   int
		Offset int64
		Err    error
	}
	ErrCompressedLump struct {
		Lump int
		Err  error
	}
)

const (
	KindUnparsed Kind = "unparsed"
)

func (Unparsed) Kind() Kind { return KindUnparsed }
func (Unparsed) isLump()    {}

func (r DecodeError) Error() string {
	return fmt.Sprintf("lump %d at offset %d: %v", r.Lump, r.Offset, r.Err)
}

func (r DecodeError) Unwrap() error {
	return r.Err
}

func (r ErrCompressedLump) Error() string {
	return fmt.Sprintf("lump %d: lzma: %v", r.Lump, r.Err)
}

func (r ErrCompressedLump) Unwrap() error {
	return r.Err
}
