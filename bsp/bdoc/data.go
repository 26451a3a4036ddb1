// Package bdoc assembles the header and every lump of a BSP file into a Document.
package bdoc

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/blump"
)

type (
	// Document is a fully decoded BSP file. Lumps holds one value per
	// directory entry, in index order.
	Document struct {
		Header bheader.Header `json:"header"`
		Lumps  []blump.Lump   `json:"lumps"`
	}
)
