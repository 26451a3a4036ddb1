// Package bsp stores the code to decode BSP map files.
package bsp

import (
	"bsp-dump/bsp/bheader"
)

func IsBSPFile(bs []byte) bool {
	return bheader.IsValidMagicNumber(bs)
}
