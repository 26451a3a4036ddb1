// Package bsptest assembles synthetic BSP files in memory for tests.
package bsptest

import (
	"bsp-dump/bsp/bheader"
	"bsp-dump/bsp/lbytes"
	"github.com/samber/lo"
)

type (
	Builder struct {
		descriptor  bheader.DialectDescriptor
		version     int32
		mapRevision int32
		lumps       map[int]lump
	}
	lump struct {
		data    []byte
		version uint32
		ident   []byte
	}
)

func New(magic uint32) *Builder {
	descriptor, err := bheader.Detect(magic)
	if err != nil {
		panic(err)
	}
	return &Builder{
		descriptor: *descriptor,
		version:    int32(magic),
		lumps:      map[int]lump{},
	}
}

// NewVBSP returns a builder for a version 20 VBSP file.
func NewVBSP() *Builder {
	b := New(bheader.MagicVBSP)
	b.version = 20
	return b
}

func (b *Builder) MapRevision(revision int32) *Builder {
	b.mapRevision = revision
	return b
}

func (b *Builder) Lump(index int, data []byte) *Builder {
	return b.LumpVersion(index, 0, data)
}

func (b *Builder) LumpVersion(index int, version uint32, data []byte) *Builder {
	b.lumps[index] = lump{
		data:    data,
		version: version,
		ident:   make([]byte, 4),
	}
	return b
}

func (b *Builder) LumpIdent(index int, ident []byte) *Builder {
	l := b.lumps[index]
	l.ident = ident
	b.lumps[index] = l
	return b
}

func (b *Builder) HeaderSize() int {
	size := 4 + b.descriptor.LumpCount*bheader.DefaultEntrySizeLegacy
	if b.descriptor.Dialect == bheader.DialectVBSP {
		size = 4 + 4 + b.descriptor.LumpCount*bheader.DefaultEntrySizeVBSP + 4
	}
	return size
}

// OffsetOf returns the file offset lump index will be written at.
// It only depends on lumps with a lower index, so it can be used to build
// payloads holding absolute offsets before the lump itself is added.
func (b *Builder) OffsetOf(index int) int {
	offset := b.HeaderSize()
	for i := 0; i < index; i++ {
		offset += len(b.lumps[i].data)
	}
	return offset
}

func (b *Builder) Build() []byte {
	bs := make([]byte, 0, b.OffsetOf(b.descriptor.LumpCount))
	bs = append(bs, lbytes.EncodeValueInt(b.descriptor.Magic)...)
	if b.descriptor.Dialect == bheader.DialectVBSP {
		bs = append(bs, lbytes.EncodeValueInt(b.version)...)
	}
	for i := 0; i < b.descriptor.LumpCount; i++ {
		l, ok := b.lumps[i]
		offset := 0
		if ok && len(l.data) > 0 {
			offset = b.OffsetOf(i)
		}
		bs = append(bs, lbytes.EncodeValueInt(offset)...)
		bs = append(bs, lbytes.EncodeValueInt(len(l.data))...)
		if b.descriptor.HasLumpVersion {
			ident := l.ident
			if ident == nil {
				ident = make([]byte, 4)
			}
			bs = append(bs, lbytes.EncodeValueInt(l.version)...)
			bs = append(bs, ident...)
		}
	}
	if b.descriptor.HasMapRevision {
		bs = append(bs, lbytes.EncodeValueInt(b.mapRevision)...)
	}
	for i := 0; i < b.descriptor.LumpCount; i++ {
		bs = append(bs, b.lumps[i].data...)
	}
	return bs
}

func Concat(parts ...[]byte) []byte {
	return lo.Flatten(parts)
}

func Ints(values ...int) []byte {
	return Concat(
		lo.Map(
			values,
			func(value int, _ int) []byte {
				return lbytes.EncodeValueInt(value)
			},
		)...,
	)
}

func Shorts(values ...int) []byte {
	return Concat(
		lo.Map(
			values,
			func(value int, _ int) []byte {
				return lbytes.EncodeValueShort(value)
			},
		)...,
	)
}

func Floats(values ...float32) []byte {
	return Concat(
		lo.Map(
			values,
			func(value float32, _ int) []byte {
				return lbytes.EncodeValueInt(value)
			},
		)...,
	)
}
