// Package bphys decodes the physics collision lump: one record per model,
// terminated by a model index of -1.
package bphys

import (
	"bsp-dump/bsp/bentity"
	"bsp-dump/bsp/lbytes"
)

type (
	ModelHeader struct {
		ModelIndex  int32 `json:"model_index"`
		DataSize    int32 `json:"data_size"`
		KeyDataSize int32 `json:"key_data_size"`
		SolidCount  int32 `json:"solid_count"`
	}
	Model struct {
		ModelHeader
		Solids  []CollisionData          `json:"solids"`
		KeyData []bentity.KeyValueObject `json:"key_data"`
	}
	CollideHeader struct {
		Size      int32  `json:"size"`
		ID        int32  `json:"id"`
		Version   uint16 `json:"version"`
		ModelType uint16 `json:"model_type"`
	}
	// SurfaceHeader is one of CompactSurfaceHeader, MoppSurfaceHeader or
	// UnknownSurfaceHeader.
	SurfaceHeader interface {
		isSurfaceHeader()
		// PayloadSize is the number of bytes following the header.
		PayloadSize() int32
	}
	CompactSurfaceHeader struct {
		SurfaceSize   int32         `json:"surface_size"`
		DragAxisAreas lbytes.Vector `json:"drag_axis_areas"`
		AxisMapSize   int32         `json:"axis_map_size"`
	}
	MoppSurfaceHeader struct {
		Size int32 `json:"size"`
	}
	UnknownSurfaceHeader struct {
		ModelType uint16 `json:"model_type"`
		Size      int32  `json:"size"`
	}
	CollisionData struct {
		Header        CollideHeader `json:"header"`
		SurfaceHeader SurfaceHeader `json:"surface_header"`
		Data          []byte        `json:"data"`
	}
)

const (
	ModelTypeCompact = 0
	ModelTypeMopp    = 1

	SentinelModelIndex = -1

	SizeCollideHeader = 12
	// a collide header followed by the smallest surface header
	SizeMinSolid = SizeCollideHeader + 4
)

func (CompactSurfaceHeader) isSurfaceHeader() {}
func (MoppSurfaceHeader) isSurfaceHeader()    {}
func (UnknownSurfaceHeader) isSurfaceHeader() {}

func (r CompactSurfaceHeader) PayloadSize() int32 { return r.SurfaceSize }
func (r MoppSurfaceHeader) PayloadSize() int32    { return r.Size }
func (r UnknownSurfaceHeader) PayloadSize() int32 { return r.Size }
